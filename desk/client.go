package desk

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	v1 "github.com/AntonStoeckl/library-desk-go/service/api/v1"
)

const (
	requestIDHeader = "X-Request-Id"
	defaultTimeout  = 10 * time.Second
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrUnexpectedResponse is returned when the server answers with a status the client cannot interpret.
var ErrUnexpectedResponse = errors.New("unexpected response")

// APIError is a failure reported by the server. Message is the server's human-readable message.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// errorBody is the problem document huma writes for failed operations.
type errorBody struct {
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail"`
}

// Client talks to the library desk REST API.
type Client struct {
	conn   *resty.Client
	prefix string
	logger *slog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithEndpointsPrefix sets the prefix the API is mounted at, "/api" by default.
func WithEndpointsPrefix(prefix string) ClientOption {
	return func(c *Client) { c.prefix = prefix }
}

// WithTimeout bounds every request.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) { c.conn.SetTimeout(timeout) }
}

// WithLogger logs every request at debug level.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) { c.logger = logger }
}

// NewClient creates a client for the service at baseURL, e.g. http://localhost:8888.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	conn := resty.New().
		SetTransport(&http.Transport{
			MaxIdleConns:        100, //nolint: mnd
			MaxIdleConnsPerHost: 100, //nolint: mnd
			IdleConnTimeout:     30 * time.Second,
		}).
		SetBaseURL(baseURL).
		SetTimeout(defaultTimeout).
		SetJSONMarshaler(json.Marshal).
		SetJSONUnmarshaler(json.Unmarshal).
		SetHeader("Accept", "application/json")

	c := &Client{conn: conn, prefix: "/api"}
	for _, opt := range opts {
		opt(c)
	}

	c.conn.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		if r.Header.Get(requestIDHeader) == "" {
			r.SetHeader(requestIDHeader, uuid.NewString())
		}
		return nil
	})

	if c.logger != nil {
		c.conn.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			c.logger.Debug("desk request",
				"method", resp.Request.Method,
				"url", resp.Request.URL,
				"status", resp.StatusCode(),
				"dur", resp.Time(),
				"x-request-id", resp.Header().Get(requestIDHeader),
			)
			return nil
		})
	}

	return c
}

// ListBooks returns the catalog ordered by title.
func (c *Client) ListBooks(ctx context.Context) ([]v1.Book, error) {
	var books []v1.Book
	if err := c.do(ctx, http.MethodGet, "/books", nil, &books); err != nil {
		return nil, err
	}

	return books, nil
}

// AddBook adds a book and returns its id.
func (c *Client) AddBook(ctx context.Context, book v1.AddBookRequest) (int64, error) {
	var created v1.BookCreatedResponse
	if err := c.do(ctx, http.MethodPost, "/books", book, &created); err != nil {
		return 0, err
	}

	return created.ID, nil
}

// DeleteBook deletes a book for good.
func (c *Client) DeleteBook(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/books/"+strconv.FormatInt(id, 10), nil, &v1.MessageResponse{})
}

// ListReaders returns all readers ordered by last name.
func (c *Client) ListReaders(ctx context.Context) ([]v1.Reader, error) {
	var readers []v1.Reader
	if err := c.do(ctx, http.MethodGet, "/readers", nil, &readers); err != nil {
		return nil, err
	}

	return readers, nil
}

// RegisterReader registers a reader.
func (c *Client) RegisterReader(ctx context.Context, reader v1.RegisterReaderRequest) error {
	return c.do(ctx, http.MethodPost, "/readers", reader, &v1.ReaderRegisteredResponse{})
}

// Borrow lends a book to a registered reader.
func (c *Client) Borrow(ctx context.Context, bookID int64, phone string) error {
	return c.do(ctx, http.MethodPost, "/borrow", v1.BorrowRequest{BookID: bookID, Phone: phone}, &v1.MessageResponse{})
}

// Return takes a book back.
func (c *Client) Return(ctx context.Context, bookID int64) error {
	return c.do(ctx, http.MethodPost, "/return", v1.ReturnRequest{BookID: bookID}, &v1.MessageResponse{})
}

func (c *Client) do(ctx context.Context, method, path string, body, result any) error {
	req := c.conn.R().
		SetContext(ctx).
		SetResult(result).
		SetError(&errorBody{})

	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, c.prefix+path)
	if err != nil {
		return fmt.Errorf("failed to execute http request: %w", err)
	}

	if resp.IsError() {
		return apiError(resp)
	}

	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("%d: %w", resp.StatusCode(), ErrUnexpectedResponse)
	}

	return nil
}

func apiError(resp *resty.Response) error {
	problem, _ := resp.Error().(*errorBody)
	if problem == nil || (problem.Detail == "" && problem.Title == "") {
		return &APIError{StatusCode: resp.StatusCode(), Message: resp.Status()}
	}

	message := problem.Detail
	if message == "" {
		message = problem.Title
	}

	return &APIError{StatusCode: resp.StatusCode(), Message: message}
}
