package desk

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	v1 "github.com/AntonStoeckl/library-desk-go/service/api/v1"
)

// ErrBusy is returned when a mutating action is started while another one is still running.
var ErrBusy = errors.New("another action is in progress")

// API is the part of the REST API a Desk uses. *Client satisfies it.
type API interface {
	ListBooks(ctx context.Context) ([]v1.Book, error)
	AddBook(ctx context.Context, book v1.AddBookRequest) (int64, error)
	DeleteBook(ctx context.Context, id int64) error
	ListReaders(ctx context.Context) ([]v1.Reader, error)
	RegisterReader(ctx context.Context, reader v1.RegisterReaderRequest) error
	Borrow(ctx context.Context, bookID int64, phone string) error
	Return(ctx context.Context, bookID int64) error
}

// NotificationKind tells success notifications from failures.
type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
)

// Notification is a transient message for the user about the outcome of an action.
type Notification struct {
	Kind    NotificationKind
	Message string
}

// Desk holds the client-side state of the library desk.
type Desk struct {
	api    API
	notify func(Notification)

	busy atomic.Bool

	mu      sync.RWMutex
	books   []v1.Book
	readers []v1.Reader
}

// Option configures a Desk.
type Option func(*Desk)

// WithNotifier sets the function receiving notifications. It is called synchronously.
func WithNotifier(notify func(Notification)) Option {
	return func(d *Desk) { d.notify = notify }
}

// New creates an empty Desk. Call Refresh to load the state.
func New(api API, opts ...Option) *Desk {
	d := &Desk{
		api:     api,
		notify:  func(Notification) {},
		books:   []v1.Book{},
		readers: []v1.Reader{},
	}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Refresh fetches books and readers in parallel and replaces the local state.
// On failure the previous state is kept.
func (d *Desk) Refresh(ctx context.Context) error {
	var books []v1.Book
	var readers []v1.Reader

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		books, err = d.api.ListBooks(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		readers, err = d.api.ListReaders(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		err = fmt.Errorf("could not load data: %w", err)
		d.notify(Notification{Kind: NotificationError, Message: err.Error()})
		return err
	}

	d.mu.Lock()
	d.books, d.readers = books, readers
	d.mu.Unlock()

	return nil
}

// AddBook validates the form, adds the book and refreshes.
func (d *Desk) AddBook(ctx context.Context, form BookForm) (int64, error) {
	var id int64

	err := d.mutate(ctx, func(ctx context.Context) (string, error) {
		if err := form.Validate(); err != nil {
			return "", err
		}

		var err error
		if id, err = d.api.AddBook(ctx, form.Request()); err != nil {
			return "", err
		}

		return fmt.Sprintf("book %q added", form.Title), nil
	})

	return id, err
}

// DeleteBook deletes a book. The row leaves the local state as soon as the server confirms.
func (d *Desk) DeleteBook(ctx context.Context, id int64) error {
	return d.mutate(ctx, func(ctx context.Context) (string, error) {
		if err := d.api.DeleteBook(ctx, id); err != nil {
			return "", err
		}

		d.mu.Lock()
		d.books = slices.DeleteFunc(slices.Clone(d.books), func(b v1.Book) bool { return b.ID == id })
		d.mu.Unlock()

		return "book deleted", nil
	})
}

// RegisterReader validates the form, registers the reader and refreshes.
func (d *Desk) RegisterReader(ctx context.Context, form ReaderForm) error {
	return d.mutate(ctx, func(ctx context.Context) (string, error) {
		if err := form.Validate(); err != nil {
			return "", err
		}

		if err := d.api.RegisterReader(ctx, form.Request()); err != nil {
			return "", err
		}

		return fmt.Sprintf("reader %s registered", form.LastName), nil
	})
}

// Borrow lends a book to the reader with the given phone and refreshes.
func (d *Desk) Borrow(ctx context.Context, bookID int64, phone string) error {
	return d.mutate(ctx, func(ctx context.Context) (string, error) {
		if err := ValidatePhone(phone); err != nil {
			return "", err
		}

		if err := d.api.Borrow(ctx, bookID, phone); err != nil {
			return "", err
		}

		return "book lent", nil
	})
}

// Return takes a book back and refreshes.
func (d *Desk) Return(ctx context.Context, bookID int64) error {
	return d.mutate(ctx, func(ctx context.Context) (string, error) {
		if err := d.api.Return(ctx, bookID); err != nil {
			return "", err
		}

		return "book returned", nil
	})
}

// mutate runs action behind the in-flight flag, notifies about the outcome and, on success,
// re-fetches the state. A failed action leaves the local state untouched. Once the server has
// confirmed the action it counts as done, even if the re-fetch fails; Refresh reports that itself.
func (d *Desk) mutate(ctx context.Context, action func(context.Context) (string, error)) error {
	if !d.busy.CompareAndSwap(false, true) {
		return ErrBusy
	}
	defer d.busy.Store(false)

	message, err := action(ctx)
	if err != nil {
		d.notify(Notification{Kind: NotificationError, Message: err.Error()})
		return err
	}

	d.notify(Notification{Kind: NotificationSuccess, Message: message})
	_ = d.Refresh(ctx)

	return nil
}

// Busy reports whether a mutating action is in flight.
func (d *Desk) Busy() bool {
	return d.busy.Load()
}

// Books returns a copy of the mirrored catalog in server order.
func (d *Desk) Books() []v1.Book {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return slices.Clone(d.books)
}

// Readers returns a copy of the mirrored readers in server order.
func (d *Desk) Readers() []v1.Reader {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return slices.Clone(d.readers)
}

// View returns the catalog filtered by query and sorted by config.
func (d *Desk) View(query string, config SortConfig) []v1.Book {
	return View(d.Books(), query, config)
}

// MatchReaders suggests mirrored readers for a partially typed borrower phone.
func (d *Desk) MatchReaders(input string) []v1.Reader {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return MatchReaders(d.readers, input)
}

// Stats returns the aggregate counters of the current state.
func (d *Desk) Stats() Stats {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return ComputeStats(d.books, d.readers)
}
