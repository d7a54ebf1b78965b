package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/AntonStoeckl/library-desk-go/library"
	v1 "github.com/AntonStoeckl/library-desk-go/service/api/v1"
	"github.com/AntonStoeckl/library-desk-go/service/features/command/addbook"
	"github.com/AntonStoeckl/library-desk-go/service/features/command/removebook"
	"github.com/AntonStoeckl/library-desk-go/service/features/query/catalog"
	"github.com/AntonStoeckl/library-desk-go/service/shared/shell"
)

// Books serves the catalog endpoints.
type Books struct {
	Catalog      shell.QueryHandler[catalog.Query, catalog.BookCatalog]
	Add          shell.CommandHandler[addbook.Command]
	Remove       shell.CommandHandler[removebook.Command]
	ErrorHandler func(context.Context, error)
}

func (h *Books) RegisterList(api huma.API) { // called by [huma.AutoRegister]
	huma.Register(api, huma.Operation{
		OperationID: "list-books",
		Method:      http.MethodGet,
		Path:        "",
		Summary:     "List the catalog",
		Errors:      []int{http.StatusInternalServerError},
	}, handlerWithErrorHandler(h.list, h.ErrorHandler))
}

type BooksListOutput struct {
	Body []v1.Book
}

func (h *Books) list(ctx context.Context, input *struct {
	Eventual bool `query:"eventual" doc:"allow reading from a replica"`
}) (*BooksListOutput, error) {
	result, err := h.Catalog.Handle(ctx, catalog.BuildQuery(input.Eventual))
	if err != nil {
		return nil, statusError(err)
	}

	body := make([]v1.Book, 0, result.Size())
	for _, book := range result.Books {
		body = append(body, bookModel(book))
	}

	return &BooksListOutput{Body: body}, nil
}

func bookModel(book library.Book) v1.Book {
	return v1.Book{
		ID:                book.ID,
		Title:             book.Title,
		Author:            book.Author,
		CoverType:         string(book.CoverType),
		PublicationYear:   book.PublicationYear,
		Genre:             book.Genre,
		PageCount:         book.PageCount,
		ConditionState:    string(book.ConditionState),
		Status:            string(book.Status),
		BorrowedDate:      book.BorrowedDate,
		BorrowerPhone:     book.BorrowerPhone,
		BorrowerFirstName: book.BorrowerFirstName,
		BorrowerLastName:  book.BorrowerLastName,
	}
}

func (h *Books) RegisterAdd(api huma.API) { // called by [huma.AutoRegister]
	huma.Register(api, huma.Operation{
		OperationID: "add-book",
		Method:      http.MethodPost,
		Path:        "",
		Summary:     "Add a book to the catalog",
		Errors:      []int{http.StatusBadRequest, http.StatusInternalServerError},
	}, handlerWithErrorHandler(h.add, h.ErrorHandler))
}

type BooksAddOutput struct {
	Body v1.BookCreatedResponse
}

func (h *Books) add(ctx context.Context, input *struct {
	Body v1.AddBookRequest
}) (*BooksAddOutput, error) {
	command, err := addbook.BuildCommand(
		input.Body.Title,
		input.Body.Author,
		library.CoverType(input.Body.CoverType),
		input.Body.PublicationYear,
		input.Body.Genre,
		input.Body.PageCount,
		library.ConditionState(input.Body.ConditionState),
		library.BookStatus(input.Body.Status),
	)
	if err != nil {
		return nil, statusError(err)
	}

	result, err := h.Add.Handle(ctx, command)
	if err != nil {
		return nil, statusError(err)
	}

	return &BooksAddOutput{Body: v1.BookCreatedResponse{Message: "book added", ID: result.BookID}}, nil
}

func (h *Books) RegisterDel(api huma.API) { // called by [huma.AutoRegister]
	huma.Register(api, huma.Operation{
		OperationID: "delete-book",
		Method:      http.MethodDelete,
		Path:        "/{id}",
		Summary:     "Remove a book from the catalog",
		Errors:      []int{http.StatusBadRequest, http.StatusNotFound, http.StatusInternalServerError},
	}, handlerWithErrorHandler(h.del, h.ErrorHandler))
}

type MessageOutput struct {
	Body v1.MessageResponse
}

func (h *Books) del(ctx context.Context, input *struct {
	ID library.BookID `path:"id" doc:"ID of the book to delete"`
}) (*MessageOutput, error) {
	command, err := removebook.BuildCommand(input.ID)
	if err != nil {
		return nil, statusError(err)
	}

	if _, err := h.Remove.Handle(ctx, command); err != nil {
		return nil, statusError(err)
	}

	return &MessageOutput{Body: v1.MessageResponse{Message: "book deleted"}}, nil
}
