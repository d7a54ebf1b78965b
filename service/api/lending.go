package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	v1 "github.com/AntonStoeckl/library-desk-go/service/api/v1"
	"github.com/AntonStoeckl/library-desk-go/service/features/command/lendbooktoreader"
	"github.com/AntonStoeckl/library-desk-go/service/features/command/returnbookfromreader"
	"github.com/AntonStoeckl/library-desk-go/service/shared/shell"
)

// Lending serves the borrow and return endpoints.
type Lending struct {
	Lend         shell.CommandHandler[lendbooktoreader.Command]
	Return       shell.CommandHandler[returnbookfromreader.Command]
	ErrorHandler func(context.Context, error)
}

func (h *Lending) RegisterBorrow(api huma.API) { // called by [huma.AutoRegister]
	huma.Register(api, huma.Operation{
		OperationID: "borrow-book",
		Method:      http.MethodPost,
		Path:        "/borrow",
		Summary:     "Lend a book to a registered reader",
		Errors:      []int{http.StatusBadRequest, http.StatusNotFound, http.StatusInternalServerError},
	}, handlerWithErrorHandler(h.borrow, h.ErrorHandler))
}

func (h *Lending) borrow(ctx context.Context, input *struct {
	Body v1.BorrowRequest
}) (*MessageOutput, error) {
	command, err := lendbooktoreader.BuildCommand(input.Body.BookID, input.Body.Phone)
	if err != nil {
		return nil, statusError(err)
	}

	if _, err := h.Lend.Handle(ctx, command); err != nil {
		return nil, statusError(err)
	}

	return &MessageOutput{Body: v1.MessageResponse{Message: "book lent"}}, nil
}

func (h *Lending) RegisterReturn(api huma.API) { // called by [huma.AutoRegister]
	huma.Register(api, huma.Operation{
		OperationID: "return-book",
		Method:      http.MethodPost,
		Path:        "/return",
		Summary:     "Take a book back",
		Errors:      []int{http.StatusBadRequest, http.StatusInternalServerError},
	}, handlerWithErrorHandler(h.giveBack, h.ErrorHandler))
}

func (h *Lending) giveBack(ctx context.Context, input *struct {
	Body v1.ReturnRequest
}) (*MessageOutput, error) {
	command, err := returnbookfromreader.BuildCommand(input.Body.BookID)
	if err != nil {
		return nil, statusError(err)
	}

	if _, err := h.Return.Handle(ctx, command); err != nil {
		return nil, statusError(err)
	}

	return &MessageOutput{Body: v1.MessageResponse{Message: "book returned"}}, nil
}
