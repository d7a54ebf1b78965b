package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	v1 "github.com/AntonStoeckl/library-desk-go/service/api/v1"
	"github.com/AntonStoeckl/library-desk-go/service/features/command/registerreader"
	"github.com/AntonStoeckl/library-desk-go/service/features/query/registeredreaders"
	"github.com/AntonStoeckl/library-desk-go/service/shared/shell"
)

// Readers serves the reader registry endpoints.
type Readers struct {
	Registered   shell.QueryHandler[registeredreaders.Query, registeredreaders.RegisteredReaders]
	Register     shell.CommandHandler[registerreader.Command]
	ErrorHandler func(context.Context, error)
}

func (h *Readers) RegisterList(api huma.API) { // called by [huma.AutoRegister]
	huma.Register(api, huma.Operation{
		OperationID: "list-readers",
		Method:      http.MethodGet,
		Path:        "",
		Summary:     "List registered readers",
		Errors:      []int{http.StatusInternalServerError},
	}, handlerWithErrorHandler(h.list, h.ErrorHandler))
}

type ReadersListOutput struct {
	Body []v1.Reader
}

func (h *Readers) list(ctx context.Context, input *struct {
	Eventual bool `query:"eventual" doc:"allow reading from a replica"`
}) (*ReadersListOutput, error) {
	result, err := h.Registered.Handle(ctx, registeredreaders.BuildQuery(input.Eventual))
	if err != nil {
		return nil, statusError(err)
	}

	body := make([]v1.Reader, 0, result.Size())
	for _, reader := range result.Readers {
		body = append(body, v1.Reader{
			Phone:            reader.Phone,
			FirstName:        reader.FirstName,
			LastName:         reader.LastName,
			BirthDate:        reader.BirthDate,
			RegistrationDate: reader.RegistrationDate,
		})
	}

	return &ReadersListOutput{Body: body}, nil
}

func (h *Readers) RegisterAdd(api huma.API) { // called by [huma.AutoRegister]
	huma.Register(api, huma.Operation{
		OperationID: "register-reader",
		Method:      http.MethodPost,
		Path:        "",
		Summary:     "Register a reader",
		Errors:      []int{http.StatusBadRequest, http.StatusConflict, http.StatusInternalServerError},
	}, handlerWithErrorHandler(h.add, h.ErrorHandler))
}

type ReadersAddOutput struct {
	Body v1.ReaderRegisteredResponse
}

func (h *Readers) add(ctx context.Context, input *struct {
	Body v1.RegisterReaderRequest
}) (*ReadersAddOutput, error) {
	command, err := registerreader.BuildCommand(input.Body.Phone, input.Body.FirstName, input.Body.LastName, input.Body.DOB)
	if err != nil {
		return nil, statusError(err)
	}

	if _, err := h.Register.Handle(ctx, command); err != nil {
		return nil, statusError(err)
	}

	return &ReadersAddOutput{Body: v1.ReaderRegisteredResponse{Message: "reader registered", ID: command.Reader.Phone}}, nil
}
