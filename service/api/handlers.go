package api

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"

	"github.com/AntonStoeckl/library-desk-go/library"
)

type handler[I, O any] = func(context.Context, *I) (*O, error)

func handlerWithErrorHandler[I, O any](handler handler[I, O], do func(context.Context, error)) handler[I, O] {
	if do == nil {
		return handler
	}

	return func(ctx context.Context, i *I) (*O, error) {
		o, err := handler(ctx, i)
		if err != nil {
			do(ctx, err)
		}
		return o, err
	}
}

// statusError maps a library error to the HTTP status the clients expect.
// An unavailable book answers 400, not 409, which existing clients rely on.
func statusError(err error) error {
	switch {
	case errors.Is(err, library.ErrValidation),
		errors.Is(err, library.ErrBookNotAvailable):
		return huma.Error400BadRequest(err.Error(), err)

	case errors.Is(err, library.ErrNotFound):
		return huma.Error404NotFound(err.Error(), err)

	case errors.Is(err, library.ErrConflict):
		return huma.Error409Conflict(err.Error(), err)

	default:
		return huma.Error500InternalServerError(err.Error(), err)
	}
}
