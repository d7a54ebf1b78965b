package api

import (
	"io"
	"net/http"
	"sync"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var invalidInputOnce sync.Once

// newRouter mounts the probe and metrics endpoints and a huma API configured by opts.
func newRouter(
	title, version string,
	readiness http.HandlerFunc,
	writeMetrics http.HandlerFunc,
	opts ...func(huma.API),
) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/liveness", func(http.ResponseWriter, *http.Request) {})
	mux.HandleFunc("/readiness", readiness)
	mux.HandleFunc("/metrics", writeMetrics)

	api := humago.New(mux, humaConfig(title, version))
	for _, opt := range opts {
		opt(api)
	}

	return mux
}

// humaConfig is huma's default configuration with JSON handled by json-iterator.
func humaConfig(title, version string) huma.Config {
	invalidInputOnce.Do(answerInvalidInputWithBadRequest)

	config := huma.DefaultConfig(title, version)

	format := huma.Format{
		Marshal: func(w io.Writer, v any) error {
			return json.NewEncoder(w).Encode(v)
		},
		Unmarshal: json.Unmarshal,
	}
	config.Formats = map[string]huma.Format{
		"application/json": format,
		"json":             format,
	}

	return config
}

// answerInvalidInputWithBadRequest replaces huma's 422 for request bodies and parameters that fail
// schema validation with 400, the status every other rejected input gets.
func answerInvalidInputWithBadRequest() {
	newError := huma.NewErrorWithContext
	huma.NewErrorWithContext = func(ctx huma.Context, status int, msg string, errs ...error) huma.StatusError {
		if status == http.StatusUnprocessableEntity {
			status = http.StatusBadRequest
		}
		return newError(ctx, status, msg, errs...)
	}
}

func optUseMiddleware(middlewares ...func(huma.Context, func(huma.Context))) func(huma.API) {
	return func(api huma.API) { api.UseMiddleware(middlewares...) }
}

func optGroup(prefix string, opts ...func(huma.API)) func(huma.API) {
	return func(api huma.API) {
		group := huma.NewGroup(api, prefix)
		for _, opt := range opts {
			opt(group)
		}
	}
}

func optAutoRegister(server any) func(huma.API) {
	return func(api huma.API) { huma.AutoRegister(api, server) }
}
