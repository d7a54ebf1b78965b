package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"runtime"
	"time"

	"github.com/VictoriaMetrics/metrics"

	"github.com/AntonStoeckl/library-desk-go/service/features/command/addbook"
	"github.com/AntonStoeckl/library-desk-go/service/features/command/lendbooktoreader"
	"github.com/AntonStoeckl/library-desk-go/service/features/command/registerreader"
	"github.com/AntonStoeckl/library-desk-go/service/features/command/removebook"
	"github.com/AntonStoeckl/library-desk-go/service/features/command/returnbookfromreader"
	"github.com/AntonStoeckl/library-desk-go/service/features/query/catalog"
	"github.com/AntonStoeckl/library-desk-go/service/features/query/registeredreaders"
	"github.com/AntonStoeckl/library-desk-go/service/shared/shell"
	"github.com/AntonStoeckl/library-desk-go/service/shared/shell/observable"
)

const readinessTimeout = 2 * time.Second

type ServerOptions struct {
	Host              string        `short:"H" doc:"host to listen on"                    default:""`
	Port              string        `short:"p" doc:"port to listen on"                    default:"8888"`
	ReadHeaderTimeout time.Duration `          doc:"time allowed to read request headers" default:"15s"`
}

func NewServer(options *ServerOptions, handler http.Handler, logger *slog.Logger) *http.Server {
	return &http.Server{
		Addr:              options.Host + ":" + options.Port,
		ReadHeaderTimeout: options.ReadHeaderTimeout,
		Handler:           handler,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}
}

type RouterOptions struct {
	EndpointsPrefix string `doc:"mount endpoints at a prefix" default:"/api"`
}

// Store is everything the API needs from a library store.
// Both *postgresengine.Store and *inmemengine.Store satisfy it.
type Store interface {
	addbook.Store
	removebook.Store
	registerreader.Store
	lendbooktoreader.Store
	returnbookfromreader.Store
	catalog.Store
	registeredreaders.Store

	Ping(ctx context.Context) error
}

// NewRouter wires the feature handlers over store and returns the HTTP handler of the service.
// Request and handler metrics are registered in set; the store may report into the same set.
func NewRouter(
	options *RouterOptions,
	title string,
	version string,
	store Store,
	set *metrics.Set,
	collector shell.MetricsCollector,
	logger *slog.Logger,
) (http.Handler, error) {
	handlers, err := newHandlers(store, collector, logger, ctxlog{}.errorHandler(logger))
	if err != nil {
		return nil, err
	}

	buildinfoMetric := joinQuote("build_info{goversion=", runtime.Version(),
		",title=", title,
		",version=", version,
		"} 1\n")

	return newRouter(title, version,
		readiness(store),
		func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, buildinfoMetric)
			set.WritePrometheus(w)
			metrics.WriteProcessMetrics(w)
		},
		optUseMiddleware(
			requestIDMiddleware,
			ctxlog{}.loggerMiddleware(logger),
			meterRequests(set),
			ctxlog{}.recoverMiddleware(logger),
		),
		optGroup(options.EndpointsPrefix,
			optGroup("/books", optAutoRegister(handlers.books)),
			optGroup("/readers", optAutoRegister(handlers.readers)),
			optAutoRegister(handlers.lending),
		),
	), nil
}

func readiness(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		if err := store.Ping(ctx); err != nil {
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
		}
	}
}

type handlers struct {
	books   *Books
	readers *Readers
	lending *Lending
}

// newHandlers builds every feature handler and wraps it with logging and metrics.
func newHandlers(
	store Store,
	collector shell.MetricsCollector,
	logger *slog.Logger,
	errorHandler func(context.Context, error),
) (handlers, error) {
	var err error
	h := handlers{
		books:   &Books{ErrorHandler: errorHandler},
		readers: &Readers{ErrorHandler: errorHandler},
		lending: &Lending{ErrorHandler: errorHandler},
	}

	if h.books.Catalog, err = observeQuery[catalog.Query, catalog.BookCatalog](catalog.NewQueryHandler(store), collector, logger); err != nil {
		return handlers{}, err
	}
	if h.books.Add, err = observeCommand[addbook.Command](addbook.NewCommandHandler(store), collector, logger); err != nil {
		return handlers{}, err
	}
	if h.books.Remove, err = observeCommand[removebook.Command](removebook.NewCommandHandler(store), collector, logger); err != nil {
		return handlers{}, err
	}
	if h.readers.Registered, err = observeQuery[registeredreaders.Query, registeredreaders.RegisteredReaders](registeredreaders.NewQueryHandler(store), collector, logger); err != nil {
		return handlers{}, err
	}
	if h.readers.Register, err = observeCommand[registerreader.Command](registerreader.NewCommandHandler(store), collector, logger); err != nil {
		return handlers{}, err
	}
	if h.lending.Lend, err = observeCommand[lendbooktoreader.Command](lendbooktoreader.NewCommandHandler(store), collector, logger); err != nil {
		return handlers{}, err
	}
	if h.lending.Return, err = observeCommand[returnbookfromreader.Command](returnbookfromreader.NewCommandHandler(store), collector, logger); err != nil {
		return handlers{}, err
	}

	return h, nil
}

func observeCommand[C shell.Command](
	core shell.CommandHandler[C],
	collector shell.MetricsCollector,
	logger *slog.Logger,
) (shell.CommandHandler[C], error) {
	wrapper, err := observable.NewCommandWrapper(core,
		observable.WithCommandMetrics[C](collector),
		observable.WithCommandContextualLogging[C](logger),
	)
	if err != nil {
		return nil, err
	}

	return wrapper, nil
}

func observeQuery[Q shell.Query, R shell.QueryResult](
	core shell.QueryHandler[Q, R],
	collector shell.MetricsCollector,
	logger *slog.Logger,
) (shell.QueryHandler[Q, R], error) {
	wrapper, err := observable.NewQueryWrapper(core,
		observable.WithQueryMetrics[Q, R](collector),
		observable.WithQueryContextualLogging[Q, R](logger),
	)
	if err != nil {
		return nil, err
	}

	return wrapper, nil
}
