package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/AntonStoeckl/library-circulation-go/library/features/command/addbooktocatalog"
	"github.com/AntonStoeckl/library-circulation-go/library/features/command/createborrow"
	"github.com/AntonStoeckl/library-circulation-go/library/features/command/createtag"
	"github.com/AntonStoeckl/library-circulation-go/library/features/command/markdelaypenaltypaid"
	"github.com/AntonStoeckl/library-circulation-go/library/features/command/recorddelaypenalty"
	"github.com/AntonStoeckl/library-circulation-go/library/features/command/startborrow"
	"github.com/AntonStoeckl/library-circulation-go/library/features/command/terminateborrow"
	"github.com/AntonStoeckl/library-circulation-go/library/features/query/bookavailability"
	"github.com/AntonStoeckl/library-circulation-go/library/features/query/borrowdetails"
	"github.com/AntonStoeckl/library-circulation-go/library/features/query/borrowlist"
	"github.com/AntonStoeckl/library-circulation-go/library/features/query/catalogsearch"
	"github.com/AntonStoeckl/library-circulation-go/library/features/query/delaypenalties"
	"github.com/AntonStoeckl/library-circulation-go/library/features/query/relatedbooks"
	"github.com/AntonStoeckl/library-circulation-go/library/shared/shell"
)

// Handlers are the use cases served by the API, usually wrapped with observable.CommandWrapper and observable.QueryWrapper.
type Handlers struct {
	CreateTag            shell.CommandHandler[createtag.Command]
	AddBookToCatalog     shell.CommandHandler[addbooktocatalog.Command]
	CreateBorrow         shell.CommandHandler[createborrow.Command]
	StartBorrow          shell.CommandHandler[startborrow.Command]
	TerminateBorrow      shell.CommandHandler[terminateborrow.Command]
	RecordDelayPenalty   shell.CommandHandler[recorddelaypenalty.Command]
	MarkDelayPenaltyPaid shell.CommandHandler[markdelaypenaltypaid.Command]

	BookAvailability shell.QueryHandler[bookavailability.Query, bookavailability.BookAvailability]
	RelatedBooks     shell.QueryHandler[relatedbooks.Query, relatedbooks.RelatedBooks]
	CatalogSearch    shell.QueryHandler[catalogsearch.Query, catalogsearch.CatalogSearchResult]
	BorrowDetails    shell.QueryHandler[borrowdetails.Query, borrowdetails.BorrowDetails]
	BorrowList       shell.QueryHandler[borrowlist.Query, borrowlist.BorrowList]
	DelayPenalties   shell.QueryHandler[delaypenalties.Query, delaypenalties.DelayPenalties]
}

// Server translates HTTP requests into commands and queries.
type Server struct {
	handlers Handlers
	now      func() time.Time
	newID    func() (uuid.UUID, error)
	logger   *slog.Logger
}

// Option defines a functional option for configuring Server.
type Option func(*Server)

// WithClock sets the clock that provides "now" for commands and for the out-days of open borrows.
func WithClock(now func() time.Time) Option {
	return func(s *Server) {
		s.now = now
	}
}

// WithIDGenerator sets the generator for the IDs of created tags, books and borrows.
func WithIDGenerator(newID func() (uuid.UUID, error)) Option {
	return func(s *Server) {
		s.newID = newID
	}
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates a Server with time.Now, uuid.NewV7 and slog.Default unless overridden by options.
func NewServer(handlers Handlers, options ...Option) *Server {
	s := &Server{
		handlers: handlers,
		now:      time.Now,
		newID:    uuid.NewV7,
		logger:   slog.Default(),
	}

	for _, option := range options {
		option(s)
	}

	return s
}

// Router returns the routes of the API.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.logRequests)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/").Subrouter()
	api.Use(s.requireActor)

	api.HandleFunc("/tags", s.createTag).Methods(http.MethodPost)
	api.HandleFunc("/books", s.addBookToCatalog).Methods(http.MethodPost)
	api.HandleFunc("/books", s.searchCatalog).Methods(http.MethodGet)
	api.HandleFunc("/books/{id}/availability", s.bookAvailability).Methods(http.MethodGet)
	api.HandleFunc("/books/{id}/related", s.relatedBooks).Methods(http.MethodGet)

	api.HandleFunc("/borrows", s.createBorrow).Methods(http.MethodPost)
	api.HandleFunc("/borrows", s.listBorrows).Methods(http.MethodGet)
	api.HandleFunc("/borrows/{id}", s.borrowDetails).Methods(http.MethodGet)
	api.HandleFunc("/borrows/{id}/start", s.startBorrow).Methods(http.MethodPost)
	api.HandleFunc("/borrows/{id}/terminate", s.terminateBorrow).Methods(http.MethodPost)
	api.HandleFunc("/borrows/{id}/penalty", s.recordDelayPenalty).Methods(http.MethodPost)

	api.HandleFunc("/penalties", s.listDelayPenalties).Methods(http.MethodGet)
	api.HandleFunc("/penalties/{id}/pay", s.markDelayPenaltyPaid).Methods(http.MethodPost)

	return r
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(status int) {
	sr.status = status
	sr.ResponseWriter.WriteHeader(status)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(recorder, r)

		s.logger.InfoContext(r.Context(), "http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", recorder.status,
			"duration_ms", float64(time.Since(start).Microseconds())/1000,
		)
	})
}
