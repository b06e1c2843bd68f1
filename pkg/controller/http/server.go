package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/secmon-lab/execdiag/pkg/usecase"
	"github.com/secmon-lab/execdiag/pkg/utils/logging"
)

// defaultMaxBodySize bounds every request body
const defaultMaxBodySize = 1 << 20

type Server struct {
	router      *chi.Mux
	uc          *usecase.UseCases
	corsOrigin  string
	maxBodySize int64
}

type Options func(*Server)

// WithCORSOrigin sets the Access-Control-Allow-Origin value of /api routes
func WithCORSOrigin(origin string) Options {
	return func(s *Server) {
		s.corsOrigin = origin
	}
}

// WithMaxBodySize limits the size of request bodies
func WithMaxBodySize(n int64) Options {
	return func(s *Server) {
		s.maxBodySize = n
	}
}

func New(uc *usecase.UseCases, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router:      r,
		uc:          uc,
		corsOrigin:  "*",
		maxBodySize: defaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(requestLogger)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		r.Use(cors(s.corsOrigin))

		r.Get("/catalog", s.catalogHandler)

		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", s.startSessionHandler)
			r.Route("/{sessionID}", func(r chi.Router) {
				r.Get("/", s.getSessionHandler)
				r.Put("/contact", s.contactHandler)
				r.Put("/role", s.roleHandler)
				r.Put("/answers/{questionID}", s.answerHandler)
				r.Post("/advance", s.advanceHandler)
				r.Post("/retreat", s.retreatHandler)
				r.Get("/scores", s.scoresHandler)
				r.Get("/report", s.sessionReportHandler)
			})
		})

		r.Post("/report", s.answerSheetReportHandler)
		r.Post("/submit-questionnaire", s.submitHandler)
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// requestLogger puts a logger tagged with the request ID into the request context
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := logging.Default().With("request_id", middleware.GetReqID(r.Context()))
		ctx := logging.With(r.Context(), logger)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.From(r.Context()).Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}

// cors allows cross-origin calls to the API
func cors(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
			h.Set("Access-Control-Allow-Headers", "Content-Type")
			h.Set("Access-Control-Expose-Headers", "Content-Disposition")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
