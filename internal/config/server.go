package config

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"

	appctx "github.com/syrilster/migrate-leaves-to-bamboohr/internal/context"
	"github.com/syrilster/migrate-leaves-to-bamboohr/internal/metrics"
)

const XRequestIDHeader = "X-Request-ID"

type Route struct {
	Path    string
	Method  string
	Handler http.HandlerFunc
}

// Server defines the server struct
type Server struct {
	router *mux.Router
}

type ServerConfigOption func(server *Server)

// WithMetrics records every matched route and serves the registry on /metrics.
func WithMetrics(m metrics.Metrics) ServerConfigOption {
	return func(s *Server) {
		s.router.Use(incomingMetrics(m))
		s.router.Handle("/metrics", m.ServePrometheus()).Methods(http.MethodGet)
	}
}

//NewServer creates a new server
func NewServer(options ...ServerConfigOption) *Server {
	s := &Server{
		router: mux.NewRouter().StrictSlash(true),
	}
	s.router.Use(setRequestID)

	for _, opt := range options {
		opt(s)
	}

	return s
}

func (s *Server) WithRoutes(basePath string, routes ...Route) *Server {
	sub := s.router.PathPrefix(basePath).Subrouter()
	for _, route := range routes {
		sub.HandleFunc(route.Path, route.Handler).Methods(route.Method)
		log.WithFields(map[string]interface{}{
			"method": route.Method,
			"path":   fmt.Sprintf("%s%s", basePath, route.Path),
		}).Infof("registered path")
	}
	return s
}

// Handler returns the router wrapped with CORS and panic recovery.
func (s *Server) Handler() http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedHeaders:   []string{"Access-Control-Allow-Origin", "Content-Type", "Origin", "Accept-Encoding", "Accept-Language", "Authorization"},
		ExposedHeaders:   []string{XRequestIDHeader},
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS", "DELETE"},
		AllowCredentials: true,
	})
	return handlers.RecoveryHandler()(c.Handler(s.router))
}

//Start the server on the defined port
func (s *Server) Start(addr string, port int) {
	panic(
		http.ListenAndServe(fmt.Sprintf("%s:%v", addr, port), s.Handler()),
	)
}

func setRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(XRequestIDHeader)
		if reqID == "" {
			reqID = uuid.New().String()
		}
		w.Header().Set(XRequestIDHeader, reqID)

		next.ServeHTTP(w, r.WithContext(appctx.WithRequestID(r.Context(), reqID)))
	})
}

// incomingMetrics relies on gorilla's logging handler to capture the status
// code; nothing is written to the access log itself.
func incomingMetrics(m metrics.Metrics) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return handlers.CustomLoggingHandler(io.Discard, next, func(_ io.Writer, params handlers.LogFormatterParams) {
			route := params.URL.Path
			if current := mux.CurrentRoute(params.Request); current != nil {
				if tpl, err := current.GetPathTemplate(); err == nil {
					route = tpl
				}
			}
			m.IncomingRequest(&metrics.RequestInfo{
				Method:   params.Request.Method,
				Route:    route,
				Status:   params.StatusCode,
				Duration: time.Since(params.TimeStamp),
			})
		})
	}
}
