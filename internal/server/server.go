// Package server exposes an artifact store as a PEP 503 simple index.
//
// The served pages use the same anchor-per-artifact layout the resolver
// scrapes, so a wheelhouse store can act as the index for another
// wheelhouse instance (or for pip) on an air-gapped network.
package server

import (
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/wheelhouse-py/wheelhouse/pkg/requirements"
	"github.com/wheelhouse-py/wheelhouse/pkg/store"
	"github.com/wheelhouse-py/wheelhouse/pkg/wheel"
)

// Server serves the contents of a store over HTTP.
type Server struct {
	store  *store.Store
	logger *log.Logger
}

// New creates a Server backed by st.
func New(st *store.Store, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{store: st, logger: logger}
}

// Router builds the HTTP routes:
//
//	GET /simple/           project listing
//	GET /simple/{name}/    per-project file listing
//	GET /wheels/{filename} artifact payload
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/simple/", s.handleProjects)
	r.Get("/simple/{name}/", s.handleListing)
	r.Get("/wheels/{filename}", s.handleArtifact)
	return r
}

// ListenAndServe serves the router on addr until the listener fails.
func (s *Server) ListenAndServe(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.logger.Info("serving simple index", "addr", addr, "store", s.store.Dir())
	return srv.ListenAndServe()
}

// handleProjects lists every distribution present in the store, one anchor
// per project, in sorted order.
func (s *Server) handleProjects(w http.ResponseWriter, r *http.Request) {
	filenames, err := s.store.List()
	if err != nil {
		http.Error(w, "store unavailable", http.StatusInternalServerError)
		return
	}

	seen := map[string]bool{}
	var projects []string
	for _, fn := range filenames {
		name := wheel.Distribution(fn)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		projects = append(projects, name)
	}
	sort.Strings(projects)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, "<!DOCTYPE html>\n<html>\n<body>\n")
	for _, name := range projects {
		fmt.Fprintf(w, "<a href=\"/simple/%s/\">%s</a>\n", name, name)
	}
	fmt.Fprint(w, "</body>\n</html>\n")
}

// handleListing lists the stored wheels for one project.
func (s *Server) handleListing(w http.ResponseWriter, r *http.Request) {
	name := requirements.Normalize(chi.URLParam(r, "name"))

	filenames, err := s.store.List()
	if err != nil {
		http.Error(w, "store unavailable", http.StatusInternalServerError)
		return
	}

	var matches []string
	for _, fn := range filenames {
		if wheel.Distribution(fn) == name {
			matches = append(matches, fn)
		}
	}
	if len(matches) == 0 {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, "<!DOCTYPE html>\n<html>\n<body>\n")
	for _, fn := range matches {
		fmt.Fprintf(w, "<a href=\"/wheels/%s\">%s</a>\n", fn, fn)
	}
	fmt.Fprint(w, "</body>\n</html>\n")
}

// handleArtifact streams a stored wheel.
func (s *Server) handleArtifact(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")

	data, err := s.store.Open(filename)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Length", fmt.Sprint(len(data)))
	w.Write(data)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"elapsed", time.Since(start),
		)
	})
}
