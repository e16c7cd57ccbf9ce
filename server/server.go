// Copyright 2026 Seekwell Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package server provides the HTTP API for wares.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/seekwell/wares/captcha"
	"github.com/seekwell/wares/core"
)

// ProductSearcher ranks products against a query.
// Implemented by search.Searcher.
type ProductSearcher interface {
	Search(ctx context.Context, query string, skip, limit int) ([]*core.Product, error)
}

// Server is the HTTP server for the wares API.
type Server struct {
	searcher ProductSearcher
	verifier captcha.Verifier
	logger   *slog.Logger
	server   *http.Server
	addr     string
}

// NewServer creates a server with the given dependencies.
func NewServer(searcher ProductSearcher, verifier captcha.Verifier, addr string) *Server {
	return &Server{
		searcher: searcher,
		verifier: verifier,
		logger:   slog.Default().With("component", "server"),
		addr:     addr,
	}
}

// Router builds the HTTP handler. Exposed for tests.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Post("/api/v1/search", s.handleSearch)
	r.Get("/health", s.handleHealth)

	return r
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:    s.addr,
		Handler: s.Router(),
	}
	s.logger.Info("starting server", "addr", s.addr)
	return s.server.ListenAndServe()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
