package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/seekwell/wares/captcha"
	"github.com/seekwell/wares/core"
	"github.com/seekwell/wares/search"
)

// searchRequest is the body of POST /api/v1/search.
type searchRequest struct {
	Query string `json:"query"`
	Token string `json:"token"`
	Skip  int    `json:"skip"`
	Limit int    `json:"limit"`
}

// searchResponse wraps the ranked products.
type searchResponse struct {
	Products []*core.Product `json:"products"`
	Count    int             `json:"count"`
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(req.Query) == "" {
		s.respondError(w, http.StatusBadRequest, "query is required")
		return
	}
	if req.Token == "" {
		s.respondError(w, http.StatusBadRequest, "token is required")
		return
	}

	// The ranker is never reached on an unverified request
	if err := s.verifier.Verify(r.Context(), req.Token); err != nil {
		s.logger.Warn("captcha verification failed", "err", err)
		s.respondError(w, http.StatusForbidden, captcha.ErrVerificationFailed.Error())
		return
	}

	products, err := s.searcher.Search(r.Context(), req.Query, req.Skip, req.Limit)
	if err != nil {
		// A negative window is the client's mistake, not a server failure
		if errors.Is(err, search.ErrInvalidSkip) || errors.Is(err, search.ErrInvalidLimit) {
			s.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.logger.Error("search failed", "query", req.Query, "err", err)
		s.respondError(w, http.StatusInternalServerError, "search failed")
		return
	}

	s.respondJSON(w, http.StatusOK, searchResponse{
		Products: products,
		Count:    len(products),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
