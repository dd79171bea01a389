package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/hoshii/erabu/internal/config"
	"github.com/hoshii/erabu/internal/digest"
	"github.com/hoshii/erabu/internal/models"
)

// timeNow is a clock hook for deterministic digest tests.
var timeNow = time.Now

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req models.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	s.logger.Debug("search request",
		zap.String("query", req.Query),
		zap.String("location", req.Location),
		zap.Int("count", req.Count))

	response, err := s.engine.Search(r.Context(), &req)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, response)
}

func (s *Server) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, s.store.Current().Search)
}

func (s *Server) handleUpdateConfig(w http.ResponseWriter, r *http.Request) {
	var updates map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := s.store.Apply(updates)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to update configuration: %v", err))
		return
	}

	if s.configPath != "" {
		if err := config.Save(s.configPath, updated); err != nil {
			s.logger.Warn("config update applied but not persisted", zap.Error(err))
		}
	}
	s.logger.Info("config updated", zap.Any("fields", updates))

	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Configuration updated successfully",
		"config":  updated.Search,
	})
}

// digestRequest asks for a focused search rendered as an email draft.
type digestRequest struct {
	Query     string `json:"query"`
	Count     int    `json:"count,omitempty"`
	Recipient string `json:"recipient,omitempty"`
	Subject   string `json:"subject,omitempty"`
}

func (s *Server) handleDigest(w http.ResponseWriter, r *http.Request) {
	var req digestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Query == "" {
		req.Query = "AI automation trends"
	}
	if req.Count == 0 {
		req.Count = 5
	}

	// Steer the search toward automation content, then keep only recent items.
	focused := &models.Request{
		Query: req.Query + " AI automation artificial intelligence workflow tools",
		Count: req.Count,
	}
	response, err := s.engine.Search(r.Context(), focused)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	recent := digest.FilterRecent(response.Results, digest.RecentContentWindow, timeNow())
	if len(recent) > req.Count {
		recent = recent[:req.Count]
	}
	response.Results = recent
	response.Count = len(recent)

	draft := digest.EmailDraft(recent, req.Recipient, req.Subject)

	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"search_results": response,
		"email_draft":    draft,
		"recipient":      firstNonEmpty(req.Recipient, digest.DefaultRecipient),
		"message":        fmt.Sprintf("Daily digest generated with %d items", len(recent)),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("response encode failed", zap.Error(err))
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
