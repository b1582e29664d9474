package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/growth-audit/internal/db"
	"github.com/jonathan/growth-audit/internal/ingestion"
	"github.com/jonathan/growth-audit/internal/schemas"
	"github.com/jonathan/growth-audit/internal/types"
	embedded "github.com/jonathan/growth-audit/schemas"
)

const healthTimeout = 2 * time.Second

// decodeBody reads a JSON request body, checks it with validate and decodes
// it into v.
func decodeBody(w http.ResponseWriter, r *http.Request, v any, validate func([]byte) error) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	data, err := io.ReadAll(r.Body)
	if err != nil {
		return &ErrValidation{Field: "body", Message: "failed to read body: " + err.Error()}
	}
	if !json.Valid(data) {
		return &ErrValidation{Field: "body", Message: "invalid JSON"}
	}
	if err := validate(data); err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return &ErrValidation{Field: "body", Message: "invalid JSON: " + err.Error()}
	}
	return nil
}

func validateAuditRequest(data []byte) error {
	return schemas.ValidateEmbedded(embedded.AuditRequest, data)
}

// validateCompareRequest checks both sides of a comparison against the
// audit request schema, prefixing field paths with the side's name.
func validateCompareRequest(data []byte) error {
	var sides struct {
		Yours  json.RawMessage `json:"yours"`
		Theirs json.RawMessage `json:"theirs"`
	}
	if err := json.Unmarshal(data, &sides); err != nil {
		return &ErrValidation{Field: "body", Message: "must be an object with yours and theirs"}
	}

	for _, side := range []struct {
		name string
		raw  json.RawMessage
	}{{"yours", sides.Yours}, {"theirs", sides.Theirs}} {
		if len(side.raw) == 0 || string(side.raw) == "null" {
			return &ErrValidation{Field: side.name, Message: "required"}
		}
		err := validateAuditRequest(side.raw)
		var schemaErr *schemas.ValidationError
		if errors.As(err, &schemaErr) {
			for i := range schemaErr.Errors {
				schemaErr.Errors[i].Field = side.name + "." + schemaErr.Errors[i].Field
			}
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// handleAudit transforms one scrape into an audit.
// The snapshot ID, when stored, is returned in X-Snapshot-ID.
func (s *Server) handleAudit(w http.ResponseWriter, r *http.Request) {
	var req types.AuditRequest
	if err := decodeBody(w, r, &req, validateAuditRequest); err != nil {
		s.handleError(w, err)
		return
	}

	result, err := s.auditor.Audit(r.Context(), req)
	if err != nil {
		s.handleError(w, err)
		return
	}

	if result.SnapshotID != nil {
		w.Header().Set("X-Snapshot-ID", result.SnapshotID.String())
	}
	if result.Cached {
		w.Header().Set("X-Cache", "HIT")
	} else {
		w.Header().Set("X-Cache", "MISS")
	}
	s.jsonResponse(w, http.StatusOK, result.Audit)
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req types.CompareRequest
	if err := decodeBody(w, r, &req, validateCompareRequest); err != nil {
		s.handleError(w, err)
		return
	}

	result, err := s.auditor.Compare(r.Context(), req)
	if err != nil {
		s.handleError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}

// profileQuery reads and validates the profile_url and platform query parameters.
func profileQuery(r *http.Request) (string, types.Platform, error) {
	profileURL := ingestion.CanonicalProfileURL(r.URL.Query().Get("profile_url"))
	if profileURL == "" {
		return "", "", &ErrValidation{Field: "profile_url", Message: "required"}
	}
	platform := types.Platform(r.URL.Query().Get("platform"))
	if platform == "" {
		platform = ingestion.DetectPlatform(profileURL)
	}
	if !platform.Valid() {
		return "", "", &ErrValidation{Field: "platform", Message: "must be linkedin or twitter"}
	}
	return profileURL, platform, nil
}

func (s *Server) handleListSnapshots(w http.ResponseWriter, r *http.Request) {
	profileURL, platform, err := profileQuery(r)
	if err != nil {
		s.handleError(w, err)
		return
	}

	filters := db.SnapshotFilters{ProfileURL: profileURL, Platform: platform}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			s.handleError(w, &ErrValidation{Field: "limit", Message: "must be a positive integer"})
			return
		}
		filters.Limit = limit
	}

	snapshots, err := s.auditor.History(r.Context(), filters)
	if err != nil {
		s.handleError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"snapshots": snapshots,
		"count":     len(snapshots),
	})
}

func (s *Server) handleGetSnapshot(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		s.handleError(w, &ErrValidation{Field: "id", Message: "invalid snapshot ID"})
		return
	}

	snapshot, err := s.auditor.Snapshot(r.Context(), id)
	if err != nil {
		s.handleError(w, err)
		return
	}
	if snapshot == nil {
		s.handleError(w, &ErrNotFound{Resource: "snapshot", ID: idStr})
		return
	}
	s.jsonResponse(w, http.StatusOK, snapshot)
}

func (s *Server) handleTrend(w http.ResponseWriter, r *http.Request) {
	profileURL, platform, err := profileQuery(r)
	if err != nil {
		s.handleError(w, err)
		return
	}

	points, err := s.auditor.Trend(r.Context(), profileURL, platform)
	if err != nil {
		s.handleError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"profile_url": profileURL,
		"platform":    platform,
		"points":      points,
	})
}

// handleHealth returns server health status. A configured but unreachable
// snapshot store answers 503.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !s.auditor.HasStore() {
		s.jsonResponse(w, http.StatusOK, map[string]any{"status": "ok", "snapshots": false})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()
	if err := s.auditor.Ping(ctx); err != nil {
		s.logger.WithError(err).Warn("health check failed")
		s.jsonResponse(w, http.StatusServiceUnavailable, map[string]any{
			"status":    "degraded",
			"snapshots": true,
			"database":  "unreachable",
		})
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"status": "ok", "snapshots": true, "database": "ok"})
}
