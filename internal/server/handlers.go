package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"capbrowse/internal/api"
	"capbrowse/internal/browse"
	"capbrowse/internal/logging"
	"capbrowse/internal/record"
	"capbrowse/internal/render"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(p []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	return r.ResponseWriter.Write(p)
}

func (r *statusRecorder) code() int {
	if r.status == 0 {
		return http.StatusOK
	}
	return r.status
}

// instrument attaches a request id, counts the response under route and
// logs the request at debug level.
func (s *Server) instrument(route string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		requestID := uuid.NewString()
		ctx := logging.WithRequestID(r.Context(), requestID)
		w.Header().Set("X-Request-ID", requestID)

		rec := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, r.WithContext(ctx))

		code := rec.code()
		s.metrics.requests.WithLabelValues(route, strconv.Itoa(code)).Inc()
		logging.WithContext(ctx, s.logger).Debug("http request",
			logging.String("method", r.Method),
			logging.String("path", r.URL.Path),
			logging.Int("status", code),
			logging.Duration("elapsed", time.Since(started)),
		)
	})
}

func (s *Server) getOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if r.URL.Path != "/" {
		s.writeError(w, http.StatusNotFound, "not found")
		return
	}
	values := r.URL.Query()
	view := s.view(api.ParseState(values, s.baseState()))

	expand := s.browse.AutoExpandJSON
	if len(values) > 0 {
		expand = api.Truthy(values.Get("expand"))
	}
	page := s.pageView(view, expand)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(render.Document(page)))
}

func (s *Server) handleRecords(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	values := r.URL.Query()
	if values.Has("id") {
		s.writeRecord(w, values.Get("id"))
		return
	}
	view := s.view(api.ParseState(values, s.baseState()))
	resp := api.FromView(view)
	if err := s.catalog.Err(); err != nil {
		resp.Error = err.Error()
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRecord(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/api/records/")
	if id == "" {
		s.writeError(w, http.StatusNotFound, "record not found")
		return
	}
	s.writeRecord(w, id)
}

// writeRecord answers with the serialized first record whose id equals id.
// The empty id is a valid lookup.
func (s *Server) writeRecord(w http.ResponseWriter, id string) {
	body, ok := s.records.Describe(id)
	if !ok {
		s.writeError(w, http.StatusNotFound, "record not found")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(body))
}

func (s *Server) pageView(view browse.View, expand bool) render.PageView {
	fields := make([]render.FieldOption, 0, len(s.browse.Fields)+1)
	active := false
	for _, name := range s.browse.Fields {
		field, err := browse.ParseField(name)
		if err != nil {
			continue
		}
		active = active || field == view.State.Field
		fields = append(fields, render.FieldOption{Value: string(field), Label: field.Label()})
	}
	if !active {
		// A selector outside browse.fields came in on the query string; list
		// it so the select still shows what is being searched.
		fields = append(fields, render.FieldOption{Value: string(view.State.Field), Label: view.State.Field.Label()})
	}
	page := render.PageView{
		Title:          "Sample browser",
		Records:        view.Page.Items,
		Matched:        view.Matched,
		Total:          view.Total,
		Page:           view.Page.Page,
		Pages:          view.Page.Pages,
		PageSize:       view.Page.PageSize,
		Query:          view.State.Query,
		Field:          string(view.State.Field),
		Fields:         fields,
		PageSizes:      s.browse.PageSizes,
		AutoExpandJSON: expand,
		DebounceMillis: s.browse.DebounceMillis,
	}
	if err := s.catalog.Err(); err != nil {
		page.Error = err.Error()
		page.Records = []*record.Normalized{}
	}
	return page
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to encode response", logging.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, api.ErrorResponse{Error: message})
}
