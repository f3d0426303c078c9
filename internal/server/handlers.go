package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/openyieldtables/go-yieldtables/pkg/dataset"
	"github.com/openyieldtables/go-yieldtables/pkg/model"
)

func (s *Server) handleMetaList(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Metas())
}

func (s *Server) handleMeta(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	meta, err := s.store.Meta(id)
	if err != nil {
		s.writeStoreError(w, id, err)
		return
	}
	s.renderRecord(w, r, meta)
}

func (s *Server) handleTable(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	table, err := s.store.Table(id)
	if err != nil {
		s.writeStoreError(w, id, err)
		return
	}

	if wantsHTML(r) {
		s.renderRecord(w, r, table.YieldTableMeta)
		return
	}
	writeJSON(w, http.StatusOK, table)
}

func (s *Server) handleInterpolated(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	value, err := strconv.ParseFloat(r.PathValue("value"), 64)
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "Interpolation value must be a number.")
		return
	}

	meta, err := s.store.Meta(id)
	if err != nil {
		s.writeStoreError(w, id, err)
		return
	}
	class, err := s.store.InterpolatedClass(id, value)
	if err != nil {
		var classErr *dataset.ClassNotFoundError
		if errors.As(err, &classErr) {
			writeDetail(w, http.StatusNotFound, fmt.Sprintf("Yield class %s not found.", formatClassValue(value)))
			return
		}
		s.writeStoreError(w, id, err)
		return
	}

	table := model.YieldTable{
		YieldTableMeta: meta,
		Data:           model.YieldTableData{YieldClasses: []model.YieldClass{class}},
	}
	writeJSON(w, http.StatusOK, table)
}

func (s *Server) handleOpenAPI(w http.ResponseWriter, _ *http.Request) {
	if s.doc == nil {
		writeDetail(w, http.StatusNotFound, "No API description is configured.")
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_, _ = w.Write(s.doc.JSON())
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// renderRecord picks the renderer from the Accept header and writes the
// record through it.
func (s *Server) renderRecord(w http.ResponseWriter, r *http.Request, meta model.YieldTableMeta) {
	name := "json"
	if wantsHTML(r) {
		name = "html"
	}

	renderer, err := s.registry.Get(name)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "Renderer is not available.")
		return
	}
	payload, err := renderer.Render(r.Context(), meta, s.options)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "Rendering the record failed.")
		return
	}

	w.Header().Set("Content-Type", renderer.ContentType())
	_, _ = w.Write(payload)
}

func (s *Server) writeStoreError(w http.ResponseWriter, id int, err error) {
	if errors.Is(err, dataset.ErrNotFound) {
		writeDetail(w, http.StatusNotFound, fmt.Sprintf("Yield table with ID %d not found.", id))
		return
	}
	writeDetail(w, http.StatusInternalServerError, "Loading the yield table failed.")
}

func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "Yield table ID must be an integer.")
		return 0, false
	}
	return id, true
}

// formatClassValue renders the requested interpolation value the way it
// appeared in the path, without exponent or padding.
func formatClassValue(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

func wantsHTML(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

type detailBody struct {
	Detail detailMessage `json:"detail"`
}

type detailMessage struct {
	Message string `json:"message"`
}

func writeDetail(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, detailBody{Detail: detailMessage{Message: message}})
}
