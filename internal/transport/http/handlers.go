package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/formsmith/formsmith/compiler/ir"
	"github.com/formsmith/formsmith/internal/pkg/logger"
	"github.com/formsmith/formsmith/internal/port"
	"github.com/formsmith/formsmith/internal/service"
)

type Handlers struct {
	svc *service.Forms
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Generate compiles a descriptor into a bundle without storing anything.
func (h *Handlers) Generate(w http.ResponseWriter, r *http.Request) {
	var form ir.Form
	if err := decodeDescriptor(r, &form); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	bundle, err := h.svc.Generate(r.Context(), &form)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	bundlesGenerated.WithLabelValues(string(form.Framework)).Inc()

	type fileOut struct {
		Path     string `json:"path"`
		Contents string `json:"contents"`
	}
	out := struct {
		Files        []fileOut `json:"files"`
		Dependencies []string  `json:"dependencies"`
	}{Dependencies: bundle.Dependencies}
	for _, f := range bundle.Files {
		out.Files = append(out.Files, fileOut{Path: f.Path, Contents: f.Contents})
	}
	writeJSON(w, http.StatusOK, out)
}

// Publish stores a descriptor and returns its id plus the edit token.
func (h *Handlers) Publish(w http.ResponseWriter, r *http.Request) {
	var form ir.Form
	if err := decodeDescriptor(r, &form); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	id, token, err := h.svc.Publish(r.Context(), &form)
	if err != nil {
		if strings.Contains(err.Error(), "invalid descriptor") {
			writeError(w, http.StatusUnprocessableEntity, err)
			return
		}
		logger.From(r.Context()).Error("publish failed", "err", err)
		writeError(w, http.StatusInternalServerError, errors.New("publish failed"))
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{
		"id":        id,
		"editToken": token,
	})
}

func (h *Handlers) Load(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	form, err := h.svc.Load(r.Context(), id)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			writeError(w, http.StatusNotFound, err)
			return
		}
		logger.From(r.Context()).Error("load failed", "formId", id, "err", err)
		writeError(w, http.StatusInternalServerError, errors.New("load failed"))
		return
	}
	writeJSON(w, http.StatusOK, form)
}

// Update replaces a published descriptor. The edit token travels in the
// X-Edit-Token header.
func (h *Handlers) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	token := r.Header.Get("X-Edit-Token")
	if token == "" {
		writeError(w, http.StatusUnauthorized, errors.New("X-Edit-Token header required"))
		return
	}
	var form ir.Form
	if err := decodeDescriptor(r, &form); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	err := h.svc.Update(r.Context(), id, token, &form)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, map[string]string{"id": id})
	case errors.Is(err, port.ErrNotFound):
		writeError(w, http.StatusNotFound, err)
	case errors.Is(err, service.ErrEditToken):
		writeError(w, http.StatusForbidden, err)
	case strings.Contains(err.Error(), "invalid descriptor"):
		writeError(w, http.StatusUnprocessableEntity, err)
	default:
		logger.From(r.Context()).Error("update failed", "formId", id, "err", err)
		writeError(w, http.StatusInternalServerError, errors.New("update failed"))
	}
}

// Export archives the stored form's bundle and returns a presigned
// manifest link.
func (h *Handlers) Export(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	prefix, url, err := h.svc.ExportPublished(r.Context(), id)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, map[string]string{
			"prefix":      prefix,
			"manifestUrl": url,
		})
	case errors.Is(err, port.ErrNotFound):
		writeError(w, http.StatusNotFound, err)
	case errors.Is(err, service.ErrNoArchive):
		writeError(w, http.StatusServiceUnavailable, err)
	default:
		logger.From(r.Context()).Error("export failed", "formId", id, "err", err)
		writeError(w, http.StatusInternalServerError, errors.New("export failed"))
	}
}

// BundleFile streams one archived artifact back.
func (h *Handlers) BundleFile(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	file := chi.URLParam(r, "*")
	data, err := h.svc.BundleFile(r.Context(), id, file)
	switch {
	case err == nil:
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	case errors.Is(err, port.ErrNotFound):
		writeError(w, http.StatusNotFound, err)
	case errors.Is(err, service.ErrNoArchive):
		writeError(w, http.StatusServiceUnavailable, err)
	default:
		writeError(w, http.StatusNotFound, errors.New("bundle file not found"))
	}
}

// Discard deletes a published form. The edit token travels in the
// X-Edit-Token header, same as Update.
func (h *Handlers) Discard(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	token := r.Header.Get("X-Edit-Token")
	if token == "" {
		writeError(w, http.StatusUnauthorized, errors.New("X-Edit-Token header required"))
		return
	}
	err := h.svc.Discard(r.Context(), id, token)
	switch {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, port.ErrNotFound):
		writeError(w, http.StatusNotFound, err)
	case errors.Is(err, service.ErrEditToken):
		writeError(w, http.StatusForbidden, err)
	default:
		logger.From(r.Context()).Error("discard failed", "formId", id, "err", err)
		writeError(w, http.StatusInternalServerError, errors.New("discard failed"))
	}
}

func decodeDescriptor(r *http.Request, out *ir.Form) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		return errors.New("malformed descriptor json: " + err.Error())
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
