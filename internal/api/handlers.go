package api

import (
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/starford/boreacrutis/internal/apperr"
	"github.com/starford/boreacrutis/internal/checksum"
	"github.com/starford/boreacrutis/internal/domain"
	"github.com/starford/boreacrutis/internal/service"
)

const (
	maxActionBytes = 10 << 20
	maxUploadBytes = 10 << 20
)

// Handler holds API route handlers.
type Handler struct {
	svc *service.Service
}

// NewHandler creates a new Handler.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// GetState handles GET /api/state. The ETag is derived from the snapshot
// bytes; a matching If-None-Match yields 304.
func (h *Handler) GetState(w http.ResponseWriter, r *http.Request) {
	data, err := h.svc.Snapshot()
	if err != nil {
		writeError(w, "encode state", err)
		return
	}
	h.writeSnapshot(w, r, data)
}

func (h *Handler) writeSnapshot(w http.ResponseWriter, r *http.Request, data []byte) {
	etag := checksum.ETag(data)
	w.Header().Set("ETag", etag)
	if r.Method == http.MethodGet && r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// DispatchAction handles POST /api/actions with one wire-format action and
// returns the resulting snapshot.
func (h *Handler) DispatchAction(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxActionBytes)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("failed to read body"))
		return
	}
	if _, err := h.svc.DispatchJSON(r.Context(), body); err != nil {
		writeError(w, "dispatch action", err)
		return
	}
	data, err := h.svc.Snapshot()
	if err != nil {
		writeError(w, "encode state", err)
		return
	}
	h.writeSnapshot(w, r, data)
}

// ListTabs handles GET /api/tabs?module=<m>.
func (h *Handler) ListTabs(w http.ResponseWriter, r *http.Request) {
	var module domain.ModuleType
	if q := r.URL.Query().Get("module"); q != "" {
		m, err := service.ParseModule(q)
		if err != nil {
			writeError(w, "list tabs", err)
			return
		}
		module = m
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"tabs": h.svc.Tabs(module),
	})
}

// Import handles POST /api/import/{module}?tab=<id>. The document is either
// the raw request body or the "file" field of a multipart form.
func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	module, err := service.ParseModule(chi.URLParam(r, "module"))
	if err != nil {
		writeError(w, "import", err)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	text, err := readDocument(r)
	if err != nil {
		writeError(w, "import", err)
		return
	}
	imp, err := h.svc.Import(r.Context(), module, r.URL.Query().Get("tab"), text)
	if err != nil {
		writeError(w, "import", err)
		return
	}
	writeJSON(w, http.StatusCreated, imp)
}

func readDocument(r *http.Request) (string, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			return "", fmt.Errorf("read body: %w: %w", apperr.ErrInvalidInput, err)
		}
		return string(body), nil
	}
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return "", fmt.Errorf("%w: file too large or invalid multipart", apperr.ErrInvalidInput)
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		return "", fmt.Errorf("%w: missing 'file' field in multipart form", apperr.ErrInvalidInput)
	}
	defer file.Close()
	body, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("read upload: %w: %w", apperr.ErrInvalidInput, err)
	}
	return string(body), nil
}

// Export handles GET /api/export/{module}/{tab}/{id}. ?format=html returns a
// rendered preview instead of the markdown download.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	module, err := service.ParseModule(chi.URLParam(r, "module"))
	if err != nil {
		writeError(w, "export", err)
		return
	}
	tabID, id := chi.URLParam(r, "tab"), chi.URLParam(r, "id")

	switch format := strings.ToLower(r.URL.Query().Get("format")); format {
	case "", "md", "markdown":
		exp, err := h.svc.Export(module, tabID, id)
		if err != nil {
			writeError(w, "export", err)
			return
		}
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": exp.Filename}))
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, exp.Markdown)
	case "html":
		_, html, err := h.svc.ExportHTML(module, tabID, id)
		if err != nil {
			writeError(w, "export", err)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(html)
	default:
		writeJSON(w, http.StatusBadRequest, errorBody(fmt.Sprintf("unsupported format %q", format)))
	}
}

// Library handles GET /api/library.
func (h *Handler) Library(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Library())
}
