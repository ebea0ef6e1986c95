// Package proxy implements the CORS workaround surface: it forwards any
// request under a fixed prefix to the remote API, preserving the caller's
// Authorization header and pinning the API-version header, and mirrors the
// upstream status and JSON body back with permissive CORS headers on every
// response, error responses included.
package proxy

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

type Handler struct {
	upstream   string
	prefix     string
	apiVersion string
	client     *http.Client
	log        *zap.Logger
}

func NewHandler(upstream, prefix, apiVersion string, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{
		upstream:   strings.TrimSuffix(upstream, "/"),
		prefix:     prefix,
		apiVersion: apiVersion,
		client:     &http.Client{},
		log:        log,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writeCORSHeaders(w)

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	path := strings.TrimPrefix(r.URL.Path, h.prefix)
	target := h.upstream + path
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}

	var body io.Reader
	if r.Method != http.MethodGet {
		body = r.Body
	}

	req, err := http.NewRequestWithContext(r.Context(), r.Method, target, body)
	if err != nil {
		h.writeError(w, http.StatusBadGateway, err)
		return
	}
	req.Header.Set("Authorization", r.Header.Get("Authorization"))
	req.Header.Set("Notion-Version", h.apiVersion)
	req.Header.Set("Content-Type", "application/json")

	h.log.Info("proxying request",
		zap.String("method", r.Method),
		zap.String("target", target))

	resp, err := h.client.Do(req)
	if err != nil {
		h.log.Warn("upstream request failed", zap.Error(err))
		h.writeError(w, http.StatusBadGateway, err)
		return
	}
	defer resp.Body.Close()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.StatusCode)
	if _, err := io.Copy(w, resp.Body); err != nil {
		h.log.Warn("copying upstream body failed", zap.Error(err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}

func writeCORSHeaders(w http.ResponseWriter) {
	header := w.Header()
	header.Set("Access-Control-Allow-Origin", "*")
	header.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
	header.Set("Access-Control-Allow-Headers", "*")
}
