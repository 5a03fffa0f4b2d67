// Package server exposes the translation pipeline over HTTP. It is a
// thin passthrough: request source text and target go to the
// transpiler unchanged, generated text comes back unchanged.
package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/pycross/pycross/internal/ir"
	"github.com/pycross/pycross/internal/transpiler"
)

// Server handles translation requests. Each request builds its own IR
// and generator state, so handlers are safe to run concurrently.
type Server struct {
	cfg    Config
	logger *log.Logger
}

// New creates a Server with the given config and logger.
func New(cfg Config, logger *log.Logger) *Server {
	return &Server{cfg: cfg, logger: logger}
}

// ConvertRequest is the /convert request body.
type ConvertRequest struct {
	Code   string `json:"code"`
	ToLang string `json:"toLang"`
}

// ConvertResponse is the /convert response body.
type ConvertResponse struct {
	Result string `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Handler returns the HTTP handler for all routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /convert", s.handleConvert)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	return mux
}

// ListenAndServe runs the server on the configured address.
func (s *Server) ListenAndServe() error {
	s.logger.Printf("listening on %s", s.cfg.Addr)
	return http.ListenAndServe(s.cfg.Addr, s.Handler())
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.Must(uuid.NewV7()).String()

	var req ConvertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.logger.Printf("convert request_id=%s error=%q", requestID, err)
		writeJSON(w, http.StatusBadRequest, ConvertResponse{Error: "invalid request body"})
		return
	}

	target := req.ToLang
	if target == "" {
		target = s.cfg.DefaultTarget
	}

	if s.cfg.Verbose {
		prog := transpiler.Parse(req.Code)
		if problems := ir.Validate(prog); len(problems) > 0 {
			s.logger.Printf("convert request_id=%s invalid ir: %s",
				requestID, strings.Join(problems, "; "))
		}
	}

	result, err := transpiler.Translate(req.Code, target)
	if err != nil {
		// Unknown target selector
		s.logger.Printf("convert request_id=%s target=%q error=%q", requestID, target, err)
		writeJSON(w, http.StatusBadRequest, ConvertResponse{Error: err.Error()})
		return
	}

	s.logger.Printf("convert request_id=%s target=%s source_bytes=%d",
		requestID, target, len(req.Code))
	writeJSON(w, http.StatusOK, ConvertResponse{Result: result})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
