package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"redguard/internal/config"
	"redguard/internal/contract"
	"redguard/internal/extract"
	"redguard/internal/models"
	"redguard/internal/providers"
	"redguard/internal/store"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type Server struct {
	cfg       config.Config
	store     *store.Store
	providers *providers.Manager
}

// NewServer wires the boundary orchestrator. The store is passed in, not
// created here: it lives for the process and callers own its lifecycle.
func NewServer(cfg config.Config, st *store.Store, pm *providers.Manager) *Server {
	return &Server{cfg: cfg, store: st, providers: pm}
}

func (s *Server) Routes() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/healthz", s.handleHealthz).Methods(http.MethodGet)
	r.HandleFunc("/api/contracts/analyze", s.handleAnalyze).Methods(http.MethodPost)
	r.HandleFunc("/api/contracts", s.handleList).Methods(http.MethodGet)
	r.HandleFunc("/api/contracts/{contractId}", s.handleGet).Methods(http.MethodGet)
	r.HandleFunc("/api/contracts/{contractId}/feedback", s.handleFeedback).Methods(http.MethodPost)
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeErr(w, http.StatusNotFound, codeNotFound, errors.New("not found"))
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeErr(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, errors.New("method not allowed"))
	})
	return withCORS(r)
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}

// handleAnalyze runs the whole pipeline inside the request: extract text,
// enforce the length floor, call the analysis provider once, normalize its
// payload, store the record. Nothing is stored on any failure.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(s.cfg.MaxUploadBytes); err != nil {
		writeErr(w, http.StatusBadRequest, codeInvalidRequest, fmt.Errorf("parse multipart: %w", err))
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeErr(w, http.StatusBadRequest, codeInvalidRequest, errors.New("file field is required"))
		return
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		writeErr(w, http.StatusInternalServerError, codeInternal, fmt.Errorf("read upload: %w", err))
		return
	}
	fileName := header.Filename
	if fileName == "" {
		fileName = "document"
	}

	text, err := extract.Text(fileName, data)
	if err != nil {
		// Unreadable uploads are the caller's fault, same as unsupported ones.
		writeErr(w, http.StatusBadRequest, codeInvalidRequest, err)
		return
	}
	if utf8.RuneCountInString(text) < s.cfg.MinTextChars {
		writeErr(w, http.StatusBadRequest, codeInvalidRequest, errors.New("document too short"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(s.cfg.AnalyzeTimeoutSecs)*time.Second)
	defer cancel()
	analyzer, ref := s.providers.Primary()
	payload, info, err := analyzer.Analyze(ctx, providers.AnalyzeRequest{
		Operation: "contract_analysis",
		FileName:  fileName,
		Text:      text,
	})
	if err != nil {
		log.Printf("analyze: provider %s failed (%s): %v", ref.Name, providers.ClassifyError(err), err)
		writeErr(w, http.StatusBadGateway, codeUpstreamFailed, fmt.Errorf("upstream analysis failed: %w", err))
		return
	}

	var raw map[string]any
	if err := json.Unmarshal(payload, &raw); err != nil {
		writeErr(w, http.StatusBadGateway, codeMalformedResult,
			fmt.Errorf("malformed analysis result: provider %s returned non-JSON content: %w", info.Name, err))
		return
	}

	rec, err := contract.Normalize(raw, contract.Identity{
		ContractID: uuid.NewString(),
		FileName:   fileName,
		UploadedAt: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		// The full violation list goes out verbatim so provider drift is
		// diagnosable from the response alone.
		writeErr(w, http.StatusBadGateway, codeMalformedResult, fmt.Errorf("malformed analysis result: %w", err))
		return
	}

	s.store.Insert(rec)
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleList(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"items": s.store.List()})
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.store.Get(mux.Vars(r)["contractId"])
	if !ok {
		writeErr(w, http.StatusNotFound, codeNotFound, errors.New("contract not found"))
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleFeedback(w http.ResponseWriter, r *http.Request) {
	var req struct {
		IssueID string  `json:"issueId"`
		Type    string  `json:"type"`
		Comment *string `json:"comment"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, codeInvalidRequest, fmt.Errorf("invalid json: %w", err))
		return
	}
	if strings.TrimSpace(req.IssueID) == "" {
		writeErr(w, http.StatusBadRequest, codeInvalidRequest, errors.New("issueId is required"))
		return
	}
	if !contract.ValidFeedbackType(req.Type) {
		writeErr(w, http.StatusBadRequest, codeInvalidRequest,
			fmt.Errorf("type %q is not one of false_positive, helpful, not_helpful", req.Type))
		return
	}
	fb := models.Feedback{IssueID: req.IssueID, Type: models.FeedbackType(req.Type), Comment: req.Comment}
	if err := s.store.AppendFeedback(mux.Vars(r)["contractId"], fb); err != nil {
		writeErr(w, http.StatusNotFound, codeNotFound, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

const (
	codeInvalidRequest   = "RG-API-4001"
	codeNotFound         = "RG-API-4004"
	codeMethodNotAllowed = "RG-API-4005"
	codeInternal         = "RG-API-5000"
	codeUpstreamFailed   = "RG-LLM-5020"
	codeMalformedResult  = "RG-LLM-5021"
)

func writeErr(w http.ResponseWriter, status int, code string, err error) {
	writeJSON(w, status, map[string]any{
		"error": map[string]any{
			"code":    code,
			"message": err.Error(),
		},
	})
}

func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
