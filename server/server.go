package server

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"io/fs"
	"log"
	"net/http"
	"path"
	"strings"
	"time"

	"lead_folder_generator/folder"
	"lead_folder_generator/generator"
	"lead_folder_generator/history"
)

//go:embed web/dist
var embeddedStatic embed.FS

const exportFilename = "project-folder.md"

const generateTimeout = 60 * time.Second

// Server wires the generation pipeline, history store, and embedded UI. A nil
// agent means no LLM credential was configured; generation requests then fail
// with a 500 until one is provided.
type Server struct {
	agent    *generator.Agent
	store    *history.Store
	ids      history.IDSource
	state    *appState
	static   fs.FS
	staticFS http.Handler
	logger   *log.Logger
}

func New(agent *generator.Agent, store *history.Store, ids history.IDSource, logger *log.Logger) (*Server, error) {
	if store == nil {
		return nil, errors.New("history store required")
	}
	if ids == nil {
		ids = history.NewIDSource()
	}
	if logger == nil {
		logger = log.Default()
	}

	sub, err := fs.Sub(embeddedStatic, "web/dist")
	if err != nil {
		return nil, err
	}

	return &Server{
		agent:    agent,
		store:    store,
		ids:      ids,
		state:    &appState{},
		static:   sub,
		staticFS: http.FileServer(http.FS(sub)),
		logger:   logger,
	}, nil
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/generate-project-folder", s.handleGenerate)
	mux.HandleFunc("/api/history", s.handleHistory)
	mux.HandleFunc("/api/history/", s.handleHistorySelect)
	mux.HandleFunc("/api/export", s.handleExport)
	mux.HandleFunc("/api/preview", s.handlePreview)
	mux.Handle("/", s.staticHandler())
	return s.logMiddleware(mux)
}

func (s *Server) staticHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") {
			http.NotFound(w, r)
			return
		}
		// serve embedded assets when they exist; everything else falls back
		// to index.html for SPA-ish behavior
		name := strings.TrimPrefix(path.Clean(r.URL.Path), "/")
		if name != "" && name != "." {
			if _, err := fs.Stat(s.static, name); err == nil {
				s.staticFS.ServeHTTP(w, r)
				return
			}
		}
		http.ServeFileFS(w, r, s.static, "index.html")
	})
}

// --- Handlers ---

type generateReq struct {
	LeadText string `json:"leadText"`
	Model    string `json:"model"`
	Tone     string `json:"tone"`
}

type generateResp struct {
	ProjectFolder string            `json:"projectFolder"`
	Sections      folder.SectionMap `json:"sections"`
	HistoryItem   history.Item      `json:"historyItem"`
}

type historyResp struct {
	Items      []history.Item `json:"items"`
	SelectedID string         `json:"selectedId"`
}

type previewReq struct {
	Markdown string `json:"markdown"`
	Section  string `json:"section,omitempty"`
}

type previewResp struct {
	HTML string `json:"html"`
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var body generateReq
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req := generator.Request{
		LeadText: body.LeadText,
		Model:    generator.Model(body.Model),
		Tone:     generator.Tone(body.Tone),
	}
	if strings.TrimSpace(req.LeadText) == "" {
		writeError(w, http.StatusBadRequest, "Please paste the lead text before generating.")
		return
	}
	if err := req.Normalize(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if s.agent == nil {
		writeError(w, http.StatusInternalServerError, "LLM API key is not configured")
		return
	}

	s.state.setGenerating(req)

	ctx, cancel := context.WithTimeout(r.Context(), generateTimeout)
	defer cancel()
	out, err := s.agent.Generate(ctx, req)
	if err != nil {
		s.state.setFailure()
		s.logger.Printf("[generate] failed: %v", err)
		writeError(w, http.StatusBadGateway, "Project folder generation failed. Please try again.")
		return
	}

	item := history.Item{
		ID:         s.ids.NewID(),
		CreatedAt:  time.Now(),
		Title:      folder.DeriveTitle(req.LeadText),
		LeadText:   req.LeadText,
		OutputText: out,
		Model:      string(req.Model),
		Tone:       string(req.Tone),
	}
	s.store.Record(item)
	s.state.setResult(item)

	writeJSON(w, generateResp{
		ProjectFolder: out,
		Sections:      folder.Segment(out),
		HistoryItem:   item,
	})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(w, historyResp{
		Items:      s.store.Items(),
		SelectedID: s.state.snapshot().SelectedID,
	})
}

// handleHistorySelect restores a past generation as the active context. The
// stored list is never mutated and nothing is regenerated.
func (s *Server) handleHistorySelect(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/history/")
	id, ok := strings.CutSuffix(rest, "/select")
	if !ok || id == "" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	item, ok := s.store.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "history item not found")
		return
	}
	s.state.activate(item)
	writeJSON(w, generateResp{
		ProjectFolder: item.OutputText,
		Sections:      folder.Segment(item.OutputText),
		HistoryItem:   item,
	})
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	out := s.state.snapshot().OutputText
	if strings.TrimSpace(out) == "" {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+exportFilename+`"`)
	_, _ = w.Write([]byte(out))
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var body previewReq
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	md := body.Markdown
	if body.Section != "" {
		// empty or unknown sections fall back to the full document
		md = folder.Segment(body.Markdown).GetOrAll(body.Section)
	}
	html, err := folder.RenderHTML(md)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "markdown rendering failed")
		return
	}
	writeJSON(w, previewResp{HTML: html})
}

// --- Helpers ---

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func (s *Server) logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start).Round(time.Millisecond))
	})
}
