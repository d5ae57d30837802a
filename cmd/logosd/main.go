// Command logosd exposes the logos analysis pipeline as a JSON REST API.
//
// Endpoints:
//
//	POST /api/analyse            body: {"text":"..."}
//	POST /api/semantics/load     body: {"path":"..."}
package main

import (
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"strings"
	"sync"

	"github.com/rs/cors"

	"github.com/glossa-analytics/logos"
	"github.com/glossa-analytics/logos/archive"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// server guards the single Pipeline behind a mutex only for the
// LoadSemantics swap; Analyse itself is safe to call concurrently
// against one Pipeline value without any locking, per the pipeline's
// no-shared-mutable-state contract.
type server struct {
	mu sync.RWMutex
	p  *logos.Pipeline
}

func (s *server) pipeline() *logos.Pipeline {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.p
}

func (s *server) handleAnalyse(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}
	var body struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Text == "" {
		writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'text' field")
		return
	}
	report := s.pipeline().Analyse(body.Text)
	writeJSON(w, http.StatusOK, report)
}

func (s *server) handleLoadSemantics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}
	var body struct {
		Path string `json:"path"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Path == "" {
		writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'path' field")
		return
	}
	a, err := archive.Load(body.Path)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.mu.Lock()
	s.p = &logos.Pipeline{Dict: s.p.Dict, Semantics: a.Semantics}
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]string{"status": "loaded"})
}

func main() {
	dictPath := flag.String("dict", "", "path to the compiled dictionary archive")
	addr := flag.String("addr", ":8080", "listen address")
	allowedOrigins := flag.String("cors-origin", "*", "comma-separated list of allowed CORS origins")
	flag.Parse()

	if *dictPath == "" {
		log.Fatal("missing required -dict flag")
	}

	log.Printf("loading archive from %s …", *dictPath)
	a, err := archive.Load(*dictPath)
	if err != nil {
		log.Fatalf("failed to load archive: %v", err)
	}
	defer a.Close()
	log.Println("archive loaded")

	s := &server{p: logos.NewPipeline(a.Dict)}
	if a.Semantics != nil {
		s.p.LoadSemantics(a.Semantics)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/analyse", s.handleAnalyse)
	mux.HandleFunc("/api/semantics/load", s.handleLoadSemantics)

	c := cors.New(cors.Options{
		AllowedOrigins: strings.Split(*allowedOrigins, ","),
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	})

	log.Printf("listening on %s", *addr)
	if err := http.ListenAndServe(*addr, c.Handler(mux)); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
