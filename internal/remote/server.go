// Package remote is the reference implementation of the snapshot
// service the sync client talks to. The mobile backend exposes the same
// two-endpoint contract; this one is handy for development and tests.
package remote

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/abhisek/mathrush/internal/store"
	"github.com/abhisek/mathrush/internal/sync"
)

// Server serves the snapshot contract over HTTP.
type Server struct {
	repo store.RemoteRepo
}

// NewServer creates a Server backed by repo.
func NewServer(repo store.RemoteRepo) *Server {
	return &Server{repo: repo}
}

// Router builds the HTTP routes.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "OK")
	}).Methods("GET")
	r.HandleFunc("/v1/users/{id}/snapshot", s.getSnapshot).Methods("GET")
	r.HandleFunc("/v1/users/{id}/snapshot", s.putSnapshot).Methods("PUT")
	return r
}

// ListenAndServe runs the server on addr until it fails.
func (s *Server) ListenAndServe(addr string) error {
	log.Printf("[remote] snapshot service listening on %s", addr)
	return http.ListenAndServe(addr, s.Router())
}

func (s *Server) getSnapshot(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["id"]

	data, ok, err := s.repo.Get(r.Context(), userID)
	if err != nil {
		log.Printf("[remote] get snapshot for %s: %v", userID, err)
		http.Error(w, "storage error", http.StatusInternalServerError)
		return
	}
	if !ok {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

// putSnapshot folds the pushed snapshot into the stored one with the
// same monotonic merge the clients use, so pushes arriving out of order
// or more than once can never move the stored state backwards.
func (s *Server) putSnapshot(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["id"]

	var pushed sync.Snapshot
	if err := json.NewDecoder(r.Body).Decode(&pushed); err != nil {
		http.Error(w, "malformed snapshot", http.StatusBadRequest)
		return
	}

	existing, ok, err := s.repo.Get(r.Context(), userID)
	if err != nil {
		log.Printf("[remote] get snapshot for %s: %v", userID, err)
		http.Error(w, "storage error", http.StatusInternalServerError)
		return
	}

	merged := pushed
	if ok {
		var stored sync.Snapshot
		if err := json.Unmarshal(existing, &stored); err != nil {
			// A corrupt stored blob loses to the incoming push.
			log.Printf("[remote] corrupt stored snapshot for %s, replacing: %v", userID, err)
		} else {
			merged = sync.Reconcile(pushed, &stored)
		}
	}

	data, err := json.Marshal(merged)
	if err != nil {
		http.Error(w, "encode error", http.StatusInternalServerError)
		return
	}
	if err := s.repo.Put(r.Context(), userID, data); err != nil {
		log.Printf("[remote] put snapshot for %s: %v", userID, err)
		http.Error(w, "storage error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
