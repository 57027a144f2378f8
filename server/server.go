package server

import (
	"encoding/json"
	"isolation/agent"
	"isolation/engine"
	"isolation/game"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Large enough for the blocked cells of a MaxSize board
const maxRequestBytes = 1 << 20

type findMoveRequest struct {
	Board       *game.Board `json:"board"`
	TimeLimitMs int64       `json:"timeLimitMs"` // Falls back to the server default when unset
}

type findMoveResponse struct {
	Move game.Move `json:"move"`
}

// Server exposes a single agent over HTTP
type Server struct {
	agent        agent.Agent
	defaultLimit time.Duration
	// Agents keep per-search state, so requests are served one at a time
	mu sync.Mutex
}

func New(a agent.Agent, defaultLimit time.Duration) *Server {
	return &Server{agent: a, defaultLimit: defaultLimit}
}

func (s *Server) Handler() http.Handler {
	// Local mux rather than the global DefaultServeMux
	mux := http.NewServeMux()
	mux.HandleFunc("/findmove", s.handleFindMove)
	return mux
}

func (s *Server) ListenAndServe(addr string) error {
	log.Info().Msgf("starting agent server on %s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

func (s *Server) handleFindMove(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var payload findMoveRequest
	body := http.MaxBytesReader(w, r.Body, maxRequestBytes)
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		http.Error(w, "bad request: "+err.Error(), http.StatusBadRequest)
		return
	}
	if payload.Board == nil {
		http.Error(w, "bad request: missing board", http.StatusBadRequest)
		return
	}
	if payload.TimeLimitMs < 0 {
		http.Error(w, "bad request: negative time limit", http.StatusBadRequest)
		return
	}
	limit := s.defaultLimit
	if payload.TimeLimitMs > 0 {
		limit = time.Duration(payload.TimeLimitMs) * time.Millisecond
	}

	move := s.findMove(payload.Board, limit)

	log.Debug().
		Int("moveCount", payload.Board.MoveCount()).
		Dur("limit", limit).
		Msgf("player %s chose move %s", payload.Board.ActivePlayer(), move)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(findMoveResponse{Move: move}); err != nil {
		http.Error(w, "failed to encode move: "+err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) findMove(board *game.Board, limit time.Duration) game.Move {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.agent.FindMove(board, engine.Countdown(limit))
}
