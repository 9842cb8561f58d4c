// internal/httpserver/server.go
//
// HTTP wiring for the minesweeper play-mode API.
// Responsibilities:
//   - Router + middleware (JSON, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health".
//   - Game endpoints: POST /game/new, POST /game/dig, POST /game/flag,
//     POST /game/chord, GET /game/{id}.
//   - In-memory session registry keyed by crypto-random game IDs.
//
// Notes:
//   - Sessions are ephemeral: nothing survives a restart and no player
//     identity exists beyond the game ID itself.
//   - The engine is single-threaded by contract, so each session holds
//     a mutex that serializes moves on its board.
//   - Views never leak mine positions while a game is winnable; that
//     property belongs to the engine, not to this layer.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/olivegray/minesweeper/internal/game"
	"github.com/olivegray/minesweeper/internal/store"
)

// Server bundles the router and the session store.
type Server struct {
	r     *chi.Mux
	store store.Store
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store) *Server {
	s := &Server{r: chi.NewRouter(), store: st}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"minesweeper-go","endpoints":["/health","POST /game/new","POST /game/dig","POST /game/flag","POST /game/chord","GET /game/{id}"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	// Game endpoints
	s.r.Post("/game/new", s.handleNewGame)
	s.r.Post("/game/dig", s.handleMove((*game.Board).Dig))
	s.r.Post("/game/flag", s.handleFlag)
	s.r.Post("/game/chord", s.handleMove((*game.Board).Chord))
	s.r.Get("/game/{id}", s.handleView)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// ------------------------------ GAME ---------------------------------------

// newGameReq/Res payloads for POST /game/new.
// Either a preset difficulty name or explicit dimensions; explicit
// fields win when both are present.
type newGameReq struct {
	Difficulty string `json:"difficulty"` // "easy" | "medium" | "hard"
	Rows       int    `json:"rows"`
	Cols       int    `json:"cols"`
	Mines      int    `json:"mines"`
}
type newGameRes struct {
	GameID string    `json:"gameId"`
	View   game.View `json:"view"`
}

// handleNewGame constructs a board and registers a session for it.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	_ = json.NewDecoder(r.Body).Decode(&req)

	rows, cols, mines := req.Rows, req.Cols, req.Mines
	if rows == 0 && cols == 0 && mines == 0 {
		d, ok := game.DifficultyByName(req.Difficulty)
		if !ok {
			http.Error(w, `{"error":"unknown_difficulty"}`, http.StatusBadRequest)
			return
		}
		rows, cols, mines = d.Rows, d.Cols, d.Mines
	}

	b, err := game.New(rows, cols, mines)
	if err != nil {
		var cfg *game.ConfigError
		if errors.As(err, &cfg) {
			http.Error(w, `{"error":"invalid_config"}`, http.StatusBadRequest)
			return
		}
		log.Error().Err(err).Msg("construct board")
		http.Error(w, `{"error":"internal"}`, http.StatusInternalServerError)
		return
	}

	sess := store.NewSession(b)
	if err := s.store.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Msg("save session")
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	log.Info().Str("gameId", sess.ID).Int("rows", rows).Int("cols", cols).Int("mines", mines).Msg("new game")

	_ = json.NewEncoder(w).Encode(newGameRes{GameID: sess.ID, View: b.RenderView()})
}

// moveReq/Res payloads shared by POST /game/dig and /game/chord.
type moveReq struct {
	GameID string `json:"gameId"`
	Row    int    `json:"row"`
	Col    int    `json:"col"`
}
type moveRes struct {
	Outcome string    `json:"outcome"` // "continue" | "win" | "loss"
	View    game.View `json:"view"`
}

// handleMove adapts an engine move (Dig or Chord) into a handler.
func (s *Server) handleMove(move func(*game.Board, int, int) (game.Outcome, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req moveReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
			return
		}
		sess, err := s.store.Get(r.Context(), req.GameID)
		if err != nil {
			http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
			return
		}

		sess.Mu.Lock()
		outcome, err := move(sess.Board, req.Row, req.Col)
		view := sess.Board.RenderView()
		sess.Mu.Unlock()

		if err != nil {
			var oob *game.BoundsError
			if errors.As(err, &oob) {
				http.Error(w, `{"error":"out_of_bounds"}`, http.StatusBadRequest)
				return
			}
			log.Error().Err(err).Str("gameId", req.GameID).Msg("apply move")
			http.Error(w, `{"error":"internal"}`, http.StatusInternalServerError)
			return
		}

		_ = json.NewEncoder(w).Encode(moveRes{Outcome: outcome.String(), View: view})
	}
}

// flagRes payload for POST /game/flag; flagging has no outcome.
type flagRes struct {
	View game.View `json:"view"`
}

// handleFlag toggles a flag on a hidden cell.
func (s *Server) handleFlag(w http.ResponseWriter, r *http.Request) {
	var req moveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	sess, err := s.store.Get(r.Context(), req.GameID)
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}

	sess.Mu.Lock()
	err = sess.Board.Flag(req.Row, req.Col)
	view := sess.Board.RenderView()
	sess.Mu.Unlock()

	if err != nil {
		http.Error(w, `{"error":"out_of_bounds"}`, http.StatusBadRequest)
		return
	}
	_ = json.NewEncoder(w).Encode(flagRes{View: view})
}

// handleView returns the current snapshot of a session's board.
func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	sess, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	sess.Mu.Lock()
	view := sess.Board.RenderView()
	sess.Mu.Unlock()
	_ = json.NewEncoder(w).Encode(flagRes{View: view})
}
