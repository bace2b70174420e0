// internal/httpserver/server.go
//
// HTTP host for the Wordle scoring engine.
// Responsibilities:
//   - Router + middleware (request IDs, panic recovery, timeouts, JSON, CORS,
//     per-client rate limiting, access logging).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Session endpoints: POST /game/new, POST /game/guess, POST /game/reset,
//     GET /game/{id}.
//   - Stateless scoring: POST /score.
//   - Daily challenge: mounted under /daily.
//
// Notes:
//   - The engine itself is I/O free; this package only decodes requests,
//     calls game.Game / game.Secret, and encodes the verdicts.
//   - The secret is only ever returned once a game is finished.

package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/scorer/internal/config"
	"github.com/robalobadob/wordle/apps/scorer/internal/game"
	"github.com/robalobadob/wordle/apps/scorer/internal/store"
	"github.com/robalobadob/wordle/apps/scorer/internal/words"
)

// Server bundles router, session store and word catalog.
type Server struct {
	r       *chi.Mux
	store   store.Store
	catalog *words.Catalog
	cfg     config.Config
	now     func() time.Time
}

// New constructs a Server, installs middleware, and registers routes.
func New(cfg config.Config, catalog *words.Catalog, st store.Store) *Server {
	s := &Server{
		r:       chi.NewRouter(),
		store:   st,
		catalog: catalog,
		cfg:     cfg,
		now:     time.Now,
	}
	limiter := newClientLimiter(cfg.HTTP.RateLimitRPS, cfg.HTTP.RateLimitBurst)

	// --- middleware ---
	s.r.Use(chimw.RequestID)                        // add X-Request-ID
	s.r.Use(chimw.RealIP)                           // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(requestLogger)                          // zerolog access log
	s.r.Use(chimw.Recoverer)                        // recover from panics
	s.r.Use(chimw.Timeout(cfg.HTTP.HandlerTimeout)) // bound handler time
	s.r.Use(jsonContentType)                        // default JSON responses
	s.r.Use(cors(cfg.HTTP.ClientOrigin))            // credentials-friendly CORS
	s.r.Use(limiter.middleware)                     // per-client rate limit

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"service":   "wordle-scorer",
			"endpoints": []string{"/health", "POST /game/new", "POST /game/guess", "POST /game/reset", "GET /game/{id}", "POST /score", "/daily/*"},
		})
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]int{"words": s.catalog.Len(), "games": s.store.Len()})
	})

	// --- game sessions ---
	s.r.Route("/game", func(r chi.Router) {
		r.Post("/new", s.handleNewGame)
		r.Post("/guess", s.handleGuess)
		r.Post("/reset", s.handleReset)
		r.Get("/{id}", s.handleGetGame)
	})
	s.r.Post("/score", s.handleScore)

	s.mountDaily(s.r)

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})
	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ------------------------------ GAME ---------------------------------------

type newGameReq struct {
	Answer string `json:"answer"` // optional fixed answer (testing)
}
type newGameRes struct {
	GameID string `json:"gameId"`
	Rows   int    `json:"rows"`
	Cols   int    `json:"cols"`
}

// handleNewGame creates a new game with a random (or requested) answer.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	// an empty body means "random answer"
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	s.startGame(w, r, req.Answer)
}

func (s *Server) startGame(w http.ResponseWriter, r *http.Request, answer string) {
	g, err := game.New(s.catalog, game.Options{Answer: answer, Rows: s.cfg.Game.MaxGuesses})
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.store.Save(r.Context(), g); err != nil {
		log.Error().Err(err).Msg("save game")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	log.Debug().Str("gameId", g.ID).Str("requestId", chimw.GetReqID(r.Context())).Msg("game created")
	writeJSON(w, http.StatusOK, newGameRes{GameID: g.ID, Rows: g.Rows, Cols: g.Cols})
}

type guessReq struct {
	GameID string `json:"gameId"`
	Guess  string `json:"guess"`
}
type guessRes struct {
	Marks    []game.Verdict `json:"marks"`
	State    game.State     `json:"state"`
	Solution string         `json:"solution,omitempty"`
}

// handleGuess applies a guess to a stored game.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	g, ok := s.lookup(w, r, req.GameID)
	if !ok {
		return
	}
	marks, state, err := g.ApplyGuess(req.Guess)
	switch {
	case errors.Is(err, game.ErrGameFinished):
		writeError(w, http.StatusConflict, err.Error())
		return
	case err != nil:
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res := guessRes{Marks: marks, State: state}
	if sol, done := g.Solution(); done {
		res.Solution = sol
		log.Info().Str("gameId", g.ID).Str("state", string(state)).Int("guesses", len(g.History())).Msg("game finished")
	}
	writeJSON(w, http.StatusOK, res)
}

type resetReq struct {
	GameID string `json:"gameId"`
	Word   string `json:"word"`
}
type resetRes struct {
	Applied bool       `json:"applied"`
	State   game.State `json:"state"`
}

// handleReset swaps a game's secret. Rejected words are reported, not errors.
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	var req resetReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	g, ok := s.lookup(w, r, req.GameID)
	if !ok {
		return
	}
	applied := g.Reset(req.Word).Applied()
	if !applied {
		log.Debug().Str("gameId", g.ID).Msg("reset ignored")
	}
	writeJSON(w, http.StatusOK, resetRes{Applied: applied, State: g.State()})
}

type gameRes struct {
	GameID   string     `json:"gameId"`
	Rows     int        `json:"rows"`
	Cols     int        `json:"cols"`
	Guesses  []string   `json:"guesses"`
	State    game.State `json:"state"`
	Solution string     `json:"solution,omitempty"`
}

// handleGetGame reports a game's progress; the solution only once finished.
func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	g, ok := s.lookup(w, r, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	sol, _ := g.Solution()
	writeJSON(w, http.StatusOK, gameRes{
		GameID:   g.ID,
		Rows:     g.Rows,
		Cols:     g.Cols,
		Guesses:  g.History(),
		State:    g.State(),
		Solution: sol,
	})
}

// ------------------------------ SCORE --------------------------------------

type scoreReq struct {
	Word  string `json:"word"`
	Guess string `json:"guess"`
}
type scoreRes struct {
	Marks []game.Verdict `json:"marks"`
}

// handleScore evaluates a guess against an explicit catalog word without
// creating a session.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req scoreReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	secret := game.NewSecret(s.catalog)
	if !secret.ResetString(strings.ToLower(strings.TrimSpace(req.Word))).Applied() {
		writeError(w, http.StatusBadRequest, game.ErrNotInWordList.Error())
		return
	}
	guess := strings.ToLower(strings.TrimSpace(req.Guess))
	if guess == "" {
		writeError(w, http.StatusBadRequest, game.ErrInvalidGuess.Error())
		return
	}
	writeJSON(w, http.StatusOK, scoreRes{Marks: secret.Evaluate(guess)})
}

// ------------------------------- helpers -----------------------------------

// lookup fetches a game or writes a 404.
func (s *Server) lookup(w http.ResponseWriter, r *http.Request, id string) (*game.Game, bool) {
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing_game_id")
		return nil, false
	}
	g, err := s.store.Get(r.Context(), id)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Warn().Err(err).Str("gameId", id).Msg("load game")
		}
		writeError(w, http.StatusNotFound, "not_found")
		return nil, false
	}
	return g, true
}

type errorRes struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, errorRes{Error: msg})
}
