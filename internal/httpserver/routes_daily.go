// internal/httpserver/routes_daily.go
//
// HTTP routes for the "Daily Challenge" mode.
//   - GET  /daily/today → today's date key
//   - POST /daily/new   → start a game whose secret is today's word
//
// Daily games are ordinary sessions: guesses go through POST /game/guess.
// Word selection is deterministic from date + salt (see package daily).

package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/wordle/apps/scorer/internal/daily"
)

type todayRes struct {
	Date string `json:"date"`
}

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	r.Route("/daily", func(r chi.Router) {
		r.Get("/today", s.handleDailyToday)
		r.Post("/new", s.handleDailyNew)
	})
}

func (s *Server) handleDailyToday(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, todayRes{Date: daily.DateKey(s.now())})
}

// handleDailyNew starts a session seeded with the day's word.
func (s *Server) handleDailyNew(w http.ResponseWriter, r *http.Request) {
	word := daily.Pick(s.catalog, s.now(), s.cfg.Game.DailySalt)
	s.startGame(w, r, word.String())
}
