package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"venture/internal/config"
	"venture/internal/game"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Server struct {
	cfg    config.APIConfig
	log    *slog.Logger
	engine *game.Engine
	sink   *game.RingSink
	mux    *chi.Mux
}

func New(cfg config.APIConfig, logger *slog.Logger, engine *game.Engine, sink *game.RingSink) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		cfg:    cfg,
		log:    logger,
		engine: engine,
		sink:   sink,
		mux:    chi.NewRouter(),
	}
	s.routes()
	return s
}

func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) routes() {
	r := s.mux
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	r.Route("/v1", func(r chi.Router) {
		r.Get("/state", s.handleState)
		r.Get("/startups", s.handleStartupsList)
		r.Get("/startups/{id}", s.handleStartupDetail)
		r.Get("/investments", s.handleInvestmentsList)
		r.Get("/events", s.handleEventsList)
		r.Get("/notifications", s.handleNotifications)
		r.Get("/leaderboard", s.handleLeaderboard)
		r.Get("/achievements", s.handleAchievements)

		r.Post("/round/start", s.handleRoundStart)
		r.Post("/round/end", s.handleRoundEnd)
		r.Post("/round/reset", s.handleRoundReset)
		r.Post("/investments", s.handleInvest)
		r.Post("/investments/{id}/sell", s.handleDivest)
	})
}

// playerID resolves the opaque identity header, falling back to the
// configured anonymous default. The engine never interprets it.
func (s *Server) playerID(r *http.Request) string {
	if id := strings.TrimSpace(r.Header.Get("X-Player-ID")); id != "" {
		return id
	}
	return s.cfg.UserID
}

func (s *Server) handleState(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.engine.State())
}

func (s *Server) handleStartupsList(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"startups": s.engine.Startups()})
}

func (s *Server) handleStartupDetail(w http.ResponseWriter, r *http.Request) {
	out, err := s.engine.StartupByID(chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleInvestmentsList(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"investments": s.engine.State().Investments})
}

func (s *Server) handleEventsList(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"events": s.engine.ReleasedEvents()})
}

func (s *Server) handleNotifications(w http.ResponseWriter, _ *http.Request) {
	items := []game.Notification{}
	if s.sink != nil {
		items = s.sink.Recent()
	}
	writeJSON(w, http.StatusOK, map[string]any{"notifications": items})
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"rows": s.engine.Leaderboard()})
}

func (s *Server) handleAchievements(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"achievements": s.engine.Achievements()})
}

func (s *Server) handleRoundStart(w http.ResponseWriter, r *http.Request) {
	session, err := s.engine.StartRound()
	if err != nil {
		writeDomainError(w, err)
		return
	}
	s.log.Info("round start accepted", "player_id", s.playerID(r), "session_id", session.ID)
	writeJSON(w, http.StatusCreated, session)
}

func (s *Server) handleRoundEnd(w http.ResponseWriter, r *http.Request) {
	result, err := s.engine.EndRound()
	if err != nil {
		writeDomainError(w, err)
		return
	}
	s.log.Info("round ended", "player_id", s.playerID(r), "return_pct", result.ReturnPct)
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleRoundReset(w http.ResponseWriter, r *http.Request) {
	s.engine.ResetToMenu()
	s.log.Info("reset to menu", "player_id", s.playerID(r))
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (s *Server) handleInvest(w http.ResponseWriter, r *http.Request) {
	var in struct {
		StartupID    string `json:"startup_id"`
		Shares       int64  `json:"shares"`
		AmountMicros int64  `json:"amount_micros"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	inv, err := s.engine.Invest(strings.TrimSpace(in.StartupID), in.Shares, in.AmountMicros)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, inv)
}

func (s *Server) handleDivest(w http.ResponseWriter, r *http.Request) {
	inv, err := s.engine.Divest(chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, inv)
}

func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, game.ErrInsufficientFunds),
		errors.Is(err, game.ErrInvalidAmount),
		errors.Is(err, game.ErrInvalidShares):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, game.ErrReputationLocked):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, game.ErrStartupNotFound), errors.Is(err, game.ErrInvestmentNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, game.ErrInvestmentNotActive),
		errors.Is(err, game.ErrNoActiveRound),
		errors.Is(err, game.ErrRoundInProgress):
		writeError(w, http.StatusConflict, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func decodeJSON(r *http.Request, out any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		return err
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"error": strings.TrimSpace(message)})
}
