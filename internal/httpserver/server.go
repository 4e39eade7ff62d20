// internal/httpserver/server.go
//
// HTTP server wiring for the guessing game.
// Responsibilities:
//   - Router + middleware (request IDs, logging, panic recovery, timeouts, JSON, CORS).
//   - Public endpoints: "/", "/health".
//   - Game endpoints (optional auth): POST /game/new, POST /game/guess.
//   - Daily Challenge endpoints (optional auth): mounted under /daily.
//   - Auth + profile endpoints: see auth.go.
//
// Notes:
//   - Live sessions sit in the store; the games table only tracks owner,
//     attempts and status. The target never leaves the process.
//   - Unparseable guesses answer 200 with outcome "ignored"; the session is unchanged.

package httpserver

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/robalobadob/numguess/internal/game"
	"github.com/robalobadob/numguess/internal/secret"
	"github.com/robalobadob/numguess/internal/store"
)

// Config carries the environment-derived settings of the server.
type Config struct {
	JWTSecret      string
	JWTExpiresDays int
	CookieName     string
	ClientOrigin   string
	Production     bool
	DailySalt      string
	BcryptCost     int
}

// withDefaults fills unset fields.
func (c Config) withDefaults() Config {
	if c.JWTSecret == "" {
		c.JWTSecret = "dev_secret_change_me"
	}
	if c.JWTExpiresDays <= 0 {
		c.JWTExpiresDays = 14
	}
	if c.CookieName == "" {
		c.CookieName = "numguess_token"
	}
	if c.ClientOrigin == "" {
		c.ClientOrigin = "http://localhost:5173"
	}
	if c.DailySalt == "" {
		c.DailySalt = "local_dev_salt"
	}
	if c.BcryptCost == 0 {
		c.BcryptCost = bcrypt.DefaultCost
	}
	return c
}

// Server bundles router, session store, DB handle and target source.
type Server struct {
	r     *chi.Mux
	store store.Store
	db    *sql.DB
	src   secret.Source
	cfg   Config
	now   func() time.Time
	daily *dailyServer
}

// New constructs a Server, installs middleware and registers routes.
func New(st store.Store, db *sql.DB, src secret.Source, cfg Config) *Server {
	s := &Server{r: chi.NewRouter(), store: st, db: db, src: src, cfg: cfg.withDefaults(), now: time.Now}

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(requestLogger)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(10 * time.Second))
	s.r.Use(jsonContentType)
	s.r.Use(s.cors)

	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"service":"numguess","endpoints":["/health","POST /game/new","POST /game/guess","/daily/*","/auth/*"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	s.r.With(s.withOptionalAuth()).Post("/game/new", s.handleNewGame)
	s.r.With(s.withOptionalAuth()).Post("/game/guess", s.handleGuess)

	s.mountDaily(s.r.With(s.withOptionalAuth()))
	s.mountAuthRoutes()

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		jsonError(w, http.StatusNotFound, "not_found")
	})
	return s
}

// Start serves HTTP on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context, addr string) error {
	hs := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errc := make(chan error, 1)
	go func() { errc <- hs.ListenAndServe() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		log.Info().Msg("shutting down")
		return hs.Shutdown(shutdownCtx)
	}
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ------------------------------ GAME ---------------------------------------

type newGameRes struct {
	GameID string `json:"gameId"`
	Min    uint32 `json:"min"`
	Max    uint32 `json:"max"`
}

// handleNewGame creates a session and records an owner row (user or anonymous).
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	g, err := game.New(s.src)
	if err != nil {
		log.Error().Err(err).Msg("draw secret")
		jsonError(w, http.StatusInternalServerError, "draw_failed")
		return
	}
	if err := s.store.Save(r.Context(), g); err != nil {
		log.Error().Err(err).Msg("save game")
		jsonError(w, http.StatusInternalServerError, "save_failed")
		return
	}

	started := g.StartedAt.Format(time.RFC3339)
	if me := currentUser(r); me != nil {
		if _, err := s.db.ExecContext(r.Context(), `INSERT INTO games (id, user_id, started_at, status) VALUES (?,?,?,?)`,
			g.ID, me.ID, started, string(g.State)); err != nil {
			log.Warn().Err(err).Str("gameId", g.ID).Msg("insert user game row")
		}
		if _, err := s.db.ExecContext(r.Context(), `UPDATE users SET games_played = games_played + 1 WHERE id=?`, me.ID); err != nil {
			log.Warn().Err(err).Str("user", me.ID).Msg("bump games played")
		}
	} else {
		anon := s.ensureAnonID(w, r)
		if _, err := s.db.ExecContext(r.Context(), `INSERT INTO games (id, anonymous_id, started_at, status) VALUES (?,?,?,?)`,
			g.ID, anon, started, string(g.State)); err != nil {
			log.Warn().Err(err).Str("gameId", g.ID).Msg("insert anon game row")
		}
	}

	_ = json.NewEncoder(w).Encode(newGameRes{GameID: g.ID, Min: g.Min, Max: g.Max})
}

type guessReq struct {
	GameID string          `json:"gameId"`
	Guess  json.RawMessage `json:"guess"`
}

type guessRes struct {
	Outcome  game.Outcome `json:"outcome"`
	State    game.State   `json:"state"`
	Attempts int          `json:"attempts"`
}

// attemptText accepts the guess as a JSON string or a bare JSON number.
func attemptText(raw json.RawMessage) string {
	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		return str
	}
	return strings.TrimSpace(string(raw))
}

// player identifies the requester: a signed-in user, a guest cookie, or both.
type player struct {
	userID string
	anonID string
}

// playerOf reads the requester's identity without issuing a new anon cookie.
func playerOf(r *http.Request) player {
	var p player
	if me := currentUser(r); me != nil {
		p.userID = me.ID
	}
	if c, err := r.Cookie(anonCookieName); err == nil {
		p.anonID = c.Value
	}
	return p
}

// ownsGame reports whether the games row for id belongs to p.
func (s *Server) ownsGame(ctx context.Context, id string, p player) (bool, error) {
	var owned bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM games WHERE id=? AND (user_id=? OR anonymous_id=?))`,
		id, p.userID, p.anonID).Scan(&owned)
	return owned, err
}

// handleGuess submits one attempt to the requester's live session and persists progress.
// Sessions owned by someone else are reported as not found.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.GameID == "" {
		jsonError(w, http.StatusBadRequest, "bad_json")
		return
	}

	p := playerOf(r)
	owned, err := s.ownsGame(r.Context(), req.GameID, p)
	if err != nil {
		log.Error().Err(err).Str("gameId", req.GameID).Msg("check game owner")
		jsonError(w, http.StatusInternalServerError, "db_error")
		return
	}
	if !owned {
		jsonError(w, http.StatusNotFound, "not_found")
		return
	}

	var outcome game.Outcome
	g, err := s.store.Update(r.Context(), req.GameID, func(g *game.Session) error {
		o, err := g.Submit(attemptText(req.Guess))
		outcome = o
		return err
	})
	switch {
	case errors.Is(err, store.ErrNotFound):
		jsonError(w, http.StatusNotFound, "not_found")
		return
	case errors.Is(err, game.ErrFinished):
		jsonError(w, http.StatusConflict, "game_finished")
		return
	case err != nil:
		jsonError(w, http.StatusInternalServerError, "update_failed")
		return
	}

	if outcome != game.OutcomeIgnored {
		s.persistProgress(r.Context(), p, g)
	}

	_ = json.NewEncoder(w).Encode(guessRes{Outcome: outcome, State: g.State, Attempts: g.Attempts})
}

// persistProgress writes a session snapshot to its games row and, on a win,
// credits the owning user. Snapshots older than the stored attempt count are
// dropped, so concurrent guesses cannot roll the row back. Best effort:
// failures are logged, never surfaced to the player.
func (s *Server) persistProgress(ctx context.Context, p player, g *game.Session) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Warn().Err(err).Msg("begin progress tx")
		return
	}
	defer func() { _ = tx.Rollback() }()

	var finishedAt any
	if g.Finished() {
		finishedAt = g.FinishedAt.Format(time.RFC3339)
	}
	res, err := tx.ExecContext(ctx, `UPDATE games
	    SET attempts=?, status=?, finished_at=COALESCE(?, finished_at)
	    WHERE id=? AND (user_id=? OR anonymous_id=?) AND attempts < ?`,
		g.Attempts, string(g.State), finishedAt, g.ID, p.userID, p.anonID, g.Attempts)
	if err != nil {
		log.Warn().Err(err).Str("gameId", g.ID).Msg("update attempts")
		return
	}
	if n, err := res.RowsAffected(); err != nil || n != 1 {
		log.Debug().Str("gameId", g.ID).Int("attempts", g.Attempts).Msg("stale or foreign progress skipped")
		return
	}

	if g.Finished() && p.userID != "" {
		if err := recordWin(ctx, tx, p.userID, g.ID, g.Attempts); err != nil {
			log.Warn().Err(err).Str("user", p.userID).Msg("record win")
			return
		}
	}
	if err := tx.Commit(); err != nil {
		log.Warn().Err(err).Msg("commit progress")
	}
}
