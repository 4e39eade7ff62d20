// internal/httpserver/routes_daily.go
//
// HTTP routes for the "Daily Challenge" mode.
// Exposes three endpoints under /daily:
//   - POST /daily/new         → start today's game (creates or reuses a session)
//   - POST /daily/guess       → submit an attempt for today's game
//   - GET  /daily/leaderboard → top 20 results for today (or ?date=YYYY-MM-DD)
//
// Everyone shares one target per UTC day (HMAC of the date with DAILY_SALT).
// Each player can finish once per day; the win is persisted to the DB and the
// session dropped. Sessions from earlier days are evicted when the date rolls over.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/numguess/internal/daily"
	"github.com/robalobadob/numguess/internal/game"
)

// dailyServer wraps dependencies for /daily endpoints.
type dailyServer struct {
	srv      *Server
	store    *daily.Store
	sessions map[string]*game.Session // keyed by userID|date
	day      string                   // date key of the newest session
	mu       sync.Mutex               // guards sessions, day and the sessions' state
}

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	dd := &dailyServer{
		srv:      s,
		store:    daily.NewStore(s.db),
		sessions: make(map[string]*game.Session),
	}
	s.daily = dd
	r.Route("/daily", func(r chi.Router) {
		r.Post("/new", dd.handleNew)
		r.Post("/guess", dd.handleGuess)
		r.Get("/leaderboard", dd.handleLeaderboard)
	})
}

// playerID returns the authenticated user ID, or the anonymous cookie ID for guests.
func (d *dailyServer) playerID(w http.ResponseWriter, r *http.Request) string {
	if me := currentUser(r); me != nil {
		return me.ID
	}
	return d.srv.ensureAnonID(w, r)
}

type dailyNewRes struct {
	GameID string `json:"gameId"`
	Date   string `json:"date"`
	Played bool   `json:"played"`
	Min    uint32 `json:"min"`
	Max    uint32 `json:"max"`
}

// handleNew creates or reuses today's session.
//   - Already won today (DB row) → Played=true, no session.
//   - Otherwise create/reuse the in-memory session and return its ID.
func (d *dailyServer) handleNew(w http.ResponseWriter, r *http.Request) {
	uid := d.playerID(w, r)
	now := d.srv.now()
	date := daily.DateKey(now)

	if played, err := d.store.AlreadyPlayed(r.Context(), uid, date); err != nil {
		log.Warn().Err(err).Str("player", uid).Msg("daily already played")
	} else if played {
		_ = json.NewEncoder(w).Encode(dailyNewRes{Date: date, Played: true})
		return
	}

	key := uid + "|" + date
	d.mu.Lock()
	d.rollover(date)
	sess, ok := d.sessions[key]
	if !ok {
		var err error
		sess, err = game.New(daily.Source{Date: now, Salt: d.srv.cfg.DailySalt})
		if err != nil {
			d.mu.Unlock()
			log.Error().Err(err).Str("date", date).Msg("draw daily target")
			jsonError(w, http.StatusInternalServerError, "draw_failed")
			return
		}
		sess.StartedAt = now.UTC()
		d.sessions[key] = sess
	}
	res := dailyNewRes{GameID: sess.ID, Date: date, Played: sess.Finished(), Min: sess.Min, Max: sess.Max}
	d.mu.Unlock()

	_ = json.NewEncoder(w).Encode(res)
}

// rollover drops sessions from earlier days once date moves on. Callers hold d.mu.
func (d *dailyServer) rollover(date string) {
	if d.day == date {
		return
	}
	suffix := "|" + date
	dropped := 0
	for key := range d.sessions {
		if !strings.HasSuffix(key, suffix) {
			delete(d.sessions, key)
			dropped++
		}
	}
	if dropped > 0 {
		log.Info().Str("date", date).Int("dropped", dropped).Msg("daily sessions rolled over")
	}
	d.day = date
}

type dailyGuessReq struct {
	GameID string          `json:"gameId"`
	Guess  json.RawMessage `json:"guess"`
}

// handleGuess applies an attempt to today's session; a win is persisted once.
func (d *dailyServer) handleGuess(w http.ResponseWriter, r *http.Request) {
	uid := d.playerID(w, r)

	var p dailyGuessReq
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil || p.GameID == "" {
		jsonError(w, http.StatusBadRequest, "bad_json")
		return
	}

	now := d.srv.now()
	date := daily.DateKey(now)
	key := uid + "|" + date

	d.mu.Lock()
	d.rollover(date)
	sess, ok := d.sessions[key]
	if !ok || sess.ID != p.GameID {
		d.mu.Unlock()
		jsonError(w, http.StatusConflict, "no_session")
		return
	}
	outcome, err := sess.Submit(attemptText(p.Guess))
	res := guessRes{Outcome: outcome, State: sess.State, Attempts: sess.Attempts}
	target, started := sess.Target, sess.StartedAt
	d.mu.Unlock()

	if errors.Is(err, game.ErrFinished) {
		jsonError(w, http.StatusConflict, "game_finished")
		return
	}

	if outcome == game.OutcomeWin {
		elapsed := int(now.Sub(started).Milliseconds())
		inserted, err := d.store.InsertResult(r.Context(), daily.Result{
			UserID: uid, Date: date, Target: target, Attempts: res.Attempts, ElapsedMs: elapsed,
		})
		if err != nil {
			// Keep the finished session so /daily/new still reports the day as played.
			log.Warn().Err(err).Str("player", uid).Msg("insert daily result")
		} else {
			if !inserted {
				log.Debug().Str("player", uid).Str("date", date).Msg("daily result already recorded")
			}
			d.mu.Lock()
			if d.sessions[key] == sess {
				delete(d.sessions, key)
			}
			d.mu.Unlock()
		}
	}
	_ = json.NewEncoder(w).Encode(res)
}

type lbRes struct {
	Date string        `json:"date"`
	Top  []daily.LBRow `json:"top"`
}

// handleLeaderboard returns the leaderboard for ?date= (default today).
func (d *dailyServer) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = daily.DateKey(d.srv.now())
	}
	rows, err := d.store.Leaderboard(r.Context(), date, 20)
	if err != nil {
		log.Error().Err(err).Str("date", date).Msg("daily leaderboard")
		jsonError(w, http.StatusInternalServerError, "server_error")
		return
	}
	_ = json.NewEncoder(w).Encode(lbRes{Date: date, Top: rows})
}
