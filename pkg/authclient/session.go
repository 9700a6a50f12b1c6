// Package authclient keeps an admin API session alive. It mirrors the
// dashboard behaviour: a cooperative timer wakes every few minutes, and when
// the access token is close to expiry it swaps the credential pair through
// the refresh endpoint before any request is rejected.
package authclient

import (
	"context"
	"errors"
	"sync"
	"time"
)

// State is the session lifecycle position.
type State int

const (
	StateUnauthenticated State = iota
	StateValid
	StateExpiring
	StateRefreshing
)

func (s State) String() string {
	switch s {
	case StateValid:
		return "valid"
	case StateExpiring:
		return "expiring"
	case StateRefreshing:
		return "refreshing"
	default:
		return "unauthenticated"
	}
}

// Pair is the client-held credential pair.
type Pair struct {
	AccessToken     string
	RefreshToken    string
	AccessExpiresAt time.Time
}

// RefreshFunc exchanges a refresh token for a new pair, typically by calling
// POST /api/auth/refresh.
type RefreshFunc func(ctx context.Context, refreshToken string) (Pair, error)

var ErrNotAuthenticated = errors.New("authclient: session is not authenticated")

const (
	defaultInterval  = 5 * time.Minute
	defaultThreshold = 5 * time.Minute
)

// Options tunes the session keeper. Zero values fall back to the defaults
// (check every 5 minutes, renew when expiry is within 5 minutes).
type Options struct {
	Interval  time.Duration
	Threshold time.Duration
	// OnState, when set, is invoked on every state transition.
	OnState func(State)
	// now is injectable for tests.
	now func() time.Time
}

// Session holds the pair and renews it eagerly. Only one refresh is in
// flight at a time; callers that need a token mid-refresh block in Token
// until the attempt settles.
type Session struct {
	mu      sync.Mutex
	pair    Pair
	state   State
	refresh RefreshFunc
	opts    Options
	done    chan struct{}
	// settled is closed when an in-flight refresh completes.
	settled chan struct{}
	once    sync.Once
}

// New starts a session keeper around an already-obtained pair. Close it on
// teardown or logout.
func New(pair Pair, refresh RefreshFunc, opts Options) *Session {
	if opts.Interval <= 0 {
		opts.Interval = defaultInterval
	}
	if opts.Threshold <= 0 {
		opts.Threshold = defaultThreshold
	}
	if opts.now == nil {
		opts.now = time.Now
	}

	s := &Session{
		pair:    pair,
		state:   StateValid,
		refresh: refresh,
		opts:    opts,
		done:    make(chan struct{}),
	}

	go s.run()
	return s
}

func (s *Session) run() {
	// Check immediately on mount, then on the tick.
	s.tick()

	t := time.NewTicker(s.opts.Interval)
	defer t.Stop()
	for {
		select {
		case <-s.done:
			return
		case <-t.C:
			s.tick()
		}
	}
}

func (s *Session) tick() {
	s.mu.Lock()
	if s.state == StateUnauthenticated || s.state == StateRefreshing {
		s.mu.Unlock()
		return
	}
	if s.pair.AccessExpiresAt.Sub(s.opts.now()) > s.opts.Threshold {
		s.mu.Unlock()
		return
	}

	s.setState(StateExpiring)
	s.setState(StateRefreshing)
	settled := make(chan struct{})
	s.settled = settled
	token := s.pair.RefreshToken
	s.mu.Unlock()

	pair, err := s.refresh(context.Background(), token)

	s.mu.Lock()
	if err != nil {
		// No immediate retry; a failed refresh ends the session.
		s.setState(StateUnauthenticated)
	} else {
		s.pair = pair
		s.setState(StateValid)
	}
	s.settled = nil
	s.mu.Unlock()
	close(settled)
}

// setState must be called with mu held.
func (s *Session) setState(next State) {
	s.state = next
	if s.opts.OnState != nil {
		s.opts.OnState(next)
	}
}

// Token returns the current access token, waiting out an in-flight refresh
// first so a request issued mid-rotation carries the fresh credential.
func (s *Session) Token(ctx context.Context) (string, error) {
	for {
		s.mu.Lock()
		settled := s.settled
		if settled == nil {
			defer s.mu.Unlock()
			if s.state == StateUnauthenticated {
				return "", ErrNotAuthenticated
			}
			return s.pair.AccessToken, nil
		}
		s.mu.Unlock()

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-settled:
		}
	}
}

// State reports the current lifecycle position.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Close stops the timer. The session transitions to unauthenticated and
// stays there.
func (s *Session) Close() {
	s.once.Do(func() {
		close(s.done)
		s.mu.Lock()
		s.setState(StateUnauthenticated)
		s.mu.Unlock()
	})
}
