package main

import (
	"sync"

	"github.com/myrjola/alibi/internal/engine"
)

const (
	defaultCrimeType = "murder"
	defaultSeed      = uint64(1)
	defaultMaxTurns  = 20
)

// gameSession is one session's engine. The mutex serializes turns; the
// engine itself is not safe for concurrent use.
type gameSession struct {
	mu     sync.Mutex
	engine *engine.Engine
}

// gameStore keeps the live engine of each browser session, keyed by the scs
// session token. Engines live in memory; durability goes through the save
// endpoints.
type gameStore struct {
	mu       sync.Mutex
	sessions map[string]*gameSession
}

func newGameStore() *gameStore {
	return &gameStore{sessions: make(map[string]*gameSession)}
}

// acquire returns the session's game, creating a fresh default one on first
// use, with its mutex held. The caller must call release when done.
func (s *gameStore) acquire(token string) (*gameSession, error) {
	s.mu.Lock()
	session, ok := s.sessions[token]
	if !ok {
		eng, err := engine.New(defaultCrimeType, defaultSeed, engine.WithMaxTurns(defaultMaxTurns))
		if err != nil {
			s.mu.Unlock()
			return nil, err
		}
		session = &gameSession{engine: eng}
		s.sessions[token] = session
	}
	s.mu.Unlock()

	session.mu.Lock()
	return session, nil
}

func (s *gameSession) release() {
	s.mu.Unlock()
}

// replace swaps in a new engine for the session, e.g. after reset or restore.
func (s *gameStore) replace(token string, eng *engine.Engine) *gameSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[token]
	if !ok {
		session = &gameSession{engine: eng}
		s.sessions[token] = session
		return session
	}
	session.mu.Lock()
	session.engine = eng
	session.mu.Unlock()
	return session
}
