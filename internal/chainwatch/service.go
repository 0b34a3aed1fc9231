// Package chainwatch polls blockchains for new activity. Each configured chain
// gets a Watch that owns its WatchState and runs one Detector on a fixed
// interval; the Service starts every Watch in its own goroutine.
package chainwatch

import (
	"context"
	"errors"
	"sync"
)

var (
	// ErrServiceAlreadyStarted is returned if Start is called more than once.
	ErrServiceAlreadyStarted = errors.New("service already started")

	// ErrNoWatches is returned by Start when the service has nothing to run.
	ErrNoWatches = errors.New("no watches configured")
)

// Service runs a set of watches until it is closed.
type Service interface {
	// Start launches every watch in its own goroutine and returns immediately.
	Start(ctx context.Context) error

	// Close stops every watch and waits for running ticks to return. It is
	// safe to call Close even if the service was never started.
	Close()
}

type closeFunc func()

type service struct {
	mu        sync.Mutex
	isStarted bool
	closeFunc closeFunc

	watches []*Watch
}

var _ Service = (*service)(nil)

func (s *service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return ErrServiceAlreadyStarted
	}

	if len(s.watches) == 0 {
		return ErrNoWatches
	}

	ctx, cancel := context.WithCancel(ctx)

	var wg sync.WaitGroup
	for _, w := range s.watches {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.Run(ctx)
		}()
	}

	s.closeFunc = func() {
		cancel()
		wg.Wait()
	}
	s.isStarted = true
	return nil
}

func (s *service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closeFunc != nil {
		s.closeFunc()
	}
	s.isStarted = false
	s.closeFunc = nil
}

// Watches returns the watches managed by the service.
func (s *service) Watches() []*Watch {
	return s.watches
}

// New creates a Service for the given watches.
func New(watches ...*Watch) *service {
	return &service{
		watches: watches,
	}
}
