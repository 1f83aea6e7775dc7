package controller

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/Turf-FC/website/trackerapi"
)

// Status is the upstream connectivity state shown in the admin header.
type Status string

const (
	StatusConnecting   Status = "Connecting"
	StatusConnected    Status = "Connected"
	StatusDisconnected Status = "Disconnected"
)

// statusStore holds the connectivity state. Each probe takes a sequence
// number when it starts; a probe may only record its outcome if no later
// probe has reported first, so a slow stale response never overwrites a
// fresher one.
type statusStore struct {
	mu      sync.Mutex
	issued  uint64
	applied uint64
	status  Status
}

func newStatusStore() *statusStore {
	return &statusStore{status: StatusConnecting}
}

func (s *statusStore) begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issued++
	return s.issued
}

func (s *statusStore) set(seq uint64, status Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq <= s.applied {
		return
	}
	s.applied = seq
	s.status = status
}

func (s *statusStore) current() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

func (c *controller) ConnectionStatus() Status {
	return c.status.current()
}

// checkConnection probes the auth-check endpoint once. A 401 still proves the
// API is reachable, so it counts as connected.
func (c *controller) checkConnection(ctx context.Context) {
	seq := c.status.begin()
	err := c.api.Check(ctx)
	switch {
	case err == nil || errors.Is(err, trackerapi.ErrUnauthorized):
		c.status.set(seq, StatusConnected)
	default:
		c.status.set(seq, StatusDisconnected)
		log.Printf("tracker api unreachable: %v", err)
	}
}

func (c *controller) RunPeriodicConnectionChecks(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	ticker := time.NewTicker(frequency)
	defer wg.Done()
	defer ticker.Stop()

	run := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		c.checkConnection(ctx)
	}

	run()
	for {
		select {
		case <-shutdown:
			return
		case <-ticker.C:
			run()
		}
	}
}
