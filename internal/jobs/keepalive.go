// Package jobs implements background tasks for the job board API.
//
// The jobs package contains work that runs independently of HTTP request
// handling. Each worker owns its goroutine and stops cleanly on Stop().
package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/openhire/jobboard/internal/database"
)

// Keepalive periodically pings the database connection. SurrealDB is
// reached over a websocket, which idles out without traffic; the ping
// keeps the connection warm and surfaces storage outages in the logs
// before a request hits them.
type Keepalive struct {
	db       database.Database
	interval time.Duration
	stopCh   chan struct{}
	wg       sync.WaitGroup
	running  bool
	mu       sync.Mutex
}

// NewKeepalive creates a keepalive worker for the given database
func NewKeepalive(db database.Database, interval time.Duration) *Keepalive {
	if interval == 0 {
		interval = 30 * time.Second
	}
	return &Keepalive{
		db:       db,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the keepalive loop
func (k *Keepalive) Start() {
	k.mu.Lock()
	if k.running {
		k.mu.Unlock()
		return
	}
	k.running = true
	k.mu.Unlock()

	k.wg.Add(1)
	go k.run()
	slog.Info("database keepalive started", slog.Duration("interval", k.interval))
}

// Stop gracefully stops the keepalive loop
func (k *Keepalive) Stop() {
	k.mu.Lock()
	if !k.running {
		k.mu.Unlock()
		return
	}
	k.running = false
	k.mu.Unlock()

	close(k.stopCh)
	k.wg.Wait()
	slog.Info("database keepalive stopped")
}

// IsRunning returns whether the worker is running
func (k *Keepalive) IsRunning() bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.running
}

func (k *Keepalive) run() {
	defer k.wg.Done()

	ticker := time.NewTicker(k.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			k.ping()
		case <-k.stopCh:
			return
		}
	}
}

func (k *Keepalive) ping() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := k.db.Ping(ctx); err != nil {
		slog.Warn("database keepalive ping failed", slog.Any("error", err))
	}
}
