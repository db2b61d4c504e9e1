package activity

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
)

// LiveSource is satisfied by *Client.
type LiveSource interface {
	Live(ctx context.Context) (*Live, error)
}

// Poller keeps the most recent successful Live snapshot. Failed polls leave
// the previous snapshot in place. Runs are allowed to overlap and whichever
// finishes last wins.
type Poller struct {
	source    LiveSource
	logger    *log.Logger
	interval  time.Duration
	scheduler *gocron.Scheduler

	mu      sync.RWMutex
	latest  *Live
	lastErr error
}

func NewPoller(source LiveSource, interval time.Duration, logger *log.Logger) *Poller {
	return &Poller{
		source:    source,
		logger:    logger,
		interval:  interval,
		scheduler: gocron.NewScheduler(time.UTC),
	}
}

// Start schedules Poll every interval, beginning immediately.
func (p *Poller) Start() error {
	if _, err := p.scheduler.Every(p.interval).StartImmediately().Do(p.poll); err != nil {
		return err
	}
	p.scheduler.StartAsync()
	return nil
}

func (p *Poller) Stop() {
	p.scheduler.Stop()
}

func (p *Poller) poll() {
	ctx, cancel := context.WithTimeout(context.Background(), p.interval)
	defer cancel()
	p.Poll(ctx)
}

// Poll fetches once and records the result.
func (p *Poller) Poll(ctx context.Context) {
	live, err := p.source.Live(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()

	p.lastErr = err
	if err != nil {
		if p.logger != nil {
			p.logger.Printf("activity poll failed: %v", err)
		}
		return
	}
	p.latest = live
}

// Latest returns the last good snapshot, or nil if none has arrived yet.
func (p *Poller) Latest() *Live {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.latest == nil {
		return nil
	}
	snapshot := *p.latest
	return &snapshot
}

// LastError reports the outcome of the most recent poll.
func (p *Poller) LastError() error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.lastErr
}
