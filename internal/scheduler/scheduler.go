// Package scheduler drives the engine's time-based transitions: promoting
// scheduled auctions and settling expired ones on fixed intervals.
package scheduler

import (
	"fmt"
	"time"

	"auction-engine/utils"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

// Sweeper is the slice of the lifecycle controller the scheduler invokes.
type Sweeper interface {
	PromoteScheduled() (int, error)
	SettleExpired() (int, error)
}

// Scheduler runs the promote and settle sweeps on their own intervals. A
// sweep still running when its next tick fires is skipped, not queued.
type Scheduler struct {
	cron *cron.Cron
}

// New builds a stopped scheduler; call Start to begin ticking.
func New(sweeper Sweeper, promoteEvery, settleEvery time.Duration) (*Scheduler, error) {
	cronLogger := cron.PrintfLogger(log.StandardLogger())
	c := cron.New(
		cron.WithSeconds(),
		cron.WithChain(cron.SkipIfStillRunning(cronLogger)),
	)

	if _, err := c.AddFunc(every(promoteEvery), func() {
		runSweep("promote_scheduled", sweeper.PromoteScheduled)
	}); err != nil {
		return nil, fmt.Errorf("scheduler: failed to register promote sweep: %w", err)
	}

	if _, err := c.AddFunc(every(settleEvery), func() {
		runSweep("settle_expired", sweeper.SettleExpired)
	}); err != nil {
		return nil, fmt.Errorf("scheduler: failed to register settle sweep: %w", err)
	}

	return &Scheduler{cron: c}, nil
}

// Start begins the sweep ticks in the scheduler's own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop stops the ticks and blocks until any in-flight sweep finishes.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func runSweep(name string, sweep func() (int, error)) {
	processed, err := sweep()
	if err != nil {
		utils.Error("sweep failed", map[string]any{
			"sweep": name,
			"error": err.Error(),
		})
		return
	}
	if processed > 0 {
		utils.Info("sweep processed auctions", map[string]any{
			"sweep": name,
			"count": processed,
		})
	}
}

func every(interval time.Duration) string {
	return fmt.Sprintf("@every %s", interval)
}
