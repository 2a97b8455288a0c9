package mission

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/scribe-research/scribe/ent"
	"github.com/scribe-research/scribe/pkg/config"
	"github.com/scribe-research/scribe/pkg/services"
)

// ErrQueueFull indicates the run queue cannot accept more missions.
var ErrQueueFull = errors.New("mission queue full")

// Runner executes one claimed mission to a terminal or stopped state.
// The runner owns all intermediate persistence; the pool only claims,
// cancels, and recovers.
type Runner interface {
	RunMission(ctx context.Context, m *ent.Mission) error
}

// Pool services background mission runs so API calls return immediately.
// Start/Resume enqueue mission IDs; workers claim them with a conditional
// status update and register a cancel function for Stop.
type Pool struct {
	cfg      config.PoolConfig
	missions *services.MissionService
	runner   Runner

	queue    chan string
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Active mission cancel registry: mission_id → cancel function.
	mu     sync.RWMutex
	active map[string]context.CancelFunc

	started bool
}

// NewPool creates a worker pool.
func NewPool(cfg config.PoolConfig, missions *services.MissionService, runner Runner) *Pool {
	queueSize := cfg.QueueSize
	if queueSize <= 0 {
		queueSize = 64
	}
	return &Pool{
		cfg:      cfg,
		missions: missions,
		runner:   runner,
		queue:    make(chan string, queueSize),
		stopCh:   make(chan struct{}),
		active:   make(map[string]context.CancelFunc),
	}
}

// Start spawns the worker goroutines. Safe to call once; subsequent calls
// are no-ops.
func (p *Pool) Start(ctx context.Context) {
	if p.started {
		slog.Warn("Mission pool already started, ignoring duplicate Start call")
		return
	}
	p.started = true

	slog.Info("Starting mission pool", "worker_count", p.cfg.WorkerCount)
	for i := 0; i < p.cfg.WorkerCount; i++ {
		p.wg.Add(1)
		go p.runWorker(ctx, fmt.Sprintf("worker-%d", i))
	}
}

// Stop signals workers to finish their current missions and waits.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()
	slog.Info("Mission pool stopped")
}

// Enqueue submits a mission for execution.
func (p *Pool) Enqueue(missionID string) error {
	select {
	case p.queue <- missionID:
		return nil
	default:
		return ErrQueueFull
	}
}

// CancelMission triggers context cancellation for an in-flight mission.
// Returns false when the mission is not running here.
func (p *Pool) CancelMission(missionID string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if cancel, ok := p.active[missionID]; ok {
		cancel()
		return true
	}
	return false
}

// IsActive reports whether a mission is currently running in this pool.
func (p *Pool) IsActive(missionID string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	_, ok := p.active[missionID]
	return ok
}

func (p *Pool) runWorker(ctx context.Context, workerID string) {
	defer p.wg.Done()
	log := slog.With("worker_id", workerID)
	log.Info("Mission worker started")

	for {
		select {
		case <-p.stopCh:
			log.Info("Mission worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, mission worker shutting down")
			return
		case missionID := <-p.queue:
			p.process(ctx, log, missionID)
		}
	}
}

// process claims and runs one mission.
func (p *Pool) process(ctx context.Context, log *slog.Logger, missionID string) {
	m, err := p.missions.ClaimForRun(ctx, missionID)
	if err != nil {
		if errors.Is(err, services.ErrNotClaimed) {
			// Another worker won, or the mission moved on. Not an error.
			log.Debug("Mission not claimable", "mission_id", missionID)
			return
		}
		log.Error("Failed to claim mission", "mission_id", missionID, "error", err)
		return
	}

	log.Info("Mission claimed", "mission_id", missionID)

	runCtx, cancel := context.WithTimeout(ctx, p.cfg.MissionTimeout)
	p.register(missionID, cancel)
	defer func() {
		p.unregister(missionID)
		cancel()
	}()

	if err := p.runner.RunMission(runCtx, m); err != nil {
		log.Error("Mission run returned error", "mission_id", missionID, "error", err)
	}
	log.Info("Mission processing complete", "mission_id", missionID)
}

func (p *Pool) register(missionID string, cancel context.CancelFunc) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.active[missionID] = cancel
}

func (p *Pool) unregister(missionID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.active, missionID)
}
