package bus

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/scribe-research/scribe/pkg/models"
)

// defaultQueueCap is the per-subscriber soft queue bound. Feedback beyond
// this bound is shed oldest-first; durable envelopes are always enqueued.
const defaultQueueCap = 512

// defaultGracePeriod is how long a mission stream stays open after a
// terminal status so subscribers can drain final events.
const defaultGracePeriod = 60 * time.Second

// Persister stores durable envelopes for subscriber catch-up.
// Implemented by services.EventService.
type Persister interface {
	PersistEvent(ctx context.Context, missionID, channel string, payload map[string]any) error
}

// Bus multiplexes per-mission event streams to subscribers. Publishes never
// block: enqueueing is a bounded in-memory append under a short lock.
type Bus struct {
	mu      sync.Mutex
	streams map[string]*stream

	persist     Persister // nil = no persistence
	queueCap    int
	gracePeriod time.Duration
}

type stream struct {
	seq      int64
	subs     map[int]*Subscription
	nextSub  int
	terminal bool
}

// Option configures a Bus.
type Option func(*Bus)

// WithPersister enables durable-envelope persistence.
func WithPersister(p Persister) Option {
	return func(b *Bus) { b.persist = p }
}

// WithQueueCap overrides the per-subscriber queue bound.
func WithQueueCap(n int) Option {
	return func(b *Bus) { b.queueCap = n }
}

// WithGracePeriod overrides the terminal-status grace period.
func WithGracePeriod(d time.Duration) Option {
	return func(b *Bus) { b.gracePeriod = d }
}

// New creates a Bus.
func New(opts ...Option) *Bus {
	b := &Bus{
		streams:     make(map[string]*stream),
		queueCap:    defaultQueueCap,
		gracePeriod: defaultGracePeriod,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Subscription is one subscriber's view of a mission stream. Events arrive
// on C in publish order; the channel closes on Close or after the mission
// reaches a terminal state and the grace period elapses.
type Subscription struct {
	C <-chan *Envelope

	bus       *Bus
	missionID string
	id        int

	mu      sync.Mutex
	queue   []*Envelope
	notify  chan struct{}
	closed  bool
	done    chan struct{}
	out     chan *Envelope
	dropped int
}

// Subscribe registers for a mission's events. Events published before the
// subscription are not replayed here; callers needing history use the
// persisted events table first and deduplicate on log_id.
func (b *Bus) Subscribe(missionID string) *Subscription {
	b.mu.Lock()
	st := b.stream(missionID)
	id := st.nextSub
	st.nextSub++

	out := make(chan *Envelope, 16)
	sub := &Subscription{
		bus:       b,
		missionID: missionID,
		id:        id,
		notify:    make(chan struct{}, 1),
		done:      make(chan struct{}),
		out:       out,
	}
	sub.C = out
	st.subs[id] = sub
	b.mu.Unlock()

	go sub.pump()
	return sub
}

// Close unregisters the subscription and closes its channel.
func (s *Subscription) Close() {
	s.bus.mu.Lock()
	if st, ok := s.bus.streams[s.missionID]; ok {
		delete(st.subs, s.id)
	}
	s.bus.mu.Unlock()
	s.shutdown()
}

// Dropped returns how many feedback envelopes were shed from this
// subscriber's queue.
func (s *Subscription) Dropped() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dropped
}

func (s *Subscription) shutdown() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	close(s.done)
	s.mu.Unlock()
	// Wake the pump so it can drain the remaining queue and close out.
	select {
	case s.notify <- struct{}{}:
	default:
	}
}

// pump moves envelopes from the queue to the subscriber channel, preserving
// FIFO order. Runs until the subscription closes and the queue drains.
func (s *Subscription) pump() {
	defer close(s.out)
	for {
		s.mu.Lock()
		if len(s.queue) == 0 {
			if s.closed {
				s.mu.Unlock()
				return
			}
			s.mu.Unlock()
			<-s.notify
			continue
		}
		env := s.queue[0]
		s.queue = s.queue[1:]
		s.mu.Unlock()

		// Prefer delivery when the consumer (or channel buffer) can take
		// the envelope; only a consumer that stopped reading after close
		// loses the tail.
		select {
		case s.out <- env:
		default:
			select {
			case s.out <- env:
			case <-s.done:
				return
			}
		}
	}
}

// enqueue appends an envelope with the drop policy applied: when the queue
// is at capacity, the oldest feedback envelope is shed first; durable
// envelopes are always enqueued.
func (s *Subscription) enqueue(env *Envelope, limit int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	if len(s.queue) >= limit {
		shed := false
		for i, queued := range s.queue {
			if queued.Feedback != nil {
				s.queue = append(s.queue[:i], s.queue[i+1:]...)
				s.dropped++
				shed = true
				break
			}
		}
		if !shed && !env.Durable() {
			// Queue full of durable events; the incoming feedback is the
			// droppable one.
			s.dropped++
			return
		}
	}

	s.queue = append(s.queue, env)
	select {
	case s.notify <- struct{}{}:
	default:
	}
}

// stream returns (creating if needed) the stream for a mission.
// Caller holds b.mu.
func (b *Bus) stream(missionID string) *stream {
	st, ok := b.streams[missionID]
	if !ok {
		st = &stream{subs: make(map[int]*Subscription)}
		b.streams[missionID] = st
	}
	return st
}

// publish assigns the sequence number and fans out to subscribers.
func (b *Bus) publish(missionID string, env *Envelope) {
	b.mu.Lock()
	st := b.stream(missionID)
	st.seq++
	env.Seq = st.seq
	env.MissionID = missionID
	env.Timestamp = time.Now()
	subs := make([]*Subscription, 0, len(st.subs))
	for _, sub := range st.subs {
		subs = append(subs, sub)
	}
	limit := b.queueCap
	b.mu.Unlock()

	for _, sub := range subs {
		sub.enqueue(env, limit)
	}
}

// persistDurable stores a durable envelope when a persister is configured.
// Persistence failures are logged, not propagated: live delivery proceeds.
func (b *Bus) persistDurable(ctx context.Context, missionID string, env *Envelope) {
	if b.persist == nil {
		return
	}
	raw, err := json.Marshal(env)
	if err != nil {
		slog.Error("Failed to marshal envelope for persistence",
			"mission_id", missionID, "kind", env.Kind(), "error", err)
		return
	}
	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		slog.Error("Failed to round-trip envelope payload",
			"mission_id", missionID, "kind", env.Kind(), "error", err)
		return
	}
	if err := b.persist.PersistEvent(ctx, missionID, MissionChannel(missionID), payload); err != nil {
		slog.Warn("Failed to persist bus event",
			"mission_id", missionID, "kind", env.Kind(), "error", err)
	}
}

// PublishUpdate publishes an execution log entry. Durable.
func (b *Bus) PublishUpdate(ctx context.Context, missionID string, entry *models.ExecutionLogEntry) {
	env := &Envelope{Update: entry}
	b.publish(missionID, env)
	b.persistDurable(ctx, missionID, env)
}

// PublishFeedback publishes transient agent feedback. May be shed under
// pressure; never persisted.
func (b *Bus) PublishFeedback(_ context.Context, missionID string, fb FeedbackPayload) {
	b.publish(missionID, &Envelope{Feedback: &fb})
}

// PublishStats publishes a usage rollup or increment. Transient.
func (b *Bus) PublishStats(_ context.Context, missionID string, st StatsPayload) {
	b.publish(missionID, &Envelope{Stats: &st})
}

// PublishStatus publishes a mission status change. Durable. Terminal
// statuses start the grace period after which the stream closes.
func (b *Bus) PublishStatus(ctx context.Context, missionID, status string) {
	env := &Envelope{Status: &StatusPayload{Status: status}}
	b.publish(missionID, env)
	b.persistDurable(ctx, missionID, env)

	if models.IsTerminalStatus(status) {
		b.scheduleClose(missionID)
	}
}

// PublishTruncate signals subscribers to discard artifacts with
// round >= afterRound. Durable.
func (b *Bus) PublishTruncate(ctx context.Context, missionID string, afterRound int) {
	env := &Envelope{TruncateData: &TruncatePayload{AfterRound: afterRound}}
	b.publish(missionID, env)
	b.persistDurable(ctx, missionID, env)
}

// Reopen cancels a pending terminal close, for missions resumed within the
// grace period.
func (b *Bus) Reopen(missionID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if st, ok := b.streams[missionID]; ok {
		st.terminal = false
	}
}

func (b *Bus) scheduleClose(missionID string) {
	b.mu.Lock()
	st := b.stream(missionID)
	st.terminal = true
	b.mu.Unlock()

	time.AfterFunc(b.gracePeriod, func() {
		b.mu.Lock()
		st, ok := b.streams[missionID]
		if !ok || !st.terminal {
			b.mu.Unlock()
			return
		}
		subs := make([]*Subscription, 0, len(st.subs))
		for _, sub := range st.subs {
			subs = append(subs, sub)
		}
		delete(b.streams, missionID)
		b.mu.Unlock()

		for _, sub := range subs {
			sub.shutdown()
		}
	})
}

// SubscriberCount returns the number of active subscribers for a mission.
func (b *Bus) SubscriberCount(missionID string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if st, ok := b.streams[missionID]; ok {
		return len(st.subs)
	}
	return 0
}
