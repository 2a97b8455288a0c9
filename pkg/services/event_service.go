package services

import (
	"context"
	"fmt"
	"time"

	"github.com/scribe-research/scribe/ent"
	"github.com/scribe-research/scribe/ent/event"
)

// EventService persists durable bus envelopes for subscriber catch-up.
type EventService struct {
	client *ent.Client
}

// NewEventService creates an EventService.
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// PersistEvent stores a durable envelope. Implements bus.Persister.
func (s *EventService) PersistEvent(httpCtx context.Context, missionID, channel string, payload map[string]any) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := s.client.Event.Create().
		SetMissionID(missionID).
		SetChannel(channel).
		SetPayload(payload).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to persist event: %w", err)
	}
	return nil
}

// GetEventsSince retrieves a channel's events after the given ID.
func (s *EventService) GetEventsSince(ctx context.Context, channel string, sinceID int) ([]*ent.Event, error) {
	events, err := s.client.Event.Query().
		Where(
			event.ChannelEQ(channel),
			event.IDGT(sinceID),
		).
		Order(ent.Asc(event.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}
	return events, nil
}

// CleanupMissionEvents removes all persisted events for a mission.
func (s *EventService) CleanupMissionEvents(ctx context.Context, missionID string) (int, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	n, err := s.client.Event.Delete().
		Where(event.MissionIDEQ(missionID)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup mission events: %w", err)
	}
	return n, nil
}

// CleanupOldEvents removes events older than the retention TTL.
func (s *EventService) CleanupOldEvents(ctx context.Context, ttlDays int) (int, error) {
	cutoff := time.Now().Add(-time.Duration(ttlDays) * 24 * time.Hour)

	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	n, err := s.client.Event.Delete().
		Where(event.CreatedAtLT(cutoff)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup old events: %w", err)
	}
	return n, nil
}
