// Package mission implements the mission controller: lifecycle operations,
// the phase-loop runner, the worker pool servicing background runs, and the
// in-memory context store with write-through persistence.
package mission

import (
	"context"
	"fmt"
	"sync"

	"github.com/scribe-research/scribe/pkg/models"
	"github.com/scribe-research/scribe/pkg/services"
)

// MissionContext is the in-memory working state for one running mission.
// Mutation of the persisted aggregates (metadata, plan, pads, section
// content, notes) goes through Store methods, which hold the per-mission lock
// (single exclusive writer) and write through to the mission row.
type MissionContext struct {
	MissionID       string
	UserID          string
	UserRequest     string
	UseWeb          bool
	DocumentGroupID string

	Metadata       models.MissionMetadata
	Plan           *models.Plan
	Pads           models.Pads
	SectionContent map[string]string
	Notes          []models.Note
}

// Store caches mission contexts and writes every mutation through to the
// services layer. One exclusive writer per mission; Snapshot returns copies
// of the mutable aggregates, while Load returns the cached context itself.
type Store struct {
	missions *services.MissionService
	notes    *services.NoteService

	mu   sync.Mutex
	ctxs map[string]*entry
}

type entry struct {
	mu sync.Mutex
	mc *MissionContext
}

// NewStore creates a Store.
func NewStore(missions *services.MissionService, notes *services.NoteService) *Store {
	return &Store{
		missions: missions,
		notes:    notes,
		ctxs:     make(map[string]*entry),
	}
}

// Load reads (or returns the cached) mission context.
func (s *Store) Load(ctx context.Context, missionID string) (*MissionContext, error) {
	e := s.entryFor(missionID)
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.mc != nil {
		return e.mc, nil
	}

	row, err := s.missions.GetMission(ctx, missionID)
	if err != nil {
		return nil, err
	}
	metadata, err := services.MetadataOf(row)
	if err != nil {
		return nil, err
	}
	plan, err := services.PlanOf(row)
	if err != nil {
		return nil, err
	}
	pads, err := services.PadsOf(row)
	if err != nil {
		return nil, err
	}
	notes, _, err := s.notes.ListNotes(ctx, missionID, 10000, 0)
	if err != nil {
		return nil, err
	}

	mc := &MissionContext{
		MissionID:       missionID,
		UserID:          row.UserID,
		UserRequest:     row.UserRequest,
		UseWeb:          row.UseWeb,
		DocumentGroupID: row.DocumentGroupID,
		Metadata:        metadata,
		Plan:            plan,
		Pads:            pads,
		SectionContent:  row.SectionContent,
		Notes:           notes,
	}
	if mc.SectionContent == nil {
		mc.SectionContent = make(map[string]string)
	}
	e.mc = mc
	return mc, nil
}

// Snapshot returns a value copy of the mission context with the mutable
// aggregates (notes, pads, section content) copied, safe to read while
// other goroutines keep writing through the store.
func (s *Store) Snapshot(missionID string) (MissionContext, bool) {
	e := s.entryFor(missionID)
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.mc == nil {
		return MissionContext{}, false
	}

	snap := *e.mc
	snap.Notes = append([]models.Note(nil), e.mc.Notes...)
	snap.Pads = models.Pads{
		GoalPad:    append([]string(nil), e.mc.Pads.GoalPad...),
		ThoughtPad: append([]string(nil), e.mc.Pads.ThoughtPad...),
	}
	if e.mc.Pads.Scratchpads != nil {
		snap.Pads.Scratchpads = make(map[string]string, len(e.mc.Pads.Scratchpads))
		for k, v := range e.mc.Pads.Scratchpads {
			snap.Pads.Scratchpads[k] = v
		}
	}
	snap.SectionContent = make(map[string]string, len(e.mc.SectionContent))
	for k, v := range e.mc.SectionContent {
		snap.SectionContent[k] = v
	}
	return snap, true
}

// Evict drops the cached context (terminal missions, resume truncation).
func (s *Store) Evict(missionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.ctxs, missionID)
}

// UpdateMetadata mutates the metadata under the mission lock and persists.
func (s *Store) UpdateMetadata(ctx context.Context, missionID string, mutate func(*models.MissionMetadata)) error {
	return s.withContext(ctx, missionID, func(mc *MissionContext) error {
		mutate(&mc.Metadata)
		return s.missions.SaveMetadata(ctx, missionID, mc.Metadata)
	})
}

// SavePlan validates, stores, and caches the plan.
func (s *Store) SavePlan(ctx context.Context, missionID string, plan *models.Plan) error {
	return s.withContext(ctx, missionID, func(mc *MissionContext) error {
		if err := s.missions.SavePlan(ctx, missionID, plan); err != nil {
			return err
		}
		mc.Plan = plan
		return nil
	})
}

// AppendThought adds to the thought pad, trimming to the configured bound.
func (s *Store) AppendThought(ctx context.Context, missionID string, limit int, thoughts ...string) error {
	if len(thoughts) == 0 {
		return nil
	}
	return s.withContext(ctx, missionID, func(mc *MissionContext) error {
		mc.Pads.ThoughtPad = append(mc.Pads.ThoughtPad, thoughts...)
		if limit > 0 && len(mc.Pads.ThoughtPad) > limit {
			mc.Pads.ThoughtPad = mc.Pads.ThoughtPad[len(mc.Pads.ThoughtPad)-limit:]
		}
		return s.missions.SavePads(ctx, missionID, mc.Pads)
	})
}

// AppendGoal adds to the goal pad.
func (s *Store) AppendGoal(ctx context.Context, missionID string, goals ...string) error {
	if len(goals) == 0 {
		return nil
	}
	return s.withContext(ctx, missionID, func(mc *MissionContext) error {
		mc.Pads.GoalPad = append(mc.Pads.GoalPad, goals...)
		return s.missions.SavePads(ctx, missionID, mc.Pads)
	})
}

// SetScratchpad records an agent's scratchpad update.
func (s *Store) SetScratchpad(ctx context.Context, missionID, agentName, content string) error {
	if content == "" {
		return nil
	}
	return s.withContext(ctx, missionID, func(mc *MissionContext) error {
		if mc.Pads.Scratchpads == nil {
			mc.Pads.Scratchpads = make(map[string]string)
		}
		mc.Pads.Scratchpads[agentName] = content
		return s.missions.SavePads(ctx, missionID, mc.Pads)
	})
}

// AddNotes persists new notes and extends the cache. Returns the stored
// notes in creation order.
func (s *Store) AddNotes(ctx context.Context, missionID string, reqs []models.CreateNoteRequest) ([]models.Note, error) {
	var stored []models.Note
	err := s.withContext(ctx, missionID, func(mc *MissionContext) error {
		for _, req := range reqs {
			req.MissionID = missionID
			n, err := s.notes.CreateNote(ctx, req)
			if err != nil {
				return err
			}
			mc.Notes = append(mc.Notes, n)
			stored = append(stored, n)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stored, nil
}

// ApplyAssignments writes assignment hints through and updates the cache.
func (s *Store) ApplyAssignments(ctx context.Context, missionID string, assignments []models.NoteAssignment) error {
	return s.withContext(ctx, missionID, func(mc *MissionContext) error {
		for _, a := range assignments {
			if err := s.notes.UpdateAssignment(ctx, a); err != nil {
				return fmt.Errorf("assign note %s: %w", a.NoteID, err)
			}
			for i := range mc.Notes {
				if mc.Notes[i].NoteID == a.NoteID {
					if a.SectionID != "" {
						mc.Notes[i].SectionID = a.SectionID
					}
					mc.Notes[i].PotentialSections = a.PotentialSections
					mc.Notes[i].IsRelevant = a.IsRelevant
				}
			}
		}
		return nil
	})
}

// SetSectionContent stores one section's written content.
func (s *Store) SetSectionContent(ctx context.Context, missionID, sectionID, content string) error {
	return s.withContext(ctx, missionID, func(mc *MissionContext) error {
		mc.SectionContent[sectionID] = content
		return s.missions.SaveSectionContent(ctx, missionID, mc.SectionContent)
	})
}

// TruncateFromRound removes notes (and section drafts touched by them)
// with round >= fromRound from cache and storage. Log truncation is the
// controller's job.
func (s *Store) TruncateFromRound(ctx context.Context, missionID string, fromRound int) error {
	return s.withContext(ctx, missionID, func(mc *MissionContext) error {
		if _, err := s.notes.DeleteNotesFromRound(ctx, missionID, fromRound); err != nil {
			return err
		}
		kept := mc.Notes[:0]
		dropped := false
		for _, n := range mc.Notes {
			if n.Round < fromRound {
				kept = append(kept, n)
			} else if _, ok := mc.SectionContent[n.SectionID]; ok && n.SectionID != "" {
				delete(mc.SectionContent, n.SectionID)
				dropped = true
			}
		}
		mc.Notes = kept
		if dropped {
			return s.missions.SaveSectionContent(ctx, missionID, mc.SectionContent)
		}
		return nil
	})
}

func (s *Store) entryFor(missionID string) *entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.ctxs[missionID]
	if !ok {
		e = &entry{}
		s.ctxs[missionID] = e
	}
	return e
}

// withContext runs fn with the mission's context loaded and locked.
func (s *Store) withContext(ctx context.Context, missionID string, fn func(*MissionContext) error) error {
	if _, err := s.Load(ctx, missionID); err != nil {
		return err
	}
	e := s.entryFor(missionID)
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.mc == nil {
		return fmt.Errorf("mission context for %s evicted mid-operation", missionID)
	}
	return fn(e.mc)
}
