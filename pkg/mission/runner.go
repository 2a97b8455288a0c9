package mission

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/scribe-research/scribe/ent"
	"github.com/scribe-research/scribe/pkg/agents"
	"github.com/scribe-research/scribe/pkg/config"
	"github.com/scribe-research/scribe/pkg/models"
)

// maxConcurrentSections bounds section interleaving within a round. LLM
// concurrency is separately bounded by the per-user dispatch semaphore.
const maxConcurrentSections = 4

// phaseOrder is the canonical phase sequence.
var phaseOrder = []string{
	PhaseQuestions,
	PhaseExploration,
	PhaseOutline,
	PhaseResearch,
	PhaseAssignment,
	PhaseWriting,
	PhaseFinalize,
}

// RunMission drives the phase loop for a claimed mission. Implements
// pool.Runner. All failures are caught at this boundary: the mission ends
// in a terminal or stopped status, never in limbo.
func (c *Controller) RunMission(ctx context.Context, m *ent.Mission) error {
	missionID := m.ID
	log := slog.With("mission_id", missionID)

	err := c.runPhases(ctx, missionID)
	if err == nil {
		return nil
	}

	status, errorInfo := classifyRunError(err)
	log.Warn("Mission run ended early", "status", status, "error", err)
	if setErr := c.setStatus(context.Background(), missionID, status, errorInfo, true); setErr != nil {
		log.Error("Failed to record terminal status", "error", setErr)
		return setErr
	}
	return nil
}

func (c *Controller) runPhases(ctx context.Context, missionID string) error {
	mc, err := c.store.Load(ctx, missionID)
	if err != nil {
		return err
	}
	uc := userContextFor(mc)
	resolver := c.resolvers.get(missionID, mc.Metadata, c.cfg.Defaults)

	// One-shot start work: optimizer overrides land in metadata before the
	// first structured phase; the document-group flag is evaluated now, at
	// start time, not create time.
	if resolver.Params(uc).AutoOptimizeParams && !mc.Metadata.OptimizerApplied {
		c.runOptimizer(ctx, mc, uc, resolver)
	}
	if resolver.Params(uc).AutoCreateDocumentGroup && mc.DocumentGroupID == "" {
		c.autoCreateDocumentGroup(ctx, mc)
	}

	startPhase := mc.Metadata.CurrentPhase
	if startPhase == "" {
		startPhase = PhaseQuestions
	}

	// Resumes re-entering past the planning phases go straight to running.
	switch startPhase {
	case PhaseQuestions, PhaseExploration, PhaseOutline:
	default:
		if err := c.setStatus(ctx, missionID, models.StatusRunning, "", false); err != nil {
			return err
		}
	}

	started := false
	for _, phase := range phaseOrder {
		if !started && phase != startPhase {
			continue
		}
		started = true

		if err := ctx.Err(); err != nil {
			return err
		}
		if err := c.store.UpdateMetadata(ctx, missionID, func(md *models.MissionMetadata) {
			md.CurrentPhase = phase
		}); err != nil {
			return err
		}

		if err := c.runPhase(ctx, mc, uc, resolver, phase); err != nil {
			return fmt.Errorf("phase %s: %w", phase, err)
		}
	}
	return nil
}

func (c *Controller) runPhase(ctx context.Context, mc *MissionContext, uc *models.UserContext, resolver *config.Resolver, phase string) error {
	switch phase {
	case PhaseQuestions:
		return c.phaseQuestions(ctx, mc, uc, resolver)
	case PhaseExploration:
		return c.phaseExploration(ctx, mc, uc, resolver)
	case PhaseOutline:
		return c.phaseOutline(ctx, mc, uc, resolver)
	case PhaseResearch:
		return c.phaseResearch(ctx, mc, uc, resolver)
	case PhaseAssignment:
		return c.phaseAssignment(ctx, mc, uc, resolver)
	case PhaseWriting:
		return c.phaseWriting(ctx, mc, uc, resolver)
	case PhaseFinalize:
		return c.phaseFinalize(ctx, mc, uc)
	}
	return fmt.Errorf("unknown phase %q", phase)
}

// bundle assembles the agent context bundle from a fresh store snapshot,
// so concurrent section workers never read state another worker is
// mutating.
func (c *Controller) bundle(mc *MissionContext, uc *models.UserContext, round int) *agents.Bundle {
	snap, ok := c.store.Snapshot(mc.MissionID)
	if !ok {
		snap = *mc
	}
	resolver := c.resolvers.get(mc.MissionID, snap.Metadata, c.cfg.Defaults)
	return &agents.Bundle{
		MissionID:       mc.MissionID,
		User:            uc,
		UserRequest:     mc.UserRequest,
		DocumentGroupID: snap.DocumentGroupID,
		Questions:       snap.Metadata.FinalQuestions,
		Plan:            snap.Plan,
		Notes:           snap.Notes,
		Pads:            snap.Pads,
		Params:          resolver.Params(uc),
		Round:           round,
		Feedback:        busFeedback{bus: c.bus, missionID: mc.MissionID},
	}
}

// retryAgent runs an agent operation, retrying once on failure. The second
// failure is the phase's failure.
func retryAgent[T any](ctx context.Context, fn func() (T, error)) (T, error) {
	v, err := fn()
	if err != nil && ctx.Err() == nil {
		slog.Warn("Agent call failed, retrying once", "error", err)
		v, err = fn()
	}
	return v, err
}

// --- phases ---

// phaseQuestions ensures final_questions exist: planner candidates refined
// by the messenger. final_questions in metadata is the canonical field.
func (c *Controller) phaseQuestions(ctx context.Context, mc *MissionContext, uc *models.UserContext, resolver *config.Resolver) error {
	if len(mc.Metadata.FinalQuestions) > 0 {
		return nil
	}

	b := c.bundle(mc, uc, 0)
	questions, err := retryAgent(ctx, func() ([]string, error) {
		return c.agents.Planner.GenerateQuestions(ctx, b)
	})
	if err != nil || len(questions) == 0 {
		c.log(ctx, models.ExecutionLogEntry{
			MissionID:     mc.MissionID,
			AgentName:     agents.NamePlanner,
			Action:        "Generate Research Questions",
			Status:        models.LogStatusWarning,
			OutputSummary: "falling back to default questions derived from the request",
			ErrorMessage:  errString(err),
		})
		questions = agents.DefaultQuestions(mc.UserRequest)
	}

	refined, err := c.agents.Messenger.RefineQuestions(ctx, b, questions, "")
	if err != nil {
		// Refinement is best-effort; the planner questions stand.
		refined = questions
	}

	if err := c.store.UpdateMetadata(ctx, mc.MissionID, func(md *models.MissionMetadata) {
		md.FinalQuestions = refined
	}); err != nil {
		return err
	}

	c.log(ctx, models.ExecutionLogEntry{
		MissionID:     mc.MissionID,
		AgentName:     agents.NamePlanner,
		Action:        "Question Confirmation",
		Status:        models.LogStatusSuccess,
		OutputSummary: fmt.Sprintf("%d final questions", len(refined)),
		FullOutput:    map[string]any{"final_questions": refined},
	})
	return nil
}

// phaseExploration runs the initial exploration searches per question.
func (c *Controller) phaseExploration(ctx context.Context, mc *MissionContext, uc *models.UserContext, resolver *config.Resolver) error {
	for _, question := range mc.Metadata.FinalQuestions {
		if err := ctx.Err(); err != nil {
			return err
		}
		b := c.bundle(mc, uc, 0)
		result, err := c.agents.Researcher.ExploreQuestion(ctx, b, question, mc.UseWeb)
		if err != nil {
			return err
		}

		stored, err := c.store.AddNotes(ctx, mc.MissionID, result.Notes)
		if err != nil {
			return err
		}
		c.emitNoteFeedback(ctx, mc.MissionID, stored)

		status := models.LogStatusSuccess
		if len(result.Warnings) > 0 {
			status = models.LogStatusWarning
		}
		c.log(ctx, models.ExecutionLogEntry{
			MissionID:     mc.MissionID,
			AgentName:     agents.NameResearcher,
			Action:        "Initial Exploration",
			Status:        status,
			InputSummary:  question,
			OutputSummary: fmt.Sprintf("%d preliminary notes", len(stored)),
			ErrorMessage:  strings.Join(result.Warnings, "; "),
			ToolCalls:     result.ToolCalls,
		})
	}
	return nil
}

// phaseOutline generates the report outline, then flips the mission to
// running: research rounds only start with a non-null plan.
func (c *Controller) phaseOutline(ctx context.Context, mc *MissionContext, uc *models.UserContext, resolver *config.Resolver) error {
	if mc.Plan == nil {
		b := c.bundle(mc, uc, 0)
		plan, err := retryAgent(ctx, func() (*models.Plan, error) {
			return c.agents.Planner.GenerateOutline(ctx, b)
		})
		if err != nil {
			return err
		}
		if len(plan.ReportOutline) == 0 {
			// Empty outline: regenerate once from default questions.
			c.log(ctx, models.ExecutionLogEntry{
				MissionID:     mc.MissionID,
				AgentName:     agents.NamePlanner,
				Action:        "Outline Generation",
				Status:        models.LogStatusWarning,
				OutputSummary: "empty outline, retrying with default questions",
			})
			if err := c.store.UpdateMetadata(ctx, mc.MissionID, func(md *models.MissionMetadata) {
				md.FinalQuestions = agents.DefaultQuestions(mc.UserRequest)
			}); err != nil {
				return err
			}
			b = c.bundle(mc, uc, 0)
			plan, err = c.agents.Planner.GenerateOutline(ctx, b)
			if err != nil {
				return err
			}
			if len(plan.ReportOutline) == 0 {
				return fmt.Errorf("planner produced an empty outline twice")
			}
		}
		if err := c.store.SavePlan(ctx, mc.MissionID, plan); err != nil {
			return err
		}
		if plan.MissionGoal != "" {
			if err := c.store.AppendGoal(ctx, mc.MissionID, plan.MissionGoal); err != nil {
				return err
			}
		}
		c.log(ctx, models.ExecutionLogEntry{
			MissionID:     mc.MissionID,
			AgentName:     agents.NamePlanner,
			Action:        "Outline Generation",
			Status:        models.LogStatusSuccess,
			OutputSummary: fmt.Sprintf("%d top-level sections", len(plan.ReportOutline)),
		})
	}

	return c.setStatus(ctx, mc.MissionID, models.StatusRunning, "", false)
}

// phaseResearch runs the structured research rounds.
func (c *Controller) phaseResearch(ctx context.Context, mc *MissionContext, uc *models.UserContext, resolver *config.Resolver) error {
	if mc.Plan == nil {
		return fmt.Errorf("research phase entered without a plan")
	}
	params := resolver.Params(uc)

	startRound := mc.Metadata.CurrentRound
	if startRound < 1 {
		startRound = 1
	}

	for round := startRound; round <= params.StructuredResearchRounds; round++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := c.store.UpdateMetadata(ctx, mc.MissionID, func(md *models.MissionMetadata) {
			md.CurrentRound = round
		}); err != nil {
			return err
		}

		c.log(ctx, models.ExecutionLogEntry{
			MissionID:    mc.MissionID,
			AgentName:    agents.NameResearcher,
			Action:       fmt.Sprintf("Research Round %d", round),
			Status:       models.LogStatusRunning,
			InputSummary: fmt.Sprintf("%d leaf sections", len(mc.Plan.LeafSections())),
			Round:        round,
		})

		if err := c.researchRound(ctx, mc, uc, params, round); err != nil {
			return err
		}

		if err := c.interRoundReflection(ctx, mc, uc, params, round); err != nil {
			return err
		}
	}
	return nil
}

// researchRound runs the per-section cycles for one round. Sections
// interleave; cycles within a section are strictly sequential.
func (c *Controller) researchRound(ctx context.Context, mc *MissionContext, uc *models.UserContext, params config.ResearchParams, round int) error {
	snap, ok := c.store.Snapshot(mc.MissionID)
	if !ok || snap.Plan == nil {
		return fmt.Errorf("mission context unavailable for round %d", round)
	}
	leaves := snap.Plan.LeafSections()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentSections)
	for _, section := range leaves {
		g.Go(func() error {
			return c.sectionCycles(gctx, mc, uc, params, round, section)
		})
	}
	return g.Wait()
}

// sectionCycles runs up to MaxResearchCyclesPerSection cycles for one
// section. A cycle yielding zero new relevant notes costs one extra cycle
// from the remaining budget.
func (c *Controller) sectionCycles(ctx context.Context, mc *MissionContext, uc *models.UserContext, params config.ResearchParams, round int, section *models.Section) error {
	remaining := params.MaxResearchCyclesPerSection
	for cycle := 1; remaining > 0; cycle++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		b := c.bundle(mc, uc, round)
		b.Section = section
		b.Notes = notesForSection(b.Notes, section.SectionID)

		result, err := retryAgent(ctx, func() (*agents.CycleResult, error) {
			return c.agents.Researcher.ResearchCycle(ctx, b, mc.UseWeb)
		})
		if err != nil {
			c.log(ctx, models.ExecutionLogEntry{
				MissionID:    mc.MissionID,
				AgentName:    agents.NameResearcher,
				Action:       fmt.Sprintf("Research Cycle %d (%s)", cycle, section.Title),
				Status:       models.LogStatusFailure,
				ErrorMessage: err.Error(),
				Round:        round,
			})
			return err
		}

		stored, err := c.store.AddNotes(ctx, mc.MissionID, result.Notes)
		if err != nil {
			return err
		}
		c.emitNoteFeedback(ctx, mc.MissionID, stored)
		if result.Thought != "" {
			if err := c.store.AppendThought(ctx, mc.MissionID, params.ThoughtPadContextLimit, result.Thought); err != nil {
				return err
			}
		}
		if result.Scratchpad != "" {
			if err := c.store.SetScratchpad(ctx, mc.MissionID, agents.NameResearcher, result.Scratchpad); err != nil {
				return err
			}
		}

		status := models.LogStatusSuccess
		if len(result.Warnings) > 0 {
			status = models.LogStatusWarning
		}
		c.log(ctx, models.ExecutionLogEntry{
			MissionID:     mc.MissionID,
			AgentName:     agents.NameResearcher,
			Action:        fmt.Sprintf("Research Cycle %d (%s)", cycle, section.Title),
			Status:        status,
			OutputSummary: fmt.Sprintf("%d new notes", len(stored)),
			ErrorMessage:  strings.Join(result.Warnings, "; "),
			ToolCalls:     result.ToolCalls,
			Round:         round,
		})

		remaining--
		if len(stored) == 0 {
			remaining--
		}
	}
	return nil
}

// interRoundReflection reviews the round and, unless replanning is
// skipped, lets the planner revise the outline from its feedback.
func (c *Controller) interRoundReflection(ctx context.Context, mc *MissionContext, uc *models.UserContext, params config.ResearchParams, round int) error {
	b := c.bundle(mc, uc, round)
	reflection, err := retryAgent(ctx, func() (*agents.ReflectionResult, error) {
		return c.agents.Reflection.ReviewRound(ctx, b)
	})
	if err != nil {
		return err
	}

	if err := c.store.AppendThought(ctx, mc.MissionID, params.ThoughtPadContextLimit, reflection.Thoughts...); err != nil {
		return err
	}

	action := fmt.Sprintf("Round %d Reflection", round)
	if reflection.ReviseOutline && !params.SkipFinalReplanning {
		b = c.bundle(mc, uc, round)
		revised, err := c.agents.Planner.ReviseOutline(ctx, b, reflection.OutlineFeedback)
		if err != nil {
			// A failed revision keeps the current outline; the round's
			// evidence is intact.
			c.log(ctx, models.ExecutionLogEntry{
				MissionID:    mc.MissionID,
				AgentName:    agents.NameReflection,
				Action:       action,
				Status:       models.LogStatusWarning,
				ErrorMessage: fmt.Sprintf("outline revision failed: %v", err),
				Round:        round,
			})
			return nil
		}
		if err := c.store.SavePlan(ctx, mc.MissionID, revised); err != nil {
			return err
		}
	}

	c.log(ctx, models.ExecutionLogEntry{
		MissionID:     mc.MissionID,
		AgentName:     agents.NameReflection,
		Action:        action,
		Status:        models.LogStatusSuccess,
		OutputSummary: fmt.Sprintf("%d thoughts, revise_outline=%t", len(reflection.Thoughts), reflection.ReviseOutline),
		Round:         round,
	})
	return nil
}

// phaseAssignment distributes notes to sections.
func (c *Controller) phaseAssignment(ctx context.Context, mc *MissionContext, uc *models.UserContext, resolver *config.Resolver) error {
	b := c.bundle(mc, uc, mc.Metadata.CurrentRound)
	assignments, err := retryAgent(ctx, func() ([]models.NoteAssignment, error) {
		return c.agents.Assigner.AssignNotes(ctx, b)
	})
	if err != nil {
		c.log(ctx, models.ExecutionLogEntry{
			MissionID:    mc.MissionID,
			AgentName:    agents.NameAssigner,
			Action:       "Note Assignment",
			Status:       models.LogStatusFailure,
			ErrorMessage: err.Error(),
		})
		return err
	}

	if err := c.store.ApplyAssignments(ctx, mc.MissionID, assignments); err != nil {
		return err
	}
	c.log(ctx, models.ExecutionLogEntry{
		MissionID:     mc.MissionID,
		AgentName:     agents.NameAssigner,
		Action:        "Note Assignment",
		Status:        models.LogStatusSuccess,
		OutputSummary: fmt.Sprintf("%d notes assigned", len(assignments)),
	})
	return nil
}

// phaseWriting runs the writing passes over all leaf sections.
func (c *Controller) phaseWriting(ctx context.Context, mc *MissionContext, uc *models.UserContext, resolver *config.Resolver) error {
	params := resolver.Params(uc)
	leaves := mc.Plan.LeafSections()

	for pass := 1; pass <= params.WritingPasses; pass++ {
		for _, section := range leaves {
			if err := ctx.Err(); err != nil {
				return err
			}

			b := c.bundle(mc, uc, mc.Metadata.CurrentRound)
			b.Section = section
			b.Notes = notesForSection(b.Notes, section.SectionID)
			if prev := mc.SectionContent[section.SectionID]; prev != "" {
				b.PreviousContent = headString(prev, params.WritingPreviousContentPreviewChars)
			}

			content, err := retryAgent(ctx, func() (string, error) {
				return c.agents.Writer.WriteSection(ctx, b)
			})
			if err != nil {
				c.log(ctx, models.ExecutionLogEntry{
					MissionID:    mc.MissionID,
					AgentName:    agents.NameWriter,
					Action:       fmt.Sprintf("Writing Pass %d (%s)", pass, section.Title),
					Status:       models.LogStatusFailure,
					ErrorMessage: err.Error(),
				})
				return err
			}
			if err := c.store.SetSectionContent(ctx, mc.MissionID, section.SectionID, content); err != nil {
				return err
			}
			c.log(ctx, models.ExecutionLogEntry{
				MissionID:     mc.MissionID,
				AgentName:     agents.NameWriter,
				Action:        fmt.Sprintf("Writing Pass %d (%s)", pass, section.Title),
				Status:        models.LogStatusSuccess,
				OutputSummary: fmt.Sprintf("%d chars", len(content)),
			})
		}
	}
	return nil
}

// phaseFinalize assembles the report, appends references, and completes
// the mission.
func (c *Controller) phaseFinalize(ctx context.Context, mc *MissionContext, uc *models.UserContext) error {
	snap, ok := c.store.Snapshot(mc.MissionID)
	if !ok {
		snap = *mc
	}
	report := assembleReport(&snap)
	if report == "" {
		return fmt.Errorf("finalization produced an empty report")
	}

	if err := c.missions.SaveFinalReport(ctx, mc.MissionID, report); err != nil {
		return err
	}
	if err := c.setStatus(ctx, mc.MissionID, models.StatusCompleted, "", false); err != nil {
		return err
	}
	c.meter.PublishAbsolute(ctx, mc.MissionID)

	c.log(ctx, models.ExecutionLogEntry{
		MissionID:     mc.MissionID,
		AgentName:     agents.NameWriter,
		Action:        "Finalize Report",
		Status:        models.LogStatusSuccess,
		OutputSummary: fmt.Sprintf("%d chars", len(report)),
	})
	return nil
}

// --- small helpers ---

func (c *Controller) emitNoteFeedback(ctx context.Context, missionID string, notes []models.Note) {
	for _, n := range notes {
		busFeedback{bus: c.bus, missionID: missionID}.Emit(ctx, "note_generated", map[string]any{
			"note_id":     n.NoteID,
			"source_type": n.SourceType,
			"section_id":  n.SectionID,
		})
	}
}

func notesForSection(notes []models.Note, sectionID string) []models.Note {
	var out []models.Note
	for _, n := range notes {
		if n.SectionID == sectionID && n.IsRelevant {
			out = append(out, n)
		}
	}
	return out
}

func headString(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	return s[:n]
}

// assembleReport concatenates section content in outline order and appends
// a numbered reference list built from cited web sources.
func assembleReport(mc *MissionContext) string {
	var sb strings.Builder
	if mc.Plan == nil {
		return ""
	}
	if mc.Plan.MissionGoal != "" {
		fmt.Fprintf(&sb, "# %s\n\n", mc.Plan.MissionGoal)
	}

	var walk func(sections []*models.Section, depth int)
	walk = func(sections []*models.Section, depth int) {
		for _, s := range sections {
			fmt.Fprintf(&sb, "%s %s\n\n", strings.Repeat("#", depth+2), s.Title)
			if content, ok := mc.SectionContent[s.SectionID]; ok && content != "" {
				sb.WriteString(content)
				sb.WriteString("\n\n")
			}
			walk(s.Subsections, depth+1)
		}
	}
	walk(mc.Plan.ReportOutline, 0)

	if refs := webReferences(mc.Notes); len(refs) > 0 {
		sb.WriteString("## References\n\n")
		for i, ref := range refs {
			fmt.Fprintf(&sb, "%d. %s\n", i+1, ref)
		}
	}
	return sb.String()
}

// webReferences lists unique web sources across relevant notes, stable by
// first appearance.
func webReferences(notes []models.Note) []string {
	seen := make(map[string]bool)
	var refs []string
	for _, n := range notes {
		if n.SourceType != models.SourceTypeWeb || !n.IsRelevant || n.SourceID == "" {
			continue
		}
		if seen[n.SourceID] {
			continue
		}
		seen[n.SourceID] = true
		title, _ := n.SourceMetadata["title"].(string)
		if title != "" {
			refs = append(refs, fmt.Sprintf("%s — %s", title, n.SourceID))
		} else {
			refs = append(refs, n.SourceID)
		}
	}
	return refs
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
