package config

// ResearchParams is the fully-resolved set of research parameters for a
// mission run. Values come from the settings resolver chain:
// mission-specific → user → global defaults.
type ResearchParams struct {
	InitialExplorationDocResults       int
	InitialExplorationWebResults       int
	MainResearchDocResults             int
	MainResearchWebResults             int
	StructuredResearchRounds           int
	MaxResearchCyclesPerSection        int
	WritingPasses                      int
	MinNotesPerSectionAssignment       int
	MaxNotesPerSectionAssignment       int
	MaxNotesForAssignmentReranking     int
	ThoughtPadContextLimit             int
	WritingPreviousContentPreviewChars int
	MaxConcurrentRequests              int
	SkipFinalReplanning                bool
	AutoOptimizeParams                 bool
	AutoCreateDocumentGroup            bool
}

// DefaultResearchParams returns the built-in global defaults.
func DefaultResearchParams() ResearchParams {
	return ResearchParams{
		InitialExplorationDocResults:       5,
		InitialExplorationWebResults:       3,
		MainResearchDocResults:             5,
		MainResearchWebResults:             5,
		StructuredResearchRounds:           2,
		MaxResearchCyclesPerSection:        2,
		WritingPasses:                      1,
		MinNotesPerSectionAssignment:       5,
		MaxNotesPerSectionAssignment:       40,
		MaxNotesForAssignmentReranking:     80,
		ThoughtPadContextLimit:             10,
		WritingPreviousContentPreviewChars: 2000,
		MaxConcurrentRequests:              5,
	}
}
