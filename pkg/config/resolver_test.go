package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/scribe-research/scribe/pkg/models"
)

func intp(v int) *int    { return &v }
func boolp(v bool) *bool { return &v }

func TestResolver_DefaultsOnly(t *testing.T) {
	r := NewResolver(models.ResearchParamOverrides{}, DefaultResearchParams())

	p := r.Params(nil)
	assert.Equal(t, 2, p.StructuredResearchRounds)
	assert.Equal(t, 1, p.WritingPasses)
	assert.Equal(t, 5, p.MaxConcurrentRequests)
}

func TestResolver_PrecedenceChain(t *testing.T) {
	// mission=1 beats user=3 beats default=2
	r := NewResolver(models.ResearchParamOverrides{
		StructuredResearchRounds: intp(1),
	}, DefaultResearchParams())

	uc := &models.UserContext{
		UserID: "u1",
		Settings: &models.UserSettings{
			ResearchParams: models.ResearchParamOverrides{
				StructuredResearchRounds: intp(3),
				WritingPasses:            intp(4),
			},
		},
	}

	p := r.Params(uc)
	assert.Equal(t, 1, p.StructuredResearchRounds, "mission setting wins")
	assert.Equal(t, 4, p.WritingPasses, "user setting wins over default")
	assert.Equal(t, 2, p.MaxResearchCyclesPerSection, "default fills the rest")
}

func TestResolver_MidFlightUserEditDoesNotOverrideMissionPin(t *testing.T) {
	r := NewResolver(models.ResearchParamOverrides{
		StructuredResearchRounds: intp(1),
	}, DefaultResearchParams())

	uc := &models.UserContext{
		UserID: "u1",
		Settings: &models.UserSettings{
			ResearchParams: models.ResearchParamOverrides{StructuredResearchRounds: intp(3)},
		},
	}
	assert.Equal(t, 1, r.Params(uc).StructuredResearchRounds)

	// User edits settings mid-flight; the mission-pinned value still wins,
	// while unpinned parameters pick up the edit on the next read.
	uc.Settings.ResearchParams.StructuredResearchRounds = intp(5)
	uc.Settings.ResearchParams.WritingPasses = intp(2)
	p := r.Params(uc)
	assert.Equal(t, 1, p.StructuredResearchRounds)
	assert.Equal(t, 2, p.WritingPasses)
}

func TestResolver_ApplyOverridesMerges(t *testing.T) {
	r := NewResolver(models.ResearchParamOverrides{
		StructuredResearchRounds: intp(4),
	}, DefaultResearchParams())

	r.ApplyOverrides(models.ResearchParamOverrides{
		WritingPasses:       intp(3),
		SkipFinalReplanning: boolp(true),
	})

	p := r.Params(nil)
	assert.Equal(t, 4, p.StructuredResearchRounds, "existing override survives")
	assert.Equal(t, 3, p.WritingPasses)
	assert.True(t, p.SkipFinalReplanning)

	// A later override replaces an earlier one.
	r.ApplyOverrides(models.ResearchParamOverrides{StructuredResearchRounds: intp(2)})
	assert.Equal(t, 2, r.Params(nil).StructuredResearchRounds)
}

func TestConfig_TierBindingFor(t *testing.T) {
	cfg := &Config{
		ModelTiers: map[string]models.TierBinding{
			TierFast: {Provider: "openai", Model: "gpt-4o-mini"},
		},
	}

	b, err := cfg.TierBindingFor(nil, TierFast)
	assert.NoError(t, err)
	assert.Equal(t, "gpt-4o-mini", b.Model)

	uc := &models.UserContext{
		Settings: &models.UserSettings{
			ModelTiers: map[string]models.TierBinding{
				TierFast: {Provider: "local", Model: "qwen3-32b"},
			},
		},
	}
	b, err = cfg.TierBindingFor(uc, TierFast)
	assert.NoError(t, err)
	assert.Equal(t, "qwen3-32b", b.Model, "user binding wins")

	_, err = cfg.TierBindingFor(nil, "nonexistent")
	assert.ErrorIs(t, err, ErrUnknownTier)
}
