package domain_test

import (
	"testing"

	"github.com/condatools/condasnap/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestStrategyArtifactPath(t *testing.T) {
	tests := []struct {
		name     string
		strategy domain.Strategy
		expected string
	}{
		{"explicit lock", domain.ExplicitLock, "climates.txt"},
		{"full export", domain.FullDeclarative, "climates.yml"},
		{"from-history export", domain.HistoryDeclarative, "climates_fh.yml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.strategy.ArtifactPath("climates"))
		})
	}
}

func TestStrategyFailureBitsAreDistinct(t *testing.T) {
	seen := map[int]bool{}
	for _, s := range domain.Strategies {
		bit := s.FailureBit()
		assert.False(t, seen[bit], "bit %d reused by %s", bit, s)
		seen[bit] = true
	}
}

func TestStrategyFailuresExitCode(t *testing.T) {
	tests := []struct {
		name     string
		failed   []domain.Strategy
		expected int
	}{
		{"explicit only", []domain.Strategy{domain.ExplicitLock}, 9},
		{"full only", []domain.Strategy{domain.FullDeclarative}, 10},
		{"from-history only", []domain.Strategy{domain.HistoryDeclarative}, 12},
		{"all three", domain.Strategies, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			failures := &domain.StrategyFailures{Failed: map[domain.Strategy]error{}}
			for _, s := range tt.failed {
				failures.Failed[s] = assert.AnError
			}
			assert.Equal(t, tt.expected, failures.ExitCode())
		})
	}
}

func TestStrategyFailuresExitCodesAreDistinct(t *testing.T) {
	all := &domain.StrategyFailures{Failed: map[domain.Strategy]error{
		domain.ExplicitLock:       assert.AnError,
		domain.FullDeclarative:    assert.AnError,
		domain.HistoryDeclarative: assert.AnError,
	}}

	for _, s := range domain.Strategies {
		single := &domain.StrategyFailures{Failed: map[domain.Strategy]error{s: assert.AnError}}
		assert.NotEqual(t, all.ExitCode(), single.ExitCode())
		assert.NotEqual(t, 0, single.ExitCode())
		assert.NotEqual(t, 1, single.ExitCode(), "must not collide with the generic fatal exit code")
	}
}

func TestStrategyFailuresError(t *testing.T) {
	failures := &domain.StrategyFailures{Failed: map[domain.Strategy]error{
		domain.HistoryDeclarative: assert.AnError,
		domain.ExplicitLock:       assert.AnError,
	}}
	assert.Equal(t, "export strategies failed: explicit, from-history", failures.Error())
}
