package rules

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jacksonferrigno/dxter/internal/domain/knowledge"
)

func TestClassifyIntents(t *testing.T) {
	c := NewClient(knowledge.Default())

	tests := []struct {
		text string
		want string
	}{
		{"what does high hemoglobin mean", "hemoglobin.high"},
		{"why is my hemoglobin low", "hemoglobin.low"},
		{"why are my platelets elevated", "platelets.high"},
		{"what's the normal range for hemoglobin", "hemoglobin.range"},
		{"what should my platelets be", "platelets.range"},
		{"how do I keep my wbc normal", "wbc.followup"},
		{"how long until hemoglobin improves", "hemoglobin.followup"},
		{"how can I increase my hemoglobin", "hemoglobin.followup.low"},
		{"ways to reduce my mcv", "mcv.followup.high"},
		{"treatment for low hemoglobin", "hemoglobin.treatment.low"},
		{"what helps with low platelets", "platelets.treatment.low"},
		{"what is hemoglobin", "hemoglobin"},
		{"what does that mean", "blood.context"},
		{"what are normal blood values", "blood.normal"},
		{"what's the weather like", "unknown"},
	}
	for _, tt := range tests {
		got, err := c.Classify(context.Background(), "en", tt.text)
		require.NoError(t, err, tt.text)
		assert.Equal(t, tt.want, got.Intent, "utterance: %s", tt.text)
	}
}

func TestClassifyScores(t *testing.T) {
	c := NewClient(knowledge.Default())

	known, err := c.Classify(context.Background(), "en", "what does high hemoglobin mean")
	require.NoError(t, err)
	unknown, err := c.Classify(context.Background(), "en", "tell me a joke")
	require.NoError(t, err)

	assert.Greater(t, known.Score, unknown.Score)
	assert.LessOrEqual(t, known.Score, 1.0)
	assert.GreaterOrEqual(t, unknown.Score, 0.0)
}

func TestClassifyEntities(t *testing.T) {
	c := NewClient(knowledge.Default())

	got, err := c.Classify(context.Background(), "en", "what does low mcv mean")
	require.NoError(t, err)
	require.Len(t, got.Entities, 2)
	assert.Equal(t, "component", got.Entities[0].Entity)
	assert.Equal(t, "mcv", got.Entities[0].Value)
	assert.Equal(t, "status", got.Entities[1].Entity)
	assert.Equal(t, "low", got.Entities[1].Value)
}
