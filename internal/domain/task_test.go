package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	for _, valid := range []string{"todo", "in-progress", "completed"} {
		s, err := ParseStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, Status(valid), s)
	}
	for _, invalid := range []string{"", "done", "TODO", "in progress"} {
		_, err := ParseStatus(invalid)
		assert.Error(t, err, "status %q should be rejected", invalid)
	}
}

func TestParsePriority(t *testing.T) {
	for _, valid := range []string{"low", "medium", "high"} {
		p, err := ParsePriority(valid)
		require.NoError(t, err)
		assert.Equal(t, Priority(valid), p)
	}
	_, err := ParsePriority("urgent")
	assert.Error(t, err)
}

func TestPriorityRank(t *testing.T) {
	assert.Greater(t, PriorityHigh.Rank(), PriorityMedium.Rank())
	assert.Greater(t, PriorityMedium.Rank(), PriorityLow.Rank())
	assert.Greater(t, PriorityLow.Rank(), Priority("").Rank())
}
