package scheduler

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhartmann/roster-api-go/pkg/models"
	"github.com/mhartmann/roster-api-go/pkg/roster"
)

func TestBuildPlan_FlattensInCatalogOrder(t *testing.T) {
	c := roster.NewWithGrid([]roster.Day{roster.Monday}, []roster.Block{roster.Block10to12, roster.Block12to14})

	participants := []*models.Participant{
		models.NewParticipant("Anna", fullAvailability(c, 3), 4),
		models.NewParticipant("Ben", fullAvailability(c, 3), 4),
	}

	s, err := New(c, participants)
	require.NoError(t, err)

	plan := s.Generate(DefaultOptions())

	// Two people cover both blocks; the second block stays one short.
	require.Len(t, plan.Entries, 4)
	assert.Equal(t, "10-12", plan.Entries[0].Time)
	assert.Equal(t, "10-12", plan.Entries[1].Time)
	assert.Equal(t, "12-14", plan.Entries[2].Time)
	assert.Equal(t, "12-14", plan.Entries[3].Time)

	// Units on every record is the person's plan-wide total.
	for _, e := range plan.Entries {
		assert.Equal(t, plan.Totals[e.Person], e.Units)
	}
	assert.Equal(t, 4, plan.Totals["Anna"])
	assert.Equal(t, 4, plan.Totals["Ben"])

	require.Len(t, plan.Understaffed, 1)
	assert.Equal(t, models.SlotCoverage{
		Day:      "Monday",
		Time:     "12-14",
		Assigned: 2,
		Required: 3,
	}, plan.Understaffed[0])

	_, err = uuid.Parse(plan.ID)
	assert.NoError(t, err)

	// Equal loads score as perfectly fair.
	assert.Equal(t, 100.0, plan.FairnessScore)
}

func TestFairnessScore_UnevenLoad(t *testing.T) {
	c := roster.NewWithGrid([]roster.Day{roster.Monday}, []roster.Block{roster.Block10to12})

	participants := []*models.Participant{
		models.NewParticipant("Anna", fullAvailability(c, 3), 4),
		models.NewParticipant("Ben", fullAvailability(c, 3), 4),
		models.NewParticipant("Clara", map[roster.Slot]int{}, 4),
	}

	s, err := New(c, participants)
	require.NoError(t, err)

	plan := s.Generate(DefaultOptions())

	assert.Greater(t, plan.FairnessScore, 0.0)
	assert.Less(t, plan.FairnessScore, 100.0)
}
