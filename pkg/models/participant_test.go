package models

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mhartmann/roster-api-go/pkg/roster"
)

func TestParticipantQueries(t *testing.T) {
	mon1012 := roster.Slot{Day: roster.Monday, Block: roster.Block10to12}
	mon1214 := roster.Slot{Day: roster.Monday, Block: roster.Block12to14}
	tue1012 := roster.Slot{Day: roster.Tuesday, Block: roster.Block10to12}

	p := NewParticipant("Anna", map[roster.Slot]int{
		mon1012: 3,
		mon1214: 1,
		tue1012: 0,
	}, 6)

	assert.True(t, p.CanReceive(mon1012))
	assert.False(t, p.CanReceive(tue1012), "level 0 means unavailable")

	assert.Equal(t, 3, p.Wants(mon1012))
	assert.Equal(t, 0, p.Wants(roster.Slot{Day: roster.Friday, Block: roster.Block16to18}), "absent slot is not wanted")

	assert.Equal(t, 2, p.AvailableCount(1))
	assert.Equal(t, 1, p.AvailableCount(2))
	assert.Equal(t, 0, p.AvailableCount(4))
}

func TestParticipantAssignmentState(t *testing.T) {
	mon1012 := roster.Slot{Day: roster.Monday, Block: roster.Block10to12}
	mon1214 := roster.Slot{Day: roster.Monday, Block: roster.Block12to14}

	p := NewParticipant("Ben", map[roster.Slot]int{mon1012: 2, mon1214: 2}, 4)

	assert.Equal(t, 0, p.BlockCount())
	assert.Equal(t, 0, p.AssignedUnits())

	p.AddAssignment(mon1012)
	assert.Equal(t, 1, p.BlockCount())
	assert.Equal(t, UnitsPerSlot, p.AssignedUnits())
	assert.True(t, p.IsAssigned(mon1012))
	assert.False(t, p.IsAssigned(mon1214))
	assert.True(t, p.HasAssignmentOn(roster.Monday))
	assert.False(t, p.HasAssignmentOn(roster.Tuesday))
}

func TestParticipantResetIsIdempotent(t *testing.T) {
	mon1012 := roster.Slot{Day: roster.Monday, Block: roster.Block10to12}

	p := NewParticipant("Clara", map[roster.Slot]int{mon1012: 1}, 2)
	p.AddAssignment(mon1012)

	p.Reset()
	assert.Equal(t, 0, p.BlockCount())
	assert.Equal(t, 0, p.AssignedUnits())

	p.Reset()
	assert.Equal(t, 0, p.BlockCount())
}
