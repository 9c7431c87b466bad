package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhartmann/roster-api-go/pkg/models"
	"github.com/mhartmann/roster-api-go/pkg/roster"
)

func gapScheduler(t *testing.T, p *models.Participant) *Scheduler {
	t.Helper()
	s, err := New(roster.New(), []*models.Participant{p})
	require.NoError(t, err)
	return s
}

func TestWouldCreateGap_UnavailableMiddleBlock(t *testing.T) {
	// Available 10-12 and 14-16 but not 12-14: only two available blocks on
	// the day, so a gap is structurally impossible even though the assigned
	// blocks are not adjacent.
	p := models.NewParticipant("Anna", map[roster.Slot]int{
		{Day: roster.Monday, Block: roster.Block10to12}: 1,
		{Day: roster.Monday, Block: roster.Block14to16}: 1,
	}, 8)
	p.AddAssignment(roster.Slot{Day: roster.Monday, Block: roster.Block10to12})
	p.AddAssignment(roster.Slot{Day: roster.Monday, Block: roster.Block14to16})

	s := gapScheduler(t, p)

	assert.False(t, s.wouldCreateGap(p, roster.Slot{Day: roster.Monday, Block: roster.Block12to14}))
}

func TestWouldCreateGap_SkippedMiddleBlockRejected(t *testing.T) {
	// All three blocks available: jumping from 10-12 straight to 14-16
	// would leave an available hole at 12-14.
	p := models.NewParticipant("Anna", map[roster.Slot]int{
		{Day: roster.Monday, Block: roster.Block10to12}: 1,
		{Day: roster.Monday, Block: roster.Block12to14}: 1,
		{Day: roster.Monday, Block: roster.Block14to16}: 1,
	}, 8)
	p.AddAssignment(roster.Slot{Day: roster.Monday, Block: roster.Block10to12})

	s := gapScheduler(t, p)

	assert.True(t, s.wouldCreateGap(p, roster.Slot{Day: roster.Monday, Block: roster.Block14to16}))
}

func TestWouldCreateGap_AdjacentBlockAllowed(t *testing.T) {
	p := models.NewParticipant("Anna", map[roster.Slot]int{
		{Day: roster.Monday, Block: roster.Block10to12}: 1,
		{Day: roster.Monday, Block: roster.Block12to14}: 1,
		{Day: roster.Monday, Block: roster.Block14to16}: 1,
	}, 8)
	p.AddAssignment(roster.Slot{Day: roster.Monday, Block: roster.Block10to12})

	s := gapScheduler(t, p)

	assert.False(t, s.wouldCreateGap(p, roster.Slot{Day: roster.Monday, Block: roster.Block12to14}))
}

func TestWouldCreateGap_HoleInsideWiderSpan(t *testing.T) {
	p := models.NewParticipant("Anna", map[roster.Slot]int{
		{Day: roster.Monday, Block: roster.Block10to12}: 1,
		{Day: roster.Monday, Block: roster.Block12to14}: 1,
		{Day: roster.Monday, Block: roster.Block14to16}: 2,
		{Day: roster.Monday, Block: roster.Block16to18}: 1,
	}, 10)
	p.AddAssignment(roster.Slot{Day: roster.Monday, Block: roster.Block10to12})
	p.AddAssignment(roster.Slot{Day: roster.Monday, Block: roster.Block12to14})

	s := gapScheduler(t, p)

	assert.True(t, s.wouldCreateGap(p, roster.Slot{Day: roster.Monday, Block: roster.Block16to18}))
}

func TestWouldCreateGap_OtherDaysDoNotInteract(t *testing.T) {
	// A wide Monday must not make a two-block Tuesday gap-prone.
	p := models.NewParticipant("Anna", map[roster.Slot]int{
		{Day: roster.Monday, Block: roster.Block10to12}:  1,
		{Day: roster.Monday, Block: roster.Block12to14}:  1,
		{Day: roster.Monday, Block: roster.Block14to16}:  1,
		{Day: roster.Tuesday, Block: roster.Block10to12}: 1,
		{Day: roster.Tuesday, Block: roster.Block14to16}: 1,
	}, 12)
	p.AddAssignment(roster.Slot{Day: roster.Tuesday, Block: roster.Block10to12})

	s := gapScheduler(t, p)

	assert.False(t, s.wouldCreateGap(p, roster.Slot{Day: roster.Tuesday, Block: roster.Block14to16}))
}
