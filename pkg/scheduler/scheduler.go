package scheduler

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/mhartmann/roster-api-go/pkg/models"
	"github.com/mhartmann/roster-api-go/pkg/roster"
)

const (
	defaultTopUpMinBreadth = 5
	defaultTopUpMaxUnits   = 8
)

// Options tunes a single generation run.
type Options struct {
	// Seed drives the optional shuffle of the candidate pool. Nil means no
	// shuffle and a fully deterministic plan for identical input.
	Seed *int64
	// TopUpMinBreadth is the minimum availability breadth for the top-up
	// pass to consider a participant.
	TopUpMinBreadth int
	// TopUpMaxUnits is the workload below which the top-up pass offers a
	// participant additional slots.
	TopUpMaxUnits int
}

// DefaultOptions returns the standard thresholds with no shuffle seed.
func DefaultOptions() Options {
	return Options{
		TopUpMinBreadth: defaultTopUpMinBreadth,
		TopUpMaxUnits:   defaultTopUpMaxUnits,
	}
}

// Scheduler assigns participants to roster slots. It borrows the participant
// set mutably for the duration of one generation: Generate resets every
// participant's assignment list before the first pass, so a shared set can be
// reused across sequential generations. Concurrent generations against one
// shared set are not supported.
type Scheduler struct {
	catalog      *roster.Catalog
	participants []*models.Participant
}

// New validates the participant set against the catalog. A participant
// referencing a slot outside the catalog, a negative workload cap, or a
// duplicate or empty name is rejected here, before any assignment work.
// Absent availability entries are fine and count as unavailable.
func New(catalog *roster.Catalog, participants []*models.Participant) (*Scheduler, error) {
	seen := make(map[string]bool, len(participants))
	for _, p := range participants {
		if p.Name == "" {
			return nil, fmt.Errorf("participant with empty name")
		}
		if seen[p.Name] {
			return nil, fmt.Errorf("duplicate participant name %q", p.Name)
		}
		seen[p.Name] = true

		if p.MaxUnits < 0 {
			return nil, fmt.Errorf("participant %q: negative workload cap %d", p.Name, p.MaxUnits)
		}
		for slot := range p.Availability {
			if !catalog.Contains(slot) {
				return nil, fmt.Errorf("participant %q: slot %q is not in the catalog", p.Name, slot)
			}
		}
	}

	return &Scheduler{
		catalog:      catalog,
		participants: participants,
	}, nil
}

// Generate produces one plan. Assignments run in four ordered passes:
// a priority-tiered pass over levels 3, 2, 1, a top-up pass for broadly
// available participants with low load, a backfill pass that ignores
// preference tiers, and finally understaffing detection. Slots left below
// their required headcount are reported in the plan, never as an error.
func (s *Scheduler) Generate(opts Options) *models.Plan {
	for _, p := range s.participants {
		p.Reset()
	}

	pool := make([]*models.Participant, len(s.participants))
	copy(pool, s.participants)
	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].AvailableCount(1) > pool[j].AvailableCount(1)
	})
	if opts.Seed != nil {
		r := rand.New(rand.NewSource(*opts.Seed))
		r.Shuffle(len(pool), func(i, j int) {
			pool[i], pool[j] = pool[j], pool[i]
		})
	}

	slots := make(map[roster.Slot][]string, len(s.catalog.Slots()))

	for _, tier := range []int{3, 2, 1} {
		s.assignTier(pool, slots, tier)
	}
	s.topUp(pool, slots, opts)
	s.backfill(pool, slots)

	return s.buildPlan(slots)
}

// GeneratePlans produces n independent plans, resetting participant state
// between runs. When a seed is set, plan i shuffles with seed+i to diversify
// the alternatives while staying reproducible.
func (s *Scheduler) GeneratePlans(n int, opts Options) []*models.Plan {
	plans := make([]*models.Plan, 0, n)
	for i := 0; i < n; i++ {
		runOpts := opts
		if opts.Seed != nil {
			seed := *opts.Seed + int64(i)
			runOpts.Seed = &seed
		}
		plans = append(plans, s.Generate(runOpts))
	}
	return plans
}

// assignTier fills slots with candidates whose preference equals exactly the
// given tier, in catalog order.
func (s *Scheduler) assignTier(pool []*models.Participant, slots map[roster.Slot][]string, tier int) {
	for _, slot := range s.catalog.Slots() {
		needed := s.catalog.Required(slot)
		if len(slots[slot]) >= needed {
			continue
		}

		var eligible []*models.Participant
		for _, p := range pool {
			if p.Wants(slot) == tier &&
				p.AssignedUnits()+models.UnitsPerSlot <= p.MaxUnits &&
				p.CanReceive(slot) {
				eligible = append(eligible, p)
			}
		}
		s.rankCandidates(eligible, slot.Day)

		for _, p := range eligible {
			if len(slots[slot]) >= needed {
				break
			}
			if s.wouldCreateGap(p, slot) {
				continue
			}
			p.AddAssignment(slot)
			slots[slot] = append(slots[slot], p.Name)
		}
	}
}

// topUp offers additional slots, in chronological catalog order, to
// participants with broad availability and low current load.
func (s *Scheduler) topUp(pool []*models.Participant, slots map[roster.Slot][]string, opts Options) {
	for _, p := range pool {
		if p.AvailableCount(1) < opts.TopUpMinBreadth || p.AssignedUnits() >= opts.TopUpMaxUnits {
			continue
		}
		for _, slot := range s.catalog.Slots() {
			if !p.CanReceive(slot) || p.IsAssigned(slot) {
				continue
			}
			if len(slots[slot]) >= s.catalog.Required(slot) {
				continue
			}
			if p.AssignedUnits()+models.UnitsPerSlot > p.MaxUnits {
				break
			}
			if s.wouldCreateGap(p, slot) {
				continue
			}
			p.AddAssignment(slot)
			slots[slot] = append(slots[slot], p.Name)
		}
	}
}

// backfill fills slots still below headcount with any eligible participant,
// ignoring preference tiers. Its purpose is coverage, not satisfaction.
func (s *Scheduler) backfill(pool []*models.Participant, slots map[roster.Slot][]string) {
	for _, slot := range s.catalog.Slots() {
		needed := s.catalog.Required(slot)
		if len(slots[slot]) >= needed {
			continue
		}

		var eligible []*models.Participant
		for _, p := range pool {
			if p.CanReceive(slot) && !p.IsAssigned(slot) &&
				p.AssignedUnits()+models.UnitsPerSlot <= p.MaxUnits {
				eligible = append(eligible, p)
			}
		}
		s.rankCandidates(eligible, slot.Day)

		for _, p := range eligible {
			if len(slots[slot]) >= needed {
				break
			}
			if s.wouldCreateGap(p, slot) {
				continue
			}
			p.AddAssignment(slot)
			slots[slot] = append(slots[slot], p.Name)
		}
	}
}

// rankCandidates orders candidates for a slot on the given day: people who
// already work that day first, then lowest assigned workload, then widest
// remaining availability. The stable sort keeps pool order on full ties.
func (s *Scheduler) rankCandidates(candidates []*models.Participant, day roster.Day) {
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]

		aOnDay, bOnDay := a.HasAssignmentOn(day), b.HasAssignmentOn(day)
		if aOnDay != bOnDay {
			return aOnDay
		}
		if au, bu := a.AssignedUnits(), b.AssignedUnits(); au != bu {
			return au < bu
		}
		return a.AvailableCount(1) > b.AvailableCount(1)
	})
}

// wouldCreateGap reports whether assigning the slot would leave the
// participant an available-but-unassigned block strictly between two assigned
// blocks on the same day. With fewer than three available blocks on that day
// a gap is structurally impossible.
func (s *Scheduler) wouldCreateGap(p *models.Participant, slot roster.Slot) bool {
	day := slot.Day

	available := make(map[roster.Block]bool)
	for _, b := range s.catalog.Blocks() {
		if p.Wants(roster.Slot{Day: day, Block: b}) >= 1 {
			available[b] = true
		}
	}
	if len(available) < 3 {
		return false
	}

	simulated := map[roster.Block]bool{slot.Block: true}
	for _, a := range p.Assigned {
		if a.Day == day {
			simulated[a.Block] = true
		}
	}

	first, last := -1, -1
	for b := range simulated {
		idx := s.catalog.BlockIndex(b)
		if first == -1 || idx < first {
			first = idx
		}
		if idx > last {
			last = idx
		}
	}

	blocks := s.catalog.Blocks()
	for idx := first + 1; idx < last; idx++ {
		b := blocks[idx]
		if available[b] && !simulated[b] {
			return true
		}
	}
	return false
}
