package scheduler

import (
	"math"

	"github.com/google/uuid"

	"github.com/mhartmann/roster-api-go/pkg/models"
	"github.com/mhartmann/roster-api-go/pkg/roster"
)

// buildPlan flattens the slot map into assignment records in catalog order
// (assignment order within a slot), derives per-person totals, and collects
// the understaffed slots.
func (s *Scheduler) buildPlan(slots map[roster.Slot][]string) *models.Plan {
	totals := make(map[string]int)
	for _, slot := range s.catalog.Slots() {
		for _, name := range slots[slot] {
			totals[name] += models.UnitsPerSlot
		}
	}

	var entries []models.PlanEntry
	var understaffed []models.SlotCoverage
	for _, slot := range s.catalog.Slots() {
		assigned := slots[slot]
		for _, name := range assigned {
			entries = append(entries, models.PlanEntry{
				Day:    string(slot.Day),
				Time:   string(slot.Block),
				Person: name,
				Units:  totals[name],
			})
		}
		if required := s.catalog.Required(slot); len(assigned) < required {
			understaffed = append(understaffed, models.SlotCoverage{
				Day:      string(slot.Day),
				Time:     string(slot.Block),
				Assigned: len(assigned),
				Required: required,
			})
		}
	}

	return &models.Plan{
		ID:            uuid.NewString(),
		Entries:       entries,
		Totals:        totals,
		Understaffed:  understaffed,
		FairnessScore: s.fairnessScore(),
	}
}

// fairnessScore returns a percentage (0-100) describing how evenly the
// assigned units are spread over the participant set. 100 means a standard
// deviation of zero.
func (s *Scheduler) fairnessScore() float64 {
	if len(s.participants) == 0 {
		return 100.0
	}

	var sum float64
	for _, p := range s.participants {
		sum += float64(p.AssignedUnits())
	}
	if sum == 0 {
		return 100.0
	}

	mean := sum / float64(len(s.participants))
	var varianceSum float64
	for _, p := range s.participants {
		diff := float64(p.AssignedUnits()) - mean
		varianceSum += diff * diff
	}
	stdDev := math.Sqrt(varianceSum / float64(len(s.participants)))

	score := (1.0 - stdDev/mean) * 100.0
	if score < 0 {
		return 0.0
	}
	return score
}
