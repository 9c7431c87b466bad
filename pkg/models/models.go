package models

import (
	"github.com/mhartmann/roster-api-go/pkg/roster"
)

// UnitsPerSlot is the workload charged against a participant's cap for each
// assigned slot, independent of which block it is.
const UnitsPerSlot = 2

// Participant represents a person who can be assigned to roster slots.
// It is a passive data holder: all eligibility rules live in the engine.
type Participant struct {
	Name         string              `json:"name"`
	Availability map[roster.Slot]int `json:"-"`
	MaxUnits     int                 `json:"max_units"`
	Assigned     []roster.Slot       `json:"assigned"`
}

// NewParticipant builds a participant with no assignments.
func NewParticipant(name string, availability map[roster.Slot]int, maxUnits int) *Participant {
	return &Participant{
		Name:         name,
		Availability: availability,
		MaxUnits:     maxUnits,
	}
}

// Reset clears the assignment list before a fresh generation attempt.
func (p *Participant) Reset() {
	p.Assigned = nil
}

// BlockCount returns the number of slots currently assigned.
func (p *Participant) BlockCount() int {
	return len(p.Assigned)
}

// AvailableCount returns how many slots the participant is willing to work
// at or above the given preference level.
func (p *Participant) AvailableCount(minLevel int) int {
	n := 0
	for _, level := range p.Availability {
		if level >= minLevel {
			n++
		}
	}
	return n
}

// CanReceive reports whether the participant is available for the slot.
func (p *Participant) CanReceive(s roster.Slot) bool {
	return p.Availability[s] > 0
}

// Wants returns the preference level for a slot, 0 if absent.
func (p *Participant) Wants(s roster.Slot) int {
	return p.Availability[s]
}

// AddAssignment appends a slot unconditionally. The engine performs all
// eligibility checks before calling it.
func (p *Participant) AddAssignment(s roster.Slot) {
	p.Assigned = append(p.Assigned, s)
}

// AssignedUnits returns the total workload of the current assignments.
func (p *Participant) AssignedUnits() int {
	return len(p.Assigned) * UnitsPerSlot
}

// IsAssigned reports whether the slot is already assigned to the participant.
func (p *Participant) IsAssigned(s roster.Slot) bool {
	for _, a := range p.Assigned {
		if a == s {
			return true
		}
	}
	return false
}

// HasAssignmentOn reports whether the participant already works some slot on
// the given day.
func (p *Participant) HasAssignmentOn(d roster.Day) bool {
	for _, a := range p.Assigned {
		if a.Day == d {
			return true
		}
	}
	return false
}

// PlanEntry is one (day, time, person) assignment record. Units carries the
// person's total assigned workload for the whole plan.
type PlanEntry struct {
	Day    string `json:"day"`
	Time   string `json:"time"`
	Person string `json:"person"`
	Units  int    `json:"units"`
}

// SlotCoverage reports a slot that ended up below its required headcount.
type SlotCoverage struct {
	Day      string `json:"day"`
	Time     string `json:"time"`
	Assigned int    `json:"assigned"`
	Required int    `json:"required"`
}

// Plan is one complete, immutable output of a single generation run.
type Plan struct {
	ID            string         `json:"id"`
	Entries       []PlanEntry    `json:"entries"`
	Totals        map[string]int `json:"totals"`
	Understaffed  []SlotCoverage `json:"understaffed,omitempty"`
	FairnessScore float64        `json:"fairness_score"`
}

// ParticipantInput is the wire form of a participant. Availability keys are
// slot labels like "Monday 10-12"; absent slots count as unavailable.
type ParticipantInput struct {
	Name         string         `json:"name"`
	Availability map[string]int `json:"availability"`
	MaxUnits     int            `json:"max_units"`
}

// PlanRequest is the payload of the plan generation endpoint.
type PlanRequest struct {
	Participants    []ParticipantInput `json:"participants"`
	Plans           int                `json:"plans"`
	Seed            *int64             `json:"seed,omitempty"`
	TopUpMinBreadth *int               `json:"top_up_min_breadth,omitempty"`
	TopUpMaxUnits   *int               `json:"top_up_max_units,omitempty"`
}

// PlanResponse is the result of the plan generation endpoint.
type PlanResponse struct {
	Plans []*Plan `json:"plans"`
}
