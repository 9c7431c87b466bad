package handlers

import (
	"encoding/csv"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mhartmann/roster-api-go/pkg/models"
	"github.com/mhartmann/roster-api-go/pkg/roster"
	"github.com/mhartmann/roster-api-go/pkg/scheduler"
)

// PlanCSV handles availability spreadsheet uploads. The file needs a "name"
// column, a "max_units" column, and one column per slot label
// (e.g. "Monday 10-12") holding the preference level. Columns are resolved
// by header name, never by position. The response carries a pivoted grid:
// one row per participant, one 0/1 column per slot, and a trailing
// total-units column.
func (h *Handler) PlanCSV(c *gin.Context) {
	file, err := c.FormFile("availability_file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "availability_file is required"})
		return
	}

	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open availability file"})
		return
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read availability header"})
		return
	}

	nameCol, capCol := -1, -1
	slotCols := make(map[int]roster.Slot)
	for i, col := range header {
		switch strings.TrimSpace(strings.ToLower(col)) {
		case "name":
			nameCol = i
		case "max_units":
			capCol = i
		default:
			slot, err := h.Catalog.ParseSlot(col)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "unknown column: " + col})
				return
			}
			slotCols[i] = slot
		}
	}
	if nameCol < 0 || capCol < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and max_units columns are required"})
		return
	}

	var participants []*models.Participant
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}

		availability := make(map[roster.Slot]int, len(slotCols))
		for i, slot := range slotCols {
			if i >= len(record) {
				continue
			}
			level, _ := strconv.Atoi(strings.TrimSpace(record[i]))
			availability[slot] = level
		}
		maxUnits, err := strconv.Atoi(strings.TrimSpace(record[capCol]))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid max_units for " + record[nameCol]})
			return
		}
		participants = append(participants, models.NewParticipant(record[nameCol], availability, maxUnits))
	}

	sched, err := scheduler.New(h.Catalog, participants)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	opts := scheduler.DefaultOptions()
	if seedStr := c.PostForm("seed"); seedStr != "" {
		seed, err := strconv.ParseInt(seedStr, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid seed"})
			return
		}
		opts.Seed = &seed
	}

	plan := sched.Generate(opts)

	h.RecordUsage(c, []*models.Plan{plan}, len(participants))

	c.JSON(http.StatusOK, gin.H{
		"csv":            h.planGridCSV(plan, participants),
		"understaffed":   plan.Understaffed,
		"fairness_score": plan.FairnessScore,
	})
}

// planGridCSV pivots a plan into a person x slot matrix with a trailing
// total-units column, in catalog column order.
func (h *Handler) planGridCSV(plan *models.Plan, participants []*models.Participant) string {
	assigned := make(map[string]map[roster.Slot]bool, len(participants))
	for _, e := range plan.Entries {
		slot := roster.Slot{Day: roster.Day(e.Day), Block: roster.Block(e.Time)}
		if assigned[e.Person] == nil {
			assigned[e.Person] = make(map[roster.Slot]bool)
		}
		assigned[e.Person][slot] = true
	}

	var out strings.Builder
	writer := csv.NewWriter(&out)

	header := []string{"person"}
	for _, slot := range h.Catalog.Slots() {
		header = append(header, slot.String())
	}
	header = append(header, "total_units")
	writer.Write(header)

	for _, p := range participants {
		row := []string{p.Name}
		for _, slot := range h.Catalog.Slots() {
			if assigned[p.Name][slot] {
				row = append(row, "1")
			} else {
				row = append(row, "0")
			}
		}
		row = append(row, strconv.Itoa(plan.Totals[p.Name]))
		writer.Write(row)
	}
	writer.Flush()

	return out.String()
}
