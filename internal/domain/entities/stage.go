package entities

import (
	"sort"
	"time"
)

// StageStatus is the per-stage production state.
//
// Transitions are monotonic: pending -> in_progress -> completed. Completing
// directly from pending is allowed (a QR scan at the station both starts and
// finishes the step); completed is terminal.

type StageStatus string

const (
	StageStatusPending    StageStatus = "pending"
	StageStatusInProgress StageStatus = "in_progress"
	StageStatusCompleted  StageStatus = "completed"
)

// ProductionStage is one checklist entry on an order. Provenance fields are
// stamped only on transition.
type ProductionStage struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Status      StageStatus `json:"status"`
	StartedAt   *time.Time  `json:"started_at,omitempty"`
	CompletedAt *time.Time  `json:"completed_at,omitempty"`
	CompletedBy string      `json:"completed_by,omitempty"`
	Notes       string      `json:"notes,omitempty"`
}

// StageDefinition is one entry of the workshop's configured stage catalog.
// Order is a display ordering hint, not an execution constraint.
type StageDefinition struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Order int    `json:"order"`
}

// SeedStages builds a fresh pending checklist from the configured catalog,
// in catalog display order.
func SeedStages(catalog []StageDefinition) []ProductionStage {
	sorted := make([]StageDefinition, len(catalog))
	copy(sorted, catalog)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Order < sorted[j].Order })

	stages := make([]ProductionStage, 0, len(sorted))
	for _, def := range sorted {
		stages = append(stages, ProductionStage{
			ID:     def.ID,
			Name:   def.Name,
			Status: StageStatusPending,
		})
	}
	return stages
}
