package request

import (
	"github.com/nguyenvanlinh1902/ProductionManagement-sub000/internal/domain/entities"
)

// StageTransitionRequest carries the optional operator notes of a stage
// completion. Order and stage ids come from the URL path; the actor comes
// from the validated token, never from the body.
type StageTransitionRequest struct {
	Notes string `json:"notes"`
}

// StageDefinitionRequest adds one entry to the stage catalog.
type StageDefinitionRequest struct {
	ID    string `json:"id" binding:"required"`
	Name  string `json:"name" binding:"required"`
	Order int    `json:"order"`
}

func (r StageDefinitionRequest) ToDefinition() entities.StageDefinition {
	return entities.StageDefinition{ID: r.ID, Name: r.Name, Order: r.Order}
}
