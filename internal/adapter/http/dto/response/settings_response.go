package response

import "github.com/nguyenvanlinh1902/ProductionManagement-sub000/internal/domain/entities"

type StageDefinitionResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Order int    `json:"order"`
}

func FromStageDefinitions(defs []entities.StageDefinition) []StageDefinitionResponse {
	out := make([]StageDefinitionResponse, 0, len(defs))
	for _, d := range defs {
		out = append(out, StageDefinitionResponse{ID: d.ID, Name: d.Name, Order: d.Order})
	}
	return out
}
