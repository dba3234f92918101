package response

import (
	"time"

	"github.com/nguyenvanlinh1902/ProductionManagement-sub000/internal/domain/entities"
)

type MachineResponse struct {
	ID                 string     `json:"id"`
	Name               string     `json:"name"`
	ManagerID          string     `json:"manager_id,omitempty"`
	ManagerName        string     `json:"manager_name,omitempty"`
	Status             string     `json:"status"`
	CurrentThreadColor string     `json:"current_thread_color,omitempty"`
	CurrentProductID   string     `json:"current_product_id,omitempty"`
	CurrentProductName string     `json:"current_product_name,omitempty"`
	StartTime          *time.Time `json:"start_time,omitempty"`
	EstimatedEndTime   *time.Time `json:"estimated_end_time,omitempty"`
}

func FromMachine(m entities.SewingMachine) MachineResponse {
	return MachineResponse{
		ID:                 m.ID,
		Name:               m.Name,
		ManagerID:          m.ManagerID,
		ManagerName:        m.ManagerName,
		Status:             string(m.Status),
		CurrentThreadColor: m.CurrentThreadColor,
		CurrentProductID:   m.CurrentProductID,
		CurrentProductName: m.CurrentProductName,
		StartTime:          m.StartTime,
		EstimatedEndTime:   m.EstimatedEndTime,
	}
}

func FromMachines(machines []entities.SewingMachine) []MachineResponse {
	out := make([]MachineResponse, 0, len(machines))
	for _, m := range machines {
		out = append(out, FromMachine(m))
	}
	return out
}

type OperationResponse struct {
	ID               string     `json:"id"`
	MachineID        string     `json:"machine_id"`
	ProductID        string     `json:"product_id"`
	ProductName      string     `json:"product_name,omitempty"`
	ThreadColor      string     `json:"thread_color"`
	Status           string     `json:"status"`
	StartTime        time.Time  `json:"start_time"`
	EstimatedEndTime time.Time  `json:"estimated_end_time"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
}

func FromOperation(op entities.MachineOperation) OperationResponse {
	return OperationResponse{
		ID:               op.ID,
		MachineID:        op.MachineID,
		ProductID:        op.ProductID,
		ProductName:      op.ProductName,
		ThreadColor:      op.ThreadColor,
		Status:           string(op.Status),
		StartTime:        op.StartTime,
		EstimatedEndTime: op.EstimatedEndTime,
		CompletedAt:      op.CompletedAt,
	}
}

type RecommendationResponse struct {
	ID            string  `json:"id"`
	MachineID     string  `json:"machine_id"`
	ProductID     string  `json:"product_id"`
	Priority      int     `json:"priority"`
	Reason        string  `json:"reason,omitempty"`
	EstimatedTime float64 `json:"estimated_time,omitempty"`
	ThreadColor   string  `json:"thread_color"`
}

func FromRecommendations(recs []entities.MachineRecommendation) []RecommendationResponse {
	out := make([]RecommendationResponse, 0, len(recs))
	for _, r := range recs {
		out = append(out, RecommendationResponse{
			ID:            r.ID,
			MachineID:     r.MachineID,
			ProductID:     r.ProductID,
			Priority:      r.Priority,
			Reason:        r.Reason,
			EstimatedTime: r.EstimatedTime,
			ThreadColor:   r.ThreadColor,
		})
	}
	return out
}

// CompletedOperationResponse pairs a finished run with the advisor's
// follow-up suggestions for the thread still loaded on the machine.
type CompletedOperationResponse struct {
	Operation       OperationResponse        `json:"operation"`
	Recommendations []RecommendationResponse `json:"recommendations"`
}
