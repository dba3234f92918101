package entities

import "time"

// MachineStatus is the embroidery machine's operational state.

type MachineStatus string

const (
	MachineStatusIdle        MachineStatus = "idle"
	MachineStatusWorking     MachineStatus = "working"
	MachineStatusMaintenance MachineStatus = "maintenance"
)

// OperationStatus is the state of a single machine run.

type OperationStatus string

const (
	OperationStatusInProgress  OperationStatus = "in_progress"
	OperationStatusCompleted   OperationStatus = "completed"
	OperationStatusInterrupted OperationStatus = "interrupted"
)

// SewingMachine is a workshop machine persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// CurrentThreadColor is the hex-coded thread currently loaded; the advisor
// matches it exactly against recommendation thread colors.
type SewingMachine struct {
	ID                 string        `json:"id"`
	Name               string        `json:"name"`
	ManagerID          string        `json:"manager_id,omitempty"`
	ManagerName        string        `json:"manager_name,omitempty"`
	Status             MachineStatus `json:"status"`
	CurrentThreadColor string        `json:"current_thread_color,omitempty"`
	CurrentProductID   string        `json:"current_product_id,omitempty"`
	CurrentProductName string        `json:"current_product_name,omitempty"`
	StartTime          *time.Time    `json:"start_time,omitempty"`
	EstimatedEndTime   *time.Time    `json:"estimated_end_time,omitempty"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`
}

// MachineOperation links a machine to a product run.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (machine_id-index): machine_id
type MachineOperation struct {
	ID               string          `json:"id"`
	MachineID        string          `json:"machine_id"`
	ProductID        string          `json:"product_id"`
	ProductName      string          `json:"product_name,omitempty"`
	ThreadColor      string          `json:"thread_color"`
	Status           OperationStatus `json:"status"`
	StartTime        time.Time       `json:"start_time"`
	EstimatedEndTime time.Time       `json:"estimated_end_time"`
	CompletedAt      *time.Time      `json:"completed_at,omitempty"`
}

// MachineRecommendation is a precomputed next-product suggestion, maintained
// by an external planning process. Read-only from this service's side.
type MachineRecommendation struct {
	ID            string  `json:"id"`
	MachineID     string  `json:"machine_id"`
	ProductID     string  `json:"product_id"`
	Priority      int     `json:"priority"`
	Reason        string  `json:"reason,omitempty"`
	EstimatedTime float64 `json:"estimated_time,omitempty"`
	ThreadColor   string  `json:"thread_color"`
}
