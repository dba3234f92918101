package request

// MachineRequest creates a workshop machine.
type MachineRequest struct {
	Name        string `json:"name" binding:"required"`
	ManagerID   string `json:"manager_id"`
	ManagerName string `json:"manager_name"`
}

// OperationRequest starts a machine run on a product.
type OperationRequest struct {
	ProductID        string `json:"product_id" binding:"required"`
	ProductName      string `json:"product_name"`
	ThreadColor      string `json:"thread_color" binding:"required"`
	EstimatedMinutes int    `json:"estimated_minutes"`
}

// SyncRequest selects the orders to push to the commerce channel. An empty
// list means "push everything not yet synced".
type SyncRequest struct {
	OrderIDs []string `json:"order_ids"`
}
