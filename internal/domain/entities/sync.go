package entities

// SyncOutcome is the per-order result of a sync batch.
type SyncOutcome struct {
	OrderID     string `json:"order_id"`
	OrderNumber string `json:"order_number,omitempty"`
	ExternalID  string `json:"external_id,omitempty"`
	Error       string `json:"error,omitempty"`
}

// SyncResult reports a sync batch. Orders are pushed sequentially; the first
// failure stops the batch, so Skipped lists unattempted orders. Previously
// synced orders land in Skipped with no error.
type SyncResult struct {
	Synced  []SyncOutcome `json:"synced"`
	Failed  []SyncOutcome `json:"failed"`
	Skipped []SyncOutcome `json:"skipped"`
}

// ImportResult reports a CSV import run.
type ImportResult struct {
	Created []string `json:"created"` // order ids, in row order
	Skipped int      `json:"skipped"` // rows missing name or email
}
