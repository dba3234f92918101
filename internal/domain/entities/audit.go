package entities

import "time"

// StageAuditRecord is one append-only entry of the stage completion log.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (order_id-index): order_id
//
// The id is deterministic ("<order_id>#<stage_id>") so a retried append
// after a partial failure is replay-safe instead of duplicating the record.
type StageAuditRecord struct {
	ID          string    `json:"id"`
	OrderID     string    `json:"order_id"`
	StageID     string    `json:"stage_id"`
	CompletedAt time.Time `json:"completed_at"`
	CompletedBy string    `json:"completed_by"`
}

// AuditRecordID builds the deterministic audit-log key for a completion.
func AuditRecordID(orderID, stageID string) string {
	return orderID + "#" + stageID
}
