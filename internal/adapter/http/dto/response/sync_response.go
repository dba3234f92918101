package response

import "github.com/nguyenvanlinh1902/ProductionManagement-sub000/internal/domain/entities"

type SyncOutcomeResponse struct {
	OrderID     string `json:"order_id"`
	OrderNumber string `json:"order_number,omitempty"`
	ExternalID  string `json:"external_id,omitempty"`
	Error       string `json:"error,omitempty"`
}

type SyncResultResponse struct {
	Synced  []SyncOutcomeResponse `json:"synced"`
	Failed  []SyncOutcomeResponse `json:"failed"`
	Skipped []SyncOutcomeResponse `json:"skipped"`
}

func FromSyncResult(r entities.SyncResult) SyncResultResponse {
	return SyncResultResponse{
		Synced:  fromOutcomes(r.Synced),
		Failed:  fromOutcomes(r.Failed),
		Skipped: fromOutcomes(r.Skipped),
	}
}

func fromOutcomes(outcomes []entities.SyncOutcome) []SyncOutcomeResponse {
	out := make([]SyncOutcomeResponse, 0, len(outcomes))
	for _, o := range outcomes {
		out = append(out, SyncOutcomeResponse{
			OrderID:     o.OrderID,
			OrderNumber: o.OrderNumber,
			ExternalID:  o.ExternalID,
			Error:       o.Error,
		})
	}
	return out
}

type ImportResultResponse struct {
	Created []string `json:"created"`
	Skipped int      `json:"skipped"`
}

func FromImportResult(r entities.ImportResult) ImportResultResponse {
	return ImportResultResponse{Created: r.Created, Skipped: r.Skipped}
}
