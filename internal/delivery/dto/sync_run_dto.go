package dto

import (
	"time"

	"hospital-replica-sync/internal/domain/entity"

	"github.com/google/uuid"
)

// Response DTOs

type SyncRunResponse struct {
	ID        int64       `json:"id"`
	RunID     uuid.UUID   `json:"run_id"`
	Table     string      `json:"table"`
	Cutoff    string      `json:"cutoff"`
	Success   bool        `json:"success"`
	Code      int         `json:"code"`
	Message   string      `json:"message"`
	Metadata  entity.JSON `json:"metadata,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

type SyncRunListResponse struct {
	Runs  []SyncRunResponse `json:"runs"`
	Total int               `json:"total"`
}
