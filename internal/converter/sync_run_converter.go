package converter

import (
	"hospital-replica-sync/internal/delivery/dto"
	"hospital-replica-sync/internal/domain/entity"
)

// SyncRunToResponse converts a SyncRun entity to SyncRunResponse DTO
func SyncRunToResponse(run *entity.SyncRun) *dto.SyncRunResponse {
	if run == nil {
		return nil
	}

	return &dto.SyncRunResponse{
		ID:        run.ID,
		RunID:     run.RunID,
		Table:     run.Target,
		Cutoff:    run.Cutoff,
		Success:   run.Success,
		Code:      run.Code,
		Message:   run.Message,
		Metadata:  run.Metadata,
		CreatedAt: run.CreatedAt,
	}
}

// SyncRunsToResponses converts a slice of SyncRun entities to slice of SyncRunResponse DTOs
func SyncRunsToResponses(runs []entity.SyncRun) []dto.SyncRunResponse {
	responses := make([]dto.SyncRunResponse, len(runs))
	for i := range runs {
		responses[i] = *SyncRunToResponse(&runs[i])
	}
	return responses
}
