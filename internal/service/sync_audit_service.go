package service

import (
	"context"

	"hospital-replica-sync/internal/delivery/dto"
	"hospital-replica-sync/internal/domain/entity"
	"hospital-replica-sync/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type SyncAuditService interface {
	Record(ctx context.Context, runID uuid.UUID, table entity.Table, cutoff string, result *dto.SyncResult) error
}

type syncAuditService struct {
	db          *gorm.DB
	log         *logrus.Logger
	syncRunRepo repository.SyncRunRepository
}

func NewSyncAuditService(db *gorm.DB, log *logrus.Logger, syncRunRepo repository.SyncRunRepository) SyncAuditService {
	return &syncAuditService{
		db:          db,
		log:         log,
		syncRunRepo: syncRunRepo,
	}
}

// Record persists one sync run with its counts as metadata.
func (s *syncAuditService) Record(ctx context.Context, runID uuid.UUID, table entity.Table, cutoff string, result *dto.SyncResult) error {
	action := entity.SyncRunActionCompleted
	if !result.Success {
		action = entity.SyncRunActionFailed
	}

	metadata := entity.JSON{
		"action": action,
	}
	if result.Data != nil {
		metadata["received"] = result.Data.Received
		metadata["inserted"] = result.Data.Inserted
		metadata["skipped"] = result.Data.Skipped
		metadata["errored"] = result.Data.Errored
	}

	run := &entity.SyncRun{
		RunID:    runID,
		Target:   table.String(),
		Cutoff:   cutoff,
		Success:  result.Success,
		Code:     result.Code,
		Message:  result.Message,
		Metadata: metadata,
	}

	if err := s.syncRunRepo.Create(s.db.WithContext(ctx), run); err != nil {
		s.log.Warnf("Failed to create sync run: %+v", err)
		return err
	}

	return nil
}
