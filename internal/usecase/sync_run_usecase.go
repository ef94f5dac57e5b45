package usecase

import (
	"context"
	"errors"

	"hospital-replica-sync/internal/converter"
	"hospital-replica-sync/internal/delivery/dto"
	"hospital-replica-sync/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrSyncRunNotFound = errors.New("sync run not found")

type SyncRunUsecase interface {
	GetAll(ctx context.Context) (*dto.SyncRunListResponse, error)
	Get(ctx context.Context, id int64) (*dto.SyncRunResponse, error)
}

type syncRunUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	syncRunRepo repository.SyncRunRepository
}

func NewSyncRunUsecase(db *gorm.DB, log *logrus.Logger, syncRunRepo repository.SyncRunRepository) SyncRunUsecase {
	return &syncRunUsecase{
		db:          db,
		log:         log,
		syncRunRepo: syncRunRepo,
	}
}

func (u *syncRunUsecase) GetAll(ctx context.Context) (*dto.SyncRunListResponse, error) {
	runs, err := u.syncRunRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find sync runs: %+v", err)
		return nil, err
	}

	return &dto.SyncRunListResponse{
		Runs:  converter.SyncRunsToResponses(runs),
		Total: len(runs),
	}, nil
}

func (u *syncRunUsecase) Get(ctx context.Context, id int64) (*dto.SyncRunResponse, error) {
	run, err := u.syncRunRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find sync run: %+v", err)
		return nil, err
	}
	if run == nil {
		return nil, ErrSyncRunNotFound
	}

	return converter.SyncRunToResponse(run), nil
}
