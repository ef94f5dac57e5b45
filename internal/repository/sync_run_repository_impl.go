package repository

import (
	"errors"

	"hospital-replica-sync/internal/domain/entity"
	domainRepo "hospital-replica-sync/internal/domain/repository"

	"gorm.io/gorm"
)

type syncRunRepository struct{}

func NewSyncRunRepository() domainRepo.SyncRunRepository {
	return &syncRunRepository{}
}

func (r *syncRunRepository) Create(db *gorm.DB, run *entity.SyncRun) error {
	return db.Create(run).Error
}

func (r *syncRunRepository) FindAll(db *gorm.DB) ([]entity.SyncRun, error) {
	var runs []entity.SyncRun
	err := db.Order("created_at DESC").Order("id DESC").Find(&runs).Error
	if err != nil {
		return nil, err
	}
	return runs, nil
}

func (r *syncRunRepository) FindByID(db *gorm.DB, id int64) (*entity.SyncRun, error) {
	var run entity.SyncRun
	err := db.Where("id = ?", id).First(&run).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &run, nil
}
