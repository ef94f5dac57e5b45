package repository

import (
	"hospital-replica-sync/internal/domain/entity"

	"gorm.io/gorm"
)

type SyncRunRepository interface {
	Create(db *gorm.DB, run *entity.SyncRun) error
	FindAll(db *gorm.DB) ([]entity.SyncRun, error)
	FindByID(db *gorm.DB, id int64) (*entity.SyncRun, error)
}
