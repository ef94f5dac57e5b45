package repository

import (
	"hospital-replica-sync/internal/domain/entity"

	"gorm.io/gorm"
)

type PhysicianRepository interface {
	FindAll(db *gorm.DB) ([]entity.Physician, error)
}
