package repository

import (
	"hospital-replica-sync/internal/domain/entity"

	"gorm.io/gorm"
)

type DepartmentRepository interface {
	FindAll(db *gorm.DB) ([]entity.Department, error)
}
