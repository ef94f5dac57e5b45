package repository

import (
	"hospital-replica-sync/internal/domain/entity"

	"gorm.io/gorm"
)

type ConsultationRepository interface {
	FindAll(db *gorm.DB) ([]entity.Consultation, error)
}
