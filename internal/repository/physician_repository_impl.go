package repository

import (
	"hospital-replica-sync/internal/domain/entity"
	domainRepo "hospital-replica-sync/internal/domain/repository"

	"gorm.io/gorm"
)

type physicianRepository struct{}

func NewPhysicianRepository() domainRepo.PhysicianRepository {
	return &physicianRepository{}
}

func (r *physicianRepository) FindAll(db *gorm.DB) ([]entity.Physician, error) {
	var physicians []entity.Physician
	if err := db.Order("id").Find(&physicians).Error; err != nil {
		return nil, err
	}
	return physicians, nil
}
