package repository

import (
	"hospital-replica-sync/internal/domain/entity"
	domainRepo "hospital-replica-sync/internal/domain/repository"

	"gorm.io/gorm"
)

type consultationRepository struct{}

func NewConsultationRepository() domainRepo.ConsultationRepository {
	return &consultationRepository{}
}

func (r *consultationRepository) FindAll(db *gorm.DB) ([]entity.Consultation, error) {
	var consultations []entity.Consultation
	if err := db.Order("id").Find(&consultations).Error; err != nil {
		return nil, err
	}
	return consultations, nil
}
