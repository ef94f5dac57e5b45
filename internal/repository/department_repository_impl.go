package repository

import (
	"hospital-replica-sync/internal/domain/entity"
	domainRepo "hospital-replica-sync/internal/domain/repository"

	"gorm.io/gorm"
)

type departmentRepository struct{}

func NewDepartmentRepository() domainRepo.DepartmentRepository {
	return &departmentRepository{}
}

func (r *departmentRepository) FindAll(db *gorm.DB) ([]entity.Department, error) {
	var departments []entity.Department
	if err := db.Order("id").Find(&departments).Error; err != nil {
		return nil, err
	}
	return departments, nil
}
