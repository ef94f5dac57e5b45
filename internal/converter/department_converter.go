package converter

import (
	"hospital-replica-sync/internal/delivery/dto"
	"hospital-replica-sync/internal/domain/entity"
)

// DepartmentRecordToEntity converts a validated DepartmentRecord DTO to a Department entity
func DepartmentRecordToEntity(record *dto.DepartmentRecord) *entity.Department {
	return &entity.Department{
		ID:        record.ID,
		Name:      record.Name,
		Location:  record.Location,
		CreatedAt: record.CreatedAt,
	}
}

// DepartmentToRecord converts a Department entity to a normalized DepartmentRecord DTO
func DepartmentToRecord(department *entity.Department) *dto.DepartmentRecord {
	record := &dto.DepartmentRecord{
		ID:        department.ID,
		Name:      department.Name,
		Location:  department.Location,
		CreatedAt: department.CreatedAt,
	}
	NormalizeDepartment(record)
	return record
}
