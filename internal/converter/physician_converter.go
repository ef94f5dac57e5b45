package converter

import (
	"hospital-replica-sync/internal/delivery/dto"
	"hospital-replica-sync/internal/domain/entity"
)

// PhysicianRecordToEntity converts a validated PhysicianRecord DTO to a Physician entity
func PhysicianRecordToEntity(record *dto.PhysicianRecord) *entity.Physician {
	return &entity.Physician{
		ID:           record.ID,
		DepartmentID: record.DepartmentID,
		FirstName:    record.FirstName,
		LastName:     record.LastName,
		Specialty:    record.Specialty,
		RegisteredAt: record.RegisteredAt,
	}
}

// PhysicianToRecord converts a Physician entity to a normalized PhysicianRecord DTO
func PhysicianToRecord(physician *entity.Physician) *dto.PhysicianRecord {
	record := &dto.PhysicianRecord{
		ID:           physician.ID,
		DepartmentID: physician.DepartmentID,
		FirstName:    physician.FirstName,
		LastName:     physician.LastName,
		Specialty:    physician.Specialty,
		RegisteredAt: physician.RegisteredAt,
	}
	NormalizePhysician(record)
	return record
}
