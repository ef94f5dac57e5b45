package converter

import (
	"hospital-replica-sync/internal/delivery/dto"
	"hospital-replica-sync/internal/domain/entity"
)

// ConsultationRecordToEntity converts a validated ConsultationRecord DTO to a Consultation entity
func ConsultationRecordToEntity(record *dto.ConsultationRecord) *entity.Consultation {
	return &entity.Consultation{
		ID:          record.ID,
		PhysicianID: record.PhysicianID,
		PatientName: record.PatientName,
		Diagnosis:   record.Diagnosis,
		ConsultedAt: record.ConsultedAt,
	}
}

// ConsultationToRecord converts a Consultation entity to a normalized ConsultationRecord DTO
func ConsultationToRecord(consultation *entity.Consultation) *dto.ConsultationRecord {
	record := &dto.ConsultationRecord{
		ID:          consultation.ID,
		PhysicianID: consultation.PhysicianID,
		PatientName: consultation.PatientName,
		Diagnosis:   consultation.Diagnosis,
		ConsultedAt: consultation.ConsultedAt,
	}
	NormalizeConsultation(record)
	return record
}
