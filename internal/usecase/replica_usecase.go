package usecase

import (
	"context"
	"errors"
	"fmt"

	"hospital-replica-sync/internal/converter"
	"hospital-replica-sync/internal/delivery/dto"
	"hospital-replica-sync/internal/domain/repository"
	"hospital-replica-sync/pkg/validator"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrInvalidStoredRecord = errors.New("stored record failed validation")

// ReplicaUsecase reads the local store. Every row is shaped through the
// record contract; a single invalid row fails the whole read.
type ReplicaUsecase interface {
	GetDepartments(ctx context.Context) ([]dto.DepartmentRecord, error)
	GetPhysicians(ctx context.Context) ([]dto.PhysicianRecord, error)
	GetConsultations(ctx context.Context) ([]dto.ConsultationRecord, error)
}

type replicaUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	departmentRepo   repository.DepartmentRepository
	physicianRepo    repository.PhysicianRepository
	consultationRepo repository.ConsultationRepository
	validator        *validator.CustomValidator
}

func NewReplicaUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	departmentRepo repository.DepartmentRepository,
	physicianRepo repository.PhysicianRepository,
	consultationRepo repository.ConsultationRepository,
	validator *validator.CustomValidator,
) ReplicaUsecase {
	return &replicaUsecase{
		db:               db,
		log:              log,
		departmentRepo:   departmentRepo,
		physicianRepo:    physicianRepo,
		consultationRepo: consultationRepo,
		validator:        validator,
	}
}

func (u *replicaUsecase) GetDepartments(ctx context.Context) ([]dto.DepartmentRecord, error) {
	departments, err := u.departmentRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find departments: %+v", err)
		return nil, err
	}

	records := make([]dto.DepartmentRecord, len(departments))
	for i := range departments {
		record := converter.DepartmentToRecord(&departments[i])
		if err := u.checkStored(record, departments[i].ID); err != nil {
			return nil, err
		}
		records[i] = *record
	}

	return records, nil
}

func (u *replicaUsecase) GetPhysicians(ctx context.Context) ([]dto.PhysicianRecord, error) {
	physicians, err := u.physicianRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find physicians: %+v", err)
		return nil, err
	}

	records := make([]dto.PhysicianRecord, len(physicians))
	for i := range physicians {
		record := converter.PhysicianToRecord(&physicians[i])
		if err := u.checkStored(record, physicians[i].ID); err != nil {
			return nil, err
		}
		records[i] = *record
	}

	return records, nil
}

func (u *replicaUsecase) GetConsultations(ctx context.Context) ([]dto.ConsultationRecord, error) {
	consultations, err := u.consultationRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find consultations: %+v", err)
		return nil, err
	}

	records := make([]dto.ConsultationRecord, len(consultations))
	for i := range consultations {
		record := converter.ConsultationToRecord(&consultations[i])
		if err := u.checkStored(record, consultations[i].ID); err != nil {
			return nil, err
		}
		records[i] = *record
	}

	return records, nil
}

func (u *replicaUsecase) checkStored(record any, id int64) error {
	if err := u.validator.ValidateRecord(record); err != nil {
		u.log.Warnf("Stored record id=%d failed validation: %+v", id, err)
		return fmt.Errorf("%w: id=%d: %w", ErrInvalidStoredRecord, id, err)
	}
	return nil
}
