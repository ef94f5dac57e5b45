package repository

import (
	"context"

	"hospital-replica-sync/internal/domain/entity"
)

// ReplicaRepository is the write side of the local store used by sync.
type ReplicaRepository interface {
	Exists(ctx context.Context, table entity.Table, id int64) (bool, error)
	InsertDepartment(ctx context.Context, department *entity.Department) error
	InsertPhysician(ctx context.Context, physician *entity.Physician) error
	InsertConsultation(ctx context.Context, consultation *entity.Consultation) error
}
