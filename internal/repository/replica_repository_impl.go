package repository

import (
	"context"
	"errors"
	"fmt"

	"hospital-replica-sync/internal/domain/entity"
	domainRepo "hospital-replica-sync/internal/domain/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrPersistence      = errors.New("local store failure")
	ErrDuplicateRecord  = errors.New("record already exists")
	ErrMissingReference = errors.New("referenced record does not exist")
)

// Every column is named explicitly: the replica keeps the source's ids and timestamps.
const (
	insertDepartmentSQL   = `INSERT INTO departments (id, name, location, created_at) VALUES (?, ?, ?, ?)`
	insertPhysicianSQL    = `INSERT INTO physicians (id, department_id, first_name, last_name, specialty, registered_at) VALUES (?, ?, ?, ?, ?, ?)`
	insertConsultationSQL = `INSERT INTO consultations (id, physician_id, patient_name, diagnosis, consulted_at) VALUES (?, ?, ?, ?, ?)`
)

type replicaRepository struct {
	db *gorm.DB
}

func NewReplicaRepository(db *gorm.DB) domainRepo.ReplicaRepository {
	return &replicaRepository{db: db}
}

func (r *replicaRepository) Exists(ctx context.Context, table entity.Table, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Table(table.String()).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("%w: count %s id=%d: %w", ErrPersistence, table, id, err)
	}
	return count > 0, nil
}

func (r *replicaRepository) InsertDepartment(ctx context.Context, department *entity.Department) error {
	err := r.db.WithContext(ctx).Exec(insertDepartmentSQL,
		department.ID,
		department.Name,
		department.Location,
		department.CreatedAt,
	).Error
	return classifyWriteError(err)
}

func (r *replicaRepository) InsertPhysician(ctx context.Context, physician *entity.Physician) error {
	err := r.db.WithContext(ctx).Exec(insertPhysicianSQL,
		physician.ID,
		physician.DepartmentID,
		physician.FirstName,
		physician.LastName,
		physician.Specialty,
		physician.RegisteredAt,
	).Error
	return classifyWriteError(err)
}

func (r *replicaRepository) InsertConsultation(ctx context.Context, consultation *entity.Consultation) error {
	err := r.db.WithContext(ctx).Exec(insertConsultationSQL,
		consultation.ID,
		consultation.PhysicianID,
		consultation.PatientName,
		consultation.Diagnosis,
		consultation.ConsultedAt,
	).Error
	return classifyWriteError(err)
}

// classifyWriteError tags PostgreSQL constraint violations so callers can log them distinctly.
func classifyWriteError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		// 23505 = unique_violation
		case "23505":
			return fmt.Errorf("%w: %s", ErrDuplicateRecord, pgErr.ConstraintName)
		// 23503 = foreign_key_violation
		case "23503":
			return fmt.Errorf("%w: %s", ErrMissingReference, pgErr.ConstraintName)
		}
	}
	return fmt.Errorf("%w: %w", ErrPersistence, err)
}
