package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"hospital-replica-sync/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func TestReplicaRepository_Exists(t *testing.T) {
	tests := []struct {
		name  string
		table entity.Table
		query string
		count int
		want  bool
	}{
		{name: "present", table: entity.TableDepartments, query: `SELECT count\(\*\) FROM "departments" WHERE id = \$1`, count: 1, want: true},
		{name: "absent", table: entity.TablePhysicians, query: `SELECT count\(\*\) FROM "physicians" WHERE id = \$1`, count: 0, want: false},
		{name: "consultations", table: entity.TableConsultations, query: `SELECT count\(\*\) FROM "consultations" WHERE id = \$1`, count: 2, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			mock.ExpectQuery(tt.query).
				WithArgs(int64(10)).
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(tt.count))

			got, err := NewReplicaRepository(db).Exists(context.Background(), tt.table, 10)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestReplicaRepository_ExistsQueryFailure(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT count\(\*\) FROM "departments"`).WillReturnError(sql.ErrConnDone)

	got, err := NewReplicaRepository(db).Exists(context.Background(), entity.TableDepartments, 1)
	require.ErrorIs(t, err, sql.ErrConnDone)
	assert.ErrorIs(t, err, ErrPersistence)
	assert.False(t, got)
}

func TestReplicaRepository_InsertDepartment(t *testing.T) {
	db, mock := newMockDB(t)
	location := "Piso 3"
	mock.ExpectExec(`INSERT INTO departments \(id, name, location, created_at\)`).
		WithArgs(int64(1), "Cardiología", "Piso 3", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := NewReplicaRepository(db).InsertDepartment(context.Background(), &entity.Department{
		ID:        1,
		Name:      "Cardiología",
		Location:  &location,
		CreatedAt: time.Now(),
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplicaRepository_InsertPhysician(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(`INSERT INTO physicians \(id, department_id, first_name, last_name, specialty, registered_at\)`).
		WithArgs(int64(4), int64(1), "Juan", "García", nil, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := NewReplicaRepository(db).InsertPhysician(context.Background(), &entity.Physician{
		ID:           4,
		DepartmentID: 1,
		FirstName:    "Juan",
		LastName:     "García",
		RegisteredAt: time.Now(),
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplicaRepository_InsertConsultationConstraintErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "duplicate", err: &pgconn.PgError{Code: "23505", ConstraintName: "consultations_pkey"}, want: ErrDuplicateRecord},
		{name: "missing physician", err: &pgconn.PgError{Code: "23503", ConstraintName: "fk_consultations_physician"}, want: ErrMissingReference},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			mock.ExpectExec(`INSERT INTO consultations`).WillReturnError(tt.err)

			err := NewReplicaRepository(db).InsertConsultation(context.Background(), &entity.Consultation{
				ID:          2,
				PhysicianID: 99,
				PatientName: "Ana Ruiz",
				ConsultedAt: time.Now(),
			})
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestReplicaRepository_InsertPassesThroughOtherErrors(t *testing.T) {
	db, mock := newMockDB(t)
	boom := errors.New("connection reset")
	mock.ExpectExec(`INSERT INTO departments`).WillReturnError(boom)

	err := NewReplicaRepository(db).InsertDepartment(context.Background(), &entity.Department{ID: 1, Name: "Urgencias"})
	require.ErrorIs(t, err, boom)
	assert.ErrorIs(t, err, ErrPersistence)
	assert.NotErrorIs(t, err, ErrDuplicateRecord)
}

func TestDepartmentRepository_FindAll(t *testing.T) {
	db, mock := newMockDB(t)
	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "departments" ORDER BY id`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "location", "created_at"}).
			AddRow(1, "Cardiología", "Piso 3", now).
			AddRow(2, "Urgencias", nil, now))

	departments, err := NewDepartmentRepository().FindAll(db)
	require.NoError(t, err)
	require.Len(t, departments, 2)
	assert.Equal(t, "Piso 3", *departments[0].Location)
	assert.Nil(t, departments[1].Location)
}

func TestPhysicianRepository_FindAll(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT \* FROM "physicians" ORDER BY id`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "department_id", "first_name", "last_name", "specialty", "registered_at"}).
			AddRow(1, 1, "Juan", "García", "Cardiología", time.Now()))

	physicians, err := NewPhysicianRepository().FindAll(db)
	require.NoError(t, err)
	require.Len(t, physicians, 1)
	assert.Equal(t, int64(1), physicians[0].DepartmentID)
}

func TestConsultationRepository_FindAllError(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT \* FROM "consultations" ORDER BY id`).WillReturnError(sql.ErrConnDone)

	_, err := NewConsultationRepository().FindAll(db)
	require.ErrorIs(t, err, sql.ErrConnDone)
}

func TestSyncRunRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "sync_runs"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectCommit()

	run := &entity.SyncRun{
		RunID:   uuid.New(),
		Target:  "departments",
		Cutoff:  "2025-01-01",
		Success: true,
		Code:    200,
		Metadata: entity.JSON{
			"received": 3,
		},
	}
	require.NoError(t, NewSyncRunRepository().Create(db, run))
	assert.Equal(t, int64(7), run.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSyncRunRepository_FindByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT \* FROM "sync_runs" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	run, err := NewSyncRunRepository().FindByID(db, 5)
	require.NoError(t, err)
	assert.Nil(t, run)
}
