package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"hospital-replica-sync/internal/converter"
	"hospital-replica-sync/internal/delivery/dto"
	"hospital-replica-sync/internal/domain/entity"
	"hospital-replica-sync/internal/domain/repository"
	"hospital-replica-sync/internal/infrastructure/source"
	"hospital-replica-sync/internal/metrics"
	"hospital-replica-sync/internal/service"
	"hospital-replica-sync/pkg/validator"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var (
	ErrInvalidTable = errors.New("invalid table")
	ErrInvalidDate  = errors.New("invalid date format")
)

// SourceFetcher pulls records newer than cutoff from the upstream API.
type SourceFetcher interface {
	Fetch(ctx context.Context, table entity.Table, cutoff time.Time) ([]dto.SourceRecord, error)
}

type SyncUsecase interface {
	// Sync never fails outward: every outcome is a SyncResult.
	Sync(ctx context.Context, table string, cutoff string) *dto.SyncResult
	GetStatus(ctx context.Context, table string) (*dto.SyncStatus, error)
}

type outcome int

const (
	outcomeInserted outcome = iota
	outcomeSkipped
	outcomeErrored
)

func (o outcome) String() string {
	switch o {
	case outcomeInserted:
		return metrics.OutcomeInserted
	case outcomeSkipped:
		return metrics.OutcomeSkipped
	default:
		return metrics.OutcomeErrored
	}
}

// recordInserter decodes, validates and writes one raw upstream record.
type recordInserter func(ctx context.Context, raw dto.SourceRecord) error

type syncUsecase struct {
	log           *logrus.Logger
	fetcher       SourceFetcher
	replicaRepo   repository.ReplicaRepository
	validator     *validator.CustomValidator
	auditService  service.SyncAuditService
	statusService service.SyncStatusService
	inserters     map[entity.Table]recordInserter
}

func NewSyncUsecase(
	log *logrus.Logger,
	fetcher SourceFetcher,
	replicaRepo repository.ReplicaRepository,
	validator *validator.CustomValidator,
	auditService service.SyncAuditService,
	statusService service.SyncStatusService,
) SyncUsecase {
	u := &syncUsecase{
		log:           log,
		fetcher:       fetcher,
		replicaRepo:   replicaRepo,
		validator:     validator,
		auditService:  auditService,
		statusService: statusService,
	}
	u.inserters = map[entity.Table]recordInserter{
		entity.TableDepartments:   u.insertDepartment,
		entity.TablePhysicians:    u.insertPhysician,
		entity.TableConsultations: u.insertConsultation,
	}
	return u
}

// ParseCutoff accepts a bare YYYY-MM-DD calendar date.
func ParseCutoff(text string) (time.Time, error) {
	cutoff, err := time.Parse(source.CutoffLayout, text)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return cutoff, nil
}

// Sync pulls table records newer than cutoff from the source and inserts the
// ones whose id is not yet present locally. Records are handled one at a time,
// in source order; a failing record is counted and never stops the batch.
func (u *syncUsecase) Sync(ctx context.Context, tableName string, cutoffText string) (result *dto.SyncResult) {
	table, err := entity.ParseTable(tableName)
	if err != nil {
		return failure(http.StatusBadRequest,
			fmt.Sprintf("%s: use %s", ErrInvalidTable, strings.Join(entity.TableNames(), ", ")))
	}

	cutoff, err := ParseCutoff(cutoffText)
	if err != nil {
		return failure(http.StatusBadRequest, fmt.Sprintf("%s: use YYYY-MM-DD", ErrInvalidDate))
	}

	// A started run always completes, even if the caller goes away.
	ctx = context.WithoutCancel(ctx)

	runID := uuid.New()
	log := u.log.WithFields(logrus.Fields{
		"run_id": runID.String(),
		"table":  table.String(),
		"cutoff": cutoffText,
	})

	ctx, span := otel.Tracer("replica-sync/usecase").Start(ctx, "sync."+table.String())
	defer span.End()
	span.SetAttributes(
		attribute.String("sync.run_id", runID.String()),
		attribute.String("sync.cutoff", cutoffText),
	)

	defer func() {
		if r := recover(); r != nil {
			log.Errorf("Sync aborted: %v", r)
			result = failure(http.StatusInternalServerError, fmt.Sprintf("sync failed: %v", r))
		}
		if !result.Success {
			span.SetStatus(codes.Error, result.Message)
		}
		metrics.SyncRuns.WithLabelValues(table.String(), fmt.Sprint(result.Code)).Inc()
		u.record(ctx, log, runID, table, cutoffText, result)
	}()

	log.Info("Starting sync")

	fetchStarted := time.Now()
	records, err := u.fetcher.Fetch(ctx, table, cutoff)
	metrics.SourceFetchDuration.WithLabelValues(table.String()).Observe(time.Since(fetchStarted).Seconds())
	if err != nil {
		log.Warnf("Failed to fetch records from source: %+v", err)
		return failure(http.StatusInternalServerError, "cannot reach source")
	}

	summary := &dto.SyncSummary{
		RunID:    runID.String(),
		Table:    table.String(),
		Cutoff:   cutoffText,
		Received: len(records),
	}

	log.Infof("Processing %d records", summary.Received)

	for i, raw := range records {
		switch o := u.syncRecord(ctx, log.WithField("index", i), table, raw); o {
		case outcomeInserted:
			summary.Inserted++
		case outcomeSkipped:
			summary.Skipped++
		default:
			summary.Errored++
		}
	}

	span.SetAttributes(
		attribute.Int("sync.received", summary.Received),
		attribute.Int("sync.inserted", summary.Inserted),
		attribute.Int("sync.skipped", summary.Skipped),
		attribute.Int("sync.errored", summary.Errored),
	)
	log.WithFields(logrus.Fields{
		"received": summary.Received,
		"inserted": summary.Inserted,
		"skipped":  summary.Skipped,
		"errored":  summary.Errored,
	}).Info("Sync completed")

	return &dto.SyncResult{
		Success: true,
		Code:    http.StatusOK,
		Message: fmt.Sprintf("%s sync completed", table),
		Data:    summary,
	}
}

// syncRecord runs existence check then insert for one record.
func (u *syncUsecase) syncRecord(ctx context.Context, log *logrus.Entry, table entity.Table, raw dto.SourceRecord) (o outcome) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("Failed to sync record: %v", r)
			o = outcomeErrored
		}
		metrics.SyncedRecords.WithLabelValues(table.String(), o.String()).Inc()
	}()

	id, err := converter.SourceID(raw)
	if err != nil {
		log.Warnf("Failed to read record id: %+v", err)
		return outcomeErrored
	}
	log = log.WithField("id", id)

	exists, err := u.replicaRepo.Exists(ctx, table, id)
	if err != nil {
		// An unconfirmed absence is not treated as absence.
		log.Warnf("Failed to check record existence: %+v", err)
		return outcomeErrored
	}
	if exists {
		return outcomeSkipped
	}

	if err := u.inserters[table](ctx, raw); err != nil {
		log.Warnf("Failed to insert record: %+v", err)
		return outcomeErrored
	}

	return outcomeInserted
}

func (u *syncUsecase) insertDepartment(ctx context.Context, raw dto.SourceRecord) error {
	record, err := converter.DecodeDepartment(raw)
	if err != nil {
		return err
	}
	if err := u.validate(record, record.CreatedAt, "created_at"); err != nil {
		return err
	}
	return u.replicaRepo.InsertDepartment(ctx, converter.DepartmentRecordToEntity(record))
}

func (u *syncUsecase) insertPhysician(ctx context.Context, raw dto.SourceRecord) error {
	record, err := converter.DecodePhysician(raw)
	if err != nil {
		return err
	}
	if err := u.validate(record, record.RegisteredAt, "registered_at"); err != nil {
		return err
	}
	return u.replicaRepo.InsertPhysician(ctx, converter.PhysicianRecordToEntity(record))
}

func (u *syncUsecase) insertConsultation(ctx context.Context, raw dto.SourceRecord) error {
	record, err := converter.DecodeConsultation(raw)
	if err != nil {
		return err
	}
	if err := u.validate(record, record.ConsultedAt, "consulted_at"); err != nil {
		return err
	}
	return u.replicaRepo.InsertConsultation(ctx, converter.ConsultationRecordToEntity(record))
}

// validate applies the record contract plus the timestamp presence check
// the struct tags cannot express.
func (u *syncUsecase) validate(record any, timestamp time.Time, timestampField string) error {
	if err := u.validator.ValidateRecord(record); err != nil {
		return err
	}
	if timestamp.IsZero() {
		return &validator.ValidationError{Field: timestampField, Message: timestampField + " is required"}
	}
	return nil
}

// record writes the audit entry and, on success, the status cache.
// Neither may change the result.
func (u *syncUsecase) record(ctx context.Context, log *logrus.Entry, runID uuid.UUID, table entity.Table, cutoff string, result *dto.SyncResult) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("Failed to record sync run: %v", r)
		}
	}()

	if err := u.auditService.Record(ctx, runID, table, cutoff, result); err != nil {
		log.Warnf("Failed to record sync run: %+v", err)
	}

	if result.Success && result.Data != nil {
		if err := u.statusService.Store(ctx, result.Data); err != nil {
			log.Warnf("Failed to store sync status: %+v", err)
		}
	}
}

func (u *syncUsecase) GetStatus(ctx context.Context, tableName string) (*dto.SyncStatus, error) {
	table, err := entity.ParseTable(tableName)
	if err != nil {
		return nil, ErrInvalidTable
	}
	return u.statusService.Last(ctx, table)
}

func failure(code int, message string) *dto.SyncResult {
	return &dto.SyncResult{
		Success: false,
		Code:    code,
		Message: message,
	}
}
