package converter

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"hospital-replica-sync/internal/delivery/dto"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/cast"
)

var (
	ErrMissingID = errors.New("record has no id")
	ErrInvalidID = errors.New("record id must be a positive integer")
)

var timeType = reflect.TypeOf(time.Time{})

// SourceID extracts the primary key of a raw upstream record. It accepts
// exactly the id forms the record decoders accept: JSON numbers and Go
// integers. Numeric strings, floats and bools are rejected.
func SourceID(raw dto.SourceRecord) (int64, error) {
	value, ok := raw["id"]
	if !ok || value == nil {
		return 0, ErrMissingID
	}

	var (
		id  int64
		err error
	)
	switch v := value.(type) {
	case json.Number:
		id, err = v.Int64()
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		id, err = cast.ToInt64E(v)
	default:
		err = ErrInvalidID
	}
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %v", ErrInvalidID, value)
	}

	return id, nil
}

// timestampHook accepts every timestamp layout cast understands, including
// the zone-less "2006-01-02T15:04:05" the upstream emits.
func timestampHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to != timeType || from == timeType {
		return data, nil
	}
	return cast.ToTimeE(data)
}

func decode(raw dto.SourceRecord, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: timestampHook,
		Result:     out,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(map[string]any(raw))
}

// DecodeDepartment decodes and normalizes an upstream department record.
func DecodeDepartment(raw dto.SourceRecord) (*dto.DepartmentRecord, error) {
	var record dto.DepartmentRecord
	if err := decode(raw, &record); err != nil {
		return nil, fmt.Errorf("decode department: %w", err)
	}
	NormalizeDepartment(&record)
	return &record, nil
}

// DecodePhysician decodes and normalizes an upstream physician record.
func DecodePhysician(raw dto.SourceRecord) (*dto.PhysicianRecord, error) {
	var record dto.PhysicianRecord
	if err := decode(raw, &record); err != nil {
		return nil, fmt.Errorf("decode physician: %w", err)
	}
	NormalizePhysician(&record)
	return &record, nil
}

// DecodeConsultation decodes and normalizes an upstream consultation record.
func DecodeConsultation(raw dto.SourceRecord) (*dto.ConsultationRecord, error) {
	var record dto.ConsultationRecord
	if err := decode(raw, &record); err != nil {
		return nil, fmt.Errorf("decode consultation: %w", err)
	}
	NormalizeConsultation(&record)
	return &record, nil
}

func NormalizeDepartment(record *dto.DepartmentRecord) {
	record.Name = strings.TrimSpace(record.Name)
	record.Location = trimOptional(record.Location)
}

func NormalizePhysician(record *dto.PhysicianRecord) {
	record.FirstName = strings.TrimSpace(record.FirstName)
	record.LastName = strings.TrimSpace(record.LastName)
	record.Specialty = trimOptional(record.Specialty)
}

func NormalizeConsultation(record *dto.ConsultationRecord) {
	record.PatientName = strings.TrimSpace(record.PatientName)
	record.Diagnosis = trimOptional(record.Diagnosis)
}

// trimOptional maps whitespace-only values to nil.
func trimOptional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
