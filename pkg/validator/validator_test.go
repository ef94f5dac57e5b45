package validator

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type department struct {
	ID       int64   `json:"id" validate:"gt=0"`
	Name     string  `json:"name" validate:"required,max=100,department_name"`
	Location *string `json:"location" validate:"omitempty,max=100,free_text"`
}

type consultation struct {
	PatientName string  `json:"patient_name" validate:"required,max=200,person_name"`
	Diagnosis   *string `json:"diagnosis" validate:"omitempty,max=500,free_text"`
}

func ptr(s string) *string { return &s }

func TestValidateRecord_Department(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name      string
		input     department
		wantField string
	}{
		{name: "valid", input: department{ID: 1, Name: "Cardiología", Location: ptr("Piso 3")}},
		{name: "hyphenated name", input: department{ID: 1, Name: "Gineco-Obstetricia"}},
		{name: "location with period", input: department{ID: 1, Name: "Urgencias", Location: ptr("Ala Este No. 2")}},
		{name: "missing name", input: department{ID: 1}, wantField: "name"},
		{name: "digits in name", input: department{ID: 1, Name: "Sala 4"}, wantField: "name"},
		{name: "name too long", input: department{ID: 1, Name: strings.Repeat("a", 101)}, wantField: "name"},
		{name: "accented name at limit", input: department{ID: 1, Name: strings.Repeat("é", 100)}},
		{name: "bad location", input: department{ID: 1, Name: "Urgencias", Location: ptr("Piso #3")}, wantField: "location"},
		{name: "non positive id", input: department{ID: 0, Name: "Urgencias"}, wantField: "id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateRecord(&tt.input)
			if tt.wantField == "" {
				require.NoError(t, err)
				return
			}

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.wantField, verr.Field)
			assert.Contains(t, verr.Error(), tt.wantField)
		})
	}
}

func TestValidateRecord_AnchorsWholeString(t *testing.T) {
	v := NewValidator()

	err := v.ValidateRecord(&consultation{PatientName: "Pedro González; DROP TABLE"})

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "patient_name", verr.Field)
}

func TestValidateRecord_DiagnosisLength(t *testing.T) {
	v := NewValidator()

	require.NoError(t, v.ValidateRecord(&consultation{PatientName: "Ana Ruiz", Diagnosis: ptr(strings.Repeat("x", 500))}))
	require.Error(t, v.ValidateRecord(&consultation{PatientName: "Ana Ruiz", Diagnosis: ptr(strings.Repeat("x", 501))}))
}

func TestFormatValidationErrors(t *testing.T) {
	v := NewValidator()

	errs := v.FormatValidationErrors(v.Validate(&department{ID: -1, Name: ""}))
	assert.Equal(t, "id must be greater than 0", errs["id"])
	assert.Equal(t, "name is required", errs["name"])

	errs = v.FormatValidationErrors(&ValidationError{Field: "created_at", Message: "created_at is required"})
	assert.Equal(t, map[string]string{"created_at": "created_at is required"}, errs)
}
