package dto

import "time"

// SourceRecord is one record of the upstream envelope, decoded with json.Number for numerics.
type SourceRecord map[string]any

// Record DTOs share the upstream wire shape and carry the validation contract
// applied before every write and after every read.

type DepartmentRecord struct {
	ID        int64     `json:"id" mapstructure:"id" validate:"gt=0"`
	Name      string    `json:"name" mapstructure:"name" validate:"required,max=100,department_name"`
	Location  *string   `json:"location" mapstructure:"location" validate:"omitempty,max=100,free_text"`
	CreatedAt time.Time `json:"created_at" mapstructure:"created_at"`
}

type PhysicianRecord struct {
	ID           int64     `json:"id" mapstructure:"id" validate:"gt=0"`
	DepartmentID int64     `json:"department_id" mapstructure:"department_id" validate:"gt=0"`
	FirstName    string    `json:"first_name" mapstructure:"first_name" validate:"required,max=100,person_name"`
	LastName     string    `json:"last_name" mapstructure:"last_name" validate:"required,max=100,person_name"`
	Specialty    *string   `json:"specialty" mapstructure:"specialty" validate:"omitempty,max=100,person_name"`
	RegisteredAt time.Time `json:"registered_at" mapstructure:"registered_at"`
}

type ConsultationRecord struct {
	ID          int64     `json:"id" mapstructure:"id" validate:"gt=0"`
	PhysicianID int64     `json:"physician_id" mapstructure:"physician_id" validate:"gt=0"`
	PatientName string    `json:"patient_name" mapstructure:"patient_name" validate:"required,max=200,person_name"`
	Diagnosis   *string   `json:"diagnosis" mapstructure:"diagnosis" validate:"omitempty,max=500,free_text"`
	ConsultedAt time.Time `json:"consulted_at" mapstructure:"consulted_at"`
}
