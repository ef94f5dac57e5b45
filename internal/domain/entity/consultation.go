package entity

import "time"

type Consultation struct {
	ID          int64     `gorm:"primaryKey;autoIncrement:false" json:"id"`
	PhysicianID int64     `gorm:"not null;index" json:"physician_id"`
	PatientName string    `gorm:"type:varchar(200);not null" json:"patient_name"`
	Diagnosis   *string   `gorm:"type:varchar(500)" json:"diagnosis"`
	ConsultedAt time.Time `gorm:"not null" json:"consulted_at"`
}

func (Consultation) TableName() string {
	return "consultations"
}
