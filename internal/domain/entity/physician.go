package entity

import "time"

type Physician struct {
	ID           int64     `gorm:"primaryKey;autoIncrement:false" json:"id"`
	DepartmentID int64     `gorm:"not null;index" json:"department_id"`
	FirstName    string    `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName     string    `gorm:"type:varchar(100);not null" json:"last_name"`
	Specialty    *string   `gorm:"type:varchar(100)" json:"specialty"`
	RegisteredAt time.Time `gorm:"not null" json:"registered_at"`
}

func (Physician) TableName() string {
	return "physicians"
}
