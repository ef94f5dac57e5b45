package entity

import "time"

type Department struct {
	ID        int64     `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Location  *string   `gorm:"type:varchar(100)" json:"location"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (Department) TableName() string {
	return "departments"
}
