package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SyncRun is the audit trail entry written once per sync invocation.
type SyncRun struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	RunID     uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"run_id"`
	Target    string    `gorm:"column:table_name;type:varchar(32);not null;index" json:"table_name"`
	Cutoff    string    `gorm:"type:varchar(10);not null" json:"cutoff"`
	Success   bool      `gorm:"not null" json:"success"`
	Code      int       `gorm:"not null" json:"code"`
	Message   string    `gorm:"type:text" json:"message"`
	Metadata  JSON      `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

func (SyncRun) TableName() string {
	return "sync_runs"
}

// Sync run actions recorded in metadata.
const (
	SyncRunActionCompleted = "sync.completed"
	SyncRunActionFailed    = "sync.failed"
)

// JSON type for GORM JSONB support
type JSON map[string]interface{}

// Value returns json value, implement driver.Valuer interface
func (j JSON) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan scan value into Jsonb, implements sql.Scanner interface
func (j *JSON) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal JSONB value:", value))
	}

	result := map[string]interface{}{}
	err := json.Unmarshal(bytes, &result)
	*j = JSON(result)
	return err
}
