package scheduler

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/montagezeit/reminder-engine/internal/app"
)

type PayloadJSONB struct {
	app.JobPayload
}

func (p *PayloadJSONB) Scan(value interface{}) error {
	if value == nil {
		*p = PayloadJSONB{}

		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan PayloadJSONB: expected []byte")
	}

	return json.Unmarshal(bytes, &p.JobPayload)
}

func (p PayloadJSONB) Value() (driver.Value, error) {
	return json.Marshal(p.JobPayload)
}

// JobModel is one durable job registration. The stable name is the primary
// key, so registering again replaces rather than duplicates; rows survive
// restarts and the runner resumes from next_run_at.
type JobModel struct {
	Name            string       `gorm:"column:name;type:varchar(64);primaryKey"`
	Payload         PayloadJSONB `gorm:"column:payload;type:jsonb;not null"`
	IntervalSeconds int64        `gorm:"column:interval_seconds;type:bigint;not null"`
	OneShot         bool         `gorm:"column:one_shot;type:boolean;not null;default:false"`
	NextRunAt       time.Time    `gorm:"column:next_run_at;type:timestamptz;not null;index:idx_jobs_next_run_at"`
	CreatedAt       time.Time    `gorm:"column:created_at;type:timestamptz;not null"`
	UpdatedAt       time.Time    `gorm:"column:updated_at;type:timestamptz;not null"`
}

func (JobModel) TableName() string {
	return "reminder_jobs"
}

func (m *JobModel) Interval() time.Duration {
	return time.Duration(m.IntervalSeconds) * time.Second
}
