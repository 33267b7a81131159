package handler

type PostponeRequest struct {
	ReminderType string `json:"reminder_type" binding:"required"`
	DelayMinutes int    `json:"delay_minutes" binding:"omitempty,min=1,max=720"`
}

type AcquireLocationRequest struct {
	TimeoutMs int64 `json:"timeout_ms" binding:"omitempty,min=0,max=60000"`
}
