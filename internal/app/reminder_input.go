package app

type PostponeInput struct {
	ReminderType string
	DelayMinutes int
}

type AcquireLocationInput struct {
	TimeoutMs int64
}
