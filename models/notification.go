package models

// ReminderPayload is the asynq task payload for a scheduled job reminder.
type ReminderPayload struct {
	JobID     string `json:"jobId"`
	CompanyID string `json:"companyId"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	FireDate  string `json:"fireDate"`
}
