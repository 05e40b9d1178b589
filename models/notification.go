package models

import "time"

type Notification struct {
	ID         int       `json:"id" db:"id"`
	ReminderID int       `json:"reminder_id" db:"reminder_id"`
	Message    string    `json:"message" db:"message"`
	IsRead     bool      `json:"is_read" db:"is_read"`
	DateWhen   time.Time `json:"date_when" db:"date_when"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
