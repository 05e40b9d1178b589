package models

import "time"

type Reminder struct {
	ID                   int       `json:"id" db:"id"`
	Title                string    `json:"title" db:"title"`
	Amount               float64   `json:"amount" db:"amount"`
	DueDate              time.Time `json:"due_date" db:"due_date"`
	Category             string    `json:"category,omitempty" db:"category"`
	Recurrence           string    `json:"recurrence,omitempty" db:"recurrence"`
	CustomRecurrenceDays int       `json:"custom_recurrence_days,omitempty" db:"custom_recurrence_days"`
	IsDone               bool      `json:"is_done" db:"is_done"`
	CreatedAt            time.Time `json:"created_at" db:"created_at"`
}
