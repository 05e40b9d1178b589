package database

import (
	"context"
	"fmt"
	"github.com/jackc/pgx/v5/pgxpool"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS payment_reminders (
    id SERIAL PRIMARY KEY,
    title TEXT NOT NULL,
    amount NUMERIC(12, 2) NOT NULL DEFAULT 0,
    due_date TIMESTAMP WITH TIME ZONE NOT NULL,
    category TEXT,
    recurrence TEXT,
    custom_recurrence_days INT,
    is_done BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS notifications (
    id SERIAL PRIMARY KEY,
    reminder_id INT REFERENCES payment_reminders(id) ON DELETE CASCADE,
    message TEXT NOT NULL,
    is_read BOOLEAN NOT NULL DEFAULT FALSE,
    date_when TIMESTAMP WITH TIME ZONE,
    created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
);`

func EnsureSchema(pool *pgxpool.Pool) error {
	if _, err := pool.Exec(context.Background(), schemaSQL); err != nil {
		return fmt.Errorf("ошибка создания таблиц: %v", err)
	}
	return nil
}
