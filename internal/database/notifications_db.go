package database

import (
	"context"
	"fmt"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valeriaulyamaeva/payment-reminders-app/models"
	"log"
	"time"
)

func CreateNotification(pool *pgxpool.Pool, notification *models.Notification) error {
	query := `
		INSERT INTO notifications (reminder_id, message, is_read, date_when)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	err := pool.QueryRow(context.Background(), query,
		notification.ReminderID,
		notification.Message,
		notification.IsRead,
		notification.DateWhen).Scan(&notification.ID, &notification.CreatedAt)
	if err != nil {
		return fmt.Errorf("ошибка при добавлении уведомления: %v", err)
	}
	return nil
}

// ScheduleDueNotification планирует одно уведомление в день платежа.
// Прошедшие даты пропускаются без ошибки.
func ScheduleDueNotification(pool *pgxpool.Pool, reminder *models.Reminder) error {
	notificationDate := reminder.DueDate
	message := fmt.Sprintf("Напоминание: нужно заплатить %.2f за %s до %v", reminder.Amount, reminder.Title, notificationDate)

	if notificationDate.Before(time.Now()) {
		log.Printf("Дата уведомления для напоминания ID %d уже прошла: %v", reminder.ID, notificationDate)
		return nil
	}

	notification := models.Notification{
		ReminderID: reminder.ID,
		Message:    message,
		IsRead:     false,
		DateWhen:   notificationDate,
	}

	if err := CreateNotification(pool, &notification); err != nil {
		log.Printf("Ошибка при создании уведомления для напоминания ID %d: %v", reminder.ID, err)
		return fmt.Errorf("ошибка при создании уведомления: %w", err)
	}

	return nil
}

// CreateDueNotifications создаёт уведомления для всех напоминаний,
// срок которых наступает в указанный день. Повторные запуски за тот же
// день новых уведомлений не добавляют.
func CreateDueNotifications(pool *pgxpool.Pool, day time.Time) error {
	reminders, err := GetRemindersDueOn(pool, day)
	if err != nil {
		return err
	}

	for _, reminder := range reminders {
		var exists bool
		err := pool.QueryRow(context.Background(), `
			SELECT EXISTS (
				SELECT 1 FROM notifications
				WHERE reminder_id = $1 AND date_when::date = $2::date
			)`, reminder.ID, day).Scan(&exists)
		if err != nil {
			return fmt.Errorf("ошибка проверки уведомления: %v", err)
		}
		if exists {
			continue
		}

		notification := models.Notification{
			ReminderID: reminder.ID,
			Message:    fmt.Sprintf("Напоминание: нужно заплатить %.2f за %s до %v", reminder.Amount, reminder.Title, reminder.DueDate),
			IsRead:     false,
			DateWhen:   day,
		}
		if err := CreateNotification(pool, &notification); err != nil {
			return err
		}
	}
	return nil
}

func ListNotifications(pool *pgxpool.Pool, unreadOnly bool) ([]models.Notification, error) {
	query := `
		SELECT id, reminder_id, message, is_read, COALESCE(date_when, created_at), created_at
		FROM notifications`
	if unreadOnly {
		query += ` WHERE is_read = FALSE`
	}
	query += ` ORDER BY date_when`

	rows, err := pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения уведомлений: %v", err)
	}
	defer rows.Close()

	var notifications []models.Notification
	for rows.Next() {
		var notification models.Notification
		if err := rows.Scan(
			&notification.ID,
			&notification.ReminderID,
			&notification.Message,
			&notification.IsRead,
			&notification.DateWhen,
			&notification.CreatedAt,
		); err != nil {
			return nil, err
		}
		notifications = append(notifications, notification)
	}
	return notifications, nil
}

func MarkNotificationAsRead(pool *pgxpool.Pool, notificationID int) error {
	query := `
		UPDATE notifications
		SET is_read = TRUE
		WHERE id = $1`

	result, err := pool.Exec(context.Background(), query, notificationID)
	if err != nil {
		return fmt.Errorf("ошибка пометки уведомления: %v", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("уведомление с ID %d не найдено", notificationID)
	}
	return nil
}

func DeleteNotification(pool *pgxpool.Pool, notificationID int) error {
	query := `
		DELETE FROM notifications
		WHERE id = $1`

	result, err := pool.Exec(context.Background(), query, notificationID)
	if err != nil {
		return fmt.Errorf("ошибка удаления уведомления: %v", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("уведомление с ID %d не найдено", notificationID)
	}
	return nil
}
