package database

import (
	"context"
	"errors"
	"fmt"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/valeriaulyamaeva/payment-reminders-app/models"
	"log"
	"strings"
	"time"
)

const reminderColumns = `id, title, amount, due_date, COALESCE(category, ''), COALESCE(recurrence, ''), COALESCE(custom_recurrence_days, 0), is_done, created_at`

func scanReminder(row pgx.Row, reminder *models.Reminder) error {
	return row.Scan(
		&reminder.ID,
		&reminder.Title,
		&reminder.Amount,
		&reminder.DueDate,
		&reminder.Category,
		&reminder.Recurrence,
		&reminder.CustomRecurrenceDays,
		&reminder.IsDone,
		&reminder.CreatedAt,
	)
}

func CreateReminder(pool *pgxpool.Pool, reminder *models.Reminder) error {
	// Заголовок обязателен, остальные поля вставляются как есть
	if strings.TrimSpace(reminder.Title) == "" {
		return fmt.Errorf("пустой заголовок напоминания")
	}

	query := `
        INSERT INTO payment_reminders (title, amount, due_date, category, recurrence, custom_recurrence_days, is_done)
        VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, 0), $7)
        RETURNING id, created_at`
	err := pool.QueryRow(context.Background(), query,
		reminder.Title,
		reminder.Amount,
		reminder.DueDate,
		reminder.Category,
		reminder.Recurrence,
		reminder.CustomRecurrenceDays,
		reminder.IsDone).Scan(&reminder.ID, &reminder.CreatedAt)

	if err != nil {
		return fmt.Errorf("ошибка добавления напоминания: %v", err)
	}

	// Запланировать одно уведомление в день платежа. Сбой планирования
	// не отменяет уже сохранённое напоминание.
	if err := ScheduleDueNotification(pool, reminder); err != nil {
		log.Printf("Ошибка при планировании уведомления для напоминания ID %d: %v", reminder.ID, err)
	}

	return nil
}

func GetReminderByID(pool *pgxpool.Pool, reminderID int) (*models.Reminder, error) {
	query := `
		SELECT ` + reminderColumns + `
		FROM payment_reminders
		WHERE id = $1`

	reminder := &models.Reminder{}
	err := scanReminder(pool.QueryRow(context.Background(), query, reminderID), reminder)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("напоминание с ID %d не найдено", reminderID)
		}
		return nil, fmt.Errorf("ошибка получения напоминания: %v", err)
	}

	return reminder, nil
}

// ListReminders возвращает напоминания, отсортированные по дате платежа.
// По умолчанию выполненные скрываются, showAll включает их в список.
func ListReminders(pool *pgxpool.Pool, showAll bool) ([]models.Reminder, error) {
	query := `SELECT ` + reminderColumns + ` FROM payment_reminders`
	if !showAll {
		query += ` WHERE is_done = FALSE`
	}
	query += ` ORDER BY due_date`

	rows, err := pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения напоминаний: %v", err)
	}
	defer rows.Close()

	var reminders []models.Reminder
	for rows.Next() {
		var reminder models.Reminder
		if err := scanReminder(rows, &reminder); err != nil {
			return nil, err
		}
		reminders = append(reminders, reminder)
	}
	return reminders, nil
}

func UpdateReminder(pool *pgxpool.Pool, reminder *models.Reminder) error {
	query := `
		UPDATE payment_reminders
		SET title = $1, amount = $2, due_date = $3, category = NULLIF($4, ''), recurrence = NULLIF($5, ''), custom_recurrence_days = NULLIF($6, 0), is_done = $7
		WHERE id = $8`

	_, err := pool.Exec(context.Background(), query,
		reminder.Title,
		reminder.Amount,
		reminder.DueDate,
		reminder.Category,
		reminder.Recurrence,
		reminder.CustomRecurrenceDays,
		reminder.IsDone,
		reminder.ID)
	if err != nil {
		return fmt.Errorf("ошибка обновления напоминания: %v", err)
	}
	return nil
}

func DeleteReminder(pool *pgxpool.Pool, reminderID int) error {
	log.Printf("Попытка удалить напоминание с ID %d", reminderID)

	query := `
		DELETE FROM payment_reminders
		WHERE id = $1`

	result, err := pool.Exec(context.Background(), query, reminderID)
	if err != nil {
		return fmt.Errorf("ошибка удаления напоминания: %v", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("напоминание с ID %d не найдено", reminderID)
	}

	log.Printf("Напоминание с ID %d успешно удалено", reminderID)
	return nil
}

// DeleteRemindersByTitle удаляет напоминания по части заголовка.
// Сначала ищем по вхождению (ILIKE), затем по точному совпадению.
func DeleteRemindersByTitle(pool *pgxpool.Pool, title string) (int, error) {
	if strings.TrimSpace(title) == "" {
		return 0, fmt.Errorf("не указан заголовок напоминания")
	}

	query := `
		DELETE FROM payment_reminders
		WHERE title ILIKE '%' || $1 || '%'`
	result, err := pool.Exec(context.Background(), query, title)
	if err != nil {
		return 0, fmt.Errorf("ошибка удаления напоминания: %v", err)
	}

	if result.RowsAffected() == 0 {
		result, err = pool.Exec(context.Background(),
			`DELETE FROM payment_reminders WHERE title = $1`, title)
		if err != nil {
			return 0, fmt.Errorf("ошибка удаления напоминания: %v", err)
		}
	}

	deleted := int(result.RowsAffected())
	if deleted == 0 {
		return 0, fmt.Errorf("напоминание '%s' не найдено", title)
	}

	log.Printf("Удалено напоминаний по заголовку '%s': %d", title, deleted)
	return deleted, nil
}

// MarkRemindersDoneByTitle помечает напоминания выполненными по части заголовка.
func MarkRemindersDoneByTitle(pool *pgxpool.Pool, title string) (int, error) {
	if strings.TrimSpace(title) == "" {
		return 0, fmt.Errorf("не указан заголовок напоминания")
	}

	query := `
		UPDATE payment_reminders
		SET is_done = TRUE
		WHERE title ILIKE '%' || $1 || '%'`
	result, err := pool.Exec(context.Background(), query, title)
	if err != nil {
		return 0, fmt.Errorf("ошибка обновления напоминания: %v", err)
	}

	if result.RowsAffected() == 0 {
		result, err = pool.Exec(context.Background(),
			`UPDATE payment_reminders SET is_done = TRUE WHERE title = $1`, title)
		if err != nil {
			return 0, fmt.Errorf("ошибка обновления напоминания: %v", err)
		}
	}

	updated := int(result.RowsAffected())
	if updated == 0 {
		return 0, fmt.Errorf("напоминание '%s' не найдено", title)
	}
	return updated, nil
}

func GetRemindersDueOn(pool *pgxpool.Pool, day time.Time) ([]models.Reminder, error) {
	// Границы календарного дня в часовом поясе переданной даты
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.Add(24 * time.Hour)

	query := `
		SELECT ` + reminderColumns + `
		FROM payment_reminders
		WHERE is_done = FALSE AND due_date >= $1 AND due_date < $2`
	rows, err := pool.Query(context.Background(), query, start, end)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения напоминаний: %v", err)
	}
	defer rows.Close()

	var reminders []models.Reminder
	for rows.Next() {
		var reminder models.Reminder
		if err := scanReminder(rows, &reminder); err != nil {
			return nil, err
		}
		reminders = append(reminders, reminder)
	}
	return reminders, nil
}

// GetPendingSummary возвращает количество и общую сумму невыполненных напоминаний.
func GetPendingSummary(pool *pgxpool.Pool) (decimal.Decimal, int, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0), COUNT(*)
		FROM payment_reminders
		WHERE is_done = FALSE`

	var total decimal.Decimal
	var count int
	err := pool.QueryRow(context.Background(), query).Scan(&total, &count)
	if err != nil {
		return decimal.Zero, 0, fmt.Errorf("ошибка получения сводки по напоминаниям: %v", err)
	}
	return total, count, nil
}
