package handlers

import (
	"fmt"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valeriaulyamaeva/payment-reminders-app/internal/database"
	"github.com/valeriaulyamaeva/payment-reminders-app/models"
	"github.com/valeriaulyamaeva/payment-reminders-app/utils"
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"
)

func successMessage(amount, title, dueDate string) string {
	return fmt.Sprintf("✅ Reminder saved for ₹%s to %s due on %s", amount, title, dueDate)
}

func failureMessage(err error) string {
	return fmt.Sprintf("❌ Failed to save: %v", err)
}

func invalidAmountMessage(raw string) string {
	return fmt.Sprintf("❌ Invalid amount: %s", raw)
}

// SubmitReminderHandler обрабатывает один цикл отправки формы: читает три
// поля, выполняет ровно одну вставку и возвращает строку результата для
// элемента подтверждения. Повторные отправки не дедуплицируются.
func SubmitReminderHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		title := c.PostForm("title")
		rawAmount := c.PostForm("amount")
		rawDueDate := c.PostForm("due_date")

		amount, err := strconv.ParseFloat(strings.TrimSpace(rawAmount), 64)
		if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
			c.JSON(http.StatusBadRequest, gin.H{"message": invalidAmountMessage(rawAmount)})
			return
		}

		reminder := models.Reminder{
			Title:   title,
			Amount:  amount,
			DueDate: utils.ParseDueDate(rawDueDate),
		}
		if err := database.CreateReminder(pool, &reminder); err != nil {
			log.Printf("Ошибка сохранения напоминания: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": failureMessage(err)})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message":  successMessage(rawAmount, title, rawDueDate),
			"reminder": reminder,
		})
	}
}

func CreateReminderHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var reminder models.Reminder
		if err := c.ShouldBindJSON(&reminder); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный ввод"})
			return
		}
		if err := database.CreateReminder(pool, &reminder); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка создания напоминания о платеже"})
			return
		}
		c.JSON(http.StatusCreated, reminder)
	}
}

func ListRemindersHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		showAll, _ := strconv.ParseBool(c.DefaultQuery("all", "false"))
		reminders, err := database.ListReminders(pool, showAll)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка получения напоминаний о платежах"})
			return
		}
		c.JSON(http.StatusOK, reminders)
	}
}

func GetReminderHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный идентификатор напоминания"})
			return
		}
		reminder, err := database.GetReminderByID(pool, id)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Напоминание о платеже не найдено"})
			return
		}
		c.JSON(http.StatusOK, reminder)
	}
}

func UpdateReminderHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var reminder models.Reminder
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный идентификатор напоминания"})
			return
		}
		if err := c.ShouldBindJSON(&reminder); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный ввод"})
			return
		}
		reminder.ID = id
		if err := database.UpdateReminder(pool, &reminder); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка обновления напоминания о платеже"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Напоминание о платеже успешно обновлено"})
	}
}

func DeleteReminderHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный идентификатор напоминания"})
			return
		}
		if err := database.DeleteReminder(pool, id); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка удаления напоминания о платеже"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Напоминание о платеже успешно удалено"})
	}
}

func DeleteRemindersByTitleHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		title := c.Query("title")
		if title == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Не указан заголовок напоминания"})
			return
		}
		deleted, err := database.DeleteRemindersByTitle(pool, title)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("✅ %d reminder(s) matching '%s' deleted", deleted, title)})
	}
}

func MarkRemindersDoneHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		title := c.Query("title")
		if title == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Не указан заголовок напоминания"})
			return
		}
		updated, err := database.MarkRemindersDoneByTitle(pool, title)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("✅ %d reminder(s) matching '%s' marked as done", updated, title)})
	}
}

func RemindersSummaryHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		total, count, err := database.GetPendingSummary(pool)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка получения сводки по напоминаниям"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"pending_count": count,
			"pending_total": total,
		})
	}
}

// ParseReminderHandler принимает команду на естественном языке и выполняет
// распознанное действие: создание, список, удаление или отметку о выполнении.
func ParseReminderHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload struct {
			Text string `json:"text" binding:"required"`
		}
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный ввод"})
			return
		}

		request := utils.ParseReminderRequest(payload.Text)
		switch request.Action {
		case utils.ActionCreate:
			reminder := models.Reminder{
				Title:                request.Info.Title,
				Amount:               request.Info.Amount,
				DueDate:              request.Info.DueDate,
				Category:             request.Info.Category,
				Recurrence:           request.Info.Recurrence,
				CustomRecurrenceDays: request.Info.CustomRecurrenceDays,
			}
			if err := database.CreateReminder(pool, &reminder); err != nil {
				log.Printf("Ошибка сохранения напоминания: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"message": failureMessage(err)})
				return
			}
			c.JSON(http.StatusCreated, gin.H{
				"message":  fmt.Sprintf("✅ Reminder created: %s", reminder.Title),
				"reminder": reminder,
			})

		case utils.ActionList:
			lower := strings.ToLower(payload.Text)
			showAll := strings.Contains(lower, "all") || strings.Contains(lower, "completed")
			reminders, err := database.ListReminders(pool, showAll)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка получения напоминаний о платежах"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"reminders": reminders})

		case utils.ActionDelete:
			deleted, err := database.DeleteRemindersByTitle(pool, request.Title)
			if err != nil {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("✅ %d reminder(s) matching '%s' deleted", deleted, request.Title)})

		case utils.ActionMarkDone:
			updated, err := database.MarkRemindersDoneByTitle(pool, request.Title)
			if err != nil {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("✅ %d reminder(s) matching '%s' marked as done", updated, request.Title)})

		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Не удалось распознать команду"})
		}
	}
}
