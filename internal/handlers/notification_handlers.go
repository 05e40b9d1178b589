package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valeriaulyamaeva/payment-reminders-app/internal/database"
	"net/http"
	"strconv"
)

func ListNotificationsHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		unreadOnly, _ := strconv.ParseBool(c.DefaultQuery("unread", "false"))
		notifications, err := database.ListNotifications(pool, unreadOnly)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка получения уведомлений"})
			return
		}
		c.JSON(http.StatusOK, notifications)
	}
}

func MarkNotificationReadHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный идентификатор уведомления"})
			return
		}
		if err := database.MarkNotificationAsRead(pool, id); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка пометки уведомления как прочитанного"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Уведомление помечено как прочитанное"})
	}
}

func DeleteNotificationHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный идентификатор уведомления"})
			return
		}
		if err := database.DeleteNotification(pool, id); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка удаления уведомления"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Уведомление успешно удалено"})
	}
}
