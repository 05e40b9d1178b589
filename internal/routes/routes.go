package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valeriaulyamaeva/payment-reminders-app/internal/handlers"
)

func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin == "http://localhost:3000" || origin == "http://localhost:3001" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
			return
		}

		c.Next()
	}
}

func SetupRouter(pool *pgxpool.Pool) *gin.Engine {
	r := gin.Default()
	r.Use(CORSMiddleware())

	// Страница с формой напоминания
	r.StaticFile("/", "./web/index.html")

	r.POST("/reminders/submit", handlers.SubmitReminderHandler(pool))
	r.POST("/reminders", handlers.CreateReminderHandler(pool))
	r.GET("/reminders", handlers.ListRemindersHandler(pool))
	r.GET("/reminders/summary", handlers.RemindersSummaryHandler(pool))
	r.POST("/reminders/parse", handlers.ParseReminderHandler(pool))
	r.DELETE("/reminders/by_title", handlers.DeleteRemindersByTitleHandler(pool))
	r.PUT("/reminders/done", handlers.MarkRemindersDoneHandler(pool))
	r.GET("/reminders/:id", handlers.GetReminderHandler(pool))
	r.PUT("/reminders/:id", handlers.UpdateReminderHandler(pool))
	r.DELETE("/reminders/:id", handlers.DeleteReminderHandler(pool))

	r.GET("/notifications", handlers.ListNotificationsHandler(pool))
	r.PUT("/notifications/:id/read", handlers.MarkNotificationReadHandler(pool))
	r.DELETE("/notifications/:id", handlers.DeleteNotificationHandler(pool))

	return r
}
