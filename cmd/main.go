package main

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/valeriaulyamaeva/payment-reminders-app/internal/database"
	"github.com/valeriaulyamaeva/payment-reminders-app/internal/routes"
	"log"
	"os"
	"time"
)

func ScheduleDueNotifications(pool *pgxpool.Pool) {
	c := cron.New()
	_, err := c.AddFunc("@daily", func() {
		if err := database.CreateDueNotifications(pool, time.Now()); err != nil {
			log.Printf("Ошибка создания уведомлений о платежах: %v", err)
		}
	})
	if err != nil {
		log.Fatalf("Ошибка настройки CRON-задачи для уведомлений: %v", err)
	}
	c.Start()
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Fatalf("Ошибка загрузки .env файла: %v", err)
	}

	pool, err := database.ConnectDB()
	if err != nil {
		log.Fatalf("Ошибка подключения к БД: %v", err)
	}
	defer pool.Close()

	if err := database.EnsureSchema(pool); err != nil {
		log.Fatalf("Ошибка инициализации схемы БД: %v", err)
	}

	ScheduleDueNotifications(pool)

	r := routes.SetupRouter(pool)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
