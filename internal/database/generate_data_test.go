package database_test

import (
	"testing"

	"github.com/joho/godotenv"
	"github.com/valeriaulyamaeva/payment-reminders-app/internal/database"
	"github.com/valeriaulyamaeva/payment-reminders-app/utils"
)

func TestGenerateTestReminders(t *testing.T) {
	if err := godotenv.Load(); err != nil {
		t.Fatalf("ошибка загрузки .env: %v", err)
	}
	pool, err := database.ConnectDB()
	if err != nil {
		t.Fatalf("ошибка подключения к БД: %v", err)
	}
	defer pool.Close()

	if err := database.EnsureSchema(pool); err != nil {
		t.Fatalf("ошибка инициализации схемы: %v", err)
	}

	utils.GenerateTestReminders(pool, 3)

	reminders, err := database.ListReminders(pool, false)
	if err != nil {
		t.Fatalf("ошибка получения напоминаний: %v", err)
	}
	if len(reminders) < 3 {
		t.Errorf("ожидали минимум 3 невыполненных напоминания, получили %d", len(reminders))
	}
}
