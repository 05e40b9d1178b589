package utils

import (
	"fmt"
	"github.com/brianvoe/gofakeit/v6"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valeriaulyamaeva/payment-reminders-app/internal/database"
	"github.com/valeriaulyamaeva/payment-reminders-app/models"
	"log"
	"math/rand"
	"time"
)

var testCategories = []string{"rent", "electricity", "water", "gas", "credit_card", "loan", "insurance", "subscription", "phone", "internet"}

func GenerateTestReminders(pool *pgxpool.Pool, numReminders int) {
	for i := 0; i < numReminders; i++ {
		reminder := &models.Reminder{
			Title:    fmt.Sprintf("%s %s", gofakeit.Company(), gofakeit.RandomString([]string{"bill", "payment", "invoice"})),
			Amount:   gofakeit.Price(10, 1000),
			DueDate:  gofakeit.DateRange(time.Now().AddDate(0, 0, 1), time.Now().AddDate(0, 1, 0)),
			Category: testCategories[rand.Intn(len(testCategories))],
		}

		// Используем CreateReminder для вставки в базу данных
		if err := database.CreateReminder(pool, reminder); err != nil {
			log.Fatalf("ошибка при добавлении напоминания: %v", err)
		}
	}
}
