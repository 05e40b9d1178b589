package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/valeriaulyamaeva/payment-reminders-app/internal/database"
	"github.com/valeriaulyamaeva/payment-reminders-app/internal/handlers"
	"github.com/valeriaulyamaeva/payment-reminders-app/models"
)

func submitForm(r *gin.Engine, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/reminders/submit", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSubmitReminderHandlerSavesExactlyOneRow(t *testing.T) {
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

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/reminders/submit", handlers.SubmitReminderHandler(pool))

	title := fmt.Sprintf("Rent %d", time.Now().UnixNano())
	form := url.Values{}
	form.Set("title", title)
	form.Set("amount", "1500.5")
	form.Set("due_date", "2030-05-01")

	w := submitForm(r, form)
	if w.Code != http.StatusCreated {
		t.Fatalf("статус не совпадает: получили %d, хотели %d", w.Code, http.StatusCreated)
	}

	var body struct {
		Message  string          `json:"message"`
		Reminder models.Reminder `json:"reminder"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("ошибка разбора ответа: %v", err)
	}

	wantMessage := fmt.Sprintf("✅ Reminder saved for ₹1500.5 to %s due on 2030-05-01", title)
	if body.Message != wantMessage {
		t.Errorf("сообщение не совпадает: получили %q, хотели %q", body.Message, wantMessage)
	}

	saved, err := database.GetReminderByID(pool, body.Reminder.ID)
	if err != nil {
		t.Fatalf("напоминание не сохранилось: %v", err)
	}
	if saved.Title != title || saved.Amount != 1500.5 {
		t.Errorf("данные напоминания не совпадают: получили %+v", saved)
	}
	wantDue := time.Date(2030, time.May, 1, 9, 0, 0, 0, time.UTC)
	if !saved.DueDate.UTC().Equal(wantDue) {
		t.Errorf("дата не совпадает: получили %v, хотели %v", saved.DueDate, wantDue)
	}

	// Одна отправка формы даёт ровно одну запись
	deleted, err := database.DeleteRemindersByTitle(pool, title)
	if err != nil {
		t.Fatalf("ошибка удаления напоминания: %v", err)
	}
	if deleted != 1 {
		t.Errorf("ожидали ровно одну запись, получили %d", deleted)
	}
}

func TestSubmitReminderHandlerReportsStoreFailure(t *testing.T) {
	if err := godotenv.Load(); err != nil {
		t.Fatalf("ошибка загрузки .env: %v", err)
	}
	pool, err := database.ConnectDB()
	if err != nil {
		t.Fatalf("ошибка подключения к БД: %v", err)
	}
	// Закрытый пул имитирует отказ хранилища
	pool.Close()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/reminders/submit", handlers.SubmitReminderHandler(pool))

	form := url.Values{}
	form.Set("title", "Rent")
	form.Set("amount", "1500")
	form.Set("due_date", "2030-05-01")

	w := submitForm(r, form)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("статус не совпадает: получили %d, хотели %d", w.Code, http.StatusInternalServerError)
	}

	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("ошибка разбора ответа: %v", err)
	}
	if !strings.HasPrefix(body.Message, "❌ Failed to save: ") {
		t.Errorf("сообщение не совпадает: получили %q", body.Message)
	}
}
