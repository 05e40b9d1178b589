package utils

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	ActionNone     = "none"
	ActionCreate   = "create"
	ActionList     = "list"
	ActionDelete   = "delete"
	ActionMarkDone = "mark_done"
)

// ReminderInfo содержит данные напоминания, извлечённые из произвольного текста.
type ReminderInfo struct {
	Title                string
	Amount               float64
	DueDate              time.Time
	Category             string
	Recurrence           string
	CustomRecurrenceDays int
}

// ReminderRequest описывает распознанную команду пользователя.
type ReminderRequest struct {
	Action string
	Title  string
	Info   ReminderInfo
}

var (
	amountPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\$(\d+(?:\.\d{2})?)`),
		regexp.MustCompile(`(?i)amount\s+(?:of\s+)?\$?(\d+(?:\.\d{2})?)`),
		regexp.MustCompile(`(?i)(\d+(?:\.\d{2})?)\s*dollars?`),
		regexp.MustCompile(`(?i)pay\s+\$?(\d+(?:\.\d{2})?)`),
	}

	datePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:on|by|due)\s+((?:january|february|march|april|may|june|july|august|september|october|november|december)\s+\d{1,2}(?:,?\s+\d{4})?)`),
		regexp.MustCompile(`(?i)(?:on|by|due)\s+(\d{1,2}[-/]\d{1,2}(?:[-/]\d{2,4})?)`),
		regexp.MustCompile(`(?i)(?:on|by|due)\s+(\d{4}-\d{1,2}-\d{1,2})`),
		regexp.MustCompile(`(?i)(tomorrow|today|next\s+week|next\s+month)`),
		regexp.MustCompile(`(?i)(?:in\s+)?(\d+)\s+days?`),
	}

	categoryPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:for|category)\s+(rent|electricity|water|gas|credit\s+card|loan|mortgage|insurance|subscription|phone|internet)`),
		regexp.MustCompile(`(?i)(rent|electricity|water|gas|credit\s+card|loan|mortgage|insurance|subscription|phone|internet)\s+(?:payment|bill)`),
	}

	recurrenceWordPattern  = regexp.MustCompile(`(?i)(weekly|monthly|yearly|daily)\s+(?:reminder|payment)`)
	recurrenceEveryPattern = regexp.MustCompile(`(?i)(?:every|repeat)\s+(\d+)\s+(days?|weeks?|months?|years?)`)

	commandWordsRe = regexp.MustCompile(`(?i)\b(?:create|add|set|new|reminder|for|to|pay|payment|bill)\b`)
	amountRefRe    = regexp.MustCompile(`\$?\d+(?:\.\d{2})?\s*(?:dollars?)?`)
	dateTailRe     = regexp.MustCompile(`(?i)\b(?:on|by|due|tomorrow|today|next\s+week|next\s+month)\b.*`)
	slashDateRe    = regexp.MustCompile(`\d{1,2}[-/]\d{1,2}(?:[-/]\d{2,4})?`)
	monthDateRe    = regexp.MustCompile(`(?i)\b(?:january|february|march|april|may|june|july|august|september|october|november|december)\s+\d{1,2}(?:,?\s+\d{4})?`)
	inDaysRe       = regexp.MustCompile(`(?i)in\s+\d+\s+days?`)
	spaceRe        = regexp.MustCompile(`\s+`)

	deletePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:delete|remove|cancel)\s+reminder(?:\s*:\s*|\s+)(.+)`),
		regexp.MustCompile(`(?i)(?:delete|remove|cancel)\s+(.+?)(?:\s+reminder)?$`),
		regexp.MustCompile(`(?i)remove\s+(.+)`),
		regexp.MustCompile(`(?i)cancel\s+(.+)`),
	}

	createPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:create|add|set|new)\s+reminder\s+(.+)`),
		regexp.MustCompile(`(?i)remind\s+me\s+(?:to\s+)?(.+)`),
		regexp.MustCompile(`(?i)set\s+(?:a\s+)?reminder\s+(.+)`),
		regexp.MustCompile(`(?i)add\s+reminder\s+(.+)`),
	}

	markDonePattern = regexp.MustCompile(`(?i)(?:mark|complete)\s+(.+?)(?:\s+as\s+done)?$`)
	fillerWordsRe   = regexp.MustCompile(`(?i)\b(?:reminder|the|my)\b`)

	titleCaser = cases.Title(language.English)
)

// ExtractReminderInfo извлекает сумму, дату, категорию и периодичность
// из свободного текста, всё остальное превращается в заголовок.
func ExtractReminderInfo(text string) ReminderInfo {
	info := ReminderInfo{}

	for _, p := range amountPatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			if v, err := strconv.ParseFloat(m[1], 64); err == nil {
				info.Amount = v
				break
			}
		}
	}

	for _, p := range datePatterns {
		m := p.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if days, err := strconv.Atoi(m[1]); err == nil {
			// Вариант "in N days"
			info.DueDate = time.Now().AddDate(0, 0, days)
		} else {
			info.DueDate = ParseDueDate(m[1])
		}
		break
	}
	if info.DueDate.IsZero() {
		info.DueDate = ParseDueDate("tomorrow")
	}

	for _, p := range categoryPatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			info.Category = strings.ReplaceAll(strings.ToLower(spaceRe.ReplaceAllString(m[1], " ")), " ", "_")
			break
		}
	}

	if m := recurrenceWordPattern.FindStringSubmatch(text); m != nil {
		info.Recurrence = strings.ToLower(m[1])
	} else if m := recurrenceEveryPattern.FindStringSubmatch(text); m != nil {
		n, _ := strconv.Atoi(m[1])
		unit := strings.ToLower(m[2])
		switch {
		case strings.HasPrefix(unit, "week"):
			n *= 7
		case strings.HasPrefix(unit, "month"):
			n *= 30
		case strings.HasPrefix(unit, "year"):
			n *= 365
		}
		info.Recurrence = "custom"
		info.CustomRecurrenceDays = n
	}

	info.Title = extractTitle(text, info.Category)
	return info
}

func extractTitle(text, category string) string {
	title := text
	title = commandWordsRe.ReplaceAllString(title, "")
	title = amountRefRe.ReplaceAllString(title, "")
	title = dateTailRe.ReplaceAllString(title, "")
	title = slashDateRe.ReplaceAllString(title, "")
	title = monthDateRe.ReplaceAllString(title, "")
	title = inDaysRe.ReplaceAllString(title, "")

	if category != "" {
		catRe := regexp.MustCompile(`(?i)` + strings.ReplaceAll(category, "_", `\s+`))
		title = catRe.ReplaceAllString(title, "")
	}

	title = spaceRe.ReplaceAllString(title, " ")
	title = strings.Trim(strings.TrimSpace(title), ".,!?")

	if title == "" {
		if category != "" {
			return titleCaser.String(strings.ReplaceAll(category, "_", " ")) + " Payment"
		}
		return "Payment Reminder"
	}
	return title
}

// ParseReminderRequest распознаёт команду управления напоминаниями
// в свободном тексте пользователя.
func ParseReminderRequest(text string) ReminderRequest {
	for _, p := range deletePatterns {
		m := p.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		title := strings.TrimSpace(fillerWordsRe.ReplaceAllString(m[1], ""))
		title = strings.TrimSpace(spaceRe.ReplaceAllString(title, " "))
		if title != "" {
			return ReminderRequest{Action: ActionDelete, Title: title}
		}
		break
	}

	lower := strings.ToLower(text)
	for _, cmd := range []string{"list reminders", "show reminders", "my reminders", "view reminders"} {
		if strings.Contains(lower, cmd) {
			return ReminderRequest{Action: ActionList}
		}
	}

	for _, cmd := range []string{"mark as done", "complete reminder", "payment done"} {
		if !strings.Contains(lower, cmd) {
			continue
		}
		if m := markDonePattern.FindStringSubmatch(text); m != nil {
			title := strings.TrimSpace(fillerWordsRe.ReplaceAllString(m[1], ""))
			title = strings.TrimSpace(spaceRe.ReplaceAllString(title, " "))
			if title != "" {
				return ReminderRequest{Action: ActionMarkDone, Title: title}
			}
		}
		break
	}

	for _, p := range createPatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			return ReminderRequest{Action: ActionCreate, Info: ExtractReminderInfo(m[1])}
		}
	}

	return ReminderRequest{Action: ActionNone}
}
