package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/smtp"
	"time"

	"github.com/rudratic/hr-backend-go/internal/config"
)

//go:embed templates/*.html
var templateFS embed.FS

const maxRetries = 3

// Service defines the interface for sending emails
type Service interface {
	SendClockOutReminder(to, name string) error
	SendWeeklyAdminReport(to, name string, totalUsers, pendingLeaves, pendingUsers int64) error
}

type serviceImpl struct {
	cfg       config.SMTPConfig
	templates *template.Template
}

// NewService creates a new email service instance
func NewService(cfg config.SMTPConfig) (Service, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	return &serviceImpl{
		cfg:       cfg,
		templates: tmpl,
	}, nil
}

type clockOutReminderData struct {
	Name string
}

// SendClockOutReminder nudges a user who is still clocked in at end of day.
func (s *serviceImpl) SendClockOutReminder(to, name string) error {
	data := clockOutReminderData{Name: name}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "clock_out_reminder.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, "Reminder: You are still clocked in", body.String())
}

type weeklyReportData struct {
	Name          string
	TotalUsers    int64
	PendingLeaves int64
	PendingUsers  int64
}

// SendWeeklyAdminReport sends the weekly headline numbers to an admin.
func (s *serviceImpl) SendWeeklyAdminReport(to, name string, totalUsers, pendingLeaves, pendingUsers int64) error {
	data := weeklyReportData{
		Name:          name,
		TotalUsers:    totalUsers,
		PendingLeaves: pendingLeaves,
		PendingUsers:  pendingUsers,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "weekly_report.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, "Weekly HR Summary", body.String())
}

func (s *serviceImpl) sendHTML(to, subject, htmlBody string) error {
	// Skip sending if SMTP is not configured
	if s.cfg.Host == "" {
		slog.Warn("SMTP not configured, skipping email send", "to", to, "subject", subject)
		return nil
	}

	from := s.cfg.From

	headers := fmt.Sprintf("From: %s <%s>\r\n", s.cfg.FromName, from)
	headers += fmt.Sprintf("To: %s\r\n", to)
	headers += fmt.Sprintf("Subject: %s\r\n", subject)
	headers += "MIME-Version: 1.0\r\n"
	headers += "Content-Type: text/html; charset=\"UTF-8\"\r\n"
	headers += "\r\n"

	message := []byte(headers + htmlBody)

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := smtp.SendMail(addr, auth, from, []string{to}, message)
		if err == nil {
			slog.Info("Email sent successfully", "to", to, "subject", subject, "attempt", attempt)
			return nil
		}

		lastErr = err
		slog.Error("Failed to send email",
			"to", to,
			"subject", subject,
			"attempt", attempt,
			"max_retries", maxRetries,
			"error", err,
		)

		// Wait before retrying (exponential backoff: 1s, 2s, 4s)
		if attempt < maxRetries {
			time.Sleep(time.Duration(1<<(attempt-1)) * time.Second)
		}
	}

	return fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, lastErr)
}
