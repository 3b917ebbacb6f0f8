package notification

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"go-bookingdesk/internal/appointment"

	"go.uber.org/zap"
	gomail "gopkg.in/gomail.v2"
)

type Config struct {
	Host       string
	Port       int
	Username   string
	Password   string
	From       string
	AdminEmail string
}

// Dispatcher sends appointment emails over SMTP. It is constructed once and
// injected; when credentials are absent it stays disabled and every send is a
// logged no-op, so local runs work without a mail server.
type Dispatcher struct {
	dialer  *gomail.Dialer
	cfg     Config
	enabled bool
	logger  *zap.Logger
}

func NewDispatcher(cfg Config, logger ...*zap.Logger) *Dispatcher {
	l := zap.L().Named("notification.dispatcher")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.dispatcher")
	}

	enabled := cfg.Host != "" && cfg.Username != ""
	if !enabled {
		l.Warn("email dispatch disabled, SMTP credentials not configured")
	}

	return &Dispatcher{
		dialer:  gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		cfg:     cfg,
		enabled: enabled,
		logger:  l,
	}
}

func (d *Dispatcher) IsEnabled() bool {
	return d.enabled
}

func (d *Dispatcher) SendConfirmation(ctx context.Context, appt appointment.AppointmentResponse) error {
	var body bytes.Buffer
	if err := confirmationTmpl.Execute(&body, buildEmailData(appt)); err != nil {
		return fmt.Errorf("render confirmation email: %w", err)
	}
	return d.send(appt.Email, "Appointment Request Received - Pending Approval", body.String())
}

func (d *Dispatcher) SendAdminAlert(ctx context.Context, appt appointment.AppointmentResponse) error {
	var body bytes.Buffer
	if err := adminAlertTmpl.Execute(&body, buildEmailData(appt)); err != nil {
		return fmt.Errorf("render admin alert email: %w", err)
	}
	return d.send(d.cfg.AdminEmail, "New Appointment Request - Action Required", body.String())
}

func (d *Dispatcher) send(to, subject, body string) error {
	if !d.enabled {
		d.logger.Debug("email skipped, dispatcher disabled", zap.String("to", to))
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", d.cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if err := d.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send email to %s: %w", to, err)
	}

	d.logger.Info("email sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}

func buildEmailData(appt appointment.AppointmentResponse) emailData {
	formatted := appt.AppointmentDate
	if t, err := time.Parse("2006-01-02", appt.AppointmentDate); err == nil {
		formatted = t.Format("Monday, January 2, 2006")
	}

	return emailData{
		Name:           appt.Name,
		Email:          appt.Email,
		Phone:          appt.Phone1,
		FormattedDate:  formatted,
		TimeSlot:       appt.TimeSlot,
		NumberOfPeople: appt.NumberOfPeople,
		Description:    appt.Description,
		Reference:      shortReference(appt.ID),
		Year:           time.Now().Year(),
	}
}

// shortReference is the human-friendly booking reference: the tail of the id.
func shortReference(id string) string {
	clean := strings.ReplaceAll(id, "-", "")
	if len(clean) > 8 {
		clean = clean[len(clean)-8:]
	}
	return strings.ToUpper(clean)
}
