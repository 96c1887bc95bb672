package smtp

import (
	"crypto/tls"
	"math"
	"time"

	log "github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"

	"github.com/avibiton/waltz/internal/config"
	"github.com/avibiton/waltz/internal/core/domain"
	ports "github.com/avibiton/waltz/internal/core/ports/output"
	"github.com/avibiton/waltz/internal/metrics"
)

// ============================================================================
// SMTP Mailer Implementation
// ============================================================================

type mailer struct {
	dialer         *gomail.Dialer
	senderAddress  string
	senderName     string
	retryCount     int
	retryBackoffMs int
}

// NewMailer creates a mailer delivering through the configured SMTP relay.
func NewMailer(cfg config.MailConfig) ports.Mailer {
	log.WithFields(log.Fields{
		"host": cfg.Host,
		"port": cfg.Port,
		"user": cfg.User,
	}).Info("initializing mail sender")

	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password)
	if cfg.InsecureSkipVerify {
		log.Warn("mail TLS verification disabled")
		dialer.TLSConfig = &tls.Config{InsecureSkipVerify: true}
	}

	senderAddress := cfg.SenderAddress
	if senderAddress == "" {
		senderAddress = "noreply@waltz.local"
	}
	senderName := cfg.SenderName
	if senderName == "" {
		senderName = "Waltz"
	}

	retryCount := cfg.RetryCount
	if retryCount < 0 {
		retryCount = 0
	}
	retryBackoffMs := cfg.RetryBackoffMs
	if retryBackoffMs <= 0 {
		retryBackoffMs = 100
	}

	return &mailer{
		dialer:         dialer,
		senderAddress:  senderAddress,
		senderName:     senderName,
		retryCount:     retryCount,
		retryBackoffMs: retryBackoffMs,
	}
}

// SendEmail delivers one message to the recipients, retrying transient
// failures with exponential backoff before giving up.
func (m *mailer) SendEmail(subject, body string, recipients []string) error {
	if len(recipients) == 0 {
		return domain.ErrEmptyRecipients
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.senderAddress, m.senderName)
	msg.SetHeader("To", recipients...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	var lastErr error
	backoffMs := m.retryBackoffMs

	for attempt := 0; attempt <= m.retryCount; attempt++ {
		err := m.dialer.DialAndSend(msg)
		if err == nil {
			log.WithFields(log.Fields{
				"recipients": len(recipients),
				"attempt":    attempt + 1,
			}).Info("mail sent")
			metrics.MailSendSuccess.WithLabelValues(m.dialer.Host).Inc()
			return nil
		}

		lastErr = err
		if attempt < m.retryCount {
			log.Warnf("mail send attempt %d failed: %v, retrying in %dms", attempt+1, err, backoffMs)
			time.Sleep(time.Duration(backoffMs) * time.Millisecond)
			// Exponential backoff capped at ~32 seconds.
			backoffMs = int(math.Min(float64(backoffMs)*2, 32000))
		} else {
			log.Errorf("mail send failed after %d attempts: %v", m.retryCount+1, err)
		}
	}

	metrics.MailSendFailure.WithLabelValues(m.dialer.Host).Inc()
	return lastErr
}
