package config

import (
	"strings"
	"time"
)

// NotifyConfig controls outbound notifications for new admission submissions.
// Notifications are disabled when no webhook URL is configured.
type NotifyConfig struct {
	SlackWebhookURL string        `env:"NOTIFY_SLACK_WEBHOOK_URL" envDefault:""`
	SlackChannel    string        `env:"NOTIFY_SLACK_CHANNEL"     envDefault:""`
	SlackUsername   string        `env:"NOTIFY_SLACK_USERNAME"    envDefault:"academy"`
	Timeout         time.Duration `env:"NOTIFY_TIMEOUT"           envDefault:"5s"`
	RetryLimit      int           `env:"NOTIFY_RETRY_LIMIT"       envDefault:"2"`
}

// Sanitize applies guardrails to notification configuration values.
func (n *NotifyConfig) Sanitize() {
	n.SlackWebhookURL = strings.TrimSpace(n.SlackWebhookURL)
	if n.Timeout <= 0 {
		n.Timeout = 5 * time.Second
	}
	if n.RetryLimit < 0 {
		n.RetryLimit = 0
	}
}

// Enabled reports whether admission notifications should be sent.
func (n *NotifyConfig) Enabled() bool {
	return n.SlackWebhookURL != ""
}
