// Package alert turns chain events into human-readable alerts.
package alert

import "strings"

// Severity grades how urgent an Alert is.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// Marker returns the emoji prefix shown in front of the title.
func (s Severity) Marker() string {
	switch s {
	case SeverityCritical:
		return "🚨"
	case SeverityWarning:
		return "⚠️"
	default:
		return "📌"
	}
}

// Alert is a formatted notification ready for delivery.
type Alert struct {
	Title    string
	Body     string
	Severity Severity
	Link     string // optional explorer URL

	// Key identifies the underlying event across processes. It is empty for
	// alerts that must never be de-duplicated.
	Key string
}

// Message renders the alert as a single markdown-flavoured string:
//
//	<marker> **<title>**
//
//	<body>
//
//	<link>
//
// The link paragraph is omitted when the alert has no link.
func (a Alert) Message() string {
	var b strings.Builder
	b.WriteString(a.Severity.Marker())
	b.WriteString(" **")
	b.WriteString(a.Title)
	b.WriteString("**\n\n")
	b.WriteString(a.Body)
	if a.Link != "" {
		b.WriteString("\n\n")
		b.WriteString(a.Link)
	}
	return b.String()
}

// Startup returns the banner sent once when the sentry starts. Each entry of
// chains describes one watch, e.g. "Solana: slot height".
func Startup(chains []string) Alert {
	return Alert{
		Title:    "On-Chain Sentry started",
		Body:     "Chains: " + strings.Join(chains, " | "),
		Severity: SeverityInfo,
	}
}

// Test returns the alert sent by the test-alert command.
func Test(note string) Alert {
	body := "This is a test alert from On-Chain Sentry."
	if note != "" {
		body += "\n" + note
	}

	return Alert{
		Title:    "Test alert",
		Body:     body,
		Severity: SeverityInfo,
	}
}
