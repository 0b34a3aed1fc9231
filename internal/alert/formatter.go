package alert

import (
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/gabapcia/onchainsentry/internal/chainwatch"
	"github.com/gabapcia/onchainsentry/internal/explorer"

	"github.com/shopspring/decimal"
)

// Family selects the wording used for a chain's alerts.
type Family int

const (
	FamilySolana Family = iota
	FamilyEVM
)

const (
	solanaSignaturePrefix = 16
	evmHashPrefix         = 18
	valuePrecision        = 4
)

// ChainProfile describes how events of one chain are presented.
type ChainProfile struct {
	Name     string // display name, e.g. "Solana" or "Ethereum"
	Family   Family
	Symbol   string // native asset symbol, EVM only
	Decimals int32  // native asset decimals, EVM only
	Links    explorer.Links
}

// Formatter converts chain events to alerts. It is pure and safe for
// concurrent use.
type Formatter struct {
	profile ChainProfile
}

// NewFormatter returns a Formatter for the chain described by profile.
func NewFormatter(profile ChainProfile) *Formatter {
	if profile.Family == FamilyEVM {
		if profile.Symbol == "" {
			profile.Symbol = "ETH"
		}
		if profile.Decimals == 0 {
			profile.Decimals = 18
		}
	}

	return &Formatter{profile: profile}
}

// Format builds the alert for event.
func (f *Formatter) Format(event chainwatch.ActivityEvent) Alert {
	switch event.Kind {
	case chainwatch.KindHeightJump:
		return f.heightJump(event)
	default:
		if f.profile.Family == FamilyEVM {
			return f.evmActivity(event)
		}
		return f.solanaActivity(event)
	}
}

func (f *Formatter) solanaActivity(event chainwatch.ActivityEvent) Alert {
	var body strings.Builder
	fmt.Fprintf(&body, "Signature: `%s...`\n", shorten(event.Identifier, solanaSignaturePrefix))
	fmt.Fprintf(&body, "Slot: %d\n", event.Position)
	fmt.Fprintf(&body, "Time: %s", formatBlockTime(event.BlockTime))

	severity := SeverityInfo
	if event.Failed {
		body.WriteString("\nStatus: failed")
		severity = SeverityWarning
	}

	return Alert{
		Title:    "Activity on watched address",
		Body:     body.String(),
		Severity: severity,
		Link:     f.txURL(event.Identifier),
		Key:      activityKey(f.profile.Name, event.Identifier),
	}
}

func (f *Formatter) evmActivity(event chainwatch.ActivityEvent) Alert {
	direction := string(event.Direction)
	if direction == "" {
		direction = "unknown"
	}

	var body strings.Builder
	fmt.Fprintf(&body, "Tx: `%s...`\n", shorten(event.Identifier, evmHashPrefix))
	fmt.Fprintf(&body, "Block: %d\n", event.Position)
	fmt.Fprintf(&body, "Direction: %s\n", direction)
	fmt.Fprintf(&body, "Value: %s %s", formatValue(event.Value, f.profile.Decimals), f.profile.Symbol)

	severity := SeverityInfo
	if event.Failed {
		body.WriteString("\nStatus: failed")
		severity = SeverityWarning
	}

	return Alert{
		Title:    f.profile.Name + ": activity on watched address",
		Body:     body.String(),
		Severity: severity,
		Link:     f.txURL(event.Identifier),
		Key:      activityKey(f.profile.Name, event.Identifier),
	}
}

func (f *Formatter) heightJump(event chainwatch.ActivityEvent) Alert {
	noun, title := "Slot", "Slot jump"
	if f.profile.Family == FamilyEVM {
		noun, title = "Block", f.profile.Name+": block jump"
	}

	return Alert{
		Title: title,
		Body: fmt.Sprintf("%s advanced by %d (%d → %d). Possible chain catch-up or reorg.",
			noun, event.Delta, event.PreviousPosition, event.Position),
		Severity: SeverityInfo,
		Link:     f.blockURL(event.Position),
		Key:      fmt.Sprintf("%s:jump:%d", strings.ToLower(f.profile.Name), event.Position),
	}
}

func (f *Formatter) txURL(id string) string {
	if f.profile.Links == nil || id == "" {
		return ""
	}
	return f.profile.Links.TxURL(id)
}

func (f *Formatter) blockURL(height uint64) string {
	if f.profile.Links == nil {
		return ""
	}
	return f.profile.Links.BlockURL(height)
}

func activityKey(chain, id string) string {
	return strings.ToLower(chain) + ":tx:" + id
}

func shorten(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// formatBlockTime renders t as an ISO-8601 UTC timestamp with millisecond
// precision, or "unknown" when t is zero.
func formatBlockTime(t time.Time) string {
	if t.IsZero() {
		return "unknown"
	}
	return t.UTC().Format("2006-01-02T15:04:05.000Z")
}

// formatValue converts an amount in base units to display units with four
// decimals. A missing or zero amount renders as "0".
func formatValue(v *big.Int, decimals int32) string {
	if v == nil || v.Sign() == 0 {
		return "0"
	}
	return decimal.NewFromBigInt(v, -decimals).StringFixed(valuePrecision)
}
