package vault

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/bnema/pwsync/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type SessionPage struct {
	Session domain.Session
	Now     time.Time
}

func (p SessionPage) render(s styles) string {
	state := p.Session.State(p.Now)
	lines := []string{s.title.Render("Session")}

	switch state {
	case domain.SessionAnonymous:
		lines = append(lines, s.empty.Render("Not logged in."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	case domain.SessionExpired:
		lines = append(lines, s.warning.Render("Session expired "+relative(p.Session.TokenExpiry, p.Now)+"."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	email := p.Session.Email
	if email == "" {
		email = "unknown"
	}
	lines = append(lines,
		s.detail.Render("state:   ")+s.ok.Render(string(state)),
		s.detail.Render("email:   "+email),
		s.detail.Render("user id: "+orNA(string(p.Session.UserID))),
		s.detail.Render("expires: ")+s.faint.Render(fmt.Sprintf("%s (%s)", p.Session.TokenExpiry.Local().Format(time.DateTime), relative(p.Session.TokenExpiry, p.Now))),
	)

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// CredentialsPage lists owned and shared records. Passwords are masked unless
// ShowSecrets is set.
type CredentialsPage struct {
	Owned       []domain.Credential
	Shared      []domain.Credential
	LastSync    time.Time
	Now         time.Time
	ShowSecrets bool
}

func (p CredentialsPage) render(s styles) string {
	lines := []string{
		s.title.Render("Credentials"),
		s.header.Render(fmt.Sprintf("owned: %d  shared: %d  last sync: %s", len(p.Owned), len(p.Shared), lastSync(p.LastSync, p.Now))),
	}

	if len(p.Owned) > 0 || len(p.Shared) == 0 {
		lines = append(lines, s.section.Render(p.renderCollection("Owned", p.Owned, s)))
	}
	if len(p.Shared) > 0 {
		lines = append(lines, s.section.Render(p.renderCollection("Shared with you", p.Shared, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (p CredentialsPage) renderCollection(title string, records []domain.Credential, s styles) string {
	parts := []string{s.header.Render(title)}
	if len(records) == 0 {
		parts = append(parts, s.empty.Render("No credentials."))
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}

	for _, record := range records {
		parts = append(parts, p.renderCredential(record, s))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (p CredentialsPage) renderCredential(record domain.Credential, s styles) string {
	head := s.domain.Render(orNA(record.Domain)) + " " + s.faint.Render("#"+string(record.ID))

	details := []string{"user " + orNA(record.Field(domain.FieldUsername))}
	password := record.Field(domain.FieldPassword)
	if p.ShowSecrets {
		details = append(details, "password "+orNA(password))
	} else if password != "" {
		details = append(details, "password "+strings.Repeat("•", 8))
	}
	if url := record.Field(domain.FieldWebsiteURL); url != "" {
		details = append(details, url)
	}
	if notes := record.Field(domain.FieldNotes); notes != "" {
		details = append(details, "notes "+truncate(notes, 40))
	}

	return lipgloss.JoinVertical(lipgloss.Left, head, "  "+s.detail.Render(strings.Join(details, " · ")))
}

type BindingsPage struct {
	Active  []domain.Binding
	Pending []domain.Binding
	Now     time.Time
}

func (p BindingsPage) render(s styles) string {
	lines := []string{
		s.title.Render("Account bindings"),
		s.header.Render(fmt.Sprintf("active: %d  pending: %d", len(p.Active), len(p.Pending))),
	}

	active := []string{s.header.Render("Active")}
	if len(p.Active) == 0 {
		active = append(active, s.empty.Render("No active bindings."))
	}
	for _, b := range p.Active {
		active = append(active, bindingLine(b, p.Now, s))
	}
	lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, active...)))

	pending := []string{s.header.Render("Pending")}
	if len(p.Pending) == 0 {
		pending = append(pending, s.empty.Render("No pending requests."))
	}
	for _, b := range p.Pending {
		pending = append(pending, bindingLine(b, p.Now, s))
	}
	lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, pending...)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func bindingLine(b domain.Binding, now time.Time, s styles) string {
	var label string
	switch b.State() {
	case domain.BindingStatePendingInbound:
		label = "from"
	case domain.BindingStatePendingOutbound:
		label = "to"
	default:
		label = "with"
	}

	meta := []string{string(b.State())}
	if b.Permissions != "" {
		meta = append(meta, string(b.Permissions))
	}
	if !b.CreatedAt.IsZero() {
		meta = append(meta, "since "+relative(b.CreatedAt, now))
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.detail.Render(label+" "),
		s.domain.Render(orNA(b.PeerEmail)),
		" ",
		s.faint.Render("#"+string(b.ID)),
		" ",
		s.badge.Render("["+strings.Join(meta, ", ")+"]"),
	)
}

type BatchDeletePage struct {
	Outcome domain.BatchDeleteOutcome
}

func (p BatchDeletePage) render(s styles) string {
	summary := s.ok.Render(p.Outcome.Summary())
	if p.Outcome.FailedCount > 0 {
		summary = s.warning.Render(p.Outcome.Summary())
	}

	lines := []string{summary}
	for _, detail := range p.Outcome.FailedDetails {
		lines = append(lines, s.detail.Render("  "+detail))
	}
	if p.Outcome.Unattributed > 0 {
		lines = append(lines, s.faint.Render(fmt.Sprintf("  %d failures could not be matched to an id", p.Outcome.Unattributed)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

type ImportPage struct {
	Outcome domain.ImportOutcome
}

func (p ImportPage) render(s styles) string {
	o := p.Outcome
	lines := []string{s.ok.Render(fmt.Sprintf("imported %d, skipped %d", o.ImportedCount, o.SkippedCount))}
	for _, detail := range o.SkippedDetails {
		lines = append(lines, s.detail.Render("  skipped: "+detail))
	}
	for _, e := range o.Errors {
		lines = append(lines, s.warning.Render("  error: "+e))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func lastSync(at time.Time, now time.Time) string {
	if at.IsZero() {
		return "never"
	}
	return relative(at, now)
}

func relative(at time.Time, now time.Time) string {
	delta := at.Sub(now)
	if delta >= -time.Minute && delta <= time.Minute {
		return "just now"
	}

	past := delta < 0
	d := time.Duration(math.Abs(float64(delta)))

	var amount string
	switch {
	case d < time.Hour:
		amount = plural(int(d.Minutes()), "minute")
	case d < 48*time.Hour:
		amount = plural(int(d.Hours()), "hour")
	default:
		amount = plural(int(d.Hours()/24), "day")
	}

	if past {
		return amount + " ago"
	}
	return "in " + amount
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "n/a"
	}
	return s
}
