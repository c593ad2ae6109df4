package entities

import "time"

// AuditLogLevel classifies an audit entry.
type AuditLogLevel string

const (
	AuditLevelInfo     AuditLogLevel = "INFO"
	AuditLevelError    AuditLogLevel = "ERROR"
	AuditLevelAudit    AuditLogLevel = "AUDIT"
	AuditLevelSecurity AuditLogLevel = "SECURITY"
)

// AuditOutcome records whether the audited action succeeded.
type AuditOutcome string

const (
	AuditOutcomeSuccess AuditOutcome = "SUCCESS"
	AuditOutcomeError   AuditOutcome = "ERROR"
)

const (
	AuditCategoryDataChange   = "DATA_CHANGE"
	AuditCategoryAuth         = "AUTH"
	AuditCategoryNotification = "NOTIFICATION"
	AuditCategoryConfig       = "CONFIG"
)

// AuditLogEntry is one append-only record of a state-changing or security
// relevant action. The engine never edits or removes entries; the Timestamp
// is assigned when the entry is appended, not by the caller.
type AuditLogEntry struct {
	ID        string        `json:"id"`
	Timestamp time.Time     `json:"timestamp"`
	Level     AuditLogLevel `json:"level"`
	Category  string        `json:"category"`
	Actor     string        `json:"actor"`
	Action    string        `json:"action"`
	Details   string        `json:"details"`
	Outcome   AuditOutcome  `json:"outcome"`
}

// AuditLogFilter narrows an audit query. Zero values mean "any".
type AuditLogFilter struct {
	Level    AuditLogLevel
	Category string
	Actor    string
	From     time.Time
	To       time.Time
}

// Matches reports whether e passes every non-zero filter criterion.
func (f AuditLogFilter) Matches(e AuditLogEntry) bool {
	if f.Level != "" && e.Level != f.Level {
		return false
	}
	if f.Category != "" && e.Category != f.Category {
		return false
	}
	if f.Actor != "" && e.Actor != f.Actor {
		return false
	}
	if !f.From.IsZero() && e.Timestamp.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && e.Timestamp.After(f.To) {
		return false
	}
	return true
}
