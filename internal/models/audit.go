package models

import "time"

// Audit actions recorded by the token lifecycle.
const (
	AuditActionTokenIssued    = "TOKEN_ISSUED"
	AuditActionTokenRefreshed = "TOKEN_REFRESHED"
	AuditActionTokenRevoked   = "TOKEN_REVOKED"
	AuditActionResourceAccess = "RESOURCE_ACCESS"
)

// AuditLog captures a security-relevant event in the audit_logs table.
type AuditLog struct {
	ID         string    `db:"id" json:"id"`
	UserID     *string   `db:"user_id" json:"user_id,omitempty"`
	ClientID   string    `db:"client_id" json:"client_id"`
	Action     string    `db:"action" json:"action"`
	Resource   string    `db:"resource" json:"resource"`
	ResourceID *string   `db:"resource_id" json:"resource_id,omitempty"`
	NewValues  []byte    `db:"new_values" json:"new_values,omitempty"`
	IPAddress  string    `db:"ip_address" json:"ip_address"`
	UserAgent  string    `db:"user_agent" json:"user_agent"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}
