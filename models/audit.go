// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AuditEventType names a security-relevant event.
type AuditEventType string

const (
	AuditTagRegistered       AuditEventType = "secret_tag_registered"
	AuditTagRegisterFailed   AuditEventType = "secret_tag_register_failed"
	AuditTagUpdated          AuditEventType = "secret_tag_updated"
	AuditTagDeleted          AuditEventType = "secret_tag_deleted"
	AuditLoginSucceeded      AuditEventType = "secret_tag_login_succeeded"
	AuditLoginFailed         AuditEventType = "secret_tag_login_failed"
	AuditLoginRateLimited    AuditEventType = "secret_tag_login_rate_limited"
	AuditVaultKeyUnwrapped   AuditEventType = "vault_key_unwrapped"
	AuditVaultKeyUnwrapError AuditEventType = "vault_key_unwrap_failed"
)

// AuditCategory groups events for downstream routing.
type AuditCategory string

const (
	AuditCategoryAuthentication AuditCategory = "authentication"
	AuditCategoryRegistry       AuditCategory = "registry"
	AuditCategoryKeyManagement  AuditCategory = "key_management"
)

// AuditSeverity is the importance of an event.
type AuditSeverity string

const (
	AuditSeverityInfo     AuditSeverity = "info"
	AuditSeverityWarning  AuditSeverity = "warning"
	AuditSeverityCritical AuditSeverity = "critical"
)

// AuditEvent is the contract between the gateway and the audit sink.
// Identifiers are pseudonymised with a keyed hash before they get here.
type AuditEvent struct {
	EventType  AuditEventType
	Category   AuditCategory
	Severity   AuditSeverity
	UserIDHash string
	IPHash     string
	Success    bool
	Data       map[string]string
}
