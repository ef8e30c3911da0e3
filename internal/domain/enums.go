package domain

import "strings"

// AuditAction is the CRUD category of an audited operation.
type AuditAction string

const (
	AuditActionCreate  AuditAction = "CREATE"
	AuditActionRead    AuditAction = "READ"
	AuditActionUpdate  AuditAction = "UPDATE"
	AuditActionDelete  AuditAction = "DELETE"
	AuditActionUnknown AuditAction = "UNKNOWN"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionRead, AuditActionUpdate, AuditActionDelete, AuditActionUnknown:
		return true
	}
	return false
}

// ParseAuditAction accepts the symbolic name in any case and the single-letter
// forms C, R, U and D.
func ParseAuditAction(s string) (AuditAction, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "CREATE", "C":
		return AuditActionCreate, true
	case "READ", "R":
		return AuditActionRead, true
	case "UPDATE", "U":
		return AuditActionUpdate, true
	case "DELETE", "D":
		return AuditActionDelete, true
	case "UNKNOWN":
		return AuditActionUnknown, true
	}
	return "", false
}

// AuditTarget is the business entity category an audited operation affects.
type AuditTarget string

const (
	AuditTargetUserHabit    AuditTarget = "USERHABIT"
	AuditTargetGeneration   AuditTarget = "GENERATION"
	AuditTargetInfluence    AuditTarget = "INFLUENCE"
	AuditTargetNotification AuditTarget = "NOTIFICATION"
	AuditTargetUnknown      AuditTarget = "UNKNOWN"
)

func (t AuditTarget) String() string { return string(t) }

func (t AuditTarget) IsValid() bool {
	switch t {
	case AuditTargetUserHabit, AuditTargetGeneration, AuditTargetInfluence,
		AuditTargetNotification, AuditTargetUnknown:
		return true
	}
	return false
}

// ParseAuditTarget accepts the symbolic name in any case. USER_HABIT is
// accepted as an alias of USERHABIT.
func ParseAuditTarget(s string) (AuditTarget, bool) {
	t := AuditTarget(strings.ToUpper(strings.TrimSpace(s)))
	if t == "USER_HABIT" {
		return AuditTargetUserHabit, true
	}
	if !t.IsValid() {
		return "", false
	}
	return t, true
}
