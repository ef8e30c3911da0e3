// Package audit captures business operations as audit records.
//
// An operation is classified by name and component into an (action, target)
// pair, then persisted for the actor on the request context. Capture never
// changes the outcome of the wrapped operation.
package audit

import (
	"strings"

	"github.com/heartmarshall/habitlog-backend/internal/domain"
)

// Operation describes an invocation of an audited business operation.
// Component is the owning service name (e.g. "UserHabitService"), Name is
// the operation name (e.g. "createUserHabits").
type Operation struct {
	Component string
	Name      string
	Args      []any
}

// Classification is the result of Classify.
type Classification struct {
	Action        domain.AuditAction
	Target        domain.AuditTarget
	CorrelationID string
	HabitImpact   *int
}

// Signature is the diagnostic label stored with a record. The correlation
// id, when present, is appended so history queries can join on it.
func (op Operation) Signature(c Classification) string {
	sig := op.Component + "." + op.Name
	if c.CorrelationID != "" {
		sig += "(" + c.CorrelationID + ")"
	}
	return sig
}

type actionRule struct {
	match  func(name string) bool
	action domain.AuditAction
}

type targetRule struct {
	fragment string
	target   domain.AuditTarget
}

// Rules are evaluated in order; the first match wins.
var actionRules = []actionRule{
	{func(n string) bool {
		return strings.HasPrefix(n, "create") || strings.Contains(n, "send") || strings.HasPrefix(n, "save")
	}, domain.AuditActionCreate},
	{func(n string) bool { return strings.HasPrefix(n, "get") || strings.HasPrefix(n, "find") }, domain.AuditActionRead},
	{func(n string) bool { return strings.HasPrefix(n, "update") }, domain.AuditActionUpdate},
	{func(n string) bool { return strings.HasPrefix(n, "delete") || strings.HasPrefix(n, "remove") }, domain.AuditActionDelete},
}

var targetRules = []targetRule{
	{"habit", domain.AuditTargetUserHabit},
	{"generat", domain.AuditTargetGeneration},
	{"influence", domain.AuditTargetInfluence},
	{"notif", domain.AuditTargetNotification},
}

// impactUpdateOperation overrides component-based targeting.
const impactUpdateOperation = "updatehabitimpact"

// Classify maps an operation to its audit category. It is total and pure:
// anything unmatched is UNKNOWN.
func Classify(op Operation) Classification {
	name := strings.ToLower(op.Name)

	c := Classification{
		Action: domain.AuditActionUnknown,
		Target: domain.AuditTargetUnknown,
	}

	for _, r := range actionRules {
		if r.match(name) {
			c.Action = r.action
			break
		}
	}

	if name == impactUpdateOperation {
		c.Target = domain.AuditTargetInfluence
		if len(op.Args) > 0 {
			if id, ok := op.Args[0].(string); ok {
				c.CorrelationID = id
			}
		}
		if len(op.Args) > 1 {
			if v, ok := integerArg(op.Args[1]); ok {
				c.HabitImpact = &v
			}
		}
		return c
	}

	component := strings.ToLower(op.Component)
	for _, r := range targetRules {
		if strings.Contains(component, r.fragment) {
			c.Target = r.target
			break
		}
	}

	return c
}

func integerArg(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	}
	return 0, false
}
