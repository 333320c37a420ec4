package audit

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// RuleFlags selects the filter list a rule is attached to.
type RuleFlags uint32

const (
	FilterUser    = RuleFlags(unix.AUDIT_FILTER_USER)
	FilterTask    = RuleFlags(unix.AUDIT_FILTER_TASK)
	FilterEntry   = RuleFlags(unix.AUDIT_FILTER_ENTRY)
	FilterWatch   = RuleFlags(unix.AUDIT_FILTER_WATCH)
	FilterExit    = RuleFlags(unix.AUDIT_FILTER_EXIT)
	FilterExclude = RuleFlags(unix.AUDIT_FILTER_EXCLUDE)
)

func (f RuleFlags) String() string {
	switch f {
	case FilterUser:
		return "user"
	case FilterTask:
		return "task"
	case FilterEntry:
		return "entry"
	case FilterWatch:
		return "watch"
	case FilterExit:
		return "exit"
	case FilterExclude:
		return "exclude"
	}
	return fmt.Sprintf("unknown(%d)", uint32(f))
}

// RuleAction is what the kernel does when a rule matches.
type RuleAction uint32

const (
	ActionNever    = RuleAction(unix.AUDIT_NEVER)
	ActionPossible = RuleAction(unix.AUDIT_POSSIBLE)
	ActionAlways   = RuleAction(unix.AUDIT_ALWAYS)
)

func (a RuleAction) String() string {
	switch a {
	case ActionNever:
		return "never"
	case ActionPossible:
		return "possible"
	case ActionAlways:
		return "always"
	}
	return fmt.Sprintf("unknown(%d)", uint32(a))
}

// FieldFlags holds the comparison operator bits of one rule field.
type FieldFlags uint32

const (
	OperatorBitMask            = FieldFlags(unix.AUDIT_BIT_MASK)
	OperatorBitTest            = FieldFlags(unix.AUDIT_BIT_TEST)
	OperatorLessThan           = FieldFlags(unix.AUDIT_LESS_THAN)
	OperatorGreaterThan        = FieldFlags(unix.AUDIT_GREATER_THAN)
	OperatorNotEqual           = FieldFlags(unix.AUDIT_NOT_EQUAL)
	OperatorEqual              = FieldFlags(unix.AUDIT_EQUAL)
	OperatorLessThanOrEqual    = FieldFlags(unix.AUDIT_LESS_THAN_OR_EQUAL)
	OperatorGreaterThanOrEqual = FieldFlags(unix.AUDIT_GREATER_THAN_OR_EQUAL)
)

func (f FieldFlags) String() string {
	switch f {
	case OperatorBitMask:
		return "&"
	case OperatorBitTest:
		return "&="
	case OperatorLessThan:
		return "<"
	case OperatorGreaterThan:
		return ">"
	case OperatorNotEqual:
		return "!="
	case OperatorEqual:
		return "="
	case OperatorLessThanOrEqual:
		return "<="
	case OperatorGreaterThanOrEqual:
		return ">="
	}
	return fmt.Sprintf("unknown(%#x)", uint32(f))
}
