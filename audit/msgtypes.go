package audit

import (
	"fmt"

	"golang.org/x/sys/unix"
)

var controlTypeNames = map[uint16]string{
	unix.AUDIT_GET:         "AUDIT_GET",
	unix.AUDIT_SET:         "AUDIT_SET",
	unix.AUDIT_LIST:        "AUDIT_LIST",
	unix.AUDIT_ADD:         "AUDIT_ADD",
	unix.AUDIT_DEL:         "AUDIT_DEL",
	unix.AUDIT_USER:        "AUDIT_USER",
	unix.AUDIT_LOGIN:       "AUDIT_LOGIN",
	unix.AUDIT_WATCH_INS:   "AUDIT_WATCH_INS",
	unix.AUDIT_WATCH_REM:   "AUDIT_WATCH_REM",
	unix.AUDIT_WATCH_LIST:  "AUDIT_WATCH_LIST",
	unix.AUDIT_SIGNAL_INFO: "AUDIT_SIGNAL_INFO",
	unix.AUDIT_ADD_RULE:    "AUDIT_ADD_RULE",
	unix.AUDIT_DEL_RULE:    "AUDIT_DEL_RULE",
	unix.AUDIT_LIST_RULES:  "AUDIT_LIST_RULES",
	unix.AUDIT_TRIM:        "AUDIT_TRIM",
	unix.AUDIT_MAKE_EQUIV:  "AUDIT_MAKE_EQUIV",
	unix.AUDIT_TTY_GET:     "AUDIT_TTY_GET",
	unix.AUDIT_TTY_SET:     "AUDIT_TTY_SET",
	unix.AUDIT_SET_FEATURE: "AUDIT_SET_FEATURE",
	unix.AUDIT_GET_FEATURE: "AUDIT_GET_FEATURE",
}

// TypeString returns a readable name for an audit netlink message type,
// for logs and error messages.
func TypeString(t uint16) string {
	if name, ok := controlTypeNames[t]; ok {
		return name
	}
	switch {
	case t >= unix.AUDIT_FIRST_USER_MSG && t <= unix.AUDIT_LAST_USER_MSG:
		return fmt.Sprintf("user message %d", t)
	case t >= unix.AUDIT_FIRST_USER_MSG2 && t <= unix.AUDIT_LAST_USER_MSG2:
		return fmt.Sprintf("user message %d", t)
	case t >= eventMessageMin && t <= eventMessageMax:
		return fmt.Sprintf("event %d", t)
	}
	return fmt.Sprintf("type %d", t)
}
