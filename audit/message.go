// Package audit encodes and decodes the netlink messages spoken between
// user space and the kernel audit subsystem: status queries and replies,
// and rule add/delete/list operations. It only deals with message
// payloads; moving netlink.Message frames over a socket is the caller's
// business.
package audit

import (
	"github.com/mdlayher/netlink"
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// Record-carrying message types. Everything from the syscall events up to
// the last anomaly-response type carries a textual audit record rather
// than a fixed struct.
const (
	eventMessageMin = 1300
	eventMessageMax = 2999
)

// Message is one typed audit netlink message. It is a closed set: the
// concrete types below are the only implementations.
type Message interface {
	// MessageType returns the netlink message type code this payload
	// travels under.
	MessageType() uint16

	auditMessage()
}

// GetStatus is an AUDIT_GET exchange. Status is nil in the query
// direction and set in the kernel's reply.
type GetStatus struct {
	Status *StatusMessage
}

// SetStatus is an AUDIT_SET request. Mask selects which fields apply.
type SetStatus struct {
	Status StatusMessage
}

// AddRule is an AUDIT_ADD_RULE request.
type AddRule struct {
	Rule RuleMessage
}

// DelRule is an AUDIT_DEL_RULE request.
type DelRule struct {
	Rule RuleMessage
}

// ListRules is an AUDIT_LIST_RULES exchange. Rule is nil in the request
// direction; each reply frame carries one rule.
type ListRules struct {
	Rule *RuleMessage
}

// Event is one audit record (message types 1300 through 2999). The
// payload is the record text as emitted by the kernel.
type Event struct {
	Type uint16
	Text string
}

func (GetStatus) MessageType() uint16 { return unix.AUDIT_GET }
func (SetStatus) MessageType() uint16 { return unix.AUDIT_SET }
func (AddRule) MessageType() uint16   { return unix.AUDIT_ADD_RULE }
func (DelRule) MessageType() uint16   { return unix.AUDIT_DEL_RULE }
func (ListRules) MessageType() uint16 { return unix.AUDIT_LIST_RULES }
func (e Event) MessageType() uint16   { return e.Type }

func (GetStatus) auditMessage() {}
func (SetStatus) auditMessage() {}
func (AddRule) auditMessage()   {}
func (DelRule) auditMessage()   {}
func (ListRules) auditMessage() {}
func (Event) auditMessage()     {}

// Serialize encodes a message into a netlink frame. Only the type code
// and the payload are set; sequence numbers, port ids and request flags
// belong to whoever owns the socket.
func Serialize(m Message) (netlink.Message, error) {
	frame := netlink.Message{
		Header: netlink.Header{Type: netlink.HeaderType(m.MessageType())},
	}

	switch m := m.(type) {
	case GetStatus:
		if m.Status != nil {
			frame.Data = m.Status.Serialize()
		}
	case SetStatus:
		frame.Data = m.Status.Serialize()
	case AddRule:
		data, err := m.Rule.Serialize()
		if err != nil {
			return netlink.Message{}, errors.Wrap(err, "failed to serialize add-rule message")
		}
		frame.Data = data
	case DelRule:
		data, err := m.Rule.Serialize()
		if err != nil {
			return netlink.Message{}, errors.Wrap(err, "failed to serialize del-rule message")
		}
		frame.Data = data
	case ListRules:
		if m.Rule != nil {
			data, err := m.Rule.Serialize()
			if err != nil {
				return netlink.Message{}, errors.Wrap(err, "failed to serialize list-rules message")
			}
			frame.Data = data
		}
	case Event:
		frame.Data = []byte(m.Text)
	}

	return frame, nil
}

// Deserialize decodes a netlink frame into a typed message, dispatching
// on the frame's type code. The frame's payload is copied where needed;
// the caller keeps ownership of the slice.
func Deserialize(frame netlink.Message) (Message, error) {
	msgType := uint16(frame.Header.Type)

	switch msgType {
	case unix.AUDIT_GET:
		if len(frame.Data) == 0 {
			return GetStatus{}, nil
		}
		var status StatusMessage
		if err := status.Deserialize(frame.Data); err != nil {
			return nil, errors.Wrap(err, "failed to deserialize status reply")
		}
		return GetStatus{Status: &status}, nil

	case unix.AUDIT_SET:
		var status StatusMessage
		if err := status.Deserialize(frame.Data); err != nil {
			return nil, errors.Wrap(err, "failed to deserialize set-status message")
		}
		return SetStatus{Status: status}, nil

	case unix.AUDIT_ADD_RULE:
		var rule RuleMessage
		if err := rule.Deserialize(frame.Data); err != nil {
			return nil, errors.Wrap(err, "failed to deserialize add-rule message")
		}
		return AddRule{Rule: rule}, nil

	case unix.AUDIT_DEL_RULE:
		var rule RuleMessage
		if err := rule.Deserialize(frame.Data); err != nil {
			return nil, errors.Wrap(err, "failed to deserialize del-rule message")
		}
		return DelRule{Rule: rule}, nil

	case unix.AUDIT_LIST_RULES:
		if len(frame.Data) == 0 {
			return ListRules{}, nil
		}
		var rule RuleMessage
		if err := rule.Deserialize(frame.Data); err != nil {
			return nil, errors.Wrap(err, "failed to deserialize list-rules entry")
		}
		return ListRules{Rule: &rule}, nil
	}

	if msgType >= eventMessageMin && msgType <= eventMessageMax {
		return Event{Type: msgType, Text: string(frame.Data)}, nil
	}

	return nil, &UnsupportedMessageTypeError{Type: msgType}
}
