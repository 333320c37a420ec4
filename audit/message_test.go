package audit

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mdlayher/netlink"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func roundTrip(t *testing.T, want Message) {
	t.Helper()

	frame, err := Serialize(want)
	require.NoError(t, err)
	require.Equal(t, netlink.HeaderType(want.MessageType()), frame.Header.Type)

	got, err := Deserialize(frame)
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("message changed across round trip (-want +got):\n%s", diff)
	}
}

func TestMessageRoundTrips(t *testing.T) {
	status := fullStatus()
	rule := RuleMessage{
		Flags:  FilterExit,
		Action: ActionAlways,
		Fields: []RuleField{
			StringField(FieldWatch, OperatorEqual, "/etc/passwd"),
			StringField(FieldFilterKey, OperatorEqual, "identity"),
		},
	}

	roundTrip(t, GetStatus{})
	roundTrip(t, GetStatus{Status: &status})
	roundTrip(t, SetStatus{Status: status})
	roundTrip(t, AddRule{Rule: rule})
	roundTrip(t, DelRule{Rule: rule})
	roundTrip(t, ListRules{})
	roundTrip(t, ListRules{Rule: &rule})
	roundTrip(t, Event{Type: 1300, Text: "syscall=59 success=yes exit=0"})
}

func TestMessageTypeCodes(t *testing.T) {
	require.EqualValues(t, unix.AUDIT_GET, GetStatus{}.MessageType())
	require.EqualValues(t, unix.AUDIT_SET, SetStatus{}.MessageType())
	require.EqualValues(t, unix.AUDIT_ADD_RULE, AddRule{}.MessageType())
	require.EqualValues(t, unix.AUDIT_DEL_RULE, DelRule{}.MessageType())
	require.EqualValues(t, unix.AUDIT_LIST_RULES, ListRules{}.MessageType())
	require.EqualValues(t, 1400, Event{Type: 1400}.MessageType())
}

func TestDeserializeUnsupportedType(t *testing.T) {
	frame := netlink.Message{
		Header: netlink.Header{Type: netlink.HeaderType(unix.AUDIT_SIGNAL_INFO)},
	}

	_, err := Deserialize(frame)
	var unsupported *UnsupportedMessageTypeError
	require.True(t, errors.As(err, &unsupported))
	require.Equal(t, uint16(unix.AUDIT_SIGNAL_INFO), unsupported.Type)
	require.Contains(t, unsupported.Error(), "AUDIT_SIGNAL_INFO")
}

func TestDeserializeBadPayload(t *testing.T) {
	frame := netlink.Message{
		Header: netlink.Header{Type: netlink.HeaderType(unix.AUDIT_SET)},
		Data:   make([]byte, 8),
	}
	_, err := Deserialize(frame)
	var tooShort *TooShortError
	require.True(t, errors.As(err, &tooShort), "typed error must survive wrapping, got %v", err)

	frame = netlink.Message{
		Header: netlink.Header{Type: netlink.HeaderType(unix.AUDIT_ADD_RULE)},
		Data:   make([]byte, 16),
	}
	_, err = Deserialize(frame)
	require.True(t, errors.As(err, &tooShort))
}

func TestSerializeRuleError(t *testing.T) {
	rule := RuleMessage{}
	for i := 0; i <= MaxRuleFields; i++ {
		rule.Fields = append(rule.Fields, Uint32Field(FieldPID, OperatorEqual, 0))
	}

	_, err := Serialize(AddRule{Rule: rule})
	var tooMany *TooManyFieldsError
	require.True(t, errors.As(err, &tooMany))
}

func TestSerializeLeavesTransportBitsAlone(t *testing.T) {
	frame, err := Serialize(GetStatus{})
	require.NoError(t, err)
	require.Zero(t, frame.Header.Flags)
	require.Zero(t, frame.Header.Sequence)
	require.Zero(t, frame.Header.PID)
	require.Empty(t, frame.Data)
}

func TestTypeString(t *testing.T) {
	require.Equal(t, "AUDIT_GET", TypeString(unix.AUDIT_GET))
	require.Equal(t, "AUDIT_LIST_RULES", TypeString(unix.AUDIT_LIST_RULES))
	require.Contains(t, TypeString(1110), "user message")
	require.Contains(t, TypeString(1300), "event")
	require.Contains(t, TypeString(65000), "type")
}
