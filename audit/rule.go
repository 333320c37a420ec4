package audit

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
)

const (
	// ruleHeaderLen covers flags, action, field count, the syscall
	// bitmask and the string pool length.
	ruleHeaderLen = 12 + 4*SyscallMaskWords + 4
	// ruleFieldSlotLen is the size of one field descriptor slot:
	// type code, value or string length, operator flags.
	ruleFieldSlotLen = 12
)

// MaxRuleFields is the most fields a single rule can carry on the wire.
const MaxRuleFields = unix.AUDIT_MAX_FIELDS

// RuleMessage is the payload of AUDIT_ADD_RULE and AUDIT_DEL_RULE
// requests and of AUDIT_LIST_RULES reply entries. Field order is wire
// order and is preserved across a round trip.
type RuleMessage struct {
	Flags    RuleFlags
	Action   RuleAction
	Fields   []RuleField
	Syscalls SyscallMask
}

// stringValuesLen sums the byte lengths of all string-valued fields, which
// is both the string pool size and the value of the buflen header word.
// It fails on a kind outside the vocabulary so that Serialize rejects the
// message before allocating anything.
func (m *RuleMessage) stringValuesLen() (int, error) {
	total := 0
	for _, f := range m.Fields {
		spec, ok := fieldVocabulary[f.Kind]
		if !ok {
			return 0, &UnknownFieldCodeError{Code: uint32(f.Kind)}
		}
		if spec.shape == shapeString {
			total += len(f.Str)
		}
	}
	return total, nil
}

// Serialize encodes the rule. The buffer length is a pure function of the
// content: header, one descriptor slot per field, and the string pool.
func (m *RuleMessage) Serialize() ([]byte, error) {
	if len(m.Fields) > MaxRuleFields {
		return nil, &TooManyFieldsError{Count: len(m.Fields), Max: MaxRuleFields}
	}
	poolLen, err := m.stringValuesLen()
	if err != nil {
		return nil, err
	}

	descLen := len(m.Fields) * ruleFieldSlotLen
	w := &writeBuffer{bytes: make([]byte, ruleHeaderLen+descLen+poolLen)}

	w.putUint32(uint32(m.Flags))
	w.putUint32(uint32(m.Action))
	w.putUint32(uint32(len(m.Fields)))
	for _, word := range m.Syscalls {
		w.putUint32(word)
	}
	w.putUint32(uint32(poolLen))

	// Strings land after the last descriptor slot, in field order, with
	// no delimiters. Each descriptor records its string's length, which
	// is all the decoder has to find the boundaries again.
	pool := w.bytes[ruleHeaderLen+descLen:]
	cursor := 0
	for _, f := range m.Fields {
		w.putUint32(uint32(f.Kind))
		if fieldVocabulary[f.Kind].shape == shapeString {
			w.putUint32(uint32(len(f.Str)))
			copy(pool[cursor:cursor+len(f.Str)], f.Str)
			cursor += len(f.Str)
		} else {
			w.putUint32(f.Value)
		}
		w.putUint32(uint32(f.Flags))
	}

	return w.bytes, nil
}

// Deserialize fills the rule from a raw payload. The receiver is left
// untouched on failure.
func (m *RuleMessage) Deserialize(data []byte) error {
	if len(data) < ruleHeaderLen {
		return &TooShortError{What: "rule message", Len: len(data), Min: ruleHeaderLen}
	}

	r := &readBuffer{bytes: data}
	decoded := RuleMessage{
		Flags:  RuleFlags(r.uint32()),
		Action: RuleAction(r.uint32()),
	}
	declaredCount := r.uint32()
	if uint64(declaredCount) > MaxRuleFields {
		return &TooManyFieldsError{Count: int(declaredCount), Max: MaxRuleFields}
	}
	count := int(declaredCount)
	for i := range decoded.Syscalls {
		decoded.Syscalls[i] = r.uint32()
	}
	declaredPool := r.uint32()

	descLen := count * ruleFieldSlotLen
	if r.remaining() < descLen {
		return &TooShortError{What: "rule descriptor table", Len: len(data), Min: ruleHeaderLen + descLen}
	}
	pool := data[ruleHeaderLen+descLen:]
	if uint64(declaredPool) > uint64(len(pool)) {
		return &TruncatedStringPoolError{Declared: int64(declaredPool), Remaining: len(pool)}
	}
	poolLen := int(declaredPool)
	if len(pool) > poolLen {
		logrus.Debugf("audit: rule message has %d bytes after the string pool, ignoring", len(pool)-poolLen)
	}
	pool = pool[:poolLen]

	cursor := 0
	for i := 0; i < count; i++ {
		code := r.uint32()
		value := r.uint32()
		flags := FieldFlags(r.uint32())

		spec, ok := fieldVocabulary[FieldKind(code)]
		if !ok {
			return &UnknownFieldCodeError{Code: code}
		}
		field := RuleField{Kind: FieldKind(code), Flags: flags}
		if spec.shape == shapeString {
			if uint64(value) > uint64(len(pool)-cursor) {
				return &TruncatedStringPoolError{Declared: int64(value), Remaining: len(pool) - cursor}
			}
			strLen := int(value)
			field.Str = string(pool[cursor : cursor+strLen])
			cursor += strLen
		} else {
			field.Value = value
		}
		decoded.Fields = append(decoded.Fields, field)
	}

	*m = decoded
	return nil
}
