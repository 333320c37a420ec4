package audit

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// FieldKind identifies what a rule field matches on. The constant values
// are the wire field-type codes themselves, so the kind-to-code mapping is
// the identity and cannot drift.
type FieldKind uint32

// Integer-valued kinds.
const (
	FieldPID          = FieldKind(unix.AUDIT_PID)
	FieldUID          = FieldKind(unix.AUDIT_UID)
	FieldEUID         = FieldKind(unix.AUDIT_EUID)
	FieldSUID         = FieldKind(unix.AUDIT_SUID)
	FieldFSUID        = FieldKind(unix.AUDIT_FSUID)
	FieldGID          = FieldKind(unix.AUDIT_GID)
	FieldEGID         = FieldKind(unix.AUDIT_EGID)
	FieldSGID         = FieldKind(unix.AUDIT_SGID)
	FieldFSGID        = FieldKind(unix.AUDIT_FSGID)
	FieldLoginUID     = FieldKind(unix.AUDIT_LOGINUID)
	FieldPers         = FieldKind(unix.AUDIT_PERS)
	FieldArch         = FieldKind(unix.AUDIT_ARCH)
	FieldMsgType      = FieldKind(unix.AUDIT_MSGTYPE)
	FieldPPID         = FieldKind(unix.AUDIT_PPID)
	FieldLoginUIDSet  = FieldKind(unix.AUDIT_LOGINUID_SET)
	FieldSessionID    = FieldKind(unix.AUDIT_SESSIONID)
	FieldFSType       = FieldKind(unix.AUDIT_FSTYPE)
	FieldDevMajor     = FieldKind(unix.AUDIT_DEVMAJOR)
	FieldDevMinor     = FieldKind(unix.AUDIT_DEVMINOR)
	FieldInode        = FieldKind(unix.AUDIT_INODE)
	FieldExit         = FieldKind(unix.AUDIT_EXIT)
	FieldSuccess      = FieldKind(unix.AUDIT_SUCCESS)
	FieldPerm         = FieldKind(unix.AUDIT_PERM)
	FieldFiletype     = FieldKind(unix.AUDIT_FILETYPE)
	FieldObjUID       = FieldKind(unix.AUDIT_OBJ_UID)
	FieldObjGID       = FieldKind(unix.AUDIT_OBJ_GID)
	FieldFieldCompare = FieldKind(unix.AUDIT_FIELD_COMPARE)
	FieldExe          = FieldKind(unix.AUDIT_EXE)
	FieldArg0         = FieldKind(unix.AUDIT_ARG0)
	FieldArg1         = FieldKind(unix.AUDIT_ARG1)
	FieldArg2         = FieldKind(unix.AUDIT_ARG2)
	FieldArg3         = FieldKind(unix.AUDIT_ARG3)
)

// String-valued kinds.
const (
	FieldWatch      = FieldKind(unix.AUDIT_WATCH)
	FieldDir        = FieldKind(unix.AUDIT_DIR)
	FieldFilterKey  = FieldKind(unix.AUDIT_FILTERKEY)
	FieldSubjUser   = FieldKind(unix.AUDIT_SUBJ_USER)
	FieldSubjRole   = FieldKind(unix.AUDIT_SUBJ_ROLE)
	FieldSubjType   = FieldKind(unix.AUDIT_SUBJ_TYPE)
	FieldSubjSen    = FieldKind(unix.AUDIT_SUBJ_SEN)
	FieldSubjClr    = FieldKind(unix.AUDIT_SUBJ_CLR)
	FieldObjUser    = FieldKind(unix.AUDIT_OBJ_USER)
	FieldObjRole    = FieldKind(unix.AUDIT_OBJ_ROLE)
	FieldObjType    = FieldKind(unix.AUDIT_OBJ_TYPE)
	FieldObjLevLow  = FieldKind(unix.AUDIT_OBJ_LEV_LOW)
	FieldObjLevHigh = FieldKind(unix.AUDIT_OBJ_LEV_HIGH)
)

type valueShape int

const (
	shapeUint32 valueShape = iota
	shapeString
)

type fieldSpec struct {
	name  string
	shape valueShape
}

// fieldVocabulary is the closed set of field kinds the codec understands.
// The keys are constants, so a duplicated code is a compile error; a test
// checks that every kind declared above has an entry.
var fieldVocabulary = map[FieldKind]fieldSpec{
	FieldPID:          {"pid", shapeUint32},
	FieldUID:          {"uid", shapeUint32},
	FieldEUID:         {"euid", shapeUint32},
	FieldSUID:         {"suid", shapeUint32},
	FieldFSUID:        {"fsuid", shapeUint32},
	FieldGID:          {"gid", shapeUint32},
	FieldEGID:         {"egid", shapeUint32},
	FieldSGID:         {"sgid", shapeUint32},
	FieldFSGID:        {"fsgid", shapeUint32},
	FieldLoginUID:     {"loginuid", shapeUint32},
	FieldPers:         {"pers", shapeUint32},
	FieldArch:         {"arch", shapeUint32},
	FieldMsgType:      {"msgtype", shapeUint32},
	FieldPPID:         {"ppid", shapeUint32},
	FieldLoginUIDSet:  {"loginuid_set", shapeUint32},
	FieldSessionID:    {"sessionid", shapeUint32},
	FieldFSType:       {"fstype", shapeUint32},
	FieldDevMajor:     {"devmajor", shapeUint32},
	FieldDevMinor:     {"devminor", shapeUint32},
	FieldInode:        {"inode", shapeUint32},
	FieldExit:         {"exit", shapeUint32},
	FieldSuccess:      {"success", shapeUint32},
	FieldPerm:         {"perm", shapeUint32},
	FieldFiletype:     {"filetype", shapeUint32},
	FieldObjUID:       {"obj_uid", shapeUint32},
	FieldObjGID:       {"obj_gid", shapeUint32},
	FieldFieldCompare: {"field_compare", shapeUint32},
	FieldExe:          {"exe", shapeUint32},
	FieldArg0:         {"a0", shapeUint32},
	FieldArg1:         {"a1", shapeUint32},
	FieldArg2:         {"a2", shapeUint32},
	FieldArg3:         {"a3", shapeUint32},
	FieldWatch:        {"watch", shapeString},
	FieldDir:          {"dir", shapeString},
	FieldFilterKey:    {"key", shapeString},
	FieldSubjUser:     {"subj_user", shapeString},
	FieldSubjRole:     {"subj_role", shapeString},
	FieldSubjType:     {"subj_type", shapeString},
	FieldSubjSen:      {"subj_sen", shapeString},
	FieldSubjClr:      {"subj_clr", shapeString},
	FieldObjUser:      {"obj_user", shapeString},
	FieldObjRole:      {"obj_role", shapeString},
	FieldObjType:      {"obj_type", shapeString},
	FieldObjLevLow:    {"obj_lev_low", shapeString},
	FieldObjLevHigh:   {"obj_lev_high", shapeString},
}

func (k FieldKind) String() string {
	if spec, ok := fieldVocabulary[k]; ok {
		return spec.name
	}
	return fmt.Sprintf("unknown(%d)", uint32(k))
}

// RuleField is one field entry of a rule: what to match on, how to
// compare, and the value to compare against. Integer kinds use Value,
// string kinds use Str; the other member is ignored on the wire.
type RuleField struct {
	Kind  FieldKind
	Flags FieldFlags
	Value uint32
	Str   string
}

// Uint32Field builds an integer-valued rule field.
func Uint32Field(kind FieldKind, flags FieldFlags, value uint32) RuleField {
	return RuleField{Kind: kind, Flags: flags, Value: value}
}

// StringField builds a string-valued rule field.
func StringField(kind FieldKind, flags FieldFlags, s string) RuleField {
	return RuleField{Kind: kind, Flags: flags, Str: s}
}

func (f RuleField) String() string {
	if spec, ok := fieldVocabulary[f.Kind]; ok && spec.shape == shapeString {
		return fmt.Sprintf("%s %s %q", f.Kind, f.Flags, f.Str)
	}
	return fmt.Sprintf("%s %s %d", f.Kind, f.Flags, f.Value)
}
