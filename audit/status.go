package audit

import (
	"github.com/sirupsen/logrus"
)

// struct audit_status layout. The three trailing fields were added one at
// a time over several kernel releases; the canonical profile here is the
// full modern struct, with presence detected from the buffer length.
var (
	statusMask                  = fieldRange{0, 4}
	statusEnabled               = fieldRange{4, 8}
	statusFailure               = fieldRange{8, 12}
	statusPID                   = fieldRange{12, 16}
	statusRateLimiting          = fieldRange{16, 20}
	statusBacklogLimit          = fieldRange{20, 24}
	statusLost                  = fieldRange{24, 28}
	statusBacklog               = fieldRange{28, 32}
	statusFeatureBitmap         = fieldRange{32, 36}
	statusBacklogWaitTime       = fieldRange{36, 40}
	statusBacklogWaitTimeActual = fieldRange{40, 44}
)

const (
	// StatusMessageMinLen is the size of the eight fields every kernel
	// emits.
	StatusMessageMinLen = 32
	// StatusMessageMaxLen is the size of the full layout including all
	// optional trailing fields.
	StatusMessageMaxLen = 44
)

// StatusMessage is the payload of AUDIT_GET replies and AUDIT_SET
// requests. The trailing pointer fields are not reported by older kernels;
// nil means the kernel did not send them, which is different from zero.
type StatusMessage struct {
	// Mask selects which fields of an AUDIT_SET request the kernel
	// should apply (AUDIT_STATUS_*).
	Mask    uint32
	Enabled uint32
	// Failure is the action on failure to log (silent, printk, panic).
	Failure uint32
	// PID of the daemon registered to receive audit events.
	PID          uint32
	RateLimiting uint32
	BacklogLimit uint32
	// Lost counts messages dropped by the kernel.
	Lost    uint32
	Backlog uint32

	FeatureBitmap         *uint32
	BacklogWaitTime       *uint32
	BacklogWaitTimeActual *uint32
}

// Deserialize fills the message from a raw status payload. It fails if the
// buffer does not cover the mandatory fields, and leaves the receiver
// untouched on failure.
func (m *StatusMessage) Deserialize(data []byte) error {
	if len(data) < StatusMessageMinLen {
		return &TooShortError{What: "status message", Len: len(data), Min: StatusMessageMinLen}
	}
	if len(data) > StatusMessageMaxLen {
		logrus.Debugf("audit: status message has %d trailing bytes, ignoring", len(data)-StatusMessageMaxLen)
	}

	decoded := StatusMessage{
		Mask:         statusMask.uint32(data),
		Enabled:      statusEnabled.uint32(data),
		Failure:      statusFailure.uint32(data),
		PID:          statusPID.uint32(data),
		RateLimiting: statusRateLimiting.uint32(data),
		BacklogLimit: statusBacklogLimit.uint32(data),
		Lost:         statusLost.uint32(data),
		Backlog:      statusBacklog.uint32(data),
	}
	if statusFeatureBitmap.in(data) {
		v := statusFeatureBitmap.uint32(data)
		decoded.FeatureBitmap = &v
	}
	if statusBacklogWaitTime.in(data) {
		v := statusBacklogWaitTime.uint32(data)
		decoded.BacklogWaitTime = &v
	}
	if statusBacklogWaitTimeActual.in(data) {
		v := statusBacklogWaitTimeActual.uint32(data)
		decoded.BacklogWaitTimeActual = &v
	}

	*m = decoded
	return nil
}

// Serialize encodes the message in the full layout. Absent optional fields
// are left zeroed; the kernel only looks at fields selected by Mask, so
// the extra zeros are harmless on every kernel that understands AUDIT_SET.
func (m *StatusMessage) Serialize() []byte {
	data := make([]byte, StatusMessageMaxLen)
	m.serializeMandatory(data)
	if m.FeatureBitmap != nil {
		statusFeatureBitmap.putUint32(data, *m.FeatureBitmap)
	}
	if m.BacklogWaitTime != nil {
		statusBacklogWaitTime.putUint32(data, *m.BacklogWaitTime)
	}
	if m.BacklogWaitTimeActual != nil {
		statusBacklogWaitTimeActual.putUint32(data, *m.BacklogWaitTimeActual)
	}
	return data
}

// SerializeLegacy encodes only the mandatory fields, for kernels old
// enough to reject payloads longer than their struct audit_status.
func (m *StatusMessage) SerializeLegacy() []byte {
	data := make([]byte, StatusMessageMinLen)
	m.serializeMandatory(data)
	return data
}

func (m *StatusMessage) serializeMandatory(data []byte) {
	statusMask.putUint32(data, m.Mask)
	statusEnabled.putUint32(data, m.Enabled)
	statusFailure.putUint32(data, m.Failure)
	statusPID.putUint32(data, m.PID)
	statusRateLimiting.putUint32(data, m.RateLimiting)
	statusBacklogLimit.putUint32(data, m.BacklogLimit)
	statusLost.putUint32(data, m.Lost)
	statusBacklog.putUint32(data, m.Backlog)
}
