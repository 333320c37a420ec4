package audit

import (
	"golang.org/x/sys/unix"
)

// SyscallMaskWords is the number of 32-bit words in a rule's syscall
// bitmask, fixed by the kernel ABI.
const SyscallMaskWords = unix.AUDIT_BITMASK_SIZE

// SyscallMask is a bitset over syscall numbers: bit n set means the rule
// applies to syscall n. The zero value matches no syscall.
type SyscallMask [SyscallMaskWords]uint32

// Set marks syscall nr as matched. Numbers beyond the bitmask are ignored,
// mirroring what the kernel can express.
func (m *SyscallMask) Set(nr uint32) {
	word := nr / 32
	if int(word) < len(m) {
		m[word] |= 1 << (nr % 32)
	}
}

// Unset clears syscall nr.
func (m *SyscallMask) Unset(nr uint32) {
	word := nr / 32
	if int(word) < len(m) {
		m[word] &^= 1 << (nr % 32)
	}
}

// Has reports whether syscall nr is matched.
func (m *SyscallMask) Has(nr uint32) bool {
	word := nr / 32
	return int(word) < len(m) && m[word]&(1<<(nr%32)) != 0
}

// SetAll marks every syscall, the equivalent of auditctl's "-S all".
func (m *SyscallMask) SetAll() {
	for i := range m {
		m[i] = ^uint32(0)
	}
}
