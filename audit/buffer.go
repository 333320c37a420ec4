package audit

import (
	"github.com/vishvananda/netlink/nl"
)

// All multi-byte integers in audit netlink payloads are in the byte order
// of the host that emitted them, which for our purposes is always the
// local one.
var native = nl.NativeEndian()

// fieldRange is the half-open byte range [start, end) of a fixed-position
// field inside a serialized message.
type fieldRange struct {
	start, end int
}

// in reports whether the range lies fully within b. Decoders must check it
// before calling uint32 on an inbound buffer.
func (f fieldRange) in(b []byte) bool {
	return f.end <= len(b)
}

func (f fieldRange) uint32(b []byte) uint32 {
	return native.Uint32(b[f.start:f.end])
}

func (f fieldRange) putUint32(b []byte, v uint32) {
	native.PutUint32(b[f.start:f.end], v)
}

// readBuffer walks a serialized message from the beginning, handing out
// consecutive chunks. Callers check remaining() before calling next(), the
// same discipline the fixed-offset ranges get via in().
type readBuffer struct {
	bytes []byte
	pos   int
}

func (b *readBuffer) next(n int) []byte {
	s := b.bytes[b.pos : b.pos+n]
	b.pos += n
	return s
}

func (b *readBuffer) uint32() uint32 {
	return native.Uint32(b.next(4))
}

func (b *readBuffer) remaining() int {
	return len(b.bytes) - b.pos
}

// writeBuffer is the mirror of readBuffer for encoding. The encoder sizes
// the underlying slice from the message content before writing, so next()
// never runs past the end.
type writeBuffer struct {
	bytes []byte
	pos   int
}

func (b *writeBuffer) next(n int) []byte {
	s := b.bytes[b.pos : b.pos+n]
	b.pos += n
	return s
}

func (b *writeBuffer) putUint32(v uint32) {
	native.PutUint32(b.next(4), v)
}
