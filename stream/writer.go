package stream

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// maxPrefixedLen bounds the length of prefixed strings and byte slices.
// It protects readers from allocating absurd buffers on corrupt input.
const maxPrefixedLen = 1 << 30

// Writer encodes fixed-width little-endian values to an io.Writer. The
// first write error sticks: subsequent writes become no-ops and Err
// returns it.
type Writer struct {
	w   io.Writer
	n   int
	err error
	buf [8]byte
}

// NewWriter creates a Writer encoding to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Err returns the first error encountered, or nil.
func (w *Writer) Err() error { return w.err }

// BytesWritten returns the number of bytes successfully written.
func (w *Writer) BytesWritten() int { return w.n }

func (w *Writer) write(p []byte) {
	if w.err != nil {
		return
	}
	n, err := w.w.Write(p)
	w.n += n
	w.err = err
}

// WriteUint8 writes a single byte.
func (w *Writer) WriteUint8(v uint8) {
	w.buf[0] = v
	w.write(w.buf[:1])
}

// WriteBool writes a bool as one byte, 1 for true.
func (w *Writer) WriteBool(v bool) {
	if v {
		w.WriteUint8(1)
	} else {
		w.WriteUint8(0)
	}
}

// WriteUint16 writes a little-endian uint16.
func (w *Writer) WriteUint16(v uint16) {
	binary.LittleEndian.PutUint16(w.buf[:2], v)
	w.write(w.buf[:2])
}

// WriteUint32 writes a little-endian uint32.
func (w *Writer) WriteUint32(v uint32) {
	binary.LittleEndian.PutUint32(w.buf[:4], v)
	w.write(w.buf[:4])
}

// WriteUint64 writes a little-endian uint64.
func (w *Writer) WriteUint64(v uint64) {
	binary.LittleEndian.PutUint64(w.buf[:8], v)
	w.write(w.buf[:8])
}

// WriteInt32 writes a little-endian int32.
func (w *Writer) WriteInt32(v int32) { w.WriteUint32(uint32(v)) }

// WriteInt64 writes a little-endian int64.
func (w *Writer) WriteInt64(v int64) { w.WriteUint64(uint64(v)) }

// WriteFloat32 writes an IEEE 754 float32 in little-endian byte order.
func (w *Writer) WriteFloat32(v float32) { w.WriteUint32(math.Float32bits(v)) }

// WriteFloat64 writes an IEEE 754 float64 in little-endian byte order.
func (w *Writer) WriteFloat64(v float64) { w.WriteUint64(math.Float64bits(v)) }

// WriteString writes a uint32 byte length followed by the string bytes.
func (w *Writer) WriteString(s string) {
	if len(s) > maxPrefixedLen {
		w.fail(fmt.Errorf("stream: string length %d exceeds limit", len(s)))
		return
	}
	w.WriteUint32(uint32(len(s)))
	w.write([]byte(s))
}

// WriteBytes writes a uint32 length followed by the raw bytes.
func (w *Writer) WriteBytes(p []byte) {
	if len(p) > maxPrefixedLen {
		w.fail(fmt.Errorf("stream: byte slice length %d exceeds limit", len(p)))
		return
	}
	w.WriteUint32(uint32(len(p)))
	w.write(p)
}

func (w *Writer) fail(err error) {
	if w.err == nil {
		w.err = err
	}
}
