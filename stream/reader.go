package stream

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// Reader decodes values written by Writer. The first read error sticks:
// subsequent reads return zero values and Err returns it.
type Reader struct {
	r   io.Reader
	n   int
	err error
	buf [8]byte
}

// NewReader creates a Reader decoding from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Err returns the first error encountered, or nil.
func (r *Reader) Err() error { return r.err }

// BytesRead returns the number of bytes successfully read.
func (r *Reader) BytesRead() int { return r.n }

func (r *Reader) read(p []byte) bool {
	if r.err != nil {
		return false
	}
	n, err := io.ReadFull(r.r, p)
	r.n += n
	if err != nil {
		// a clean EOF mid-value is still a truncated stream
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		r.err = err
		return false
	}
	return true
}

// ReadUint8 reads a single byte.
func (r *Reader) ReadUint8() uint8 {
	if !r.read(r.buf[:1]) {
		return 0
	}
	return r.buf[0]
}

// ReadBool reads one byte and reports whether it is non-zero.
func (r *Reader) ReadBool() bool { return r.ReadUint8() != 0 }

// ReadUint16 reads a little-endian uint16.
func (r *Reader) ReadUint16() uint16 {
	if !r.read(r.buf[:2]) {
		return 0
	}
	return binary.LittleEndian.Uint16(r.buf[:2])
}

// ReadUint32 reads a little-endian uint32.
func (r *Reader) ReadUint32() uint32 {
	if !r.read(r.buf[:4]) {
		return 0
	}
	return binary.LittleEndian.Uint32(r.buf[:4])
}

// ReadUint64 reads a little-endian uint64.
func (r *Reader) ReadUint64() uint64 {
	if !r.read(r.buf[:8]) {
		return 0
	}
	return binary.LittleEndian.Uint64(r.buf[:8])
}

// ReadInt32 reads a little-endian int32.
func (r *Reader) ReadInt32() int32 { return int32(r.ReadUint32()) }

// ReadInt64 reads a little-endian int64.
func (r *Reader) ReadInt64() int64 { return int64(r.ReadUint64()) }

// ReadFloat32 reads an IEEE 754 float32.
func (r *Reader) ReadFloat32() float32 { return math.Float32frombits(r.ReadUint32()) }

// ReadFloat64 reads an IEEE 754 float64.
func (r *Reader) ReadFloat64() float64 { return math.Float64frombits(r.ReadUint64()) }

// ReadString reads a length-prefixed string.
func (r *Reader) ReadString() string {
	return string(r.ReadBytes())
}

// ReadBytes reads a length-prefixed byte slice. Returns nil for a zero
// length.
func (r *Reader) ReadBytes() []byte {
	n := r.ReadUint32()
	if r.err != nil || n == 0 {
		return nil
	}
	if n > maxPrefixedLen {
		r.fail(fmt.Errorf("stream: prefixed length %d exceeds limit", n))
		return nil
	}
	p := make([]byte, n)
	if !r.read(p) {
		return nil
	}
	return p
}

func (r *Reader) fail(err error) {
	if r.err == nil {
		r.err = err
	}
}
