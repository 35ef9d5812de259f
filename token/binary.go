package token

import (
	"encoding/binary"
	"fmt"
	"hash"
	"hash/adler32"
	"io"
	"math"

	"github.com/klauspost/compress/flate"
	"github.com/signadot/fbx-format/go-fbx/debug"
)

// zlibHeader opens every compressed array payload: deflate, 8K window,
// default level.
var zlibHeader = []byte{0x58, 0x85}

// BinaryWriter accumulates binary FBX output in memory. Node records and
// compressed arrays are written with placeholder lengths that are patched
// once the real lengths are known, so the writer must be able to revisit
// earlier bytes; the finished buffer is copied to its destination with
// WriteTo.
type BinaryWriter struct {
	buf []byte
	cfg Config
}

func NewBinaryWriter(cfg Config) *BinaryWriter {
	return &BinaryWriter{cfg: cfg}
}

func (w *BinaryWriter) Config() Config { return w.cfg }

// Len is the number of bytes written so far, which is also the offset of
// the next byte.
func (w *BinaryWriter) Len() int { return len(w.buf) }

func (w *BinaryWriter) Bytes() []byte { return w.buf }

func (w *BinaryWriter) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)
	return len(p), nil
}

func (w *BinaryWriter) WriteByte(c byte) error {
	w.buf = append(w.buf, c)
	return nil
}

func (w *BinaryWriter) WriteString(s string) (int, error) {
	w.buf = append(w.buf, s...)
	return len(s), nil
}

func (w *BinaryWriter) WriteInt16(v int16) {
	w.buf = binary.LittleEndian.AppendUint16(w.buf, uint16(v))
}

func (w *BinaryWriter) WriteInt32(v int32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, uint32(v))
}

func (w *BinaryWriter) WriteUint32(v uint32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
}

func (w *BinaryWriter) WriteInt64(v int64) {
	w.buf = binary.LittleEndian.AppendUint64(w.buf, uint64(v))
}

func (w *BinaryWriter) WriteUint64(v uint64) {
	w.buf = binary.LittleEndian.AppendUint64(w.buf, v)
}

func (w *BinaryWriter) WriteFloat32(v float32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, math.Float32bits(v))
}

func (w *BinaryWriter) WriteFloat64(v float64) {
	w.buf = binary.LittleEndian.AppendUint64(w.buf, math.Float64bits(v))
}

// PatchUint32 overwrites the 4 bytes at offset at.
func (w *BinaryWriter) PatchUint32(at int, v uint32) {
	binary.LittleEndian.PutUint32(w.buf[at:at+4], v)
}

// PatchUint64 overwrites the 8 bytes at offset at.
func (w *BinaryWriter) PatchUint64(at int, v uint64) {
	binary.LittleEndian.PutUint64(w.buf[at:at+8], v)
}

// WriteTo copies the accumulated output to dst. Errors from dst are
// returned unchanged.
func (w *BinaryWriter) WriteTo(dst io.Writer) (int64, error) {
	n, err := dst.Write(w.buf)
	return int64(n), err
}

// WriteArray writes the FBX array sub-format body following a tag and
// element count: the encoding word (1 compressed, 0 raw), the payload
// length and the payload. items writes the raw little-endian elements,
// uncompressedSize bytes in all.
//
// A compressed payload is the zlib header, a deflate stream and the
// big-endian Adler-32 of the raw elements; the length word counts all
// three.
func (w *BinaryWriter) WriteArray(uncompressedSize int, items func(io.Writer) error) error {
	if err := checkLen("array payload", uncompressedSize, w.Len()); err != nil {
		return err
	}
	compress := uncompressedSize >= w.cfg.CompressionThreshold
	if debug.Arrays() {
		debug.Logf("array at %d: %v\n", w.Len(), map[string]any{
			"raw":      uncompressedSize,
			"compress": compress,
		})
	}
	if !compress {
		w.WriteUint32(0)
		w.WriteUint32(uint32(uncompressedSize))
		return items(w)
	}
	w.WriteUint32(1)
	lenAt := w.Len()
	w.WriteUint32(0)
	dataStart := w.Len()
	w.Write(zlibHeader)

	fw, err := flate.NewWriter(w, w.cfg.CompressionLevel)
	if err != nil {
		return err
	}
	cw := &checksumWriter{w: fw, h: adler32.New()}
	if err := items(cw); err != nil {
		return err
	}
	// all compressed bytes must be in the buffer before the trailer
	if err := fw.Close(); err != nil {
		return err
	}
	w.buf = binary.BigEndian.AppendUint32(w.buf, cw.h.Sum32())
	if err := checkLen("compressed array payload", w.Len()-dataStart, dataStart); err != nil {
		return err
	}
	w.PatchUint32(lenAt, uint32(w.Len()-dataStart))
	if debug.Arrays() {
		debug.Logf("array at %d: compressed to %d bytes\n", dataStart, w.Len()-dataStart)
	}
	return nil
}

// checkLen fails when n does not fit the 32-bit length or count word
// written at offset at.
func checkLen(what string, n, at int) error {
	if uint64(n) > math.MaxUint32 {
		return NewOffsetErr(fmt.Errorf("%s of %d does not fit 32 bits", what, n), int64(at))
	}
	return nil
}

// checksumWriter hashes everything written through it.
type checksumWriter struct {
	w io.Writer
	h hash.Hash32
}

func (c *checksumWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.h.Write(p[:n])
	return n, err
}
