package token

import (
	"bytes"
	"encoding/binary"
	"errors"
	"hash/adler32"
	"io"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/klauspost/compress/flate"
	"github.com/signadot/fbx-format/go-fbx/format"
)

func writeBinary(t *testing.T, cfg Config, tok Token) []byte {
	t.Helper()
	w := NewBinaryWriter(cfg)
	if err := tok.WriteBinary(format.V7_4, w); err != nil {
		t.Fatalf("WriteBinary: %v", err)
	}
	return w.Bytes()
}

func TestScalarBinary(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		name string
		tok  Token
		want []byte
	}{
		{"bool true", NewBool(true), []byte{'C', 1}},
		{"bool false", NewBool(false), []byte{'C', 0}},
		{"short", NewShort(-2), []byte{'Y', 0xfe, 0xff}},
		{"integer", NewInteger(42), []byte{'I', 42, 0, 0, 0}},
		{"long", NewLong(1 << 32), []byte{'L', 0, 0, 0, 0, 1, 0, 0, 0}},
		{"float", NewFloat(1), []byte{'F', 0, 0, 0x80, 0x3f}},
		{"double", NewDouble(1), []byte{'D', 0, 0, 0, 0, 0, 0, 0xf0, 0x3f}},
		{"string", NewString("Mesh"), []byte{'S', 4, 0, 0, 0, 'M', 'e', 's', 'h'}},
		{"raw", NewByteArray([]byte{9, 8}), []byte{'R', 2, 0, 0, 0, 9, 8}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := writeBinary(t, cfg, tt.tok)
			if !bytes.Equal(got, tt.want) {
				t.Errorf("got % x, want % x", got, tt.want)
			}
		})
	}
}

func TestRawBytesNeverCompressed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CompressionThreshold = 0
	raw := bytes.Repeat([]byte{7}, 100)
	got := writeBinary(t, cfg, NewByteArray(raw))
	if len(got) != 5+len(raw) || got[0] != 'R' {
		t.Fatalf("unexpected raw encoding: % x", got[:8])
	}
}

func TestUncompressedArray(t *testing.T) {
	got := writeBinary(t, DefaultConfig(), NewIntegerArray([]int32{1, 2, -1}))
	want := []byte{
		'i',
		3, 0, 0, 0, // count
		0, 0, 0, 0, // encoding
		12, 0, 0, 0, // length
		1, 0, 0, 0,
		2, 0, 0, 0,
		0xff, 0xff, 0xff, 0xff,
	}
	if !bytes.Equal(got, want) {
		t.Errorf("got % x\nwant % x", got, want)
	}
}

func TestUncompressedBoolArray(t *testing.T) {
	got := writeBinary(t, DefaultConfig(), NewBoolArray([]bool{true, false, true}))
	want := []byte{'b', 3, 0, 0, 0, 0, 0, 0, 0, 3, 0, 0, 0, 1, 0, 1}
	if !bytes.Equal(got, want) {
		t.Errorf("got % x\nwant % x", got, want)
	}
}

// splitCompressed checks the compressed array framing and returns the
// inflated elements.
func splitCompressed(t *testing.T, d []byte, tag byte, count int) []byte {
	t.Helper()
	if d[0] != tag {
		t.Fatalf("tag %q, want %q", d[0], tag)
	}
	if n := binary.LittleEndian.Uint32(d[1:5]); int(n) != count {
		t.Fatalf("count %d, want %d", n, count)
	}
	if enc := binary.LittleEndian.Uint32(d[5:9]); enc != 1 {
		t.Fatalf("encoding %d, want 1", enc)
	}
	length := int(binary.LittleEndian.Uint32(d[9:13]))
	payload := d[13:]
	if length != len(payload) {
		t.Fatalf("length word %d, payload is %d bytes", length, len(payload))
	}
	if payload[0] != 0x58 || payload[1] != 0x85 {
		t.Fatalf("bad zlib header % x", payload[:2])
	}
	r := flate.NewReader(bytes.NewReader(payload[2 : length-4]))
	defer r.Close()
	raw, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("inflate: %v", err)
	}
	sum := binary.BigEndian.Uint32(payload[length-4:])
	if got := adler32.Checksum(raw); got != sum {
		t.Errorf("checksum trailer %08x, recomputed %08x", sum, got)
	}
	return raw
}

func TestCompressedArray(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CompressionThreshold = 64
	vals := make([]float64, 100)
	for i := range vals {
		vals[i] = float64(i) * 0.5
	}
	d := writeBinary(t, cfg, NewDoubleArray(vals))
	raw := splitCompressed(t, d, 'd', len(vals))
	if len(raw) != len(vals)*8 {
		t.Fatalf("inflated %d bytes, want %d", len(raw), len(vals)*8)
	}
	got := make([]float64, len(vals))
	for i := range got {
		got[i] = math.Float64frombits(binary.LittleEndian.Uint64(raw[i*8:]))
	}
	if diff := cmp.Diff(vals, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestCompressionThresholdBoundary(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CompressionThreshold = 16
	// 2 longs: exactly at the threshold
	at := writeBinary(t, cfg, NewLongArray([]int64{5, 6}))
	if enc := binary.LittleEndian.Uint32(at[5:9]); enc != 1 {
		t.Errorf("size at threshold: encoding %d, want 1", enc)
	}
	raw := splitCompressed(t, at, 'l', 2)
	if int64(binary.LittleEndian.Uint64(raw[8:])) != 6 {
		t.Errorf("second element mismatch")
	}
	// 1 long: below
	below := writeBinary(t, cfg, NewLongArray([]int64{5}))
	if below[5] != 0 {
		t.Errorf("size below threshold: flag %d, want 0", below[5])
	}
}

func TestCompressedArrayDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CompressionThreshold = 0
	vals := []float32{1, 2, 3, 4, 5, 6, 7, 8}
	a := writeBinary(t, cfg, NewFloatArray(vals))
	b := writeBinary(t, cfg, NewFloatArray(vals))
	if !bytes.Equal(a, b) {
		t.Error("compressed output differs between runs")
	}
	splitCompressed(t, a, 'f', len(vals))
}

func TestEmptyArray(t *testing.T) {
	got := writeBinary(t, DefaultConfig(), NewDoubleArray(nil))
	want := []byte{'d', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	if !bytes.Equal(got, want) {
		t.Errorf("got % x, want % x", got, want)
	}
}

func TestWriteArrayItemError(t *testing.T) {
	boom := errors.New("boom")
	for _, threshold := range []int{0, 1 << 20} {
		cfg := DefaultConfig()
		cfg.CompressionThreshold = threshold
		w := NewBinaryWriter(cfg)
		err := w.WriteArray(8, func(io.Writer) error { return boom })
		if !errors.Is(err, boom) {
			t.Errorf("threshold %d: got %v, want boom", threshold, err)
		}
	}
}

func TestWriteArrayTooLarge(t *testing.T) {
	w := NewBinaryWriter(DefaultConfig())
	w.WriteByte(codeDoubleArray)
	w.WriteUint32(1)
	called := false
	err := w.WriteArray(math.MaxUint32+1, func(io.Writer) error {
		called = true
		return nil
	})
	var fe *FormatErr
	if !errors.As(err, &fe) || !errors.Is(err, ErrFormat) {
		t.Fatalf("got %v, want a FormatErr", err)
	}
	if fe.Offset != 5 {
		t.Errorf("offset %d, want 5", fe.Offset)
	}
	if called || w.Len() != 5 {
		t.Errorf("oversize array wrote payload: called=%t len=%d", called, w.Len())
	}
}

func TestCheckLen(t *testing.T) {
	tests := []struct {
		n    int
		fail bool
	}{
		{0, false},
		{math.MaxUint32, false},
		{math.MaxUint32 + 1, true},
		{1 << 40, true},
	}
	for _, tt := range tests {
		err := checkLen("array count", tt.n, 9)
		if !tt.fail {
			if err != nil {
				t.Errorf("checkLen(%d): %v", tt.n, err)
			}
			continue
		}
		var fe *FormatErr
		if !errors.As(err, &fe) || fe.Offset != 9 {
			t.Errorf("checkLen(%d) = %v, want FormatErr at offset 9", tt.n, err)
		}
	}
}

func TestStructuralBinary(t *testing.T) {
	w := NewBinaryWriter(DefaultConfig())
	for _, tok := range []Token{NewIdentifier("x"), NewComment("; c"), Comma()} {
		if err := tok.WriteBinary(format.V7_4, w); !errors.Is(err, ErrNotImplemented) {
			t.Errorf("%s: got %v, want ErrNotImplemented", tok.Type(), err)
		}
	}
	if w.Len() != 0 {
		t.Errorf("structural tokens wrote %d bytes", w.Len())
	}
}

type failWriter struct{ err error }

func (f failWriter) Write([]byte) (int, error) { return 0, f.err }

func TestWriteToPropagates(t *testing.T) {
	boom := errors.New("sink closed")
	w := NewBinaryWriter(DefaultConfig())
	w.WriteUint32(1)
	if _, err := w.WriteTo(failWriter{boom}); err != boom {
		t.Errorf("got %v, want the sink error unchanged", err)
	}
}

func TestPatch(t *testing.T) {
	w := NewBinaryWriter(DefaultConfig())
	w.WriteUint32(0)
	w.WriteUint64(0)
	w.PatchUint32(0, 0xdeadbeef)
	w.PatchUint64(4, 1)
	want := []byte{0xef, 0xbe, 0xad, 0xde, 1, 0, 0, 0, 0, 0, 0, 0}
	if !bytes.Equal(w.Bytes(), want) {
		t.Errorf("got % x, want % x", w.Bytes(), want)
	}
}
