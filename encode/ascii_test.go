package encode

import (
	"bytes"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/fbx-format/go-fbx/format"
	"github.com/signadot/fbx-format/go-fbx/ir"
	"github.com/signadot/fbx-format/go-fbx/token"
)

func textDiff(want, got string) string {
	dmp := diffmatchpatch.New()
	return dmp.DiffPrettyText(dmp.DiffMain(want, got, false))
}

func renderNode(t *testing.T, v format.Version, n *ir.Node, indent int) string {
	t.Helper()
	b := token.NewASCIIBuffer(token.DefaultConfig())
	if _, err := writeASCIINode(v, b, n, indent, 0); err != nil {
		t.Fatal(err)
	}
	return b.String()
}

func TestASCIINode(t *testing.T) {
	tests := []struct {
		name   string
		v      format.Version
		node   *ir.Node
		indent int
		want   string
	}{
		{
			name: "single property",
			v:    format.V7_4,
			node: ir.NewNode("Node", token.NewInteger(42)),
			want: "Node: 42\n",
		},
		{
			name: "child without properties",
			v:    format.V7_4,
			node: ir.NewNode("Node", token.NewInteger(42)).WithNodes(ir.NewNode("Child")),
			want: "Node: 42 {\n\tChild:\n}\n",
		},
		{
			name: "several properties and holes",
			v:    format.V7_4,
			node: ir.NewNode("Model", token.NewLong(1000), nil, token.NewString("Model::Cube"), token.NewBool(true)),
			want: "Model: 1000, \"Model::Cube\", T\n",
		},
		{
			name: "nil children skipped",
			v:    format.V7_4,
			node: ir.NewNode("P").WithNodes(nil, ir.NewNode("Q", token.NewFloat(0.5)), nil),
			want: "P: {\n\tQ: 0.5\n}\n",
		},
		{
			name: "only nil children",
			v:    format.V7_4,
			node: ir.NewNode("P").WithNodes(nil),
			want: "P:\n",
		},
		{
			name:   "array block",
			v:      format.V7_4,
			node:   ir.NewNode("Vertices", token.NewDoubleArray([]float64{0, 1.5})),
			indent: 1,
			want:   "\tVertices: *2 {\n\t\ta: 0.0,1.5\n\t}\n",
		},
		{
			name:   "bare array before 7.1",
			v:      format.V7_0,
			node:   ir.NewNode("Vertices", token.NewDoubleArray([]float64{0, 1.5})),
			indent: 1,
			want:   "\tVertices: 0.0,1.5\n",
		},
		{
			name: "nested",
			v:    format.V7_4,
			node: ir.NewNode("A").WithNodes(
				ir.NewNode("B", token.NewShort(1)).WithNodes(ir.NewNode("C", token.NewDouble(2))),
				ir.NewNode("D"),
			),
			want: "A: {\n\tB: 1 {\n\t\tC: 2.0\n\t}\n\tD:\n}\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderNode(t, tt.v, tt.node, tt.indent)
			if got != tt.want {
				t.Errorf("got %q want %q\n%s", got, tt.want, textDiff(tt.want, got))
			}
		})
	}
}

func TestASCIIDocument(t *testing.T) {
	doc := ir.NewDocument(format.V7_4,
		ir.NewNode("FBXHeaderExtension").WithNodes(
			ir.NewNode("FBXHeaderVersion", token.NewInteger(1003)),
		),
		nil,
		ir.NewNode("Creator", token.NewString("go-fbx")),
	)
	want := "; FBX 7.4.0 project file\n\n" +
		"FBXHeaderExtension: {\n\tFBXHeaderVersion: 1003\n}\n\n" +
		"Creator: \"go-fbx\"\n\n"
	got := MustString(doc)
	if got != want {
		t.Errorf("%s", textDiff(want, got))
	}
}

func TestASCIIHeaderVersion(t *testing.T) {
	for v, want := range map[format.Version]string{
		format.V6_1: "; FBX 6.1.0 project file\n\n",
		format.V7_3: "; FBX 7.3.0 project file\n\n",
		7510:        "; FBX 7.5.1 project file\n\n",
	} {
		if got := MustString(ir.NewDocument(v)); got != want {
			t.Errorf("%d: got %q want %q", v, got, want)
		}
	}
}

func TestASCIIVersionGate(t *testing.T) {
	arr := token.NewIntegerArray([]int32{0, 1, -3})
	doc := ir.NewDocument(format.V7_0, ir.NewNode("PolygonVertexIndex", arr))
	old := MustString(doc)
	doc.Version = format.V7_4
	cur := MustString(doc)
	if !strings.Contains(old, "PolygonVertexIndex: 0,1,-3\n") {
		t.Errorf("7.0 output %q", old)
	}
	if !strings.Contains(cur, "PolygonVertexIndex: *3 {\n\ta: 0,1,-3\n}\n") {
		t.Errorf("7.4 output %q", cur)
	}
}

func TestASCIIWrap(t *testing.T) {
	doc := ir.NewDocument(format.V7_0, ir.NewNode("A", token.NewIntegerArray([]int32{100, 200, 300, 400})))
	got := MustString(doc, MaxLineLength(10))
	want := "; FBX 7.0.0 project file\n\nA: 100,\n200,300,\n400\n\n"
	if got != want {
		t.Errorf("%s", textDiff(want, got))
	}
}

var ansi = regexp.MustCompile("\x1b\\[[0-9;]*m")

func TestASCIIColorsKeepLayout(t *testing.T) {
	saved := color.NoColor
	color.NoColor = false
	t.Cleanup(func() { color.NoColor = saved })

	doc := ir.NewDocument(format.V7_4,
		ir.NewNode("Geometry", token.NewLong(7), token.NewString("100%")).WithNodes(
			ir.NewNode("Vertices", token.NewDoubleArray([]float64{1, 2, 3, 4, 5, 6})),
		),
	)
	plain := MustString(doc, MaxLineLength(12))
	colored := MustString(doc, MaxLineLength(12), EncodeColors(NewColors()))
	if !ansi.MatchString(colored) {
		t.Fatalf("no escapes in %q", colored)
	}
	if got := ansi.ReplaceAllString(colored, ""); got != plain {
		t.Errorf("colors changed the layout:\n%s", textDiff(plain, got))
	}
}

func TestASCIIIdempotent(t *testing.T) {
	doc := sampleDocument()
	a, b := &bytes.Buffer{}, &bytes.Buffer{}
	for _, buf := range []*bytes.Buffer{a, b} {
		if err := Encode(doc, buf, MaxLineLength(20)); err != nil {
			t.Fatal(err)
		}
	}
	if a.String() != b.String() {
		t.Errorf("%s", textDiff(a.String(), b.String()))
	}
}

func TestASCIIAppendsDocuments(t *testing.T) {
	buf := &bytes.Buffer{}
	w, err := NewASCIIWriter(buf)
	if err != nil {
		t.Fatal(err)
	}
	doc := ir.NewDocument(format.V7_4, ir.NewNode("A"))
	for range 2 {
		if err := w.Write(doc); err != nil {
			t.Fatal(err)
		}
	}
	one := "; FBX 7.4.0 project file\n\nA:\n\n"
	if got := buf.String(); got != one+one {
		t.Errorf("%s", textDiff(one+one, got))
	}
}

func TestASCIIErrors(t *testing.T) {
	if _, err := NewASCIIWriter(nil); !errors.Is(err, ErrNilWriter) {
		t.Errorf("nil writer: %v", err)
	}
	w, err := NewASCIIWriter(&bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Write(nil); !errors.Is(err, ErrNilDocument) {
		t.Errorf("nil document: %v", err)
	}
	doc := ir.NewDocument(format.V7_4, ir.NewNode("A", token.NewIdentifier("x")))
	if err := w.Write(doc); !errors.Is(err, token.ErrNotImplemented) {
		t.Errorf("identifier property: %v", err)
	}
	if _, err := NewASCIIWriter(&bytes.Buffer{}, MaxLineLength(0)); !errors.Is(err, ErrEncoding) {
		t.Errorf("bad config: %v", err)
	}

	sinkErr := errors.New("disk full")
	w, err = NewASCIIWriter(failWriter{sinkErr})
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Write(sampleDocument()); err != sinkErr {
		t.Errorf("sink error changed: %v", err)
	}
}

type failWriter struct{ err error }

func (f failWriter) Write([]byte) (int, error) { return 0, f.err }

func sampleDocument() *ir.Document {
	verts := make([]float64, 300)
	for i := range verts {
		verts[i] = float64(i) / 3
	}
	idx := make([]int32, 400)
	for i := range idx {
		idx[i] = int32(i % 7)
	}
	return ir.NewDocument(format.V7_4,
		ir.NewNode("FBXHeaderExtension").WithNodes(
			ir.NewNode("FBXHeaderVersion", token.NewInteger(1003)),
			ir.NewNode("FBXVersion", token.NewInteger(7400)),
		),
		ir.NewNode("Objects").WithNodes(
			ir.NewNode("Geometry", token.NewLong(1000), token.NewString("Geometry::Cube"), token.NewString("Mesh")).WithNodes(
				ir.NewNode("Vertices", token.NewDoubleArray(verts)),
				ir.NewNode("PolygonVertexIndex", token.NewIntegerArray(idx)),
				ir.NewNode("Visible", token.NewBoolArray([]bool{true, false})),
			),
		),
		ir.NewNode("Takes"),
	)
}
