package encode

import (
	"bytes"

	"github.com/signadot/fbx-format/go-fbx/format"
	"github.com/signadot/fbx-format/go-fbx/ir"
)

// MustString renders doc as ASCII FBX, panicking on error.
func MustString(doc *ir.Document, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	opts = append(opts[:len(opts):len(opts)], EncodeFormat(format.ASCIIFormat))
	if err := Encode(doc, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}
