package encode

import (
	"errors"
	"fmt"
	"io"

	"github.com/signadot/fbx-format/go-fbx/format"
	"github.com/signadot/fbx-format/go-fbx/ir"
	"github.com/signadot/fbx-format/go-fbx/token"
)

var (
	ErrNilWriter   = errors.New("nil writer")
	ErrNilDocument = errors.New("nil document")
	ErrEncoding    = errors.New("encoding error")
)

type EncState struct {
	format format.Format
	cfg    token.Config

	// Color decorates ASCII output; binary output ignores it.
	Color token.ColorFunc
}

func newEncState(opts []EncodeOption) (*EncState, error) {
	es := &EncState{cfg: token.DefaultConfig()}
	for _, opt := range opts {
		opt(es)
	}
	if err := es.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	return es, nil
}

// DocumentWriter writes whole documents to the destination it was created
// with. Each call to Write appends one complete document.
type DocumentWriter interface {
	Write(doc *ir.Document) error
}

// NewWriter returns an ASCII or binary writer according to EncodeFormat.
func NewWriter(w io.Writer, opts ...EncodeOption) (DocumentWriter, error) {
	if FormatFromOpts(opts...).IsBinary() {
		return NewBinaryWriter(w, opts...)
	}
	return NewASCIIWriter(w, opts...)
}

// Encode writes doc to w, in ASCII unless EncodeFormat selects binary.
func Encode(doc *ir.Document, w io.Writer, opts ...EncodeOption) error {
	dw, err := NewWriter(w, opts...)
	if err != nil {
		return err
	}
	return dw.Write(doc)
}
