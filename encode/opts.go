package encode

import (
	"github.com/signadot/fbx-format/go-fbx/format"
	"github.com/signadot/fbx-format/go-fbx/token"
)

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}

// WithConfig replaces all tunables at once. Options after it still apply.
func WithConfig(c token.Config) EncodeOption {
	return func(es *EncState) { es.cfg = c }
}
func CompressionThreshold(n int) EncodeOption {
	return func(es *EncState) { es.cfg.CompressionThreshold = n }
}
func CompressionLevel(n int) EncodeOption {
	return func(es *EncState) { es.cfg.CompressionLevel = n }
}
func MaxLineLength(n int) EncodeOption {
	return func(es *EncState) { es.cfg.MaxLineLength = n }
}
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}
