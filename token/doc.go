// Package token implements FBX tokens: the typed scalar and array values
// carried as node properties, plus the structural tokens a tokenizer
// produces around them.
//
// Every value token knows how to write itself in both FBX wire formats:
//
//	bw := token.NewBinaryWriter(token.DefaultConfig())
//	err := token.NewDouble(1.5).WriteBinary(format.V7_4, bw)
//
//	buf := token.NewASCIIBuffer(token.DefaultConfig())
//	lineStart, err := arr.WriteASCII(format.V7_4, buf, 1, 0)
//
// ASCII writers thread a line cursor: the offset in the buffer where the
// current output line starts. Array writers wrap their element lists once
// a line would reach Config.MaxLineLength and return the updated cursor.
//
// Binary arrays use the FBX array sub-format, deflate compressed with a
// zlib header and an Adler-32 trailer once their raw size reaches
// Config.CompressionThreshold.
//
// ParseNumber classifies a numeric literal into the narrowest token that
// holds it.
package token
