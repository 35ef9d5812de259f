// Package encode writes ir documents as FBX files.
//
// # Usage
//
//	doc := ir.NewDocument(format.V7_4,
//	    ir.NewNode("Creator", token.NewString("go-fbx")),
//	)
//
//	// binary, compressing arrays of 4K or more
//	err := encode.Encode(doc, w,
//	    encode.EncodeFormat(format.BinaryFormat),
//	    encode.CompressionThreshold(4096))
//
//	// ASCII, colored for a terminal
//	err = encode.Encode(doc, os.Stdout, encode.EncodeColors(encode.NewColors()))
//
// Writers render the whole document in memory and hand it to the
// destination in a single Write, so a failed encode leaves the destination
// untouched unless the destination itself fails part way.
//
// # Related Packages
//
//   - github.com/signadot/fbx-format/go-fbx/ir - document tree
//   - github.com/signadot/fbx-format/go-fbx/token - property tokens and their wire forms
package encode
