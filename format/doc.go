// Package format describes the two FBX wire formats and the FBX version
// ordinal that gates their syntax.
//
// # Usage
//
//	f, err := format.ParseFormat("binary")
//	v, err := format.ParseVersion("7.4") // format.V7_4
//
// Versions are ordinals: 7.4 is 7400, 7.5 is 7500. The ordinal decides
// whether ASCII arrays use the bracketed `*N { a: ... }` block (7.1 and
// later) and whether binary node records use 64-bit offsets (7.5 and
// later).
//
// # Related Packages
//
//   - github.com/signadot/fbx-format/go-fbx/token - Tokens and their wire forms
//   - github.com/signadot/fbx-format/go-fbx/encode - Document writers
package format
