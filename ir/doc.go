// Package ir provides the FBX document tree consumed by the writers.
//
// # Overview
//
// A Document is a format version plus an ordered list of root nodes. A
// Node has an identifier, an ordered list of property tokens and an
// ordered list of child nodes:
//
//	doc := ir.NewDocument(format.V7_4,
//	    ir.NewNode("FBXHeaderExtension").WithNodes(
//	        ir.NewNode("FBXHeaderVersion", token.NewInteger(1003)),
//	    ),
//	    ir.NewNode("Objects").WithNodes(
//	        ir.NewNode("Geometry", token.NewLong(1), token.NewString("Geometry::Cube"), token.NewString("Mesh")).
//	            WithNodes(ir.NewNode("Vertices", token.NewDoubleArray(verts))),
//	    ),
//	)
//
// Property and child slots may be nil. Nil slots are holes: writers and
// Visit skip them.
//
// # Loading
//
// FromYAML builds a Document from a YAML description of the tree, which
// is how the fbx command line tool receives its input. See FromYAML for
// the accepted shape.
//
// # Thread Safety
//
// Writers only read the tree. A tree shared between goroutines must not be
// modified while it is being written.
package ir
