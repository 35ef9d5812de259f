// Package eval selects nodes of an FBX document with expr-lang
// expressions.
//
// An expression is evaluated once per node against an Env and must yield
// a boolean:
//
//	Identifier == "Geometry" && Prop(2) == "Mesh"
//	NumNodes == 0 && Kind(0) == "DoubleArray" && len(Props[0]) > 300
//	Depth == 1 && HasChild("Properties70")
package eval
