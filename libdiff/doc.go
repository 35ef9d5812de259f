// Package libdiff compares FBX documents node by node.
//
// Sibling nodes are aligned by identifier with a sequence diff, so an
// inserted node does not turn every following sibling into a change.
// Properties of aligned nodes are compared by position. Unlike
// token.Equal, arrays compare by content here.
package libdiff
