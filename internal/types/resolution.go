package types

import (
	"fmt"
	"strings"
)

// Remainder is what is left of one tree after a descent that did not
// produce a value: either the leaf that was reached or the keys available
// below the branch that was reached.
type Remainder struct {
	Leaf string
	Keys []string
}

func (r Remainder) IsLeaf() bool {
	return r.Keys == nil
}

func (r Remainder) String() string {
	if r.IsLeaf() {
		return r.Leaf
	}
	return "[" + strings.Join(r.Keys, ", ") + "]"
}

// RemainderOf describes node as a remainder.
func RemainderOf(node *Node) Remainder {
	if node.IsLeaf() {
		return Remainder{Leaf: node.Value()}
	}
	keys := node.Keys()
	if keys == nil {
		keys = []string{}
	}
	return Remainder{Keys: keys}
}

// Resolution is the outcome of a path lookup. A resolved lookup carries
// the scaled cell value; a partial one carries the row and column
// remainders so the caller can pick the next path segment.
type Resolution struct {
	Kind    ResolutionKind
	Value   float64
	Address string
	Rows    Remainder
	Columns Remainder
}

func Resolved(address string, value float64) Resolution {
	return Resolution{Kind: ResolutionResolved, Address: address, Value: value}
}

func Partial(rows Remainder, columns Remainder) Resolution {
	return Resolution{Kind: ResolutionPartial, Rows: rows, Columns: columns}
}

func (r Resolution) IsResolved() bool {
	return r.Kind == ResolutionResolved
}

func (r Resolution) String() string {
	if r.IsResolved() {
		return fmt.Sprintf("%s=%g", r.Address, r.Value)
	}
	return fmt.Sprintf("(%s, %s)", r.Rows, r.Columns)
}
