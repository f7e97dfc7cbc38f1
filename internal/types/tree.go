package types

// Node is one level of a table's row or column tree. A node is either a
// leaf carrying a terminal address component (column letters for the
// column tree, a row number for the row tree) or a branch of uniquely
// keyed children kept in declaration order.
//
// Nodes are assembled once by the catalog loader and are read-only
// afterwards.
type Node struct {
	leaf     string
	keys     []string
	children map[string]*Node
}

// NewLeaf returns a terminal node holding an address component.
func NewLeaf(value string) *Node {
	return &Node{leaf: value}
}

// NewBranch returns an empty internal node.
func NewBranch() *Node {
	return &Node{children: map[string]*Node{}}
}

func (n *Node) IsLeaf() bool {
	return n != nil && n.children == nil
}

// Value returns the address component of a leaf, or "" for a branch.
func (n *Node) Value() string {
	if n == nil {
		return ""
	}
	return n.leaf
}

// Keys returns the child keys of a branch in declaration order.
func (n *Node) Keys() []string {
	if n == nil || n.children == nil {
		return nil
	}
	out := make([]string, len(n.keys))
	copy(out, n.keys)
	return out
}

func (n *Node) Child(key string) (*Node, bool) {
	if n == nil || n.children == nil {
		return nil, false
	}
	child, ok := n.children[key]
	return child, ok
}

func (n *Node) Len() int {
	if n == nil {
		return 0
	}
	return len(n.keys)
}

// Add attaches a child under key. It reports false when the node is a
// leaf or the key is already taken; the existing child is left in place.
func (n *Node) Add(key string, child *Node) bool {
	if n == nil || n.children == nil || child == nil {
		return false
	}
	if _, exists := n.children[key]; exists {
		return false
	}
	n.children[key] = child
	n.keys = append(n.keys, key)
	return true
}

// Walk visits every leaf below n in declaration order.
func (n *Node) Walk(fn func(path KeyPath, leaf string)) {
	n.walk(nil, fn)
}

func (n *Node) walk(prefix KeyPath, fn func(path KeyPath, leaf string)) {
	if n == nil {
		return
	}
	if n.IsLeaf() {
		fn(prefix, n.leaf)
		return
	}
	for _, key := range n.keys {
		next := make(KeyPath, len(prefix), len(prefix)+1)
		copy(next, prefix)
		n.children[key].walk(append(next, key), fn)
	}
}
