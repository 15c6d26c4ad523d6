// FILE: tomlmap/node.go
package tomlmap

import "fmt"

// NodeType tags the variant held by a Node.
type NodeType int

const (
	BoolNode NodeType = iota
	StringNode
	IntegerNode
	FloatNode
	ArrayNode
	TableNode
)

func (t NodeType) String() string {
	switch t {
	case BoolNode:
		return "bool"
	case StringNode:
		return "string"
	case IntegerNode:
		return "integer"
	case FloatNode:
		return "float"
	case ArrayNode:
		return "array"
	case TableNode:
		return "table"
	}
	return fmt.Sprintf("NodeType(%d)", int(t))
}

// Node is a single document value. Only the field matching Type is
// meaningful. Comment is written as "# " lines above the key.
type Node struct {
	Type    NodeType
	Comment string

	Bool   bool
	String string
	Int    int64
	Float  float64
	Array  []*Node
	Table  *Table
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolNode, Bool: v}
}

func FromString(v string) *Node {
	return &Node{Type: StringNode, String: v}
}

func FromInt(v int64) *Node {
	return &Node{Type: IntegerNode, Int: v}
}

func FromFloat(v float64) *Node {
	return &Node{Type: FloatNode, Float: v}
}

func FromArray(elems ...*Node) *Node {
	return &Node{Type: ArrayNode, Array: elems}
}

func FromTable(t *Table) *Node {
	return &Node{Type: TableNode, Table: t}
}

func (n *Node) WithComment(comment string) *Node {
	n.Comment = comment
	return n
}

// Value returns the plain Go value of the node: bool, string, int64,
// float64, []any or map[string]any.
func (n *Node) Value() any {
	switch n.Type {
	case BoolNode:
		return n.Bool
	case StringNode:
		return n.String
	case IntegerNode:
		return n.Int
	case FloatNode:
		return n.Float
	case ArrayNode:
		res := make([]any, len(n.Array))
		for i, e := range n.Array {
			res[i] = e.Value()
		}
		return res
	case TableNode:
		res := make(map[string]any, n.Table.Len())
		for _, k := range n.Table.keys {
			res[k] = n.Table.nodes[k].Value()
		}
		return res
	}
	return nil
}

// Table is an ordered mapping from key to Node. Iteration follows
// insertion order; replacing a key keeps its position.
type Table struct {
	keys  []string
	nodes map[string]*Node
}

func NewTable() *Table {
	return &Table{nodes: make(map[string]*Node)}
}

func (t *Table) Set(key string, n *Node) {
	if _, exists := t.nodes[key]; !exists {
		t.keys = append(t.keys, key)
	}
	t.nodes[key] = n
}

func (t *Table) Get(key string) (*Node, bool) {
	n, ok := t.nodes[key]
	return n, ok
}

func (t *Table) Has(key string) bool {
	_, ok := t.nodes[key]
	return ok
}

// Keys returns the keys in insertion order.
func (t *Table) Keys() []string {
	keys := make([]string, len(t.keys))
	copy(keys, t.keys)
	return keys
}

func (t *Table) Len() int {
	return len(t.keys)
}
