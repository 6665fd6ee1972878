package lisptype

// this is the type enum for nodes in the syntax tree
type NodeType int

const (
	SymbolNode NodeType = iota // an identifier reference
	NumberNode                 // a numeric literal
	ListNode                   // a parenthesised form, possibly empty
)

// a node of the tree built by the reader.
// Symbol is set for symbols, Number for numbers
// and List holds the children of a list in source order
type AstNode struct {
	Type   NodeType
	Symbol string
	Number float64
	List   []AstNode
}

func NewSymbol(name string) AstNode {
	return AstNode{Type: SymbolNode, Symbol: name}
}

func NewNumberNode(n float64) AstNode {
	return AstNode{Type: NumberNode, Number: n}
}

func NewList(elements ...AstNode) AstNode {
	if elements == nil {
		elements = []AstNode{}
	}
	return AstNode{Type: ListNode, List: elements}
}

// returns true if the node is the symbol with the given name
func (n AstNode) IsSymbol(name string) bool {
	return n.Type == SymbolNode && n.Symbol == name
}
