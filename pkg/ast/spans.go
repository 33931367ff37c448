package ast

// Span captures a half-open source range for diagnostics.
type Span struct {
	Line      int
	Column    int
	EndLine   int
	EndColumn int
}

// ZeroSpan returns an empty span value.
func ZeroSpan() Span {
	return Span{}
}

// SetSpan annotates the node with the provided span.
func SetSpan(node Node, span Span) {
	if node == nil {
		return
	}
	if setter, ok := node.(interface{ setSpan(Span) }); ok {
		setter.setSpan(span)
	}
}
