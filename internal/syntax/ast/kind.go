package ast

// Kind is the type of an ast Node.
type Kind int

// AST Node kinds.
//
//go:generate stringer -type Kind -linecomment
const (
	KindInvalid             Kind = iota // Invalid
	KindFile                            // File
	KindLiteral                         // Literal
	KindGrouping                        // Grouping
	KindUnary                           // Unary
	KindBinary                          // Binary
	KindLogical                         // Logical
	KindVariable                        // Variable
	KindAssign                          // Assign
	KindCall                            // Call
	KindExpressionStatement             // ExpressionStatement
	KindPrint                           // Print
	KindVar                             // Var
	KindBlock                           // Block
	KindIf                              // If
	KindWhile                           // While
	KindFunction                        // Function
	KindReturn                          // Return
	KindClass                           // Class
	KindBadStatement                    // BadStatement
)

// MarshalText implements [encoding.TextMarshaler] for [Kind].
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
