package token

// Kind is the kind of a token.
type Kind int

// Token definitions.
//
//go:generate stringer -type Kind -linecomment
const (
	EOF          Kind = iota // EOF
	LeftParen                // LeftParen
	RightParen               // RightParen
	LeftBrace                // LeftBrace
	RightBrace               // RightBrace
	Comma                    // Comma
	Dot                      // Dot
	Minus                    // Minus
	Plus                     // Plus
	Semicolon                // Semicolon
	Slash                    // Slash
	Star                     // Star
	Bang                     // Bang
	BangEqual                // BangEqual
	Equal                    // Equal
	EqualEqual               // EqualEqual
	Greater                  // Greater
	GreaterEqual             // GreaterEqual
	Less                     // Less
	LessEqual                // LessEqual
	Identifier               // Identifier
	String                   // String
	Number                   // Number
	And                      // And
	Class                    // Class
	Else                     // Else
	False                    // False
	Fun                      // Fun
	For                      // For
	If                       // If
	Nil                      // Nil
	Or                       // Or
	Print                    // Print
	Return                   // Return
	Super                    // Super
	This                     // This
	True                     // True
	Var                      // Var
	While                    // While
)

// MarshalText implements [encoding.TextMarshaler] for [Kind].
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// IsKeyword reports whether the kind is one of the reserved words.
func (k Kind) IsKeyword() bool {
	return k >= And && k <= While
}
