package value

import (
	"io"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Safe reports whether an arbitrary value can be emitted inside a declaration
// as-is: it must lex cleanly and must not open or close a block, terminate the
// declaration or smuggle in its own !important.
func Safe(v string) bool {
	lexer := css.NewLexer(parse.NewInputString(v))
	depth := 0

	for {
		tt, data := lexer.Next()
		switch tt {
		case css.ErrorToken:
			// ErrorToken at EOF is normal
			return lexer.Err() == io.EOF && depth == 0
		case css.BadStringToken, css.BadURLToken, css.CDOToken, css.CDCToken, css.AtKeywordToken:
			return false
		case css.LeftBraceToken, css.RightBraceToken, css.SemicolonToken:
			return false
		case css.FunctionToken, css.LeftParenthesisToken, css.LeftBracketToken:
			depth++
		case css.RightParenthesisToken, css.RightBracketToken:
			depth--
			if depth < 0 {
				return false
			}
		case css.DelimToken:
			if len(data) == 1 && data[0] == '!' {
				return false
			}
		}
	}
}
