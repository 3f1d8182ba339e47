package notation

import (
	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

// Token codes
const (
	whitespaceCode = iota
	identifierCode
	arrowCode
	colonCode
	commaCode
	starCode
	symbolCode
)

// Token definitions
var (
	whitespaceToken = parsly.NewToken(whitespaceCode, "Whitespace", matcher.NewWhiteSpace())
	identifierToken = parsly.NewToken(identifierCode, "Identifier", newIdentifierMatcher())
	arrowToken      = parsly.NewToken(arrowCode, "->", newArrowMatcher())
	colonToken      = parsly.NewToken(colonCode, ":", matcher.NewByte(':'))
	commaToken      = parsly.NewToken(commaCode, ",", matcher.NewByte(','))
	starToken       = parsly.NewToken(starCode, "*", matcher.NewByte('*'))
	symbolToken     = parsly.NewToken(symbolCode, "Symbol", newSymbolMatcher())
)

// Custom matchers
func newIdentifierMatcher() parsly.Matcher {
	return &identifierMatcher{}
}

func newArrowMatcher() parsly.Matcher {
	return &arrowMatcher{}
}

func newSymbolMatcher() parsly.Matcher {
	return &symbolMatcher{}
}

// identifierMatcher matches state and keyword identifiers
type identifierMatcher struct{}

func (m *identifierMatcher) Match(cursor *parsly.Cursor) int {
	input := cursor.Input
	pos := cursor.Pos
	size := cursor.InputSize

	if pos >= size {
		return 0
	}

	if !isLetter(input[pos]) && !isDigit(input[pos]) && input[pos] != '_' {
		return 0
	}

	matched := 1
	for i := pos + 1; i < size; i++ {
		if isLetter(input[i]) || isDigit(input[i]) || input[i] == '_' || input[i] == '-' {
			// a dash followed by '>' begins an arrow, not an identifier part
			if input[i] == '-' && i+1 < size && input[i+1] == '>' {
				break
			}
			matched++
			continue
		}
		break
	}

	return matched
}

// arrowMatcher matches the two byte transition arrow
type arrowMatcher struct{}

func (m *arrowMatcher) Match(cursor *parsly.Cursor) int {
	input := cursor.Input
	pos := cursor.Pos

	if pos+1 >= cursor.InputSize {
		return 0
	}
	if input[pos] == '-' && input[pos+1] == '>' {
		return 2
	}
	return 0
}

// symbolMatcher matches a single symbol value: any run of characters up to
// whitespace, a comma or a comment marker
type symbolMatcher struct{}

func (m *symbolMatcher) Match(cursor *parsly.Cursor) int {
	input := cursor.Input
	pos := cursor.Pos
	size := cursor.InputSize

	matched := 0
	for i := pos; i < size; i++ {
		ch := input[i]
		if ch == ' ' || ch == '\t' || ch == ',' || ch == '#' {
			break
		}
		matched++
	}
	return matched
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
