package notation

import (
	"fmt"
	"strings"

	"github.com/viant/fsm/model"
	"github.com/viant/parsly"
)

// Parse parses the compact textual machine notation into a machine
// definition. The notation is line oriented:
//
//	machine binary
//	state a start
//	state b final
//	a -> b : 1
//	a -> a : 0
//	b -> b : 1, x    # a comma set accepts any listed symbol
//	b -> a : *       # a star accepts every symbol
//
// Blank lines are skipped and everything after '#' is a comment. The
// returned machine is not validated; callers decide when to invoke
// Machine.Validate.
func Parse(data []byte) (*model.Machine, error) {
	machine := model.NewMachine("")
	for i, line := range strings.Split(string(data), "\n") {
		if idx := strings.IndexByte(line, '#'); idx != -1 {
			line = line[:idx]
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := parseLine(machine, line); err != nil {
			return nil, fmt.Errorf("line %v: %w", i+1, err)
		}
	}
	return machine, nil
}

func parseLine(machine *model.Machine, line string) error {
	cursor := parsly.NewCursor("", []byte(line), 0)

	matched := cursor.MatchAfterOptional(whitespaceToken, identifierToken)
	if matched.Code != identifierToken.Code {
		return cursor.NewError(identifierToken)
	}
	head := matched.Text(cursor)

	switch head {
	case "machine":
		return parseMachine(machine, cursor)
	case "state":
		return parseState(machine, cursor)
	}
	return parseTransition(machine, cursor, head)
}

// parseMachine handles: machine <name>
func parseMachine(machine *model.Machine, cursor *parsly.Cursor) error {
	matched := cursor.MatchAfterOptional(whitespaceToken, identifierToken)
	if matched.Code != identifierToken.Code {
		return cursor.NewError(identifierToken)
	}
	machine.Name = matched.Text(cursor)
	return expectEnd(cursor)
}

// parseState handles: state <id> [start] [final]
func parseState(machine *model.Machine, cursor *parsly.Cursor) error {
	matched := cursor.MatchAfterOptional(whitespaceToken, identifierToken)
	if matched.Code != identifierToken.Code {
		return cursor.NewError(identifierToken)
	}
	state := machine.NewState(matched.Text(cursor))

	for {
		matched = cursor.MatchAfterOptional(whitespaceToken, identifierToken)
		if matched.Code != identifierToken.Code {
			break
		}
		switch flag := matched.Text(cursor); flag {
		case "start":
			state.Start = true
		case "final":
			state.Final = true
		default:
			return fmt.Errorf("unknown state flag %q", flag)
		}
	}
	return expectEnd(cursor)
}

// parseTransition handles: <from> -> <to> : <symbols>
func parseTransition(machine *model.Machine, cursor *parsly.Cursor, from string) error {
	matched := cursor.MatchAfterOptional(whitespaceToken, arrowToken)
	if matched.Code != arrowToken.Code {
		return cursor.NewError(arrowToken)
	}

	matched = cursor.MatchAfterOptional(whitespaceToken, identifierToken)
	if matched.Code != identifierToken.Code {
		return cursor.NewError(identifierToken)
	}
	to := matched.Text(cursor)

	matched = cursor.MatchAfterOptional(whitespaceToken, colonToken)
	if matched.Code != colonToken.Code {
		return cursor.NewError(colonToken)
	}

	when, err := parseSymbols(cursor)
	if err != nil {
		return err
	}
	machine.WithTransition(from, to, when)
	return expectEnd(cursor)
}

// parseSymbols handles the right-hand side of a transition: a star, a
// single symbol, or a comma separated set
func parseSymbols(cursor *parsly.Cursor) (*model.Match, error) {
	matched := cursor.MatchAfterOptional(whitespaceToken, starToken)
	if matched.Code == starToken.Code {
		return model.WhenAny(), nil
	}

	var symbols []interface{}
	for {
		matched = cursor.MatchAfterOptional(whitespaceToken, symbolToken)
		if matched.Code != symbolToken.Code {
			return nil, cursor.NewError(symbolToken)
		}
		symbols = append(symbols, matched.Text(cursor))

		matched = cursor.MatchAfterOptional(whitespaceToken, commaToken)
		if matched.Code != commaToken.Code {
			break
		}
	}
	if len(symbols) == 1 {
		return model.WhenEquals(symbols[0]), nil
	}
	return model.WhenOneOf(symbols...), nil
}

// expectEnd verifies nothing but whitespace remains on the line
func expectEnd(cursor *parsly.Cursor) error {
	cursor.MatchOne(whitespaceToken)
	if cursor.Pos < cursor.InputSize {
		return fmt.Errorf("unexpected text %q", string(cursor.Input[cursor.Pos:]))
	}
	return nil
}
