package jsonschema

import "strings"

// numberFrame recognizes an unquoted JSON number against either "integer"
// (no decimal point ever allowed) or "number" (one optional decimal point)
// per spec.md §4.4.
type numberFrame struct {
	primitiveBase
	allowFloatingPoint bool
	seenDecimalPoint   bool
}

func newNumberFrame(endingCharacters string, allowFloatingPoint bool) *numberFrame {
	return &numberFrame{
		primitiveBase:      primitiveBase{endingCharacters: endingCharacters},
		allowFloatingPoint: allowFloatingPoint,
	}
}

func (n *numberFrame) kind() FrameKind { return FrameNumber }

func (n *numberFrame) addCharacter(_ *ParserRoot, c rune, _ string) (popOutcome, error) {
	if out, popped := n.tryPop(n.canEnd(), c); popped {
		return out, nil
	}

	n.parsedString += string(c)
	if c == '.' {
		n.seenDecimalPoint = true
	}
	return popOutcome{}, nil
}

// canEnd holds once at least one digit has been written and the number
// doesn't currently end on a bare '-' or '.' (spec.md §4.4: "a number can
// end once it has at least one digit and does not currently end in '.' or
// '-'").
func (n *numberFrame) canEnd() bool {
	if n.parsedString == "" {
		return false
	}
	last := n.parsedString[len(n.parsedString)-1]
	return last >= '0' && last <= '9'
}

func (n *numberFrame) allowedCharacters() string {
	var b strings.Builder
	b.WriteString("0123456789")
	if n.parsedString == "" {
		b.WriteByte('-')
	}
	if n.allowFloatingPoint && !n.seenDecimalPoint {
		b.WriteByte('.')
	}
	b.WriteString(n.allowedEndings(n.canEnd()))
	return b.String()
}

func (n *numberFrame) clone() frame {
	clone := *n
	return &clone
}
