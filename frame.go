package jsonschema

import "strings"

// FrameKind identifies which of the sealed set of parsing frames (spec.md
// §2) a stack entry is. Used for read-only introspection (Stack) and by
// tests; the dispatch logic itself switches on the concrete frame type.
type FrameKind int

const (
	FrameObject FrameKind = iota
	FrameString
	FrameNumber
	FrameList
)

func (k FrameKind) String() string {
	switch k {
	case FrameObject:
		return "object"
	case FrameString:
		return "string"
	case FrameNumber:
		return "number"
	case FrameList:
		return "list"
	default:
		return "unknown"
	}
}

// popOutcome is the record a frame's addCharacter returns to describe what
// happened, per the "forwarding-on-pop" design note in spec.md §9: rather
// than a frame needing to know anything about its parent, it reports
// whether it popped itself and, if so, what character (and, for an object
// key, what text) to hand to the new top of stack.
type popOutcome struct {
	popped      bool
	hasForward  bool
	forwardChar rune
	// payload carries a just-popped string frame's final parsed text. It is
	// only meaningful when the new top of stack is an object frame waiting
	// on a key (spec.md §4.2's "current_key_parser"); every other frame
	// ignores it.
	payload string
}

// frame is the common contract every stack entry satisfies. root is passed
// explicitly to every call instead of being stored as a back-pointer field,
// per spec.md §9's note on breaking the frame→root cycle: frames are pure
// state containers, and only the root mutates its own stack.
type frame interface {
	kind() FrameKind
	addCharacter(root *ParserRoot, c rune, payload string) (popOutcome, error)
	allowedCharacters() string
	canEnd() bool
	clone() frame
}

// primitiveBase is the shared contract described in spec.md §4.5: both
// string and number frames accumulate parsed_string and, once can_end()
// holds, pop and forward any character in ending_characters instead of
// appending it.
type primitiveBase struct {
	parsedString     string
	endingCharacters string
}

// tryPop implements §4.5's shared rule. It is called by String and Number
// before their own type-specific handling of c; callers only append c to
// parsedString themselves when tryPop reports it did not consume c.
func (b *primitiveBase) tryPop(canEnd bool, c rune) (popOutcome, bool) {
	if canEnd && strings.ContainsRune(b.endingCharacters, c) {
		return popOutcome{popped: true, hasForward: true, forwardChar: c}, true
	}
	return popOutcome{}, false
}

func (b *primitiveBase) allowedEndings(canEnd bool) string {
	if canEnd {
		return b.endingCharacters
	}
	return ""
}
