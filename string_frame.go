package jsonschema

import "strings"

// stringFreeFormCharset is offered, together with the closing '"', while
// accumulating an unconstrained string body (no enum to narrow against). It
// intentionally excludes
// control characters and backslash-escapes: this parser targets plain
// printable text, not full JSON string-escape grammar (spec.md §4.3,
// "printable ASCII content").
const stringFreeFormCharset = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ !@#$%^&*()_+-=[]{};:,./<>?'"

// stringFrame recognizes a quoted string against either a free-form
// printable-ASCII body or a closed enum of legal members (spec.md §4.3).
//
// Closing-quote handling: unlike the reference parser this is modeled on,
// a stringFrame does not append the closing quote and then strip it back
// off — it recognizes the second '"' as a delimiter before it ever reaches
// parsedString. The externally observable sequence (parsedString has no
// quote characters, can_end() becomes true exactly after the second '"')
// is identical; this is just a cleaner way to write the same bookkeeping.
type stringFrame struct {
	primitiveBase
	allowedStrings   []string // nil: free-form. non-nil: closed enum, narrowed by prefix.
	seenOpeningQuote bool
	seenClosingQuote bool
}

// newStringFrame builds a string frame. requireOpeningQuote is false when
// the caller has already consumed the opening '"' itself before pushing
// this frame (the object frame does exactly that for keys, see
// newKeyStringFrame) and true otherwise, when the frame will see its own
// opening quote as a normal character (every string-typed value).
func newStringFrame(endingCharacters string, allowedStrings []string, requireOpeningQuote bool) *stringFrame {
	return &stringFrame{
		primitiveBase:    primitiveBase{endingCharacters: endingCharacters},
		allowedStrings:   allowedStrings,
		seenOpeningQuote: !requireOpeningQuote,
	}
}

// newKeyStringFrame builds the frame used for an object key. The object
// frame consumes the opening '"' itself before pushing this child (see
// object_frame.go's stageParsingKeyOrEnd case) and never forwards it, so
// the key frame must start as if it had already seen its opening quote.
// It terminates on ':', never forwarding anything but the colon itself
// (spec.md §4.2).
func newKeyStringFrame(allowedKeys []string) *stringFrame {
	return newStringFrame(":", allowedKeys, false)
}

func (s *stringFrame) kind() FrameKind { return FrameString }

func (s *stringFrame) addCharacter(_ *ParserRoot, c rune, _ string) (popOutcome, error) {
	if out, popped := s.tryPop(s.canEnd(), c); popped {
		out.payload = s.parsedString
		return out, nil
	}

	if c == '"' {
		if !s.seenOpeningQuote {
			s.seenOpeningQuote = true
		} else {
			s.seenClosingQuote = true
		}
		return popOutcome{}, nil
	}

	s.parsedString += string(c)
	return popOutcome{}, nil
}

func (s *stringFrame) allowedCharacters() string {
	if !s.seenOpeningQuote {
		return "\""
	}
	if s.seenClosingQuote {
		return s.allowedEndings(true)
	}
	if s.allowedStrings != nil {
		return s.enumAllowedCharacters()
	}
	return stringFreeFormCharset + "\""
}

// enumAllowedCharacters narrows the allowed next character to whatever
// continues a member of allowedStrings that parsedString is currently a
// prefix of, offering the closing quote once some member matches exactly
// (spec.md §4.3).
func (s *stringFrame) enumAllowedCharacters() string {
	seen := make(map[rune]bool)
	var b strings.Builder
	exactMatch := false

	for _, member := range s.allowedStrings {
		if !strings.HasPrefix(member, s.parsedString) {
			continue
		}
		rest := member[len(s.parsedString):]
		if rest == "" {
			exactMatch = true
			continue
		}
		r := []rune(rest)[0]
		if !seen[r] {
			seen[r] = true
			b.WriteRune(r)
		}
	}

	if exactMatch {
		b.WriteByte('"')
	}
	return b.String()
}

func (s *stringFrame) canEnd() bool {
	return s.seenClosingQuote
}

func (s *stringFrame) clone() frame {
	clone := *s
	// allowedStrings is fixed at construction and never mutated in place,
	// so clones can safely share the backing array.
	return &clone
}
