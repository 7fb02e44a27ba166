package jsonschema

// ParserRoot is the entry point described in spec.md §6: a schema plus a
// stack of frames, immutable from the caller's point of view. Every
// mutating operation returns a new, independently-steppable ParserRoot
// rather than touching the receiver, so a caller can fork and explore
// multiple continuations from the same point (spec.md §5's copy-on-write
// requirement for speculative token sampling).
type ParserRoot struct {
	schemaRoot *SchemaNode
	stack      []frame
}

// NewParser builds a ParserRoot ready to accept the first character of a
// document matching schema. schema must be the root of the document: its
// Defs are what $ref resolution within it is checked against.
//
// Only an object schema at the top level ever completes. A top-level string,
// number or array frame has no enclosing frame to hand it a terminator, so
// it is never popped and CanEnd stays false.
func NewParser(schema *SchemaNode) (*ParserRoot, error) {
	if schema == nil {
		return nil, &ParserError{
			Code: "unsupported_schema_type",
			Err:  ErrUnsupportedSchemaType,
			Args: map[string]any{"type": "<nil root schema>"},
		}
	}
	top, err := buildFrame(schema, schema, "")
	if err != nil {
		return nil, err
	}
	return &ParserRoot{schemaRoot: schema, stack: []frame{top}}, nil
}

// AllowedCharacters returns every character that would be legal right now,
// as a string used like a character set (order and duplicates are
// unspecified). An empty result occurs once CanEnd is true, and also after a
// top-level string or array has closed (see NewParser).
func (p *ParserRoot) AllowedCharacters() string {
	if len(p.stack) == 0 {
		return ""
	}
	return p.stack[len(p.stack)-1].allowedCharacters()
}

// CanEnd reports whether the document parsed so far is already complete
// (spec.md §6 invariant 1: true exactly when the stack is empty).
func (p *ParserRoot) CanEnd() bool {
	return len(p.stack) == 0
}

// AddCharacter feeds one character and returns the resulting ParserRoot,
// leaving the receiver untouched. It returns ErrParserExhausted if CanEnd
// was already true — there is no frame left to receive c.
func (p *ParserRoot) AddCharacter(c rune) (*ParserRoot, error) {
	if p.CanEnd() {
		return nil, ErrParserExhausted
	}
	next := p.Clone()
	if err := next.feed(c); err != nil {
		return nil, err
	}
	return next, nil
}

// feed runs the forwarding-on-pop dispatch loop from spec.md §9: the
// current top of stack gets the character; if it pops and forwards one
// (and, for a key, a payload), the new top is immediately fed that
// forwarded character in turn, within the same call. This is what lets a
// single incoming character both close a frame and be consumed by its
// parent, e.g. a key's ':' closing the key string and opening the value.
func (p *ParserRoot) feed(c rune) error {
	payload := ""
	for {
		if len(p.stack) == 0 {
			return ErrParserExhausted
		}
		top := len(p.stack) - 1
		out, err := p.stack[top].addCharacter(p, c, payload)
		if err != nil {
			return err
		}
		if !out.popped {
			return nil
		}
		p.stack = p.stack[:top]
		if !out.hasForward {
			return nil
		}
		c, payload = out.forwardChar, out.payload
	}
}

// push adds a frame on top of the stack. Only frame implementations call
// this, via the root reference passed to addCharacter.
func (p *ParserRoot) push(f frame) {
	p.stack = append(p.stack, f)
}

// Stack exposes the current frame kinds, outermost (the document root)
// first and the currently-active frame last — read-only introspection for
// callers and tests, e.g. deciding whether the cursor is inside a string
// vs. between tokens.
func (p *ParserRoot) Stack() []FrameKind {
	kinds := make([]FrameKind, len(p.stack))
	for i, f := range p.stack {
		kinds[i] = f.kind()
	}
	return kinds
}

// Clone returns an independent deep copy of the frame stack. Schema nodes
// are never cloned — they are immutable and shared by every fork (spec.md
// §5) — only the mutable parsing state is duplicated.
func (p *ParserRoot) Clone() *ParserRoot {
	clone := &ParserRoot{schemaRoot: p.schemaRoot}
	if len(p.stack) > 0 {
		clone.stack = make([]frame, len(p.stack))
		for i, f := range p.stack {
			clone.stack[i] = f.clone()
		}
	}
	return clone
}
