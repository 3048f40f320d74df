package javaparser

import "strings"

// TypeRef is a parsed Java type expression
type TypeRef struct {
	Name string     // Simple or qualified name, "?" for a wildcard
	Args []*TypeRef // Generic arguments (nil when not parameterized)
	Dims int        // Array dimensions, varargs count as one
}

// ParseTypeRef parses a type expression such as "Map<String, List<Long>>"
// or "byte[]". Malformed input degrades to the text up to the first
// unparseable token.
func ParseTypeRef(expr string) *TypeRef {
	p := &parser{src: expr, toks: Tokenize(expr)}
	ref := p.typeRef()
	if ref == nil {
		return &TypeRef{Name: strings.TrimSpace(expr)}
	}
	return ref
}

func (p *parser) typeRef() *TypeRef {
	for p.at("@") {
		p.annotation()
	}
	p.accept("final")

	tok := p.peek()
	if tok.is("?") {
		p.next()
		ref := &TypeRef{Name: "?"}
		if p.accept("extends") || p.accept("super") {
			if bound := p.typeRef(); bound != nil {
				ref.Args = []*TypeRef{bound}
			}
		}
		return ref
	}
	if tok.Kind != TokenIdent {
		return nil
	}
	p.next()

	ref := &TypeRef{Name: tok.Text}
	for {
		for p.at(".") && p.peekAt(1).Kind == TokenIdent {
			p.next()
			ref.Name += "." + p.next().Text
		}
		if !p.at("<") {
			break
		}
		p.next()
		ref.Args = []*TypeRef{}
		for !p.at(">") && p.peek().Kind != TokenEOF {
			arg := p.typeRef()
			if arg == nil {
				return ref
			}
			ref.Args = append(ref.Args, arg)
			if !p.accept(",") {
				break
			}
		}
		if !p.accept(">") {
			return ref
		}
		if !p.at(".") {
			break
		}
	}

	for p.at("[") && p.peekAt(1).is("]") {
		p.next()
		p.next()
		ref.Dims++
	}
	if p.at(".") && p.peekAt(1).is(".") && p.peekAt(2).is(".") {
		p.pos += 3
		ref.Dims++
	}
	return ref
}

// SimpleName returns the last segment of a qualified name
func (t *TypeRef) SimpleName() string {
	if idx := strings.LastIndex(t.Name, "."); idx >= 0 {
		return t.Name[idx+1:]
	}
	return t.Name
}

// Arg returns the i-th generic argument or nil
func (t *TypeRef) Arg(i int) *TypeRef {
	if i < 0 || i >= len(t.Args) {
		return nil
	}
	return t.Args[i]
}

// Elem returns the type with one array dimension removed
func (t *TypeRef) Elem() *TypeRef {
	if t.Dims == 0 {
		return t
	}
	elem := *t
	elem.Dims--
	return &elem
}

// String renders the type in canonical Java spelling
func (t *TypeRef) String() string {
	var sb strings.Builder
	t.write(&sb)
	return sb.String()
}

func (t *TypeRef) write(sb *strings.Builder) {
	sb.WriteString(t.Name)
	if t.Name == "?" {
		if len(t.Args) == 1 {
			sb.WriteString(" extends ")
			t.Args[0].write(sb)
		}
		return
	}
	if t.Args != nil {
		sb.WriteString("<")
		for i, arg := range t.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			arg.write(sb)
		}
		sb.WriteString(">")
	}
	for i := 0; i < t.Dims; i++ {
		sb.WriteString("[]")
	}
}

// Walk visits the type and every nested generic argument depth-first
func (t *TypeRef) Walk(fn func(*TypeRef)) {
	fn(t)
	for _, arg := range t.Args {
		arg.Walk(fn)
	}
}
