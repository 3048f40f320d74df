package javaparser

import (
	"fmt"
	"strings"

	"specforge/internal/logger"
)

// ParseError reports a structural problem in a Java source file
type ParseError struct {
	Pos int    // Byte offset where the problem was detected
	Msg string // Human readable description
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at offset %d: %s", e.Pos, e.Msg)
}

// Annotation represents a Java annotation with its attributes
type Annotation struct {
	Name       string            // e.g., "RequestMapping", "Entity"
	Attributes map[string]string // e.g., {"value": "/users", "method": "RequestMethod.GET"}
	Raw        string            // Original annotation text
}

// Value returns the route-like value of the annotation ("value", then "path")
func (a Annotation) Value() string {
	if v, ok := a.Attributes["value"]; ok {
		return v
	}
	return a.Attributes["path"]
}

// Field represents a class field declaration
type Field struct {
	Name        string       // e.g., "email"
	Type        string       // e.g., "List<String>"
	Modifiers   []string     // e.g., ["private", "final"]
	Annotations []Annotation // e.g., @Column
}

// Method represents a Java method declaration
type Method struct {
	Name        string       // e.g., "getAllWidgets"
	Params      string       // Raw parameter list text between the parentheses
	ParamsList  []string     // Params split on top-level commas
	ReturnType  string       // e.g., "ResponseEntity<GlobalResponseMessage<WidgetResponse>>"
	Modifiers   []string     // e.g., ["public"]
	Annotations []Annotation // e.g., @GetMapping("/{id}")
}

// JavaClass represents the first type declared in a Java source file
type JavaClass struct {
	Package     string       // e.g., "com.company.widget"
	Name        string       // e.g., "WidgetController"
	Kind        string       // "class", "interface", "enum", "record" or "@interface"
	Imports     []string     // Import statements
	Annotations []Annotation // Type-level annotations
	Fields      []Field      // Field declarations in source order
	Methods     []Method     // Method declarations in source order
}

var modifierKeywords = map[string]bool{
	"public":       true,
	"protected":    true,
	"private":      true,
	"static":       true,
	"final":        true,
	"abstract":     true,
	"transient":    true,
	"volatile":     true,
	"synchronized": true,
	"native":       true,
	"strictfp":     true,
	"default":      true,
	"sealed":       true,
}

var typeKeywords = map[string]bool{
	"class":     true,
	"interface": true,
	"enum":      true,
	"record":    true,
}

type parser struct {
	src  string
	toks []Token
	pos  int
}

// ParseJavaFile reads the package, imports and first type declaration of a
// Java source file. It returns a ParseError when no type declaration exists.
func ParseJavaFile(content string) (*JavaClass, error) {
	p := &parser{src: content, toks: Tokenize(content)}

	javaClass := &JavaClass{
		Imports:     []string{},
		Annotations: []Annotation{},
		Fields:      []Field{},
		Methods:     []Method{},
	}

	for {
		switch {
		case p.at("package"):
			p.next()
			javaClass.Package = p.qualifiedName()
			p.accept(";")
			continue
		case p.at("import"):
			p.next()
			p.accept("static")
			javaClass.Imports = append(javaClass.Imports, p.qualifiedName())
			p.accept(";")
			continue
		}
		break
	}

	for p.peek().Kind != TokenEOF {
		annotations := p.annotations()
		p.modifiers()

		kind, ok := p.typeKeyword()
		if !ok {
			// Stray token between declarations
			if len(annotations) == 0 {
				p.next()
			}
			continue
		}

		nameTok := p.next()
		if nameTok.Kind != TokenIdent {
			return nil, &ParseError{Pos: nameTok.Pos, Msg: fmt.Sprintf("expected %s name, found %q", kind, nameTok.Text)}
		}
		javaClass.Kind = kind
		javaClass.Name = nameTok.Text
		javaClass.Annotations = annotations

		if !p.skipTo("{") {
			return nil, &ParseError{Pos: p.peek().Pos, Msg: fmt.Sprintf("missing body for %s %s", kind, javaClass.Name)}
		}
		p.next()
		if err := p.parseBody(javaClass); err != nil {
			return nil, err
		}

		logger.Debug("[PARSER] %s %s: %d fields, %d methods", kind, javaClass.Name, len(javaClass.Fields), len(javaClass.Methods))
		return javaClass, nil
	}

	return nil, &ParseError{Pos: len(content), Msg: "no type declaration found"}
}

// parseBody reads members until the brace closing the type body
func (p *parser) parseBody(javaClass *JavaClass) error {
	if javaClass.Kind == "enum" {
		p.skipEnumConstants()
	}

	for {
		tok := p.peek()
		switch {
		case tok.Kind == TokenEOF:
			return &ParseError{Pos: tok.Pos, Msg: fmt.Sprintf("unterminated body of %s", javaClass.Name)}
		case tok.is("}"):
			p.next()
			return nil
		case tok.is(";"):
			p.next()
			continue
		}

		annotations, modifiers := p.annotations(), p.modifiers()
		for p.at("@") && !p.peekAt(1).is("interface") {
			annotations = append(annotations, p.annotations()...)
			modifiers = append(modifiers, p.modifiers()...)
		}

		if p.at("{") {
			p.skipBalanced("{", "}")
			continue
		}
		if _, ok := p.typeKeyword(); ok {
			p.skipMember()
			continue
		}
		if p.at("<") {
			p.skipBalanced("<", ">")
		}

		typeTok := p.peek()
		typeText, ok := p.typeText()
		if !ok {
			p.skipMember()
			continue
		}

		// Constructor: the "type" is the class name followed by a parameter list
		if p.at("(") {
			p.parenText()
			p.skipMethodTail()
			continue
		}

		nameTok := p.peek()
		if nameTok.Kind != TokenIdent {
			logger.Debug("[PARSER] Unrecognized member near offset %d in %s", typeTok.Pos, javaClass.Name)
			p.skipMember()
			continue
		}
		p.next()

		if p.at("(") {
			params := p.parenText()
			method := Method{
				Name:        nameTok.Text,
				Params:      params,
				ParamsList:  SplitParams(params),
				ReturnType:  typeText,
				Modifiers:   modifiers,
				Annotations: annotations,
			}
			p.skipMethodTail()
			javaClass.Methods = append(javaClass.Methods, method)
			continue
		}

		// Field declarators: Type a [= x], b [= y];
		name := nameTok.Text
		for {
			fieldType := typeText
			for p.at("[") && p.peekAt(1).is("]") {
				p.next()
				p.next()
				fieldType += "[]"
			}
			javaClass.Fields = append(javaClass.Fields, Field{
				Name:        name,
				Type:        fieldType,
				Modifiers:   modifiers,
				Annotations: annotations,
			})
			if p.accept("=") {
				p.skipInitializer()
			}
			if !p.accept(",") {
				break
			}
			next := p.next()
			if next.Kind != TokenIdent {
				break
			}
			name = next.Text
		}
		p.accept(";")
	}
}

// annotations reads a run of annotations, leaving "@interface" untouched
func (p *parser) annotations() []Annotation {
	annotations := []Annotation{}
	for p.at("@") && !p.peekAt(1).is("interface") {
		annotations = append(annotations, p.annotation())
	}
	return annotations
}

func (p *parser) annotation() Annotation {
	start := p.next().Pos // '@'
	name := p.qualifiedName()
	if idx := strings.LastIndex(name, "."); idx >= 0 {
		name = name[idx+1:]
	}

	annotation := Annotation{
		Name:       name,
		Attributes: make(map[string]string),
	}

	end := p.toks[p.pos-1].End
	if p.at("(") {
		open := p.pos
		p.skipBalanced("(", ")")
		close := p.pos - 1
		if close <= open {
			close = open + 1
		}
		end = p.toks[close].End
		parseAnnotationAttributes(&annotation, p.src, p.toks[open+1:close])
	}
	annotation.Raw = p.src[start:end]
	return annotation
}

// parseAnnotationAttributes fills Attributes from the tokens between the parentheses
func parseAnnotationAttributes(annotation *Annotation, src string, toks []Token) {
	for i, segment := range splitTokens(toks) {
		if len(segment) == 0 {
			continue
		}
		if len(segment) >= 3 && segment[0].Kind == TokenIdent && segment[1].is("=") && !segment[2].is("=") {
			annotation.Attributes[segment[0].Text] = tokenValue(src, segment[2:])
			continue
		}
		if i == 0 {
			annotation.Attributes["value"] = tokenValue(src, segment)
		}
	}
}

// tokenValue returns the source text spanned by toks, unquoting a lone string literal
func tokenValue(src string, toks []Token) string {
	if len(toks) == 1 && toks[0].Kind == TokenString {
		return TrimQuotes(toks[0].Text)
	}
	// Single-element array initializer: {"/x"}
	if len(toks) == 3 && toks[0].is("{") && toks[1].Kind == TokenString && toks[2].is("}") {
		return TrimQuotes(toks[1].Text)
	}
	return strings.TrimSpace(src[toks[0].Pos:toks[len(toks)-1].End])
}

// splitTokens splits on commas outside (), {} and []
func splitTokens(toks []Token) [][]Token {
	var segments [][]Token
	depth := 0
	start := 0
	for i, tok := range toks {
		switch {
		case tok.is("(") || tok.is("{") || tok.is("["):
			depth++
		case tok.is(")") || tok.is("}") || tok.is("]"):
			depth--
		case tok.is(",") && depth == 0:
			segments = append(segments, toks[start:i])
			start = i + 1
		}
	}
	return append(segments, toks[start:])
}

func (p *parser) modifiers() []string {
	modifiers := []string{}
	for {
		tok := p.peek()
		if tok.Kind != TokenIdent || !modifierKeywords[tok.Text] {
			return modifiers
		}
		p.next()
		modifiers = append(modifiers, tok.Text)
	}
}

// typeKeyword consumes "class", "interface", "enum", "record" or "@interface"
func (p *parser) typeKeyword() (string, bool) {
	tok := p.peek()
	if tok.Kind == TokenIdent && typeKeywords[tok.Text] {
		// "record" is only a keyword when followed by a name and a header
		if tok.Text == "record" && !(p.peekAt(1).Kind == TokenIdent && (p.peekAt(2).is("(") || p.peekAt(2).is("<"))) {
			return "", false
		}
		p.next()
		return tok.Text, true
	}
	if tok.is("@") && p.peekAt(1).is("interface") {
		p.next()
		p.next()
		return "@interface", true
	}
	return "", false
}

// typeText reads a type expression and returns its canonical spelling
func (p *parser) typeText() (string, bool) {
	var sb strings.Builder
	if !p.writeType(&sb) {
		return "", false
	}
	return sb.String(), true
}

func (p *parser) writeType(sb *strings.Builder) bool {
	for p.at("@") && !p.peekAt(1).is("interface") {
		p.annotation()
	}
	p.accept("final")

	tok := p.peek()
	if tok.is("?") {
		p.next()
		sb.WriteString("?")
		if p.at("extends") || p.at("super") {
			sb.WriteString(" " + p.next().Text + " ")
			return p.writeType(sb)
		}
		return true
	}
	if tok.Kind != TokenIdent {
		return false
	}
	p.next()
	sb.WriteString(tok.Text)

	for {
		for p.at(".") && p.peekAt(1).Kind == TokenIdent {
			p.next()
			sb.WriteString("." + p.next().Text)
		}
		if !p.at("<") {
			break
		}
		p.next()
		sb.WriteString("<")
		if !p.at(">") {
			for {
				if !p.writeType(sb) {
					return false
				}
				if !p.accept(",") {
					break
				}
				sb.WriteString(", ")
			}
		}
		if !p.accept(">") {
			return false
		}
		sb.WriteString(">")
		if !p.at(".") {
			break
		}
	}

	for p.at("[") && p.peekAt(1).is("]") {
		p.next()
		p.next()
		sb.WriteString("[]")
	}
	if p.at(".") && p.peekAt(1).is(".") && p.peekAt(2).is(".") {
		p.pos += 3
		sb.WriteString("...")
	}
	return true
}

func (p *parser) qualifiedName() string {
	var sb strings.Builder
	if p.peek().Kind == TokenIdent {
		sb.WriteString(p.next().Text)
	}
	for p.at(".") && (p.peekAt(1).Kind == TokenIdent || p.peekAt(1).is("*")) {
		p.next()
		sb.WriteString("." + p.next().Text)
	}
	return sb.String()
}

// parenText consumes a balanced parenthesised group and returns the inner source text
func (p *parser) parenText() string {
	open := p.peek()
	p.skipBalanced("(", ")")
	close := p.toks[p.pos-1]
	if !close.is(")") || close.Pos <= open.End {
		return ""
	}
	return strings.TrimSpace(p.src[open.End:close.Pos])
}

// skipMethodTail skips "throws ..." and the body or terminating semicolon
func (p *parser) skipMethodTail() {
	for {
		tok := p.peek()
		switch {
		case tok.Kind == TokenEOF, tok.is("}"):
			return
		case tok.is("{"):
			p.skipBalanced("{", "}")
			return
		case tok.is(";"):
			p.next()
			return
		}
		p.next()
	}
}

// skipMember skips an unrecognized member: up to ";" or through a "{...}" block
func (p *parser) skipMember() {
	for {
		tok := p.peek()
		switch {
		case tok.Kind == TokenEOF, tok.is("}"):
			return
		case tok.is(";"):
			p.next()
			return
		case tok.is("{"):
			p.skipBalanced("{", "}")
			return
		case tok.is("("):
			p.skipBalanced("(", ")")
			continue
		}
		p.next()
	}
}

// skipInitializer skips a field initializer up to the next top-level "," or ";"
func (p *parser) skipInitializer() {
	depth := 0
	for {
		tok := p.peek()
		switch {
		case tok.Kind == TokenEOF:
			return
		case tok.is("(") || tok.is("{") || tok.is("["):
			depth++
		case tok.is(")") || tok.is("}") || tok.is("]"):
			if depth == 0 {
				return
			}
			depth--
		case (tok.is(",") || tok.is(";")) && depth == 0:
			return
		}
		p.next()
	}
}

// skipEnumConstants skips the constant list at the top of an enum body
func (p *parser) skipEnumConstants() {
	depth := 0
	for {
		tok := p.peek()
		switch {
		case tok.Kind == TokenEOF:
			return
		case tok.is("(") || tok.is("{"):
			depth++
		case tok.is(")"):
			depth--
		case tok.is("}"):
			if depth == 0 {
				return
			}
			depth--
		case tok.is(";") && depth == 0:
			p.next()
			return
		}
		p.next()
	}
}

// skipTo advances to the next occurrence of text at the current nesting level
func (p *parser) skipTo(text string) bool {
	for {
		tok := p.peek()
		if tok.Kind == TokenEOF {
			return false
		}
		if tok.is(text) {
			return true
		}
		if tok.is("(") {
			p.skipBalanced("(", ")")
			continue
		}
		p.next()
	}
}

// skipBalanced consumes an open token and everything through its matching close
func (p *parser) skipBalanced(open, close string) {
	depth := 0
	for {
		tok := p.next()
		switch {
		case tok.Kind == TokenEOF:
			return
		case tok.is(open):
			depth++
		case tok.is(close):
			depth--
			if depth == 0 {
				return
			}
		}
	}
}

func (p *parser) peek() Token {
	return p.peekAt(0)
}

func (p *parser) peekAt(offset int) Token {
	if p.pos+offset >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.pos+offset]
}

func (p *parser) next() Token {
	tok := p.peek()
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return tok
}

func (p *parser) at(text string) bool {
	return p.peek().is(text)
}

func (p *parser) accept(text string) bool {
	if p.at(text) {
		p.next()
		return true
	}
	return false
}

// GetClassLevelURL returns the class-level URL from @RequestMapping
func (jc *JavaClass) GetClassLevelURL() string {
	for _, ann := range jc.Annotations {
		if ann.Name == "RequestMapping" {
			return ann.Value()
		}
	}
	return ""
}

// HasAnnotation checks for a type-level annotation by simple name
func (jc *JavaClass) HasAnnotation(name string) bool {
	for _, ann := range jc.Annotations {
		if ann.Name == name {
			return true
		}
	}
	return false
}

// IsEntity checks if the class is a JPA entity
func (jc *JavaClass) IsEntity() bool {
	return jc.HasAnnotation("Entity")
}

// PrivateFields returns the private instance fields in declaration order
func (jc *JavaClass) PrivateFields() []Field {
	fields := []Field{}
	for _, f := range jc.Fields {
		if hasModifier(f.Modifiers, "private") && !hasModifier(f.Modifiers, "static") {
			fields = append(fields, f)
		}
	}
	return fields
}

// IsPublic reports whether the method is declared public
func (m *Method) IsPublic() bool {
	return hasModifier(m.Modifiers, "public")
}

// MappingAnnotation returns the first *Mapping annotation on the method
func (m *Method) MappingAnnotation() (Annotation, bool) {
	for _, ann := range m.Annotations {
		if strings.HasSuffix(ann.Name, "Mapping") {
			return ann, true
		}
	}
	return Annotation{}, false
}

func hasModifier(modifiers []string, want string) bool {
	for _, m := range modifiers {
		if m == want {
			return true
		}
	}
	return false
}

// TrimQuotes removes surrounding quotes from a string
func TrimQuotes(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// SplitParams splits a parameter list on commas outside generics,
// parentheses and string literals.
// Example: "@RequestParam(value = \"q\", required = false) String q, Map<String, Object> m"
// -> ["@RequestParam(value = \"q\", required = false) String q", "Map<String, Object> m"]
func SplitParams(params string) []string {
	params = strings.TrimSpace(params)
	if params == "" {
		return []string{}
	}

	result := []string{}
	var current strings.Builder
	depth := 0
	var quote rune

	for _, char := range params {
		if quote != 0 {
			current.WriteRune(char)
			if char == quote {
				quote = 0
			}
			continue
		}
		switch char {
		case '"', '\'':
			quote = char
		case '<', '(':
			depth++
		case '>', ')':
			depth--
		case ',':
			if depth == 0 {
				result = append(result, strings.TrimSpace(current.String()))
				current.Reset()
				continue
			}
		}
		current.WriteRune(char)
	}

	if last := strings.TrimSpace(current.String()); last != "" {
		result = append(result, last)
	}

	return result
}
