package contract

import (
	"specforge/internal/javaparser"
)

// FieldDecl is one private field of a data class
type FieldDecl struct {
	Name     string
	TypeExpr string    // Declared type as written
	Type     FieldType // Normalized type
}

// ParseClass extracts the class name and its private fields in declaration order
func ParseClass(src string) (string, []FieldDecl, error) {
	javaClass, err := parseClassDecl(src)
	if err != nil {
		return "", nil, err
	}

	fields := []FieldDecl{}
	for _, f := range javaClass.PrivateFields() {
		fields = append(fields, FieldDecl{
			Name:     f.Name,
			TypeExpr: f.Type,
			Type:     NormalizeType(f.Type),
		})
	}
	return javaClass.Name, fields, nil
}

// parseClassDecl parses src and requires the first type to be a class
func parseClassDecl(src string) (*javaparser.JavaClass, error) {
	javaClass, err := javaparser.ParseJavaFile(src)
	if err != nil {
		return nil, err
	}
	if javaClass.Kind != "class" {
		return nil, &javaparser.ParseError{Msg: "expected a class declaration, found " + javaClass.Kind + " " + javaClass.Name}
	}
	return javaClass, nil
}
