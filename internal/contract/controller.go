package contract

import (
	"strings"

	"specforge/internal/javaparser"
	"specforge/internal/logger"
	"specforge/internal/model"
)

// ParseController extracts the class name, base route and declared endpoints.
// Endpoints are public methods with a *Mapping annotation. A duplicate
// (verb, path) keeps the first declaration.
func ParseController(src string) (string, string, []model.Endpoint, error) {
	javaClass, err := parseClassDecl(src)
	if err != nil {
		return "", "", nil, err
	}

	basePath := firstRoute(javaClass.GetClassLevelURL())
	endpoints := []model.Endpoint{}
	seen := make(map[string]bool)

	for _, method := range javaClass.Methods {
		if !method.IsPublic() {
			continue
		}
		mapping, ok := method.MappingAnnotation()
		if !ok {
			continue
		}

		verb, ok := mappingVerb(mapping)
		if !ok {
			logger.Debug("[CONTROLLER] Skipping %s.%s: no concrete verb on @%s", javaClass.Name, method.Name, mapping.Name)
			continue
		}

		endpoint := model.Endpoint{
			Verb:       verb,
			Path:       firstRoute(mapping.Value()),
			Name:       method.Name,
			RawParams:  method.Params,
			ReturnType: unwrapResponseEntity(method.ReturnType),
			Tags:       Classify(method.Name, verb),
		}

		if seen[endpoint.Key()] {
			logger.Warn("Duplicate route %s in %s, keeping first declaration", endpoint.Key(), javaClass.Name)
			continue
		}
		seen[endpoint.Key()] = true
		endpoints = append(endpoints, endpoint)
	}

	return javaClass.Name, basePath, endpoints, nil
}

// mappingVerb derives the verb from the annotation name; method= overrides it.
// A @RequestMapping without method= is not an operation.
func mappingVerb(mapping javaparser.Annotation) (model.Verb, bool) {
	if m, ok := mapping.Attributes["method"]; ok {
		m = strings.Trim(m, "{} ")
		if idx := strings.Index(m, ","); idx >= 0 {
			m = m[:idx]
		}
		m = strings.TrimPrefix(strings.TrimSpace(m), "RequestMethod.")
		return model.ParseVerb(m)
	}

	name := strings.TrimSuffix(mapping.Name, "Mapping")
	if strings.EqualFold(name, "request") {
		return "", false
	}
	return model.ParseVerb(name)
}

// firstRoute returns the first literal of a route value such as {"/a", "/b"}
func firstRoute(value string) string {
	value = strings.TrimSpace(value)
	if !strings.HasPrefix(value, "{") {
		return javaparser.TrimQuotes(value)
	}
	start := strings.Index(value, `"`)
	if start < 0 {
		return ""
	}
	end := strings.Index(value[start+1:], `"`)
	if end < 0 {
		return ""
	}
	return value[start+1 : start+1+end]
}

// unwrapResponseEntity strips a ResponseEntity<T> wrapper
func unwrapResponseEntity(returnType string) string {
	ref := javaparser.ParseTypeRef(returnType)
	if ref.SimpleName() != "ResponseEntity" || ref.Dims > 0 {
		return returnType
	}
	inner := ref.Arg(0)
	if inner == nil || inner.Name == "?" {
		return "Object"
	}
	return inner.String()
}
