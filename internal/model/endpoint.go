package model

import "strings"

// Verb is a lowercase HTTP method as it appears in contract documents
type Verb string

const (
	VerbGet    Verb = "get"
	VerbPost   Verb = "post"
	VerbPut    Verb = "put"
	VerbPatch  Verb = "patch"
	VerbDelete Verb = "delete"
)

// ParseVerb maps a verb token ("GET", "Post", "delete") to a Verb
func ParseVerb(s string) (Verb, bool) {
	switch Verb(strings.ToLower(strings.TrimSpace(s))) {
	case VerbGet:
		return VerbGet, true
	case VerbPost:
		return VerbPost, true
	case VerbPut:
		return VerbPut, true
	case VerbPatch:
		return VerbPatch, true
	case VerbDelete:
		return VerbDelete, true
	}
	return "", false
}

// Tag is a CRUD-intent label attached to an endpoint
type Tag string

const (
	TagGetAll  Tag = "is_get_all"
	TagGetByID Tag = "is_get_by_id"
	TagCreate  Tag = "is_create"
	TagUpdate  Tag = "is_update"
	TagDelete  Tag = "is_delete"
	TagSearch  Tag = "is_search"
)

// AllTags lists every tag in classification order
var AllTags = []Tag{TagGetAll, TagGetByID, TagCreate, TagUpdate, TagDelete, TagSearch}

// CRUDTags are the tags that correspond to a standard CRUD slot
var CRUDTags = []Tag{TagGetAll, TagGetByID, TagCreate, TagUpdate, TagDelete}

// Tags maps every tag to whether it applies
type Tags map[Tag]bool

// Any reports whether at least one of the given tags is set
func (t Tags) Any(tags ...Tag) bool {
	for _, tag := range tags {
		if t[tag] {
			return true
		}
	}
	return false
}

// Endpoint is one operation of a controller, declared or synthesized
type Endpoint struct {
	Verb        Verb   // HTTP verb
	Path        string // Route relative to the controller base path
	Name        string // Java method name
	RawParams   string // Parameter list text between the parentheses
	ReturnType  string // Return-type expression with ResponseEntity unwrapped
	Tags        Tags   // Classifier output
	Synthesized bool   // Added by the detector rather than declared
}

// Key returns the (verb, path) uniqueness key
func (e Endpoint) Key() string {
	return string(e.Verb) + " " + e.Path
}
