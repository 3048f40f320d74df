package contract

import (
	"fmt"
	"strings"

	"specforge/internal/model"
)

// DetectMode selects how the detector decides which CRUD slots to fill
type DetectMode string

const (
	// DetectTagged adds a slot only when an existing endpoint carries its tag
	DetectTagged DetectMode = "tagged"
	// DetectComplete also adds every free slot once the controller shows CRUD intent
	DetectComplete DetectMode = "complete"
)

// ParseDetectMode validates a mode name
func ParseDetectMode(s string) (DetectMode, error) {
	switch DetectMode(strings.ToLower(strings.TrimSpace(s))) {
	case DetectTagged:
		return DetectTagged, nil
	case DetectComplete, "":
		return DetectComplete, nil
	}
	return "", fmt.Errorf("unknown detect mode %q (want %q or %q)", s, DetectTagged, DetectComplete)
}

type crudSlot struct {
	tag        model.Tag
	verb       model.Verb
	path       string
	name       string
	params     string
	returnType string
}

func crudSlots(entity string) []crudSlot {
	body := fmt.Sprintf("@RequestBody %sRequest %sRequest", entity, strings.ToLower(entity))
	single := fmt.Sprintf("GlobalResponseMessage<%sResponse>", entity)

	return []crudSlot{
		{model.TagGetAll, model.VerbGet, "/all", "getAll" + entity + "s", "", fmt.Sprintf("GlobalResponseMessage<ArrayList<%sResponse>>", entity)},
		{model.TagGetByID, model.VerbGet, "/{id}", "get" + entity + "ById", "@PathVariable UUID id", single},
		{model.TagCreate, model.VerbPost, "", "create" + entity, body, single},
		{model.TagUpdate, model.VerbPut, "/{id}", "update" + entity, "@PathVariable UUID id, " + body, single},
		{model.TagDelete, model.VerbDelete, "/{id}", "delete" + entity, "@PathVariable UUID id", "GlobalResponseMessage<Boolean>"},
	}
}

// DetectMissing appends the standard CRUD endpoints a controller lacks.
// The input slice is not modified. Running it on its own output adds nothing.
func DetectMissing(endpoints []model.Endpoint, entity string, mode DetectMode) []model.Endpoint {
	result := make([]model.Endpoint, len(endpoints), len(endpoints)+5)
	copy(result, endpoints)

	occupied := make(map[string]bool, len(endpoints))
	for _, ep := range endpoints {
		occupied[ep.Key()] = true
	}

	tagged := func(tag model.Tag) bool {
		for _, ep := range endpoints {
			if ep.Tags[tag] {
				return true
			}
		}
		return false
	}

	intent := false
	for _, ep := range endpoints {
		if ep.Tags.Any(model.CRUDTags...) {
			intent = true
			break
		}
	}

	for _, slot := range crudSlots(entity) {
		key := string(slot.verb) + " " + slot.path
		if occupied[key] {
			continue
		}

		add := tagged(slot.tag)
		if mode != DetectTagged {
			add = add || intent
		}
		if !add {
			continue
		}

		result = append(result, model.Endpoint{
			Verb:        slot.verb,
			Path:        slot.path,
			Name:        slot.name,
			RawParams:   slot.params,
			ReturnType:  slot.returnType,
			Tags:        Classify(slot.name, slot.verb),
			Synthesized: true,
		})
		occupied[key] = true
	}

	return result
}
