package contract

import (
	"regexp"

	"specforge/internal/model"
)

type classRule struct {
	tag     model.Tag
	pattern *regexp.Regexp
	verbs   []model.Verb
}

var classRules = []classRule{
	{model.TagGetAll, regexp.MustCompile(`(?i)^(?:getAll|findAll|listAll|retrieveAll|fetchAll|getAllEntities|getThemAll)`), []model.Verb{model.VerbGet}},
	{model.TagGetByID, regexp.MustCompile(`(?i)^(?:get|find|retrieve|fetch).*(?:ById|WithId|ForId)$`), []model.Verb{model.VerbGet}},
	{model.TagCreate, regexp.MustCompile(`(?i)^(?:create|add|insert|save|store|register|post)`), []model.Verb{model.VerbPost, model.VerbPut}},
	{model.TagUpdate, regexp.MustCompile(`(?i)^(?:update|edit|modify|change|alter|amend|revise)`), []model.Verb{model.VerbPut, model.VerbPatch}},
	{model.TagDelete, regexp.MustCompile(`(?i)^(?:delete|remove|erase|destroy|eliminate)`), []model.Verb{model.VerbDelete}},
	{model.TagSearch, regexp.MustCompile(`(?i)^(?:search|find|query|filter|lookup|seek|browse)`), []model.Verb{model.VerbGet}},
}

// Classify labels a method with CRUD-intent tags from its name and verb.
// The result always carries every tag; unmatched names are all false.
func Classify(name string, verb model.Verb) model.Tags {
	tags := make(model.Tags, len(classRules))
	for _, rule := range classRules {
		tags[rule.tag] = verbAllowed(verb, rule.verbs) && rule.pattern.MatchString(name)
	}
	return tags
}

func verbAllowed(verb model.Verb, allowed []model.Verb) bool {
	for _, v := range allowed {
		if v == verb {
			return true
		}
	}
	return false
}
