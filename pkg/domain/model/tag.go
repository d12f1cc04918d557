package model

import (
	"github.com/secmon-lab/mnemosyne/pkg/domain/types"
)

// TagDefinition describes one tag of the operator's vocabulary. The
// description is handed to the AI collaborator verbatim so it can judge
// whether the tag applies.
type TagDefinition struct {
	Name        types.TagName
	Description string
}

// TagVocabulary is the full set of tag definitions loaded from configuration
type TagVocabulary struct {
	defs  []TagDefinition
	index map[types.TagName]*TagDefinition
}

// NewTagVocabulary builds a vocabulary from definitions
func NewTagVocabulary(defs []TagDefinition) *TagVocabulary {
	v := &TagVocabulary{
		defs:  defs,
		index: make(map[types.TagName]*TagDefinition, len(defs)),
	}
	for i := range v.defs {
		v.index[v.defs[i].Name] = &v.defs[i]
	}
	return v
}

// List returns all tag definitions in configuration order
func (v *TagVocabulary) List() []TagDefinition {
	return v.defs
}

// Lookup returns the definition for a tag name, or nil if undefined
func (v *TagVocabulary) Lookup(name types.TagName) *TagDefinition {
	return v.index[name]
}

// Names returns all defined tag names in configuration order
func (v *TagVocabulary) Names() []types.TagName {
	names := make([]types.TagName, len(v.defs))
	for i, d := range v.defs {
		names[i] = d.Name
	}
	return names
}
