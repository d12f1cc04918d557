package types

// SuggestionKind discriminates the two suggestion cache families:
// suggestions for untagged bookmarks and suggestions scoped to a single tag.
type SuggestionKind string

const (
	SuggestionKindUntagged    SuggestionKind = "untagged"
	SuggestionKindTagSpecific SuggestionKind = "tag-specific"
)

// AllSuggestionKinds returns all valid suggestion kinds
func AllSuggestionKinds() []SuggestionKind {
	return []SuggestionKind{
		SuggestionKindUntagged,
		SuggestionKindTagSpecific,
	}
}

// IsValid checks if the suggestion kind is valid
func (k SuggestionKind) IsValid() bool {
	switch k {
	case SuggestionKindUntagged, SuggestionKindTagSpecific:
		return true
	default:
		return false
	}
}

// String returns the string representation of the suggestion kind
func (k SuggestionKind) String() string {
	return string(k)
}
