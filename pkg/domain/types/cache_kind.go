package types

// CacheKind identifies one of the two independent cache entry families
type CacheKind string

const (
	CacheKindSuggestion  CacheKind = "suggestion"
	CacheKindApplication CacheKind = "application"
)

// AllCacheKinds returns all valid cache kinds
func AllCacheKinds() []CacheKind {
	return []CacheKind{
		CacheKindSuggestion,
		CacheKindApplication,
	}
}

// IsValid checks if the cache kind is valid
func (k CacheKind) IsValid() bool {
	switch k {
	case CacheKindSuggestion, CacheKindApplication:
		return true
	default:
		return false
	}
}

// String returns the string representation of the cache kind
func (k CacheKind) String() string {
	return string(k)
}
