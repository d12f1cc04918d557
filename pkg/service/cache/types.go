package cache

import (
	"time"
)

// Stats summarizes the persisted state of both cache kinds
type Stats struct {
	Suggestion  SuggestionStats
	Application ApplicationStats
}

// SuggestionStats summarizes the suggestion cache, split by scope kind.
// Oldest and Newest are nil when the cache is empty.
type SuggestionStats struct {
	Total       int
	Untagged    int
	TagSpecific int
	Oldest      *time.Time
	Newest      *time.Time
}

// ApplicationStats summarizes the application cache
type ApplicationStats struct {
	Total  int
	Oldest *time.Time
	Newest *time.Time
}
