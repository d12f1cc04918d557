package interfaces

// Repository defines the interface for cache persistence
type Repository interface {
	Suggestion() SuggestionCacheRepository
	Application() ApplicationCacheRepository

	Close() error
}
