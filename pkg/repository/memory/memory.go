package memory

import (
	"github.com/secmon-lab/mnemosyne/pkg/domain/interfaces"
)

// Repository is an alias for Memory to match the pattern
type Repository = Memory

type Memory struct {
	suggestion  *suggestionRepository
	application *applicationRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		suggestion:  newSuggestionRepository(),
		application: newApplicationRepository(),
	}
}

func (m *Memory) Suggestion() interfaces.SuggestionCacheRepository {
	return m.suggestion
}

func (m *Memory) Application() interfaces.ApplicationCacheRepository {
	return m.application
}

func (m *Memory) Close() error {
	return nil
}
