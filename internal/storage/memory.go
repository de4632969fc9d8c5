package storage

import (
	"context"
	"sync"

	"github.com/letsssgooo/sikenBot/internal/domain/models"
)

// MemoryStorage реализует Storage в памяти.
type MemoryStorage struct {
	teams map[string]*models.TeamModel
	mu    sync.RWMutex
}

// NewMemoryStorage создаёт новый MemoryStorage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		teams: make(map[string]*models.TeamModel),
	}
}

// SaveTeam сохраняет установку бота в команде.
func (s *MemoryStorage) SaveTeam(ctx context.Context, team *models.TeamModel) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.teams[team.TeamID] = team

	return nil
}

// GetTeam возвращает установку по ID команды.
func (s *MemoryStorage) GetTeam(ctx context.Context, teamID string) (*models.TeamModel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	team, ok := s.teams[teamID]
	if !ok {
		return nil, ErrTeamNotFound
	}

	return team, nil
}

// ListTeams возвращает все сохранённые установки.
func (s *MemoryStorage) ListTeams(ctx context.Context) ([]*models.TeamModel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	teams := make([]*models.TeamModel, 0, len(s.teams))
	for _, team := range s.teams {
		teams = append(teams, team)
	}

	return teams, nil
}

// DeleteTeam удаляет установку по ID команды.
func (s *MemoryStorage) DeleteTeam(ctx context.Context, teamID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.teams[teamID]; !ok {
		return ErrTeamNotFound
	}

	delete(s.teams, teamID)

	return nil
}
