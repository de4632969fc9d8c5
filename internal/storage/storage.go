package storage

import (
	"context"
	"errors"

	"github.com/letsssgooo/sikenBot/internal/domain/models"
)

// Storage определяет интерфейс для хранения установок бота в командах.
type Storage interface {
	// SaveTeam сохраняет установку бота в команде.
	SaveTeam(ctx context.Context, team *models.TeamModel) error

	// GetTeam возвращает установку по ID команды.
	GetTeam(ctx context.Context, teamID string) (*models.TeamModel, error)

	// ListTeams возвращает все сохранённые установки.
	ListTeams(ctx context.Context) ([]*models.TeamModel, error)

	// DeleteTeam удаляет установку по ID команды.
	DeleteTeam(ctx context.Context, teamID string) error
}

// Ошибки хранилища
var ErrTeamNotFound = errors.New("team not found")
