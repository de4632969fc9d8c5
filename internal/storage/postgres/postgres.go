package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/letsssgooo/sikenBot/internal/domain/models"
	"github.com/letsssgooo/sikenBot/internal/storage"
)

type Storage struct {
	pool *pgxpool.Pool
}

func NewStorage(ctx context.Context, dsn string) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	pool, err := pgxpool.ConnectConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return &Storage{pool: pool}, nil
}

func (s *Storage) SaveTeam(ctx context.Context, team *models.TeamModel) error {
	query := `
	INSERT INTO teams (team_id, team_name, bot_token, channel, created_at)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (team_id) DO UPDATE SET team_name = $2, bot_token = $3, channel = $4
	`

	_, err := s.pool.Exec(ctx, query,
		team.TeamID, team.TeamName, team.BotToken, team.Channel, team.CreatedAt)

	return err
}

func (s *Storage) GetTeam(ctx context.Context, teamID string) (*models.TeamModel, error) {
	query := `
	SELECT id, team_id, team_name, bot_token, channel, created_at FROM teams WHERE team_id = $1
	`

	team := &models.TeamModel{}
	err := s.pool.QueryRow(ctx, query, teamID).Scan(
		&team.ID, &team.TeamID, &team.TeamName, &team.BotToken, &team.Channel, &team.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, storage.ErrTeamNotFound
	}
	if err != nil {
		return nil, err
	}

	return team, nil
}

func (s *Storage) ListTeams(ctx context.Context) ([]*models.TeamModel, error) {
	query := `
	SELECT id, team_id, team_name, bot_token, channel, created_at FROM teams
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teams []*models.TeamModel
	for rows.Next() {
		team := &models.TeamModel{}
		err = rows.Scan(
			&team.ID, &team.TeamID, &team.TeamName, &team.BotToken, &team.Channel, &team.CreatedAt)
		if err != nil {
			return nil, err
		}
		teams = append(teams, team)
	}

	return teams, rows.Err()
}

func (s *Storage) DeleteTeam(ctx context.Context, teamID string) error {
	query := `
	DELETE FROM teams WHERE team_id = $1
	`

	_, err := s.pool.Exec(ctx, query, teamID)
	return err
}
