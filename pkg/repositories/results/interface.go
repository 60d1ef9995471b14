package results

import (
	"context"

	"github.com/fadedpez/flotilla/pkg/entities"
)

//go:generate mockgen -source=$GOFILE -destination=mock/mock.go -package=mock_results

// Repository defines storage operations for match results and tournament
// standings
type Repository interface {
	// Match results
	SaveMatchResult(ctx context.Context, result *entities.MatchResult) error
	GetPlayerResults(ctx context.Context, playerName string) ([]*entities.MatchResult, error)
	GetRoundMatchResults(ctx context.Context, round int) ([]*entities.MatchResult, error)

	// Standings snapshots, one per published round
	SaveStandings(ctx context.Context, round int, standings []entities.PlayerStatistics) error
	GetStandings(ctx context.Context) ([]entities.PlayerStatistics, error)

	// Close closes any resources used by the repository
	Close() error
}
