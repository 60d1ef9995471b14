package results

import (
	"context"
	"sync"

	"github.com/fadedpez/flotilla/pkg/entities"
)

// MemoryRepository implements Repository with in-memory storage
type MemoryRepository struct {
	mu sync.RWMutex
	// Map of player name to that player's match results
	playerResults map[string][]*entities.MatchResult
	// Map of round number to match results
	roundResults map[int][]*entities.MatchResult
	// Latest standings snapshot and the round it belongs to
	standings      []entities.PlayerStatistics
	standingsRound int
}

// NewMemoryRepository creates a new in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		playerResults: make(map[string][]*entities.MatchResult),
		roundResults:  make(map[int][]*entities.MatchResult),
	}
}

// SaveMatchResult stores a match result under both players and its round
func (r *MemoryRepository) SaveMatchResult(ctx context.Context, result *entities.MatchResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.playerResults[result.PlayerAName] = append(r.playerResults[result.PlayerAName], result)
	r.playerResults[result.PlayerBName] = append(r.playerResults[result.PlayerBName], result)
	r.roundResults[result.Round] = append(r.roundResults[result.Round], result)
	return nil
}

// GetPlayerResults retrieves every match result involving a player
func (r *MemoryRepository) GetPlayerResults(ctx context.Context, playerName string) ([]*entities.MatchResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := r.playerResults[playerName]
	if results == nil {
		return []*entities.MatchResult{}, nil
	}
	return results, nil
}

// GetRoundMatchResults retrieves every match result from one round
func (r *MemoryRepository) GetRoundMatchResults(ctx context.Context, round int) ([]*entities.MatchResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := r.roundResults[round]
	if results == nil {
		return []*entities.MatchResult{}, nil
	}
	return results, nil
}

// SaveStandings keeps the newest standings snapshot
func (r *MemoryRepository) SaveStandings(ctx context.Context, round int, standings []entities.PlayerStatistics) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if round < r.standingsRound {
		// An older round reporting late never overwrites newer standings
		return nil
	}
	r.standings = append([]entities.PlayerStatistics(nil), standings...)
	r.standingsRound = round
	return nil
}

// GetStandings retrieves the latest standings snapshot
func (r *MemoryRepository) GetStandings(ctx context.Context) ([]entities.PlayerStatistics, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]entities.PlayerStatistics(nil), r.standings...), nil
}

// Close is a no-op for memory repository since there are no resources to close
func (r *MemoryRepository) Close() error {
	return nil
}
