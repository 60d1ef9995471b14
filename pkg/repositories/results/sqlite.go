package results

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fadedpez/flotilla/pkg/entities"
	_ "github.com/mattn/go-sqlite3"
)

// SQLite table schemas
const (
	createMatchResultsTableSQL = `
	CREATE TABLE IF NOT EXISTS match_results (
		id TEXT PRIMARY KEY,
		round INTEGER NOT NULL,
		player_a TEXT NOT NULL,
		player_b TEXT NOT NULL,
		player_a_forfeited BOOLEAN NOT NULL,
		player_b_forfeited BOOLEAN NOT NULL,
		ships_lost_by_a INTEGER NOT NULL,
		ships_lost_by_b INTEGER NOT NULL,
		ships_left_a INTEGER NOT NULL,
		ships_left_b INTEGER NOT NULL,
		completed_at TIMESTAMP NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_match_results_round ON match_results(round);
	CREATE INDEX IF NOT EXISTS idx_match_results_player_a ON match_results(player_a);
	CREATE INDEX IF NOT EXISTS idx_match_results_player_b ON match_results(player_b)`

	createStandingsTableSQL = `
	CREATE TABLE IF NOT EXISTS standings (
		player_name TEXT PRIMARY KEY,
		round INTEGER NOT NULL,
		points_for INTEGER NOT NULL,
		points_against INTEGER NOT NULL,
		wins INTEGER NOT NULL,
		losses INTEGER NOT NULL,
		rating REAL NOT NULL,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`
)

// SQLiteRepository implements the Repository interface using SQLite
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository creates a new SQLite repository, creating the
// database file and schema if needed
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	// Ensure the directory exists
	dbDir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, fmt.Errorf("error creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	for _, schema := range []string{createMatchResultsTableSQL, createStandingsTableSQL} {
		if _, err := db.Exec(schema); err != nil {
			db.Close()
			return nil, fmt.Errorf("error creating schema: %w", err)
		}
	}

	return &SQLiteRepository{db: db}, nil
}

// SaveMatchResult stores one finished match
func (r *SQLiteRepository) SaveMatchResult(ctx context.Context, result *entities.MatchResult) error {
	query := `
		INSERT INTO match_results (
			id, round, player_a, player_b,
			player_a_forfeited, player_b_forfeited,
			ships_lost_by_a, ships_lost_by_b, ships_left_a, ships_left_b,
			completed_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		result.MatchID, result.Round, result.PlayerAName, result.PlayerBName,
		result.PlayerAForfeited, result.PlayerBForfeited,
		result.ShipsLostByA, result.ShipsLostByB, result.ShipsLeftA, result.ShipsLeftB,
		result.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save match result: %w", err)
	}
	return nil
}

// GetPlayerResults retrieves every match result involving a player
func (r *SQLiteRepository) GetPlayerResults(ctx context.Context, playerName string) ([]*entities.MatchResult, error) {
	query := `
		SELECT id, round, player_a, player_b,
		       player_a_forfeited, player_b_forfeited,
		       ships_lost_by_a, ships_lost_by_b, ships_left_a, ships_left_b,
		       completed_at
		FROM match_results
		WHERE player_a = ? OR player_b = ?
		ORDER BY round, completed_at
	`
	return r.queryMatchResults(ctx, query, playerName, playerName)
}

// GetRoundMatchResults retrieves every match result from one round
func (r *SQLiteRepository) GetRoundMatchResults(ctx context.Context, round int) ([]*entities.MatchResult, error) {
	query := `
		SELECT id, round, player_a, player_b,
		       player_a_forfeited, player_b_forfeited,
		       ships_lost_by_a, ships_lost_by_b, ships_left_a, ships_left_b,
		       completed_at
		FROM match_results
		WHERE round = ?
		ORDER BY completed_at
	`
	return r.queryMatchResults(ctx, query, round)
}

func (r *SQLiteRepository) queryMatchResults(ctx context.Context, query string, args ...interface{}) ([]*entities.MatchResult, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query match results: %w", err)
	}
	defer rows.Close()

	var results []*entities.MatchResult
	for rows.Next() {
		var result entities.MatchResult
		if err := rows.Scan(
			&result.MatchID, &result.Round, &result.PlayerAName, &result.PlayerBName,
			&result.PlayerAForfeited, &result.PlayerBForfeited,
			&result.ShipsLostByA, &result.ShipsLostByB, &result.ShipsLeftA, &result.ShipsLeftB,
			&result.CompletedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan match result: %w", err)
		}
		results = append(results, &result)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating match results: %w", err)
	}
	return results, nil
}

// SaveStandings upserts the standings snapshot for a published round.
// All players are written in one transaction so readers never see a
// half-applied round.
func (r *SQLiteRepository) SaveStandings(ctx context.Context, round int, standings []entities.PlayerStatistics) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO standings (player_name, round, points_for, points_against, wins, losses, rating, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(player_name) DO UPDATE SET
			round = excluded.round,
			points_for = excluded.points_for,
			points_against = excluded.points_against,
			wins = excluded.wins,
			losses = excluded.losses,
			rating = excluded.rating,
			updated_at = CURRENT_TIMESTAMP
		WHERE excluded.round >= standings.round
	`
	for _, ps := range standings {
		if _, err := tx.ExecContext(ctx, query,
			ps.PlayerName, round, ps.PointsFor, ps.PointsAgainst, ps.Wins, ps.Losses, ps.Rating,
		); err != nil {
			return fmt.Errorf("failed to save standings for %s: %w", ps.PlayerName, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit standings: %w", err)
	}
	return nil
}

// GetStandings retrieves the latest standings snapshot ordered by rating
func (r *SQLiteRepository) GetStandings(ctx context.Context) ([]entities.PlayerStatistics, error) {
	query := `
		SELECT player_name, points_for, points_against, wins, losses, rating
		FROM standings
		ORDER BY rating DESC, player_name
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query standings: %w", err)
	}
	defer rows.Close()

	var standings []entities.PlayerStatistics
	for rows.Next() {
		var ps entities.PlayerStatistics
		if err := rows.Scan(&ps.PlayerName, &ps.PointsFor, &ps.PointsAgainst, &ps.Wins, &ps.Losses, &ps.Rating); err != nil {
			return nil, fmt.Errorf("failed to scan standings: %w", err)
		}
		standings = append(standings, ps)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating standings: %w", err)
	}
	return standings, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}
