package results

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/elastic/go-elasticsearch/v8"

	"github.com/fadedpez/flotilla/pkg/entities"
)

// ElasticsearchConfig holds configuration options for the Elasticsearch
// archive
type ElasticsearchConfig struct {
	URL         string
	Username    string
	Password    string
	IndexPrefix string
}

// DefaultElasticsearchConfig returns a default configuration
func DefaultElasticsearchConfig() *ElasticsearchConfig {
	return &ElasticsearchConfig{
		URL:         "http://localhost:9200",
		IndexPrefix: "flotilla",
	}
}

// ElasticsearchRepository wraps a base Repository and mirrors everything it
// saves into Elasticsearch for long-term analysis. Reads are served by the
// base repository.
type ElasticsearchRepository struct {
	baseRepo    Repository
	client      *elasticsearch.Client
	matchIndex  string
	roundsIndex string
}

// Ensure the archive keeps satisfying Repository
var _ Repository = (*ElasticsearchRepository)(nil)

// NewElasticsearchRepository creates a new Elasticsearch-backed archive
// around baseRepo
func NewElasticsearchRepository(baseRepo Repository, config *ElasticsearchConfig) (*ElasticsearchRepository, error) {
	cfg := elasticsearch.Config{
		Addresses: []string{config.URL},
	}
	if config.Username != "" && config.Password != "" {
		cfg.Username = config.Username
		cfg.Password = config.Password
	}

	client, err := elasticsearch.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("error creating Elasticsearch client: %w", err)
	}

	prefix := config.IndexPrefix
	if prefix == "" {
		prefix = "flotilla"
	}

	return &ElasticsearchRepository{
		baseRepo:    baseRepo,
		client:      client,
		matchIndex:  prefix + "-matches",
		roundsIndex: prefix + "-rounds",
	}, nil
}

// SaveMatchResult stores the result in the base repository and indexes it
func (r *ElasticsearchRepository) SaveMatchResult(ctx context.Context, result *entities.MatchResult) error {
	if err := r.baseRepo.SaveMatchResult(ctx, result); err != nil {
		return err
	}

	doc := ESMatchResult{
		MatchID:          result.MatchID,
		Round:            result.Round,
		PlayerA:          result.PlayerAName,
		PlayerB:          result.PlayerBName,
		PlayerAForfeited: result.PlayerAForfeited,
		PlayerBForfeited: result.PlayerBForfeited,
		ShipsLostByA:     result.ShipsLostByA,
		ShipsLostByB:     result.ShipsLostByB,
		ShipsLeftA:       result.ShipsLeftA,
		ShipsLeftB:       result.ShipsLeftB,
		CompletedAt:      result.CompletedAt,
	}
	return r.index(ctx, r.matchIndex, doc)
}

// GetPlayerResults delegates to the base repository
func (r *ElasticsearchRepository) GetPlayerResults(ctx context.Context, playerName string) ([]*entities.MatchResult, error) {
	return r.baseRepo.GetPlayerResults(ctx, playerName)
}

// GetRoundMatchResults delegates to the base repository
func (r *ElasticsearchRepository) GetRoundMatchResults(ctx context.Context, round int) ([]*entities.MatchResult, error) {
	return r.baseRepo.GetRoundMatchResults(ctx, round)
}

// SaveStandings stores the snapshot in the base repository and indexes the
// round document
func (r *ElasticsearchRepository) SaveStandings(ctx context.Context, round int, standings []entities.PlayerStatistics) error {
	if err := r.baseRepo.SaveStandings(ctx, round, standings); err != nil {
		return err
	}

	doc := ESRoundResults{
		Round:       round,
		PublishedAt: time.Now(),
		Standings:   make([]ESPlayerStanding, 0, len(standings)),
	}
	for i, ps := range standings {
		doc.Standings = append(doc.Standings, ESPlayerStanding{
			PlayerName:    ps.PlayerName,
			Position:      i + 1,
			PointsFor:     ps.PointsFor,
			PointsAgainst: ps.PointsAgainst,
			Wins:          ps.Wins,
			Losses:        ps.Losses,
			Rating:        ps.Rating,
		})
	}
	return r.index(ctx, r.roundsIndex, doc)
}

// GetStandings delegates to the base repository
func (r *ElasticsearchRepository) GetStandings(ctx context.Context) ([]entities.PlayerStatistics, error) {
	return r.baseRepo.GetStandings(ctx)
}

// Close closes the base repository
func (r *ElasticsearchRepository) Close() error {
	return r.baseRepo.Close()
}

func (r *ElasticsearchRepository) index(ctx context.Context, indexName string, doc interface{}) error {
	jsonData, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("error marshaling document: %w", err)
	}

	res, err := r.client.Index(
		indexName,
		bytes.NewReader(jsonData),
		r.client.Index.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("error indexing document: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error indexing document: %s", res.String())
	}
	return nil
}
