package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fadedpez/flotilla/internal/config"
	"github.com/fadedpez/flotilla/internal/logging"
	"github.com/fadedpez/flotilla/pkg/board"
	"github.com/fadedpez/flotilla/pkg/discord"
	"github.com/fadedpez/flotilla/pkg/entities"
	"github.com/fadedpez/flotilla/pkg/repositories/results"
	"github.com/fadedpez/flotilla/pkg/services/tournament"
	"github.com/fadedpez/flotilla/pkg/strategies"
)

// defaultLayout is used when no board file is found so the runner works
// out of the box
var defaultLayout = []string{
	"AAA   dd  ",
	"          ",
	"B     e   ",
	"B     e   ",
	"      e   ",
	"  CC      ",
	"       ff ",
	"          ",
	"D         ",
	"        g ",
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := logging.Default
	if cfg.IsDevelopment() {
		logger = logging.NewLogger(logging.DEBUG)
	}

	baseBoard, err := board.ParseFile(cfg.BoardPath)
	if err != nil {
		logger.Warn("No board file at %s (%v), using the built-in layout", cfg.BoardPath, err)
		baseBoard, err = board.NewFromLayout(defaultLayout)
		if err != nil {
			log.Fatalf("Failed to build default board: %v", err)
		}
	}

	repo := buildRepository(cfg, logger)
	defer repo.Close()

	roster, err := buildRoster(cfg.Players)
	if err != nil {
		log.Fatalf("Failed to build roster: %v", err)
	}

	reporters := []tournament.RoundReporter{tournament.NewConsoleReporter(os.Stdout)}
	if cfg.DiscordToken != "" {
		// Posting standings only needs the REST API, not a gateway connection
		session, err := discord.NewSession(cfg.DiscordToken)
		if err != nil {
			logger.Error("Failed to create Discord session, skipping Discord reporting: %v", err)
		} else {
			reporters = append(reporters, discord.NewReporter(session, cfg.DiscordChannelID))
			logger.Info("Posting round results to Discord channel %s", cfg.DiscordChannelID)
		}
	}

	tourney, err := tournament.New(tournament.Config{
		Roster:     roster,
		Board:      baseBoard,
		Repository: repo,
		Reporters:  reporters,
		Workers:    cfg.WorkerCount,
		Logger:     logger,
	})
	if err != nil {
		log.Fatalf("Failed to create tournament: %v", err)
	}

	ctx := context.Background()
	start := time.Now()
	if err := tourney.Run(ctx); err != nil {
		log.Fatalf("Tournament failed: %v", err)
	}
	logger.Info("Tournament finished in %s", time.Since(start).Round(time.Millisecond))

	standings, err := tourney.FinalStandings(ctx)
	if err != nil {
		log.Fatalf("Failed to load final standings: %v", err)
	}
	fmt.Print(tournament.FormatRoundTable(&entities.RoundResults{
		Round:            tournament.Rounds(tournament.Schedule(roster)),
		PlayerStatistics: standings,
	}))
}

// buildRepository picks the storage backend, falling back to memory when
// SQLite cannot be initialized, and wraps it with Elasticsearch archival
// when configured
func buildRepository(cfg *config.Config, logger *logging.Logger) results.Repository {
	var repo results.Repository

	if cfg.StorageType == "sqlite" {
		dbPath := filepath.Join(cfg.DataDir, "flotilla.db")
		logger.Info("Initializing SQLite repository at %s", dbPath)
		sqliteRepo, err := results.NewSQLiteRepository(dbPath)
		if err != nil {
			logger.Error("Failed to initialize SQLite repository: %v", err)
			logger.Warn("Falling back to in-memory repository")
			repo = results.NewMemoryRepository()
		} else {
			repo = sqliteRepo
		}
	} else {
		logger.Info("Using in-memory repository (results are lost on exit)")
		repo = results.NewMemoryRepository()
	}

	if cfg.ElasticsearchURL != "" {
		esCfg := results.DefaultElasticsearchConfig()
		esCfg.URL = cfg.ElasticsearchURL
		esRepo, err := results.NewElasticsearchRepository(repo, esCfg)
		if err != nil {
			logger.Error("Failed to initialize Elasticsearch archival, continuing without it: %v", err)
		} else {
			logger.Info("Archiving results to Elasticsearch at %s", cfg.ElasticsearchURL)
			repo = esRepo
		}
	}

	return repo
}

// buildRoster turns "name:strategy" config entries into contenders
func buildRoster(players []string) ([]tournament.Contender, error) {
	roster := make([]tournament.Contender, 0, len(players))
	for _, entry := range players {
		name, kind, found := strings.Cut(entry, ":")
		if !found {
			kind = "sequential"
		}
		factory, err := strategyFactory(kind)
		if err != nil {
			return nil, fmt.Errorf("player %q: %w", name, err)
		}
		roster = append(roster, tournament.Contender{Name: name, NewStrategy: factory})
	}
	return roster, nil
}

func strategyFactory(kind string) (func(side entities.Player) strategies.Strategy, error) {
	switch kind {
	case "sequential":
		return func(side entities.Player) strategies.Strategy {
			return strategies.NewSequential(side)
		}, nil
	case "random":
		return func(side entities.Player) strategies.Strategy {
			return strategies.NewRandom(side, time.Now().UnixNano())
		}, nil
	case "quitter":
		return func(side entities.Player) strategies.Strategy {
			return strategies.NewQuitter(strategies.NewRandom(side, time.Now().UnixNano()), 10)
		}, nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", kind)
	}
}
