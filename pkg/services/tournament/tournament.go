package tournament

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/fadedpez/flotilla/internal/logging"
	"github.com/fadedpez/flotilla/pkg/board"
	"github.com/fadedpez/flotilla/pkg/entities"
	"github.com/fadedpez/flotilla/pkg/repositories/results"
	"github.com/fadedpez/flotilla/pkg/services/match"
	"github.com/fadedpez/flotilla/pkg/services/scoreboard"
	"github.com/fadedpez/flotilla/pkg/visualizer"
)

var (
	ErrRosterTooSmall = errors.New("tournament needs at least two contenders")
	ErrNoBoard        = errors.New("tournament needs a base board")
)

const defaultWorkers = 4

// RoundReporter consumes one published round
type RoundReporter interface {
	ReportRound(ctx context.Context, rr *entities.RoundResults) error
}

// Config wires a tournament together
type Config struct {
	Roster     []Contender
	Board      *board.Board
	Repository results.Repository
	Reporters  []RoundReporter
	// Workers bounds how many matches run concurrently; defaults to 4
	Workers int
	// NewVisualizer builds the per-match visualizer; defaults to silent
	NewVisualizer func() visualizer.Visualizer
	Logger        *logging.Logger
}

// Tournament runs a full round-robin: matches execute concurrently on a
// bounded worker pool, every finished match reports into the shared
// scoreboard, and a reporter goroutine drains published rounds as they
// complete.
type Tournament struct {
	roster        []Contender
	baseBoard     *board.Board
	repo          results.Repository
	reporters     []RoundReporter
	workers       int
	newVisualizer func() visualizer.Visualizer
	logger        *logging.Logger
	score         *scoreboard.Scoreboard
}

// New validates the configuration and creates a tournament
func New(cfg Config) (*Tournament, error) {
	if len(cfg.Roster) < 2 {
		return nil, ErrRosterTooSmall
	}
	if cfg.Board == nil {
		return nil, ErrNoBoard
	}

	repo := cfg.Repository
	if repo == nil {
		repo = results.NewMemoryRepository()
	}
	workers := cfg.Workers
	if workers < 1 {
		workers = defaultWorkers
	}
	newVisualizer := cfg.NewVisualizer
	if newVisualizer == nil {
		newVisualizer = func() visualizer.Visualizer { return visualizer.NewSilent() }
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default
	}

	names := make([]string, 0, len(cfg.Roster))
	for _, c := range cfg.Roster {
		names = append(names, c.Name)
	}

	return &Tournament{
		roster:        cfg.Roster,
		baseBoard:     cfg.Board,
		repo:          repo,
		reporters:     cfg.Reporters,
		workers:       workers,
		newVisualizer: newVisualizer,
		logger:        logger,
		score:         scoreboard.NewScoreboard(names),
	}, nil
}

// Run plays the whole schedule and blocks until every round has been
// published and reported. Matches run to natural completion; ctx only
// scopes repository and reporter calls.
func (t *Tournament) Run(ctx context.Context) error {
	matches := Schedule(t.roster)
	totalRounds := Rounds(matches)

	// Registration is a single-threaded setup phase: it must be complete
	// before the first match goroutine starts.
	for _, m := range matches {
		t.score.RegisterMatch(m.PlayerA.Name, m.PlayerB.Name, m.Round)
	}
	t.logger.Info("scheduled %d matches across %d rounds for %d contenders",
		len(matches), totalRounds, len(t.roster))

	var reporterWG sync.WaitGroup
	reporterWG.Add(1)
	go func() {
		defer reporterWG.Done()
		t.reportRounds(ctx, totalRounds)
	}()

	jobs := make(chan Match)
	var workerWG sync.WaitGroup
	for w := 0; w < t.workers; w++ {
		workerWG.Add(1)
		go func() {
			defer workerWG.Done()
			for m := range jobs {
				t.runMatch(ctx, m)
			}
		}()
	}

	for _, m := range matches {
		jobs <- m
	}
	close(jobs)

	workerWG.Wait()
	reporterWG.Wait()
	return nil
}

// PlayerEnlistedMatches exposes the scoreboard's registration count
func (t *Tournament) PlayerEnlistedMatches(player string) int {
	return t.score.PlayerEnlistedMatches(player)
}

// FinalStandings returns the standings persisted after the last round
func (t *Tournament) FinalStandings(ctx context.Context) ([]entities.PlayerStatistics, error) {
	return t.repo.GetStandings(ctx)
}

// runMatch plays one match on a private clone of the base board and folds
// the result into the scoreboard
func (t *Tournament) runMatch(ctx context.Context, m Match) {
	b := t.baseBoard.Clone()
	playerA := m.PlayerA.NewStrategy(entities.PlayerA)
	playerB := m.PlayerB.NewStrategy(entities.PlayerB)

	engine := match.NewEngine(b, playerA, playerB, m.PlayerA.Name, m.PlayerB.Name, m.Round, t.newVisualizer())
	result := engine.Run()

	if err := t.repo.SaveMatchResult(ctx, result); err != nil {
		t.logger.Error("failed to save match %s vs %s: %v", m.PlayerA.Name, m.PlayerB.Name, err)
	}

	t.score.UpdateWithGameResults(result, m.PlayerA.Name, m.PlayerB.Name)
}

// reportRounds drains the scoreboard until every scheduled round has been
// published, persisting and reporting each exactly once
func (t *Tournament) reportRounds(ctx context.Context, totalRounds int) {
	drained := 0
	for drained < totalRounds {
		t.score.WaitOnRoundResults()
		for _, rr := range t.score.DrainRoundResults() {
			drained++
			if err := t.repo.SaveStandings(ctx, rr.Round, rr.PlayerStatistics); err != nil {
				t.logger.Error("failed to save standings for round %d: %v", rr.Round, err)
			}
			for _, reporter := range t.reporters {
				if err := reporter.ReportRound(ctx, rr); err != nil {
					t.logger.Error("reporter failed for round %d: %v", rr.Round, err)
				}
			}
		}
	}
}

// String describes the tournament shape, mostly for logs
func (t *Tournament) String() string {
	return fmt.Sprintf("round-robin over %d contenders, %d workers", len(t.roster), t.workers)
}
