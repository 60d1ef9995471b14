package tournament

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fadedpez/flotilla/pkg/board"
	"github.com/fadedpez/flotilla/pkg/entities"
	"github.com/fadedpez/flotilla/pkg/repositories/results"
	mock_results "github.com/fadedpez/flotilla/pkg/repositories/results/mock"
	"github.com/fadedpez/flotilla/pkg/strategies"
)

func sequentialContender(name string) Contender {
	return Contender{
		Name: name,
		NewStrategy: func(side entities.Player) strategies.Strategy {
			return strategies.NewSequential(side)
		},
	}
}

func testBoard(t *testing.T) *board.Board {
	b, err := board.NewFromLayout([]string{
		"AA  dd",
		"      ",
		"C   e ",
	})
	require.NoError(t, err)
	return b
}

// collectingReporter records every published round
type collectingReporter struct {
	mu     sync.Mutex
	rounds []*entities.RoundResults
}

func (r *collectingReporter) ReportRound(ctx context.Context, rr *entities.RoundResults) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rounds = append(r.rounds, rr)
	return nil
}

func TestScheduleAllPairsOnce(t *testing.T) {
	roster := []Contender{
		sequentialContender("alice"),
		sequentialContender("bob"),
		sequentialContender("carol"),
		sequentialContender("dave"),
	}

	matches := Schedule(roster)

	assert.Len(t, matches, 6, "4 contenders play C(4,2) matches")
	assert.Equal(t, 3, Rounds(matches))

	pairs := make(map[string]int)
	perRound := make(map[int]map[string]bool)
	for _, m := range matches {
		a, b := m.PlayerA.Name, m.PlayerB.Name
		if a > b {
			a, b = b, a
		}
		pairs[a+"/"+b]++

		if perRound[m.Round] == nil {
			perRound[m.Round] = make(map[string]bool)
		}
		assert.False(t, perRound[m.Round][m.PlayerA.Name], "%s plays twice in round %d", a, m.Round)
		assert.False(t, perRound[m.Round][m.PlayerB.Name], "%s plays twice in round %d", b, m.Round)
		perRound[m.Round][m.PlayerA.Name] = true
		perRound[m.Round][m.PlayerB.Name] = true
	}
	assert.Len(t, pairs, 6)
	for pair, count := range pairs {
		assert.Equal(t, 1, count, "pair %s", pair)
	}
}

func TestScheduleOddRosterGetsBye(t *testing.T) {
	roster := []Contender{
		sequentialContender("alice"),
		sequentialContender("bob"),
		sequentialContender("carol"),
	}

	matches := Schedule(roster)

	assert.Len(t, matches, 3)
	assert.Equal(t, 3, Rounds(matches))
}

func TestTournamentValidation(t *testing.T) {
	_, err := New(Config{Roster: []Contender{sequentialContender("solo")}, Board: testBoard(t)})
	assert.ErrorIs(t, err, ErrRosterTooSmall)

	_, err = New(Config{Roster: []Contender{sequentialContender("a"), sequentialContender("b")}})
	assert.ErrorIs(t, err, ErrNoBoard)
}

func TestTournamentRunsAllRounds(t *testing.T) {
	roster := []Contender{
		sequentialContender("alice"),
		sequentialContender("bob"),
		sequentialContender("carol"),
		sequentialContender("dave"),
	}
	repo := results.NewMemoryRepository()
	reporter := &collectingReporter{}

	tourney, err := New(Config{
		Roster:     roster,
		Board:      testBoard(t),
		Repository: repo,
		Reporters:  []RoundReporter{reporter},
		Workers:    3,
	})
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, tourney.Run(ctx))

	// Every round published exactly once
	seen := make(map[int]int)
	for _, rr := range reporter.rounds {
		seen[rr.Round]++
	}
	assert.Len(t, seen, 3)
	for round, count := range seen {
		assert.Equal(t, 1, count, "round %d", round)
	}

	for _, name := range []string{"alice", "bob", "carol", "dave"} {
		assert.Equal(t, 3, tourney.PlayerEnlistedMatches(name))

		playerResults, err := repo.GetPlayerResults(ctx, name)
		require.NoError(t, err)
		assert.Len(t, playerResults, 3, "%s plays one match per round", name)
	}

	standings, err := tourney.FinalStandings(ctx)
	require.NoError(t, err)
	require.Len(t, standings, 4)

	totalWins, totalLosses := 0, 0
	for _, ps := range standings {
		totalWins += ps.Wins
		totalLosses += ps.Losses
	}
	// Sequential strategies never forfeit: every match has a winner
	assert.Equal(t, 6, totalWins)
	assert.Equal(t, 6, totalLosses)
}

func TestMatchPersistsBeforeRoundPublishes(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_results.NewMockRepository(ctrl)

	var saved *entities.MatchResult
	saveMatch := repo.EXPECT().
		SaveMatchResult(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, result *entities.MatchResult) {
			saved = result
		}).
		Return(nil).
		Times(1)
	// The round can only publish once its match has been persisted
	repo.EXPECT().
		SaveStandings(gomock.Any(), 1, gomock.Len(2)).
		Return(nil).
		Times(1).
		After(saveMatch)

	tourney, err := New(Config{
		Roster:     []Contender{sequentialContender("alice"), sequentialContender("bob")},
		Board:      testBoard(t),
		Repository: repo,
	})
	require.NoError(t, err)
	require.NoError(t, tourney.Run(context.Background()))

	require.NotNil(t, saved)
	assert.Equal(t, 1, saved.Round)
	assert.Equal(t, "alice", saved.PlayerAName)
	assert.Equal(t, "bob", saved.PlayerBName)
	assert.NotEmpty(t, saved.MatchID)
	assert.True(t, saved.IsWin(entities.PlayerA) || saved.IsWin(entities.PlayerB),
		"sequential players never forfeit, so somebody wins")
}

func TestRepositoryCalledOncePerMatchAndRound(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_results.NewMockRepository(ctrl)

	// 4 contenders: 6 matches across 3 rounds
	repo.EXPECT().
		SaveMatchResult(gomock.Any(), gomock.Any()).
		Return(nil).
		Times(6)
	for round := 1; round <= 3; round++ {
		repo.EXPECT().
			SaveStandings(gomock.Any(), round, gomock.Len(4)).
			Return(nil).
			Times(1)
	}

	tourney, err := New(Config{
		Roster: []Contender{
			sequentialContender("alice"),
			sequentialContender("bob"),
			sequentialContender("carol"),
			sequentialContender("dave"),
		},
		Board:      testBoard(t),
		Repository: repo,
		Workers:    3,
	})
	require.NoError(t, err)
	require.NoError(t, tourney.Run(context.Background()))
}

func TestFormatRoundTable(t *testing.T) {
	rr := &entities.RoundResults{
		Round: 2,
		PlayerStatistics: []entities.PlayerStatistics{
			{PlayerName: "alice", Wins: 2, PointsFor: 5, PointsAgainst: 1, Rating: 204},
			{PlayerName: "bob", Losses: 2, PointsFor: 1, PointsAgainst: 5, Rating: -104},
		},
	}

	table := FormatRoundTable(rr)

	assert.Contains(t, table, "Round 2 results")
	assert.Contains(t, table, "alice")
	assert.Contains(t, table, "bob")
	lines := strings.Split(strings.TrimRight(table, "\n"), "\n")
	assert.Len(t, lines, 4, "header, column row and one line per player")
}
