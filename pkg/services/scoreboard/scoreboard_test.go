package scoreboard

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fadedpez/flotilla/pkg/entities"
)

func newTestScoreboard() *Scoreboard {
	return NewScoreboard([]string{"alice", "bob", "carol", "dave"})
}

func sweepResult(round int, winner, loser string, ships int) *entities.MatchResult {
	return &entities.MatchResult{
		Round:        round,
		PlayerAName:  winner,
		PlayerBName:  loser,
		ShipsLostByB: ships,
		ShipsLeftA:   ships,
		ShipsLeftB:   0,
	}
}

func TestRegisterMatchCountsEnlistments(t *testing.T) {
	s := newTestScoreboard()

	s.RegisterMatch("alice", "bob", 1)
	s.RegisterMatch("alice", "carol", 1)

	assert.Equal(t, 2, s.PlayerEnlistedMatches("alice"))
	assert.Equal(t, 1, s.PlayerEnlistedMatches("bob"))
	assert.Equal(t, 1, s.PlayerEnlistedMatches("carol"))
	assert.Zero(t, s.PlayerEnlistedMatches("dave"))
}

func TestSingleMatchRoundPublishesUpdatedStatistics(t *testing.T) {
	s := newTestScoreboard()
	s.RegisterMatch("alice", "bob", 1)

	s.UpdateWithGameResults(sweepResult(1, "alice", "bob", 3), "alice", "bob")

	s.WaitOnRoundResults()
	rounds := s.DrainRoundResults()
	require.Len(t, rounds, 1)
	require.Equal(t, 1, rounds[0].Round)
	require.Len(t, rounds[0].PlayerStatistics, 4)

	top := rounds[0].PlayerStatistics[0]
	assert.Equal(t, "alice", top.PlayerName)
	assert.Equal(t, 1, top.Wins)
	assert.Equal(t, 3, top.PointsFor)
	assert.Greater(t, top.Rating, 0.0, "winner's rating strictly above the starting value")

	var bob entities.PlayerStatistics
	for _, ps := range rounds[0].PlayerStatistics {
		if ps.PlayerName == "bob" {
			bob = ps
		}
	}
	assert.Equal(t, 1, bob.Losses)
	assert.Equal(t, 3, bob.PointsAgainst)
}

func TestRoundPublishesOnlyWhenAllMatchesReported(t *testing.T) {
	s := newTestScoreboard()
	s.RegisterMatch("alice", "bob", 2)
	s.RegisterMatch("carol", "dave", 2)
	s.RegisterMatch("alice", "carol", 2)

	s.UpdateWithGameResults(sweepResult(2, "alice", "bob", 1), "alice", "bob")
	s.UpdateWithGameResults(sweepResult(2, "carol", "dave", 1), "carol", "dave")

	assert.Empty(t, s.DrainRoundResults(), "round 2 must not publish after two of three matches")

	s.UpdateWithGameResults(sweepResult(2, "alice", "carol", 1), "alice", "carol")

	s.WaitOnRoundResults()
	rounds := s.DrainRoundResults()
	require.Len(t, rounds, 1)
	assert.Equal(t, 2, rounds[0].Round)
}

func TestDoubleForfeitZeroDeltas(t *testing.T) {
	s := newTestScoreboard()
	s.RegisterMatch("alice", "bob", 1)

	result := &entities.MatchResult{
		Round:            1,
		PlayerAName:      "alice",
		PlayerBName:      "bob",
		PlayerAForfeited: true,
		PlayerBForfeited: true,
		ShipsLeftA:       3,
		ShipsLeftB:       3,
	}
	s.UpdateWithGameResults(result, "alice", "bob")

	s.WaitOnRoundResults()
	rounds := s.DrainRoundResults()
	require.Len(t, rounds, 1)
	for _, ps := range rounds[0].PlayerStatistics {
		assert.Zero(t, ps.PointsFor)
		assert.Zero(t, ps.PointsAgainst)
		assert.Zero(t, ps.Wins)
		if ps.PlayerName == "alice" || ps.PlayerName == "bob" {
			assert.Equal(t, 1, ps.Losses)
		}
	}
}

func TestStatisticsAccumulateAcrossRounds(t *testing.T) {
	s := newTestScoreboard()
	s.RegisterMatch("alice", "bob", 1)
	s.RegisterMatch("alice", "bob", 2)

	s.UpdateWithGameResults(sweepResult(1, "alice", "bob", 2), "alice", "bob")
	s.UpdateWithGameResults(sweepResult(2, "alice", "bob", 3), "alice", "bob")

	s.WaitOnRoundResults()
	rounds := s.DrainRoundResults()
	require.Len(t, rounds, 2)

	final := rounds[len(rounds)-1]
	top := final.PlayerStatistics[0]
	assert.Equal(t, "alice", top.PlayerName)
	assert.Equal(t, 2, top.Wins)
	assert.Equal(t, 5, top.PointsFor)
}

func TestRatingTiesKeepRosterOrder(t *testing.T) {
	s := newTestScoreboard()
	s.RegisterMatch("alice", "bob", 1)

	result := &entities.MatchResult{
		Round:            1,
		PlayerAName:      "alice",
		PlayerBName:      "bob",
		PlayerAForfeited: true,
		PlayerBForfeited: true,
		ShipsLeftA:       1,
		ShipsLeftB:       1,
	}
	s.UpdateWithGameResults(result, "alice", "bob")

	s.WaitOnRoundResults()
	rounds := s.DrainRoundResults()
	require.Len(t, rounds, 1)

	// Everybody is tied on rating, so roster order must survive
	names := make([]string, 0, 4)
	for _, ps := range rounds[0].PlayerStatistics {
		names = append(names, ps.PlayerName)
	}
	ratings := make(map[string]float64)
	for _, ps := range rounds[0].PlayerStatistics {
		ratings[ps.PlayerName] = ps.Rating
	}
	assert.Equal(t, ratings["carol"], ratings["dave"])
	assert.Equal(t, []string{"carol", "dave", "alice", "bob"}, names)
}

func TestWaitOnRoundResultsBlocksUntilPublish(t *testing.T) {
	s := newTestScoreboard()
	s.RegisterMatch("alice", "bob", 1)

	woke := make(chan struct{})
	go func() {
		s.WaitOnRoundResults()
		close(woke)
	}()

	select {
	case <-woke:
		t.Fatal("WaitOnRoundResults returned before any round was published")
	case <-time.After(50 * time.Millisecond):
	}

	s.UpdateWithGameResults(sweepResult(1, "alice", "bob", 1), "alice", "bob")

	select {
	case <-woke:
	case <-time.After(2 * time.Second):
		t.Fatal("WaitOnRoundResults missed the publish")
	}

	assert.Len(t, s.DrainRoundResults(), 1)
}

func TestWaitDoesNotMissPublishBetweenDrainAndWait(t *testing.T) {
	s := newTestScoreboard()
	s.RegisterMatch("alice", "bob", 1)
	s.RegisterMatch("alice", "bob", 2)

	s.UpdateWithGameResults(sweepResult(1, "alice", "bob", 1), "alice", "bob")
	s.WaitOnRoundResults()
	assert.Len(t, s.DrainRoundResults(), 1)

	// Publish lands while no consumer is waiting
	s.UpdateWithGameResults(sweepResult(2, "alice", "bob", 1), "alice", "bob")

	woke := make(chan struct{})
	go func() {
		s.WaitOnRoundResults()
		close(woke)
	}()

	select {
	case <-woke:
	case <-time.After(2 * time.Second):
		t.Fatal("wait must return immediately when the queue is already non-empty")
	}
}

func TestConcurrentUpdatesPublishEachRoundExactlyOnce(t *testing.T) {
	const rounds = 20
	const matchesPerRound = 8

	players := make([]string, 2*matchesPerRound)
	for i := range players {
		players[i] = fmt.Sprintf("player%d", i)
	}
	s := NewScoreboard(players)

	for round := 1; round <= rounds; round++ {
		for m := 0; m < matchesPerRound; m++ {
			s.RegisterMatch(players[2*m], players[2*m+1], round)
		}
	}

	// Reporter drains until every round came through
	published := make(map[int]int)
	done := make(chan struct{})
	go func() {
		defer close(done)
		drained := 0
		for drained < rounds {
			s.WaitOnRoundResults()
			for _, rr := range s.DrainRoundResults() {
				published[rr.Round]++
				drained++
			}
		}
	}()

	var wg sync.WaitGroup
	for round := 1; round <= rounds; round++ {
		for m := 0; m < matchesPerRound; m++ {
			wg.Add(1)
			go func(round, m int) {
				defer wg.Done()
				winner, loser := players[2*m], players[2*m+1]
				s.UpdateWithGameResults(sweepResult(round, winner, loser, 1), winner, loser)
			}(round, m)
		}
	}
	wg.Wait()

	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("reporter never saw every round")
	}

	for round := 1; round <= rounds; round++ {
		assert.Equal(t, 1, published[round], "round %d must publish exactly once", round)
	}

	// Every winner took every one of its matches: totals are additive
	for m := 0; m < matchesPerRound; m++ {
		assert.Equal(t, rounds, s.PlayerEnlistedMatches(players[2*m]))
	}
	final := s.snapshotRound(rounds)
	for _, ps := range final.PlayerStatistics {
		assert.Equal(t, rounds, ps.Wins+ps.Losses)
	}
}
