package scoreboard

import (
	"sort"
	"sync"

	"github.com/fadedpez/flotilla/pkg/entities"
)

// roundTracker accumulates one round's progress: how many matches the
// schedule put in the round and how many have reported a result
type roundTracker struct {
	scheduled int
	reported  int
}

// Scoreboard keeps the live tournament score. It assumes all player names
// were handed to NewScoreboard and does not validate them.
//
// Two independent locks guard its state: scoreMu protects the statistics
// and registration maps, roundMu protects round tracking and the finished
// round queue together with its condition variable. A match thread
// updating a still-running round therefore never blocks a reporter
// draining an already finished one.
type Scoreboard struct {
	scoreMu           sync.Mutex
	score             map[string]entities.PlayerStatistics
	registeredMatches map[string]int
	playerOrder       []string

	roundMu       sync.Mutex
	roundCond     *sync.Cond
	trackedRounds map[int]*roundTracker
	roundResults  []*entities.RoundResults
}

// NewScoreboard creates a scoreboard for the given roster. The roster order
// is the tie-break order for equal ratings in published rounds.
func NewScoreboard(players []string) *Scoreboard {
	s := &Scoreboard{
		score:             make(map[string]entities.PlayerStatistics, len(players)),
		registeredMatches: make(map[string]int, len(players)),
		playerOrder:       append([]string(nil), players...),
		trackedRounds:     make(map[int]*roundTracker),
	}
	s.roundCond = sync.NewCond(&s.roundMu)

	for _, player := range players {
		s.score[player] = entities.NewPlayerStatistics(player)
		s.registeredMatches[player] = 0
	}
	return s
}

// RegisterMatch enlists both players for one match in the given round.
// Not safe for concurrent use: registration is a single-threaded setup
// phase that must finish before any match goroutine starts.
func (s *Scoreboard) RegisterMatch(playerA, playerB string, round int) {
	s.registeredMatches[playerA]++
	s.registeredMatches[playerB]++

	tracker, ok := s.trackedRounds[round]
	if !ok {
		tracker = &roundTracker{}
		s.trackedRounds[round] = tracker
	}
	tracker.scheduled++
}

// PlayerEnlistedMatches returns how many matches the player is enlisted in.
// Safe for concurrent use.
func (s *Scoreboard) PlayerEnlistedMatches(player string) int {
	s.scoreMu.Lock()
	defer s.scoreMu.Unlock()
	return s.registeredMatches[player]
}

// UpdateWithGameResults folds one finished match into the score. Safe for
// concurrent use by any number of finishing match goroutines; updates to
// the same player are serialized by the score lock and applied
// read-modify-replace, so they are additive whichever match finishes first.
//
// The thread whose update completes its round's count publishes that
// round's results exactly once.
func (s *Scoreboard) UpdateWithGameResults(result *entities.MatchResult, playerAName, playerBName string) {
	// Deltas are computed outside both locks
	aPointsFor := result.PointsFor(entities.PlayerA)
	aPointsAgainst := result.PointsAgainst(entities.PlayerA)
	bPointsFor := result.PointsFor(entities.PlayerB)
	bPointsAgainst := result.PointsAgainst(entities.PlayerB)

	s.scoreMu.Lock()
	s.score[playerAName] = s.score[playerAName].UpdateStatistics(
		aPointsFor, aPointsAgainst, result.IsWin(entities.PlayerA), result.IsLose(entities.PlayerA))
	s.score[playerBName] = s.score[playerBName].UpdateStatistics(
		bPointsFor, bPointsAgainst, result.IsWin(entities.PlayerB), result.IsLose(entities.PlayerB))
	s.scoreMu.Unlock()

	// Increment-and-compare under the round lock: only the match that
	// completes the count sees finished, so a round cannot publish twice.
	s.roundMu.Lock()
	tracker := s.trackedRounds[result.Round]
	tracker.reported++
	finished := tracker.reported == tracker.scheduled
	if finished {
		delete(s.trackedRounds, result.Round)
	}
	s.roundMu.Unlock()

	if !finished {
		return
	}

	results := s.snapshotRound(result.Round)

	s.roundMu.Lock()
	s.roundResults = append(s.roundResults, results)
	s.roundCond.Broadcast()
	s.roundMu.Unlock()
}

// snapshotRound builds the published view of a finished round: every
// player's current statistics ordered by rating, roster order breaking ties
func (s *Scoreboard) snapshotRound(round int) *entities.RoundResults {
	s.scoreMu.Lock()
	stats := make([]entities.PlayerStatistics, 0, len(s.playerOrder))
	for _, player := range s.playerOrder {
		stats = append(stats, s.score[player])
	}
	s.scoreMu.Unlock()

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Rating > stats[j].Rating
	})

	return &entities.RoundResults{
		Round:            round,
		PlayerStatistics: stats,
	}
}

// WaitOnRoundResults blocks until at least one finished round is waiting in
// the queue. The queue check happens under the queue lock on every wakeup,
// so spurious wakeups re-wait and a publish between a drain and the next
// wait is never missed.
func (s *Scoreboard) WaitOnRoundResults() {
	s.roundMu.Lock()
	defer s.roundMu.Unlock()
	for len(s.roundResults) == 0 {
		s.roundCond.Wait()
	}
}

// DrainRoundResults pops everything currently in the finished-round queue.
// Consumers call it after WaitOnRoundResults; entries are only ever removed
// here, never by the publisher.
func (s *Scoreboard) DrainRoundResults() []*entities.RoundResults {
	s.roundMu.Lock()
	defer s.roundMu.Unlock()
	drained := s.roundResults
	s.roundResults = nil
	return drained
}
