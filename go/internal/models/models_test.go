package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestGameStatusFinished(t *testing.T) {
	finished := []GameStatus{GameStatusFinal, GameStatusOvertime, GameStatusShootout}
	for _, s := range finished {
		if !s.Finished() {
			t.Errorf("expected %s to be finished", s)
		}
	}
	open := []GameStatus{GameStatusScheduled, GameStatusInProgress, GameStatusPostponed, GameStatusCancelled}
	for _, s := range open {
		if s.Finished() {
			t.Errorf("expected %s to not be finished", s)
		}
	}
}

func TestGameWinnerAndLoser(t *testing.T) {
	home := uuid.New()
	away := uuid.New()
	g := Game{HomeTeamID: home, AwayTeamID: away, HomeScore: 4, AwayScore: 2, Status: GameStatusFinal}

	if w := g.WinnerTeamID(); w == nil || *w != home {
		t.Fatalf("expected home team to win, got %v", w)
	}
	if l := g.LoserTeamID(); l == nil || *l != away {
		t.Fatalf("expected away team to lose, got %v", l)
	}

	g.Status = GameStatusInProgress
	if g.WinnerTeamID() != nil {
		t.Fatal("unfinished game should have no winner")
	}

	g.Status = GameStatusFinal
	g.AwayScore = 4
	if g.WinnerTeamID() != nil || g.LoserTeamID() != nil {
		t.Fatal("tied game should have no winner or loser")
	}
}

func TestPlayerGameStatsPercentages(t *testing.T) {
	s := PlayerGameStats{FaceoffWins: 7, FaceoffAttempts: 10, Saves: 27, ShotsAgainst: 30}
	if got := s.FaceoffPercentage(); got != 70 {
		t.Fatalf("expected 70%% faceoffs, got %v", got)
	}
	if got := s.SavePercentage(); got != 0.9 {
		t.Fatalf("expected .900 save percentage, got %v", got)
	}

	var empty PlayerGameStats
	if empty.FaceoffPercentage() != 0 || empty.SavePercentage() != 0 {
		t.Fatal("empty stat line should report zero percentages")
	}
}

func TestTimeOnIceDisplay(t *testing.T) {
	s := PlayerGameStats{TimeOnIceSeconds: 1264}
	if got := s.TimeOnIceDisplay(); got != "21:04" {
		t.Fatalf("expected 21:04, got %s", got)
	}
}

func TestFantasyWeekContains(t *testing.T) {
	start := time.Date(2025, 10, 6, 0, 0, 0, 0, time.UTC)
	w := FantasyWeek{StartDate: start, EndDate: start.AddDate(0, 0, 6)}

	if !w.Contains(start) {
		t.Error("start date should be inside the week")
	}
	if !w.Contains(start.AddDate(0, 0, 6)) {
		t.Error("end date should be inside the week")
	}
	if w.Contains(start.AddDate(0, 0, 7)) {
		t.Error("day after end date should be outside the week")
	}
	if w.Contains(start.AddDate(0, 0, -1)) {
		t.Error("day before start date should be outside the week")
	}
}

func TestMatchupWinner(t *testing.T) {
	m := Matchup{Team1ID: uuid.New(), Team2ID: uuid.New(), Team1Score: 88.5, Team2Score: 91.2}
	if m.WinnerTeamID() != nil {
		t.Fatal("incomplete matchup should have no winner")
	}

	m.IsComplete = true
	if w := m.WinnerTeamID(); w == nil || *w != m.Team2ID {
		t.Fatalf("expected team 2 to win, got %v", w)
	}

	m.Team1Score = m.Team2Score
	if m.WinnerTeamID() != nil {
		t.Fatal("tied matchup should have no winner")
	}
}

func TestWinPercentageCountsTiesAsHalf(t *testing.T) {
	team := FantasyTeam{Wins: 5, Losses: 3, Ties: 2}
	if got := team.WinPercentage(); got != 0.6 {
		t.Fatalf("expected 0.6, got %v", got)
	}

	var fresh FantasyTeam
	if fresh.WinPercentage() != 0 {
		t.Fatal("team with no games should have zero win percentage")
	}
}

func TestSlotPositionStarting(t *testing.T) {
	starting := []SlotPosition{
		SlotPositionCenter, SlotPositionLeftWing, SlotPositionRightWing,
		SlotPositionLeftDefense, SlotPositionRightDefense, SlotPositionGoalie,
	}
	for _, s := range starting {
		if !s.Starting() {
			t.Errorf("expected %s to be a starting slot", s)
		}
	}
	if SlotPositionBench.Starting() || SlotPositionIR.Starting() {
		t.Error("bench and IR should not count as starting")
	}
}

func TestDefaultScoringSettings(t *testing.T) {
	s := DefaultScoringSettings()
	if s.Goals != 6.0 || s.Wins != 4.0 || s.Losses != -1.0 {
		t.Fatalf("unexpected default weights: %+v", s)
	}
}
