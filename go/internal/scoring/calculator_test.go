package scoring

import (
	"testing"

	"github.com/rinkside/fantasyhockey/go/internal/models"
)

func TestPointsSkaterLine(t *testing.T) {
	settings := models.DefaultScoringSettings()
	line := models.StatLine{
		Goals:       2,
		Assists:     1,
		PlusMinus:   3,
		ShotsOnGoal: 5,
		Hits:        4,
	}

	// 2*6 + 1*4 + 3*1 + 5*0.4 + 4*0.6 = 23.4
	got := Points(settings, line)
	if got != 23.4 {
		t.Fatalf("expected 23.4 points, got %v", got)
	}
}

func TestPointsGoalieLine(t *testing.T) {
	settings := models.DefaultScoringSettings()
	line := models.StatLine{
		Wins:         1,
		GoalsAgainst: 2,
		Saves:        30,
		Shutouts:     0,
	}

	// 1*4 + 2*(-1) + 30*0.6 = 20
	got := Points(settings, line)
	if got != 20 {
		t.Fatalf("expected 20 points, got %v", got)
	}
}

func TestPointsNegativeTotal(t *testing.T) {
	settings := models.DefaultScoringSettings()
	line := models.StatLine{
		Losses:       2,
		GoalsAgainst: 7,
	}

	got := Points(settings, line)
	if got != -9 {
		t.Fatalf("expected -9 points, got %v", got)
	}
}

func TestPointsEmptyLine(t *testing.T) {
	if got := Points(models.DefaultScoringSettings(), models.StatLine{}); got != 0 {
		t.Fatalf("expected 0 points for empty line, got %v", got)
	}
}

func TestPointsRoundsToTwoDecimals(t *testing.T) {
	settings := models.ScoringSettings{Saves: 0.333}
	got := Points(settings, models.StatLine{Saves: 1})
	if got != 0.33 {
		t.Fatalf("expected 0.33, got %v", got)
	}
}

func TestPointsCustomWeights(t *testing.T) {
	settings := models.ScoringSettings{Goals: 10, Assists: 0}
	line := models.StatLine{Goals: 1, Assists: 5}
	if got := Points(settings, line); got != 10 {
		t.Fatalf("expected assists to score nothing, got %v", got)
	}
}
