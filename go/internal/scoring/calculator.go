package scoring

import (
	"math"

	"github.com/rinkside/fantasyhockey/go/internal/models"
)

// Points applies the league's weights to a raw stat line and returns the
// fantasy point total, rounded to two decimals.
func Points(settings models.ScoringSettings, line models.StatLine) float64 {
	total := float64(line.Goals)*settings.Goals +
		float64(line.Assists)*settings.Assists +
		float64(line.PlusMinus)*settings.PlusMinus +
		float64(line.PenaltyMinutes)*settings.PenaltyMinutes +
		float64(line.PowerPlayGoals)*settings.PowerPlayGoals +
		float64(line.PowerPlayAssists)*settings.PowerPlayAssists +
		float64(line.ShortHandedGoals)*settings.ShortHandedGoals +
		float64(line.ShortHandedAssists)*settings.ShortHandedAssists +
		float64(line.ShotsOnGoal)*settings.ShotsOnGoal +
		float64(line.Hits)*settings.Hits +
		float64(line.BlockedShots)*settings.BlockedShots +
		float64(line.Wins)*settings.Wins +
		float64(line.Losses)*settings.Losses +
		float64(line.GoalsAgainst)*settings.GoalsAgainst +
		float64(line.Saves)*settings.Saves +
		float64(line.Shutouts)*settings.Shutouts
	return math.Round(total*100) / 100
}
