package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rinkside/fantasyhockey/go/internal/dbconfig"
)

// Player mirrors the JSON snapshot layout. Team and position come as
// abbreviations and are resolved against the seeded reference data.
type Player struct {
	NHLID        string  `json:"nhl_id"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Position     string  `json:"position"`
	Team         string  `json:"team"`
	JerseyNumber *int    `json:"jersey_number"`
	HeightInches *int    `json:"height_inches"`
	WeightLbs    *int    `json:"weight_lbs"`
	BirthDate    *string `json:"birth_date"`
	BirthCity    *string `json:"birth_city"`
	BirthCountry *string `json:"birth_country"`
	Nationality  *string `json:"nationality"`
	Shoots       *string `json:"shoots"`
	Catches      *string `json:"catches"`
	DraftYear    *int    `json:"draft_year"`
	DraftRound   *int    `json:"draft_round"`
	DraftPick    *int    `json:"draft_pick"`
	IsRookie     bool    `json:"is_rookie"`
}

func main() {
	ctx := context.Background()

	path := "go/internal/assets/players.json"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read %s: %v\n", path, err)
		os.Exit(1)
	}
	var players []Player
	if err := json.Unmarshal(data, &players); err != nil {
		fmt.Fprintf(os.Stderr, "unmarshal players: %v\n", err)
		os.Exit(1)
	}

	cfg := dbconfig.NewConfigFromEnv()
	pool, err := pgxpool.New(ctx, cfg.DSN())
	if err != nil {
		fmt.Fprintf(os.Stderr, "connect error: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	var seasonStart string
	err = pool.QueryRow(ctx,
		`SELECT start_date::text FROM seasons WHERE is_current`).Scan(&seasonStart)
	if err != nil {
		fmt.Fprintf(os.Stderr, "no current season, run seed_nhl first: %v\n", err)
		os.Exit(1)
	}

	total, inserted, skipped, errs := len(players), 0, 0, 0
	for _, p := range players {
		tag, err := pool.Exec(ctx, `
			INSERT INTO players (
				nhl_id, first_name, last_name, position_id, jersey_number,
				height_inches, weight_lbs, birth_date, birth_city, birth_country,
				nationality, shoots, catches, draft_year, draft_round, draft_pick,
				is_rookie
			) VALUES (
				$1, $2, $3,
				(SELECT id FROM positions WHERE abbreviation = $4),
				$5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17
			)
			ON CONFLICT (nhl_id) DO NOTHING`,
			p.NHLID, p.FirstName, p.LastName, p.Position, p.JerseyNumber,
			p.HeightInches, p.WeightLbs, p.BirthDate, p.BirthCity, p.BirthCountry,
			p.Nationality, p.Shoots, p.Catches, p.DraftYear, p.DraftRound, p.DraftPick,
			p.IsRookie)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error inserting player %s %s: %v\n", p.FirstName, p.LastName, err)
			errs++
			continue
		}
		if tag.RowsAffected() != 1 {
			skipped++
			continue
		}
		inserted++

		if p.Team == "" {
			continue
		}
		_, err = pool.Exec(ctx, `
			INSERT INTO player_team_history (
				player_id, team_id, season_id, start_date, jersey_number, is_current
			) VALUES (
				(SELECT id FROM players WHERE nhl_id = $1),
				(SELECT id FROM teams WHERE abbreviation = $2),
				(SELECT id FROM seasons WHERE is_current),
				$3, $4, TRUE
			)
			ON CONFLICT (player_id, team_id, season_id) DO NOTHING`,
			p.NHLID, p.Team, seasonStart, p.JerseyNumber)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error assigning player %s to %s: %v\n", p.NHLID, p.Team, err)
			errs++
		}
	}

	fmt.Printf(
		"Players seed: total=%d inserted=%d skipped=%d errors=%d\n",
		total, inserted, skipped, errs,
	)
}
