package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rinkside/fantasyhockey/go/internal/dbconfig"
)

// Seeds the fixed NHL reference data: conferences, divisions, the 32
// franchises, skater/goalie positions and the current season. Safe to run
// repeatedly; every insert is an upsert keyed on the natural identifier.

type division struct {
	name         string
	abbreviation string
	conference   string
}

type team struct {
	city         string
	name         string
	abbreviation string
	division     string
}

var conferences = map[string]string{
	"Eastern": "EAST",
	"Western": "WEST",
}

var divisions = []division{
	{"Atlantic", "ATL", "Eastern"},
	{"Metropolitan", "MET", "Eastern"},
	{"Central", "CEN", "Western"},
	{"Pacific", "PAC", "Western"},
}

var teams = []team{
	{"Boston", "Bruins", "BOS", "Atlantic"},
	{"Buffalo", "Sabres", "BUF", "Atlantic"},
	{"Detroit", "Red Wings", "DET", "Atlantic"},
	{"Florida", "Panthers", "FLA", "Atlantic"},
	{"Montreal", "Canadiens", "MTL", "Atlantic"},
	{"Ottawa", "Senators", "OTT", "Atlantic"},
	{"Tampa Bay", "Lightning", "TBL", "Atlantic"},
	{"Toronto", "Maple Leafs", "TOR", "Atlantic"},
	{"Carolina", "Hurricanes", "CAR", "Metropolitan"},
	{"Columbus", "Blue Jackets", "CBJ", "Metropolitan"},
	{"New Jersey", "Devils", "NJD", "Metropolitan"},
	{"New York", "Islanders", "NYI", "Metropolitan"},
	{"New York", "Rangers", "NYR", "Metropolitan"},
	{"Philadelphia", "Flyers", "PHI", "Metropolitan"},
	{"Pittsburgh", "Penguins", "PIT", "Metropolitan"},
	{"Washington", "Capitals", "WSH", "Metropolitan"},
	{"Chicago", "Blackhawks", "CHI", "Central"},
	{"Colorado", "Avalanche", "COL", "Central"},
	{"Dallas", "Stars", "DAL", "Central"},
	{"Minnesota", "Wild", "MIN", "Central"},
	{"Nashville", "Predators", "NSH", "Central"},
	{"St. Louis", "Blues", "STL", "Central"},
	{"Utah", "Mammoth", "UTA", "Central"},
	{"Winnipeg", "Jets", "WPG", "Central"},
	{"Anaheim", "Ducks", "ANA", "Pacific"},
	{"Calgary", "Flames", "CGY", "Pacific"},
	{"Edmonton", "Oilers", "EDM", "Pacific"},
	{"Los Angeles", "Kings", "LAK", "Pacific"},
	{"San Jose", "Sharks", "SJS", "Pacific"},
	{"Seattle", "Kraken", "SEA", "Pacific"},
	{"Vancouver", "Canucks", "VAN", "Pacific"},
	{"Vegas", "Golden Knights", "VGK", "Pacific"},
}

var positions = [][3]string{
	{"Center", "C", "forward"},
	{"Left Wing", "LW", "forward"},
	{"Right Wing", "RW", "forward"},
	{"Left Defense", "LD", "defense"},
	{"Right Defense", "RD", "defense"},
	{"Goalie", "G", "goalie"},
}

func main() {
	ctx := context.Background()

	cfg := dbconfig.NewConfigFromEnv()
	pool, err := pgxpool.New(ctx, cfg.DSN())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	for name, abbr := range conferences {
		_, err := pool.Exec(ctx, `
			INSERT INTO conferences (name, abbreviation)
			VALUES ($1, $2)
			ON CONFLICT (name) DO NOTHING`, name, abbr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error inserting conference %s: %v\n", name, err)
			os.Exit(1)
		}
	}

	for _, d := range divisions {
		_, err := pool.Exec(ctx, `
			INSERT INTO divisions (name, abbreviation, conference_id)
			VALUES ($1, $2, (SELECT id FROM conferences WHERE name = $3))
			ON CONFLICT (name) DO NOTHING`, d.name, d.abbreviation, d.conference)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error inserting division %s: %v\n", d.name, err)
			os.Exit(1)
		}
	}

	var inserted, skipped int
	for _, t := range teams {
		tag, err := pool.Exec(ctx, `
			INSERT INTO teams (city, name, abbreviation, division_id)
			VALUES ($1, $2, $3, (SELECT id FROM divisions WHERE name = $4))
			ON CONFLICT (abbreviation) DO NOTHING`,
			t.city, t.name, t.abbreviation, t.division)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error inserting team %s: %v\n", t.abbreviation, err)
			os.Exit(1)
		}
		if tag.RowsAffected() == 1 {
			inserted++
		} else {
			skipped++
		}
	}

	for _, p := range positions {
		_, err := pool.Exec(ctx, `
			INSERT INTO positions (name, abbreviation, category)
			VALUES ($1, $2, $3)
			ON CONFLICT (name) DO NOTHING`, p[0], p[1], p[2])
		if err != nil {
			fmt.Fprintf(os.Stderr, "error inserting position %s: %v\n", p[1], err)
			os.Exit(1)
		}
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO seasons (name, start_date, end_date, playoffs_start_date, is_current)
		VALUES ('2025-26', '2025-10-07', '2026-04-16', '2026-04-18', TRUE)
		ON CONFLICT (name) DO NOTHING`)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error inserting season: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("NHL seed complete: %d teams inserted, %d skipped\n", inserted, skipped)
}
