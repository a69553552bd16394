// Command boardgen generates sea-board layouts and optionally keeps
// them in a SQLite library.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/castaway-games/seaboard/internal/board"
	"github.com/castaway-games/seaboard/internal/config"
	"github.com/castaway-games/seaboard/internal/entropy"
	"github.com/castaway-games/seaboard/internal/scenario"
	"github.com/castaway-games/seaboard/internal/store"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	scenarioTag := flag.String("scenario", "", "scenario tag: "+strings.Join(scenario.Tags(), ", "))
	players := flag.Int("players", 0, "player count the layout is sized for (up to 6)")
	seed := flag.Int64("seed", 0, "generation seed (0 = random)")
	dbPath := flag.String("db", "", "SQLite database path for saving boards")
	listN := flag.Int("list", 0, "list the N most recent saved boards and exit")
	showID := flag.String("show", "", "print a saved board's layout as JSON and exit")
	asJSON := flag.Bool("json", false, "print the generated layout as JSON")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// ── Configuration ─────────────────────────────────────────────────
	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			slog.Error("failed to load config", "path", *configPath, "error", err)
			os.Exit(1)
		}
	}
	if *scenarioTag != "" {
		cfg.Scenario = *scenarioTag
	}
	if *players != 0 {
		cfg.Players = *players
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *dbPath != "" {
		cfg.Database = *dbPath
	}

	// ── Database ──────────────────────────────────────────────────────
	var db *store.DB
	if cfg.Database != "" {
		var err error
		db, err = store.Open(cfg.Database)
		if err != nil {
			slog.Error("failed to open database", "path", cfg.Database, "error", err)
			os.Exit(1)
		}
		defer db.Close()
	}

	if *listN > 0 {
		listBoards(db, *listN)
		return
	}
	if *showID != "" {
		showBoard(db, *showID)
		return
	}

	// ── Generation ────────────────────────────────────────────────────
	genSeed := cfg.Seed
	if genSeed == 0 {
		genSeed = entropy.Seed()
	}

	plan, err := scenario.Lookup(cfg.Scenario, cfg.Players)
	if err != nil {
		slog.Error("unknown layout", "error", err)
		os.Exit(1)
	}

	opts := board.Options{BreakClumps: cfg.ClumpLimit > 0, ClumpLimit: cfg.ClumpLimit}
	rng := rand.New(rand.NewSource(genSeed))

	b, err := board.Generate(plan, opts, rng)
	if err != nil {
		slog.Error("board generation failed",
			"scenario", plan.Name, "players", plan.Players, "seed", genSeed, "error", err)
		os.Exit(1)
	}

	slog.Info("board generated",
		"scenario", plan.Name,
		"players", plan.Players,
		"seed", genSeed,
		"land_hexes", len(b.LandHexes()),
		"ports", len(b.Ports),
	)
	for t, c := range b.TerrainCounts() {
		slog.Info("terrain", "type", t.String(), "count", c)
	}
	if b.RobberHex != 0 {
		slog.Info("robber", "hex", b.RobberHex)
	}
	if b.PirateHex != 0 {
		slog.Info("pirate", "hex", b.PirateHex)
	}

	if *asJSON {
		out, err := json.MarshalIndent(b.Snapshot(), "", "  ")
		if err != nil {
			slog.Error("failed to encode layout", "error", err)
			os.Exit(1)
		}
		fmt.Println(string(out))
	}

	if db != nil {
		id, err := db.SaveBoard(b, plan.Name, plan.Players, genSeed)
		if err != nil {
			slog.Error("failed to save board", "error", err)
			os.Exit(1)
		}
		slog.Info("board saved", "id", id)
	}
}

func listBoards(db *store.DB, n int) {
	if db == nil {
		slog.Error("-list requires a database (-db or config)")
		os.Exit(1)
	}
	metas, err := db.ListBoards(n)
	if err != nil {
		slog.Error("failed to list boards", "error", err)
		os.Exit(1)
	}
	for _, m := range metas {
		fmt.Printf("%s  %s/%dp  seed=%d  generated %s\n",
			m.ID, m.Scenario, m.Players, m.Seed, humanize.Time(m.Created()))
	}
}

func showBoard(db *store.DB, id string) {
	if db == nil {
		slog.Error("-show requires a database (-db or config)")
		os.Exit(1)
	}
	snap, err := db.LoadBoard(id)
	if err != nil {
		slog.Error("failed to load board", "id", id, "error", err)
		os.Exit(1)
	}
	out, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		slog.Error("failed to encode layout", "error", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
