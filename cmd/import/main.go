// Command import loads one competition season from the open-data provider
// into the database and builds every player's heat map.
package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	"github.com/jengzang/futbol-backend-go/internal/api"
	"github.com/jengzang/futbol-backend-go/internal/config"
	"github.com/jengzang/futbol-backend-go/internal/database"
	"github.com/jengzang/futbol-backend-go/internal/service"
	"github.com/jengzang/futbol-backend-go/internal/statsbomb"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	competitionID := flag.Int64("competition", 0, "competition id (required)")
	seasonID := flag.Int64("season", 0, "season id (required)")
	maxMatches := flag.Int("max-matches", 0, "import at most this many matches, 0 for all")
	gridSize := flag.Int("grid", 0, "heat-map grid size, 0 for the configured default")
	flag.Parse()

	if *competitionID <= 0 || *seasonID <= 0 {
		flag.Usage()
		log.Fatal("-competition and -season are required")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	if err := database.Init(database.Config{Path: cfg.DBPath}); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer database.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	importer := api.NewImportService(cfg, database.GetDB(), statsbomb.NewClient(cfg.StatsBomb.BaseURL, cfg.StatsBomb.Timeout))
	task, err := importer.RunNow(ctx, service.ImportRequest{
		CompetitionID: *competitionID,
		SeasonID:      *seasonID,
		MaxMatches:    *maxMatches,
		GridSize:      *gridSize,
	}, "cli")
	if err != nil {
		log.Fatal("Import failed:", err)
	}

	log.Printf("Imported %d players from %d matches (%d failed)",
		task.PlayersImported, task.ProcessedMatches, task.FailedMatches)
}
