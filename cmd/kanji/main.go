// Command kanji is a kanji dictionary with stroke order diagrams.
package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/kanji-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/kanji-cli/internal/adapters/driven/source/kanjidic"
	"github.com/custodia-labs/kanji-cli/internal/adapters/driven/source/kanjivg"
	"github.com/custodia-labs/kanji-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/kanji-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/kanji-cli/internal/config"
	"github.com/custodia-labs/kanji-cli/internal/core/services"
	"github.com/custodia-labs/kanji-cli/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	configStore, err := file.NewConfigStore(cfg.SettingsPath())
	if err != nil {
		return fmt.Errorf("open settings: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("read settings: %w", err)
	}

	dictionaryPath, strokesPath := cfg.Sources(settings.Sources.Dictionary, settings.Sources.Strokes)
	logger.Debug("Sources: %s, %s", dictionaryPath, strokesPath)

	store, err := sqlite.NewStore(cfg.DataDir())
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer func() {
		if cerr := store.Close(); cerr != nil {
			logger.Warn("Failed to close database: %v", cerr)
		}
	}()

	catalog := services.NewCatalogService(
		kanjidic.New(dictionaryPath),
		kanjivg.New(strokesPath),
		store.SnapshotStore(),
		services.NewDatabaseBuilder(settings.Build.OnMalformedEntry),
	)
	renderer := services.NewRenderer(nil)

	cli.SetServices(cli.Services{
		Catalog:  catalog,
		Search:   services.NewSearchService(catalog),
		Render:   services.NewRenderService(catalog, renderer),
		Study:    services.NewStudyService(store.StudyStore(), catalog),
		Settings: settingsService,
		Actions:  services.NewResultActionService(renderer, settingsService),
	})

	return cli.Execute()
}
