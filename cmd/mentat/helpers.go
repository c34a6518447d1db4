package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/Veraticus/mentat/internal/cli"
	"github.com/Veraticus/mentat/internal/common"
	"github.com/Veraticus/mentat/internal/config"
	"github.com/Veraticus/mentat/internal/engine"
	"github.com/Veraticus/mentat/internal/learning"
	"github.com/Veraticus/mentat/internal/model"
	"github.com/Veraticus/mentat/internal/service"
	"github.com/Veraticus/mentat/internal/storage"
)

// initStorage initializes the storage service with proper path expansion.
func initStorage(ctx context.Context) (service.Storage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDBPath()
	} else {
		dbPath = config.ExpandPath(dbPath)
	}

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// thresholdsFromConfig reads the engine tuning, falling back to defaults for
// unset keys.
func thresholdsFromConfig() model.Thresholds {
	t := model.DefaultThresholds()
	if viper.IsSet("engine.auto_approve") {
		t.AutoApprove = viper.GetFloat64("engine.auto_approve")
	}
	if viper.IsSet("engine.auto_correct") {
		t.AutoCorrect = viper.GetFloat64("engine.auto_correct")
	}
	if viper.IsSet("engine.memory_application") {
		t.MemoryApplication = viper.GetFloat64("engine.memory_application")
	}
	if viper.IsSet("engine.auto_correct_min") {
		t.AutoCorrectMin = viper.GetInt("engine.auto_correct_min")
	}
	if viper.IsSet("engine.auto_correct_max") {
		t.AutoCorrectMax = viper.GetInt("engine.auto_correct_max")
	}
	if viper.IsSet("engine.duplicate_window_days") {
		t.DuplicateWindow = time.Duration(viper.GetInt("engine.duplicate_window_days")) * 24 * time.Hour
	}
	return t
}

// buildPipeline wires an engine and learner sharing one set of vendor locks.
func buildPipeline(store service.Storage) (*engine.Engine, *learning.Learner) {
	locks := common.NewKeyedMutex()
	eng := engine.NewWithConfig(store, engine.Config{
		Thresholds:  thresholdsFromConfig(),
		VendorLocks: locks,
	})
	learner := learning.NewWithConfig(store, learning.Config{
		VendorLocks: locks,
	})
	return eng, learner
}

// printResult renders one processing result to stdout.
func printResult(result *model.ProcessingResult) {
	fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("Invoice %s", result.InvoiceID)))
	fmt.Printf("  %s  %s\n", cli.RenderReviewBadge(result.RequiresHumanReview),
		cli.SubtleStyle.Render(fmt.Sprintf("confidence %.0f%%", result.ConfidenceScore*100)))

	if len(result.ProposedCorrections) > 0 {
		fmt.Println(cli.BoldStyle.Render("  Corrections:"))
		for _, c := range result.ProposedCorrections {
			fmt.Printf("    - %s\n", c)
		}
	} else {
		fmt.Println(cli.SubtleStyle.Render("  No corrections suggested."))
	}

	if len(result.MemoryUpdates) > 0 {
		fmt.Println(cli.BoldStyle.Render("  Memory updates:"))
		for _, u := range result.MemoryUpdates {
			fmt.Printf("    - %s\n", cli.InfoStyle.Render(u))
		}
	}

	fmt.Printf("  %s\n", cli.SubtleStyle.Render(result.Reasoning))
}
