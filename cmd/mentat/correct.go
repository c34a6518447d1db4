package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Veraticus/mentat/internal/cli"
	"github.com/Veraticus/mentat/internal/model"
)

func correctCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "correct <correction.json>",
		Short: "Teach the engine from a human correction",
		Long: `Feed a reviewer's correction record to the learner. Each corrected
field is mapped to a canonical memory key; an existing memory for that key is
reinforced, otherwise a new one is created for the vendor.`,
		Args: cobra.ExactArgs(1),
		RunE: runCorrect,
	}
}

func runCorrect(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0]) // #nosec G304 -- user-supplied input file
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	var correction model.HumanCorrection
	if err := json.Unmarshal(data, &correction); err != nil {
		return fmt.Errorf("failed to parse %s: %w", args[0], err)
	}

	ctx := cmd.Context()
	store, err := initStorage(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer func() { _ = store.Close() }()

	_, learner := buildPipeline(store)

	updates, err := learner.LearnFromCorrection(ctx, correction)
	if err != nil {
		return fmt.Errorf("learning from correction for %s: %w", correction.InvoiceID, err)
	}

	fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("Learned from correction for %s", correction.InvoiceID)))
	for _, update := range updates {
		fmt.Printf("  - %s\n", cli.InfoStyle.Render(update))
	}

	return nil
}
