package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Veraticus/mentat/internal/cli"
	"github.com/Veraticus/mentat/internal/engine"
	"github.com/Veraticus/mentat/internal/learning"
	"github.com/Veraticus/mentat/internal/model"
	"github.com/Veraticus/mentat/internal/sampledata"
)

func demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Walk through the learning scenarios with sample invoices",
		Long: `Run the built-in sample corpus end to end: process an invoice, apply a
reviewer's correction, and process the next invoice from the same vendor to
show the learned memory being applied automatically. Covers service-date
extraction, VAT-inclusive recalculation, skonto terms with SKU mapping, and
duplicate detection.`,
		RunE: runDemo,
	}
}

func runDemo(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	store, err := initStorage(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer func() { _ = store.Close() }()

	eng, learner := buildPipeline(store)

	scenarios := []struct {
		title      string
		before     model.ExtractedInvoice
		correction *model.HumanCorrection
		after      model.ExtractedInvoice
	}{
		{
			title:      "Service-date extraction (Supplier GmbH)",
			before:     sampledata.InvoiceA1,
			correction: &sampledata.CorrectionA1,
			after:      sampledata.InvoiceA2,
		},
		{
			title:      "VAT-inclusive recalculation (Parts AG)",
			before:     sampledata.InvoiceB1,
			correction: &sampledata.CorrectionB1,
			after:      sampledata.InvoiceB2,
		},
		{
			title:      "Skonto terms and SKU mapping (Freight & Co)",
			before:     sampledata.InvoiceC1,
			correction: &sampledata.CorrectionC1,
			after:      sampledata.InvoiceC2,
		},
		{
			title:  "Duplicate detection (Supplier GmbH resubmission)",
			before: sampledata.InvoiceA4,
			after:  sampledata.InvoiceA4Resubmitted,
		},
	}

	for i, scenario := range scenarios {
		fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("Scenario %d: %s", i+1, scenario.title)))

		if err := demoStep(ctx, eng, learner, scenario.before, scenario.correction); err != nil {
			return err
		}

		result, err := eng.Process(ctx, scenario.after)
		if err != nil {
			return fmt.Errorf("processing %s: %w", scenario.after.InvoiceID, err)
		}
		printResult(result)
		fmt.Println()
	}

	return nil
}

// demoStep processes the first invoice of a scenario and, when the scenario
// includes one, feeds the reviewer's correction to the learner.
func demoStep(ctx context.Context, eng *engine.Engine, learner *learning.Learner, invoice model.ExtractedInvoice, correction *model.HumanCorrection) error {
	result, err := eng.Process(ctx, invoice)
	if err != nil {
		return fmt.Errorf("processing %s: %w", invoice.InvoiceID, err)
	}
	printResult(result)
	fmt.Println()

	if correction == nil {
		return nil
	}

	fmt.Println(cli.SubtitleStyle.Render("  Reviewer correction arrives..."))
	updates, err := learner.LearnFromCorrection(ctx, *correction)
	if err != nil {
		return fmt.Errorf("learning from correction for %s: %w", correction.InvoiceID, err)
	}
	for _, update := range updates {
		fmt.Printf("    - %s\n", cli.InfoStyle.Render(update))
	}
	fmt.Println()

	return nil
}
