package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/Veraticus/mentat/internal/model"
)

func processCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "process <invoices.json>",
		Short: "Process extracted invoices through the memory engine",
		Long: `Run one or more extracted invoices through the full pipeline:
recall the vendor's learned memories, apply them, check for duplicates,
and decide whether each invoice still needs human review.

The input file holds either a single extracted invoice object or an array
of them.`,
		Args: cobra.ExactArgs(1),
		RunE: runProcess,
	}

	cmd.Flags().Bool("json", false, "Emit full processing results as JSON")

	return cmd
}

func runProcess(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")

	invoices, err := readInvoices(args[0])
	if err != nil {
		return err
	}
	if len(invoices) == 0 {
		return fmt.Errorf("no invoices in %s", args[0])
	}

	ctx := cmd.Context()
	store, err := initStorage(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer func() { _ = store.Close() }()

	eng, _ := buildPipeline(store)

	var bar *progressbar.ProgressBar
	if len(invoices) > 1 && !asJSON {
		bar = progressbar.Default(int64(len(invoices)), "processing")
	}

	results := make([]*model.ProcessingResult, 0, len(invoices))
	for _, invoice := range invoices {
		result, err := eng.Process(ctx, invoice)
		if err != nil {
			return fmt.Errorf("processing %s: %w", invoice.InvoiceID, err)
		}
		results = append(results, result)
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	if bar != nil {
		_ = bar.Finish()
		fmt.Println()
	}

	if asJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(results)
	}

	for _, result := range results {
		printResult(result)
		fmt.Println()
	}

	return nil
}

// readInvoices loads one invoice or an array of invoices from a JSON file.
func readInvoices(path string) ([]model.ExtractedInvoice, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-supplied input file
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var invoices []model.ExtractedInvoice
	if err := json.Unmarshal(data, &invoices); err == nil {
		return invoices, nil
	}

	var single model.ExtractedInvoice
	if err := json.Unmarshal(data, &single); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return []model.ExtractedInvoice{single}, nil
}
