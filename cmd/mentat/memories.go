package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Veraticus/mentat/internal/cli"
	"github.com/Veraticus/mentat/internal/model"
)

func memoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "memories",
		Short: "Inspect learned memories",
		Long:  `List the learned, confidence-weighted rules, optionally scoped to one vendor.`,
		RunE:  runMemories,
	}

	cmd.Flags().String("vendor", "", "Only show memories for this vendor")

	return cmd
}

func runMemories(cmd *cobra.Command, _ []string) error {
	vendor, _ := cmd.Flags().GetString("vendor")

	ctx := cmd.Context()
	store, err := initStorage(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer func() { _ = store.Close() }()

	var memories []model.Memory
	if vendor != "" {
		memories, err = store.GetMemories(ctx, vendor)
	} else {
		memories, err = store.GetAllMemories(ctx)
	}
	if err != nil {
		return fmt.Errorf("failed to load memories: %w", err)
	}

	if len(memories) == 0 {
		fmt.Println(cli.SubtleStyle.Render("No memories learned yet."))
		return nil
	}

	currentVendor := ""
	for _, memory := range memories {
		if memory.Vendor != currentVendor {
			currentVendor = memory.Vendor
			fmt.Println(cli.TitleStyle.Render(currentVendor))
		}
		verified := ""
		if memory.Metadata != nil && memory.Metadata.HumanVerified {
			verified = cli.SuccessStyle.Render(" ✓ human-verified")
		}
		fmt.Printf("  %s %s\n", cli.BoldStyle.Render(memory.Key),
			cli.SubtleStyle.Render(fmt.Sprintf("(%s)", memory.Type))+verified)
		fmt.Printf("    confidence %.2f, hits %d, successes %d, last used %s\n",
			memory.Confidence, memory.HitCount, memory.SuccessCount,
			memory.LastUsed.Format("2006-01-02 15:04"))
	}

	return nil
}
