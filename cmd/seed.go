package cmd

import (
	"fmt"

	"github.com/rnwolfe/habit/internal/habit"
	"github.com/rnwolfe/habit/internal/sample"
	"github.com/rnwolfe/habit/internal/ui"
	"github.com/spf13/cobra"
)

// sampleLoadedKey records in the kv table when sample data was last loaded.
const sampleLoadedKey = "sample.loaded_at"

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load predefined habits with four weeks of history",
	Args:  cobra.NoArgs,
	RunE:  logged("seed", runSeed),
}

func runSeed(_ *cobra.Command, _ []string) error {
	db, hs, err := openHabits()
	if err != nil {
		return err
	}
	defer db.Close()

	t := now()
	created, err := sample.Load(hs, t)
	if err != nil {
		return err
	}

	if len(created) == 0 {
		ui.Inf("Sample habits are already loaded.")
		if at, _ := db.GetKV(sampleLoadedKey); at != "" {
			ui.Inf("Loaded at " + at)
		}
		return nil
	}

	if err := db.SetKV(sampleLoadedKey, habit.FormatTimestamp(t)); err != nil {
		return fmt.Errorf("recording sample load: %w", err)
	}

	ui.Ok(fmt.Sprintf("Loaded %d sample habits with %d weeks of history:", len(created), sample.Weeks))
	for _, h := range created {
		ui.Putsf("  %s %s (ID: %d, %s)", ui.IconDot, h.Name, h.ID, h.Periodicity())
	}
	ui.Tip("`habit analyze` to explore the sample data.")
	return nil
}
