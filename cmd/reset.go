package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rnwolfe/habit/internal/store"
	"github.com/rnwolfe/habit/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var resetYes bool

// confirmInput is where the reset prompt reads its answer.
var confirmInput io.Reader = os.Stdin

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete every habit and completion",
	Long: `Drop all habits and completions and recreate an empty database.

Asks for confirmation in a terminal. Pass --yes to skip the prompt.`,
	Args: cobra.NoArgs,
	RunE: logged("reset", runReset),
}

func init() {
	resetCmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "Skip the confirmation prompt")
}

func runReset(_ *cobra.Command, _ []string) error {
	if !resetYes {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("refusing to reset without --yes outside a terminal")
		}
		if !confirm("Delete all habits and completions?") {
			ui.Inf("Reset canceled.")
			return nil
		}
	}

	db, err := store.Open()
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer db.Close()

	if err := db.Reset(); err != nil {
		return err
	}
	ui.Ok("Database reset successfully.")
	ui.Inf("Database reinitialized.")
	return nil
}

// confirm asks a yes/no question and defaults to no.
func confirm(question string) bool {
	fmt.Printf("  %s %s ", question, ui.Muted.Render("[y/N]"))
	answer, _ := bufio.NewReader(confirmInput).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}
