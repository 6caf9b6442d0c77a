package cmd

import (
	"fmt"

	"github.com/rnwolfe/habit/internal/version"
	"github.com/spf13/cobra"
)

var versionShort bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print habit version",
	Args:  cobra.NoArgs,
	RunE:  logged("version", runVersion),
}

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print only the version number")
}

func runVersion(_ *cobra.Command, _ []string) error {
	if versionShort {
		fmt.Println(version.Version)
		return nil
	}
	fmt.Println(version.String())
	return nil
}
