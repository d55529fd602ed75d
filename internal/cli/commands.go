package cli

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	apperrors "github.com/olgasafonova/ytunnus-mcp-server/internal/errors"
	"github.com/olgasafonova/ytunnus-mcp-server/internal/finland"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// ErrInvalid is returned by the check command when at least one ID failed.
var ErrInvalid = errors.New("one or more business IDs are invalid")

// NewRootCmd builds the ytunnus command tree. Running it without a
// subcommand starts the interactive prompt.
func NewRootCmd(spec finland.Specification) *cobra.Command {
	var noColor bool

	rootCmd := &cobra.Command{
		Use:   "ytunnus",
		Short: "Finnish Business ID (Y-tunnus) validator",
		Long: `ytunnus checks Finnish Business IDs (Y-tunnus) and lists every reason
an ID is invalid.

Run without arguments for an interactive prompt.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor {
				color.NoColor = true
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			console := NewConsole(spec, cmd.OutOrStdout())
			return console.Interactive(cmd.Context(), cmd.InOrStdin())
		},
	}

	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(CheckCmd(spec))
	rootCmd.AddCommand(TestCmd(spec))
	rootCmd.AddCommand(VersionCmd())

	return rootCmd
}

// CheckCmd validates each argument and fails if any of them is invalid.
func CheckCmd(spec finland.Specification) *cobra.Command {
	return &cobra.Command{
		Use:   "check <business-id>...",
		Short: "Validate one or more business IDs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			console := NewConsole(spec, cmd.OutOrStdout())

			allValid := true
			for i, id := range args {
				if i > 0 {
					fmt.Fprintln(cmd.OutOrStdout())
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: ", id)
				if !console.Check(id) {
					allValid = false
				}
			}

			if !allValid {
				return ErrInvalid
			}
			return nil
		},
	}
}

// TestCmd runs the built-in test table.
func TestCmd(spec finland.Specification) *cobra.Command {
	return &cobra.Command{
		Use:   "test",
		Short: "Run the built-in test set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report := NewConsole(spec, cmd.OutOrStdout()).RunSelfTest()
			if !report.OK() {
				return apperrors.NewSelfTestError(report.Failed, report.Total())
			}
			return nil
		},
	}
}

// VersionCmd prints the build version.
func VersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ytunnus %s\n", Version)
		},
	}
}
