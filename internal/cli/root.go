// Package cli implements the clgen command surface with cobra.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/ariel-frischer/clgen/internal/errors"
)

// defaultTitle is the header placeholder used when --title is omitted.
const defaultTitle = "REPLACE_WITH_YOUR_RELEASE_TAG"

var (
	titleFlag  string
	configFlag string
	repoFlag   string
	outputFlag string
	debugFlag  bool
	quietFlag  bool
)

var rootCmd = &cobra.Command{
	Use:   "clgen [flags] <range>",
	Short: "Generate a changelog from Conventional-Commit messages",
	Long: `clgen generates a Markdown changelog from a range of git commits.

Each commit title is matched against a configurable Conventional-Commits
grammar ("type(scope)?!?: description"); matches are grouped into sections
in the order the grammar configures. Breaking changes (the "!" title marker
or a breaking footer in the body) get their own section, rendered first.

The range argument supports the "~.." shorthand: the nearest semver tag
preceding --title (or the highest tag when --title is not a version) is
substituted as the left endpoint. When no tag qualifies, the changelog
covers all history up to the right endpoint.

Examples:
  clgen '~..HEAD' -t v1.4.0        # Since the nearest tag before 1.4.0
  clgen 'v1.2.0..HEAD'             # Explicit range
  clgen HEAD -o CHANGELOG.md       # All history, written to a file`,
	Args:          rangeArg,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd, args[0])
	},
}

// rangeArg requires exactly one positional argument, the revision range.
func rangeArg(cmd *cobra.Command, args []string) error {
	switch len(args) {
	case 0:
		return errors.MissingRangeArgument()
	case 1:
		return nil
	default:
		return errors.NewArgumentErrorWithUsage(
			"expected a single revision range, got "+args[1],
			cmd.Use,
			"Quote the range if it contains shell metacharacters",
		)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&titleFlag, "title", "t", defaultTitle, "Release title for the changelog header")
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Write the changelog to a file instead of stdout")

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Grammar config path (default: .clgen.yml in the repository)")
	rootCmd.PersistentFlags().StringVarP(&repoFlag, "repo", "r", ".", "Path to the git repository")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&quietFlag, "quiet", false, "Suppress progress output")
}

// Execute runs the CLI and returns the process exit code. Structured
// errors are printed with remediation; plain errors get the generic
// runtime treatment.
func Execute() int {
	err := rootCmd.Execute()
	if err == nil {
		return ExitSuccess
	}

	cliErr := errors.AsCLIError(err)
	if cliErr == nil {
		cliErr = errors.Wrap(err, errors.Runtime)
	}
	errors.PrintError(cliErr)

	return exitCodeFor(cliErr.Category)
}

// exitCodeFor maps error categories to process exit codes.
func exitCodeFor(category errors.ErrorCategory) int {
	switch category {
	case errors.Range:
		return ExitRangeSyntax
	case errors.Argument:
		return ExitInvalidArguments
	case errors.Configuration:
		return ExitConfigError
	case errors.Repository:
		return ExitRepositoryError
	default:
		return ExitFailure
	}
}
