package cli

import (
	goerrors "errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/clgen/internal/changelog"
	"github.com/ariel-frischer/clgen/internal/config"
	"github.com/ariel-frischer/clgen/internal/errors"
	"github.com/ariel-frischer/clgen/internal/gitlog"
	"github.com/ariel-frischer/clgen/internal/progress"
	"github.com/ariel-frischer/clgen/internal/revrange"
)

// runGenerate is the main pipeline: load grammar, resolve the range,
// stream commits, aggregate, render, write.
func runGenerate(cmd *cobra.Command, rangeExpr string) error {
	if debugFlag {
		gitlog.SetDebugLogger(func(format string, args ...any) {
			fmt.Fprintf(cmd.ErrOrStderr(), format+"\n", args...)
		})
	}

	grammar, err := config.Load(repoFlag, configFlag)
	if err != nil {
		return errors.InvalidConfiguration(err)
	}

	repo, err := gitlog.Open(repoFlag)
	if err != nil {
		return errors.UnreadableRepository(repoFlag, err)
	}

	concrete, err := expandRange(repo, rangeExpr)
	if err != nil {
		return err
	}

	doc, err := buildDocument(cmd, repo, concrete, grammar)
	if err != nil {
		return err
	}

	rendered, err := changelog.RenderString(doc, changelog.OptionsFromGrammar(grammar))
	if err != nil {
		return errors.WrapWithMessage(err, errors.Runtime, "rendering changelog")
	}

	return writeOutput(cmd, rendered)
}

// expandRange lists the repository tags and resolves the "~.." shorthand
// into a concrete range.
func expandRange(repo *gitlog.Repo, rangeExpr string) (string, error) {
	tags, err := repo.TagNames()
	if err != nil {
		return "", errors.WrapWithMessage(err, errors.Repository, "listing tags")
	}

	concrete, err := revrange.Expand(rangeExpr, resolutionTarget(), tags)
	if err != nil {
		var syntaxErr *revrange.SyntaxError
		if goerrors.As(err, &syntaxErr) {
			return "", errors.InvalidRange(syntaxErr)
		}
		return "", errors.Wrap(err, errors.Range)
	}
	return concrete, nil
}

// resolutionTarget returns the version the tag resolver should stay below.
// The default title placeholder is not a version; with it, the resolver
// falls back to the highest tag.
func resolutionTarget() string {
	if titleFlag == defaultTitle {
		return ""
	}
	return titleFlag
}

// buildDocument walks the concrete range and aggregates the classified
// commits. A stream that fails mid-walk still yields the changelog for
// whatever was consumed; the truncation is reported on stderr.
func buildDocument(cmd *cobra.Command, repo *gitlog.Repo, concrete string, grammar *config.Grammar) (*changelog.Document, error) {
	commits, err := repo.Commits(concrete)
	if err != nil {
		return nil, errors.WrapWithMessage(err, errors.Repository, "reading range "+concrete)
	}
	defer commits.Close()

	walker := progress.NewWalker(concrete, !quietFlag)
	walker.Start()
	sections, aggErr := changelog.Aggregate(commits, grammar)
	walker.Stop()

	if aggErr != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: commit stream ended early (%v); changelog is partial\n", aggErr)
	}

	return &changelog.Document{Title: titleFlag, Sections: sections}, nil
}

// writeOutput sends the rendered changelog to stdout or the --output file.
func writeOutput(cmd *cobra.Command, rendered string) error {
	if outputFlag == "" {
		fmt.Fprint(cmd.OutOrStdout(), rendered)
		return nil
	}

	if err := os.WriteFile(outputFlag, []byte(rendered), 0o644); err != nil {
		return errors.WrapWithMessage(err, errors.Runtime, "writing "+outputFlag)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", outputFlag)
	return nil
}
