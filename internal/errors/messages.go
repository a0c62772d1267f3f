package errors

import "fmt"

// Common error messages for the clgen CLI.
// These templates ensure consistent, actionable error messages.

// MissingRangeArgument creates an error for a missing revision-range argument.
func MissingRangeArgument() *CLIError {
	return NewArgumentErrorWithUsage(
		"revision range is required",
		"clgen [flags] <range>",
		"Pass a revision range, e.g. 'v1.0.0..HEAD'",
		"Use the shorthand '~..HEAD' to start from the nearest previous semver tag",
	)
}

// InvalidRange creates an error for a malformed shorthand range expression.
func InvalidRange(err error) *CLIError {
	return NewRangeError(
		err.Error(),
		"The shorthand form is '~..<revision>', e.g. '~..HEAD'",
		"Or pass a concrete range such as 'v1.2.0..HEAD'",
	)
}

// UnreadableRepository creates an error for a repository that cannot be opened.
func UnreadableRepository(path string, err error) *CLIError {
	return NewRepositoryError(
		fmt.Sprintf("cannot open repository at %s: %v", path, err),
		"Check that the path points into a git repository",
		"Pass the repository location with --repo",
	)
}

// InvalidConfiguration creates an error for a grammar config that failed to load.
func InvalidConfiguration(err error) *CLIError {
	return NewConfigError(
		err.Error(),
		"Run 'clgen config init' to write a valid starting configuration",
		"Run 'clgen config show' to inspect the effective configuration",
	)
}
