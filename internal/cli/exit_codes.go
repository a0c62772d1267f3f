package cli

// Exit codes for the clgen CLI.
// These codes support programmatic composition and CI/CD integration.
const (
	// ExitSuccess indicates successful changelog generation
	ExitSuccess = 0

	// ExitFailure indicates a generic runtime failure
	ExitFailure = 1

	// ExitRangeSyntax indicates a malformed revision-range expression
	ExitRangeSyntax = 2

	// ExitInvalidArguments indicates invalid command arguments
	ExitInvalidArguments = 3

	// ExitConfigError indicates an unreadable or invalid grammar configuration
	ExitConfigError = 4

	// ExitRepositoryError indicates the git repository could not be read
	ExitRepositoryError = 5
)
