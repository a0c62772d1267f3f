// Package gitlog is the git collaborator for clgen. It opens repositories,
// lists tag names for the range resolver, and streams raw commits for a
// concrete revision range. It uses the go-git library exclusively; the git
// CLI is never invoked.
//
// Commits are exposed through a pull-based iterator so the aggregation
// pipeline never materializes full history in memory.
package gitlog

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
)

// debugLogger is a function that logs debug messages when debug mode is
// enabled. By default it is a no-op. Set it via SetDebugLogger.
var debugLogger func(format string, args ...any)

// SetDebugLogger configures the debug logger for git operations.
// Pass nil to disable debug logging.
func SetDebugLogger(logger func(format string, args ...any)) {
	debugLogger = logger
}

func logDebug(format string, args ...any) {
	if debugLogger != nil {
		debugLogger(format, args...)
	}
}

// RawCommit is one commit as produced by the log source. Fields other than
// Title and Body are opaque pass-through metadata for rendering.
type RawCommit struct {
	Hash   string
	Title  string
	Body   string
	Author string
	Email  string
	Date   string
}

// CommitIter is a pull-based stream of raw commits. Next returns io.EOF
// after the last commit. Close releases the underlying walk; it is safe to
// call more than once.
type CommitIter interface {
	Next() (RawCommit, error)
	Close()
}

// Repo wraps an opened git repository.
type Repo struct {
	repo *git.Repository
	path string
}

// Open opens the git repository at path, traversing up the directory tree
// to find the repository root (DetectDotGit).
func Open(path string) (*Repo, error) {
	if path == "" {
		path = "."
	}

	logDebug("[git] opening repository at %s", path)

	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening repository at %s: %w", path, err)
	}

	return &Repo{repo: repo, path: path}, nil
}

// TagNames returns the names of all tags in the repository, lightweight and
// annotated alike. Order is not significant; the tag resolver sorts.
func (r *Repo) TagNames() ([]string, error) {
	iter, err := r.repo.Tags()
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}
	defer iter.Close()

	var names []string
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		names = append(names, ref.Name().Short())
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("iterating tags: %w", err)
	}

	logDebug("[git] TagNames: found %d tags", len(names))
	return names, nil
}

// Commits streams the commits selected by a concrete range expression.
//
// "left..right" yields commits reachable from right but not from left, in
// commit-time order, newest first. The left endpoint's whole ancestry is
// enumerated up front so that ancestors re-reachable through a merged side
// branch stay excluded. A single revision yields all history reachable from
// it. Both endpoints accept anything go-git's revision resolution
// understands (HEAD, branch, tag, abbreviated hash, ~ and ^ suffixes).
func (r *Repo) Commits(rangeExpr string) (CommitIter, error) {
	left, right, err := splitRange(rangeExpr)
	if err != nil {
		return nil, err
	}

	from, err := r.resolveCommit(right)
	if err != nil {
		return nil, err
	}

	var seen map[plumbing.Hash]bool
	if left != "" {
		leftCommit, err := r.resolveCommit(left)
		if err != nil {
			return nil, err
		}
		seen, err = ancestorSet(leftCommit)
		if err != nil {
			return nil, err
		}
	}

	logDebug("[git] Commits: walking %s (excluding %d ancestors)", rangeExpr, len(seen))
	return &commitIter{iter: object.NewCommitIterCTime(from, seen, nil)}, nil
}

// ancestorSet collects the hashes of a commit and all its ancestors.
func ancestorSet(commit *object.Commit) (map[plumbing.Hash]bool, error) {
	seen := make(map[plumbing.Hash]bool)

	iter := object.NewCommitPreorderIter(commit, nil, nil)
	defer iter.Close()

	err := iter.ForEach(func(c *object.Commit) error {
		seen[c.Hash] = true
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking ancestors of %s: %w", commit.Hash, err)
	}
	return seen, nil
}

// splitRange splits "left..right" into its endpoints. A spec without ".."
// is a single right endpoint. Three-dot symmetric-difference ranges are not
// supported.
func splitRange(rangeExpr string) (left, right string, err error) {
	if rangeExpr == "" {
		return "", "", fmt.Errorf("empty revision range")
	}
	if strings.Contains(rangeExpr, "...") {
		return "", "", fmt.Errorf("symmetric-difference range %q is not supported", rangeExpr)
	}

	before, after, found := strings.Cut(rangeExpr, "..")
	if !found {
		return "", rangeExpr, nil
	}
	if before == "" || after == "" {
		return "", "", fmt.Errorf("invalid revision range %q", rangeExpr)
	}
	return before, after, nil
}

// resolveCommit resolves a revision spec to its commit object.
func (r *Repo) resolveCommit(rev string) (*object.Commit, error) {
	hash, err := r.repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return nil, fmt.Errorf("resolving revision %q: %w", rev, err)
	}

	commit, err := r.repo.CommitObject(*hash)
	if err != nil {
		return nil, fmt.Errorf("reading commit %s: %w", hash, err)
	}
	return commit, nil
}

// commitIter adapts a go-git object.CommitIter to the RawCommit stream.
type commitIter struct {
	iter   object.CommitIter
	closed bool
}

func (it *commitIter) Next() (RawCommit, error) {
	commit, err := it.iter.Next()
	if err != nil {
		if err == io.EOF || err == storer.ErrStop {
			return RawCommit{}, io.EOF
		}
		return RawCommit{}, fmt.Errorf("walking commits: %w", err)
	}
	return toRawCommit(commit), nil
}

func (it *commitIter) Close() {
	if !it.closed {
		it.iter.Close()
		it.closed = true
	}
}

// toRawCommit splits a commit message into title and body and copies the
// metadata clgen passes through to rendering.
func toRawCommit(commit *object.Commit) RawCommit {
	title, body, _ := strings.Cut(commit.Message, "\n")
	return RawCommit{
		Hash:   commit.Hash.String(),
		Title:  strings.TrimSpace(title),
		Body:   strings.TrimLeft(body, "\n"),
		Author: commit.Author.Name,
		Email:  commit.Author.Email,
		Date:   commit.Author.When.UTC().Format("2006-01-02"),
	}
}
