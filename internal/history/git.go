package history

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"
)

// Git reads commit messages by invoking the git executable.
type Git struct {
	dir string
	log logrus.FieldLogger
}

// NewGit creates a resolver for the repository containing dir. An empty dir
// means the current working directory.
func NewGit(dir string, log logrus.FieldLogger) *Git {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Git{dir: dir, log: log}
}

// CommitMessage returns the full message of hash.
func (g *Git) CommitMessage(ctx context.Context, hash string) (string, error) {
	sha, err := g.revParse(ctx, hash)
	if err != nil {
		return "", &ResolutionError{Hashes: []string{hash}, Err: err}
	}

	msg, err := g.message(ctx, sha)
	if err != nil {
		return "", &ResolutionError{Hashes: []string{hash}, Err: err}
	}
	return msg, nil
}

// CommitMessages returns the messages of from, to and every commit between
// them, oldest first. Merge commits are included.
func (g *Git) CommitMessages(ctx context.Context, from, to string) ([]string, error) {
	if to == "" {
		to = DefaultToHash
	}
	hashes := []string{from, to}

	fromSHA, err := g.revParse(ctx, from)
	if err != nil {
		return nil, &ResolutionError{Hashes: hashes, Err: err}
	}
	toSHA, err := g.revParse(ctx, to)
	if err != nil {
		return nil, &ResolutionError{Hashes: hashes, Err: err}
	}

	if fromSHA == toSHA {
		g.log.WithField("range", from+".."+to).Debug("empty commit range")
		return []string{}, nil
	}

	if err := g.isAncestor(ctx, fromSHA, toSHA); err != nil {
		return nil, &ResolutionError{Hashes: hashes, Err: err}
	}

	first, err := g.message(ctx, fromSHA)
	if err != nil {
		return nil, &ResolutionError{Hashes: hashes, Err: err}
	}

	out, err := g.run(ctx, "log", "--reverse", "--date-order", "-z", "--format=%B", fromSHA+".."+toSHA)
	if err != nil {
		return nil, &ResolutionError{Hashes: hashes, Err: err}
	}

	messages := []string{first}
	parts := strings.Split(out, "\x00")
	if n := len(parts); n > 0 && strings.TrimSpace(parts[n-1]) == "" {
		parts = parts[:n-1]
	}
	for _, p := range parts {
		messages = append(messages, strings.Trim(p, "\n"))
	}

	g.log.WithFields(logrus.Fields{
		"range":   from + ".." + to,
		"commits": len(messages),
	}).Debug("resolved commit range")
	return messages, nil
}

func (g *Git) message(ctx context.Context, sha string) (string, error) {
	out, err := g.run(ctx, "show", "-s", "--format=%B", sha)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(out, "\n"), nil
}

func (g *Git) revParse(ctx context.Context, rev string) (string, error) {
	if strings.TrimSpace(rev) == "" {
		return "", errors.New("empty revision")
	}
	// Revisions are passed as arguments; never let one pose as an option.
	if strings.HasPrefix(rev, "-") {
		return "", fmt.Errorf("invalid revision %q", rev)
	}
	out, err := g.run(ctx, "rev-parse", "--verify", "--quiet", rev+"^{commit}")
	if err != nil {
		return "", fmt.Errorf("unknown revision %q", rev)
	}
	return strings.TrimSpace(out), nil
}

func (g *Git) isAncestor(ctx context.Context, from, to string) error {
	_, err := g.run(ctx, "merge-base", "--is-ancestor", from, to)
	if err == nil {
		return nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
		return ErrNotAncestor
	}
	return err
}

func (g *Git) run(ctx context.Context, args ...string) (string, error) {
	g.log.WithField("args", args).Debug("running git")

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = g.dir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("git %s failed: %w: %s", args[0], err, msg)
		}
		return "", fmt.Errorf("git %s failed: %w", args[0], err)
	}
	return string(out), nil
}
