package runner

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bartekus/commitlint/internal/config"
	"github.com/bartekus/commitlint/internal/console"
	"github.com/bartekus/commitlint/internal/history"
	"github.com/bartekus/commitlint/internal/rules"
	"github.com/bartekus/commitlint/internal/testutil/golden"
)

// fakeHistory implements history.Source in memory.
type fakeHistory struct {
	messages map[string]string
	ranges   map[string][]string
	calls    []string
}

func (f *fakeHistory) CommitMessage(_ context.Context, hash string) (string, error) {
	f.calls = append(f.calls, "hash:"+hash)
	msg, ok := f.messages[hash]
	if !ok {
		return "", &history.ResolutionError{Hashes: []string{hash}}
	}
	return msg, nil
}

func (f *fakeHistory) CommitMessages(_ context.Context, from, to string) ([]string, error) {
	f.calls = append(f.calls, "range:"+from+".."+to)
	msgs, ok := f.ranges[from+".."+to]
	if !ok {
		return nil, &history.ResolutionError{Hashes: []string{from, to}}
	}
	return msgs, nil
}

func newTestRunner(cfg *config.Config, src history.Source) (*Runner, *console.Recorder) {
	rec := &console.Recorder{}
	if cfg == nil {
		cfg = config.Default()
	}
	return NewRunner(&Deps{Config: cfg, History: src, Console: rec}), rec
}

func TestRun_ValidMessage(t *testing.T) {
	r, rec := newTestRunner(nil, nil)

	dec, err := r.Run(context.Background(), Input{Message: "feat: valid commit message"})
	require.NoError(t, err)

	assert.True(t, dec.Passed())
	assert.Equal(t, ExitSuccess, dec.ExitCode)
	assert.Equal(t, []string{"⧗ Input:\nfeat: valid commit message\n", ValidationSuccessful}, rec.Successes())
	assert.Empty(t, rec.Errors())
}

func TestRun_InvalidMessage(t *testing.T) {
	r, rec := newTestRunner(nil, nil)

	dec, err := r.Run(context.Background(), Input{Message: "Invalid commit message"})
	require.NoError(t, err)

	assert.False(t, dec.Passed())
	assert.Equal(t, ExitFailure, dec.ExitCode)
	assert.Equal(t, []string{
		"⧗ Input:\nInvalid commit message\n",
		"✖ Found 1 error(s).",
		"- " + rules.IncorrectFormatError,
	}, rec.Errors())
	assert.Empty(t, rec.Successes())
}

func TestRun_SkipDetail(t *testing.T) {
	cfg := config.Default()
	cfg.SkipDetail = true
	r, rec := newTestRunner(cfg, nil)

	_, err := r.Run(context.Background(), Input{Message: "Invalid commit message"})
	require.NoError(t, err)
	assert.Equal(t, []string{"⧗ Input:\nInvalid commit message\n", ValidationFailed}, rec.Errors())

	rec.Lines = nil
	_, err = r.Run(context.Background(), Input{Message: "feat: fine"})
	require.NoError(t, err)
	assert.Equal(t, ValidationSuccessful, rec.Successes()[len(rec.Successes())-1])
}

func TestRun_HideInput(t *testing.T) {
	cfg := config.Default()
	cfg.HideInput = true
	r, rec := newTestRunner(cfg, nil)

	_, err := r.Run(context.Background(), Input{Message: "Invalid commit message"})
	require.NoError(t, err)
	assert.Equal(t, []string{"✖ Found 1 error(s).", "- " + rules.IncorrectFormatError}, rec.Errors())
}

func TestRun_HideInputAndSkipDetail(t *testing.T) {
	cfg := config.Default()
	cfg.HideInput = true
	cfg.SkipDetail = true
	r, rec := newTestRunner(cfg, nil)

	_, err := r.Run(context.Background(), Input{Message: "Invalid commit message"})
	require.NoError(t, err)
	assert.Equal(t, []string{ValidationFailed}, rec.Errors())
}

func TestRun_Quiet(t *testing.T) {
	cfg := config.Default()
	cfg.Quiet = true

	for _, msg := range []string{"feat: fine", "Invalid commit message"} {
		t.Run(msg, func(t *testing.T) {
			r, rec := newTestRunner(cfg, nil)
			dec, err := r.Run(context.Background(), Input{Message: msg})
			require.NoError(t, err)
			assert.Empty(t, rec.Lines)
			assert.Equal(t, msg == "feat: fine", dec.Passed())
		})
	}
}

func TestRun_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "COMMIT_EDITMSG")
	require.NoError(t, os.WriteFile(path, []byte("feat: valid commit message 2\n#this is a comment"), 0o600))

	r, rec := newTestRunner(nil, nil)
	dec, err := r.Run(context.Background(), Input{File: path})
	require.NoError(t, err)

	assert.True(t, dec.Passed())
	assert.Equal(t, ValidationSuccessful, rec.Successes()[1])
	assert.Equal(t, "feat: valid commit message 2", dec.Results[0].Header)
}

func TestRun_MissingFile(t *testing.T) {
	r, rec := newTestRunner(nil, nil)

	_, err := r.Run(context.Background(), Input{File: filepath.Join(t.TempDir(), "missing.txt")})
	require.Error(t, err)

	var ierr *InputError
	require.True(t, errors.As(err, &ierr))
	assert.Equal(t, KindFile, ierr.Kind)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Empty(t, rec.Lines)
}

func TestRun_Hash(t *testing.T) {
	src := &fakeHistory{messages: map[string]string{"abc123": "fix: resolve null pointer"}}
	r, _ := newTestRunner(nil, src)

	dec, err := r.Run(context.Background(), Input{Hash: "abc123"})
	require.NoError(t, err)
	assert.True(t, dec.Passed())
	assert.Equal(t, []string{"hash:abc123"}, src.calls)
}

func TestRun_UnknownHash(t *testing.T) {
	src := &fakeHistory{}
	r, rec := newTestRunner(nil, src)

	_, err := r.Run(context.Background(), Input{Hash: "nope"})
	var rerr *history.ResolutionError
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, []string{"nope"}, rerr.Hashes)
	assert.Empty(t, rec.Lines)
}

func TestRun_Range(t *testing.T) {
	src := &fakeHistory{ranges: map[string][]string{
		"a..HEAD": {"feat: ok", "bad message"},
	}}
	r, rec := newTestRunner(nil, src)

	dec, err := r.Run(context.Background(), Input{FromHash: "a"})
	require.NoError(t, err)

	assert.Equal(t, []string{"range:a..HEAD"}, src.calls)
	assert.False(t, dec.Passed())
	assert.Equal(t, ExitFailure, dec.ExitCode)
	assert.Equal(t, 1, dec.Failed)
	require.Len(t, dec.Results, 2)
	assert.True(t, dec.Results[0].Passed())
	assert.False(t, dec.Results[1].Passed())

	assert.Equal(t, []console.Line{
		{Text: "⧗ Input:\nfeat: ok\n"},
		{Text: ValidationSuccessful},
		{Error: true, Text: "⧗ Input:\nbad message\n"},
		{Error: true, Text: "✖ Found 1 error(s)."},
		{Error: true, Text: "- " + rules.IncorrectFormatError},
		{Error: true, Text: "commitlint: 1 of 2 commit(s) failed!"},
	}, rec.Lines)
}

func TestRun_RangeAllPass(t *testing.T) {
	src := &fakeHistory{ranges: map[string][]string{
		"start..end": {"feat: commit message 1", "fix: commit message 2"},
	}}
	r, rec := newTestRunner(nil, src)

	dec, err := r.Run(context.Background(), Input{FromHash: "start", ToHash: "end"})
	require.NoError(t, err)
	assert.True(t, dec.Passed())
	assert.Equal(t, "commitlint: All 2 commit(s) passed!", rec.Successes()[len(rec.Successes())-1])
}

func TestRun_EmptyRange(t *testing.T) {
	src := &fakeHistory{ranges: map[string][]string{"a..a": {}}}
	r, rec := newTestRunner(nil, src)

	dec, err := r.Run(context.Background(), Input{FromHash: "a", ToHash: "a"})
	require.NoError(t, err)
	assert.True(t, dec.Passed())
	assert.Equal(t, ExitSuccess, dec.ExitCode)
	assert.Equal(t, []string{"commitlint: No commits to check."}, rec.Successes())
}

func TestRun_RangeResolutionFailure(t *testing.T) {
	r, rec := newTestRunner(nil, &fakeHistory{})

	_, err := r.Run(context.Background(), Input{FromHash: "x", ToHash: "y"})
	var rerr *history.ResolutionError
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, []string{"x", "y"}, rerr.Hashes)
	assert.Empty(t, rec.Lines, "nothing is linted when the range fails")
}

func TestRun_EmptyLiteralMessage(t *testing.T) {
	r, rec := newTestRunner(nil, nil)

	dec, err := r.Run(context.Background(), Input{Literal: true})
	require.NoError(t, err)

	assert.Equal(t, ExitFailure, dec.ExitCode)
	require.Len(t, dec.Results, 1)
	require.Len(t, dec.Results[0].Violations, 1)
	assert.Equal(t, "header-format", dec.Results[0].Violations[0].Rule)
	assert.Equal(t, []string{
		"⧗ Input:\n\n",
		"✖ Found 1 error(s).",
		"- Commit message does not follow conventional commits format.",
	}, rec.Errors())
}

func TestRun_NoInput(t *testing.T) {
	r, _ := newTestRunner(nil, nil)

	_, err := r.Run(context.Background(), Input{})
	assert.ErrorIs(t, err, ErrNoInput)
}

func TestRun_Idempotent(t *testing.T) {
	r, _ := newTestRunner(nil, nil)
	in := Input{Message: "feat(x): y\nbody without blank"}

	first, err := r.Run(context.Background(), in)
	require.NoError(t, err)
	second, err := r.Run(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRun_WritesReport(t *testing.T) {
	store := NewReportStore(filepath.Join(t.TempDir(), ".commitlint", "report.json"))
	src := &fakeHistory{ranges: map[string][]string{"a..HEAD": {"feat: ok", "bad message"}}}
	r := NewRunner(&Deps{History: src, Console: console.Discard{}, Store: store})

	_, err := r.Run(context.Background(), Input{FromHash: "a"})
	require.NoError(t, err)

	rep, err := store.Read()
	require.NoError(t, err)
	require.NotNil(t, rep)
	assert.Equal(t, StatusFailure, rep.Status)
	assert.Equal(t, 1, rep.ExitCode)
	assert.Equal(t, 2, rep.Total)
	assert.Equal(t, 1, rep.Failed)
	require.Len(t, rep.Commits, 2)
	assert.True(t, rep.Commits[0].Passed)
	assert.Equal(t, "bad message", rep.Commits[1].Header)
	require.Len(t, rep.Commits[1].Violations, 1)
	assert.Equal(t, "header-format", rep.Commits[1].Violations[0].Rule)
}

func TestReportStore_ReadMissing(t *testing.T) {
	rep, err := NewReportStore(filepath.Join(t.TempDir(), "none.json")).Read()
	require.NoError(t, err)
	assert.Nil(t, rep)
}

func TestRun_RenderedOutput(t *testing.T) {
	var out, errOut bytes.Buffer
	src := &fakeHistory{ranges: map[string][]string{"a..HEAD": {"feat: ok", "bad message"}}}
	r := NewRunner(&Deps{
		History: src,
		Console: console.New(&out, &errOut, console.WithNoColor()),
	})

	_, err := r.Run(context.Background(), Input{FromHash: "a"})
	require.NoError(t, err)

	dir := golden.TestdataDir(t)
	golden.Assert(t, dir, "range_stdout", out.String())
	golden.Assert(t, dir, "range_stderr", errOut.String())
}

func TestInput_Kind(t *testing.T) {
	tests := []struct {
		name string
		in   Input
		want InputKind
	}{
		{"message wins over everything", Input{Message: "m", File: "f", Hash: "h", FromHash: "a"}, KindMessage},
		{"file wins over hash", Input{File: "f", Hash: "h", FromHash: "a"}, KindFile},
		{"hash wins over range", Input{Hash: "h", FromHash: "a", ToHash: "b"}, KindHash},
		{"range", Input{FromHash: "a"}, KindRange},
		{"empty literal message", Input{Literal: true, File: "f"}, KindMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.in.Kind()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := Input{ToHash: "b"}.Kind()
	assert.ErrorIs(t, err, ErrNoInput)
}
