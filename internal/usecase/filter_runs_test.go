package usecase

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strconv"
	"strings"
	"testing"

	"github.com/imonaar/uniqr/internal/domain"
	"github.com/imonaar/uniqr/internal/usecase/emit"
)

// --- fakes ---

type sliceSource struct {
	lines  []string
	pos    int
	err    error // returned instead of io.EOF once lines run out
	closed bool
}

func (s *sliceSource) Next() (domain.Line, error) {
	if s.pos >= len(s.lines) {
		if s.err != nil {
			return nil, s.err
		}
		return nil, io.EOF
	}
	l := domain.Line(s.lines[s.pos])
	s.pos++
	return l, nil
}

func (s *sliceSource) Close() error {
	s.closed = true
	return nil
}

type failAfterWriter struct {
	n   int
	err error
}

func (w *failAfterWriter) Write(p []byte) (int, error) {
	if w.n <= 0 {
		return 0, w.err
	}
	w.n--
	return len(p), nil
}

func filter(t *testing.T, lines []string, counting bool) (string, Stats) {
	t.Helper()
	var buf bytes.Buffer
	uc := NewFilterRuns(&sliceSource{lines: lines}, emit.New(&buf, emit.WithCount(counting)))
	stats, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	return buf.String(), stats
}

// splitRecords splits output back into records, keeping terminators.
func splitRecords(out string) []string {
	parts := strings.SplitAfter(out, "\n")
	if n := len(parts); n > 0 && parts[n-1] == "" {
		parts = parts[:n-1]
	}
	return parts
}

// --- examples ---

func TestFilterRuns_Example(t *testing.T) {
	in := []string{"a\n", "a\n", "b\n", "b\n", "b\n", "a\n"}

	out, stats := filter(t, in, false)
	if out != "a\nb\na\n" {
		t.Fatalf("unexpected output %q", out)
	}
	if stats.Lines != 6 || stats.Runs != 3 {
		t.Fatalf("unexpected stats %+v", stats)
	}

	out, _ = filter(t, in, true)
	if out != "   2 a\n   3 b\n   1 a\n" {
		t.Fatalf("unexpected counted output %q", out)
	}
}

func TestFilterRuns_TrailingSpaceIsSignificant(t *testing.T) {
	out, stats := filter(t, []string{"x\n", "x "}, false)
	if out != "x\nx " {
		t.Fatalf("unexpected output %q", out)
	}
	if stats.Runs != 2 {
		t.Fatalf("expected 2 runs, got %d", stats.Runs)
	}
}

func TestFilterRuns_TerminatorIgnoredForComparison(t *testing.T) {
	out, _ := filter(t, []string{"a\n", "a\r\n", "a"}, true)
	if out != "   3 a\n" {
		t.Fatalf("expected one run keeping the first line, got %q", out)
	}
}

func TestFilterRuns_FirstLineNeverMatchesEmptyRun(t *testing.T) {
	// A bare terminator has the same key as the empty representative.
	out, stats := filter(t, []string{"\n", "\n", "a\n"}, true)
	if out != "   2 \n   1 a\n" {
		t.Fatalf("unexpected output %q", out)
	}
	if stats.Runs != 2 {
		t.Fatalf("expected 2 runs, got %d", stats.Runs)
	}
}

// --- boundaries ---

func TestFilterRuns_EmptyInput(t *testing.T) {
	out, stats := filter(t, nil, true)
	if out != "" {
		t.Fatalf("expected empty output, got %q", out)
	}
	if stats.Lines != 0 || stats.Runs != 0 {
		t.Fatalf("unexpected stats %+v", stats)
	}
}

func TestFilterRuns_SingleLine(t *testing.T) {
	out, _ := filter(t, []string{"only\n"}, true)
	if out != "   1 only\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestFilterRuns_AllIdentical(t *testing.T) {
	in := make([]string, 12345)
	for i := range in {
		in[i] = "same\n"
	}
	out, _ := filter(t, in, true)
	if out != "12345 same\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

// --- properties ---

var propertyInputs = [][]string{
	{},
	{"a\n"},
	{"a\n", "a\n", "b\n", "b\n", "b\n", "a\n"},
	{"1\n", "2\n", "3\n"},
	{"z\n", "z\n", "z\n", "z"},
	{"\n", "\n", "x\n", "\n"},
	{"a \n", "a\n", "a\n", " a\n"},
	{"p\r\n", "p\n", "q\r\n", "q\r\n", "p\n"},
}

// collapse builds the expected non-counting output and run lengths.
func collapse(in []string) (string, []uint64) {
	var (
		out    strings.Builder
		counts []uint64
		prev   string
	)
	for i, l := range in {
		key := strings.TrimRight(l, "\r\n")
		if i > 0 && key == prev {
			counts[len(counts)-1]++
			continue
		}
		out.WriteString(l)
		counts = append(counts, 1)
		prev = key
	}
	return out.String(), counts
}

func TestFilterRuns_Properties(t *testing.T) {
	for _, in := range propertyInputs {
		wantOut, wantCounts := collapse(in)

		out, stats := filter(t, in, false)
		if out != wantOut {
			t.Errorf("%q: output %q, want %q", in, out, wantOut)
		}
		if stats.Runs != uint64(len(wantCounts)) {
			t.Errorf("%q: %d runs, want %d", in, stats.Runs, len(wantCounts))
		}

		counted, _ := filter(t, in, true)
		records := splitRecords(counted)
		if len(records) != len(wantCounts) {
			t.Errorf("%q: %d counted records, want %d", in, len(records), len(wantCounts))
			continue
		}
		var sum uint64
		for i, rec := range records {
			n, err := strconv.ParseUint(strings.TrimSpace(rec[:4]), 10, 64)
			if err != nil {
				t.Errorf("%q: bad count prefix in %q: %v", in, rec, err)
				continue
			}
			if n != wantCounts[i] {
				t.Errorf("%q: record %d count %d, want %d", in, i, n, wantCounts[i])
			}
			sum += n
		}
		if sum != uint64(len(in)) {
			t.Errorf("%q: counts sum to %d, want %d", in, sum, len(in))
		}
	}
}

func TestFilterRuns_Idempotent(t *testing.T) {
	for _, in := range propertyInputs {
		once, _ := filter(t, in, false)
		twice, _ := filter(t, splitRecords(once), false)
		if once != twice {
			t.Errorf("%q: second pass changed output %q -> %q", in, once, twice)
		}
	}
}

// --- errors ---

func TestFilterRuns_ReadErrorAborts(t *testing.T) {
	readErr := &domain.OpError{Op: "linesource.read", Kind: domain.KindRead, Err: errors.New("io failure")}
	src := &sliceSource{lines: []string{"a\n", "a\n"}, err: readErr}

	var buf bytes.Buffer
	_, err := NewFilterRuns(src, emit.New(&buf)).Execute(context.Background())
	if !domain.IsKind(err, domain.KindRead) {
		t.Fatalf("expected KindRead, got %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("pending run must not be flushed after a read error, got %q", buf.String())
	}
}

func TestFilterRuns_WriteErrorAborts(t *testing.T) {
	boom := errors.New("broken pipe")
	w := &failAfterWriter{n: 1, err: boom}
	src := &sliceSource{lines: []string{"a\n", "b\n", "c\n", "d\n"}}

	stats, err := NewFilterRuns(src, emit.New(w)).Execute(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("expected write error, got %v", err)
	}
	if !domain.IsKind(err, domain.KindWrite) {
		t.Fatalf("expected KindWrite, got %v", err)
	}
	if stats.Runs != 1 {
		t.Fatalf("expected 1 run written before failure, got %d", stats.Runs)
	}
	if src.pos != 3 {
		t.Fatalf("expected reading to stop at the failing flush, pos=%d", src.pos)
	}
}

func TestFilterRuns_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	_, err := NewFilterRuns(&sliceSource{lines: []string{"a\n"}}, emit.New(&buf)).Execute(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestFilterRuns_WithNilLoggerKeepsDefault(t *testing.T) {
	var buf bytes.Buffer
	uc := NewFilterRuns(&sliceSource{lines: []string{"a\n"}}, emit.New(&buf), WithLogger(nil))
	if uc.log == nil {
		t.Fatal("expected default logger")
	}
	if _, err := uc.Execute(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
