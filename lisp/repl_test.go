package lisp

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	lisptype "github.com/ian-bird/lispy/lisp_type"
	"github.com/peterh/liner"
)

func TestEvalStringLastValue(t *testing.T) {
	frame := NewTopLevelFrame()
	got, err := EvalString("(define r 10) (* r r)", frame)
	if err != nil {
		t.Fatalf("EvalString error: %v", err)
	}
	if got.Type != lisptype.Number || got.Number != 100 {
		t.Fatalf("EvalString = %v, want 100", Print(got))
	}
}

func TestEvalStringBlank(t *testing.T) {
	got, err := EvalString("  \n", NewTopLevelFrame())
	if err != nil {
		t.Fatalf("EvalString error: %v", err)
	}
	if got.Type != lisptype.Empty {
		t.Fatalf("EvalString of blank input = %v, want empty", got.Type)
	}
}

func TestEvalStringStopsAtFirstError(t *testing.T) {
	frame := NewTopLevelFrame()
	_, err := EvalString("(define a 1) (set! b 2) (define c 3)", frame)
	if !errors.Is(err, lisptype.ErrUnboundVariable) {
		t.Fatalf("EvalString error = %v, want ErrUnboundVariable", err)
	}
	if !frame.Bound("a") {
		t.Fatalf("forms before the failure should have been evaluated")
	}
	if frame.Bound("c") {
		t.Fatalf("forms after the failure should not have been evaluated")
	}
}

func TestEvalStringRecoversAfterError(t *testing.T) {
	frame := NewTopLevelFrame()
	if _, err := EvalString("(+ 1", frame); !errors.Is(err, lisptype.ErrUnexpectedEndOfInput) {
		t.Fatalf("EvalString error = %v, want ErrUnexpectedEndOfInput", err)
	}
	got, err := EvalString("(+ 1 1)", frame)
	if err != nil || got.Number != 2 {
		t.Fatalf("EvalString after an error = %v, %v; want 2", Print(got), err)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "defs.lisp")
	src := "(define a 2)\n(define b\n  (* a 3))\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	frame := NewTopLevelFrame()
	if err := LoadFile(path, frame); err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}
	wantNumber(t, frame, "b", 6)
}

func TestLoadFileErrors(t *testing.T) {
	if err := LoadFile(filepath.Join(t.TempDir(), "missing.lisp"), NewTopLevelFrame()); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("LoadFile(missing) error = %v, want fs.ErrNotExist", err)
	}

	path := filepath.Join(t.TempDir(), "bad.lisp")
	if err := os.WriteFile(path, []byte("(define a 1))"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := LoadFile(path, NewTopLevelFrame()); !errors.Is(err, lisptype.ErrUnexpectedToken) {
		t.Fatalf("LoadFile(bad) error = %v, want ErrUnexpectedToken", err)
	}
}

func TestIncomplete(t *testing.T) {
	cases := []struct {
		src  string
		want bool
	}{
		{"(+ 1", true},
		{"(define x\n(+ 1", true},
		{"(+ 1 2)", false},
		{"x", false},
		{")", false},
		{"", false},
	}
	for _, c := range cases {
		if got := incomplete(c.src); got != c.want {
			t.Errorf("incomplete(%q) = %v, want %v", c.src, got, c.want)
		}
	}
}

func TestPrint(t *testing.T) {
	cases := []struct {
		v    lisptype.Value
		want string
	}{
		{lisptype.NewNumber(100), "100"},
		{lisptype.NewNumber(2.5), "2.5"},
		{lisptype.NewNumber(-3), "-3"},
		{lisptype.NewNumber(math.Inf(1)), "+Inf"},
		{lisptype.EmptyValue(), "No result returned"},
	}
	for _, c := range cases {
		if got := Print(c.v); got != c.want {
			t.Errorf("Print(%v) = %q, want %q", c.v.Number, got, c.want)
		}
	}

	plus, err := NewTopLevelFrame().Find("+")
	if err != nil {
		t.Fatalf("Find(+) error: %v", err)
	}
	if got := Print(plus); got != "#<procedure>" {
		t.Errorf("Print(+) = %q", got)
	}
}

type promptResult struct {
	line string
	err  error
}

// replays a fixed list of prompt results and records the prompts shown
type scriptedPrompter struct {
	results []promptResult
	prompts []string
}

func (p *scriptedPrompter) Prompt(prompt string) (string, error) {
	p.prompts = append(p.prompts, prompt)
	if len(p.results) == 0 {
		return "", io.EOF
	}
	r := p.results[0]
	p.results = p.results[1:]
	return r.line, r.err
}

func TestReadInputJoinsContinuationLines(t *testing.T) {
	p := &scriptedPrompter{results: []promptResult{{line: "(+ 1"}, {line: "2)"}}}
	var errOut bytes.Buffer
	got, ok := readInput(p, "> ", ". ", &errOut)
	if !ok || got != "(+ 1\n2)" {
		t.Fatalf("readInput = %q, %v; want \"(+ 1\\n2)\", true", got, ok)
	}
	if want := []string{"> ", ". "}; strings.Join(p.prompts, "|") != strings.Join(want, "|") {
		t.Fatalf("prompts shown = %q, want %q", p.prompts, want)
	}
	if errOut.Len() != 0 {
		t.Fatalf("unexpected error output %q", errOut.String())
	}
}

func TestReadInputEndOfSession(t *testing.T) {
	var errOut bytes.Buffer
	if _, ok := readInput(&scriptedPrompter{}, "> ", ". ", &errOut); ok {
		t.Fatalf("readInput at EOF should end the session")
	}
	if errOut.Len() != 0 {
		t.Fatalf("EOF should end the session quietly, got %q", errOut.String())
	}
}

func TestReadInputAbortKeepsSession(t *testing.T) {
	p := &scriptedPrompter{results: []promptResult{{line: "(+ 1"}, {err: liner.ErrPromptAborted}}}
	got, ok := readInput(p, "> ", ". ", io.Discard)
	if !ok || got != "" {
		t.Fatalf("readInput after ctrl-c = %q, %v; want \"\", true", got, ok)
	}
}

func TestReadInputReportsPromptError(t *testing.T) {
	p := &scriptedPrompter{results: []promptResult{{err: errors.New("terminal gone")}}}
	var errOut bytes.Buffer
	if _, ok := readInput(p, "> ", ". ", &errOut); ok {
		t.Fatalf("readInput should end the session on a prompt error")
	}
	if !strings.Contains(errOut.String(), "terminal gone") {
		t.Fatalf("error output = %q, want it to mention the prompt error", errOut.String())
	}
}

// keeps history lines in memory, one per line like liner does
type memoryHistory struct {
	lines    []string
	writeErr error
}

func (h *memoryHistory) ReadHistory(r io.Reader) (int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}
	h.lines = strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	return len(h.lines), nil
}

func (h *memoryHistory) WriteHistory(w io.Writer) (int, error) {
	if h.writeErr != nil {
		return 0, h.writeErr
	}
	n := 0
	for _, line := range h.lines {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

func TestHistoryRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")
	saved := &memoryHistory{lines: []string{"(+ 1 2)", "pi"}}
	if err := saveHistory(saved, path); err != nil {
		t.Fatalf("saveHistory error: %v", err)
	}
	loaded := &memoryHistory{}
	if err := loadHistory(loaded, path); err != nil {
		t.Fatalf("loadHistory error: %v", err)
	}
	if strings.Join(loaded.lines, "|") != "(+ 1 2)|pi" {
		t.Fatalf("loaded history = %q, want [(+ 1 2) pi]", loaded.lines)
	}
}

func TestLoadHistoryMissingFile(t *testing.T) {
	if err := loadHistory(&memoryHistory{}, filepath.Join(t.TempDir(), "none")); err != nil {
		t.Fatalf("loadHistory on a missing file error: %v", err)
	}
}

func TestSaveHistoryErrors(t *testing.T) {
	dir := t.TempDir()
	if err := saveHistory(&memoryHistory{}, filepath.Join(dir, "no-such-dir", "history")); err == nil {
		t.Fatalf("saveHistory into a missing directory should fail")
	}
	writeErr := errors.New("disk full")
	err := saveHistory(&memoryHistory{writeErr: writeErr}, filepath.Join(dir, "history"))
	if !errors.Is(err, writeErr) {
		t.Fatalf("saveHistory error = %v, want %v", err, writeErr)
	}
}
