package lisp

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	lisptype "github.com/ian-bird/lispy/lisp_type"
	"github.com/peterh/liner"
)

// reads every form in s and evaluates them in order against frame.
// the value of the last form is returned
func EvalString(s string, frame *lisptype.Frame) (lisptype.Value, error) {
	forms, err := ReadAll(s)
	if err != nil {
		return lisptype.EmptyValue(), err
	}
	result := lisptype.EmptyValue()
	for _, form := range forms {
		result, err = Eval(form, frame)
		if err != nil {
			return lisptype.EmptyValue(), err
		}
	}
	return result, nil
}

// evaluates the contents of a file into frame
func LoadFile(fileName string, frame *lisptype.Frame) error {
	bytes, err := os.ReadFile(fileName)
	if err != nil {
		return err
	}
	if _, err := EvalString(string(bytes), frame); err != nil {
		return fmt.Errorf("load %v: %w", fileName, err)
	}
	return nil
}

// true when src only failed to read because it stopped partway through a form
func incomplete(src string) bool {
	_, err := ReadAll(src)
	return errors.Is(err, lisptype.ErrUnexpectedEndOfInput)
}

// the part of the line editor readInput needs
type prompter interface {
	Prompt(prompt string) (string, error)
}

// the part of the line editor history is kept through
type historyStore interface {
	ReadHistory(r io.Reader) (int, error)
	WriteHistory(w io.Writer) (int, error)
}

// prompts until the text collected forms complete input.
// ok is false once the user ends the session, read errors
// other than EOF are reported on errOut first
func readInput(p prompter, prompt, cont string, errOut io.Writer) (string, bool) {
	var b strings.Builder
	for {
		currentPrompt := prompt
		if b.Len() > 0 {
			currentPrompt = cont
		}
		line, err := p.Prompt(currentPrompt)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		// ctrl-c drops whatever was typed so far
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", true
		}
		if err != nil {
			fmt.Fprintf(errOut, "read: %v\n", err)
			return "", false
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
		if !incomplete(b.String()) {
			return b.String(), true
		}
	}
}

// a missing history file is not an error, there is just nothing to load yet
func loadHistory(h historyStore, path string) error {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("history: %w", err)
	}
	defer f.Close()
	if _, err := h.ReadHistory(f); err != nil {
		return fmt.Errorf("history: reading %v: %w", path, err)
	}
	return nil
}

func saveHistory(h historyStore, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("history: %w", err)
	}
	if _, err := h.WriteHistory(f); err != nil {
		f.Close()
		return fmt.Errorf("history: writing %v: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("history: %w", err)
	}
	return nil
}

// runs the read eval print loop against frame until the user ends the session.
// history is loaded from and saved to historyPath when it is not empty
func Repl(frame *lisptype.Frame, prompt, historyPath string) {
	fmt.Printf("Lisp interactive session\n")
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if historyPath != "" {
		if err := loadHistory(ln, historyPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
		defer func() {
			if err := saveHistory(ln, historyPath); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
		}()
	}

	cont := strings.Repeat(" ", max(len(prompt)-2, 0)) + ". "
	for {
		userInput, ok := readInput(ln, prompt, cont, os.Stderr)
		if !ok {
			fmt.Println()
			return
		}
		if strings.TrimSpace(userInput) == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(userInput, "\n", " "))

		output, err := EvalString(userInput, frame)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		fmt.Println(Print(output))
	}
}
