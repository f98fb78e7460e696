package iojson

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// ErrNoInput is returned when neither arguments nor piped input were given.
var ErrNoInput = errors.New("no input provided (stdin is a terminal); pass arguments or pipe input")

// TokenReader yields whitespace separated tokens from command arguments or,
// when there are none, from piped stdin.
type TokenReader struct {
	Stdin io.Reader
	// IsTerminal reports whether Stdin is interactive. Defaults to checking
	// os.Stdin.
	IsTerminal func() bool
}

func (tr TokenReader) Read(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	isTerm := tr.IsTerminal
	if isTerm == nil {
		isTerm = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }
	}
	if isTerm() {
		return nil, ErrNoInput
	}

	in := tr.Stdin
	if in == nil {
		in = os.Stdin
	}

	var tokens []string
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		tokens = append(tokens, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return tokens, nil
}
