package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// prompter reads one trimmed line per question from the session input.
type prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{scanner: bufio.NewScanner(in), out: out}
}

// ask prints prompt and returns the next input line. It returns io.EOF
// once input is exhausted.
func (p *prompter) ask(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.scanner.Scan() {
		fmt.Fprintln(p.out)
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}

// confirm asks a yes/no question. An empty answer means yes.
func (p *prompter) confirm(question string) (bool, error) {
	answer, err := p.ask(question + " [Y/n] ")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "", "y", "ye", "yes":
		return true, nil
	}
	return false, nil
}

func (p *prompter) say(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format+"\n", args...)
}
