package session

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"bikeshare/utils"
)

const (
	yes          = "yes"
	no           = "no"
	invalidInput = "Invalid input.\n"
)

// prompter asks questions until a valid answer is given
type prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// ask prints the question and returns the answer in lower case without surrounding spaces.
// io.EOF is returned when the input is closed
func (p *prompter) ask(question string) (string, error) {
	fmt.Fprint(p.out, question)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.ToLower(strings.TrimSpace(p.scanner.Text())), nil
}

// askChoice repeats the question until the answer is one of validAnswers
func (p *prompter) askChoice(question string, validAnswers []string) (string, error) {
	for {
		answer, err := p.ask(question)
		if err != nil {
			return "", err
		}
		if utils.ContainsString(answer, validAnswers) {
			return answer, nil
		}
		fmt.Fprint(p.out, invalidInput+"\n")
	}
}

func (p *prompter) askYesNo(question string) (bool, error) {
	answer, err := p.askChoice(question, []string{yes, no})
	if err != nil {
		return false, err
	}
	return answer == yes, nil
}
