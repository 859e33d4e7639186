package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// seams for terminal input, replaced in tests
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getLines      = GetLines
	readPassword  = term.ReadPassword
)

// GetSimpleText prompts for a single line of text and returns it
// trimmed.
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	fmt.Fprintf(w, "%s: ", prompt)
	text, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// GetPassword prompts for a password without echoing it.
func GetPassword(w io.Writer, prompt string) ([]byte, error) {
	fmt.Fprint(w, prompt)
	password, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return password, nil
}

// GetLines prompts for lines of text until an empty line is entered.
// Blank input on the first line yields an empty slice.
func GetLines(reader *bufio.Reader, prompt string, w io.Writer) ([]string, error) {
	fmt.Fprintf(w, "%s:\n", prompt)
	var lines []string
	for {
		text, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		line := strings.TrimSpace(text)
		if line == "" {
			return lines, nil
		}
		lines = append(lines, line)
		if err == io.EOF {
			return lines, nil
		}
	}
}
