package cli

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dmitrijs2005/hashkeeper/internal/common"
	"github.com/dmitrijs2005/hashkeeper/internal/hashword"
	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
// In tests you can replace it with a stub to avoid touching the terminal.
var readPassword = term.ReadPassword

// isTerminal reports whether fd is an interactive terminal. When stdin is
// piped, secrets are read as plain lines instead.
var isTerminal = term.IsTerminal

// GetSimpleText prints a prompt to w and reads a single line of input from reader.
// The trailing newline is trimmed. If EOF occurs after some input was read,
// the partial line is returned.
//
// Example prompt format:
//
//	Prompt text
//	> _
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Confirm asks a yes/no question and reports whether the answer was "y" or
// "yes". Any other answer, including an empty line, means no.
func Confirm(reader *bufio.Reader, prompt string, w io.Writer) (bool, error) {
	answer, err := GetSimpleText(reader, prompt, w)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

// readSecret reads one line without echo. The returned slice should be wiped
// by the caller.
//
// Lines already buffered in reader (typed ahead or pasted) were echoed
// anyway and are consumed first, so input stays in order.
func readSecret(reader *bufio.Reader, prompt string, w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprintf(w, "Enter %s: ", prompt); err != nil {
		return nil, err
	}

	fd := int(os.Stdin.Fd())
	if isTerminal(fd) && reader.Buffered() == 0 {
		secret, err := readPassword(fd)
		fmt.Fprintln(w)
		if err != nil {
			return nil, err
		}
		return secret, nil
	}

	line, err := reader.ReadBytes('\n')
	if err != nil && !(errors.Is(err, io.EOF) && len(line) > 0) {
		return nil, err
	}
	return bytes.TrimSpace(line), nil
}

// GetSecretNumber reads a runtime input without echo and parses it as a
// positive integer, asking again until the value is valid. The raw bytes are
// wiped once parsed.
func GetSecretNumber(reader *bufio.Reader, prompt string, w io.Writer) (int64, error) {
	for {
		raw, err := readSecret(reader, prompt, w)
		if err != nil {
			return 0, err
		}
		v, err := hashword.ParseInput(string(raw))
		common.WipeByteArray(raw)
		if err == nil {
			return v, nil
		}
		fmt.Fprintf(w, "Error. %s must be a positive whole number.\n", prompt)
	}
}
