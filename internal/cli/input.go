package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dmitrijs2005/accountbook/internal/models"
	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// GetSimpleText prints a prompt to w and reads a single line of input from reader.
// The line is trimmed. If EOF occurs after some input was read, the partial
// line is returned.
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

// GetRawText is GetSimpleText without trimming: only the line ending is
// removed, so surrounding spaces reach the caller.
func GetRawText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || len(line) == 0) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// GetPassword prints prompt to w and reads a password from the terminal
// without echo. A newline is printed after the read to keep the UI tidy.
func GetPassword(prompt string, w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, prompt+": "); err != nil {
		return nil, err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}

// ParseAccountType maps user input to an account type. It accepts the short
// names "ldap" and "local" in any case as well as the stored values. Anything
// else is returned as is so that validation can reject it.
func ParseAccountType(s string) models.AccountType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ldap":
		return models.AccountTypeLDAP
	case "local", strings.ToLower(string(models.AccountTypeLocal)):
		return models.AccountTypeLocal
	}
	return models.AccountType(strings.TrimSpace(s))
}

// typeName is the short name of t shown in prompts and listings.
func typeName(t models.AccountType) string {
	switch t {
	case models.AccountTypeLDAP:
		return "ldap"
	case models.AccountTypeLocal:
		return "local"
	}
	return string(t)
}

func printf(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
