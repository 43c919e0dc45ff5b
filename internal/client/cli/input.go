package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

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

// GetChoice keeps prompting until the answer is one of choices. An empty
// answer is returned as is when allowEmpty is set.
func GetChoice(reader *bufio.Reader, prompt string, choices []string, allowEmpty bool, w io.Writer) (string, error) {
	full := fmt.Sprintf("%s (%s)", prompt, strings.Join(choices, ", "))
	for {
		s, err := GetSimpleText(reader, full, w)
		if err != nil {
			return "", err
		}
		if s == "" && allowEmpty {
			return "", nil
		}
		for _, c := range choices {
			if strings.EqualFold(s, c) {
				return c, nil
			}
		}
		fmt.Fprintf(w, "%q is not one of %s\n", s, strings.Join(choices, ", "))
	}
}
