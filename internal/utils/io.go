package utils

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ReadLine writes prompt to w and reads one line from r with the trailing
// newline removed. A final line without a newline is accepted.
func ReadLine(r *bufio.Reader, w io.Writer, prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(w, prompt)
	}

	line, err := r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}
