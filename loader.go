package holdings

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/etnz/holdings/date"
)

// ReadLines reads all lines from r, without their "\n" or "\r\n" ending.
// Lines have no length limit: a long line is returned as is and left to
// ParseTransaction to reject.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			lines = append(lines, strings.TrimSuffix(line, "\r"))
		}
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// CalculateReader reads a transaction file from r and computes the holdings as
// of cutoff. If r cannot be read entirely, the error wraps ErrUnreadableInput
// and no result is returned.
func CalculateReader(r io.Reader, cutoff date.Date) (Result, error) {
	lines, err := ReadLines(r)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrUnreadableInput, err)
	}
	return Calculate(lines, cutoff), nil
}

// ReadFile reads all lines of the file at path. Errors wrap
// ErrUnreadableInput.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: could not open transaction file %q: %w", ErrUnreadableInput, path, err)
	}
	defer f.Close()

	lines, err := ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("%w: could not read transaction file %q: %w", ErrUnreadableInput, path, err)
	}
	return lines, nil
}

// CalculateFile is CalculateReader on the file at path.
func CalculateFile(path string, cutoff date.Date) (Result, error) {
	lines, err := ReadFile(path)
	if err != nil {
		return Result{}, err
	}
	return Calculate(lines, cutoff), nil
}
