// Package terminal reads operator answers line by line and writes console output.
package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidNumber = errors.New("invalid number")

// MaxLineSize is the longest input line accepted. A longer line makes the
// next prompt return bufio.ErrTooLong.
const MaxLineSize = 1 << 20

type Terminal struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func New(in io.Reader, out io.Writer) *Terminal {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), MaxLineSize)

	return &Terminal{
		scanner: scanner,
		out:     out,
	}
}

// Prompt writes label and returns the next input line with surrounding
// whitespace removed. It returns io.EOF once input is exhausted.
func (t *Terminal) Prompt(label string) (string, error) {
	fmt.Fprint(t.out, label)

	if !t.scanner.Scan() {
		if err := t.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}

	return strings.TrimSpace(t.scanner.Text()), nil
}

func (t *Terminal) PromptInt(label string) (int, error) {
	line, err := t.Prompt(label)
	if err != nil {
		return 0, err
	}

	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, line)
	}
	return n, nil
}

func (t *Terminal) PromptDecimal(label string) (decimal.Decimal, error) {
	line, err := t.Prompt(label)
	if err != nil {
		return decimal.Zero, err
	}

	d, err := decimal.NewFromString(line)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidNumber, line)
	}
	return d, nil
}

func (t *Terminal) Println(a ...interface{}) {
	fmt.Fprintln(t.out, a...)
}
