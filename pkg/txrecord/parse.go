package txrecord

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"
)

// transactionPattern accepts a signed number or an unsigned number with a fraction.
var transactionPattern = regexp.MustCompile(`^(?:[+-][0-9]+\.?[0-9]*|[0-9]*\.[0-9]+)$`)

// ParseTransaction parses a single transaction line without its newline.
func ParseTransaction(line string) (Transaction, error) {
	if !transactionPattern.MatchString(line) {
		return 0, ErrInvalidTransaction
	}
	v, err := strconv.ParseFloat(line, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidTransaction, err)
	}
	// "-0.00" is a withdrawal that rounded to zero; keep it below zero so it
	// formats the same way again.
	if v == 0 && math.Signbit(v) {
		v = -math.SmallestNonzeroFloat64
	}
	return Transaction(v), nil
}

// IsMarker reports whether line is a section marker
func IsMarker(line string) bool {
	return line == BeginMarker || line == EndMarker
}

// Parse reads sections from r until EOF. Every section must open with R and
// close with W; anything between them must be a transaction.
func Parse(r io.Reader) ([]Section, error) {
	scanner := bufio.NewScanner(r)
	var (
		sections []Section
		current  Section
		inside   bool
		lineNo   int
	)

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		if !inside {
			if line != BeginMarker {
				return nil, &ParseError{Line: lineNo, Text: line, Err: ErrMissingBegin}
			}
			inside = true
			current = Section{}
			continue
		}

		if line == EndMarker {
			sections = append(sections, current)
			inside = false
			continue
		}

		t, err := ParseTransaction(line)
		if err != nil {
			return nil, &ParseError{Line: lineNo, Text: line, Err: err}
		}
		current = append(current, t)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if inside {
		return nil, &ParseError{Line: lineNo, Err: ErrUnterminatedSection}
	}
	return sections, nil
}
