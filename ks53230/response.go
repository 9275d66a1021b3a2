package ks53230

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/labkit/go-counter/counter"
)

// parseFloatList parses an instrument reply holding comma-separated numeric
// samples, e.g. "+1.00000000000E+06,+9.99999999999E+05".
// Empty tokens are skipped; a non-numeric token fails with ErrMalformedValue.
func parseFloatList(text string) ([]float64, error) {
	var values []float64
	for _, token := range strings.Split(text, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		v, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return nil, fmt.Errorf("sample %q: %w", token, counter.ErrMalformedValue)
		}
		values = append(values, v)
	}

	return values, nil
}

// parseChunk parses the reply of a partial read (R?) command.
//
// The reply is prefixed with non-numeric header bytes that are skipped by
// scanning forward to the first '+' sign (see page 26 of the 53230A
// Programmer's Reference). A reply that is a bare block header carries no
// fresh samples and yields an empty result; any other reply without a '+'
// fails with ErrMalformedValue.
func parseChunk(text string) ([]float64, error) {
	i := strings.IndexByte(text, '+')
	if i < 0 {
		if isEmptyBlock(text) {
			return nil, nil
		}
		return nil, fmt.Errorf("chunk header %q has no sample marker: %w", text, counter.ErrMalformedValue)
	}

	return parseFloatList(text[i:])
}

// isEmptyBlock reports whether text is an IEEE definite-length block header
// with no payload, e.g. "#10", or nothing at all.
func isEmptyBlock(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return true
	}
	if text[0] != '#' {
		return false
	}
	for _, r := range text[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
