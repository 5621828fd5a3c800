// SPDX-License-Identifier: MIT

package interpreter

import (
	"strconv"
	"strings"
)

// Tokenize splits line on runs of whitespace. Leading and trailing
// whitespace produce no empty tokens; a blank line yields none.
func Tokenize(line string) []string {
	return strings.Fields(line)
}

// ParseRegister decodes a register token: exactly two bytes whose second byte
// is an ASCII digit. The first byte is not checked. Returns the slot 0..9.
func ParseRegister(tok string) (int, error) {
	if len(tok) != 2 || tok[1] < '0' || tok[1] > '9' {
		return 0, &TokenError{Err: ErrNotRegister, Token: tok}
	}
	return int(tok[1] - '0'), nil
}

// ParseIndex decodes a signed decimal index: one optional leading sign
// followed by at least one digit, in int range. Forms such as "+-3", "1-2"
// or a lone "-" are rejected.
func ParseIndex(tok string) (int, error) {
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, ErrInvalidFormat
	}
	return v, nil
}
