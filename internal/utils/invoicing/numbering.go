package invoicing

import (
	"fmt"
	"strconv"
	"strings"
)

// numberWidth is the zero-padding width of generated invoice numbers. The width
// matters: per-owner ordering of invoice numbers is lexicographic on the stored
// string, which agrees with numeric order only while sequences stay below 10^5.
const numberWidth = 5

// FormatNumber renders a sequence value as a human-facing invoice number,
// e.g. 7 -> "INV-00007".
func FormatNumber(sequence int64) string {
	return fmt.Sprintf("INV-%0*d", numberWidth, sequence)
}

// NextNumber derives the next sequential invoice number from the latest existing
// one. An empty lastNumber starts the sequence at 1. A lastNumber without any
// digits also restarts at 1; the per-owner uniqueness constraint turns any
// resulting collision into a visible conflict at write time instead of a silent
// duplicate.
func NextNumber(lastNumber string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, lastNumber)

	seq := int64(1)
	if digits != "" {
		if n, err := strconv.ParseInt(digits, 10, 64); err == nil {
			seq = n + 1
		}
	}
	return FormatNumber(seq)
}
