package domain

import (
	"github.com/awnumar/memguard"
)

// Zero overwrites b with zeros in place. The backing array is wiped, so every
// slice sharing it observes the zeros.
func Zero(b []byte) {
	if len(b) == 0 {
		return
	}
	memguard.WipeBytes(b)
}
