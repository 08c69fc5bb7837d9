package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"os"
	"strings"
	"time"
)

// EnvOrDefault returns ENV value or fallback default.
func EnvOrDefault(key, def string) string {
	v := os.Getenv(key)
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

// GenerateClientReferenceID builds the reference sent upstream with every
// booking commit: a 14-digit timestamp plus a random 3-digit suffix,
// "20251027153000#042". The upstream treats it as opaque.
func GenerateClientReferenceID() string {
	ts := time.Now().UTC().Format("20060102150405")
	n, err := rand.Int(rand.Reader, big.NewInt(1000))
	if err != nil {
		// crypto/rand failing is effectively fatal elsewhere; a zero
		// suffix keeps the reference well-formed.
		return ts + "#000"
	}
	return fmt.Sprintf("%s#%03d", ts, n.Int64())
}
