package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/matzehuels/strata/pkg/strata"
)

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...interface{}) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	// Use full SHA-256 hash (64 hex chars / 256 bits) to prevent collisions
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// TableKey returns the cache key of a table built from weights and
// fallback. Keys do not depend on map iteration order. Weights are
// encoded with strconv so that NaN and infinities, which JSON cannot
// carry, still produce distinct keys.
func TableKey(weights map[strata.Token]float64, fallback float64) string {
	enc := make(map[strata.Token]string, len(weights))
	for tok, w := range weights {
		enc[tok] = strconv.FormatFloat(w, 'g', -1, 64)
	}
	return hashKey(KeyTypeTable, enc, strconv.FormatFloat(fallback, 'g', -1, 64))
}
