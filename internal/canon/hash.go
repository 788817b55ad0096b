package canon

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// DomainSnapshot separates snapshot hashes from any other hash family.
const DomainSnapshot = "gildedrose/snapshot/v1"

// hashWithDomain computes SHA256(domain + 0x00 + data).
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// SnapshotHash computes a content address for the state of an inventory on a
// given day. items are encoded in order; reordering changes the hash.
func SnapshotHash(day int, items []map[string]any) (string, error) {
	data, err := MarshalCanonical(map[string]any{
		"day":   day,
		"items": items,
	})
	if err != nil {
		return "", fmt.Errorf("snapshot hash: %w", err)
	}
	return hashWithDomain(DomainSnapshot, data), nil
}
