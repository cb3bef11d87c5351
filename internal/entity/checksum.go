package entity

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
)

// ChecksumEntities computes the content checksum over the entity map.
// Entities are encoded in id order so the result is deterministic across
// writers. Revision and SaveID are deliberately excluded: the checksum
// answers "same content?", not "same write?".
func ChecksumEntities(entities map[string]*QuickTab) string {
	ids := make([]string, 0, len(entities))
	for id := range entities {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	h := sha256.New()
	for _, id := range ids {
		// Marshal of a plain struct cannot fail.
		b, _ := json.Marshal(entities[id])
		h.Write([]byte(id))
		h.Write(b)
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Seal stamps the snapshot's checksum from its current entities.
func (s *Snapshot) Seal() {
	s.Checksum = ChecksumEntities(s.Entities)
}

// ChecksumOK reports whether the stored checksum matches the entities.
// A snapshot with an empty checksum (never sealed) is treated as valid so
// that legacy records remain readable.
func (s *Snapshot) ChecksumOK() bool {
	if s.Checksum == "" {
		return true
	}
	return s.Checksum == ChecksumEntities(s.Entities)
}
