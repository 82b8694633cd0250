package models

import (
	"time"

	"github.com/guregu/null/v6"
)

// QuestKeys holds the per-part decryption keys issued by the server for
// one quest. Key2 and Key3 are omitted from the API response until the
// matching part unlocks, so they are nullable. The same struct doubles
// as the persistent cache row.
type QuestKeys struct {
	ID        uint        `gorm:"primarykey" json:"-"`
	Year      int         `gorm:"uniqueIndex:idx_quest_keys,priority:1;not null" json:"-"`
	Day       int         `gorm:"uniqueIndex:idx_quest_keys,priority:2;not null" json:"-"`
	Key1      string      `gorm:"not null" json:"key1"`
	Key2      null.String `json:"key2"`
	Key3      null.String `json:"key3"`
	FetchedAt time.Time   `json:"-"`
}

// HasPart reports whether the key for the given part has been issued.
// Out-of-range parts report false; the crypto layer owns the contract
// violation error for those.
func (k *QuestKeys) HasPart(part int) bool {
	switch part {
	case 1:
		return k.Key1 != ""
	case 2:
		return k.Key2.Valid && k.Key2.String != ""
	case 3:
		return k.Key3.Valid && k.Key3.String != ""
	}
	return false
}

// AvailableParts counts the unlocked parts. Parts unlock in order, so
// this equals the highest unlocked part number.
func (k *QuestKeys) AvailableParts() int {
	n := 0
	for part := 1; part <= MaxPart; part++ {
		if k.HasPart(part) {
			n++
		}
	}
	return n
}
