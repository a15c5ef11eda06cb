// Package leaderboard ranks past rounds, grouped by the configuration they
// were played with.
package leaderboard

import (
	"slices"

	"github.com/abhisek/mathsprint/internal/problemgen"
	"github.com/abhisek/mathsprint/internal/store"
)

// MaxEntries is the number of records kept per group.
const MaxEntries = 10

// Group is one configuration's ranking.
type Group struct {
	// Key is the configuration signature, e.g. "+×(neg)".
	Key string

	// Config is the first-seen configuration with this key.
	Config problemgen.Config

	// Entries holds at most MaxEntries records, best first.
	Entries []store.GameRecord
}

// Top returns the group's best record.
func (g Group) Top() store.GameRecord {
	return g.Entries[0]
}

// Aggregate groups records by configuration key, ranks each group by score
// (ties go to the more recent record), keeps the top MaxEntries, and orders
// the groups by the timestamp of their top record, most recent first.
// records is not modified.
func Aggregate(records []store.GameRecord) []Group {
	groups := []Group{}
	index := make(map[string]int)

	for _, rec := range records {
		key := rec.Config.Key()
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, Group{Key: key, Config: rec.Config})
		}
		groups[i].Entries = append(groups[i].Entries, rec)
	}

	for i := range groups {
		slices.SortStableFunc(groups[i].Entries, compareRecords)
		if len(groups[i].Entries) > MaxEntries {
			groups[i].Entries = groups[i].Entries[:MaxEntries]
		}
	}

	slices.SortStableFunc(groups, func(a, b Group) int {
		return b.Top().Timestamp.Compare(a.Top().Timestamp)
	})
	return groups
}

// compareRecords orders by score descending, then timestamp descending.
func compareRecords(a, b store.GameRecord) int {
	if a.Score != b.Score {
		return b.Score - a.Score
	}
	return b.Timestamp.Compare(a.Timestamp)
}
