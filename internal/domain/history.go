package domain

import "time"

// HistoryLimit caps the number of retained history entries.
// The oldest entry is evicted when the cap is exceeded.
const HistoryLimit = 1000

// HistoryEntry records one confirmed page visit.
type HistoryEntry struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	Title     string    `json:"title"`
	VisitedAt time.Time `json:"visitedAt"`
}

// PrependHistory inserts entry at the front (newest-first order) and
// enforces HistoryLimit by dropping the oldest entries.
func PrependHistory(history []HistoryEntry, entry HistoryEntry) []HistoryEntry {
	history = append([]HistoryEntry{entry}, history...)
	if len(history) > HistoryLimit {
		history = history[:HistoryLimit]
	}
	return history
}

// RecordableURL reports whether a navigated URL should enter history.
func RecordableURL(url string) bool {
	return url != "" && url != BlankURL
}
