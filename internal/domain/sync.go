package domain

import "time"

// SyncResult summarizes one sync run for a source. Errors holds per-item
// persistence failures and per-collection fetch failures; a non-empty list
// does not by itself mean the run failed.
type SyncResult struct {
	SourceID string        `json:"source_id"`
	Fetched  int           `json:"fetched"`
	Synced   int           `json:"synced"`
	Skipped  int           `json:"skipped"`
	Errors   []string      `json:"errors,omitempty"`
	Message  string        `json:"message"`
	Duration time.Duration `json:"-"`
}

// NothingToSync reports whether the run completed but found no new content.
func (r *SyncResult) NothingToSync() bool {
	return r.Synced == 0 && len(r.Errors) == 0
}
