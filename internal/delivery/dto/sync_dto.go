package dto

import "time"

// SyncSummary holds the outcome counts of one sync call.
// Received always equals Inserted + Skipped + Errored.
type SyncSummary struct {
	RunID    string `json:"run_id"`
	Table    string `json:"table"`
	Cutoff   string `json:"cutoff"`
	Received int    `json:"received"`
	Inserted int    `json:"inserted"`
	Skipped  int    `json:"skipped"`
	Errored  int    `json:"errored"`
}

// SyncResult is the envelope returned for every sync call, successful or not.
type SyncResult struct {
	Success bool         `json:"success"`
	Code    int          `json:"code"`
	Message string       `json:"message"`
	Data    *SyncSummary `json:"data,omitempty"`
}

// SyncStatus is the last successful summary of a table, as cached.
type SyncStatus struct {
	Summary  SyncSummary `json:"summary"`
	SyncedAt time.Time   `json:"synced_at"`
}

// SyncRequest is read from the query string, falling back to a JSON body.
type SyncRequest struct {
	Table  string `json:"table" validate:"required"`
	Cutoff string `json:"cutoff" validate:"required"`
}

type ServiceInfo struct {
	Service string   `json:"service"`
	Version string   `json:"version"`
	Role    string   `json:"role"`
	Source  string   `json:"source"`
	Tables  []string `json:"tables"`
}
