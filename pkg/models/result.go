package models

import "time"

// RunResult summarizes one observation run
type RunResult struct {
	Directory string        `json:"directory"`
	Mode      string        `json:"mode"`
	StartTime time.Time     `json:"start_time"`
	Duration  time.Duration `json:"duration"`

	Before  int       `json:"before"`  // records in the first snapshot
	After   int       `json:"after"`   // records in the second snapshot
	Changed *Snapshot `json:"-"`       // new or resized records

	Selected   *FileRecord `json:"selected,omitempty"` // nil when nothing was picked
	Command    string      `json:"command,omitempty"`  // composed command line, if one ran
	CommandRan bool        `json:"command_ran"`
}

// HasChanges reports whether any active file was found
func (r *RunResult) HasChanges() bool {
	return r.Changed.Len() > 0
}
