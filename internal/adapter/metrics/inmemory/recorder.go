package inmemory

import (
	"sync"

	"quackmate/internal/domain/pet"
)

type Snapshot struct {
	ActionTotal    uint64            `json:"action_total"`
	ActionApplied  uint64            `json:"action_applied"`
	ActionDeclined uint64            `json:"action_declined"`
	ActionConflict uint64            `json:"action_conflict"`
	ActionFailure  uint64            `json:"action_failure"`
	ByAction       map[string]uint64 `json:"by_action"`
	ByDeclineCode  map[string]uint64 `json:"by_decline_code"`
}

type Recorder struct {
	mu        sync.Mutex
	applied   uint64
	declined  uint64
	conflict  uint64
	failure   uint64
	byAction  map[string]uint64
	byDecline map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		byAction:  map[string]uint64{},
		byDecline: map[string]uint64{},
	}
}

func (r *Recorder) RecordApplied(action string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.applied++
	r.byAction[action]++
}

func (r *Recorder) RecordDeclined(action string, code pet.Decline) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.declined++
	r.byAction[action]++
	r.byDecline[string(code)]++
}

func (r *Recorder) RecordConflict() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conflict++
}

func (r *Recorder) RecordFailure() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failure++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		ActionApplied:  r.applied,
		ActionDeclined: r.declined,
		ActionConflict: r.conflict,
		ActionFailure:  r.failure,
		ActionTotal:    r.applied + r.declined + r.conflict + r.failure,
		ByAction:       make(map[string]uint64, len(r.byAction)),
		ByDeclineCode:  make(map[string]uint64, len(r.byDecline)),
	}
	for k, v := range r.byAction {
		out.ByAction[k] = v
	}
	for k, v := range r.byDecline {
		out.ByDeclineCode[k] = v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
