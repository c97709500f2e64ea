package storage

import (
	"errors"
	"fmt"
	"sync"
)

// Keeper holds the in-memory record between startup load and shutdown save.
// It is safe for concurrent use so several sessions can share one store.
type Keeper struct {
	mu     sync.Mutex
	store  Store
	record Record
	runs   []Run
}

// NewKeeper wraps store. Call Load before handing out the record.
func NewKeeper(store Store) *Keeper {
	return &Keeper{store: store}
}

// Load reads the persisted record. On error the keeper still holds whatever
// entries could be read (zeros otherwise), so callers may log and continue.
func (k *Keeper) Load() error {
	rec, err := k.store.Load()

	k.mu.Lock()
	k.record.Merge(rec)
	k.mu.Unlock()

	return err
}

// Record returns a copy of the current record.
func (k *Keeper) Record() Record {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.record
}

// Commit merges a session's record and queues its finished runs.
func (k *Keeper) Commit(rec Record, runs []Run) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.record.Merge(rec)
	k.runs = append(k.runs, runs...)
}

// Pending returns the number of queued runs.
func (k *Keeper) Pending() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.runs)
}

// Flush writes the record and, when the backend keeps history, the queued
// runs. Backends without history drop the queue.
func (k *Keeper) Flush() error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if err := k.store.Save(k.record); err != nil {
		return err
	}
	if len(k.runs) == 0 {
		return nil
	}
	if rr, ok := k.store.(RunRecorder); ok {
		if err := rr.SaveRuns(k.runs); err != nil {
			return err
		}
	}
	k.runs = nil
	return nil
}

// Close flushes and closes the underlying store.
func (k *Keeper) Close() error {
	flushErr := k.Flush()
	closeErr := k.store.Close()
	if flushErr != nil || closeErr != nil {
		return fmt.Errorf("storage: close: %w", errors.Join(flushErr, closeErr))
	}
	return nil
}
