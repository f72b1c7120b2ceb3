package palette

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"huectl/internal/color"
)

// ErrInvalidLock is matched by every error returned from ParseLocks.
var ErrInvalidLock = errors.New("invalid lock")

// Locks maps a 0-based palette position to the canonical hex pinned there.
// Absent positions are generated.
type Locks map[int]string

// LockError describes a lock entry rejected at the boundary.
type LockError struct {
	Key    string
	Reason string
	Err    error
}

func (e *LockError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("lock %q: %s: %v", e.Key, e.Reason, e.Err)
	}
	return fmt.Sprintf("lock %q: %s", e.Key, e.Reason)
}

// Is lets errors.Is(err, ErrInvalidLock) match.
func (e *LockError) Is(target error) bool {
	return target == ErrInvalidLock
}

func (e *LockError) Unwrap() error {
	return e.Err
}

// ParseLocks validates caller-supplied locks for a palette of size count.
// Keys must be non-negative integer positions below count; values may be
// any text color.Parse accepts and are canonicalized. Two keys naming the
// same position ("0" and "00") are rejected.
func ParseLocks(raw map[string]string, count int) (Locks, error) {
	locks := make(Locks, len(raw))
	for key, value := range raw {
		if err := locks.add(key, value, count); err != nil {
			return nil, err
		}
	}
	return locks, nil
}

// ParseLockSpecs parses "position=color" pairs as given on a command line.
func ParseLockSpecs(specs []string, count int) (Locks, error) {
	locks := make(Locks, len(specs))
	for _, spec := range specs {
		key, value, ok := strings.Cut(spec, "=")
		if !ok {
			return nil, &LockError{Key: spec, Reason: "expected position=color"}
		}
		if err := locks.add(key, value, count); err != nil {
			return nil, err
		}
	}
	return locks, nil
}

func (l Locks) add(key, value string, count int) error {
	pos, err := strconv.Atoi(strings.TrimSpace(key))
	if err != nil {
		return &LockError{Key: key, Reason: "position must be an integer"}
	}
	if pos < 0 || pos >= count {
		return &LockError{Key: key, Reason: fmt.Sprintf("position out of range [0,%d)", count)}
	}
	if _, dup := l[pos]; dup {
		return &LockError{Key: key, Reason: fmt.Sprintf("duplicate position %d", pos)}
	}
	hex, err := color.Parse(value)
	if err != nil {
		return &LockError{Key: key, Reason: "bad color", Err: err}
	}
	l[pos] = hex
	return nil
}

// Positions returns the locked positions in ascending order.
func (l Locks) Positions() []int {
	positions := make([]int, 0, len(l))
	for pos := range l {
		positions = append(positions, pos)
	}
	sort.Ints(positions)
	return positions
}

// Toggle locks pos to hex, or unlocks it if it was already locked.
// It reports whether pos is locked afterwards.
func (l Locks) Toggle(pos int, hex string) bool {
	if _, ok := l[pos]; ok {
		delete(l, pos)
		return false
	}
	l[pos] = hex
	return true
}

// Trim drops locks at or beyond count.
func (l Locks) Trim(count int) {
	for pos := range l {
		if pos >= count {
			delete(l, pos)
		}
	}
}
