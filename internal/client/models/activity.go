package models

import "sort"

// Activity is a single enrollment opportunity as reported by the server.
// The activity name is the key of the snapshot map on the wire; it is copied
// into Name after decoding so an Activity is self-contained when handed to
// the rendering layer.
//
// The client never mutates an Activity. Every change is obtained by
// re-fetching the full list after a server write; the server is authoritative
// for capacity and roster contents.
type Activity struct {
	Name            string   `json:"-"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// SpotsLeft reports how many places remain. Never negative, even if the
// server ever reports an overfull roster.
func (a Activity) SpotsLeft() int {
	left := a.MaxParticipants - len(a.Participants)
	if left < 0 {
		return 0
	}
	return left
}

// IsFull reports whether the activity has no places left.
func (a Activity) IsFull() bool {
	return len(a.Participants) >= a.MaxParticipants
}

// Snapshot is the full client-side copy of server roster state, keyed by
// activity name. It is replaced wholesale on every fetch; there is no
// incremental merge.
type Snapshot map[string]Activity

// Names returns the activity names in sorted order for stable rendering.
func (s Snapshot) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns a deep copy so readers can hold a snapshot while the store
// replaces its own.
func (s Snapshot) Clone() Snapshot {
	if s == nil {
		return nil
	}
	out := make(Snapshot, len(s))
	for name, a := range s {
		a.Participants = append([]string(nil), a.Participants...)
		out[name] = a
	}
	return out
}
