package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActivity_SpotsLeft(t *testing.T) {
	tests := []struct {
		name     string
		activity Activity
		want     int
		full     bool
	}{
		{
			name:     "room left",
			activity: Activity{MaxParticipants: 3, Participants: []string{"a@x.com"}},
			want:     2,
		},
		{
			name:     "exactly full",
			activity: Activity{MaxParticipants: 2, Participants: []string{"a@x.com", "b@x.com"}},
			want:     0,
			full:     true,
		},
		{
			name:     "overfull reported by server",
			activity: Activity{MaxParticipants: 1, Participants: []string{"a@x.com", "b@x.com"}},
			want:     0,
			full:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.activity.SpotsLeft())
			assert.Equal(t, tt.full, tt.activity.IsFull())
		})
	}
}

func TestSnapshot_Names(t *testing.T) {
	s := Snapshot{
		"Chess Club": {},
		"Art Club":   {},
		"Math Club":  {},
	}
	assert.Equal(t, []string{"Art Club", "Chess Club", "Math Club"}, s.Names())
}

func TestSnapshot_Clone(t *testing.T) {
	orig := Snapshot{
		"Chess Club": {Name: "Chess Club", MaxParticipants: 10, Participants: []string{"a@x.com"}},
	}
	clone := orig.Clone()

	clone["Chess Club"].Participants[0] = "mutated"
	assert.Equal(t, "a@x.com", orig["Chess Club"].Participants[0])

	assert.Nil(t, Snapshot(nil).Clone())
}

func TestSession_Active(t *testing.T) {
	assert.True(t, Session{Token: "t", Username: "u", Verified: true}.Active())
	assert.False(t, Session{Token: "t", Username: "u"}.Active())
	assert.False(t, Session{Verified: true}.Active())
}
