package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ Record = (*Budget)(nil)
	_ Record = (*Guest)(nil)
	_ Record = (*Vendor)(nil)
	_ Record = (*Task)(nil)
	_ Record = (*Venue)(nil)
)

func TestApplyDefaults(t *testing.T) {
	g := &Guest{Name: "Ana"}
	g.ApplyDefaults()
	assert.Equal(t, RSVPPending, g.RSVPStatus)

	v := &Vendor{Name: "Lens & Co", Category: "photographer"}
	v.ApplyDefaults()
	assert.Equal(t, "researching", v.Status)

	task := &Task{Title: "Book DJ", Category: "music"}
	task.ApplyDefaults()
	assert.Equal(t, "medium", task.Priority)
	assert.False(t, task.Completed)

	venue := &Venue{Name: "Old Mill", VenueType: "reception", Address: "1 Mill Rd"}
	venue.ApplyDefaults()
	assert.Equal(t, "considering", venue.Status)
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	g := &Guest{Name: "Ana", RSVPStatus: "maybe"}
	g.ApplyDefaults()
	assert.Equal(t, "maybe", g.RSVPStatus)
}

func TestRecordJSONIsFlat(t *testing.T) {
	planned := 1200.0
	b := Budget{
		Owned:         Owned{ID: "b-1", UserID: "u-1"},
		Category:      "flowers",
		PlannedAmount: &planned,
	}

	raw, err := json.Marshal(b)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, "b-1", doc["id"])
	assert.Equal(t, "u-1", doc["user_id"])
	assert.Equal(t, "flowers", doc["category"])
	assert.Contains(t, doc, "created_at")
	assert.Equal(t, 1200.0, doc["planned_amount"])
}

func TestBudgetPlanned(t *testing.T) {
	assert.Zero(t, Budget{}.Planned())

	zero := 0.0
	assert.Zero(t, Budget{PlannedAmount: &zero}.Planned())

	planned := 42.5
	assert.Equal(t, 42.5, Budget{PlannedAmount: &planned}.Planned())
}

func TestUserHidesPasswordHash(t *testing.T) {
	raw, err := json.Marshal(User{ID: "u-1", Email: "a@example.com", PasswordHash: "$2a$10$secret"})
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "secret")
	assert.NotContains(t, string(raw), "password")
}

func TestKindsAreDistinct(t *testing.T) {
	seen := map[string]bool{}
	for _, k := range Kinds {
		assert.False(t, seen[k.Collection], k.Collection)
		seen[k.Collection] = true
	}
	assert.Len(t, seen, 5)
}
