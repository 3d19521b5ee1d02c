package model

import "time"

// Kind describes one resource kind: its display name, the collection it is
// stored in and the path segment it is served under.
type Kind struct {
	Name       string
	Collection string
	Route      string
}

var (
	BudgetKind = Kind{Name: "Budget", Collection: "budgets", Route: "budget"}
	GuestKind  = Kind{Name: "Guest", Collection: "guests", Route: "guests"}
	VendorKind = Kind{Name: "Vendor", Collection: "vendors", Route: "vendors"}
	TaskKind   = Kind{Name: "Task", Collection: "tasks", Route: "tasks"}
	VenueKind  = Kind{Name: "Venue", Collection: "venues", Route: "venues"}
)

// Kinds lists every resource kind.
var Kinds = []Kind{BudgetKind, GuestKind, VendorKind, TaskKind, VenueKind}

// Owned is the server-controlled part of every resource record. None of its
// fields are ever taken from client input.
type Owned struct {
	ID        string    `json:"id" gorm:"type:char(36);primaryKey" bson:"id"`
	UserID    string    `json:"user_id" gorm:"type:char(36);not null;index" bson:"user_id"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// Ownership exposes the embedded Owned block to generic code.
func (o *Owned) Ownership() *Owned { return o }

// Immutable column names; updates never touch them.
var ImmutableFields = []string{"id", "user_id", "created_at"}

// Record is implemented by pointers to every resource type.
type Record interface {
	Ownership() *Owned
	Kind() Kind
	// ApplyDefaults fills optional fields that have a documented default.
	ApplyDefaults()
}

func defaultString(s *string, def string) {
	if *s == "" {
		*s = def
	}
}
