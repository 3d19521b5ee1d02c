package model

// RSVP statuses counted by the dashboard. Other values are stored as given.
const (
	RSVPPending  = "pending"
	RSVPAccepted = "accepted"
	RSVPDeclined = "declined"
)

// Guest is an invitee.
type Guest struct {
	Owned               `bson:",inline"`
	Name                string  `json:"name" validate:"required" gorm:"size:255;not null" bson:"name"`
	Email               *string `json:"email" gorm:"size:255" bson:"email"`
	Phone               *string `json:"phone" gorm:"size:64" bson:"phone"`
	RSVPStatus          string  `json:"rsvp_status" gorm:"column:rsvp_status;size:32;not null" bson:"rsvp_status"`
	DietaryRestrictions *string `json:"dietary_restrictions" bson:"dietary_restrictions"`
	PlusOne             bool    `json:"plus_one" bson:"plus_one"`
	Group               *string `json:"group" gorm:"column:guest_group;size:64" bson:"group"`
}

func (Guest) Kind() Kind { return GuestKind }
func (Guest) TableName() string { return GuestKind.Collection }

func (g *Guest) ApplyDefaults() {
	defaultString(&g.RSVPStatus, RSVPPending)
}
