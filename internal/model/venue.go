package model

// Venue is a candidate ceremony or reception location.
type Venue struct {
	Owned         `bson:",inline"`
	Name          string   `json:"name" validate:"required" gorm:"size:255;not null" bson:"name"`
	VenueType     string   `json:"venue_type" validate:"required" gorm:"size:64;not null" bson:"venue_type"`
	Address       string   `json:"address" validate:"required" gorm:"not null" bson:"address"`
	Capacity      *int     `json:"capacity" bson:"capacity"`
	Price         *float64 `json:"price" bson:"price"`
	Rating        *int     `json:"rating" bson:"rating"`
	Status        string   `json:"status" gorm:"size:32;not null" bson:"status"`
	ContactPerson *string  `json:"contact_person" gorm:"size:255" bson:"contact_person"`
	Phone         *string  `json:"phone" gorm:"size:64" bson:"phone"`
	Email         *string  `json:"email" gorm:"size:255" bson:"email"`
	Notes         *string  `json:"notes" bson:"notes"`
}

func (Venue) Kind() Kind { return VenueKind }
func (Venue) TableName() string { return VenueKind.Collection }

func (v *Venue) ApplyDefaults() {
	defaultString(&v.Status, "considering")
}
