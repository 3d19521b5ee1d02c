package model

// VendorStatusBooked is the status counted as booked by the dashboard.
const VendorStatusBooked = "booked"

// Vendor is a service provider: photographer, florist, caterer and so on.
type Vendor struct {
	Owned         `bson:",inline"`
	Name          string   `json:"name" validate:"required" gorm:"size:255;not null" bson:"name"`
	Category      string   `json:"category" validate:"required" gorm:"size:255;not null" bson:"category"`
	ContactPerson *string  `json:"contact_person" gorm:"size:255" bson:"contact_person"`
	Email         *string  `json:"email" gorm:"size:255" bson:"email"`
	Phone         *string  `json:"phone" gorm:"size:64" bson:"phone"`
	Address       *string  `json:"address" bson:"address"`
	PriceQuote    *float64 `json:"price_quote" bson:"price_quote"`
	Rating        *int     `json:"rating" bson:"rating"`
	Status        string   `json:"status" gorm:"size:32;not null" bson:"status"`
	Notes         *string  `json:"notes" bson:"notes"`
}

func (Vendor) Kind() Kind { return VendorKind }
func (Vendor) TableName() string { return VendorKind.Collection }

func (v *Vendor) ApplyDefaults() {
	defaultString(&v.Status, "researching")
}
