package model

// Budget is a planned expense line.
type Budget struct {
	Owned         `bson:",inline"`
	Category      string   `json:"category" validate:"required" gorm:"size:255;not null" bson:"category"`
	PlannedAmount *float64 `json:"planned_amount" validate:"required" gorm:"not null" bson:"planned_amount"`
	SpentAmount   float64  `json:"spent_amount" bson:"spent_amount"`
	Vendor        *string  `json:"vendor" gorm:"size:255" bson:"vendor"`
	Notes         *string  `json:"notes" bson:"notes"`
}

// Planned returns the planned amount, treating an unset value as zero.
func (b Budget) Planned() float64 {
	if b.PlannedAmount == nil {
		return 0
	}
	return *b.PlannedAmount
}

func (Budget) Kind() Kind { return BudgetKind }
func (Budget) TableName() string { return BudgetKind.Collection }

// ApplyDefaults is a no-op: spent_amount already defaults to zero.
func (b *Budget) ApplyDefaults() {}
