package model

import "time"

// Task is a to-do item on the planning checklist.
type Task struct {
	Owned       `bson:",inline"`
	Title       string     `json:"title" validate:"required" gorm:"size:255;not null" bson:"title"`
	Description *string    `json:"description" bson:"description"`
	Category    string     `json:"category" validate:"required" gorm:"size:255;not null" bson:"category"`
	DueDate     *time.Time `json:"due_date" bson:"due_date"`
	Completed   bool       `json:"completed" bson:"completed"`
	Priority    string     `json:"priority" gorm:"size:16;not null" bson:"priority"`
	AssignedTo  *string    `json:"assigned_to" gorm:"size:255" bson:"assigned_to"`
	Notes       *string    `json:"notes" bson:"notes"`
}

func (Task) Kind() Kind { return TaskKind }
func (Task) TableName() string { return TaskKind.Collection }

func (t *Task) ApplyDefaults() {
	defaultString(&t.Priority, "medium")
}
