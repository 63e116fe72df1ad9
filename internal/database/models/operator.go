package models

import "github.com/google/uuid"

// Operator represents a human agent able to receive assigned contacts.
// MaxLoad caps the number of unprocessed contacts an operator may hold at
// once; the current load is always derived from the contacts table, never
// stored here.
type Operator struct {
	BaseModel
	Name     string `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	IsActive bool   `json:"is_active" gorm:"not null;default:true"`
	MaxLoad  int    `json:"max_load" gorm:"not null;default:10" validate:"gte=0"`

	// Relationships
	Contacts      []Contact              `json:"contacts,omitempty" gorm:"foreignKey:OperatorID"`
	SourceWeights []OperatorSourceWeight `json:"source_weights,omitempty" gorm:"foreignKey:OperatorID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Operator
func (Operator) TableName() string {
	return "operators"
}

// OperatorSourceWeight expresses the relative preference of routing contacts
// from a source to an operator. No row means the operator does not serve
// that source at all; a zero weight keeps the operator configured but gives
// it zero selection probability.
type OperatorSourceWeight struct {
	BaseModel
	OperatorID uuid.UUID `json:"operator_id" gorm:"type:uuid;not null;uniqueIndex:idx_operator_source" validate:"required"`
	SourceID   uuid.UUID `json:"source_id" gorm:"type:uuid;not null;uniqueIndex:idx_operator_source" validate:"required"`
	Weight     float64   `json:"weight" gorm:"not null;default:1.0" validate:"gte=0"`

	// Relationships
	Operator Operator `json:"operator,omitempty" gorm:"foreignKey:OperatorID;constraint:OnDelete:CASCADE"`
	Source   Source   `json:"source,omitempty" gorm:"foreignKey:SourceID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for OperatorSourceWeight
func (OperatorSourceWeight) TableName() string {
	return "operator_source_weights"
}
