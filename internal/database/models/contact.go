package models

import "github.com/google/uuid"

// Contact represents one inbound customer event bound to a lead and a
// source. OperatorID is nil for queued contacts that no operator could take
// at registration time; once written the assignment is never changed.
// IsProcessed is flipped when an operator disposes of the contact, which
// frees one slot of that operator's load.
type Contact struct {
	BaseModel
	LeadID      uuid.UUID  `json:"lead_id" gorm:"type:uuid;not null;index" validate:"required"`
	SourceID    uuid.UUID  `json:"source_id" gorm:"type:uuid;not null;index" validate:"required"`
	OperatorID  *uuid.UUID `json:"operator_id,omitempty" gorm:"type:uuid;index:idx_contacts_operator_open,where:is_processed = false"`
	Message     string     `json:"message" gorm:"type:text"`
	ContactData string     `json:"contact_data" gorm:"type:text"`
	IsProcessed bool       `json:"is_processed" gorm:"not null;default:false"`

	// Relationships
	Lead     Lead      `json:"lead,omitempty" gorm:"foreignKey:LeadID"`
	Source   Source    `json:"source,omitempty" gorm:"foreignKey:SourceID"`
	Operator *Operator `json:"operator,omitempty" gorm:"foreignKey:OperatorID"`
}

// TableName returns the table name for Contact
func (Contact) TableName() string {
	return "contacts"
}
