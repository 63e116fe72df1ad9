package models

// Lead represents a deduplicated customer identity. A lead is created the
// first time a customer reaches out and is reused for every later contact
// that matches by external id, phone or email.
type Lead struct {
	BaseModel
	ExternalID *string `json:"external_id,omitempty" gorm:"uniqueIndex:idx_leads_external_id;size:100"`
	Phone      *string `json:"phone,omitempty" gorm:"index;size:30"`
	Email      *string `json:"email,omitempty" gorm:"index;size:255"`
	Name       *string `json:"name,omitempty" gorm:"size:200"`

	// Relationships
	Contacts []Contact `json:"contacts,omitempty" gorm:"foreignKey:LeadID"`
}

// TableName returns the table name for Lead
func (Lead) TableName() string {
	return "leads"
}
