package models

// Source represents an origin channel for contacts, e.g. a specific intake
// bot or site integration. Sources are configured up front and only looked
// up during assignment.
type Source struct {
	BaseModel
	Name        string `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required,min=1,max=100"`
	Description string `json:"description" gorm:"size:500"`

	// Relationships
	Contacts        []Contact              `json:"contacts,omitempty" gorm:"foreignKey:SourceID"`
	OperatorWeights []OperatorSourceWeight `json:"operator_weights,omitempty" gorm:"foreignKey:SourceID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Source
func (Source) TableName() string {
	return "sources"
}
