package testutils

import (
	"fmt"
	"time"

	"crm-distribution-backend/internal/database/models"

	"github.com/google/uuid"
)

// LeadFactory provides methods to create test Lead data
type LeadFactory struct{}

// NewLeadFactory creates a new LeadFactory
func NewLeadFactory() *LeadFactory {
	return &LeadFactory{}
}

// Create creates a test Lead with default values
func (f *LeadFactory) Create() *models.Lead {
	id := uuid.New()
	// Derive unique identity fields from the UUID to avoid collisions
	externalID := "ext-" + id.String()[:8]
	phone := "+1-555-" + id.String()[:4]
	email := id.String()[:8] + "@test.com"
	name := "Test Lead"

	return &models.Lead{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ExternalID: &externalID,
		Phone:      &phone,
		Email:      &email,
		Name:       &name,
	}
}

// WithExternalID sets a custom external id for the lead
func (f *LeadFactory) WithExternalID(externalID string) *models.Lead {
	lead := f.Create()
	lead.ExternalID = &externalID
	return lead
}

// WithPhone builds a lead identified by phone only
func (f *LeadFactory) WithPhone(phone string) *models.Lead {
	lead := f.Create()
	lead.ExternalID = nil
	lead.Email = nil
	lead.Phone = &phone
	return lead
}

// WithEmail builds a lead identified by email only
func (f *LeadFactory) WithEmail(email string) *models.Lead {
	lead := f.Create()
	lead.ExternalID = nil
	lead.Phone = nil
	lead.Email = &email
	return lead
}

// SourceFactory provides methods to create test Source data
type SourceFactory struct{}

// NewSourceFactory creates a new SourceFactory
func NewSourceFactory() *SourceFactory {
	return &SourceFactory{}
}

// Create creates a test Source with default values
func (f *SourceFactory) Create() *models.Source {
	id := uuid.New()
	return &models.Source{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "source-" + id.String()[:8],
		Description: "A test source for testing purposes",
	}
}

// WithName sets a custom name for the source
func (f *SourceFactory) WithName(name string) *models.Source {
	source := f.Create()
	source.Name = name
	return source
}

// OperatorFactory provides methods to create test Operator data
type OperatorFactory struct{}

// NewOperatorFactory creates a new OperatorFactory
func NewOperatorFactory() *OperatorFactory {
	return &OperatorFactory{}
}

// Create creates a test Operator with default values
func (f *OperatorFactory) Create() *models.Operator {
	id := uuid.New()
	return &models.Operator{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:     fmt.Sprintf("Operator %s", id.String()[:8]),
		IsActive: true,
		MaxLoad:  10,
	}
}

// WithMaxLoad sets a custom max load for the operator
func (f *OperatorFactory) WithMaxLoad(maxLoad int) *models.Operator {
	operator := f.Create()
	operator.MaxLoad = maxLoad
	return operator
}

// Inactive builds an operator that must never receive assignments
func (f *OperatorFactory) Inactive() *models.Operator {
	operator := f.Create()
	operator.IsActive = false
	return operator
}

// WeightFactory provides methods to create test OperatorSourceWeight data
type WeightFactory struct{}

// NewWeightFactory creates a new WeightFactory
func NewWeightFactory() *WeightFactory {
	return &WeightFactory{}
}

// Create creates a weight row binding an operator to a source
func (f *WeightFactory) Create(operatorID, sourceID uuid.UUID, weight float64) *models.OperatorSourceWeight {
	return &models.OperatorSourceWeight{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OperatorID: operatorID,
		SourceID:   sourceID,
		Weight:     weight,
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	Lead     *LeadFactory
	Source   *SourceFactory
	Operator *OperatorFactory
	Weight   *WeightFactory
	Contact  *ContactFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Lead:     NewLeadFactory(),
		Source:   NewSourceFactory(),
		Operator: NewOperatorFactory(),
		Weight:   NewWeightFactory(),
		Contact:  NewContactFactory(),
	}
}

// ContactFactory provides methods to create test Contact data
type ContactFactory struct{}

// NewContactFactory creates a new ContactFactory
func NewContactFactory() *ContactFactory {
	return &ContactFactory{}
}

// Create creates a test Contact bound to the given lead and source
func (f *ContactFactory) Create(leadID, sourceID uuid.UUID) *models.Contact {
	return &models.Contact{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		LeadID:      leadID,
		SourceID:    sourceID,
		Message:     "Test contact message",
		ContactData: `{"channel":"test"}`,
		IsProcessed: false,
	}
}

// Assigned builds a contact already assigned to an operator
func (f *ContactFactory) Assigned(leadID, sourceID, operatorID uuid.UUID) *models.Contact {
	contact := f.Create(leadID, sourceID)
	contact.OperatorID = &operatorID
	return contact
}

// Processed builds a contact that no longer counts toward operator load
func (f *ContactFactory) Processed(leadID, sourceID, operatorID uuid.UUID) *models.Contact {
	contact := f.Assigned(leadID, sourceID, operatorID)
	contact.IsProcessed = true
	return contact
}
