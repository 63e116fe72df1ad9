package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"crm-distribution-backend/internal/database/models"
	apperrors "crm-distribution-backend/internal/errors"
	"crm-distribution-backend/internal/logger"
	"crm-distribution-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
	pgUniqueViolation      = "23505"
)

// ContactEventPublisher notifies downstream consumers about registered
// contacts. A nil publisher disables publishing.
type ContactEventPublisher interface {
	PublishContactRegistered(ctx context.Context, contact *models.Contact) error
}

// DistributionService is the assignment engine. It resolves the customer
// identity behind an inbound contact, evaluates operator capacity for the
// contact's source, selects one operator by weight-proportional random
// draw and persists the resulting contact, all in one serializable
// transaction.
type DistributionService struct {
	db         *gorm.DB
	validator  *validator.Validate
	rng        Rand
	publisher  ContactEventPublisher
	maxRetries int
	retryBase  time.Duration
	log        *logger.Logger
}

// NewDistributionService creates a new distribution service. rng must not
// be nil; publisher may be nil.
func NewDistributionService(db *gorm.DB, validator *validator.Validate, rng Rand, publisher ContactEventPublisher, maxRetries int, retryBase time.Duration) *DistributionService {
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &DistributionService{
		db:         db,
		validator:  validator,
		rng:        rng,
		publisher:  publisher,
		maxRetries: maxRetries,
		retryBase:  retryBase,
		log:        logger.WithComponent("distribution"),
	}
}

// ContactRegistrationRequest carries the identity hints and payload of one
// inbound contact event. All identity hints are optional; only SourceID is
// required.
type ContactRegistrationRequest struct {
	ExternalID  *string   `json:"external_id,omitempty"`
	Phone       *string   `json:"phone,omitempty"`
	Email       *string   `json:"email,omitempty" validate:"omitempty,email"`
	Name        *string   `json:"name,omitempty"`
	SourceID    uuid.UUID `json:"source_id" validate:"required"`
	Message     string    `json:"message,omitempty"`
	ContactData string    `json:"contact_data,omitempty"`
}

// operatorCandidate is one eligible operator with its configured weight
// for the requested source.
type operatorCandidate struct {
	OperatorID uuid.UUID
	Weight     float64
}

// RegisterContact registers an inbound contact: the lead is found or
// created, one operator is selected among those eligible for the source
// (or none, leaving the contact queued) and the contact is persisted. The
// transaction is retried a bounded number of times on serialization
// conflicts before the failure is surfaced as transient.
func (s *DistributionService) RegisterContact(ctx context.Context, req *ContactRegistrationRequest) (*ContactResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	var contact *models.Contact
	var lastErr error

	for attempt := 1; attempt <= s.maxRetries; attempt++ {
		contact, lastErr = s.registerOnce(ctx, req)
		if lastErr == nil {
			break
		}
		if !isRetryableTxError(lastErr) {
			return nil, lastErr
		}

		s.log.WithFields(map[string]interface{}{
			"attempt": attempt,
			"source":  req.SourceID,
		}).WithError(lastErr).Warn("assignment transaction conflict, retrying")

		if attempt < s.maxRetries {
			backoff := s.retryBase * time.Duration(1<<(attempt-1))
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}
	}

	if lastErr != nil {
		return nil, apperrors.NewTransientError("contact registration", lastErr)
	}

	if s.publisher != nil {
		// Delivery is best effort; the contact is already committed.
		if err := s.publisher.PublishContactRegistered(ctx, contact); err != nil {
			s.log.WithError(err).WithField("contact_id", contact.ID).Warn("failed to publish contact event")
		}
	}

	return contactToResponse(contact), nil
}

// registerOnce runs one attempt of the registration transaction at
// serializable isolation.
func (s *DistributionService) registerOnce(ctx context.Context, req *ContactRegistrationRequest) (*models.Contact, error) {
	var contact *models.Contact

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		leads := repository.NewLeadRepository(tx)
		sources := repository.NewSourceRepository(tx)
		operators := repository.NewOperatorRepository(tx)
		weights := repository.NewOperatorSourceWeightRepository(tx)
		contacts := repository.NewContactRepository(tx)

		lead, err := s.resolveLead(leads, req)
		if err != nil {
			return err
		}

		source, err := sources.GetByID(req.SourceID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrSourceNotFound
			}
			return fmt.Errorf("failed to get source: %w", err)
		}

		eligible, err := s.eligibleOperators(operators, weights, contacts, source.ID)
		if err != nil {
			return err
		}

		var operatorID *uuid.UUID
		if id, ok := pickOperator(eligible, s.rng); ok {
			operatorID = &id
		}

		contact = &models.Contact{
			LeadID:      lead.ID,
			SourceID:    source.ID,
			OperatorID:  operatorID,
			Message:     req.Message,
			ContactData: req.ContactData,
			IsProcessed: false,
		}
		if err := contacts.Create(contact); err != nil {
			return fmt.Errorf("failed to create contact: %w", err)
		}

		return nil
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})

	if err != nil {
		return nil, err
	}

	s.log.WithFields(map[string]interface{}{
		"contact_id": contact.ID,
		"lead_id":    contact.LeadID,
		"assigned":   contact.OperatorID != nil,
	}).Info("contact registered")

	return contact, nil
}

// resolveLead finds an existing lead for the request's identity hints or
// creates a new one. External id wins over phone/email; a matched lead is
// returned as is, without merging newly supplied fields. A concurrent
// create of the same external id aborts the transaction with a unique
// violation, which the caller retries; the next attempt finds the row.
func (s *DistributionService) resolveLead(leads repository.LeadRepositoryInterface, req *ContactRegistrationRequest) (*models.Lead, error) {
	if req.ExternalID != nil {
		lead, err := leads.GetByExternalID(*req.ExternalID)
		if err == nil {
			return lead, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to look up lead by external id: %w", err)
		}
	}

	if req.Phone != nil || req.Email != nil {
		lead, err := leads.FindByPhoneOrEmail(req.Phone, req.Email)
		if err == nil {
			return lead, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to look up lead by phone or email: %w", err)
		}
	}

	lead := &models.Lead{
		ExternalID: req.ExternalID,
		Phone:      req.Phone,
		Email:      req.Email,
		Name:       req.Name,
	}
	if err := leads.Create(lead); err != nil {
		return nil, fmt.Errorf("failed to create lead: %w", err)
	}
	return lead, nil
}

// eligibleOperators returns the operators allowed to take one more contact
// from the source: a weight row exists, the operator is active and its
// current unprocessed-contact count is strictly below its max load. The
// operator rows are locked for update so a concurrent registration cannot
// admit the same last slot.
func (s *DistributionService) eligibleOperators(
	operators repository.OperatorRepositoryInterface,
	weights repository.OperatorSourceWeightRepositoryInterface,
	contacts repository.ContactRepositoryInterface,
	sourceID uuid.UUID,
) ([]operatorCandidate, error) {
	rows, err := weights.GetBySource(sourceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get source weights: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, 0, len(rows))
	weightByOperator := make(map[uuid.UUID]float64, len(rows))
	for _, row := range rows {
		ids = append(ids, row.OperatorID)
		weightByOperator[row.OperatorID] = row.Weight
	}

	locked, err := operators.GetByIDsForUpdate(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to lock operators: %w", err)
	}

	var eligible []operatorCandidate
	for _, op := range locked {
		if !op.IsActive || op.MaxLoad <= 0 {
			continue
		}
		load, err := contacts.CountUnfinishedForOperator(op.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to count operator load: %w", err)
		}
		if load < int64(op.MaxLoad) {
			eligible = append(eligible, operatorCandidate{OperatorID: op.ID, Weight: weightByOperator[op.ID]})
		}
	}
	return eligible, nil
}

// pickOperator draws one operator from the candidates with probability
// proportional to weight. Candidates with non-positive weight are skipped;
// with no candidates or a non-positive total weight there is no selection.
// Candidates are walked in ascending operator-id order so a seeded Rand
// yields reproducible picks regardless of input order.
func pickOperator(candidates []operatorCandidate, rng Rand) (uuid.UUID, bool) {
	weighted := make([]operatorCandidate, 0, len(candidates))
	total := 0.0
	for _, c := range candidates {
		if c.Weight > 0 {
			weighted = append(weighted, c)
			total += c.Weight
		}
	}
	if len(weighted) == 0 || total <= 0 {
		return uuid.Nil, false
	}

	sort.Slice(weighted, func(i, j int) bool {
		return weighted[i].OperatorID.String() < weighted[j].OperatorID.String()
	})

	r := rng.Float64() * total
	running := 0.0
	for _, c := range weighted {
		running += c.Weight
		if running >= r {
			return c.OperatorID, true
		}
	}

	// Rounding in the running sum can leave r past the final boundary;
	// the last candidate takes the draw.
	return weighted[len(weighted)-1].OperatorID, true
}

// isRetryableTxError reports whether the registration transaction should
// be retried: serialization failures, deadlocks, and the unique-violation
// race on concurrent lead creation (the retry finds the winner's row).
func isRetryableTxError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	switch pgErr.Code {
	case pgSerializationFailure, pgDeadlockDetected:
		return true
	case pgUniqueViolation:
		return pgErr.TableName == "leads"
	}
	return false
}

// OperatorLoadStat reports one operator's utilization
type OperatorLoadStat struct {
	OperatorID     uuid.UUID `json:"operator_id"`
	OperatorName   string    `json:"operator_name"`
	IsActive       bool      `json:"is_active"`
	MaxLoad        int       `json:"max_load"`
	CurrentLoad    int64     `json:"current_load"`
	LoadPercentage float64   `json:"load_percentage"`
}

// operatorStatsPageSize bounds each page read while walking all operators
const operatorStatsPageSize = 200

// GetOperatorLoadStats computes the current load of every operator against
// its configured maximum.
func (s *DistributionService) GetOperatorLoadStats() ([]OperatorLoadStat, error) {
	operators := repository.NewOperatorRepository(s.db)
	contacts := repository.NewContactRepository(s.db)

	var all []models.Operator
	for offset := 0; ; offset += operatorStatsPageSize {
		page, _, err := operators.GetAll(operatorStatsPageSize, offset)
		if err != nil {
			return nil, fmt.Errorf("failed to get operators: %w", err)
		}
		all = append(all, page...)
		if len(page) < operatorStatsPageSize {
			break
		}
	}

	stats := make([]OperatorLoadStat, 0, len(all))
	for _, op := range all {
		load, err := contacts.CountUnfinishedForOperator(op.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to count operator load: %w", err)
		}

		stat := OperatorLoadStat{
			OperatorID:   op.ID,
			OperatorName: op.Name,
			IsActive:     op.IsActive,
			MaxLoad:      op.MaxLoad,
			CurrentLoad:  load,
		}
		if op.MaxLoad > 0 {
			stat.LoadPercentage = float64(load) / float64(op.MaxLoad) * 100
		}
		stats = append(stats, stat)
	}
	return stats, nil
}
