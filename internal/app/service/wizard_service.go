package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jteo/listify-backend/internal/app/model"
	"github.com/jteo/listify-backend/internal/app/repository"
	"github.com/jteo/listify-backend/pkg/logger"
)

var (
	ErrPriceUnavailable = errors.New("no price available for this level and class size")
	ErrInvalidHours     = errors.New("business hours contain invalid times")
)

// ProgressSnapshot is the per-step completeness view pushed to clients.
type ProgressSnapshot struct {
	Steps               map[string]bool `json:"steps"`
	FirstIncompleteStep *string         `json:"first_incomplete_step"`
	Complete            bool            `json:"complete"`
}

// ProgressNotifier receives a snapshot after every draft mutation.
// Implemented by the websocket hub; may be nil.
type ProgressNotifier interface {
	NotifyProgress(sessionID string, snapshot ProgressSnapshot)
}

// ServiceOfferingInput is one tuition offering as entered on the
// service-offerings step. The price is never part of the input; it is
// derived from the pricing table.
type ServiceOfferingInput struct {
	Level        string `json:"level" binding:"required"`
	Subject      string `json:"subject" binding:"required"`
	Stream       string `json:"stream" binding:"required"`
	ClassSize    string `json:"classSize" binding:"required"`
	DeliveryMode string `json:"deliveryMode" binding:"required"`
}

// WizardService owns the draft lifecycle: reads, per-step merges, and
// progress reporting. Every save loads the stored draft, replaces one
// section on a clone, and commits the clone back to the store.
type WizardService interface {
	GetDraft(ctx context.Context, sessionID string) (*model.Draft, error)
	Progress(ctx context.Context, sessionID string) (ProgressSnapshot, error)
	SaveBusinessInfo(ctx context.Context, sessionID string, info model.BusinessInfo) (*model.Draft, error)
	SaveBusinessAddress(ctx context.Context, sessionID string, addr model.BusinessAddress) (*model.Draft, error)
	SaveBusinessHours(ctx context.Context, sessionID string, hours *WeeklyHours) (*model.Draft, error)
	AddServiceOffering(ctx context.Context, sessionID string, input ServiceOfferingInput) (*model.Draft, error)
}

type wizardService struct {
	draftRepo repository.DraftRepository
	notifier  ProgressNotifier
}

func NewWizardService(draftRepo repository.DraftRepository, notifier ProgressNotifier) WizardService {
	return &wizardService{
		draftRepo: draftRepo,
		notifier:  notifier,
	}
}

// GetDraft returns the session's draft, or a fresh empty draft when the
// session has none yet.
func (s *wizardService) GetDraft(ctx context.Context, sessionID string) (*model.Draft, error) {
	draft, err := s.draftRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if draft == nil {
		return model.NewDraft(), nil
	}
	return draft, nil
}

func (s *wizardService) Progress(ctx context.Context, sessionID string) (ProgressSnapshot, error) {
	draft, err := s.GetDraft(ctx, sessionID)
	if err != nil {
		return ProgressSnapshot{}, err
	}
	return snapshotOf(draft), nil
}

func snapshotOf(draft *model.Draft) ProgressSnapshot {
	steps := make(map[string]bool, len(model.Steps))
	for _, step := range model.Steps {
		steps[step.Slug()] = step.Complete(draft)
	}

	snapshot := ProgressSnapshot{Steps: steps}
	if incomplete := model.FirstIncompleteStep(draft); incomplete != nil {
		slug := incomplete.Slug()
		snapshot.FirstIncompleteStep = &slug
	} else {
		snapshot.Complete = true
	}
	return snapshot
}

func (s *wizardService) SaveBusinessInfo(ctx context.Context, sessionID string, info model.BusinessInfo) (*model.Draft, error) {
	logger.Debug("Saving business information", map[string]interface{}{
		"session_id": sessionID,
		"name":       info.BusinessName,
	})

	return s.merge(ctx, sessionID, func(draft *model.Draft) error {
		draft.BusinessInfo = info
		return nil
	})
}

func (s *wizardService) SaveBusinessAddress(ctx context.Context, sessionID string, addr model.BusinessAddress) (*model.Draft, error) {
	logger.Debug("Saving business address", map[string]interface{}{
		"session_id":  sessionID,
		"postal_code": addr.PostalCode,
	})

	return s.merge(ctx, sessionID, func(draft *model.Draft) error {
		// The derived address and the seeded annotations are authoritative
		// here; client-supplied values for them are ignored.
		addr.FullAddress = BuildFullAddress(addr.BuildingNumber, addr.StreetName, addr.UnitNumber, addr.PostalCode)
		addr.ISOCode = draft.BusinessAddress.ISOCode
		addr.PlanningAreaName = draft.BusinessAddress.PlanningAreaName
		draft.BusinessAddress = addr
		return nil
	})
}

func (s *wizardService) SaveBusinessHours(ctx context.Context, sessionID string, hours *WeeklyHours) (*model.Draft, error) {
	if fields := hours.Validate(); fields != nil {
		logger.Warn("Rejected business hours with invalid times", map[string]interface{}{
			"session_id": sessionID,
			"fields":     len(fields),
		})
		return nil, fmt.Errorf("%w: %d invalid fields", ErrInvalidHours, len(fields))
	}

	return s.merge(ctx, sessionID, func(draft *model.Draft) error {
		draft.BusinessHours = model.BusinessHours{BusinessHoursData: UnflattenDays(hours)}
		return nil
	})
}

// AddServiceOffering appends one offering; unlike the other steps it
// never replaces the collection.
func (s *wizardService) AddServiceOffering(ctx context.Context, sessionID string, input ServiceOfferingInput) (*model.Draft, error) {
	price := LookupPrice(input.Level, input.ClassSize)
	if price == "" {
		logger.Warn("No price for offering", map[string]interface{}{
			"session_id": sessionID,
			"level":      input.Level,
			"class_size": input.ClassSize,
		})
		return nil, ErrPriceUnavailable
	}

	offering := model.ServiceOffering{
		Name:        fmt.Sprintf("%s %s Tuition", input.Level, input.Subject),
		Description: fmt.Sprintf("%s %s Tuition", input.Level, input.Subject),
		Tags:        []string{input.Level, input.Subject, input.Stream, input.ClassSize, input.DeliveryMode},
		Pricing: model.Pricing{
			Price:       price,
			Currency:    "SGD",
			PricingUnit: "hour",
			VariantName: "Standard Rate",
		},
	}

	return s.merge(ctx, sessionID, func(draft *model.Draft) error {
		draft.Services.ServicesData = append(draft.Services.ServicesData, offering)
		return nil
	})
}

// merge is the single commit path: load, mutate a clone, store, notify.
func (s *wizardService) merge(ctx context.Context, sessionID string, mutate func(*model.Draft) error) (*model.Draft, error) {
	current, err := s.GetDraft(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	next := current.Clone()
	if err := mutate(next); err != nil {
		return nil, err
	}

	if err := s.draftRepo.Save(ctx, sessionID, next); err != nil {
		logger.Error("Failed to commit draft", err, map[string]interface{}{
			"session_id": sessionID,
		})
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.NotifyProgress(sessionID, snapshotOf(next))
	}

	return next, nil
}
