package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jteo/listify-backend/internal/app/model"
	"github.com/jteo/listify-backend/internal/app/repository"
	"github.com/jteo/listify-backend/pkg/directory"
	"github.com/jteo/listify-backend/pkg/logger"
)

var (
	ErrDraftNotFound   = errors.New("no draft exists for this session")
	ErrDraftIncomplete = errors.New("draft is not complete")
	ErrSubmitInFlight  = errors.New("a submission is already in progress")
)

// DirectorySubmitter is the outbound edge to the listing directory.
// Satisfied by *directory.Client.
type DirectorySubmitter interface {
	Submit(ctx context.Context, payload directory.SubmissionRequest) (*directory.SubmissionResult, error)
}

// Archiver stores a copy of an accepted submission. Failures are logged
// and never surfaced to the caller.
type Archiver interface {
	ArchiveSubmission(ctx context.Context, externalID string, draft *model.Draft) error
}

// ReviewResult pairs the full draft with its completeness view for the
// review screen.
type ReviewResult struct {
	Draft    *model.Draft     `json:"draft"`
	Progress ProgressSnapshot `json:"progress"`
}

// SubmitService handles the final step of the wizard: reviewing the
// accumulated draft and handing it to the directory. A successful
// submission persists the listing locally and destroys the draft; a
// failed one leaves the draft untouched so the session can retry.
type SubmitService interface {
	Review(ctx context.Context, sessionID string) (*ReviewResult, error)
	Submit(ctx context.Context, sessionID string) (*model.Listing, error)
}

type submitService struct {
	draftRepo   repository.DraftRepository
	listingRepo repository.ListingRepository
	directory   DirectorySubmitter
	archiver    Archiver
}

func NewSubmitService(draftRepo repository.DraftRepository, listingRepo repository.ListingRepository, dir DirectorySubmitter, archiver Archiver) SubmitService {
	return &submitService{
		draftRepo:   draftRepo,
		listingRepo: listingRepo,
		directory:   dir,
		archiver:    archiver,
	}
}

func (s *submitService) Review(ctx context.Context, sessionID string) (*ReviewResult, error) {
	draft, err := s.draftRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if draft == nil {
		return nil, ErrDraftNotFound
	}

	return &ReviewResult{
		Draft:    draft,
		Progress: snapshotOf(draft),
	}, nil
}

// Submit re-checks completeness regardless of how the caller reached the
// review screen, takes the per-session submit lock, and posts the draft.
func (s *submitService) Submit(ctx context.Context, sessionID string) (*model.Listing, error) {
	draft, err := s.draftRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if draft == nil {
		return nil, ErrDraftNotFound
	}

	if incomplete := model.FirstIncompleteStep(draft); incomplete != nil {
		return nil, fmt.Errorf("%w: %s is missing", ErrDraftIncomplete, incomplete.String())
	}

	acquired, err := s.draftRepo.TryAcquireSubmitLock(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, ErrSubmitInFlight
	}

	logger.Info("Submitting draft to directory", map[string]interface{}{
		"session_id": sessionID,
		"business":   draft.BusinessInfo.BusinessName,
	})

	result, err := s.directory.Submit(ctx, directory.NewSubmissionRequest(draft))
	if err != nil {
		// Leave the draft untouched; the session can retry.
		if releaseErr := s.draftRepo.ReleaseSubmitLock(ctx, sessionID); releaseErr != nil {
			logger.Error("Failed to release submit lock", releaseErr, map[string]interface{}{
				"session_id": sessionID,
			})
		}
		logger.Error("Directory rejected submission", err, map[string]interface{}{
			"session_id": sessionID,
		})
		return nil, err
	}

	logger.Info("Directory accepted submission", map[string]interface{}{
		"session_id": sessionID,
		"response":   string(result.Body),
	})

	listing := model.ListingFromDraft(uuid.New().String(), draft)
	if err := s.listingRepo.Create(listing); err != nil {
		// The directory already has the listing; losing the local row is
		// recoverable from the archive, so still tear down the draft.
		logger.Error("Failed to persist accepted listing", err, map[string]interface{}{
			"session_id":  sessionID,
			"external_id": listing.ExternalID,
		})
	}

	if s.archiver != nil {
		if err := s.archiver.ArchiveSubmission(ctx, listing.ExternalID, draft); err != nil {
			logger.Error("Failed to archive submission", err, map[string]interface{}{
				"external_id": listing.ExternalID,
			})
		}
	}

	if err := s.draftRepo.Delete(ctx, sessionID); err != nil {
		logger.Error("Failed to delete draft after submission", err, map[string]interface{}{
			"session_id": sessionID,
		})
	}
	if err := s.draftRepo.ReleaseSubmitLock(ctx, sessionID); err != nil {
		logger.Error("Failed to release submit lock", err, map[string]interface{}{
			"session_id": sessionID,
		})
	}

	return listing, nil
}
