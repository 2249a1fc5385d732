package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jteo/listify-backend/internal/app/service"
	"github.com/jteo/listify-backend/internal/middleware"
	"github.com/jteo/listify-backend/pkg/directory"

	apperrors "github.com/jteo/listify-backend/internal/errors"
)

type SubmitController struct {
	submitService service.SubmitService
}

func NewSubmitController(submitService service.SubmitService) *SubmitController {
	return &SubmitController{submitService: submitService}
}

// Review returns the full draft with its completeness view. The route
// is reachable regardless of progress; Submit re-checks completeness.
func (ctrl *SubmitController) Review(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	sessionID, _ := middleware.GetSessionID(c)
	result, err := ctrl.submitService.Review(c.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, service.ErrDraftNotFound) {
			apperrors.NotFound(c, apperrors.WizardDraftNotFound, "No draft exists for this session")
			return
		}
		log.Error("Failed to build review", err, nil)
		apperrors.InternalError(c, "Failed to build review")
		return
	}

	c.JSON(http.StatusOK, result)
}

// Submit posts the completed draft to the listing directory. On success
// the draft is gone and the accepted listing is returned; on failure the
// draft is untouched and the client may retry.
func (ctrl *SubmitController) Submit(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	sessionID, _ := middleware.GetSessionID(c)
	listing, err := ctrl.submitService.Submit(c.Request.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDraftNotFound):
			apperrors.NotFound(c, apperrors.WizardDraftNotFound, "No draft exists for this session")
		case errors.Is(err, service.ErrDraftIncomplete):
			apperrors.Conflict(c, apperrors.WizardDraftIncomplete, "The draft is not complete")
		case errors.Is(err, service.ErrSubmitInFlight):
			apperrors.Conflict(c, apperrors.SubmitInFlight, "A submission is already in progress")
		case errors.Is(err, directory.ErrRejected), errors.Is(err, directory.ErrInvalidResponse), errors.Is(err, directory.ErrNetworkError):
			log.Error("Directory submission failed", err, nil)
			apperrors.BadGateway(c, apperrors.SubmitFailed, "The listing directory did not accept the submission")
		default:
			log.Error("Submission failed", err, nil)
			apperrors.InternalError(c, "Submission failed")
		}
		return
	}

	log.Info("Listing submitted", map[string]interface{}{
		"external_id": listing.ExternalID,
	})
	c.JSON(http.StatusCreated, gin.H{"listing": listing})
}
