package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jteo/listify-backend/internal/app/model"
	"github.com/jteo/listify-backend/internal/app/service"
	"github.com/jteo/listify-backend/internal/errors"
)

// Context keys set by the step guard for downstream handlers.
const (
	StepKey  = "wizard_step"
	DraftKey = "wizard_draft"
)

// StepGuardMiddleware gates the step routes: a request for a step that
// comes after the first incomplete one is redirected to that incomplete
// step. Steps at or before it pass through, so earlier answers can
// always be revisited.
type StepGuardMiddleware struct {
	wizard service.WizardService
}

func NewStepGuardMiddleware(wizard service.WizardService) *StepGuardMiddleware {
	return &StepGuardMiddleware{wizard: wizard}
}

// Guard resolves the :step path parameter and enforces the gating rule.
// It also stashes the resolved step and the session's draft in the
// context so handlers do not load the draft twice.
func (m *StepGuardMiddleware) Guard() gin.HandlerFunc {
	return func(c *gin.Context) {
		log := GetLoggerFromContext(c)

		step, ok := model.StepFromSlug(c.Param("step"))
		if !ok {
			errors.NotFound(c, errors.WizardStepUnknown, "Unknown wizard step")
			c.Abort()
			return
		}

		sessionID, ok := GetSessionID(c)
		if !ok {
			errors.RespondWithError(c, http.StatusUnauthorized, errors.SessionMissing, "No wizard session")
			c.Abort()
			return
		}

		draft, err := m.wizard.GetDraft(c.Request.Context(), sessionID)
		if err != nil {
			log.Error("Failed to load draft for step guard", err, map[string]interface{}{
				"session_id": sessionID,
			})
			errors.InternalError(c, "")
			c.Abort()
			return
		}

		if incomplete := model.FirstIncompleteStep(draft); incomplete != nil && step.After(*incomplete) {
			log.Debug("Redirecting past incomplete step", map[string]interface{}{
				"requested":  step.Slug(),
				"incomplete": incomplete.Slug(),
			})
			c.Redirect(http.StatusTemporaryRedirect, incomplete.Route())
			c.Abort()
			return
		}

		c.Set(StepKey, step)
		c.Set(DraftKey, draft)

		c.Next()
	}
}

// GetStep extracts the resolved step from context
func GetStep(c *gin.Context) (model.Step, bool) {
	step, exists := c.Get(StepKey)
	if !exists {
		return 0, false
	}
	return step.(model.Step), true
}

// GetDraft extracts the preloaded draft from context
func GetDraft(c *gin.Context) (*model.Draft, bool) {
	draft, exists := c.Get(DraftKey)
	if !exists {
		return nil, false
	}
	return draft.(*model.Draft), true
}
