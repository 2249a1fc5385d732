package directory

import (
	"encoding/json"

	"github.com/jteo/listify-backend/internal/app/model"
)

// SubmissionRequest is the payload sent to POST /api/form: the four
// draft sections exactly as accumulated by the wizard.
type SubmissionRequest struct {
	BusinessInfo    model.BusinessInfo    `json:"businessInfo"`
	BusinessAddress model.BusinessAddress `json:"businessAddress"`
	BusinessHours   model.BusinessHours   `json:"businessHours"`
	Services        model.Services        `json:"services"`
}

// NewSubmissionRequest builds the wire payload from a draft.
func NewSubmissionRequest(d *model.Draft) SubmissionRequest {
	return SubmissionRequest{
		BusinessInfo:    d.BusinessInfo,
		BusinessAddress: d.BusinessAddress,
		BusinessHours:   d.BusinessHours,
		Services:        d.Services,
	}
}

// SubmissionResult carries the directory's response body. The directory
// contract only requires a JSON body on success; it is logged, not
// otherwise consumed.
type SubmissionResult struct {
	Body json.RawMessage
}
