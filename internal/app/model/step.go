package model

// Step identifies one of the four data-entry routes of the onboarding
// wizard. The declaration order is the canonical order used for gating;
// the review route is deliberately outside it.
type Step int

const (
	StepBusinessInformation Step = iota
	StepBusinessAddress
	StepBusinessHours
	StepServiceOfferings
)

// Steps lists the data-entry steps in canonical order.
var Steps = []Step{
	StepBusinessInformation,
	StepBusinessAddress,
	StepBusinessHours,
	StepServiceOfferings,
}

const stepRoutePrefix = "/api/v1/wizard/steps/"

// ReviewRoute is reachable regardless of progress; submission itself
// re-checks completeness.
const ReviewRoute = "/api/v1/wizard/review"

var stepSlugs = map[Step]string{
	StepBusinessInformation: "business-information",
	StepBusinessAddress:     "business-address",
	StepBusinessHours:       "business-hours",
	StepServiceOfferings:    "service-offerings",
}

// Slug returns the URL path segment for the step.
func (s Step) Slug() string {
	return stepSlugs[s]
}

// Route returns the full API route for the step.
func (s Step) Route() string {
	return stepRoutePrefix + s.Slug()
}

func (s Step) String() string {
	return s.Slug()
}

// StepFromSlug resolves a path segment back to its step.
func StepFromSlug(slug string) (Step, bool) {
	for step, s := range stepSlugs {
		if s == slug {
			return step, true
		}
	}
	return 0, false
}

// After reports whether s comes strictly after other in canonical order.
func (s Step) After(other Step) bool {
	return s > other
}

// Complete reports whether the draft satisfies the step's completeness
// predicate. Scalars count as complete when truthy (non-empty string,
// non-zero number); collections when non-empty.
func (s Step) Complete(d *Draft) bool {
	switch s {
	case StepBusinessInformation:
		info := d.BusinessInfo
		return info.BusinessName != "" &&
			info.BusinessDescription != "" &&
			info.BusinessContactEmail != "" &&
			info.BusinessGooglePlaceID != "" &&
			info.BusinessFacebookPageID != "" &&
			info.BusinessFacebookPageLink != "" &&
			info.BusinessInstagramPageLink != "" &&
			info.BusinessWhatsappLink != "" &&
			info.BusinessAverageRating != 0
	case StepBusinessAddress:
		// The iso_code and planning area annotations are not checked.
		addr := d.BusinessAddress
		return addr.BuildingNumber != "" &&
			addr.StreetName != "" &&
			addr.UnitNumber != "" &&
			addr.PostalCode != "" &&
			addr.FullAddress != "" &&
			addr.Latitude != 0 &&
			addr.Longitude != 0
	case StepBusinessHours:
		return len(d.BusinessHours.BusinessHoursData) > 0
	case StepServiceOfferings:
		return len(d.Services.ServicesData) > 0
	}
	return false
}

// FirstIncompleteStep returns the earliest step whose completeness
// predicate fails, checking in canonical order and short-circuiting.
// A nil result means the draft is fully complete.
func FirstIncompleteStep(d *Draft) *Step {
	for _, step := range Steps {
		if !step.Complete(d) {
			s := step
			return &s
		}
	}
	return nil
}
