package errors

// Error code constants.
// Format: CATEGORY_SPECIFIC_DETAIL
// The frontend maps these codes to localized messages.

const (
	// ==================== Session (SESSION_) ====================
	SessionMissing = "SESSION_MISSING" // no session cookie present

	// ==================== Validation (VALIDATION_) ====================
	ValidationInvalidInput = "VALIDATION_INVALID_INPUT"
	ValidationInvalidRange = "VALIDATION_INVALID_RANGE"
	ValidationRequired     = "VALIDATION_REQUIRED"

	// ==================== Wizard (WIZARD_) ====================
	WizardStepUnknown      = "WIZARD_STEP_UNKNOWN"      // path segment is not a step
	WizardDraftNotFound    = "WIZARD_DRAFT_NOT_FOUND"   // no draft for this session
	WizardDraftIncomplete  = "WIZARD_DRAFT_INCOMPLETE"  // earlier step still incomplete
	WizardInvalidTime      = "WIZARD_INVALID_TIME"      // business hours not HH:MM
	WizardPriceUnavailable = "WIZARD_PRICE_UNAVAILABLE" // no price for level/class size

	// ==================== Submission (SUBMIT_) ====================
	SubmitInFlight = "SUBMIT_IN_FLIGHT" // a submission is already pending
	SubmitFailed   = "SUBMIT_FAILED"    // directory rejected or unreachable

	// ==================== Geocoding (GEOCODE_) ====================
	GeocodeFailed   = "GEOCODE_FAILED"
	GeocodeNotFound = "GEOCODE_NOT_FOUND"

	// ==================== Listings (LISTING_) ====================
	ListingNotFound     = "LISTING_NOT_FOUND"
	ListingExportFailed = "LISTING_EXPORT_FAILED"

	// ==================== Resources (RESOURCE_) ====================
	ResourceNotFound      = "RESOURCE_NOT_FOUND"
	ResourceAlreadyExists = "RESOURCE_ALREADY_EXISTS"

	// ==================== Internal (INTERNAL_) ====================
	InternalServerError = "INTERNAL_SERVER_ERROR"
	InternalExternalAPI = "INTERNAL_EXTERNAL_API"
)
