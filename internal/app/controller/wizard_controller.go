package controller

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jteo/listify-backend/internal/app/model"
	"github.com/jteo/listify-backend/internal/app/service"
	"github.com/jteo/listify-backend/internal/errors"
	"github.com/jteo/listify-backend/internal/middleware"
	"github.com/jteo/listify-backend/pkg/util"
)

type WizardController struct {
	wizardService  service.WizardService
	geocodeBaseURL string
}

func NewWizardController(wizardService service.WizardService, geocodeBaseURL string) *WizardController {
	return &WizardController{
		wizardService:  wizardService,
		geocodeBaseURL: geocodeBaseURL,
	}
}

type BusinessInfoRequest struct {
	BusinessName              string  `json:"businessName" binding:"required"`
	BusinessDescription       string  `json:"businessDescription" binding:"required,min=10"`
	BusinessContactEmail      string  `json:"businessContactEmail" binding:"required,email"`
	BusinessGooglePlaceID     string  `json:"businessGooglePlaceId" binding:"required,min=20,max=50"`
	BusinessFacebookPageID    string  `json:"businessFacebookPageId" binding:"required"`
	BusinessFacebookPageLink  string  `json:"businessFacebookPageLink" binding:"required,url"`
	BusinessInstagramPageLink string  `json:"businessInstagramPageLink" binding:"required,url"`
	BusinessWhatsappLink      string  `json:"businessWhatsappLink" binding:"required,url"`
	BusinessAverageRating     float64 `json:"businessAverageRating" binding:"required,min=1,max=5"`
}

type BusinessAddressRequest struct {
	BuildingNumber string   `json:"buildingNumber" binding:"required"`
	StreetName     string   `json:"streetName" binding:"required"`
	UnitNumber     string   `json:"unitNumber" binding:"required"`
	PostalCode     string   `json:"postalCode" binding:"required,len=6,numeric"`
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`
}

type GeocodeRequest struct {
	PostalCode string `json:"postalCode" binding:"required,len=6,numeric"`
}

// GetDraft returns the session's full draft.
func (ctrl *WizardController) GetDraft(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	sessionID, _ := middleware.GetSessionID(c)
	draft, err := ctrl.wizardService.GetDraft(c.Request.Context(), sessionID)
	if err != nil {
		log.Error("Failed to fetch draft", err, nil)
		errors.InternalError(c, "Failed to fetch draft")
		return
	}

	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// GetProgress returns the per-step completeness snapshot.
func (ctrl *WizardController) GetProgress(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	sessionID, _ := middleware.GetSessionID(c)
	snapshot, err := ctrl.wizardService.Progress(c.Request.Context(), sessionID)
	if err != nil {
		log.Error("Failed to compute progress", err, nil)
		errors.InternalError(c, "Failed to compute progress")
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

// GetStepData returns the form defaults for a step. The guard has
// already resolved the step and preloaded the draft.
func (ctrl *WizardController) GetStepData(c *gin.Context) {
	step, _ := middleware.GetStep(c)
	draft, ok := middleware.GetDraft(c)
	if !ok {
		errors.InternalError(c, "")
		return
	}

	switch step {
	case model.StepBusinessInformation:
		c.JSON(http.StatusOK, gin.H{"businessInfo": draft.BusinessInfo})
	case model.StepBusinessAddress:
		c.JSON(http.StatusOK, gin.H{"businessAddress": draft.BusinessAddress})
	case model.StepBusinessHours:
		c.JSON(http.StatusOK, gin.H{"businessHours": service.FlattenDays(draft.BusinessHours.BusinessHoursData)})
	case model.StepServiceOfferings:
		c.JSON(http.StatusOK, gin.H{"services": draft.Services})
	}
}

// SaveStep handles PUT on a step route: it replaces that step's section
// of the draft. Service offerings are additive and use POST instead.
func (ctrl *WizardController) SaveStep(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	step, _ := middleware.GetStep(c)
	sessionID, _ := middleware.GetSessionID(c)

	var (
		draft *model.Draft
		err   error
	)

	switch step {
	case model.StepBusinessInformation:
		var req BusinessInfoRequest
		if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
			log.Warn("Invalid business information payload", map[string]interface{}{
				"error": bindErr.Error(),
			})
			errors.BadRequest(c, errors.ValidationInvalidInput, "Invalid business information")
			return
		}
		draft, err = ctrl.wizardService.SaveBusinessInfo(c.Request.Context(), sessionID, model.BusinessInfo(req))

	case model.StepBusinessAddress:
		var req BusinessAddressRequest
		if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
			log.Warn("Invalid business address payload", map[string]interface{}{
				"error": bindErr.Error(),
			})
			errors.BadRequest(c, errors.ValidationInvalidInput, "Invalid business address")
			return
		}
		draft, err = ctrl.wizardService.SaveBusinessAddress(c.Request.Context(), sessionID, ctrl.resolveAddress(c, req))

	case model.StepBusinessHours:
		var req service.WeeklyHours
		if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
			log.Warn("Invalid business hours payload", map[string]interface{}{
				"error": bindErr.Error(),
			})
			errors.BadRequest(c, errors.ValidationInvalidInput, "Invalid business hours")
			return
		}
		if fields := req.Validate(); fields != nil {
			errors.RespondWithValidationError(c, errors.WizardInvalidTime, fields)
			return
		}
		draft, err = ctrl.wizardService.SaveBusinessHours(c.Request.Context(), sessionID, &req)

	case model.StepServiceOfferings:
		c.Header("Allow", "GET, POST")
		errors.RespondWithError(c, http.StatusMethodNotAllowed, errors.ValidationInvalidInput, "Service offerings are added one at a time")
		return
	}

	if err != nil {
		log.Error("Failed to save step", err, map[string]interface{}{
			"step": step.Slug(),
		})
		errors.InternalError(c, "Failed to save step")
		return
	}

	log.Info("Step saved", map[string]interface{}{
		"step": step.Slug(),
	})
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// AddServiceOffering handles POST on the service-offerings step. Every
// call appends one offering to the draft.
func (ctrl *WizardController) AddServiceOffering(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	step, _ := middleware.GetStep(c)
	if step != model.StepServiceOfferings {
		c.Header("Allow", "GET, PUT")
		errors.RespondWithError(c, http.StatusMethodNotAllowed, errors.ValidationInvalidInput, "This step is saved with PUT")
		return
	}

	var req service.ServiceOfferingInput
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		log.Warn("Invalid service offering payload", map[string]interface{}{
			"error": bindErr.Error(),
		})
		errors.BadRequest(c, errors.ValidationInvalidInput, "Invalid service offering")
		return
	}

	sessionID, _ := middleware.GetSessionID(c)
	draft, err := ctrl.wizardService.AddServiceOffering(c.Request.Context(), sessionID, req)
	if err != nil {
		if err == service.ErrPriceUnavailable {
			log.Warn("Offering has no price", map[string]interface{}{
				"level":      req.Level,
				"class_size": req.ClassSize,
			})
			errors.BadRequest(c, errors.WizardPriceUnavailable, "No price is available for this level and class size")
			return
		}
		log.Error("Failed to add service offering", err, nil)
		errors.InternalError(c, "Failed to add service offering")
		return
	}

	log.Info("Service offering added", map[string]interface{}{
		"count": len(draft.Services.ServicesData),
	})
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// Geocode resolves a postal code to coordinates via OneMap.
func (ctrl *WizardController) Geocode(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req GeocodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.BadRequest(c, errors.ValidationInvalidInput, "Invalid postal code")
		return
	}

	lat, lng, err := util.GeocodePostalCode(ctrl.geocodeBaseURL, req.PostalCode)
	if err != nil {
		if stderrors.Is(err, util.ErrNoGeocodeResult) {
			errors.NotFound(c, errors.GeocodeNotFound, "No location found for this postal code")
			return
		}
		log.Error("Geocoding request failed", err, map[string]interface{}{
			"postal_code": req.PostalCode,
		})
		errors.BadGateway(c, errors.GeocodeFailed, "Geocoding service is unavailable")
		return
	}
	if lat == nil || lng == nil {
		errors.NotFound(c, errors.GeocodeNotFound, "No location found for this postal code")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"latitude":  *lat,
		"longitude": *lng,
	})
}

// resolveAddress converts the request into the draft section, filling
// coordinates from the geocoder when the client did not supply them.
// Geocoding failures never block the save.
func (ctrl *WizardController) resolveAddress(c *gin.Context, req BusinessAddressRequest) model.BusinessAddress {
	log := middleware.GetLoggerFromContext(c)

	addr := model.BusinessAddress{
		BuildingNumber: req.BuildingNumber,
		StreetName:     req.StreetName,
		UnitNumber:     req.UnitNumber,
		PostalCode:     req.PostalCode,
	}

	if req.Latitude != nil && req.Longitude != nil {
		addr.Latitude = *req.Latitude
		addr.Longitude = *req.Longitude
		return addr
	}

	lat, lng, err := util.GeocodePostalCode(ctrl.geocodeBaseURL, req.PostalCode)
	if err != nil {
		log.Warn("Geocoding failed; saving address without coordinates", map[string]interface{}{
			"postal_code": req.PostalCode,
			"error":       err.Error(),
		})
		return addr
	}
	if lat != nil && lng != nil {
		addr.Latitude = *lat
		addr.Longitude = *lng
	}
	return addr
}
