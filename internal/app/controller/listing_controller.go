package controller

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jteo/listify-backend/internal/app/service"
	"github.com/jteo/listify-backend/internal/middleware"
	"gorm.io/gorm"

	apperrors "github.com/jteo/listify-backend/internal/errors"
	"github.com/jteo/listify-backend/internal/app/repository"
)

type ListingController struct {
	listingRepo   repository.ListingRepository
	exportService service.ExportService
}

func NewListingController(listingRepo repository.ListingRepository, exportService service.ExportService) *ListingController {
	return &ListingController{
		listingRepo:   listingRepo,
		exportService: exportService,
	}
}

func (ctrl *ListingController) ListListings(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	listings, err := ctrl.listingRepo.FindAll()
	if err != nil {
		log.Error("Failed to list listings", err, nil)
		apperrors.InternalError(c, "Failed to fetch listings")
		return
	}

	log.Info("Listings listed", map[string]interface{}{
		"count": len(listings),
	})
	c.JSON(http.StatusOK, gin.H{
		"listings": listings,
		"count":    len(listings),
	})
}

func (ctrl *ListingController) GetListing(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	externalID := c.Param("id")
	listing, err := ctrl.listingRepo.FindByExternalID(externalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apperrors.NotFound(c, apperrors.ListingNotFound, "Listing not found")
			return
		}
		log.Error("Failed to fetch listing", err, map[string]interface{}{
			"external_id": externalID,
		})
		info := apperrors.ParseError(err, "listing")
		apperrors.RespondWithError(c, http.StatusInternalServerError, info.Code, info.Message)
		return
	}

	c.JSON(http.StatusOK, gin.H{"listing": listing})
}

// ExportListings streams all listings as an XLSX workbook.
func (ctrl *ListingController) ExportListings(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	buf, err := ctrl.exportService.ExportListings()
	if err != nil {
		log.Error("Failed to export listings", err, nil)
		apperrors.RespondWithError(c, http.StatusInternalServerError, apperrors.ListingExportFailed, "Failed to export listings")
		return
	}

	filename := fmt.Sprintf("listings-%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
