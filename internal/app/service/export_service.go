package service

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jteo/listify-backend/internal/app/model"
	"github.com/jteo/listify-backend/internal/app/repository"
	"github.com/jteo/listify-backend/pkg/logger"
	"github.com/xuri/excelize/v2"
)

// ExportService renders accepted listings as an XLSX workbook for the
// operations team.
type ExportService interface {
	ExportListings() (*bytes.Buffer, error)
}

type exportService struct {
	listingRepo repository.ListingRepository
}

func NewExportService(listingRepo repository.ListingRepository) ExportService {
	return &exportService{listingRepo: listingRepo}
}

var exportHeader = []string{
	"External ID", "Name", "Description", "Contact Email",
	"Full Address", "Postal Code", "Latitude", "Longitude",
	"Average Rating", "Services", "Submitted At",
}

func (s *exportService) ExportListings() (*bytes.Buffer, error) {
	listings, err := s.listingRepo.FindAll()
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Listings"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}

	for col, title := range exportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return nil, err
		}
	}

	for i, listing := range listings {
		row := i + 2
		values := []interface{}{
			listing.ExternalID,
			listing.Name,
			listing.Description,
			listing.ContactEmail,
			listing.FullAddress,
			listing.PostalCode,
			listing.Latitude,
			listing.Longitude,
			listing.AverageRating,
			serviceNames(listing.Services),
			listing.SubmittedAt.Format("2006-01-02 15:04:05"),
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		logger.Error("Failed to render listings workbook", err, nil)
		return nil, err
	}

	logger.Info("Exported listings workbook", map[string]interface{}{
		"count": len(listings),
	})
	return buf, nil
}

func serviceNames(services model.ServiceList) string {
	names := make([]string, 0, len(services))
	for _, svc := range services {
		names = append(names, svc.Name)
	}
	return strings.Join(names, "; ")
}
