package main

import (
	"fmt"
	"log"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jteo/listify-backend/config"
	"github.com/jteo/listify-backend/internal/app/model"
	"github.com/jteo/listify-backend/internal/app/repository"
	"github.com/jteo/listify-backend/internal/app/service"
	"github.com/jteo/listify-backend/internal/db"
	"github.com/xuri/excelize/v2"
)

// Imports pre-approved listings from an XLSX export. Expected columns:
// name, description, contact email, building, street, unit, postal
// code, latitude, longitude, average rating.
func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run cmd/seed/main.go <xlsx_file_path>")
	}

	filePath := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	listingRepo := repository.NewListingRepository(db.GetDB())

	fmt.Printf("Reading XLSX file: %s\n", filePath)
	listings, err := readListingsFromXLSX(filePath)
	if err != nil {
		log.Fatal("Failed to read XLSX:", err)
	}

	fmt.Printf("Total listings to import: %d\n", len(listings))

	fmt.Print("Do you want to proceed with the import? (yes/no): ")
	var confirm string
	fmt.Scanln(&confirm)
	if confirm != "yes" && confirm != "y" {
		fmt.Println("Import cancelled.")
		return
	}

	imported := 0
	for i := range listings {
		if err := listingRepo.Create(&listings[i]); err != nil {
			log.Printf("Failed to import listing %q: %v", listings[i].Name, err)
			continue
		}
		imported++
	}

	fmt.Println("Import completed successfully!")
	fmt.Printf("Total listings imported: %d\n", imported)
}

var postalPattern = regexp.MustCompile(`^\d{6}$`)

func readListingsFromXLSX(filePath string) ([]model.Listing, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("no sheets found in XLSX file")
	}

	fmt.Printf("Reading sheet: %s\n", sheetName)

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("no data found in XLSX file")
	}

	var listings []model.Listing
	seen := make(map[string]bool)
	skippedCount := 0
	invalidCoordCount := 0

	for i, row := range rows {
		if i == 0 {
			fmt.Printf("Headers: %v\n", row)
			continue
		}

		if len(row) < 10 {
			skippedCount++
			continue
		}

		name := strings.TrimSpace(row[0])
		description := strings.TrimSpace(row[1])
		email := strings.TrimSpace(row[2])
		building := strings.TrimSpace(row[3])
		street := strings.TrimSpace(row[4])
		unit := strings.TrimSpace(row[5])
		postal := strings.TrimSpace(row[6])
		latitudeStr := strings.TrimSpace(row[7])
		longitudeStr := strings.TrimSpace(row[8])
		ratingStr := strings.TrimSpace(row[9])

		if name == "" || email == "" || street == "" {
			skippedCount++
			continue
		}

		if !postalPattern.MatchString(postal) {
			skippedCount++
			continue
		}

		lat, errLat := strconv.ParseFloat(latitudeStr, 64)
		lng, errLng := strconv.ParseFloat(longitudeStr, 64)
		if errLat != nil || errLng != nil || lat == 0 || lng == 0 {
			invalidCoordCount++
			skippedCount++
			continue
		}

		rating, err := strconv.ParseFloat(ratingStr, 64)
		if err != nil {
			rating = 0
		}

		// Dedupe on name+postal
		key := fmt.Sprintf("%s|%s", name, postal)
		if seen[key] {
			skippedCount++
			continue
		}
		seen[key] = true

		draft := model.NewDraft()
		draft.BusinessInfo = model.BusinessInfo{
			BusinessName:          name,
			BusinessDescription:   description,
			BusinessContactEmail:  email,
			BusinessAverageRating: rating,
		}
		draft.BusinessAddress.BuildingNumber = building
		draft.BusinessAddress.StreetName = street
		draft.BusinessAddress.UnitNumber = unit
		draft.BusinessAddress.PostalCode = postal
		draft.BusinessAddress.Latitude = lat
		draft.BusinessAddress.Longitude = lng

		draft.BusinessAddress.FullAddress = service.BuildFullAddress(building, street, unit, postal)

		listing := model.ListingFromDraft(uuid.New().String(), draft)
		listing.SubmittedAt = time.Now()

		listings = append(listings, *listing)

		if len(listings)%1000 == 0 {
			fmt.Printf("Processed %d listings...\n", len(listings))
		}
	}

	fmt.Printf("\nSummary:\n")
	fmt.Printf("  Total rows: %d\n", len(rows)-1)
	fmt.Printf("  Valid listings: %d\n", len(listings))
	fmt.Printf("  Skipped rows: %d\n", skippedCount)
	fmt.Printf("  Rows with invalid coordinates: %d\n", invalidCoordCount)

	return listings, nil
}
