package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

// DayHoursList stores the weekly hours collection as a JSON column.
type DayHoursList []DayHours

func (l DayHoursList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

func (l *DayHoursList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan DayHoursList")
	}
	return json.Unmarshal(bytes, l)
}

// ServiceList stores the service offerings collection as a JSON column.
type ServiceList []ServiceOffering

func (l ServiceList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

func (l *ServiceList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan ServiceList")
	}
	return json.Unmarshal(bytes, l)
}

// Listing is a business listing accepted by the external directory. One
// row is written per successful submission; the draft itself is never
// persisted to the database.
type Listing struct {
	ID         uint   `gorm:"primarykey" json:"id"`
	ExternalID string `gorm:"uniqueIndex;type:varchar(36)" json:"external_id"`

	Name              string  `gorm:"not null" json:"name"`
	Description       string  `gorm:"type:text" json:"description"`
	ContactEmail      string  `gorm:"index" json:"contact_email"`
	GooglePlaceID     string  `gorm:"type:varchar(64)" json:"google_place_id"`
	FacebookPageID    string  `json:"facebook_page_id"`
	FacebookPageLink  string  `json:"facebook_page_link"`
	InstagramPageLink string  `json:"instagram_page_link"`
	WhatsappLink      string  `json:"whatsapp_link"`
	AverageRating     float64 `json:"average_rating"`

	BuildingNumber   string  `json:"building_number"`
	StreetName       string  `json:"street_name"`
	UnitNumber       string  `json:"unit_number"`
	PostalCode       string  `gorm:"index;type:varchar(10)" json:"postal_code"`
	FullAddress      string  `gorm:"type:text" json:"full_address"`
	Latitude         float64 `gorm:"type:decimal(10,8)" json:"latitude"`
	Longitude        float64 `gorm:"type:decimal(11,8)" json:"longitude"`
	ISOCode          string  `gorm:"type:varchar(10)" json:"iso_code"`
	PlanningAreaName string  `json:"planning_area_name"`

	Hours    DayHoursList `gorm:"type:text" json:"hours"`
	Services ServiceList  `gorm:"type:text" json:"services"`

	SubmittedAt time.Time      `json:"submitted_at"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Listing) TableName() string {
	return "listings"
}

// ListingFromDraft flattens a complete draft into a listing row.
func ListingFromDraft(externalID string, d *Draft) *Listing {
	return &Listing{
		ExternalID:        externalID,
		Name:              d.BusinessInfo.BusinessName,
		Description:       d.BusinessInfo.BusinessDescription,
		ContactEmail:      d.BusinessInfo.BusinessContactEmail,
		GooglePlaceID:     d.BusinessInfo.BusinessGooglePlaceID,
		FacebookPageID:    d.BusinessInfo.BusinessFacebookPageID,
		FacebookPageLink:  d.BusinessInfo.BusinessFacebookPageLink,
		InstagramPageLink: d.BusinessInfo.BusinessInstagramPageLink,
		WhatsappLink:      d.BusinessInfo.BusinessWhatsappLink,
		AverageRating:     d.BusinessInfo.BusinessAverageRating,
		BuildingNumber:    d.BusinessAddress.BuildingNumber,
		StreetName:        d.BusinessAddress.StreetName,
		UnitNumber:        d.BusinessAddress.UnitNumber,
		PostalCode:        d.BusinessAddress.PostalCode,
		FullAddress:       d.BusinessAddress.FullAddress,
		Latitude:          d.BusinessAddress.Latitude,
		Longitude:         d.BusinessAddress.Longitude,
		ISOCode:           d.BusinessAddress.ISOCode,
		PlanningAreaName:  d.BusinessAddress.PlanningAreaName,
		Hours:             DayHoursList(d.BusinessHours.BusinessHoursData),
		Services:          ServiceList(d.Services.ServicesData),
		SubmittedAt:       time.Now(),
	}
}
