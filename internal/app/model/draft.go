package model

// Draft is the accumulated, in-progress listing submission spanning all
// wizard steps. It always carries exactly four sections; collection
// sections default to empty slices, never nil, so the wire shape stays
// stable across merges.
type Draft struct {
	BusinessInfo    BusinessInfo    `json:"businessInfo"`
	BusinessAddress BusinessAddress `json:"businessAddress"`
	BusinessHours   BusinessHours   `json:"businessHours"`
	Services        Services        `json:"services"`
}

type BusinessInfo struct {
	BusinessName              string  `json:"businessName"`
	BusinessDescription       string  `json:"businessDescription"`
	BusinessContactEmail      string  `json:"businessContactEmail"`
	BusinessGooglePlaceID     string  `json:"businessGooglePlaceId"`
	BusinessFacebookPageID    string  `json:"businessFacebookPageId"`
	BusinessFacebookPageLink  string  `json:"businessFacebookPageLink"`
	BusinessInstagramPageLink string  `json:"businessInstagramPageLink"`
	BusinessWhatsappLink      string  `json:"businessWhatsappLink"`
	BusinessAverageRating     float64 `json:"businessAverageRating"`
}

type BusinessAddress struct {
	BuildingNumber string  `json:"buildingNumber"`
	StreetName     string  `json:"streetName"`
	UnitNumber     string  `json:"unitNumber"`
	PostalCode     string  `json:"postalCode"`
	FullAddress    string  `json:"fullAddress"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`

	// Fixed annotations seeded at draft creation, never derived from input.
	ISOCode          string `json:"iso_code,omitempty"`
	PlanningAreaName string `json:"planningAreaName,omitempty"`
}

type BusinessHours struct {
	BusinessHoursData []DayHours `json:"businessHoursData"`
}

// DayHours holds one weekday's opening window, times as HH:MM:SS.
type DayHours struct {
	DayName   string `json:"day_name"`
	OpenTime  string `json:"open_time"`
	CloseTime string `json:"close_time"`
}

type Services struct {
	ServicesData []ServiceOffering `json:"servicesData"`
}

type ServiceOffering struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Pricing     Pricing  `json:"pricing"`
}

type Pricing struct {
	Price       string `json:"price"`
	Currency    string `json:"currency,omitempty"`
	PricingUnit string `json:"pricing_unit,omitempty"`
	VariantName string `json:"variant_name,omitempty"`
}

const (
	DefaultISOCode          = "SG-01"
	DefaultPlanningAreaName = "Bishan"
)

// NewDraft returns an empty draft with the fixed address annotations
// seeded and both collections initialized.
func NewDraft() *Draft {
	return &Draft{
		BusinessAddress: BusinessAddress{
			ISOCode:          DefaultISOCode,
			PlanningAreaName: DefaultPlanningAreaName,
		},
		BusinessHours: BusinessHours{BusinessHoursData: []DayHours{}},
		Services:      Services{ServicesData: []ServiceOffering{}},
	}
}

// Normalize restores invariants after JSON decoding: collections are
// never nil and the seeded annotations are never lost.
func (d *Draft) Normalize() {
	if d.BusinessHours.BusinessHoursData == nil {
		d.BusinessHours.BusinessHoursData = []DayHours{}
	}
	if d.Services.ServicesData == nil {
		d.Services.ServicesData = []ServiceOffering{}
	}
	if d.BusinessAddress.ISOCode == "" {
		d.BusinessAddress.ISOCode = DefaultISOCode
	}
	if d.BusinessAddress.PlanningAreaName == "" {
		d.BusinessAddress.PlanningAreaName = DefaultPlanningAreaName
	}
}

// Clone returns a copy that shares no mutable state with the receiver.
// Step saves merge into a clone so the stored draft is only replaced at
// the commit boundary.
func (d *Draft) Clone() *Draft {
	clone := *d

	clone.BusinessHours.BusinessHoursData = make([]DayHours, len(d.BusinessHours.BusinessHoursData))
	copy(clone.BusinessHours.BusinessHoursData, d.BusinessHours.BusinessHoursData)

	clone.Services.ServicesData = make([]ServiceOffering, len(d.Services.ServicesData))
	for i, svc := range d.Services.ServicesData {
		tags := make([]string, len(svc.Tags))
		copy(tags, svc.Tags)
		svc.Tags = tags
		clone.Services.ServicesData[i] = svc
	}

	return &clone
}
