package service

// BuildFullAddress derives the display address from its four source
// fields. Each segment is included only when its source is non-empty;
// the country token rides with the building segment:
//
//	"{street}, {unit}, {building}, Singapore {postal}"
//
// Pure function of its inputs; recomputed on every address save so the
// stored value can never drift from its sources.
func BuildFullAddress(buildingNumber, streetName, unitNumber, postalCode string) string {
	full := ""
	if streetName != "" {
		full += streetName + ", "
	}
	if unitNumber != "" {
		full += unitNumber + ", "
	}
	if buildingNumber != "" {
		full += buildingNumber + ", Singapore "
	}
	full += postalCode
	return full
}
