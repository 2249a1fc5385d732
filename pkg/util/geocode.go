package util

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

// ErrNoGeocodeResult is returned when the postal code resolves to
// nothing.
var ErrNoGeocodeResult = errors.New("no geocode result")

// OneMapSearchResponse represents the response from the OneMap Singapore
// search API.
type OneMapSearchResponse struct {
	Found   int `json:"found"`
	Results []struct {
		SearchVal string `json:"SEARCHVAL"`
		Address   string `json:"ADDRESS"`
		Postal    string `json:"POSTAL"`
		Latitude  string `json:"LATITUDE"`
		Longitude string `json:"LONGITUDE"`
	} `json:"results"`
}

// GeocodePostalCode resolves a Singapore postal code to latitude and
// longitude using the OneMap search API.
// Returns (latitude, longitude, error)
func GeocodePostalCode(baseURL, postalCode string) (*float64, *float64, error) {
	if postalCode == "" {
		return nil, nil, nil // No error, just no coordinates
	}

	// OneMap API - Search
	// https://www.onemap.gov.sg/apidocs/search
	params := url.Values{}
	params.Add("searchVal", postalCode)
	params.Add("returnGeom", "Y")
	params.Add("getAddrDetails", "Y")
	requestURL := fmt.Sprintf("%s/api/common/elastic/search?%s", baseURL, params.Encode())

	req, err := http.NewRequest(http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create request: %w", err)
	}

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to call OneMap API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, nil, fmt.Errorf("onemap API returned status %d: %s", resp.StatusCode, string(body))
	}

	var result OneMapSearchResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if result.Found == 0 || len(result.Results) == 0 {
		return nil, nil, fmt.Errorf("%w for postal code %s", ErrNoGeocodeResult, postalCode)
	}

	// Take the first result
	latStr := result.Results[0].Latitude
	lngStr := result.Results[0].Longitude
	if latStr == "" || lngStr == "" {
		return nil, nil, fmt.Errorf("no coordinates in response")
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse latitude: %w", err)
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse longitude: %w", err)
	}

	return &lat, &lng, nil
}
