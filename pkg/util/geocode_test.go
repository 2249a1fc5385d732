package util

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeocodePostalCode_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/common/elastic/search", r.URL.Path)
		assert.Equal(t, "238896", r.URL.Query().Get("searchVal"))
		assert.Equal(t, "Y", r.URL.Query().Get("returnGeom"))
		assert.Equal(t, "Y", r.URL.Query().Get("getAddrDetails"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"found": 1,
			"results": [{
				"SEARCHVAL": "313 SOMERSET",
				"ADDRESS": "313 ORCHARD ROAD SINGAPORE 238895",
				"POSTAL": "238895",
				"LATITUDE": "1.30098",
				"LONGITUDE": "103.83867"
			}]
		}`))
	}))
	defer server.Close()

	lat, lng, err := GeocodePostalCode(server.URL, "238896")
	require.NoError(t, err)
	require.NotNil(t, lat)
	require.NotNil(t, lng)
	assert.InDelta(t, 1.30098, *lat, 0.00001)
	assert.InDelta(t, 103.83867, *lng, 0.00001)
}

func TestGeocodePostalCode_EmptyPostalCode(t *testing.T) {
	lat, lng, err := GeocodePostalCode("http://unused", "")
	require.NoError(t, err)
	assert.Nil(t, lat)
	assert.Nil(t, lng)
}

func TestGeocodePostalCode_NoResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"found": 0, "results": []}`))
	}))
	defer server.Close()

	_, _, err := GeocodePostalCode(server.URL, "000000")
	assert.ErrorIs(t, err, ErrNoGeocodeResult)
}

func TestGeocodePostalCode_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer server.Close()

	_, _, err := GeocodePostalCode(server.URL, "238896")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoGeocodeResult)
}
