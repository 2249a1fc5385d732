package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDraft_SeedsAnnotationsAndCollections(t *testing.T) {
	d := NewDraft()

	assert.Equal(t, "SG-01", d.BusinessAddress.ISOCode)
	assert.Equal(t, "Bishan", d.BusinessAddress.PlanningAreaName)
	assert.NotNil(t, d.BusinessHours.BusinessHoursData)
	assert.NotNil(t, d.Services.ServicesData)
	assert.Empty(t, d.BusinessHours.BusinessHoursData)
	assert.Empty(t, d.Services.ServicesData)
}

func TestDraft_WireShape(t *testing.T) {
	data, err := json.Marshal(NewDraft())
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &decoded))

	for _, key := range []string{"businessInfo", "businessAddress", "businessHours", "services"} {
		assert.Contains(t, decoded, key)
	}

	// Collections serialize as empty arrays, not null.
	assert.JSONEq(t, `{"businessHoursData":[]}`, string(decoded["businessHours"]))
	assert.JSONEq(t, `{"servicesData":[]}`, string(decoded["services"]))
}

func TestDraft_NormalizeRestoresInvariants(t *testing.T) {
	var d Draft
	require.NoError(t, json.Unmarshal([]byte(`{"businessInfo":{"businessName":"A"}}`), &d))

	d.Normalize()

	assert.Equal(t, "SG-01", d.BusinessAddress.ISOCode)
	assert.Equal(t, "Bishan", d.BusinessAddress.PlanningAreaName)
	assert.NotNil(t, d.BusinessHours.BusinessHoursData)
	assert.NotNil(t, d.Services.ServicesData)
}

func TestDraft_CloneIsIndependent(t *testing.T) {
	d := NewDraft()
	d.BusinessHours.BusinessHoursData = []DayHours{
		{DayName: "Monday", OpenTime: "09:00:00", CloseTime: "18:00:00"},
	}
	d.Services.ServicesData = []ServiceOffering{
		{Name: "Primary 4 Mathematics Tuition", Tags: []string{"Primary 4", "Mathematics"}},
	}

	clone := d.Clone()
	clone.BusinessInfo.BusinessName = "changed"
	clone.BusinessHours.BusinessHoursData[0].OpenTime = "10:00:00"
	clone.Services.ServicesData[0].Tags[0] = "changed"
	clone.Services.ServicesData = append(clone.Services.ServicesData, ServiceOffering{Name: "extra"})

	assert.Empty(t, d.BusinessInfo.BusinessName)
	assert.Equal(t, "09:00:00", d.BusinessHours.BusinessHoursData[0].OpenTime)
	assert.Equal(t, "Primary 4", d.Services.ServicesData[0].Tags[0])
	assert.Len(t, d.Services.ServicesData, 1)
}
