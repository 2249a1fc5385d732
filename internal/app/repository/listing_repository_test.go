package repository

import (
	"testing"
	"time"

	"github.com/jteo/listify-backend/internal/app/model"
	"github.com/jteo/listify-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupListingRepositoryTest(t *testing.T) ListingRepository {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})
	return NewListingRepository(testDB)
}

func testListing(externalID string) *model.Listing {
	return &model.Listing{
		ExternalID:   externalID,
		Name:         "Bishan Tuition Centre",
		ContactEmail: "hello@example.com",
		PostalCode:   "238896",
		FullAddress:  "Orchard Rd, #01-01, ABC Building, Singapore 238896",
		Hours: model.DayHoursList{
			{DayName: "Monday", OpenTime: "09:00:00", CloseTime: "18:00:00"},
		},
		Services: model.ServiceList{
			{Name: "Primary 4 Mathematics Tuition", Tags: []string{"Primary 4"}},
		},
		SubmittedAt: time.Now(),
	}
}

func TestListingRepository_CreateAndFind(t *testing.T) {
	repo := setupListingRepositoryTest(t)

	listing := testListing("ext-1")
	require.NoError(t, repo.Create(listing))
	require.NotZero(t, listing.ID)

	byID, err := repo.FindByID(listing.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bishan Tuition Centre", byID.Name)

	byExternal, err := repo.FindByExternalID("ext-1")
	require.NoError(t, err)
	assert.Equal(t, listing.ID, byExternal.ID)

	// JSON columns round-trip through the database.
	require.Len(t, byExternal.Hours, 1)
	assert.Equal(t, "Monday", byExternal.Hours[0].DayName)
	require.Len(t, byExternal.Services, 1)
	assert.Equal(t, []string{"Primary 4"}, byExternal.Services[0].Tags)
}

func TestListingRepository_FindByExternalID_NotFound(t *testing.T) {
	repo := setupListingRepositoryTest(t)

	_, err := repo.FindByExternalID("missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestListingRepository_FindAll_OrderedBySubmission(t *testing.T) {
	repo := setupListingRepositoryTest(t)

	older := testListing("ext-old")
	older.SubmittedAt = time.Now().Add(-time.Hour)
	require.NoError(t, repo.Create(older))

	newer := testListing("ext-new")
	newer.SubmittedAt = time.Now()
	require.NoError(t, repo.Create(newer))

	all, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "ext-new", all[0].ExternalID)
	assert.Equal(t, "ext-old", all[1].ExternalID)
}
