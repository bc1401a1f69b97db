package memory

import (
	"context"
	"testing"

	"github.com/hemolink/api/internal/domain/bloodbank"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultBloodBank_HospitalTotalsMatchStock(t *testing.T) {
	for _, h := range DefaultBloodBank().Hospitals {
		sum := 0
		for _, bt := range bloodbank.BloodTypes {
			units, ok := h.Stock[bt]
			require.True(t, ok, "hospital %s has no %s entry", h.ID, bt)
			sum += units
		}
		assert.Equal(t, h.TotalUnits, sum, "hospital %s", h.ID)
	}
}

func TestBloodBankRepo_Lists(t *testing.T) {
	repo := NewBloodBankRepo(DefaultBloodBank())
	ctx := context.Background()

	units, err := repo.ListInventory(ctx)
	require.NoError(t, err)
	require.Len(t, units, 8)
	assert.Equal(t, "BB001", units[0].ID)
	assert.Equal(t, bloodbank.UnitBreach, units[5].Status)

	hospitals, err := repo.ListHospitals(ctx)
	require.NoError(t, err)
	require.Len(t, hospitals, 4)
	assert.Equal(t, "Regional Medical Center", hospitals[3].Name)

	stats, err := repo.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 238, stats.TotalUnits)
	assert.Equal(t, 95, stats.TemperaturesNormal)
}

func TestBloodBankRepo_ReturnsCopies(t *testing.T) {
	repo := NewBloodBankRepo(DefaultBloodBank())
	ctx := context.Background()

	units, err := repo.ListInventory(ctx)
	require.NoError(t, err)
	units[0].Status = bloodbank.UnitBreach

	hospitals, err := repo.ListHospitals(ctx)
	require.NoError(t, err)
	hospitals[0].Stock["O-"] = 0

	units, err = repo.ListInventory(ctx)
	require.NoError(t, err)
	assert.Equal(t, bloodbank.UnitAvailable, units[0].Status)

	hospitals, err = repo.ListHospitals(ctx)
	require.NoError(t, err)
	assert.Equal(t, 10, hospitals[0].Stock["O-"])
}

func TestBloodBankRepo_EmptySeedListsEmpty(t *testing.T) {
	repo := NewBloodBankRepo(BloodBankSeed{})

	units, err := repo.ListInventory(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, units)
	assert.Empty(t, units)

	hospitals, err := repo.ListHospitals(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, hospitals)
	assert.Empty(t, hospitals)
}

func TestBloodBankRepo_CanceledContext(t *testing.T) {
	repo := NewBloodBankRepo(DefaultBloodBank())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.ListInventory(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = repo.ListHospitals(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = repo.Stats(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
