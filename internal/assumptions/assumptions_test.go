package assumptions

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	tbl, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "2024.1", tbl.Version)
	assert.Equal(t, 200.0, tbl.Bitcoin.PricePast)
	assert.Equal(t, 45000.0, tbl.Bitcoin.PricePresent)
	assert.Equal(t, 5.0, tbl.Tesla.PricePast)
	assert.Equal(t, 250.0, tbl.Tesla.PricePresent)
	assert.Equal(t, 1.5, tbl.Coffee.GrowthFactor)
	assert.Equal(t, 0.07, tbl.Savings.AnnualRate)
	assert.Equal(t, 60.0, tbl.Savings.Months)
	assert.Equal(t, 3500.0, tbl.Walking.CaloriesPerPound)
	assert.Equal(t, 250.0, tbl.Reading.PagesPerBook)
	assert.Equal(t, 1000.0, tbl.Coding.SalaryPerPercent)
}

func TestLoadFileOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assumptions.yaml")
	doc := "version: \"2025.1\"\nbitcoin:\n  price_present: 60000\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	tbl, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "2025.1", tbl.Version)
	assert.Equal(t, 60000.0, tbl.Bitcoin.PricePresent)
	// Keys absent from the overlay keep their defaults.
	assert.Equal(t, 200.0, tbl.Bitcoin.PricePast)
	assert.Equal(t, 250.0, tbl.Tesla.PricePresent)
}

func TestLoadFileRejectsZeroDivisor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tesla:\n  price_past: 0\n"), 0o644))

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tesla.price_past")
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadEmptyPathUsesDefaults(t *testing.T) {
	tbl, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, MustDefault(), tbl)
}
