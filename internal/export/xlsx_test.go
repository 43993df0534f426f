package export

import (
	"bytes"
	"testing"

	"github.com/couchcryptid/drought-dashboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteXLSX(t *testing.T) {
	rows := []domain.Observation{
		{Region: "7", RegionName: "Zaporizhzhia r.", Year: 1990, Week: 9, SMN: 0.1, SMT: 260, VCI: 40, TCI: 30, VHI: 35},
		{Region: "7", RegionName: "Zaporizhzhia r.", Year: 1990, Week: 10, SMN: 0.2, SMT: 261, VCI: 60, TCI: 50, VHI: 55},
	}
	means := []domain.RegionMean{
		{Region: "Zaporizhzhia r.", Mean: 50, Count: 2},
		{Region: "Kyiv r.", Mean: 80, Count: 1},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, rows, domain.IndexVCI, means))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetRows, SheetCompare}, f.GetSheetList())

	got, err := f.GetRows(SheetRows)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"area", "area_name", "Year", "Week", "SMN", "SMT", "VCI", "TCI", "VHI"}, got[0])
	assert.Equal(t, []string{"7", "Zaporizhzhia r.", "1990", "10", "0.2", "261", "60", "50", "55"}, got[2])

	cmp, err := f.GetRows(SheetCompare)
	require.NoError(t, err)
	require.Len(t, cmp, 3)
	assert.Equal(t, []string{"Region", "Mean VCI", "Rows"}, cmp[0])
	assert.Equal(t, []string{"Kyiv r.", "80", "1"}, cmp[2])
}

func TestWriteXLSX_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, nil, domain.IndexTCI, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows(SheetRows)
	require.NoError(t, err)
	assert.Len(t, got, 1, "header only")
}
