package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRegion RegionCode = "7"

var (
	defaultYears = Range{Low: 1988, High: 2002}
	defaultWeeks = Range{Low: 9, High: 10}
)

func obs(code RegionCode, year, week int, vci float64) Observation {
	return Observation{
		Region:     code,
		RegionName: RegionName(code),
		Year:       year,
		Week:       week,
		VCI:        vci,
		TCI:        vci / 2,
		VHI:        vci / 3,
	}
}

func sampleRows() []Observation {
	return []Observation{
		obs("7", 1987, 9, 10),
		obs("7", 1988, 8, 11),
		obs("7", 1988, 9, 12),
		obs("7", 1995, 9, 13),
		obs("7", 2002, 10, 14),
		obs("7", 2002, 11, 15),
		obs("7", 2003, 9, 16),
		obs("9", 1995, 9, 17),
		obs("70", 1995, 9, 18),
	}
}

func TestFilter(t *testing.T) {
	t.Run("excludes year after range", func(t *testing.T) {
		got := Filter([]Observation{obs("7", 2003, 9, 50)}, testRegion, defaultYears, defaultWeeks)
		assert.Empty(t, got)
	})

	t.Run("includes row inside range", func(t *testing.T) {
		row := obs("7", 1995, 9, 50)
		got := Filter([]Observation{row}, testRegion, defaultYears, defaultWeeks)
		require.Len(t, got, 1)
		assert.Equal(t, row, got[0])
	})

	t.Run("bounds are inclusive", func(t *testing.T) {
		got := Filter(sampleRows(), testRegion, defaultYears, defaultWeeks)
		years := make([]int, len(got))
		for i, r := range got {
			years[i] = r.Year
		}
		assert.Equal(t, []int{1988, 1995, 2002}, years)
	})

	t.Run("region code matches exactly", func(t *testing.T) {
		got := Filter(sampleRows(), "70", defaultYears, defaultWeeks)
		require.Len(t, got, 1)
		assert.Equal(t, RegionCode("70"), got[0].Region)
	})

	t.Run("empty result is non-nil", func(t *testing.T) {
		got := Filter(sampleRows(), "27", defaultYears, defaultWeeks)
		require.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("does not modify input", func(t *testing.T) {
		rows := sampleRows()
		before := sampleRows()
		_ = Filter(rows, testRegion, defaultYears, defaultWeeks)
		assert.Empty(t, cmp.Diff(before, rows))
	})
}

func TestFilter_Exact(t *testing.T) {
	rows := sampleRows()
	got := Filter(rows, testRegion, defaultYears, defaultWeeks)

	for _, r := range got {
		assert.Equal(t, testRegion, r.Region)
		assert.True(t, defaultYears.Contains(r.Year))
		assert.True(t, defaultWeeks.Contains(r.Week))
	}

	want := 0
	for _, r := range rows {
		if r.Region == testRegion && defaultYears.Contains(r.Year) && defaultWeeks.Contains(r.Week) {
			want++
		}
	}
	assert.Len(t, got, want)
}

func TestFilter_Idempotent(t *testing.T) {
	once := Filter(sampleRows(), testRegion, defaultYears, defaultWeeks)
	twice := Filter(once, testRegion, defaultYears, defaultWeeks)
	assert.Empty(t, cmp.Diff(once, twice))
}

func TestFilterPeriod(t *testing.T) {
	got := FilterPeriod(sampleRows(), Range{Low: 1995, High: 1995}, Range{Low: 9, High: 9})
	require.Len(t, got, 3)
	assert.Equal(t, RegionCode("7"), got[0].Region)
	assert.Equal(t, RegionCode("9"), got[1].Region)
	assert.Equal(t, RegionCode("70"), got[2].Region)
}

func TestSeries(t *testing.T) {
	rows := []Observation{obs("7", 1990, 26, 40), obs("7", 1990, 52, 60)}
	got := Series(rows, IndexVCI)
	assert.Equal(t, []Point{{X: 1990.5, Y: 40}, {X: 1991, Y: 60}}, got)

	assert.Empty(t, Series(nil, IndexVCI))
}
