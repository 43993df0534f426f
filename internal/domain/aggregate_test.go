package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateMeans_Scenario(t *testing.T) {
	rows := []Observation{
		obs("7", 1990, 5, 40),
		obs("7", 1990, 5, 60),
		obs("9", 1990, 5, 80),
	}
	period := Range{Low: 1990, High: 1990}
	weeks := Range{Low: 5, High: 5}

	got := AggregateMeans(rows, period, weeks, IndexVCI)

	require.Len(t, got, 2)
	assert.Equal(t, RegionMean{Region: "Zaporizhzhia r.", Mean: 50, Count: 2}, got[0])
	assert.Equal(t, RegionMean{Region: "Kyiv r.", Mean: 80, Count: 1}, got[1])

	assert.Equal(t, map[string]float64{"Zaporizhzhia r.": 50, "Kyiv r.": 80}, Means(rows, period, weeks, IndexVCI))
}

func TestAggregateMeans(t *testing.T) {
	t.Run("ignores region selection but honours period", func(t *testing.T) {
		got := AggregateMeans(sampleRows(), Range{Low: 1995, High: 1995}, Range{Low: 9, High: 9}, IndexVCI)
		require.Len(t, got, 3)
		assert.Equal(t, "Zaporizhzhia r.", got[0].Region)
		assert.Equal(t, "Kyiv r.", got[1].Region)
		assert.Equal(t, UnknownRegionName("70"), got[2].Region)
	})

	t.Run("mean equals arithmetic mean per region", func(t *testing.T) {
		rows := sampleRows()
		got := AggregateMeans(rows, defaultYears, defaultWeeks, IndexTCI)

		for _, m := range got {
			var sum float64
			var n int
			for _, r := range rows {
				if r.RegionName == m.Region && defaultYears.Contains(r.Year) && defaultWeeks.Contains(r.Week) {
					sum += r.TCI
					n++
				}
			}
			require.Positive(t, n)
			assert.InDelta(t, sum/float64(n), m.Mean, 1e-9)
			assert.Equal(t, n, m.Count)
		}
	})

	t.Run("regions without rows in range are excluded", func(t *testing.T) {
		got := AggregateMeans(sampleRows(), Range{Low: 2003, High: 2003}, Range{Low: 9, High: 9}, IndexVCI)
		require.Len(t, got, 1)
		assert.Equal(t, "Zaporizhzhia r.", got[0].Region)
	})

	t.Run("no rows in range", func(t *testing.T) {
		got := AggregateMeans(sampleRows(), Range{Low: 1900, High: 1901}, defaultWeeks, IndexVCI)
		require.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("sorted ascending with name tie-break", func(t *testing.T) {
		rows := []Observation{
			obs("9", 1990, 5, 10),
			obs("1", 1990, 5, 10),
			obs("2", 1990, 5, 5),
		}
		got := AggregateMeans(rows, Range{Low: 1990, High: 1990}, Range{Low: 5, High: 5}, IndexVCI)
		require.Len(t, got, 3)
		assert.Equal(t, "Volyn r.", got[0].Region)
		assert.Equal(t, "Kyiv r.", got[1].Region)
		assert.Equal(t, "Vinnytsia r.", got[2].Region)
	})
}

func TestLookupMean(t *testing.T) {
	means := []RegionMean{{Region: "Kyiv r.", Mean: 42}}

	v, ok := LookupMean(means, "Kyiv r.")
	assert.True(t, ok)
	assert.InDelta(t, 42.0, v, 1e-9)

	_, ok = LookupMean(means, "Zaporizhzhia r.")
	assert.False(t, ok)

	_, ok = LookupMean(nil, "Kyiv r.")
	assert.False(t, ok)
}
