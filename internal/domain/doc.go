// Package domain models the weekly drought-index dataset and the pure
// transforms the dashboard runs on every interaction.
//
// # Data Source
//
// Rows come from the NOAA STAR Vegetation Health product, aggregated per
// Ukrainian administrative region. Each row carries one region, one year and
// one week of that year.
//
// # Conventions
//
// Region codes:
//
//	The "area" column holds a numeric code 1..27. The catalog in region.go
//	maps it to a display name ("7" -> "Zaporizhzhia r."). Codes outside the
//	catalog resolve to "Unknown region (area <code>)" so they stay visible
//	and never collapse into a single group.
//
// Weeks:
//
//	Weeks are numbered 1..52. For plotting, a row's position on the time
//	axis is Year + Week/52.
//
// Indices:
//
//	VCI  vegetation condition index, 0..100
//	TCI  temperature condition index, 0..100
//	VHI  vegetation health index, 0..100; values below 15 indicate extreme drought
//	SMN, SMT are the smoothed NDVI and brightness temperature the indices derive from.
//
// # Transforms
//
// [Filter] selects one region over inclusive year and week ranges. [Sort]
// orders a row set by one index, stably. [AggregateMeans] compares all
// regions over the same period and drops regions with no rows in range.
// All three are side-effect free and safe to call concurrently on the
// shared, read-only row set.
package domain
