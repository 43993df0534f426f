package domain

import "fmt"

// RegionCode is the numeric administrative-region identifier used in the
// dataset's "area" column, kept as a string ("1".."27").
type RegionCode string

// Region pairs a code with its display name.
type Region struct {
	Code RegionCode `json:"code"`
	Name string     `json:"name"`
}

// regions is the catalog in display order. Position 7 (index 6) is the
// default selection.
var regions = []Region{
	{"1", "Vinnytsia r."},
	{"2", "Volyn r."},
	{"3", "Dnipro r."},
	{"4", "Donetsk r."},
	{"5", "Zhytomyr r."},
	{"6", "Zakarpattia r."},
	{"7", "Zaporizhzhia r."},
	{"8", "Ivano-Frankivsk r."},
	{"9", "Kyiv r."},
	{"10", "Kirovohrad r."},
	{"11", "Luhansk r."},
	{"12", "Lviv r."},
	{"13", "Mykolaiv r."},
	{"14", "Odesa r."},
	{"15", "Poltava r."},
	{"16", "Rivne r."},
	{"17", "Sumy r."},
	{"18", "Ternopil r."},
	{"19", "Kharkiv r."},
	{"20", "Kherson r."},
	{"21", "Khmelnytshyi r."},
	{"22", "Cherkasy r."},
	{"23", "Chernivtsi r."},
	{"24", "Chernihiv r."},
	{"25", "AR Crimea"},
	{"26", "Kyiv c."},
	{"27", "Sevastopol c."},
}

var (
	namesByCode = make(map[RegionCode]string, len(regions))
	codesByName = make(map[string]RegionCode, len(regions))
)

func init() {
	for _, r := range regions {
		namesByCode[r.Code] = r.Name
		codesByName[r.Name] = r.Code
	}
}

// Regions returns the catalog in display order. The returned slice is a copy.
func Regions() []Region {
	out := make([]Region, len(regions))
	copy(out, regions)
	return out
}

// Lookup returns the display name for code and whether the code is in the catalog.
func Lookup(code RegionCode) (string, bool) {
	name, ok := namesByCode[code]
	return name, ok
}

// RegionName resolves code to a display name. Codes outside the catalog
// resolve to UnknownRegionName(code) instead of an empty string.
func RegionName(code RegionCode) string {
	if name, ok := namesByCode[code]; ok {
		return name
	}
	return UnknownRegionName(code)
}

// UnknownRegionName is the placeholder name for a code missing from the
// catalog. It embeds the code so distinct unmapped codes never share a
// comparison group.
func UnknownRegionName(code RegionCode) string {
	return fmt.Sprintf("Unknown region (area %s)", code)
}

// CodeForName is the reverse lookup used when a selection names a region.
func CodeForName(name string) (RegionCode, bool) {
	code, ok := codesByName[name]
	return code, ok
}
