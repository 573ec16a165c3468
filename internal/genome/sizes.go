// Package genome carries the Arabidopsis thaliana reference constants used
// for marker-density calculations.
package genome

import "fmt"

// ChromosomeSizes holds TAIR10 chromosome lengths in bp.
var ChromosomeSizes = map[string]int{
	"Chr1": 30427671,
	"Chr2": 19698289,
	"Chr3": 23459830,
	"Chr4": 18585056,
	"Chr5": 26975502,
}

// CentromereSizes holds approximate centromeric region lengths in bp.
var CentromereSizes = map[string]int{
	"Chr1": 3_500_000,
	"Chr2": 3_000_000,
	"Chr3": 4_000_000,
	"Chr4": 3_500_000,
	"Chr5": 4_500_000,
}

// RegionLength returns the length in bp of one region of a chromosome.
// ARMS is everything outside the centromere.
func RegionLength(region, chromosome string) (int, error) {
	total, ok := ChromosomeSizes[chromosome]
	if !ok {
		return 0, fmt.Errorf("unknown chromosome %q", chromosome)
	}
	cen := CentromereSizes[chromosome]
	switch region {
	case "CEN":
		return cen, nil
	case "ARMS":
		return total - cen, nil
	default:
		return 0, fmt.Errorf("unknown region %q (want ARMS or CEN)", region)
	}
}

// DensityPerMb converts a marker count over a region length to markers/Mb.
func DensityPerMb(markers, regionBP int) float64 {
	if regionBP <= 0 {
		return 0
	}
	return float64(markers) / float64(regionBP) * 1_000_000
}
