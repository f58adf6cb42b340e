package aggregate

import (
	"math"
	"sort"

	"leadcli/internal/sample"
)

// TotalLead returns the sum of all sample levels.
func TotalLead(samples []sample.Sample) int {
	total := 0
	for _, s := range samples {
		total += s.Level
	}
	return total
}

// AverageLead returns the mean level, or 0.0 for no samples.
func AverageLead(samples []sample.Sample) float64 {
	if len(samples) == 0 {
		return 0.0
	}
	return float64(TotalLead(samples)) / float64(len(samples))
}

// AverageLeadForDistrict averages the samples whose district matches exactly
// (case-sensitive). An unknown district averages to 0.0.
func AverageLeadForDistrict(samples []sample.Sample, district string) float64 {
	return AverageLead(FilterDistrict(samples, district))
}

// FilterDistrict returns the samples taken in district, in input order.
func FilterDistrict(samples []sample.Sample, district string) []sample.Sample {
	var matched []sample.Sample
	for _, s := range samples {
		if s.District == district {
			matched = append(matched, s)
		}
	}
	return matched
}

// DistrictSet is a set of district names.
type DistrictSet map[string]struct{}

// Contains reports whether district is in the set.
func (ds DistrictSet) Contains(district string) bool {
	_, ok := ds[district]
	return ok
}

// Len returns the number of districts.
func (ds DistrictSet) Len() int {
	return len(ds)
}

// Sorted returns the districts in ascending order.
func (ds DistrictSet) Sorted() []string {
	names := make([]string, 0, len(ds))
	for name := range ds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// UniqueDistricts returns the distinct districts present in samples.
func UniqueDistricts(samples []sample.Sample) DistrictSet {
	set := make(DistrictSet)
	for _, s := range samples {
		set[s.District] = struct{}{}
	}
	return set
}

// AveragesByDistrict maps every district present in samples to its average
// level.
func AveragesByDistrict(samples []sample.Sample) map[string]float64 {
	districts := UniqueDistricts(samples)
	averages := make(map[string]float64, districts.Len())
	for district := range districts {
		averages[district] = AverageLeadForDistrict(samples, district)
	}
	return averages
}

// DistrictWithMaxAverage returns the district with the largest average. Ties
// go to the smallest district name and NaN averages never win. The boolean
// is false when averages holds no candidate.
func DistrictWithMaxAverage(averages map[string]float64) (string, bool) {
	best := ""
	bestAvg := math.Inf(-1)
	found := false

	for district, avg := range averages {
		if math.IsNaN(avg) {
			continue
		}
		if !found || avg > bestAvg || (avg == bestAvg && district < best) {
			best = district
			bestAvg = avg
			found = true
		}
	}
	return best, found
}
