package aggregate

import (
	"leadcli/internal/sample"
)

// DistrictStat holds the figures reported for one district.
type DistrictStat struct {
	District string  `json:"district"`
	Samples  int     `json:"samples"`
	Total    int     `json:"total_ppb"`
	Average  float64 `json:"average_ppb"`
	Max      int     `json:"max_ppb"`
}

// Summary is the full aggregation of a sample set.
type Summary struct {
	Samples   int            `json:"samples"`
	Total     int            `json:"total_ppb"`
	Average   float64        `json:"average_ppb"`
	Districts []DistrictStat `json:"districts"`
	// MaxDistrict is nil when there are no districts.
	MaxDistrict *DistrictStat `json:"max_district,omitempty"`
}

// District returns the stat for name, if present.
func (s Summary) District(name string) (DistrictStat, bool) {
	for _, d := range s.Districts {
		if d.District == name {
			return d, true
		}
	}
	return DistrictStat{}, false
}

// Summarize aggregates samples. Districts are ordered by name.
func Summarize(samples []sample.Sample) Summary {
	summary := Summary{
		Samples:   len(samples),
		Total:     TotalLead(samples),
		Average:   AverageLead(samples),
		Districts: []DistrictStat{},
	}

	averages := AveragesByDistrict(samples)
	for _, district := range UniqueDistricts(samples).Sorted() {
		summary.Districts = append(summary.Districts, districtStat(samples, district, averages[district]))
	}

	if best, ok := DistrictWithMaxAverage(averages); ok {
		stat, _ := summary.District(best)
		summary.MaxDistrict = &stat
	}

	return summary
}

func districtStat(samples []sample.Sample, district string, average float64) DistrictStat {
	matched := FilterDistrict(samples, district)
	stat := DistrictStat{
		District: district,
		Samples:  len(matched),
		Total:    TotalLead(matched),
		Average:  average,
	}
	for _, s := range matched {
		if s.Level > stat.Max {
			stat.Max = s.Level
		}
	}
	return stat
}
