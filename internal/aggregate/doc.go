// Package aggregate computes lead statistics over parsed samples: totals,
// averages, per-district averages and the district with the highest average.
//
// Every function is pure and safe for concurrent use on shared input. Empty
// input is never an error: sums are 0 and averages are 0.0.
//
// # Ties
//
// DistrictWithMaxAverage picks the strictly largest average. When several
// districts share it, the lexicographically smallest district name wins, so
// the result does not depend on map iteration order.
package aggregate
