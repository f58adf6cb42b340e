// Package report renders an aggregated sample set.
//
// A Report is built once from parsed samples and can then be written in any
// of the supported formats:
//
//	text  one "{district}: {average}" line per district, then the
//	      "Max lead is {district}: {average}" line
//	csv   one row per district
//	xlsx  a Districts sheet and a Summary sheet
//	json  the Report itself
//
// Averages in the text rendering use the shortest representation that
// round-trips, with a trailing ".0" for whole numbers (2.0, 160.0,
// 54.666666666666664).
package report
