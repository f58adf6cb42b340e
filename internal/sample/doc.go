// Package sample decodes water-lead-level test records from their fixed-width
// text layout.
//
// # Record Layout
//
// Each record occupies one line. Offsets are character offsets, 0-indexed and
// half-open:
//
//	[0,4)    level in parts per billion, zero padded ("0160")
//	[4,7)    unit suffix ("ppb"), ignored
//	[8,22)   district, right aligned
//	[23,67)  school, right aligned
//	[68,end) location
//
// The characters at offsets 7, 22 and 67 are "|" separators and are ignored.
//
// # Short Lines
//
// A line shorter than the layout is not an error. Every slice is clamped to
// the characters that exist, so a missing field decodes as an empty string.
// Only the level field is checked: it must hold a non-negative integer.
//
// # Usage
//
//	s, err := sample.ParseLine("0002ppb| Appoquinimink|               Alfred G Waters Middle School|Kitchen Faucet")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(s.District) // Appoquinimink
package sample
