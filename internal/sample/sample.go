package sample

// Sample is one parsed lead-level measurement with its location metadata.
// Samples are plain values: two samples are equal when all four fields are
// equal, so they can be compared with == and used as map keys.
type Sample struct {
	Level    int    `json:"level"` // ppb
	District string `json:"district"`
	School   string `json:"school"`
	Location string `json:"location"`
}

// Field columns of the fixed-width layout.
const (
	LevelStart    = 0
	LevelEnd      = 4
	DistrictStart = 8
	DistrictEnd   = 22
	SchoolStart   = 23
	SchoolEnd     = 67
	LocationStart = 68

	// DistrictWidth and SchoolWidth are the padded column widths used by Format.
	DistrictWidth = DistrictEnd - DistrictStart
	SchoolWidth   = SchoolEnd - SchoolStart

	// Unit is the suffix written after the level column.
	Unit = "ppb"
)
