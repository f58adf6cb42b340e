package services

import "errors"

var (
	// ErrNoDistricts is returned when a max-average district is requested
	// for a sample set without districts.
	ErrNoDistricts = errors.New("no districts in sample set")
)
