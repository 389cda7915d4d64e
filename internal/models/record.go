package models

// ModelRecord describes the fan calibration layout of one laptop model.
type ModelRecord struct {
	// Identity is the normalized (alphanumeric-only) product name, e.g. "UX430UA".
	Identity string
	// BaseAddresses holds one EC base address per fan zone. Multi-zone
	// machines list one address per fan, all using the same offset scheme.
	BaseAddresses []int
	// DefaultTemps are the factory calibration points, non-decreasing.
	DefaultTemps []int
	// Tested is true iff the record came from the model database,
	// false for a record synthesized from fallback values.
	Tested bool
}
