package fitment

// WheelSpecs is the wheel specification nested in a fitment record.
// OffsetRange is a display string like "22-35" (millimetres ET).
type WheelSpecs struct {
	FrontSize   string  `json:"frontSize"`
	RearSize    string  `json:"rearSize"`
	PCD         string  `json:"pcd"`
	OffsetRange string  `json:"offsetRange"`
	CenterBore  float64 `json:"centerBore"`
}

// Fitment maps a vehicle to the wheel specification it accepts.
type Fitment struct {
	ID         string     `json:"id"`
	Make       string     `json:"make"`
	Model      string     `json:"model"`
	Year       int        `json:"year"`
	Engine     *string    `json:"engine,omitempty"`
	WheelSpecs WheelSpecs `json:"wheelSpecs"`
}

// Compatibility classifications for a wheel against a selected vehicle.
// FitUnknown means no fitment record matched; the client renders no badge.
const (
	FitDirect  = "direct"
	FitSpacers = "spacers"
	FitUnknown = "unknown"
)
