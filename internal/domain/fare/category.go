package fare

import "fmt"

// VehicleCategory identifies which fare schedule applies to a trip.
type VehicleCategory string

const (
	TricycleRegular VehicleCategory = "tricycle_regular"
	TricycleSpecial VehicleCategory = "tricycle_special"
	Bus             VehicleCategory = "bus"
	Jeep            VehicleCategory = "jeep"
	PersonalVehicle VehicleCategory = "personal_vehicle"
)

// IsValid returns true if the category is a recognized vehicle category.
func (c VehicleCategory) IsValid() bool {
	switch c {
	case TricycleRegular, TricycleSpecial, Bus, Jeep, PersonalVehicle:
		return true
	}
	return false
}

// IsTricycle returns true for the two tricycle variants, whose fares are
// rounded to the nearest multiple of 5 inside the schedule engine.
func (c VehicleCategory) IsTricycle() bool {
	return c == TricycleRegular || c == TricycleSpecial
}

// String returns the string representation of the category.
func (c VehicleCategory) String() string {
	return string(c)
}

// ParseVehicleCategory converts a string to a VehicleCategory, returning an error if invalid.
func ParseVehicleCategory(s string) (VehicleCategory, error) {
	c := VehicleCategory(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid vehicle category: %s", s)
	}
	return c, nil
}

const (
	// MinPassengers and MaxPassengers bound the regular-tricycle passenger count.
	MinPassengers = 1
	MaxPassengers = 6
)

// ClampPassengerCount forces a passenger count into [MinPassengers, MaxPassengers].
// The schedule engine assumes its input is already clamped.
func ClampPassengerCount(n int) int {
	if n < MinPassengers {
		return MinPassengers
	}
	if n > MaxPassengers {
		return MaxPassengers
	}
	return n
}
