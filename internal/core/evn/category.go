package evn

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Category is the vehicle category encoded by the first two digits of an EVN.
//
// The zero value, CategoryUnknown, never appears in a decoded Record. It is
// used by GenerateOptions to mean "no category requested".
type Category uint8

const (
	CategoryUnknown Category = iota
	// TractionVehicle covers leading digits 90-98.
	TractionVehicle
	// PassengerWagon covers leading digits 50-79.
	PassengerWagon
	// FreightWagon covers leading digits 00-49 and 80-89.
	FreightWagon
	// SpecialVehicle covers leading digits 99.
	SpecialVehicle
)

// Categories lists the four concrete categories in declaration order.
var Categories = []Category{TractionVehicle, PassengerWagon, FreightWagon, SpecialVehicle}

const (
	CategoryUnknownStr = "unknown"
	TractionVehicleStr = "traction"
	PassengerWagonStr  = "passenger"
	FreightWagonStr    = "freight"
	SpecialVehicleStr  = "special"
)

// ParseCategory parses a category name. Matching ignores case, surrounding
// whitespace, and treats '_' and ' ' like '-'. Besides the canonical names it
// accepts "locomotive", "traction-vehicle", "passenger-wagon",
// "freight-wagon" and "special-vehicle".
func ParseCategory(s string) (Category, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.NewReplacer("_", "-", " ", "-").Replace(normalized)

	switch normalized {
	case CategoryUnknownStr, "":
		return CategoryUnknown, nil
	case TractionVehicleStr, "traction-vehicle", "locomotive":
		return TractionVehicle, nil
	case PassengerWagonStr, "passenger-wagon":
		return PassengerWagon, nil
	case FreightWagonStr, "freight-wagon":
		return FreightWagon, nil
	case SpecialVehicleStr, "special-vehicle":
		return SpecialVehicle, nil
	default:
		return CategoryUnknown, fmt.Errorf("unknown category %q (valid: %s, %s, %s, %s)", s,
			TractionVehicleStr, PassengerWagonStr, FreightWagonStr, SpecialVehicleStr)
	}
}

// String returns the canonical lowercase name.
func (c Category) String() string {
	switch c {
	case CategoryUnknown:
		return CategoryUnknownStr
	case TractionVehicle:
		return TractionVehicleStr
	case PassengerWagon:
		return PassengerWagonStr
	case FreightWagon:
		return FreightWagonStr
	case SpecialVehicle:
		return SpecialVehicleStr
	default:
		return fmt.Sprintf("Category(%d)", uint8(c))
	}
}

// Validate reports whether c is one of the declared constants.
func (c Category) Validate() error {
	switch c {
	case CategoryUnknown, TractionVehicle, PassengerWagon, FreightWagon, SpecialVehicle:
		return nil
	default:
		return fmt.Errorf("category value %d is not a known category", uint8(c))
	}
}

// IsLocomotiveLayout reports whether codes of this category split their
// seven vehicle digits 3+4 (technical, serial) rather than 4+3.
func (c Category) IsLocomotiveLayout() bool {
	switch c {
	case TractionVehicle, SpecialVehicle:
		return true
	default:
		return false
	}
}

// MarshalJSON encodes the category as its canonical name.
func (c Category) MarshalJSON() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid category: %w", err)
	}
	return json.Marshal(c.String())
}

// UnmarshalJSON accepts any name ParseCategory accepts.
func (c *Category) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("cannot unmarshal JSON into category: %w", err)
	}
	parsed, err := ParseCategory(str)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalYAML encodes the category as its canonical name.
func (c Category) MarshalYAML() (interface{}, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid category: %w", err)
	}
	return c.String(), nil
}

// UnmarshalYAML accepts any name ParseCategory accepts.
func (c *Category) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return fmt.Errorf("cannot unmarshal YAML into category: %w", err)
	}
	parsed, err := ParseCategory(str)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
