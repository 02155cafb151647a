package evn

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// SubType is the powertrain kind of a traction vehicle, carried by the second
// digit of the code. Each constant's value equals its digit, so SubTypeSteam
// is '0' and SubTypeShunting is '8'.
type SubType uint8

const (
	SubTypeSteam SubType = iota
	SubTypeElectric
	SubTypeDiesel
	SubTypeElectricMultipleUnit
	SubTypeDieselMultipleUnit
	SubTypeBatteryMultipleUnit
	SubTypeHybridMultipleUnit
	SubTypePowerCar
	SubTypeShunting
)

// SubTypes lists every sub-type in digit order.
var SubTypes = []SubType{
	SubTypeSteam,
	SubTypeElectric,
	SubTypeDiesel,
	SubTypeElectricMultipleUnit,
	SubTypeDieselMultipleUnit,
	SubTypeBatteryMultipleUnit,
	SubTypeHybridMultipleUnit,
	SubTypePowerCar,
	SubTypeShunting,
}

var subTypeNames = [...]string{
	SubTypeSteam:                "steam",
	SubTypeElectric:             "electric",
	SubTypeDiesel:               "diesel",
	SubTypeElectricMultipleUnit: "electric-multiple-unit",
	SubTypeDieselMultipleUnit:   "diesel-multiple-unit",
	SubTypeBatteryMultipleUnit:  "battery-multiple-unit",
	SubTypeHybridMultipleUnit:   "hybrid-multiple-unit",
	SubTypePowerCar:             "power-car",
	SubTypeShunting:             "shunting",
}

var subTypeAliases = map[string]SubType{
	"steam-locomotive":    SubTypeSteam,
	"electric-locomotive": SubTypeElectric,
	"diesel-locomotive":   SubTypeDiesel,
	"emu":                 SubTypeElectricMultipleUnit,
	"dmu":                 SubTypeDieselMultipleUnit,
	"bmu":                 SubTypeBatteryMultipleUnit,
	"hmu":                 SubTypeHybridMultipleUnit,
	"shunting-locomotive": SubTypeShunting,
}

// SubTypeFromDigit returns the sub-type carried by digit d. Digits outside
// '0'..'8' have no sub-type; that is a miss, not an error.
func SubTypeFromDigit(d byte) (SubType, bool) {
	if d < '0' || d > '8' {
		return 0, false
	}
	return SubType(d - '0'), true
}

// ParseSubType accepts a single digit '0'..'8', a canonical name such as
// "electric-multiple-unit", or a short alias such as "emu". Unrecognized
// input fails with ErrInvalidSubType.
func ParseSubType(s string) (SubType, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.NewReplacer("_", "-", " ", "-").Replace(normalized)

	if len(normalized) == 1 {
		if st, ok := SubTypeFromDigit(normalized[0]); ok {
			return st, nil
		}
	}
	for i, name := range subTypeNames {
		if name == normalized {
			return SubType(i), nil
		}
	}
	if st, ok := subTypeAliases[normalized]; ok {
		return st, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidSubType, s)
}

// Digit returns the code digit for the sub-type.
func (s SubType) Digit() byte {
	return '0' + byte(s)
}

// String returns the canonical name.
func (s SubType) String() string {
	if int(s) < len(subTypeNames) {
		return subTypeNames[s]
	}
	return fmt.Sprintf("SubType(%d)", uint8(s))
}

// Validate reports whether s is one of the declared constants.
func (s SubType) Validate() error {
	if s > SubTypeShunting {
		return fmt.Errorf("%w: value %d", ErrInvalidSubType, uint8(s))
	}
	return nil
}

func (s SubType) MarshalJSON() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(s.String())
}

func (s *SubType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("cannot unmarshal JSON into sub-type: %w", err)
	}
	parsed, err := ParseSubType(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func (s SubType) MarshalYAML() (interface{}, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s.String(), nil
}

func (s *SubType) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return fmt.Errorf("cannot unmarshal YAML into sub-type: %w", err)
	}
	parsed, err := ParseSubType(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
