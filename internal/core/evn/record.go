package evn

import "encoding/json"

// Record is a decoded EVN. Only Decode builds one, so a Record always holds a
// 12-digit code with a registered country and a matching check digit. Records
// are plain values and compare with ==.
type Record struct {
	raw         string
	normalized  string
	countryCode string
	countryISO  string
	countryName string
	category    Category
	technical   string
	serial      string
	checkDigit  string
	subType     SubType
	hasSubType  bool
}

// Raw returns the input exactly as passed to Decode.
func (r Record) Raw() string { return r.raw }

// Normalized returns the 12 digits of the code.
func (r Record) Normalized() string { return r.normalized }

// CountryCode returns digits 3-4, the UIC numeric country code.
func (r Record) CountryCode() string { return r.countryCode }

// CountryISO returns the ISO alpha-2 code of the registering country.
func (r Record) CountryISO() string { return r.countryISO }

// CountryName returns the English name of the registering country.
func (r Record) CountryName() string { return r.countryName }

// Category returns the vehicle category.
func (r Record) Category() Category { return r.category }

// TechnicalCharacteristics returns the technical field: 3 digits for
// traction and special vehicles, 4 digits for wagons.
func (r Record) TechnicalCharacteristics() string { return r.technical }

// SerialNumber returns the serial field: 4 digits for traction and special
// vehicles, 3 digits for wagons.
func (r Record) SerialNumber() string { return r.serial }

// CheckDigit returns the trailing digit.
func (r Record) CheckDigit() string { return r.checkDigit }

// SubType returns the locomotive sub-type, if the code carries one.
func (r Record) SubType() (SubType, bool) { return r.subType, r.hasSubType }

// Formatted returns the canonical grouped form; see Format.
func (r Record) Formatted() string { return Format(r) }

// recordView is the serialized shape of a Record.
type recordView struct {
	Raw                      string   `json:"raw" yaml:"raw"`
	Normalized               string   `json:"normalized" yaml:"normalized"`
	Formatted                string   `json:"formatted" yaml:"formatted"`
	CountryCode              string   `json:"country_code" yaml:"country_code"`
	CountryISO               string   `json:"country_iso" yaml:"country_iso"`
	CountryName              string   `json:"country_name" yaml:"country_name"`
	Category                 Category `json:"category" yaml:"category"`
	SubType                  *SubType `json:"locomotive_type,omitempty" yaml:"locomotive_type,omitempty"`
	TechnicalCharacteristics string   `json:"technical_characteristics" yaml:"technical_characteristics"`
	SerialNumber             string   `json:"serial_number" yaml:"serial_number"`
	CheckDigit               string   `json:"check_digit" yaml:"check_digit"`
}

func (r Record) view() recordView {
	v := recordView{
		Raw:                      r.raw,
		Normalized:               r.normalized,
		Formatted:                Format(r),
		CountryCode:              r.countryCode,
		CountryISO:               r.countryISO,
		CountryName:              r.countryName,
		Category:                 r.category,
		TechnicalCharacteristics: r.technical,
		SerialNumber:             r.serial,
		CheckDigit:               r.checkDigit,
	}
	if r.hasSubType {
		st := r.subType
		v.SubType = &st
	}
	return v
}

// MarshalJSON encodes the record with its formatted form included.
func (r Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.view())
}

// MarshalYAML encodes the record with its formatted form included.
func (r Record) MarshalYAML() (interface{}, error) {
	return r.view(), nil
}
