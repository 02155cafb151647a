package evn

// Classify maps the first two digits of a normalized code to a category.
// The checks run in a fixed order: 99 must be taken out before the 90-98
// traction range, and everything unmatched is freight. Input shorter than two
// digits, or with non-digits in front, classifies as freight.
func Classify(normalized string) Category {
	if len(normalized) < 2 || !isDigits(normalized[:2]) {
		return FreightWagon
	}
	lead := int(normalized[0]-'0')*10 + int(normalized[1]-'0')

	switch {
	case lead == 99:
		return SpecialVehicle
	case lead >= 90 && lead <= 98:
		return TractionVehicle
	case lead >= 50 && lead <= 79:
		return PassengerWagon
	default:
		return FreightWagon
	}
}
