package enum

// DiscountType tags a discount record as in-house or special-ID.
// The single-letter codes match what is stored in the discounts table.
type DiscountType string

const (
	DiscountTypeInHouse   DiscountType = "I"
	DiscountTypeSpecialID DiscountType = "S"
)

func (t DiscountType) String() string {
	switch t {
	case DiscountTypeInHouse:
		return "InHouse"
	case DiscountTypeSpecialID:
		return "SpecialID"
	}
	return string(t)
}

// SpecialIDType is the sub-classification of a special-ID discount
type SpecialIDType string

const (
	SpecialIDTypeSenior SpecialIDType = "S"
	SpecialIDTypePWD    SpecialIDType = "P"
)

// IsValid reports whether t is a supported special-ID subtype
func (t SpecialIDType) IsValid() bool {
	return t == SpecialIDTypeSenior || t == SpecialIDTypePWD
}

func (t SpecialIDType) String() string {
	switch t {
	case SpecialIDTypeSenior:
		return "Senior"
	case SpecialIDTypePWD:
		return "PWD"
	}
	return string(t)
}
