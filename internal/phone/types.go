package phone

// Classification is the validity verdict for a parsed number.
type Classification int

const (
	Invalid Classification = iota
	PossiblyValid
	Valid
)

func (c Classification) String() string {
	switch c {
	case Valid:
		return "valid"
	case PossiblyValid:
		return "possible"
	default:
		return "invalid"
	}
}

// NumberType mirrors the metadata library's line type codes; NumberTypeUnknown
// stands for anything outside 0..10.
type NumberType int

const NumberTypeUnknown NumberType = -1

const (
	FixedLine NumberType = iota
	Mobile
	FixedLineOrMobile
	TollFree
	PremiumRate
	SharedCost
	VoIP
	PersonalNumber
	Pager
	UAN
	Voicemail
)

// Unknown is the sentinel rendered for metadata fields the library could not resolve.
const Unknown = "अज्ञात"

// PossibleWarning is surfaced for numbers that are possible but fail stricter validation.
const PossibleWarning = "Number is possible but may not be valid"

// Info is a parsed number. Details is nil when metadata extraction failed as a whole.
type Info struct {
	CountryCode    int32
	NationalNumber uint64
	Classification Classification
	Valid          bool
	Possible       bool
	Details        *Details
}

// Details holds the derived metadata of a parsed number. Lookups that failed
// individually carry Unknown (or an empty Timezones slice).
type Details struct {
	Region        string
	Country       string
	Carrier       string
	Timezones     []string
	Type          NumberType
	International string
	National      string
	E164          string
}

// Warning returns the user-facing caveat for possibly-valid numbers, or "".
func (i *Info) Warning() string {
	if i != nil && i.Classification == PossiblyValid {
		return PossibleWarning
	}
	return ""
}
