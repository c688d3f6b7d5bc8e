package phone

import (
	"fmt"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// Metadata field names reported to the miss hook.
const (
	FieldCountry  = "country"
	FieldCarrier  = "carrier"
	FieldTimezone = "timezone"
	FieldDetails  = "details"
)

// unknownZone is what the timezone tables return for unmapped prefixes.
const unknownZone = "Etc/Unknown"

// noRegion is the library's region code for numbers it cannot place.
const noRegion = "ZZ"

// MissHook observes a metadata field degraded to Unknown. err is nil when the
// lookup succeeded but returned nothing.
type MissHook func(field string, err error)

// Parser classifies cleaned numbers and extracts their metadata.
type Parser struct {
	source MetadataSource
	lang   string
	onMiss MissHook
}

// Option customises a Parser.
type Option func(*Parser)

// WithSource replaces the metadata source.
func WithSource(src MetadataSource) Option {
	return func(p *Parser) {
		if src != nil {
			p.source = src
		}
	}
}

// WithLanguage sets the locale used for geocoding, carrier and region names.
func WithLanguage(lang string) Option {
	return func(p *Parser) {
		if lang = strings.TrimSpace(lang); lang != "" {
			p.lang = lang
		}
	}
}

// WithMissHook registers a callback for degraded metadata fields.
func WithMissHook(h MissHook) Option {
	return func(p *Parser) { p.onMiss = h }
}

// NewParser builds a Parser backed by LibrarySource and English names unless overridden.
func NewParser(opts ...Option) *Parser {
	p := &Parser{source: LibrarySource{}, lang: "en"}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Lookup runs Normalize followed by Parse.
func (p *Parser) Lookup(raw string) (*Info, error) {
	cleaned, err := Normalize(raw)
	if err != nil {
		return nil, err
	}
	return p.Parse(cleaned)
}

// Parse parses a cleaned number without a default region; the country code
// comes from the leading plus. Numbers that are neither valid nor possible
// are rejected with ErrInvalidFormat. Possibly-valid numbers are returned
// with Classification PossiblyValid and a non-empty Warning.
func (p *Parser) Parse(cleaned string) (*Info, error) {
	num, err := phonenumbers.Parse(cleaned, "")
	if err != nil {
		return nil, parseError(err)
	}

	info := &Info{
		CountryCode:    num.GetCountryCode(),
		NationalNumber: num.GetNationalNumber(),
		Valid:          phonenumbers.IsValidNumber(num),
		Possible:       phonenumbers.IsPossibleNumber(num),
	}
	switch {
	case info.Valid:
		info.Classification = Valid
	case info.Possible:
		info.Classification = PossiblyValid
	default:
		return nil, ErrInvalidFormat
	}

	info.Details = p.describe(num)
	return info, nil
}

// describe extracts metadata. A panic inside the library yields nil Details
// instead of failing the whole lookup.
func (p *Parser) describe(num *phonenumbers.PhoneNumber) (d *Details) {
	defer func() {
		if r := recover(); r != nil {
			p.miss(FieldDetails, fmt.Errorf("metadata extraction panicked: %v", r))
			d = nil
		}
	}()

	region := phonenumbers.GetRegionCodeForNumber(num)
	return &Details{
		Region:        region,
		Country:       p.country(num, region),
		Carrier:       p.carrier(num),
		Timezones:     p.timezones(num),
		Type:          typeOf(phonenumbers.GetNumberType(num)),
		International: phonenumbers.Format(num, phonenumbers.INTERNATIONAL),
		National:      phonenumbers.Format(num, phonenumbers.NATIONAL),
		E164:          phonenumbers.Format(num, phonenumbers.E164),
	}
}

func (p *Parser) country(num *phonenumbers.PhoneNumber, region string) string {
	desc, err := p.source.Geocode(num, p.lang)
	if err == nil {
		if desc = strings.TrimSpace(desc); desc != "" {
			return desc
		}
	}
	// Geocoding tables cover fixed-line prefixes only; fall back to the region name.
	if region != "" && region != noRegion {
		if name, nerr := p.source.RegionName(region, p.lang); nerr == nil {
			if name = strings.TrimSpace(name); name != "" {
				return name
			}
		} else if err == nil {
			err = nerr
		}
	}
	p.miss(FieldCountry, err)
	return Unknown
}

func (p *Parser) carrier(num *phonenumbers.PhoneNumber) string {
	name, err := p.source.Carrier(num, p.lang)
	if err == nil {
		if name = strings.TrimSpace(name); name != "" {
			return name
		}
	}
	p.miss(FieldCarrier, err)
	return Unknown
}

func (p *Parser) timezones(num *phonenumbers.PhoneNumber) []string {
	zones, err := p.source.Timezones(num)
	if err != nil {
		p.miss(FieldTimezone, err)
		return nil
	}
	out := make([]string, 0, len(zones))
	for _, z := range zones {
		if z = strings.TrimSpace(z); z != "" && z != unknownZone {
			out = append(out, z)
		}
	}
	if len(out) == 0 {
		p.miss(FieldTimezone, nil)
		return nil
	}
	return out
}

func (p *Parser) miss(field string, err error) {
	if p.onMiss != nil {
		p.onMiss(field, err)
	}
}

func typeOf(t phonenumbers.PhoneNumberType) NumberType {
	if t < phonenumbers.FIXED_LINE || t > phonenumbers.VOICEMAIL {
		return NumberTypeUnknown
	}
	return NumberType(t)
}
