package phone

import (
	"github.com/nyaruka/phonenumbers"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// MetadataSource resolves descriptive metadata for a parsed number. Each
// method may fail on its own; Parser degrades failures field by field.
type MetadataSource interface {
	Geocode(num *phonenumbers.PhoneNumber, lang string) (string, error)
	Carrier(num *phonenumbers.PhoneNumber, lang string) (string, error)
	Timezones(num *phonenumbers.PhoneNumber) ([]string, error)
	RegionName(region, lang string) (string, error)
}

// LibrarySource is the MetadataSource backed by the bundled libphonenumber data.
type LibrarySource struct{}

// Geocode returns the geographical description of the number, if any.
func (LibrarySource) Geocode(num *phonenumbers.PhoneNumber, lang string) (string, error) {
	return phonenumbers.GetGeocodingForNumber(num, lang)
}

// Carrier returns the original carrier name for mobile ranges, if any.
func (LibrarySource) Carrier(num *phonenumbers.PhoneNumber, lang string) (string, error) {
	return phonenumbers.GetCarrierForNumber(num, lang)
}

// Timezones returns the IANA zones covering the number's prefix.
func (LibrarySource) Timezones(num *phonenumbers.PhoneNumber) ([]string, error) {
	return phonenumbers.GetTimezonesForNumber(num)
}

// RegionName returns the display name of a CLDR region code in lang.
func (LibrarySource) RegionName(region, lang string) (string, error) {
	r, err := language.ParseRegion(region)
	if err != nil {
		return "", err
	}
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}
	return display.Regions(tag).Name(r), nil
}
