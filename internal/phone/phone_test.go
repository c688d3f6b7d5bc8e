package phone

import (
	"errors"
	"testing"

	"github.com/nyaruka/phonenumbers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
		err  error
	}{
		{name: "already clean", in: "+911234567890", want: "+911234567890"},
		{name: "punctuation stripped", in: " +1 (415) 555-2671 ", want: "+14155552671"},
		{name: "letters only", in: "notanumber", err: ErrMissingCountryCode},
		{name: "digits without plus", in: "14155552671", err: ErrMissingCountryCode},
		{name: "plus after digits", in: "1+4155552671", err: ErrMissingCountryCode},
		{name: "short", in: "+123", err: ErrTooShort},
		{name: "seven characters", in: "+123456", err: ErrTooShort},
		{name: "eight characters", in: "+1234567", want: "+1234567"},
		{name: "devanagari digits", in: "+९१९८७६५४३२१०", want: "+919876543210"},
		{name: "full-width digits", in: "+１４１５５５５２６７１", want: "+14155552671"},
		{name: "arabic-indic digits", in: "+٩١ ٩٨٧٦٥٤٣٢١٠", want: "+919876543210"},
		{name: "devanagari without plus", in: "९१९८७६५४३२१०", err: ErrMissingCountryCode},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Normalize(tc.in)
			if tc.err != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.err)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestInputErrorReasons(t *testing.T) {
	_, err := Normalize("notanumber")
	assert.EqualError(t, err, "Phone number must start with + and country code")

	_, err = Normalize("+123")
	assert.EqualError(t, err, "Phone number is too short")

	var inputErr *InputError
	require.True(t, errors.As(err, &inputErr))
	assert.Equal(t, "TOO_SHORT", inputErr.Code())
}

func TestParseExampleNumbersAreValid(t *testing.T) {
	p := NewParser()
	for _, region := range []string{"US", "GB", "IN", "DE", "BR"} {
		t.Run(region, func(t *testing.T) {
			example := phonenumbers.GetExampleNumber(region)
			require.NotNil(t, example)
			e164 := phonenumbers.Format(example, phonenumbers.E164)

			info, err := p.Lookup(e164)
			require.NoError(t, err)
			assert.Equal(t, Valid, info.Classification)
			assert.True(t, info.Valid)
			assert.True(t, info.Possible)
			assert.Empty(t, info.Warning())
			require.NotNil(t, info.Details)

			d := info.Details
			assert.Equal(t, region, d.Region)
			assert.Equal(t, e164, d.E164)
			assert.NotEmpty(t, d.International)
			assert.NotEmpty(t, d.National)

			again, err := phonenumbers.Parse(d.International, "")
			require.NoError(t, err)
			assert.Equal(t, info.CountryCode, again.GetCountryCode())
			assert.Equal(t, info.NationalNumber, again.GetNationalNumber())
		})
	}
}

func TestParseIndianNumber(t *testing.T) {
	info, err := NewParser().Lookup("+911234567890")
	require.NoError(t, err)
	assert.EqualValues(t, 91, info.CountryCode)
	assert.EqualValues(t, 1234567890, info.NationalNumber)
	assert.Equal(t, Valid, info.Classification)
	require.NotNil(t, info.Details)
	assert.Equal(t, "+91 1234 567 890", info.Details.International)
}

func TestParseDevanagariNumber(t *testing.T) {
	p := NewParser()
	native, err := p.Lookup("+९१९८७६५४३२१०")
	require.NoError(t, err)
	ascii, err := p.Lookup("+919876543210")
	require.NoError(t, err)

	assert.Equal(t, Valid, native.Classification)
	assert.EqualValues(t, 91, native.CountryCode)
	assert.Equal(t, ascii.NationalNumber, native.NationalNumber)
	require.NotNil(t, native.Details)
	assert.Equal(t, "+919876543210", native.Details.E164)
}

func TestParseRejectsImpossibleNumber(t *testing.T) {
	_, err := NewParser().Parse("+12345678901234")
	assert.ErrorIs(t, err, ErrInvalidFormat)
	assert.EqualError(t, err, "Invalid phone number format")
}

func TestParseWrapsLibraryDiagnostic(t *testing.T) {
	_, err := NewParser().Parse("+00000000")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnparsable)
	assert.Contains(t, err.Error(), "Parse error: Could not recognize number: ")

	var inputErr *InputError
	require.True(t, errors.As(err, &inputErr))
	assert.NotNil(t, inputErr.Unwrap())
}

type fakeSource struct {
	geocode    string
	geocodeErr error
	carrier    string
	carrierErr error
	zones      []string
	zonesErr   error
	region     string
	regionErr  error
	panics     bool
}

func (f fakeSource) Geocode(*phonenumbers.PhoneNumber, string) (string, error) {
	if f.panics {
		panic("corrupt metadata")
	}
	return f.geocode, f.geocodeErr
}

func (f fakeSource) Carrier(*phonenumbers.PhoneNumber, string) (string, error) {
	return f.carrier, f.carrierErr
}

func (f fakeSource) Timezones(*phonenumbers.PhoneNumber) ([]string, error) {
	return f.zones, f.zonesErr
}

func (f fakeSource) RegionName(string, string) (string, error) {
	return f.region, f.regionErr
}

func indianMobile(t *testing.T) string {
	t.Helper()
	num := phonenumbers.GetExampleNumberForType("IN", phonenumbers.MOBILE)
	require.NotNil(t, num)
	return phonenumbers.Format(num, phonenumbers.E164)
}

func TestParseDegradesFieldsIndependently(t *testing.T) {
	var misses []string
	p := NewParser(
		WithSource(fakeSource{
			carrierErr: errors.New("carrier table missing"),
			zones:      []string{"Etc/Unknown"},
			region:     "India",
		}),
		WithMissHook(func(field string, _ error) { misses = append(misses, field) }),
	)

	info, err := p.Parse(indianMobile(t))
	require.NoError(t, err)
	require.NotNil(t, info.Details)

	d := info.Details
	assert.Equal(t, "India", d.Country)
	assert.Equal(t, Unknown, d.Carrier)
	assert.Empty(t, d.Timezones)
	assert.Contains(t, []NumberType{Mobile, FixedLineOrMobile}, d.Type)
	assert.NotEmpty(t, d.E164)
	assert.Equal(t, []string{FieldCarrier, FieldTimezone}, misses)
}

func TestParseCountryUnknownWhenEverythingFails(t *testing.T) {
	p := NewParser(WithSource(fakeSource{
		geocodeErr: errors.New("boom"),
		regionErr:  errors.New("boom"),
		carrier:    "Airtel",
		zones:      []string{"Asia/Calcutta"},
	}))

	info, err := p.Parse(indianMobile(t))
	require.NoError(t, err)
	assert.Equal(t, Unknown, info.Details.Country)
	assert.Equal(t, "Airtel", info.Details.Carrier)
	assert.Equal(t, []string{"Asia/Calcutta"}, info.Details.Timezones)
}

func TestParseRecoversFromMetadataPanic(t *testing.T) {
	var missed string
	p := NewParser(
		WithSource(fakeSource{panics: true}),
		WithMissHook(func(field string, _ error) { missed = field }),
	)

	info, err := p.Parse(indianMobile(t))
	require.NoError(t, err)
	assert.Equal(t, Valid, info.Classification)
	assert.Nil(t, info.Details)
	assert.Equal(t, FieldDetails, missed)
}

func TestLibrarySourceRegionName(t *testing.T) {
	name, err := LibrarySource{}.RegionName("IN", "en")
	require.NoError(t, err)
	assert.Equal(t, "India", name)

	_, err = LibrarySource{}.RegionName("not-a-region", "en")
	assert.Error(t, err)
}

func TestWarningForPossibleNumbers(t *testing.T) {
	info := &Info{Classification: PossiblyValid}
	assert.Equal(t, PossibleWarning, info.Warning())

	var none *Info
	assert.Empty(t, none.Warning())
}

func TestTypeOfOutOfRange(t *testing.T) {
	assert.Equal(t, NumberTypeUnknown, typeOf(phonenumbers.UNKNOWN))
	assert.Equal(t, Voicemail, typeOf(phonenumbers.VOICEMAIL))
	assert.Equal(t, FixedLine, typeOf(phonenumbers.FIXED_LINE))
}
