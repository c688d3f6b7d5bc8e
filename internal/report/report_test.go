package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m3rciful/phonebot/internal/phone"
)

var fixedNow = time.Date(2024, 3, 9, 17, 4, 5, 0, time.FixedZone("IST", 5*3600+1800))

func sampleInfo() *phone.Info {
	return &phone.Info{
		CountryCode:    91,
		NationalNumber: 8123456789,
		Classification: phone.Valid,
		Valid:          true,
		Possible:       true,
		Details: &phone.Details{
			Region:        "IN",
			Country:       "India",
			Carrier:       phone.Unknown,
			Timezones:     []string{"Asia/Calcutta"},
			Type:          phone.Mobile,
			International: "+91 81234 56789",
			National:      "081234 56789",
			E164:          "+918123456789",
		},
	}
}

func TestSearchLinksExactURLs(t *testing.T) {
	links := SearchLinks("+91 81234 56789")
	want := []Link{
		{"Google", "https://www.google.com/search?q=%2B91+81234+56789"},
		{"TrueCaller", "https://www.truecaller.com/search/in/91 81234 56789"},
		{"Facebook", "https://www.facebook.com/search/top/?q=%2B91+81234+56789"},
		{"LinkedIn", "https://www.linkedin.com/search/results/all/?keywords=%2B91+81234+56789"},
		{"Twitter (X)", "https://twitter.com/search?q=%2B91+81234+56789"},
		{"Instagram (Tag)", "https://www.instagram.com/explore/tags/91 81234 56789"},
	}
	assert.Equal(t, want, links)
	assert.Equal(t, links, SearchLinks("+91 81234 56789"))
}

func TestSearchLinksCompactNumber(t *testing.T) {
	links := SearchLinks("+14155552671")
	require.Len(t, links, 6)
	assert.Equal(t, "https://www.google.com/search?q=%2B14155552671", links[0].URL)
	assert.Equal(t, "https://www.truecaller.com/search/in/14155552671", links[1].URL)
	assert.Equal(t, "https://www.instagram.com/explore/tags/14155552671", links[5].URL)
}

func TestNumberTypeLabelIsTotal(t *testing.T) {
	for code := phone.FixedLine; code <= phone.Voicemail; code++ {
		label := NumberTypeLabel(code)
		assert.NotEmpty(t, label)
		assert.NotEqual(t, UnknownTypeLabel, label, "code %d", code)
	}
	assert.Equal(t, "मोबाइल (Mobile)", NumberTypeLabel(phone.Mobile))
	assert.Equal(t, "VoIP", NumberTypeLabel(phone.VoIP))
	assert.Equal(t, UnknownTypeLabel, NumberTypeLabel(phone.NumberTypeUnknown))
	assert.Equal(t, UnknownTypeLabel, NumberTypeLabel(phone.NumberType(11)))
	assert.Equal(t, UnknownTypeLabel, NumberTypeLabel(phone.NumberType(-7)))
}

func TestBasicReport(t *testing.T) {
	r := NewRenderer(WithClock(func() time.Time { return fixedNow }))
	out := r.Basic(sampleInfo(), "+91 81234 56789")

	assert.True(t, strings.HasPrefix(out, "📊 *बुनियादी जानकारी रिपोर्ट (Basic Information Report)*\n\n"))
	assert.Contains(t, out, "📱 *फ़ोन नंबर:* `+91 81234 56789`\n")
	assert.Contains(t, out, "🌍 *देश:* India\n")
	assert.Contains(t, out, "📡 *कैरियर:* अज्ञात\n")
	assert.Contains(t, out, "🕐 *समय क्षेत्र:* Asia/Calcutta\n")
	assert.Contains(t, out, "📞 *प्रकार:* मोबाइल (Mobile)\n")
	assert.Contains(t, out, "🔢 *देश कोड:* +91\n")
	assert.Contains(t, out, "• E164: `+918123456789`")
	assert.Contains(t, out, "• मान्य: ✅ हाँ\n")
	assert.True(t, strings.HasSuffix(out, "📅 रिपोर्ट जनरेट की गई: 2024-03-09 11:34:05 UTC"))
	assert.NotContains(t, out, "https://")
}

func TestBasicReportUnknownTimezones(t *testing.T) {
	info := sampleInfo()
	info.Details.Timezones = nil
	info.Valid = false
	info.Classification = phone.PossiblyValid

	out := NewRenderer().Basic(info, "+918123456789")
	assert.Contains(t, out, "🕐 *समय क्षेत्र:* अज्ञात\n")
	assert.Contains(t, out, "• मान्य: ❌ नहीं\n")
	assert.Contains(t, out, "• संभव: ✅ हाँ\n")
}

func TestFullReportEmbedsLinks(t *testing.T) {
	r := NewRenderer(WithClock(func() time.Time { return fixedNow }))
	out := r.Full(sampleInfo(), "+918123456789")

	assert.Contains(t, out, rule+"\n\n")
	assert.Contains(t, out, "└─ राष्ट्रीय नंबर: 8123456789\n")
	for _, l := range SearchLinks("+918123456789") {
		assert.Contains(t, out, "├─ ["+l.Platform+"]("+l.URL+")\n")
	}
	assert.Contains(t, out, "*⚠️ महत्वपूर्ण अस्वीकरण*\n")
	assert.True(t, strings.HasSuffix(out, "🤖 बॉट स्थिति: ऑनलाइन 24/7"))
	assert.Contains(t, out, "2024-03-09 11:34:05 UTC")
}

func TestLinksReport(t *testing.T) {
	out := NewRenderer().Links("+14155552671")
	assert.True(t, strings.HasPrefix(out, "🔗 *+14155552671 के लिए सर्च लिंक*\n\n"))
	assert.Contains(t, out, "🔹 [Google](https://www.google.com/search?q=%2B14155552671)\n")
	assert.Equal(t, 6, strings.Count(out, "🔹 ["))
	assert.Contains(t, out, "💡 *उपयोग के टिप्स:*")
}

func TestReportsWithoutDetails(t *testing.T) {
	r := NewRenderer()
	assert.Equal(t, NoInfo, r.Basic(nil, "+1"))
	assert.Equal(t, NoInfo, r.Full(&phone.Info{Valid: true}, "+1"))
}

func TestBasicReportContainsE164ForLibraryNumber(t *testing.T) {
	info, err := phone.NewParser().Lookup("+14155552671")
	require.NoError(t, err)
	require.NotNil(t, info.Details)

	out := NewRenderer().Basic(info, "+14155552671")
	assert.Contains(t, out, info.Details.E164)
	assert.Contains(t, out, "+1 415-555-2671")
}

func TestBasicReportIndianNumber(t *testing.T) {
	info, err := phone.NewParser().Lookup("+911234567890")
	require.NoError(t, err)
	require.Equal(t, phone.Valid, info.Classification)

	out := NewRenderer().Basic(info, "+911234567890")
	assert.Contains(t, out, "+91 1234 567 890")
	assert.Contains(t, out, "+911234567890")
	assert.Contains(t, out, "+91\n")
}
