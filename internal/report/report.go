package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/m3rciful/phonebot/internal/phone"
)

// TimestampLayout renders the generation time of a report.
const TimestampLayout = "2006-01-02 15:04:05 UTC"

// NoInfo replaces a report when metadata extraction produced nothing usable.
const NoInfo = "❌ इस नंबर के लिए जानकारी प्राप्त नहीं की जा सकी।"

const rule = "========================================"

// Renderer turns parsed numbers into Markdown reports.
type Renderer struct {
	now func() time.Time
}

// Option customises a Renderer.
type Option func(*Renderer)

// WithClock overrides the report timestamp source.
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) {
		if now != nil {
			r.now = now
		}
	}
}

// NewRenderer returns a Renderer stamping reports with the wall clock.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Renderer) stamp() string {
	return r.now().UTC().Format(TimestampLayout)
}

// Basic renders the short report.
func (r *Renderer) Basic(info *phone.Info, display string) string {
	if info == nil || info.Details == nil {
		return NoInfo
	}
	d := info.Details

	var b strings.Builder
	b.WriteString("📊 *बुनियादी जानकारी रिपोर्ट (Basic Information Report)*\n\n")
	fmt.Fprintf(&b, "📱 *फ़ोन नंबर:* `%s`\n\n", display)
	fmt.Fprintf(&b, "🌍 *देश:* %s\n", d.Country)
	fmt.Fprintf(&b, "📡 *कैरियर:* %s\n", d.Carrier)
	fmt.Fprintf(&b, "🕐 *समय क्षेत्र:* %s\n", zones(d.Timezones))
	fmt.Fprintf(&b, "📞 *प्रकार:* %s\n", NumberTypeLabel(d.Type))
	fmt.Fprintf(&b, "🔢 *देश कोड:* +%d\n\n", info.CountryCode)
	b.WriteString("*फॉर्मेट भिन्नताएँ:*\n")
	fmt.Fprintf(&b, "• अंतर्राष्ट्रीय: `%s`\n", d.International)
	fmt.Fprintf(&b, "• राष्ट्रीय: `%s`\n", d.National)
	fmt.Fprintf(&b, "• E164: `%s`\n\n", d.E164)
	b.WriteString("*सत्यापन:*\n")
	fmt.Fprintf(&b, "• मान्य: %s\n", yesNo(info.Valid))
	fmt.Fprintf(&b, "• संभव: %s\n\n", yesNo(info.Possible))
	b.WriteString("⚠️ *अस्वीकरण:* जानकारी सार्वजनिक रूप से उपलब्ध डेटा पर आधारित है।\n")
	fmt.Fprintf(&b, "📅 रिपोर्ट जनरेट की गई: %s", r.stamp())
	return b.String()
}

// Full renders the comprehensive report including the links section.
func (r *Renderer) Full(info *phone.Info, display string) string {
	if info == nil || info.Details == nil {
		return NoInfo
	}
	d := info.Details

	var b strings.Builder
	b.WriteString("📊 *व्यापक जांच रिपोर्ट (COMPREHENSIVE INVESTIGATION REPORT)*\n")
	b.WriteString(rule + "\n\n")
	fmt.Fprintf(&b, "🎯 *लक्ष्य नंबर:* `%s`\n\n", display)

	b.WriteString("*🔍 बुनियादी जानकारी*\n")
	fmt.Fprintf(&b, "├─ देश: %s\n", d.Country)
	fmt.Fprintf(&b, "├─ देश कोड: +%d\n", info.CountryCode)
	fmt.Fprintf(&b, "├─ कैरियर/ऑपरेटर: %s\n", d.Carrier)
	fmt.Fprintf(&b, "├─ समय क्षेत्र: %s\n", zones(d.Timezones))
	fmt.Fprintf(&b, "└─ नंबर प्रकार: %s\n\n", NumberTypeLabel(d.Type))

	b.WriteString("*📋 फॉर्मेट भिन्नताएँ*\n")
	fmt.Fprintf(&b, "├─ अंतर्राष्ट्रीय: `%s`\n", d.International)
	fmt.Fprintf(&b, "├─ राष्ट्रीय: `%s`\n", d.National)
	fmt.Fprintf(&b, "├─ E164: `%s`\n", d.E164)
	fmt.Fprintf(&b, "└─ राष्ट्रीय नंबर: %d\n\n", info.NationalNumber)

	b.WriteString("*✓ सत्यापन स्थिति*\n")
	fmt.Fprintf(&b, "├─ मान्य नंबर: %s\n", yesNo(info.Valid))
	fmt.Fprintf(&b, "└─ संभव नंबर: %s\n\n", yesNo(info.Possible))

	b.WriteString("*🔗 सर्च लिंक*\n")
	for _, l := range SearchLinks(display) {
		fmt.Fprintf(&b, "├─ [%s](%s)\n", l.Platform, l.URL)
	}
	b.WriteString("\n")

	b.WriteString("*⚠️ महत्वपूर्ण अस्वीकरण*\n")
	b.WriteString("यह उपकरण केवल सार्वजनिक स्रोतों से जानकारी प्रदान करता है। ")
	b.WriteString("यह ट्रैकिंग, हैकिंग, या वास्तविक समय स्थान डेटा प्रदान नहीं करता है। ")
	b.WriteString("कृपया जिम्मेदारी और नैतिक रूप से उपयोग करें।\n\n")
	fmt.Fprintf(&b, "📅 रिपोर्ट जनरेट की गई: %s\n", r.stamp())
	b.WriteString("🤖 बॉट स्थिति: ऑनलाइन 24/7")
	return b.String()
}

// Links renders the search links report. It needs only the display string.
func (r *Renderer) Links(display string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🔗 *%s के लिए सर्च लिंक*\n\n", display)
	b.WriteString("इस नंबर को विभिन्न प्लेटफार्मों पर खोजने के लिए नीचे दिए गए किसी भी लिंक पर क्लिक करें:\n\n")
	for _, l := range SearchLinks(display) {
		fmt.Fprintf(&b, "🔹 [%s](%s)\n", l.Platform, l.URL)
	}
	b.WriteString("\n💡 *उपयोग के टिप्स:*\n")
	b.WriteString("• ये लिंक सार्वजनिक रूप से उपलब्ध जानकारी खोजते हैं\n")
	b.WriteString("• परिणाम प्लेटफॉर्म के अनुसार भिन्न हो सकते हैं\n")
	b.WriteString("• कुछ प्लेटफार्मों के लिए लॉगिन आवश्यक हो सकता है\n")
	b.WriteString("• सभी प्लेटफार्मों पर डेटा उपलब्ध नहीं हो सकता है\n\n")
	b.WriteString("⚠️ इन उपकरणों का जिम्मेदारी से उपयोग करें और गोपनीयता कानूनों का सम्मान करें।")
	return b.String()
}

func zones(tz []string) string {
	if len(tz) == 0 {
		return phone.Unknown
	}
	return strings.Join(tz, ", ")
}

func yesNo(v bool) string {
	if v {
		return "✅ हाँ"
	}
	return "❌ नहीं"
}
