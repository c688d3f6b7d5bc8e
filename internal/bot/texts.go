package bot

import (
	"fmt"
	"strings"

	"github.com/m3rciful/phonebot/core/buildinfo"
	"github.com/m3rciful/phonebot/internal/journal"
)

const (
	msgHelp = "📖 *विस्तृत सहायता गाइड*\n\n" +
		"*कैसे उपयोग करें:*\n" +
		"देश कोड (प्लस '+' सहित) के साथ एक फ़ोन नंबर भेजें\n\n" +
		"*समर्थित फॉर्मेट:*\n" +
		"• +[देश कोड][नंबर]\n" +
		"• उदाहरण: +911234567890\n" +
		"• उदाहरण: +14155552671\n\n" +
		"*उपलब्ध सुविधाएँ:*\n" +
		"✅ देश की पहचान\n" +
		"✅ कैरियर/ऑपरेटर का पता लगाना\n" +
		"✅ समय क्षेत्र (Timezone) की जानकारी\n" +
		"✅ नंबर सत्यापन (Validation)\n" +
		"✅ फॉर्मेट भिन्नताएँ\n" +
		"✅ सर्च इंजन लिंक\n\n" +
		"*जाँच विकल्प:*\n" +
		"• Basic Info - त्वरित अवलोकन\n" +
		"• All Features - सम्पूर्ण विश्लेषण\n" +
		"• Search Links - सोशल मीडिया पर खोजें\n\n" +
		"*टिप्स:*\n" +
		"• हमेशा देश कोड शामिल करें\n" +
		"• '+' प्रतीक से शुरू करें\n" +
		"• स्पेस और विशेष वर्ण हटाएँ\n\n" +
		"समर्थन चाहिए? व्यवस्थापक से संपर्क करें।"

	msgLookup = "📱 *फ़ोन नंबर जाँच*\n\n" +
		"देश कोड के साथ फ़ोन नंबर भेजें।\n" +
		"फ़ॉर्मेट: +[country code][number]\n" +
		"उदाहरण: +911234567890"

	msgNonText    = "📝 कृपया फ़ोन नंबर टेक्स्ट संदेश के रूप में भेजें।\nउदाहरण: +14155552671"
	msgSlowDown   = "⏳ कृपया थोड़ा धीरे। कुछ सेकंड बाद पुनः प्रयास करें।"
	msgAdminOnly  = "⛔ यह कमांड केवल व्यवस्थापक के लिए है।"
	msgStatsOff   = "ℹ️ Lookup journal is disabled (database.enabled=false)."
	msgStatsError = "❌ Could not load stats, see logs."

	fallbackStart = "Welcome! Send me a phone number to get started."
	fallbackHelp  = "Help: Send a phone number with country code to get information."
	fallbackAbout = "About: This is a phone number lookup bot running 24/7."

	inlineTitle = "📊 बुनियादी जानकारी (Basic Info)"
)

func welcomeText(firstName string) string {
	return fmt.Sprintf("👋 Welcome %s!\n\n", firstName) +
		"🔍 *फ़ोन नंबर ख़ुफ़िया जानकारी (Phone Number Lookup Bot)*\n\n" +
		"यह बॉट आपको फ़ोन नंबरों की जाँच करने और सार्वजनिक रूप से उपलब्ध जानकारी एकत्र करने में मदद करता है।\n\n" +
		"*उपलब्ध कमांड:*\n" +
		"• /start - यह स्वागत संदेश दिखाएँ\n" +
		"• /help - विस्तृत सहायता प्राप्त करें\n" +
		"• /lookup - एक फ़ोन नंबर की जाँच करें\n" +
		"• /about - इस बॉट के बारे में\n\n" +
		"*जल्दी शुरू करें:*\n" +
		"बस देश कोड के साथ एक फ़ोन नंबर भेजें!\n" +
		"उदाहरण: +911234567890 या +14155552671\n\n" +
		"⚠️ *अस्वीकरण:* यह उपकरण केवल शैक्षिक और खोजी उद्देश्यों के लिए है।"
}

func aboutText() string {
	return "ℹ️ *फ़ोन नंबर ख़ुफ़िया बॉट के बारे में*\n\n" +
		fmt.Sprintf("वर्ज़न: %s\n", buildinfo.Short()) +
		"स्टेटस: ✅ ऑनलाइन 24/7\n\n" +
		"*उद्देश्य:*\n" +
		"यह बॉट सार्वजनिक रूप से उपलब्ध डेटा स्रोतों का उपयोग करके फ़ोन नंबर जाँच क्षमताएँ प्रदान करता है।\n\n" +
		"*प्रौद्योगिकी:*\n" +
		"Go और telebot से निर्मित, सटीक डेटा प्रोसेसिंग के लिए phonenumbers लाइब्रेरी का उपयोग करता है।\n\n" +
		"*सीमाएँ:*\n" +
		"यह उपकरण ट्रैकिंग, हैकिंग या वास्तविक समय स्थान सेवाएँ प्रदान नहीं करता है। यह केवल सार्वजनिक रूप से उपलब्ध जानकारी प्राप्त करता है।"
}

func statsText(s *journal.Stats, days int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📈 *Lookup stats (last %d days)*\n\n", days)
	fmt.Fprintf(&b, "Total: %d\nUsers: %d\n\n", s.Total, s.Users)
	for _, k := range []string{"valid", "possible", "invalid"} {
		fmt.Fprintf(&b, "• %s: %d\n", k, s.ByClassification[k])
	}
	if len(s.TopCountries) == 0 {
		return b.String()
	}
	b.WriteString("\n*Top countries:*\n")
	for _, cc := range s.TopCountries {
		region := cc.Region
		if region == "" {
			region = "??"
		}
		fmt.Fprintf(&b, "• +%d %s: %d\n", cc.CountryCode, region, cc.Count)
	}
	return b.String()
}
