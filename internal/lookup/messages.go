package lookup

import "fmt"

// User-facing texts of the lookup flow.
const (
	MsgAnalysing     = "🔍 फ़ोन नंबर का विश्लेषण हो रहा है... कृपया प्रतीक्षा करें।"
	MsgGathering     = "⏳ जानकारी जुटाई जा रही है... कृपया प्रतीक्षा करें।"
	MsgValidated     = "✅ फ़ोन नंबर सफलतापूर्वक मान्य किया गया!"
	MsgCancelled     = "❌ ऑपरेशन रद्द किया गया।"
	MsgExpired       = "❌ सत्र समाप्त हो गया है। कृपया फ़ोन नंबर फिर से भेजें।"
	MsgInvalidChoice = "❌ अमान्य विकल्प चुना गया।"
	MsgNumberFailed  = "❌ आपके अनुरोध को संसाधित करते समय एक त्रुटि हुई। कृपया एक मान्य फ़ोन नंबर के साथ पुनः प्रयास करें।"
	MsgChoiceFailed  = "❌ जानकारी प्राप्त करते समय एक त्रुटि हुई। कृपया पुनः प्रयास करें।"
)

func rejectionText(reason string) string {
	return fmt.Sprintf("❌ %s\n\n"+
		"कृपया देश कोड के साथ एक मान्य फ़ोन नंबर भेजें।\n"+
		"फ़ॉर्मेट: +[country code][number]\n"+
		"उदाहरण: +911234567890", reason)
}

func menuPrompt(status, display string) string {
	return fmt.Sprintf("%s\n\n📱 नंबर: `%s`\n\nकृपया वह जानकारी चुनें जिसे आप प्राप्त करना चाहते हैं:", status, display)
}
