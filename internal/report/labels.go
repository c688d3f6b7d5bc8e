package report

import "github.com/m3rciful/phonebot/internal/phone"

// UnknownTypeLabel is shown for NumberTypeUnknown and any unmapped code.
const UnknownTypeLabel = "अज्ञात (Unknown)"

var typeLabels = map[phone.NumberType]string{
	phone.FixedLine:         "फिक्स्ड लाइन (Fixed Line)",
	phone.Mobile:            "मोबाइल (Mobile)",
	phone.FixedLineOrMobile: "फिक्स्ड लाइन या मोबाइल (Fixed Line or Mobile)",
	phone.TollFree:          "टोल फ्री (Toll Free)",
	phone.PremiumRate:       "प्रीमियम रेट (Premium Rate)",
	phone.SharedCost:        "साझा लागत (Shared Cost)",
	phone.VoIP:              "VoIP",
	phone.PersonalNumber:    "व्यक्तिगत नंबर (Personal Number)",
	phone.Pager:             "पेजर (Pager)",
	phone.UAN:               "UAN",
	phone.Voicemail:         "वॉयसमेल (Voicemail)",
}

// NumberTypeLabel maps a number type to its display label. The mapping is total.
func NumberTypeLabel(t phone.NumberType) string {
	if label, ok := typeLabels[t]; ok {
		return label
	}
	return UnknownTypeLabel
}
