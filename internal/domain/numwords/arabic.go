package numwords

var onesAr = [20]string{
	"", "واحد", "اثنان", "ثلاثة", "أربعة", "خمسة", "ستة", "سبعة", "ثمانية", "تسعة",
	"عشرة", "أحد عشر", "اثنا عشر", "ثلاثة عشر", "أربعة عشر", "خمسة عشر", "ستة عشر",
	"سبعة عشر", "ثمانية عشر", "تسعة عشر",
}

var tensAr = [10]string{
	"", "", "عشرون", "ثلاثون", "أربعون", "خمسون", "ستون", "سبعون", "ثمانون", "تسعون",
}

// Arabic hundreds are distinct words, not multiplicative phrases
var hundredsAr = [10]string{
	"", "مائة", "مائتان", "ثلاثمائة", "أربعمائة", "خمسمائة", "ستمائة", "سبعمائة",
	"ثمانمائة", "تسعمائة",
}

// arabicWords converts n in [0, 1,000,000) to Arabic words. Ones are stated
// before tens, joined by the conjunction "و". Thousands words are irregular by
// magnitude; above ten thousands the "<words> ألف" form is a grammatical
// approximation carried over from the product behavior.
func arabicWords(n int64) string {
	switch {
	case n == 0:
		return "صفر"
	case n < 20:
		return onesAr[n]
	case n < 100:
		if n%10 == 0 {
			return tensAr[n/10]
		}
		return onesAr[n%10] + " و" + tensAr[n/10]
	case n < 1000:
		w := hundredsAr[n/100]
		if n%100 != 0 {
			w += " و" + arabicWords(n%100)
		}
		return w
	default:
		th := n / 1000
		var w string
		switch {
		case th == 1:
			w = "ألف"
		case th == 2:
			w = "ألفان"
		case th <= 10:
			w = arabicWords(th) + " آلاف"
		default:
			w = arabicWords(th) + " ألف"
		}
		if n%1000 != 0 {
			w += " و" + arabicWords(n%1000)
		}
		return w
	}
}

// arabicCurrencyName maps common ISO currency codes to their Arabic names,
// falling back to the code itself
func arabicCurrencyName(code string) string {
	names := map[string]string{
		"KWD": "دينار كويتي",
		"SAR": "ريال سعودي",
		"AED": "درهم إماراتي",
		"BHD": "دينار بحريني",
		"QAR": "ريال قطري",
		"OMR": "ريال عماني",
		"JOD": "دينار أردني",
		"EGP": "جنيه مصري",
		"USD": "دولار أمريكي",
		"EUR": "يورو",
	}
	if name, ok := names[code]; ok {
		return name
	}
	return code
}
