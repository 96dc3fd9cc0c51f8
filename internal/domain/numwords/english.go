package numwords

var onesEn = [20]string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tensEn = [10]string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

// englishWords converts n in [0, 1,000,000) to English words
func englishWords(n int64) string {
	switch {
	case n == 0:
		return "Zero"
	case n < 20:
		return onesEn[n]
	case n < 100:
		w := tensEn[n/10]
		if n%10 != 0 {
			w += "-" + onesEn[n%10]
		}
		return w
	case n < 1000:
		w := onesEn[n/100] + " Hundred"
		if n%100 != 0 {
			w += " and " + englishWords(n%100)
		}
		return w
	default:
		w := englishWords(n/1000) + " Thousand"
		if n%1000 != 0 {
			w += " " + englishWords(n%1000)
		}
		return w
	}
}
