package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatBirr renders an ETB amount with thousand separators, e.g. "1,500 ETB".
// Whole-birr amounts drop the decimals; catalog prices are whole birr.
func FormatBirr(amount float64) string {
	whole := int64(amount)
	if amount == float64(whole) {
		return formatThousand(whole) + " ETB"
	}
	return fmt.Sprintf("%s.%02d ETB", formatThousand(whole), int64(amount*100)%100)
}

func formatThousand(n int64) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	str := strconv.FormatInt(n, 10)
	var out strings.Builder
	for i, c := range str {
		if i != 0 && (len(str)-i)%3 == 0 {
			out.WriteByte(',')
		}
		out.WriteRune(c)
	}
	return sign + out.String()
}
