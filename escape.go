package twcss

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// EscapeClass escapes a class token for use after "." in a selector.
//
//	md:hover:bg-red-500  → md\:hover\:bg-red-500
//	w-1/2                → w-1\/2
//	2xl:p-4              → \32 xl\:p-4
func EscapeClass(s string) string {
	var b strings.Builder
	b.Grow(len(s) + len(s)/4)

	for i, r := range s {
		switch {
		case r == 0:
			b.WriteRune(utf8.RuneError)
		case r <= 0x20 || r == 0x7f:
			hexEscape(&b, r)
		case r >= '0' && r <= '9' && (i == 0 || (i == 1 && s[0] == '-')):
			hexEscape(&b, r)
		case r == '-' && i == 0 && len(s) == 1:
			b.WriteString(`\-`)
		case r >= 0x80, r == '-', r == '_',
			r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte('\\')
			b.WriteRune(r)
		}
	}
	return b.String()
}

func hexEscape(b *strings.Builder, r rune) {
	b.WriteByte('\\')
	b.WriteString(strconv.FormatInt(int64(r), 16))
	b.WriteByte(' ')
}

// UnescapeClass reverses EscapeClass.
func UnescapeClass(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 == len(s) {
			b.WriteByte(s[i])
			continue
		}

		j := i + 1
		for j < len(s) && j-i <= 6 && isHex(s[j]) {
			j++
		}
		if j == i+1 {
			// Literal escape: copy the next full rune.
			_, size := utf8.DecodeRuneInString(s[j:])
			b.WriteString(s[j : j+size])
			i = j + size - 1
			continue
		}

		code, _ := strconv.ParseInt(s[i+1:j], 16, 32)
		b.WriteRune(rune(code))
		if j < len(s) && isSpace(s[j]) {
			j++
		}
		i = j - 1
	}
	return b.String()
}

func isHex(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}
