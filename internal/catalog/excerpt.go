package catalog

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// PlainText strips markup from s and collapses whitespace
func PlainText(s string) string {
	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(s))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return strings.Join(strings.Fields(b.String()), " ")
		case html.TextToken:
			b.Write(z.Text())
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			b.WriteByte(' ')
		}
	}
}

// Excerpt returns at most n runes of the plain text of s, ending in "…" when cut
func Excerpt(s string, n int) string {
	text := PlainText(s)
	if n <= 0 || utf8.RuneCountInString(text) <= n {
		return text
	}

	runes := []rune(text)
	cut := strings.TrimSpace(string(runes[:n]))
	if i := strings.LastIndexByte(cut, ' '); i > n/2 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " ,.;:") + "…"
}
