package helpers

import (
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Названия месяцев (pt-BR), индекс - номер месяца минус один
var monthNames = [12]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

var nonASCII = runes.Predicate(func(r rune) bool {
	return r > unicode.MaxASCII
})

// MonthName - название месяца по дате
func MonthName(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return monthNames[m-1]
}

// NormalizeStatus - статус в верхнем регистре, символы вне ASCII отбрасываются (не транслитерируются)
func NormalizeStatus(status string) string {
	out, _, err := transform.String(runes.Remove(nonASCII), strings.ToUpper(status))
	if err != nil {
		return ""
	}
	return out
}

// NormalizeSupplier - последний сегмент после "-", без пробелов по краям, в верхнем регистре,
// диакритика снимается через каноническую декомпозицию
func NormalizeSupplier(name string) string {
	parts := strings.Split(name, "-")
	last := strings.ToUpper(strings.TrimSpace(parts[len(parts)-1]))
	return FoldASCII(last)
}

// FoldASCII - NFKD декомпозиция и удаление всего, что не ASCII (буквы с акцентом -> базовая буква)
func FoldASCII(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), runes.Remove(nonASCII))
	out, _, err := transform.String(t, s)
	if err != nil {
		return ""
	}
	return out
}
