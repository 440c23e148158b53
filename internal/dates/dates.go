// Package dates reduces the free-text date field of artwork sheets to a
// canonical YYYY-MM[-DD] form where possible.
//
// The source material mixes bare years, Spanish named months in several
// orderings, slash and hyphen numeric dates, two-digit years, and sentinel
// phrases meaning "deliberately undated". Anything the normalizer does not
// recognize passes through unchanged, so downstream consumers see the
// original text rather than a corrupted guess.
package dates

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// spanishMonths is ordered; index+1 is the month number.
var spanishMonths = []string{
	"ENERO", "FEBRERO", "MARZO", "ABRIL", "MAYO", "JUNIO",
	"JULIO", "AGOSTO", "SEPTIEMBRE", "OCTUBRE", "NOVIEMBRE", "DICIEMBRE",
}

var (
	reFourDigitYear = regexp.MustCompile(`^\d{4}$`)

	reYearNamedMonth    = regexp.MustCompile(`^(?P<year>\d{4}),* (?P<month>\w+)$`)
	reYearNamedMonthDay = regexp.MustCompile(`^(?P<year>\d{4}),* (?P<month>\w+) (?P<day>\d{2})$`)
	reNamedMonthYear    = regexp.MustCompile(`^(?P<month>\w+),* (?:de )*(?P<year>\d{4})$`)
	reDayNamedMonthYear = regexp.MustCompile(`^(?P<day>\d{1,2}) de (?P<month>\w+) de (?P<year>\d{4})$`)

	// Month-first is assumed for slash dates. The source data mixes
	// MM/YYYY and YYYY/MM and there is no way to tell them apart, so
	// both resolve month-first rather than guessing per value.
	reMonthSlashYear = regexp.MustCompile(`^(?P<month>\d{1,2})/(?P<year>\d+)$`)

	reDayMonthYear = regexp.MustCompile(`^(?P<day>\d{1,2})-(?P<month>\d{1,2})-(?P<year>\d{2,4})$`)
)

// sentinel phrases marking a date as deliberately absent or non-standard.
// Substring checks first, then exact short tokens.
var (
	sentinelSubstrings = []string{"Sin fecha", "Circa", "'s", "Posterior"}
	sentinelExact      = []string{"No presenta", "No", "S/F", "Varias"}
)

// Normalize attempts to reformat raw into YYYY-MM[-DD]. It is pure, never
// fails, and returns the trimmed input verbatim for sentinels and for any
// shape it does not recognize.
func Normalize(raw string) string {
	text := strings.TrimSpace(raw)

	for _, s := range sentinelSubstrings {
		if strings.Contains(text, s) {
			return text
		}
	}
	for _, s := range sentinelExact {
		if text == s {
			return text
		}
	}
	if reFourDigitYear.MatchString(text) {
		return text
	}

	// Shape patterns, strict precedence, first match terminal: once a
	// shape has matched, an unresolvable month name means pass-through,
	// not a retry against later shapes.
	if m := match(reYearNamedMonth, text); m != nil {
		return formatNamed(text, m["year"], m["month"], "")
	}
	if m := match(reYearNamedMonthDay, text); m != nil {
		return formatNamed(text, m["year"], m["month"], m["day"])
	}
	if m := match(reNamedMonthYear, text); m != nil {
		return formatNamed(text, m["year"], m["month"], "")
	}
	if m := match(reDayNamedMonthYear, text); m != nil {
		return formatNamed(text, m["year"], m["month"], m["day"])
	}
	if m := match(reMonthSlashYear, text); m != nil {
		return format(m["year"], m["month"], "")
	}
	if m := match(reDayMonthYear, text); m != nil {
		return format(m["year"], m["month"], m["day"])
	}

	return text
}

func match(re *regexp.Regexp, text string) map[string]string {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	groups := make(map[string]string)
	for i, name := range re.SubexpNames() {
		if name != "" {
			groups[name] = m[i]
		}
	}
	return groups
}

// formatNamed resolves a Spanish month name before formatting; an
// unrecognized name returns the raw text unchanged.
func formatNamed(raw, year, month, day string) string {
	n := monthNumber(month)
	if n == 0 {
		return raw
	}
	return format(year, strconv.Itoa(n), day)
}

func monthNumber(name string) int {
	upper := strings.ToUpper(name)
	for i, m := range spanishMonths {
		if m == upper {
			return i + 1
		}
	}
	return 0
}

// format builds YYYY-MM[-DD]. Years of up to two digits get a fixed "19"
// century prefix, a bias suited to this dataset's expected range.
func format(year, month, day string) string {
	if len(year) <= 2 {
		year = "19" + year
	}
	m, _ := strconv.Atoi(month)
	out := fmt.Sprintf("%s-%02d", year, m)
	if day != "" {
		d, _ := strconv.Atoi(day)
		out += fmt.Sprintf("-%02d", d)
	}
	return out
}
