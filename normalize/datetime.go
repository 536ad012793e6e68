package normalize

import (
	"strconv"
	"strings"

	"github.com/RazwanSiktany/ckb-textify/internal/ckbscript"
	"github.com/RazwanSiktany/ckb-textify/numtext"
	"github.com/RazwanSiktany/ckb-textify/token"
)

// kurdishMonths are the Kurdish month names of the Gregorian calendar.
var kurdishMonths = map[int]string{
	1:  "کانونی دووەم",
	2:  "شوبات",
	3:  "ئازار",
	4:  "نیسان",
	5:  "ئایار",
	6:  "حوزەیران",
	7:  "تەمموز",
	8:  "ئاب",
	9:  "ئەیلوول",
	10: "تشرینی یەکەم",
	11: "تشرینی دووەم",
	12: "کانونی یەکەم",
}

// Meridiem markers the time pass understands. Lookup keys are lowercase
// with the leading izafe and joiner characters already stripped.
var (
	amMarkers = []string{
		"a.m.", "a.m", "am",
		"پ.ن", "پێش نیوەڕۆ", "پێشنیوەڕۆ", "بەیانی",
	}
	pmMarkers = []string{
		"p.m.", "p.m", "pm",
		"د.ن", "دوای نیوەڕۆ", "دواینیوەڕۆ", "دوای نیوەرۆ",
		"پاش نیوەڕۆ", "پاشنیوەڕۆ", "ئێوارە", "عەسر", "نیوەڕۆ",
	}
	// شەو is ambiguous: night hours before dawn are morning-side.
	nightMarker = "شەو"
)

type meridiem int

const (
	meridiemNone meridiem = iota
	meridiemAM
	meridiemPM
)

// DateTimeNormalizer spells out Date and Time tokens, resolving the time
// of day from attached or following meridiem markers and naming the
// day period.
type DateTimeNormalizer struct{}

func NewDateTimeNormalizer() *DateTimeNormalizer { return &DateTimeNormalizer{} }

func (d *DateTimeNormalizer) Name() string  { return "datetime" }
func (d *DateTimeNormalizer) Priority() int { return PriorityDateTime }

func (d *DateTimeNormalizer) Process(tokens []token.Token) []token.Token {
	for i := range tokens {
		t := &tokens[i]
		if t.Converted {
			continue
		}
		switch t.Type {
		case token.Date:
			if words, ok := readDate(t.Text); ok {
				t.Rewrite(words, token.Word)
				t.Tags.Add(token.TagDate)
			}
		case token.Time:
			d.convertTime(tokens, i)
		}
	}
	return tokens
}

func (d *DateTimeNormalizer) convertTime(tokens []token.Token, i int) {
	t := &tokens[i]
	digits, attached := splitTimeMarker(ckbscript.FoldDigits(t.Text))

	mer := meridiemNone
	suffix := ""
	if attached != "" {
		var ok bool
		mer, suffix, ok = matchMeridiem(attached, 0)
		if !ok {
			return
		}
	}

	h, m, s, ok := parseClock(digits)
	if !ok {
		return
	}

	// Marker may follow as separate tokens, up to three of them.
	if mer == meridiemNone {
		if found, sfx, span := scanMeridiem(tokens, i, h); found != meridiemNone {
			mer, suffix = found, sfx
			for _, j := range span {
				tokens[j].Consume()
			}
		}
	}

	words := clockWords(h, m, s, mer)
	t.Rewrite(appendSuffix(words, suffix), token.Word)
	t.Tags.Add(token.TagTime)
}

// readDate renders a three-field numeric date. A four-digit first field
// is read year-first, otherwise day-first.
func readDate(text string) (string, bool) {
	text = ckbscript.FoldDigits(text)
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == '/' || r == '-' || r == '.'
	})
	if len(fields) != 3 {
		return "", false
	}
	var day, month, year string
	switch {
	case len(fields[0]) == 4:
		year, month, day = fields[0], fields[1], fields[2]
		if mo, err := strconv.Atoi(month); err != nil || mo < 1 || mo > 12 {
			return "", false
		}
	case len(fields[2]) == 4:
		// Year last. A month cannot exceed twelve, so of the two leading
		// fields the larger one is the day; ties read day-first.
		day, month, year = fields[0], fields[1], fields[2]
		a, errA := strconv.Atoi(fields[0])
		b, errB := strconv.Atoi(fields[1])
		if errA != nil || errB != nil {
			return "", false
		}
		if a <= 12 && b > 12 {
			day, month = fields[1], fields[0]
		}
	default:
		// No four-digit year anywhere leaves the form ambiguous.
		return "", false
	}
	mo, err := strconv.Atoi(month)
	if err != nil {
		return "", false
	}
	monthName, ok := kurdishMonths[mo]
	if !ok {
		monthWords, okMo := numtext.Cardinal(month)
		if !okMo {
			return "", false
		}
		monthName = "مانگی " + monthWords
	}
	dayWords, ok := numtext.Cardinal(day)
	if !ok {
		return "", false
	}
	yearWords, ok := numtext.Cardinal(year)
	if !ok {
		return "", false
	}
	return dayWords + "ی " + monthName + "ی ساڵی " + yearWords, true
}

// splitTimeMarker separates the digit:digit core of a Time token from an
// attached trailing marker such as 5:30pm.
func splitTimeMarker(s string) (digits, marker string) {
	end := len(s)
	for end > 0 {
		r := rune(s[end-1])
		if r >= '0' && r <= '9' {
			break
		}
		end--
	}
	return s[:end], s[end:]
}

func parseClock(s string) (h, m, sec int, ok bool) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, 0, 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, 0, false
	}
	m, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, 0, false
	}
	if len(parts) == 3 {
		sec, err = strconv.Atoi(parts[2])
		if err != nil {
			return 0, 0, 0, false
		}
		m += sec / 60
		sec %= 60
	}
	// Overflowing minutes carry into the hour; the hour wraps at 24.
	h += m / 60
	m %= 60
	h %= 24
	return h, m, sec, true
}

// scanMeridiem looks at the next one to three tokens after the time for
// a meridiem marker, preferring the longest match. It returns the token
// indices the match spans so the caller can consume them.
func scanMeridiem(tokens []token.Token, i, hour int) (meridiem, string, []int) {
	var span []int
	for j := i + 1; j < len(tokens) && len(span) < 3; j++ {
		if tokens[j].Empty() {
			continue
		}
		span = append(span, j)
	}
	for n := len(span); n >= 1; n-- {
		candidate := joinTokens(tokens, span[:n])
		if mer, sfx, ok := matchMeridiem(candidate, hour); ok {
			return mer, sfx, span[:n]
		}
	}
	return meridiemNone, "", nil
}

// joinTokens renders a run of tokens the way they appear in the input,
// with adjacent tokens kept tight and separated ones joined by a single
// space.
func joinTokens(tokens []token.Token, idxs []int) string {
	var b strings.Builder
	for n, j := range idxs {
		b.WriteString(tokens[j].Text)
		if n < len(idxs)-1 && tokens[j].WhitespaceAfter != "" {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

// matchMeridiem matches a candidate string against the marker tables.
// Spaces are stripped from both sides of the comparison so a detached
// suffix after a two-word marker still matches. The candidate may carry
// a leading izafe (ی or ي) and a trailing grammar suffix; both are
// peeled off. hour disambiguates شەو.
func matchMeridiem(candidate string, hour int) (meridiem, string, bool) {
	c := strings.ToLower(ckbscript.StripJoiners(candidate))
	c = strings.ReplaceAll(c, " ", "")
	c = strings.TrimPrefix(c, "ی")
	c = strings.TrimPrefix(c, "ي")
	if c == "" {
		return meridiemNone, "", false
	}
	if mer, sfx, ok := matchMarkerList(c, amMarkers, meridiemAM); ok {
		return mer, sfx, true
	}
	if mer, sfx, ok := matchMarkerList(c, pmMarkers, meridiemPM); ok {
		return mer, sfx, true
	}
	if rest, found := strings.CutPrefix(c, nightMarker); found {
		if rest != "" && !isGrammarSuffix(rest) {
			return meridiemNone, "", false
		}
		if hour == 12 || (hour >= 1 && hour <= 4) {
			return meridiemAM, rest, true
		}
		return meridiemPM, rest, true
	}
	return meridiemNone, "", false
}

func matchMarkerList(c string, markers []string, mer meridiem) (meridiem, string, bool) {
	for _, m := range markers {
		rest, found := strings.CutPrefix(c, strings.ReplaceAll(m, " ", ""))
		if !found {
			continue
		}
		if rest == "" || isGrammarSuffix(rest) {
			return mer, rest, true
		}
	}
	return meridiemNone, "", false
}

// dayPeriod names the part of day for a 24-hour value.
func dayPeriod(hour24 int) string {
	switch {
	case hour24 < 1:
		return "نیوەشەو"
	case hour24 < 4:
		return "شەو"
	case hour24 < 6:
		return "بەرەبەیان"
	case hour24 < 10:
		return "بەیانی"
	case hour24 < 12:
		return "پێش نیوەڕۆ"
	case hour24 < 14:
		return "نیوەڕۆ"
	case hour24 < 18:
		return "دوای نیوەڕۆ"
	case hour24 < 21:
		return "ئێوارە"
	default:
		return "شەو"
	}
}

// clockWords renders a clock reading. Without a meridiem marker an hour
// from one to twelve is read plainly, with no day period attached.
func clockWords(h, m, s int, mer meridiem) string {
	hour24 := h
	switch mer {
	case meridiemAM:
		hour24 = h % 12
	case meridiemPM:
		if h < 12 {
			hour24 = h + 12
		}
	}

	display := hour24 % 12
	if display == 0 {
		display = 12
	}
	hourWords := numtext.Integer(int64(display))

	// The midnight hour is its own explicit signal, like a marker or a
	// 24-hour reading.
	label := ""
	if mer != meridiemNone || h > 12 || h == 0 {
		label = dayPeriod(hour24)
	}

	var b strings.Builder
	switch {
	case m == 0:
		b.WriteString(hourWords)
	case m == 30:
		b.WriteString(hourWords + " و نیو")
	default:
		b.WriteString(hourWords + " و " + numtext.Integer(int64(m)) + " خولەک")
	}
	if label != "" {
		b.WriteString("ی " + label)
	}
	if s > 0 {
		b.WriteString(" و " + numtext.Integer(int64(s)) + " چرکە")
	}
	return b.String()
}
