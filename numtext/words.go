// Word tables for Sorani Kurdish number-to-text conversion.
package numtext

const (
	maxAbs  int64 = 1_000_000_000_000_000_000
	hundred int64 = 100

	// WordNegative is the spoken sign prefix for negative numbers.
	WordNegative = "سالب"
	// WordZero is the cardinal zero, also used for digit-by-digit reading.
	WordZero = "سفر"

	wordHundred = "سەد"
	joiner      = " و "
)

var ones = [10]string{
	"سفر",
	"یەک",
	"دوو",
	"سێ",
	"چوار",
	"پێنج",
	"شەش",
	"حەوت",
	"ھەشت",
	"نۆ",
}

// teens is indexed by n-10 for n in [10, 19].
var teens = [10]string{
	"دە",
	"یازدە",
	"دوازدە",
	"سیازدە",
	"چواردە",
	"پازدە",
	"شازدە",
	"حەڤدە",
	"ھەژدە",
	"نۆزدە",
}

// tens is indexed by tens digit (2–9); indexes 0 and 1 are unused
// (values below 20 are read from ones and teens).
var tens = [10]string{
	"",
	"",
	"بیست",
	"سی",
	"چل",
	"پەنجا",
	"شەست",
	"حەفتا",
	"ھەشتا",
	"نەوەد",
}

type magnitude struct {
	value int64
	word  string
}

// magnitudes lists named powers of ten from largest to smallest.
// سەد (100) is handled within group conversion and is not listed here.
var magnitudes = []magnitude{
	{value: 1_000_000_000_000_000_000, word: "کوینتلیۆن"},
	{value: 1_000_000_000_000_000, word: "کوادرلیۆن"},
	{value: 1_000_000_000_000, word: "ترلیۆن"},
	{value: 1_000_000_000, word: "ملیار"},
	{value: 1_000_000, word: "ملیۆن"},
	{value: 1_000, word: "ھەزار"},
}
