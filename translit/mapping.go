// Mapping tables for transliteration into Sorani Kurdish.
package translit

// letterNames maps ASCII letters to their spoken English names in Kurdish
// script. Used for character-by-character spell-out of codes, URLs, and
// algebraic variables.
var letterNames = map[rune]string{
	'a': "ئەی",
	'b': "بی",
	'c': "سی",
	'd': "دی",
	'e': "ئی",
	'f': "ئێف",
	'g': "جی",
	'h': "ئێچ",
	'i': "ئای",
	'j': "جەی",
	'k': "کەی",
	'l': "ئێڵ",
	'm': "ئێم",
	'n': "ئێن",
	'o': "ئۆ",
	'p': "پی",
	'q': "کیو",
	'r': "ئاڕ",
	's': "ئێس",
	't': "تی",
	'u': "یو",
	'v': "ڤی",
	'w': "دەبڵیو",
	'x': "ئێکس",
	'y': "وای",
	'z': "زێد",
}

// symbolNames maps structural symbols inside codes, URLs, and addresses to
// spoken Kurdish words.
var symbolNames = map[rune]string{
	'.':  "دۆت",
	'-':  "داش",
	'_':  "ئەندەرسکۆر",
	'@':  "ئەت",
	'/':  "سلاش",
	'\\': "باک سلاش",
	':':  "کۆڵن",
	'+':  "کۆ",
	'#':  "ھاشتاگ",
	'?':  "پرسیار",
	'=':  "یەکسان",
	'&':  "ئەند",
}

// digraphs are two-letter Latin sequences read as a single Kurdish letter.
// Checked before single-letter rules.
var digraphs = map[string]string{
	"sh": "ش",
	"ch": "چ",
	"kh": "خ",
	"gh": "غ",
	"ph": "ف",
	"zh": "ژ",
	"th": "ت",
	"ck": "ک",
	"oo": "وو",
	"ee": "ی",
}

// latinRules maps lowercase Latin letters (plus the Kurmanji circumflex
// vowels, which must survive accent folding) to Sorani letters.
var latinRules = map[rune]string{
	'a': "ا",
	'b': "ب",
	'c': "ک",
	'd': "د",
	'e': "ێ",
	'f': "ف",
	'g': "گ",
	'h': "ھ",
	'i': "ی",
	'j': "ج",
	'k': "ک",
	'l': "ل",
	'm': "م",
	'n': "ن",
	'o': "ۆ",
	'p': "پ",
	'q': "ق",
	'r': "ر",
	's': "س",
	't': "ت",
	'u': "و",
	'v': "ڤ",
	'w': "و",
	'x': "کس",
	'y': "ی",
	'z': "ز",
	'ê': "ێ",
	'î': "ی",
	'û': "وو",
	'ş': "ش",
	'ç': "چ",
}

// initialRules override latinRules at the start of a word: Kurdish words
// never begin with a bare vowel letter, and initial r is always the trilled ڕ.
var initialRules = map[rune]string{
	'a': "ئا",
	'e': "ئێ",
	'i': "ئی",
	'o': "ئۆ",
	'u': "یو", // English word-initial u reads /ju/
	'ê': "ئێ",
	'î': "ئی",
	'r': "ڕ",
}

// cyrToLat folds Russian/Cyrillic letters to a Latin reading before the
// Latin rules apply. Lowercase only; the caller lowercases first.
var cyrToLat = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d",
	'е': "e", 'ё': "yo", 'ж': "zh", 'з': "z", 'и': "i",
	'й': "y", 'к': "k", 'л': "l", 'м': "m", 'н': "n",
	'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t",
	'у': "u", 'ф': "f", 'х': "kh", 'ц': "ts", 'ч': "ch",
	'ш': "sh", 'щ': "shch", 'ъ': "", 'ы': "y", 'ь': "",
	'э': "e", 'ю': "yu", 'я': "ya",
}

// greekToLat folds Greek letters to a Latin reading.
var greekToLat = map[rune]string{
	'α': "a", 'β': "v", 'γ': "g", 'δ': "d", 'ε': "e",
	'ζ': "z", 'η': "i", 'θ': "th", 'ι': "i", 'κ': "k",
	'λ': "l", 'μ': "m", 'ν': "n", 'ξ': "x", 'ο': "o",
	'π': "p", 'ρ': "r", 'σ': "s", 'ς': "s", 'τ': "t",
	'υ': "y", 'φ': "f", 'χ': "kh", 'ψ': "ps", 'ω': "o",
}
