package constants

// LanguageHintAuto is the hint value meaning "no specific language known".
const LanguageHintAuto = "auto"

// LanguageMultiEuropean is the widest recognition set we offer.
const LanguageMultiEuropean = "multi_european"

// LanguageCodes maps a caller-facing language hint to the tesseract language
// set passed to the engine. "auto" deliberately uses a smaller set than
// "multi_european": every extra language slows recognition and adds
// confusion pairs.
var LanguageCodes = map[string]string{
	"german":              "deu",
	"english":             "eng",
	"spanish":             "spa",
	"french":              "fra",
	"italian":             "ita",
	"portuguese":          "por",
	"dutch":               "nld",
	LanguageHintAuto:      "deu+eng+spa+fra",
	LanguageMultiEuropean: "deu+eng+spa+fra+ita+por+nld",
}

// ResolveLanguage returns the tesseract language set for a hint. Unknown
// hints are treated as raw tesseract codes so callers may pass "eng+fra"
// style sets directly; an empty hint falls back to auto.
func ResolveLanguage(hint string) string {
	if hint == "" {
		hint = LanguageHintAuto
	}
	if code, ok := LanguageCodes[hint]; ok {
		return code
	}
	return hint
}

// IsConcreteLanguage reports whether the hint names a single language rather
// than the auto/multi fallback sets.
func IsConcreteLanguage(hint string) bool {
	if hint == LanguageHintAuto || hint == LanguageMultiEuropean || hint == "" {
		return false
	}
	_, known := LanguageCodes[hint]
	return known
}
