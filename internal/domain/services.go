package domain

// serviceLabels maps known service codes to their Arabic display
// labels. The catalog is advisory: unknown codes are accepted
// everywhere and displayed via the raw code, so existing marketing
// links with new codes keep working without a deploy.
var serviceLabels = map[string]string{
	"teeth-whitening":    "تبييض الأسنان",
	"hollywood-smile":    "ابتسامة هوليوود",
	"dental-implants":    "زراعة الأسنان",
	"orthodontics":       "تقويم الأسنان",
	"dental-crowns":      "تركيبات الأسنان",
	"children-dentistry": "طب أسنان الأطفال",
	"root-canal":         "علاج العصب",
	"gum-treatment":      "علاج اللثة",
	"dental-cleaning":    "تنظيف الأسنان",
	"consultation":       "استشارة عامة",
}

// ServiceLabelFor returns the display label for a service code,
// falling back to the raw code when the catalog does not know it.
func ServiceLabelFor(code string) string {
	if label, ok := serviceLabels[code]; ok {
		return label
	}
	return code
}

// KnownService reports whether the code is in the catalog. Used for
// display decisions only, never for validation.
func KnownService(code string) bool {
	_, ok := serviceLabels[code]
	return ok
}
