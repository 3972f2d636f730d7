package content

import (
	"github.com/musantuli/portfolio/internal/filter"
	"github.com/musantuli/portfolio/internal/types"
)

// Fallback values for tags missing from the lookup tables.
const (
	DefaultLanguageColor = "#6c757d"
	DefaultCategoryColor = "from-gray-500 to-gray-600"
	DefaultCategoryIcon  = "graduation-cap"
	DefaultSkillIcon     = "wrench"
)

var languageColors = map[string]string{
	"JavaScript": "#f7df1e",
	"TypeScript": "#3178c6",
	"Python":     "#3776ab",
	"Java":       "#ed8b00",
	"C#":         "#239120",
	"C++":        "#00599c",
	"Go":         "#00add8",
	"Rust":       "#000000",
	"PHP":        "#777bb4",
	"Ruby":       "#cc342d",
	"Swift":      "#fa7343",
	"Kotlin":     "#7f52ff",
	"HTML":       "#e34f26",
	"CSS":        "#1572b6",
	"Vue":        "#4fc08d",
	"React":      "#61dafb",
	"Angular":    "#dd0031",
	"Node.js":    "#339933",
}

var categoryColors = map[string]string{
	types.CategoryCloud:       "from-orange-500 to-red-500",
	types.CategoryProgramming: "from-green-500 to-emerald-500",
	types.CategoryManagement:  "from-purple-500 to-pink-500",
	types.CategoryDevOps:      "from-blue-500 to-cyan-500",
}

var categoryIcons = map[string]string{
	types.CategoryCloud:       "cloud",
	types.CategoryProgramming: "code",
	types.CategoryManagement:  "briefcase",
	types.CategoryDevOps:      "wrench",
}

var skillIcons = map[string]string{
	"Frontend": "code",
	"Backend":  "wrench",
	"Cloud":    "cloud",
	"Tools":    "wrench",
}

// LanguageColor returns the badge colour of a programming language.
func LanguageColor(language string) string {
	return lookup(languageColors, language, DefaultLanguageColor)
}

// CategoryColor returns the gradient classes of a certificate category.
func CategoryColor(category string) string {
	return lookup(categoryColors, category, DefaultCategoryColor)
}

// CategoryIcon returns the icon name of a certificate category.
func CategoryIcon(category string) string {
	return lookup(categoryIcons, category, DefaultCategoryIcon)
}

// SkillIcon returns the icon name of a skill group.
func SkillIcon(group string) string {
	return lookup(skillIcons, group, DefaultSkillIcon)
}

func lookup(m map[string]string, key, def string) string {
	if v, ok := m[key]; ok {
		return v
	}
	return def
}

// CertificateCategories returns the certificate filter tabs in display order.
// The first tab selects every certificate.
func CertificateCategories() []filter.Tab {
	return []filter.Tab{
		{Label: "All", Value: types.CategoryAll, Icon: DefaultCategoryIcon},
		{Label: "Cloud", Value: types.CategoryCloud, Icon: CategoryIcon(types.CategoryCloud)},
		{Label: "Programming", Value: types.CategoryProgramming, Icon: CategoryIcon(types.CategoryProgramming)},
		{Label: "Management", Value: types.CategoryManagement, Icon: CategoryIcon(types.CategoryManagement)},
		{Label: "DevOps", Value: types.CategoryDevOps, Icon: CategoryIcon(types.CategoryDevOps)},
	}
}

// IsCategory reports whether category is a known certificate category or All.
func IsCategory(category string) bool {
	if category == types.CategoryAll {
		return true
	}
	_, ok := categoryColors[category]
	return ok
}
