package utility

import "strings"

// Category groups utility families for reporting
type Category string

// Utility categories
const (
	CategoryLayout        Category = "Layout"
	CategoryFlexGrid      Category = "FlexGrid"
	CategorySpacing       Category = "Spacing"
	CategorySizing        Category = "Sizing"
	CategoryTypography    Category = "Typography"
	CategoryBackgrounds   Category = "Backgrounds"
	CategoryBorders       Category = "Borders"
	CategoryEffects       Category = "Effects"
	CategoryFilters       Category = "Filters"
	CategoryTransforms    Category = "Transforms"
	CategoryTransitions   Category = "Transitions"
	CategoryInteractivity Category = "Interactivity"
	CategorySVG           Category = "SVG"
	CategoryArbitrary     Category = "Arbitrary"
)

// propertyCategories maps CSS property names to categories
var propertyCategories = map[string]Category{
	"display":          CategoryLayout,
	"position":         CategoryLayout,
	"visibility":       CategoryLayout,
	"z-index":          CategoryLayout,
	"overflow":         CategoryLayout,
	"float":            CategoryLayout,
	"clear":            CategoryLayout,
	"box-sizing":       CategoryLayout,
	"aspect-ratio":     CategoryLayout,
	"object-fit":       CategoryLayout,
	"object-position":  CategoryLayout,
	"isolation":        CategoryLayout,
	"inset":            CategoryLayout,
	"top":              CategoryLayout,
	"right":            CategoryLayout,
	"bottom":           CategoryLayout,
	"left":             CategoryLayout,
	"gap":              CategoryFlexGrid,
	"order":            CategoryFlexGrid,
	"justify-content":  CategoryFlexGrid,
	"align-items":      CategoryFlexGrid,
	"align-self":       CategoryFlexGrid,
	"align-content":    CategoryFlexGrid,
	"place-content":    CategoryFlexGrid,
	"width":            CategorySizing,
	"height":           CategorySizing,
	"min-width":        CategorySizing,
	"min-height":       CategorySizing,
	"max-width":        CategorySizing,
	"max-height":       CategorySizing,
	"color":            CategoryTypography,
	"content":          CategoryTypography,
	"white-space":      CategoryTypography,
	"word-break":       CategoryTypography,
	"vertical-align":   CategoryTypography,
	"background":       CategoryBackgrounds,
	"opacity":          CategoryEffects,
	"box-shadow":       CategoryEffects,
	"mix-blend-mode":   CategoryEffects,
	"filter":           CategoryFilters,
	"backdrop-filter":  CategoryFilters,
	"transform":        CategoryTransforms,
	"transform-origin": CategoryTransforms,
	"translate":        CategoryTransforms,
	"rotate":           CategoryTransforms,
	"scale":            CategoryTransforms,
	"transition":       CategoryTransitions,
	"animation":        CategoryTransitions,
	"cursor":           CategoryInteractivity,
	"pointer-events":   CategoryInteractivity,
	"user-select":      CategoryInteractivity,
	"resize":           CategoryInteractivity,
	"scroll-behavior":  CategoryInteractivity,
	"accent-color":     CategoryInteractivity,
	"caret-color":      CategoryInteractivity,
	"fill":             CategorySVG,
	"stroke":           CategorySVG,
	"stroke-width":     CategorySVG,
}

// PropertyCategory determines the category of a CSS property
func PropertyCategory(name string) Category {
	// Check exact match
	if cat, exists := propertyCategories[name]; exists {
		return cat
	}

	// Custom properties carry no category of their own
	if strings.HasPrefix(name, "--") {
		return CategoryArbitrary
	}

	switch {
	case strings.HasPrefix(name, "flex"), strings.HasPrefix(name, "grid"),
		strings.HasPrefix(name, "justify-"), strings.HasPrefix(name, "place-"):
		return CategoryFlexGrid
	case strings.HasPrefix(name, "padding"), strings.HasPrefix(name, "margin"):
		return CategorySpacing
	case strings.HasPrefix(name, "border"), strings.HasPrefix(name, "outline"):
		return CategoryBorders
	case strings.HasPrefix(name, "background"):
		return CategoryBackgrounds
	case strings.HasPrefix(name, "font"), strings.HasPrefix(name, "text-"),
		strings.HasPrefix(name, "line-"), strings.HasPrefix(name, "letter-"),
		strings.HasPrefix(name, "list-"):
		return CategoryTypography
	case strings.HasPrefix(name, "transition"), strings.HasPrefix(name, "animation"):
		return CategoryTransitions
	case strings.HasPrefix(name, "overflow"), strings.HasPrefix(name, "inset"):
		return CategoryLayout
	}

	return CategoryArbitrary
}
