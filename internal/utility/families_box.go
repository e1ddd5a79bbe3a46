package utility

import "maps"

func boxFamilies(t *Tables) []Parser {
	sizes := map[string]string{
		"auto": "auto",
		"full": "100%",
		"min":  "min-content",
		"max":  "max-content",
		"fit":  "fit-content",
	}
	widths := withKeys(sizes, map[string]string{
		"screen": "100vw",
		"svw":    "100svw",
		"lvw":    "100lvw",
		"dvw":    "100dvw",
	})
	heights := withKeys(sizes, map[string]string{
		"screen": "100vh",
		"svh":    "100svh",
		"lvh":    "100lvh",
		"dvh":    "100dvh",
	})
	maxWidths := withKeys(sizes, t.MaxWidths)
	delete(maxWidths, "auto")
	maxHeights := withKeys(heights, map[string]string{"none": "none"})

	return []Parser{
		sided("padding", CategorySpacing, false, map[string][]string{
			"p-":  {"padding"},
			"px-": {"padding-left", "padding-right"},
			"py-": {"padding-top", "padding-bottom"},
			"ps-": {"padding-inline-start"},
			"pe-": {"padding-inline-end"},
			"pt-": {"padding-top"},
			"pr-": {"padding-right"},
			"pb-": {"padding-bottom"},
			"pl-": {"padding-left"},
		}, t.spacing),
		sided("margin", CategorySpacing, true, map[string][]string{
			"m-":  {"margin"},
			"mx-": {"margin-left", "margin-right"},
			"my-": {"margin-top", "margin-bottom"},
			"ms-": {"margin-inline-start"},
			"me-": {"margin-inline-end"},
			"mt-": {"margin-top"},
			"mr-": {"margin-right"},
			"mb-": {"margin-bottom"},
			"ml-": {"margin-left"},
		}, func(v string) (string, bool) {
			return t.length(v, map[string]string{"auto": "auto"}, false)
		}),
		sided("gap", CategoryFlexGrid, false, map[string][]string{
			"gap-":   {"gap"},
			"gap-x-": {"column-gap"},
			"gap-y-": {"row-gap"},
		}, t.spacing),
		sided("width", CategorySizing, false, map[string][]string{
			"w-": {"width"},
		}, func(v string) (string, bool) { return t.length(v, widths, true) }),
		sided("height", CategorySizing, false, map[string][]string{
			"h-": {"height"},
		}, func(v string) (string, bool) { return t.length(v, heights, true) }),
		sided("size", CategorySizing, false, map[string][]string{
			"size-": {"width", "height"},
		}, func(v string) (string, bool) { return t.length(v, sizes, true) }),
		sided("min-width", CategorySizing, false, map[string][]string{
			"min-w-": {"min-width"},
		}, func(v string) (string, bool) { return t.length(v, widths, true) }),
		sided("min-height", CategorySizing, false, map[string][]string{
			"min-h-": {"min-height"},
		}, func(v string) (string, bool) { return t.length(v, heights, true) }),
		sided("max-width", CategorySizing, false, map[string][]string{
			"max-w-": {"max-width"},
		}, func(v string) (string, bool) { return t.length(v, maxWidths, true) }),
		sided("max-height", CategorySizing, false, map[string][]string{
			"max-h-": {"max-height"},
		}, func(v string) (string, bool) { return t.length(v, maxHeights, true) }),
	}
}

// withKeys returns a copy of base extended with extra.
func withKeys(base, extra map[string]string) map[string]string {
	out := maps.Clone(base)
	maps.Copy(out, extra)
	return out
}
