package utility

// Defaults returns the built-in family set resolving values against t.
// The returned parsers hold t by reference; t must not change afterwards.
func Defaults(t *Tables) []Parser {
	if t == nil {
		t = DefaultTables()
	}

	var out []Parser
	for _, group := range [][]Parser{
		layoutFamilies(t),
		boxFamilies(t),
		flexFamilies(t),
		typographyFamilies(t),
		colorFamilies(t),
		borderFamilies(t),
		effectFamilies(t),
		motionFamilies(t),
		interactivityFamilies(),
		{arbitraryPropertyFamily(), markerFamily()},
	} {
		out = append(out, group...)
	}
	return out
}
