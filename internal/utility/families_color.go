package utility

import (
	"strings"

	"github.com/yacobolo/twcss/internal/value"
)

// colorFamily maps "<prefix><color>" to a single color property.
func colorFamily(name string, cat Category, prefix, property string, t *Tables, extra map[string]string) *Family {
	return &Family{
		Name:     name,
		Prefixes: []string{prefix},
		Cat:      cat,
		Fn: func(class string) ([]Declaration, bool) {
			v, ok := strings.CutPrefix(class, prefix)
			if !ok {
				return nil, false
			}
			if s, ok := extra[v]; ok {
				return one(property, s), true
			}
			c, ok := t.color(v)
			return one(property, c), ok
		},
	}
}

func colorFamilies(t *Tables) []Parser {
	return []Parser{
		colorFamily("background-color", CategoryBackgrounds, "bg-", "background-color", t, nil),
		withPriority(backgroundFamily(), 10),
		Keyword("background-clip", CategoryBackgrounds, "bg-clip-", "background-clip", map[string]string{
			"border":  "border-box",
			"padding": "padding-box",
			"content": "content-box",
			"text":    "text",
		}),
		Keyword("background-origin", CategoryBackgrounds, "bg-origin-", "background-origin", map[string]string{
			"border":  "border-box",
			"padding": "padding-box",
			"content": "content-box",
		}),
		colorFamily("fill", CategorySVG, "fill-", "fill", t, map[string]string{"none": "none"}),
		colorFamily("stroke", CategorySVG, "stroke-", "stroke", t, map[string]string{"none": "none"}),
		withPriority(&Family{
			Name:     "stroke-width",
			Prefixes: []string{"stroke-"},
			Cat:      CategorySVG,
			Fn: func(class string) ([]Declaration, bool) {
				v, ok := strings.CutPrefix(class, "stroke-")
				if !ok {
					return nil, false
				}
				if value.IsInteger(v) {
					return one("stroke-width", v), true
				}
				hint, e, ok := value.ExplicitTyped(v)
				if !ok || !isLength(hint, e) {
					return nil, false
				}
				return one("stroke-width", e), true
			},
		}, 10),
		colorFamily("accent-color", CategoryInteractivity, "accent-", "accent-color", t, map[string]string{"auto": "auto"}),
		colorFamily("caret-color", CategoryInteractivity, "caret-", "caret-color", t, nil),
		&Family{
			Name:     "opacity",
			Prefixes: []string{"opacity-"},
			Cat:      CategoryEffects,
			Fn: func(class string) ([]Declaration, bool) {
				v, ok := strings.CutPrefix(class, "opacity-")
				if !ok {
					return nil, false
				}
				o, ok := scaled(v)
				return one("opacity", o), ok
			},
		},
	}
}

// backgroundFamily covers the bg- keywords and image values that are not colors.
func backgroundFamily() *Family {
	keywords := map[string]Declaration{
		"fixed":        {Property: "background-attachment", Value: "fixed"},
		"local":        {Property: "background-attachment", Value: "local"},
		"scroll":       {Property: "background-attachment", Value: "scroll"},
		"repeat":       {Property: "background-repeat", Value: "repeat"},
		"no-repeat":    {Property: "background-repeat", Value: "no-repeat"},
		"repeat-x":     {Property: "background-repeat", Value: "repeat-x"},
		"repeat-y":     {Property: "background-repeat", Value: "repeat-y"},
		"repeat-round": {Property: "background-repeat", Value: "round"},
		"repeat-space": {Property: "background-repeat", Value: "space"},
		"auto":         {Property: "background-size", Value: "auto"},
		"cover":        {Property: "background-size", Value: "cover"},
		"contain":      {Property: "background-size", Value: "contain"},
		"bottom":       {Property: "background-position", Value: "bottom"},
		"center":       {Property: "background-position", Value: "center"},
		"left":         {Property: "background-position", Value: "left"},
		"left-bottom":  {Property: "background-position", Value: "left bottom"},
		"left-top":     {Property: "background-position", Value: "left top"},
		"right":        {Property: "background-position", Value: "right"},
		"right-bottom": {Property: "background-position", Value: "right bottom"},
		"right-top":    {Property: "background-position", Value: "right top"},
		"top":          {Property: "background-position", Value: "top"},
		"none":         {Property: "background-image", Value: "none"},
	}
	return &Family{
		Name:     "background",
		Prefixes: []string{"bg-"},
		Cat:      CategoryBackgrounds,
		Fn: func(class string) ([]Declaration, bool) {
			v, ok := strings.CutPrefix(class, "bg-")
			if !ok {
				return nil, false
			}
			if d, ok := keywords[v]; ok {
				return []Declaration{d}, true
			}
			hint, e, ok := value.ExplicitTyped(v)
			if !ok {
				return nil, false
			}
			switch {
			case hint == "url" || hint == "image" || strings.HasPrefix(e, "url(") || strings.Contains(e, "gradient("):
				return one("background-image", e), true
			case hint == "length" || hint == "size":
				return one("background-size", e), true
			case hint == "position":
				return one("background-position", e), true
			}
			return nil, false
		},
	}
}
