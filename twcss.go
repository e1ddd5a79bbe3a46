// Package twcss compiles utility class tokens into CSS.
//
// A token such as "md:hover:bg-blue-600" is split into its modifier chain
// and base class, the base class is dispatched to the utility family owning
// its prefix, and the declarations are wrapped in the selector and at-rules
// the modifiers ask for.
//
// # Compiling
//
//	gen, err := twcss.New()
//	session := gen.NewSession()
//	err = session.AddClasses([]string{"p-4", "hover:bg-blue-600", "md:text-lg"})
//	css := session.GenerateCSS()
//
// A Generator is immutable and may be shared; create one Session per
// stylesheet.
//
// # Building and linting
//
// Build scans source files for class attributes and writes one stylesheet:
//
//	result, err := twcss.Build(twcss.BuildConfig{
//		Content: []string{"web/**/*.templ"},
//		Output:  "web/static/app.css",
//	})
//
// Lint reports unknown classes, invalid values and conflicting classes in
// golangci-lint format:
//
//	result, err := twcss.Lint(twcss.LintConfig{ScanPaths: []string{"web/**/*.templ"}})
//
// # CLI Tool
//
//	go install github.com/yacobolo/twcss/cmd/twcss@latest
package twcss
