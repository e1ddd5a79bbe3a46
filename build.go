package twcss

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// BuildConfig configures Build
type BuildConfig struct {
	Content        []string        // Globs of files to scan for classes ("web/**/*.templ")
	Output         string          // Stylesheet path; ignored when Writer is set
	Writer         io.Writer       // Optional destination instead of Output
	Generator      *Generator      // nil uses New() with Logger
	PostProcessors []PostProcessor // Applied to the emitted CSS in order
	Logger         *zap.Logger
}

// BuildResult summarises a build
type BuildResult struct {
	FilesScanned int
	ClassesFound int      // distinct tokens found
	Compiled     int      // tokens that compiled
	Rules        int      // rules in the stylesheet
	Bytes        int      // size of the written stylesheet
	Warnings     []string // per-class failures and unreadable files
}

// Build scans content, compiles every class into one session and writes the
// stylesheet. Classes that fail to compile become warnings.
func Build(config BuildConfig) (*BuildResult, error) {
	log := config.Logger
	if log == nil {
		log = zap.NewNop()
	}
	if config.Writer == nil && config.Output == "" {
		return nil, fmt.Errorf("no output: set Output or Writer")
	}

	gen := config.Generator
	if gen == nil {
		var err error
		if gen, err = New(WithLogger(log)); err != nil {
			return nil, err
		}
	}

	// 1. Scan content files
	refs, stats, err := ScanFiles(config.Content, log)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}
	result := &BuildResult{FilesScanned: stats.FilesScanned}
	if stats.FilesFailed > 0 {
		result.Warnings = append(result.Warnings, fmt.Sprintf("%d file(s) could not be read", stats.FilesFailed))
	}

	// 2. Compile
	tokens := UniqueTokens(refs)
	result.ClassesFound = len(tokens)

	session := gen.NewSession()
	for _, err := range multierr.Errors(session.AddClasses(tokens)) {
		result.Warnings = append(result.Warnings, err.Error())
	}
	result.Compiled = len(session.Classes())
	result.Rules = session.Len()

	// 3. Post-process
	css, err := PostProcess(session.GenerateCSS(), config.PostProcessors...)
	if err != nil {
		return nil, fmt.Errorf("post-process failed: %w", err)
	}
	result.Bytes = len(css)

	// 4. Write
	if err := writeStylesheet(config, css); err != nil {
		return nil, fmt.Errorf("write failed: %w", err)
	}

	log.Info("stylesheet built",
		zap.String("output", config.Output),
		zap.Int("classes", result.ClassesFound),
		zap.Int("rules", result.Rules),
		zap.Int("warnings", len(result.Warnings)))
	return result, nil
}

func writeStylesheet(config BuildConfig, css string) error {
	if config.Writer != nil {
		_, err := io.WriteString(config.Writer, css)
		return err
	}

	if dir := filepath.Dir(config.Output); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(config.Output, []byte(css), 0o644)
}
