// Package pipeline renders block documents to class strings and serialized
// markup, with caching. The CLI and the HTTP server both go through it, so
// validation, caching and output formats behave the same everywhere.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	res, err := runner.RenderAll(ctx, doc, pipeline.Options{Profile: grid.Canonical})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	html, err := pipeline.Serialize(res, pipeline.FormatHTML)
//
// [Runner.Artifact] does both steps and caches the serialized output.
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/newjenk/gridsystem/pkg/cache"
	apperr "github.com/newjenk/gridsystem/pkg/errors"
	"github.com/newjenk/gridsystem/pkg/grid"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

// DefaultFormat is the output format used when none is given.
const DefaultFormat = FormatText

// DefaultConcurrency bounds the number of blocks rendered at once.
const DefaultConcurrency = 8

// Format constants for output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatHTML = "html"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatText: true,
	FormatJSON: true,
	FormatHTML: true,
}

// =============================================================================
// Options - Render Configuration
// =============================================================================

// Options configures a render. It supports JSON for API requests.
type Options struct {
	Profile grid.Profile `json:"profile"`
	Format  string       `json:"format,omitempty"`

	// Strict rejects blocks whose attributes fall outside the editor
	// control domains.
	Strict bool `json:"strict,omitempty"`

	// Refresh skips cache reads. Results are still written back.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Concurrency int         `json:"-"`
	Logger      *log.Logger `json:"-"`
}

// Result is a rendered document.
type Result struct {
	Profile grid.Profile  `json:"profile"`
	Blocks  []BlockResult `json:"blocks"`
	Stats   Stats         `json:"-"`
}

// BlockResult is the class string of one block and its rendered children.
type BlockResult struct {
	Name        string          `json:"name"`
	Kind        string          `json:"kind"`
	Classes     string          `json:"classes"`
	Cached      bool            `json:"-"` // served from the cache; never serialized
	Attributes  grid.Attributes `json:"-"`
	InnerBlocks []BlockResult   `json:"innerBlocks,omitempty"`
}

// Stats contains render statistics.
type Stats struct {
	Blocks    int
	CacheHits int
	Duration  time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return apperr.New(apperr.ErrCodeInvalidFormat, "invalid format: %q (must be one of: text, json, html)", format)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// SetDefaults fills unset fields.
func (o *Options) SetDefaults() {
	if o.Format == "" {
		o.Format = DefaultFormat
	}
	if o.Concurrency <= 0 {
		o.Concurrency = DefaultConcurrency
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Validate applies defaults and checks the options.
func (o *Options) Validate() error {
	o.SetDefaults()
	if o.Profile != grid.Canonical && o.Profile != grid.Legacy {
		return apperr.New(apperr.ErrCodeInvalidProfile, "invalid profile: %v", o.Profile)
	}
	return ValidateFormat(o.Format)
}

// ClassKeyOpts returns cache key options for a block result.
func (o *Options) ClassKeyOpts() cache.ClassKeyOpts {
	return cache.ClassKeyOpts{
		Profile: o.Profile.String(),
		Strict:  o.Strict,
	}
}

// ArtifactKeyOpts returns cache key options for a serialized document.
func (o *Options) ArtifactKeyOpts() cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:  o.Format,
		Profile: o.Profile.String(),
		Strict:  o.Strict,
	}
}
