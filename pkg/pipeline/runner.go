package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/newjenk/gridsystem/pkg/cache"
	apperr "github.com/newjenk/gridsystem/pkg/errors"
	"github.com/newjenk/gridsystem/pkg/grid"
	gio "github.com/newjenk/gridsystem/pkg/io"
	"github.com/newjenk/gridsystem/pkg/observability"
)

// Runner renders documents with caching.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can safely use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// TTL overrides the lifetime of cached classes. Zero keeps
	// cache.TTLClasses; artifacts never outlive cache.TTLArtifact.
	TTL time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// RenderBlock computes the class string of a single block, ignoring its
// inner blocks. The second result reports a cache hit.
func (r *Runner) RenderBlock(ctx context.Context, b gio.Block, opts Options) (BlockResult, bool, error) {
	k, err := b.Kind()
	if err != nil {
		return BlockResult{}, false, apperr.Wrap(apperr.ErrCodeInvalidBlock, err, "render")
	}
	res := BlockResult{Name: k.BlockName(), Kind: k.Name, Attributes: b.Attributes}

	if opts.Strict {
		if issues := grid.Validate(k, b.Attributes); len(issues) > 0 {
			msgs := make([]string, len(issues))
			for i, is := range issues {
				msgs[i] = is.Error()
			}
			code := issues[0].Err.Code
			return BlockResult{}, false, apperr.New(code, "%s: %s", k.BlockName(), strings.Join(msgs, "; "))
		}
	}

	attrsHash, hashErr := cache.HashJSON(b.Attributes)
	cacheKey := r.Keyer.ClassKey(k.Name, attrsHash, opts.ClassKeyOpts())

	if hashErr == nil && !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, "classes")
			res.Classes = string(data)
			res.Cached = true
			return res, true, nil
		} else if err != nil {
			r.Logger.Warn("cache read failed", "block", k.Name, "error", err)
		}
		observability.Cache().OnCacheMiss(ctx, "classes")
	}

	res.Classes = grid.Classes(k, b.Attributes, opts.Profile)

	if hashErr == nil {
		if err := r.Cache.Set(ctx, cacheKey, []byte(res.Classes), r.classTTL()); err != nil {
			r.Logger.Warn("cache write failed", "block", k.Name, "error", err)
		} else {
			observability.Cache().OnCacheSet(ctx, "classes", len(res.Classes))
		}
	}
	return res, false, nil
}

// RenderAll renders every block of doc, nested blocks included. Blocks are
// rendered concurrently; the result keeps document order.
func (r *Runner) RenderAll(ctx context.Context, doc *gio.Document, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	start := time.Now()
	total := doc.Count()
	observability.Render().OnRenderStart(ctx, total, opts.Profile.String())

	flat := flatten(doc.Blocks, nil)
	results := make([]BlockResult, len(flat))
	hits := make([]bool, len(flat))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Concurrency)
	for i, b := range flat {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, hit, err := r.RenderBlock(gctx, b, opts)
			if err != nil {
				return fmt.Errorf("block %d: %w", i, err)
			}
			results[i], hits[i] = res, hit
			observability.Render().OnBlockRendered(gctx, res.Name, len(strings.Fields(res.Classes)), hit)
			return nil
		})
	}
	err := g.Wait()
	duration := time.Since(start)
	observability.Render().OnRenderComplete(ctx, total, duration, err)
	if err != nil {
		return nil, err
	}

	out := &Result{Profile: opts.Profile}
	next := 0
	out.Blocks = rebuild(doc.Blocks, results, &next)
	out.Stats = Stats{Blocks: total, Duration: duration}
	for _, h := range hits {
		if h {
			out.Stats.CacheHits++
		}
	}

	r.Logger.Info("rendered blocks",
		"blocks", total,
		"cache_hits", out.Stats.CacheHits,
		"profile", opts.Profile,
		"duration", duration)
	return out, nil
}

// Artifact renders doc and serializes it in opts.Format, caching the
// serialized bytes. The second result reports a cache hit.
func (r *Runner) Artifact(ctx context.Context, doc *gio.Document, opts Options) ([]byte, bool, error) {
	if err := opts.Validate(); err != nil {
		return nil, false, fmt.Errorf("invalid options: %w", err)
	}

	docHash, hashErr := cache.HashJSON(doc)
	cacheKey := r.Keyer.ArtifactKey(docHash, opts.ArtifactKeyOpts())

	if hashErr == nil && !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, "artifact")
			r.Logger.Debug("artifact from cache", "format", opts.Format)
			return data, true, nil
		}
		observability.Cache().OnCacheMiss(ctx, "artifact")
	}

	res, err := r.RenderAll(ctx, doc, opts)
	if err != nil {
		return nil, false, err
	}
	data, err := Serialize(res, opts.Format)
	if err != nil {
		return nil, false, err
	}

	if hashErr == nil {
		if err := r.Cache.Set(ctx, cacheKey, data, r.artifactTTL()); err == nil {
			observability.Cache().OnCacheSet(ctx, "artifact", len(data))
		}
	}
	return data, false, nil
}

func (r *Runner) classTTL() time.Duration {
	if r.TTL > 0 {
		return r.TTL
	}
	return cache.TTLClasses
}

func (r *Runner) artifactTTL() time.Duration {
	if r.TTL > 0 && r.TTL < cache.TTLArtifact {
		return r.TTL
	}
	return cache.TTLArtifact
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// flatten lists blocks in pre-order.
func flatten(blocks []gio.Block, out []gio.Block) []gio.Block {
	for _, b := range blocks {
		out = append(out, b)
		out = flatten(b.InnerBlocks, out)
	}
	return out
}

// rebuild restores the block tree from pre-order results.
func rebuild(blocks []gio.Block, results []BlockResult, next *int) []BlockResult {
	out := make([]BlockResult, len(blocks))
	for i, b := range blocks {
		out[i] = results[*next]
		*next++
		if len(b.InnerBlocks) > 0 {
			out[i].InnerBlocks = rebuild(b.InnerBlocks, results, next)
		}
	}
	return out
}
