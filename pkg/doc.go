// Package pkg holds the libraries behind gridsystem.
//
// The data flow of a render:
//
//	block document (json, yaml, toml)
//	         ↓
//	    [io] package (decode blocks and attribute records)
//	         ↓
//	    [grid] package (resolve the cascade, emit classes)
//	         ↓
//	    [pipeline] package (cache, fan out, serialize)
//	         ↓
//	    text, JSON or HTML
//
// # Packages
//
// [grid] is the engine: breakpoints, block kinds, attribute values, the
// resolver, the emitter and the editor-control validator. It has no
// dependencies outside the standard library and never fails on odd input.
//
// [io] reads and writes block documents. A file may hold a document with
// nested innerBlocks, a list of blocks, or a bare attribute record.
//
// [pipeline] renders documents through a [cache] with bounded concurrency and
// serializes the result. The CLI and the HTTP server both go through it.
//
// [cache] stores rendered classes and artifacts in a file tree or in Redis.
//
// [render/dot] draws the cascade of a single block with Graphviz.
//
// [errors] defines the coded errors shared by the CLI and the server, and
// [observability] the render, cache and HTTP hooks.
//
// [io]: https://pkg.go.dev/github.com/newjenk/gridsystem/pkg/io
// [grid]: https://pkg.go.dev/github.com/newjenk/gridsystem/pkg/grid
// [pipeline]: https://pkg.go.dev/github.com/newjenk/gridsystem/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/newjenk/gridsystem/pkg/cache
// [render/dot]: https://pkg.go.dev/github.com/newjenk/gridsystem/pkg/render/dot
// [errors]: https://pkg.go.dev/github.com/newjenk/gridsystem/pkg/errors
// [observability]: https://pkg.go.dev/github.com/newjenk/gridsystem/pkg/observability
package pkg
