// Package pkg provides the libraries behind the strata command.
//
// # Overview
//
// Strata settles a glass of liquids into layers: a rectangular grid of
// tokens is reordered by density, lightest first in row-major order, while
// keeping its shape and the order of equal liquids. The pkg directory is
// organized into three areas:
//
//  1. [strata] - The engine (grids, weight tables, ordering strategies)
//  2. [pipeline] - Orchestration (table loading and caching → stratify)
//  3. Support: [io] file formats, [cache] compiled tables, [errors] coded
//     errors, [observability] hooks, [buildinfo] version info
//
// # Architecture
//
// The typical data flow through strata:
//
//	glass file (.glass, .txt, .json)      table file (.toml, .yaml, .json)
//	         ↓                                     ↓
//	    [io] package                          [io] package
//	         ↓                                     ↓
//	         └──────→ [pipeline] package ←── [cache] package
//	                         ↓
//	                  [strata] package (flatten → order → reshape)
//	                         ↓
//	                   settled glass
//
// # Quick Start
//
// Settle a glass with the built-in table:
//
//	import "github.com/matzehuels/strata/pkg/strata"
//
//	settled, err := strata.Stratify(strata.Grid{
//	    {"H", "W"},
//	    {"O", "A"},
//	}, nil)
//	// [[O A] [W H]]
//
// Settle a file through the pipeline, with a custom table:
//
//	import (
//	    "github.com/matzehuels/strata/pkg/cache"
//	    "github.com/matzehuels/strata/pkg/io"
//	    "github.com/matzehuels/strata/pkg/pipeline"
//	)
//
//	g, _ := io.ImportGrid("glass.txt", "")
//	tables, _ := cache.NewARCCache(cache.DefaultSize)
//	runner := pipeline.NewRunner(tables, logger)
//	result, _ := runner.Execute(ctx, g, pipeline.Options{TablePath: "metals.yaml"})
//
// # Strategies
//
// [strata.Buckets] is a counting sort over the distinct weights of the
// table and the default. [strata.StableSort] is a general stable comparison
// sort. Both give identical output; [pipeline.Runner.Compare] and the
// strata bench command time them against each other.
package pkg
