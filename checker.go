// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package antcompile

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/antimony-lang/antcompile/analysis"
	"github.com/antimony-lang/antcompile/ast"
	"github.com/antimony-lang/antcompile/parsetree"
	"github.com/antimony-lang/antcompile/report"
)

// Result is the completed analysis of one file. It is immutable and
// safe for concurrent queries.
type Result struct {
	// The path the file was resolved under.
	Path string
	// The typed AST built from the parse tree.
	AST *ast.File
	// The analyzer holding the symbol table and query surface.
	Analysis *analysis.Analyzer
}

// Issues returns all diagnostics for this file: semantic, then syntax.
func (r *Result) Issues() report.Report {
	return r.Analysis.Issues()
}

// Analyze builds and analyzes a single parse tree.
//
// The returned error is only ever a contract violation between the
// external parser and this module, such as an unknown grammar tag;
// problems with the user's source come back as issues on the Result.
func Analyze(tree parsetree.Node) (*Result, error) {
	file, err := ast.Build(tree)
	if err != nil {
		return nil, err
	}
	return &Result{AST: file, Analysis: analysis.New(file)}, nil
}

// Checker analyzes batches of files. Files are independent, so the only
// coordination is a bound on parallelism.
type Checker struct {
	// Resolves paths into parse trees. Required.
	Resolver Resolver
	// The maximum parallelism to use. If unspecified or non-positive,
	// min(runtime.NumCPU(), runtime.GOMAXPROCS(-1)) is used.
	MaxParallelism int
}

// Check analyzes the given paths and returns one Result per path, in
// order. The first resolution or build error fails the whole batch;
// per-file diagnostics never do.
func (c *Checker) Check(ctx context.Context, paths ...string) ([]*Result, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	par := c.MaxParallelism
	if par <= 0 {
		par = runtime.GOMAXPROCS(-1)
		if cpus := runtime.NumCPU(); par > cpus {
			par = cpus
		}
	}

	sem := semaphore.NewWeighted(int64(par))
	results := make([]*Result, len(paths))
	errs := make([]error, len(paths))

	var wg sync.WaitGroup
	for i, path := range paths {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := sem.Acquire(ctx, 1); err != nil {
				errs[i] = err
				return
			}
			defer sem.Release(1)
			results[i], errs[i] = c.check(path)
		}()
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("%s: %w", paths[i], err)
		}
	}
	return results, nil
}

func (c *Checker) check(path string) (*Result, error) {
	tree, err := c.Resolver.FindTreeByPath(path)
	if err != nil {
		return nil, err
	}
	result, err := Analyze(tree)
	if err != nil {
		return nil, err
	}
	result.Path = path
	return result, nil
}
