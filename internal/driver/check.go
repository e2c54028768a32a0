package driver

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"ccparse/internal/diag"
	"ccparse/internal/source"
)

type CheckOptions struct {
	Options
	// Jobs bounds worker concurrency; 0 means one worker per CPU.
	Jobs int
	// Cache may be nil to disable cross-run caching.
	Cache *DiskCache
}

// CheckResult is the outcome for one path of a CheckPaths run.
type CheckResult struct {
	Path   string
	Result *Result
	// Cached marks commits restored from the disk cache without re-parsing.
	Cached bool
}

// Valid reports whether the message parsed without grammar errors.
func (r CheckResult) Valid() bool {
	return r.Result != nil && r.Result.Commit != nil
}

// CheckPaths parses every path concurrently and returns results in input
// order. Unreadable or invalid messages become diagnostics in the per-path
// Bag; the returned error is only for cancellation or internal failures.
func CheckPaths(ctx context.Context, paths []string, opts CheckOptions) ([]CheckResult, error) {
	results := make([]CheckResult, len(paths))
	if len(paths) == 0 {
		return results, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(paths)))

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			res, err := checkOne(path, opts)
			if err != nil {
				return err
			}
			// Index i is unique per goroutine, no mutex needed.
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func checkOne(path string, opts CheckOptions) (CheckResult, error) {
	fileSet := source.NewFileSet()
	fileID, err := fileSet.Load(path)
	if err != nil {
		bag := diag.NewBag(opts.maxDiagnostics())
		bag.Add(diag.Diagnostic{
			Severity: diag.SevError,
			Code:     diag.IOLoadFileError,
			Message:  "failed to load file: " + err.Error(),
			Primary:  source.Span{},
		})
		return CheckResult{
			Path:   path,
			Result: &Result{FileSet: fileSet, Bag: bag},
		}, nil
	}
	file := fileSet.Get(fileID)

	if commit, ok := opts.Cache.Get(file.Hash); ok {
		res := &Result{
			FileSet: fileSet,
			File:    file,
			Commit:  commit,
			Bag:     diag.NewBag(opts.maxDiagnostics()),
		}
		lintSubject(res, opts.Options)
		return CheckResult{Path: path, Result: res, Cached: true}, nil
	}

	res, err := tokenize(fileSet, fileID, opts.Options)
	if err != nil {
		return CheckResult{}, err
	}
	parse(res, opts.Options)

	if res.Commit != nil {
		// Cache failures are not worth failing the run over.
		_ = opts.Cache.Put(file.Hash, res.Commit)
	}
	return CheckResult{Path: path, Result: res}, nil
}
