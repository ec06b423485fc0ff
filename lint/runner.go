package lint

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Runner lints a list of files. Parallel is the worker count; zero or less
// means one worker per CPU. Files are independent units of work, so only
// per-file parallelism is applied; within a file the checks stay strictly
// sequential.
type Runner struct {
	Parallel int
}

// Run lints every path and returns results in argument order, so output is
// deterministic regardless of worker count.
func (r Runner) Run(paths []string) []FileResult {
	results := make([]FileResult, len(paths))

	workers := r.Parallel
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	if workers == 1 || len(paths) <= 1 {
		for i, path := range paths {
			results[i] = CheckFile(path)
		}

		return results
	}

	var g errgroup.Group

	g.SetLimit(workers)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			results[i] = CheckFile(path)
			return nil
		})
	}

	// Workers never return errors; failures are carried in the results.
	_ = g.Wait()

	return results
}
