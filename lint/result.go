package lint

// AnyFailed reports whether any file in the run failed or was missing.
// This is the only cross-file state of a run.
func AnyFailed(results []FileResult) bool {
	for _, result := range results {
		if result.Failed() {
			return true
		}
	}

	return false
}
