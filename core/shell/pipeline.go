package shell

// SplitPipeline partitions tokens into pipeline stages at `|` separators.
// The boolean reports whether the line contained a pipe at all; when it is
// false callers take the single-command path. Empty stages produced by
// leading, trailing or doubled separators are silently skipped, so a line
// of only separators yields a pipeline with no stages.
func SplitPipeline(tokens []string) ([][]string, bool) {
	hasPipe := false
	for _, tok := range tokens {
		if tok == "|" {
			hasPipe = true
			break
		}
	}
	if !hasPipe {
		return nil, false
	}

	var stages [][]string
	var current []string
	for _, tok := range tokens {
		if tok == "|" {
			if len(current) > 0 {
				stages = append(stages, current)
				current = nil
			}
			continue
		}
		current = append(current, tok)
	}
	if len(current) > 0 {
		stages = append(stages, current)
	}
	return stages, true
}
