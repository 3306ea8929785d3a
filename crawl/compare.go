package crawl

// ContentDiffers compares the parser heuristic's extraction against
// the readability extractor's. Returns true if the readability result
// is significantly longer (>50%), suggesting the heuristic picked a
// container that misses most of the article. An empty heuristic result
// always loses to a non-empty readability one.
func ContentDiffers(heuristicHTML, readabilityHTML string) bool {
	hLen := len(heuristicHTML)
	rLen := len(readabilityHTML)

	if hLen == 0 {
		return rLen > 0
	}

	threshold := float64(hLen) * 1.5
	return float64(rLen) > threshold
}
