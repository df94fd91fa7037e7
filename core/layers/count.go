package layers

import "gerber-estimate/core/types"

// MinimumOrderLayers is the smallest stack-up accepted for an order
const MinimumOrderLayers = 2

// Count returns the copper layers evidenced by classified files: one for any
// top, one per inner file, one for any bottom
func Count(classified []types.Layer) int {
	var top, bottom bool
	inner := 0
	for _, l := range classified {
		switch l {
		case types.LayerTopCopper:
			top = true
		case types.LayerBottomCopper:
			bottom = true
		case types.LayerInnerCopper:
			inner++
		}
	}

	count := inner
	if top {
		count++
	}
	if bottom {
		count++
	}
	return count
}

// NormalizeCount applies order policy to a detected count. An unlabeled job
// still has a top layer, and a single copper layer is raised to a
// double-sided board. provided is the number of payloads the caller supplied.
func NormalizeCount(count, provided int) int {
	if count == 0 && provided > 0 {
		count = 1
	}
	if count == 1 {
		count = MinimumOrderLayers
	}
	return count
}
