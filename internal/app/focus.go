package app

import (
	"fmt"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/atomicstack/pixelmenu/internal/menu"
)

// Focus highlights the entry of root whose label best matches query and
// returns that label. Ties go to the earlier entry.
func Focus(root *menu.Menu, query string) (string, error) {
	trimmed := strings.TrimSpace(query)
	labels := root.Labels()
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) == 0 {
		return "", fmt.Errorf("no entry in %q matches %q", root.Title(), trimmed)
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance || (rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex) {
			best = rank
		}
	}
	if err := root.Focus(best.OriginalIndex); err != nil {
		return "", err
	}
	return labels[best.OriginalIndex], nil
}
