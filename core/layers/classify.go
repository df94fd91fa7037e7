// Package layers classifies manufacturing files by name and counts copper layers.
// Classification never reads file content.
package layers

import (
	"path"
	"regexp"
	"strings"

	"gerber-estimate/core/types"
)

// rule matches a lower-cased filename by extension or keyword
type rule struct {
	layer      types.Layer
	extensions []string
	keywords   []string
	patterns   []*regexp.Regexp
}

func (r rule) matches(name string) bool {
	ext := path.Ext(name)
	for _, e := range r.extensions {
		if ext == e {
			return true
		}
	}
	for _, k := range r.keywords {
		if strings.Contains(name, k) {
			return true
		}
	}
	for _, p := range r.patterns {
		if p.MatchString(name) {
			return true
		}
	}
	return false
}

// rules are evaluated in order and the first match wins. Reordering changes
// how ambiguous names classify.
var rules = []rule{
	{
		layer:      types.LayerTopCopper,
		extensions: []string{".gtl", ".cmp"},
		keywords:   []string{"f_cu", "f.cu", "top_copper", "copper_top", "toplayer"},
	},
	{
		layer:      types.LayerBottomCopper,
		extensions: []string{".gbl", ".sol"},
		keywords:   []string{"b_cu", "b.cu", "bottom_copper", "copper_bottom", "bottomlayer"},
	},
	{
		layer:    types.LayerInnerCopper,
		keywords: []string{"inner"},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`\.(g|gp|in)\d+$`),
			regexp.MustCompile(`in\d+[_.]cu`),
		},
	},
	{
		layer:      types.LayerOutline,
		extensions: outlineExtensions,
		keywords:   outlineKeywords,
	},
}

var (
	outlineExtensions = []string{".gko", ".gm1", ".gml", ".gm", ".oln"}
	outlineKeywords   = []string{"outline", "edge_cuts", "edge.cuts", "edge-cuts", "edgecuts"}
)

// Classify returns the layer a file most likely holds
func Classify(name string) types.Layer {
	lower := strings.ToLower(name)
	for _, r := range rules {
		if r.matches(lower) {
			return r.layer
		}
	}
	return types.LayerOther
}

// IsOutline reports whether a filename looks like a board outline, regardless
// of whether an earlier rule would claim it
func IsOutline(name string) bool {
	return rule{extensions: outlineExtensions, keywords: outlineKeywords}.matches(strings.ToLower(name))
}
