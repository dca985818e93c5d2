// Package svgfilter prunes document trees against label predicates.
// Filtering is a pure rebuild: the input tree is never mutated, kept
// nodes are shallow copies pointing at freshly filtered children.
package svgfilter

import (
	"fmt"

	"github.com/cutsheet/cutsheet/svglabel"
	"github.com/cutsheet/cutsheet/svgtree"
)

// Predicate decides whether a node with the given label is kept.
type Predicate func(svglabel.Label) bool

// Filter rebuilds the tree rooted at root, dropping every subtree
// whose own label fails the predicate. Children are filtered before
// their parent's label is evaluated, and a dropped node takes its
// whole subtree with it, surviving descendants included. Nodes
// without an annotation always pass.
//
// The returned tree is nil when the root itself is dropped. A fatal
// label parse error aborts the whole run.
func Filter(root *svgtree.Node, pred Predicate, mode svglabel.ErrorMode) (*svgtree.Node, error) {
	kept, err := filterNode(root, pred, mode)
	if err != nil {
		return nil, err
	}
	if len(kept) == 0 {
		return nil, nil
	}
	return kept[0], nil
}

// filterNode returns the filtered node as a zero- or one-element
// list, so that a dropped branch contributes nothing to its parent's
// child list.
func filterNode(n *svgtree.Node, pred Predicate, mode svglabel.ErrorMode) ([]*svgtree.Node, error) {
	children := make([]*svgtree.Node, 0, len(n.Children))
	for _, c := range n.Children {
		kept, err := filterNode(c, pred, mode)
		if err != nil {
			return nil, err
		}
		children = append(children, kept...)
	}

	raw, _ := n.Attr(svgtree.CutsheetNamespace, svglabel.AttrName)
	label, err := svglabel.Parse(raw, mode)
	if err != nil {
		return nil, fmt.Errorf("filtering <%s>: %w", n.Name.Local, err)
	}
	if !pred(label) {
		return nil, nil
	}
	return []*svgtree.Node{n.WithChildren(children)}, nil
}

// MatchTags returns the variant-selection predicate: a node is
// dropped iff one of its tag rules is not satisfied by the context.
// Labels without tag rules always pass.
func MatchTags(ctx svglabel.TagContext) Predicate {
	return func(label svglabel.Label) bool {
		for name, rule := range label.Tags {
			if !rule.Matches(name, ctx) {
				return false
			}
		}
		return true
	}
}

// MatchLayer returns the predicate for one output layer: a node is
// dropped iff it declares a layer set that does not contain the
// layer. Labels without a layer set pass for every layer.
func MatchLayer(layer int) Predicate {
	return func(label svglabel.Label) bool {
		return label.Layers == nil || label.Layers[layer]
	}
}
