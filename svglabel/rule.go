// Package svglabel parses the layout annotations carried by document
// nodes. A label selects when a subtree takes part in an output:
// which variant tags must (or must not) be chosen, and which cut
// layers the subtree belongs to.
//
// The grammar is `key=value` pairs separated by `;`. Recognized keys:
//
//	layers=0,2       comma-separated layer numbers
//	tags=a:x,!b      `name:value` requires the tag, `!name` forbids it
package svglabel

// TagContext holds the variant selections of a run, mapping tag name
// to the chosen value. It is supplied once and shared by every rule
// evaluation.
type TagContext map[string]string

// Rule restricts when a tagged subtree is kept. The two
// implementations, Required and Forbidden, form a closed set.
type Rule interface {
	// Matches reports whether the rule for the named tag is
	// satisfied by the context.
	Matches(name string, ctx TagContext) bool

	isRule()
}

// Required matches when the context maps the tag to exactly Value.
type Required struct {
	Value string
}

func (r Required) Matches(name string, ctx TagContext) bool {
	v, ok := ctx[name]
	return ok && v == r.Value
}

// Forbidden matches when the context does not contain the tag at
// all, whatever the value.
type Forbidden struct{}

func (Forbidden) Matches(name string, ctx TagContext) bool {
	_, ok := ctx[name]
	return !ok
}

func (Required) isRule()  {}
func (Forbidden) isRule() {}
