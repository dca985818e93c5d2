package svglabel

import (
	"fmt"
	"log"
	"strconv"
	"strings"
)

// AttrName is the local name of the annotation attribute, in the
// svgtree cutsheet namespace.
const AttrName = "label"

// ErrorMode determines how recoverable label issues (a segment that
// is not a key=value pair, an unrecognized key) are handled: ignored,
// logged, or promoted to errors. Malformed values for recognized
// keys are always fatal.
type ErrorMode uint8

const (
	IgnoreErrorMode ErrorMode = iota
	WarnErrorMode
	StrictErrorMode
)

// DuplicateKeyError is returned when a label repeats one of the
// recognized keys.
type DuplicateKeyError struct {
	Key string
}

func (e DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate key %q in label", e.Key)
}

// InvalidTagSpecifierError is returned for a tags= entry that is
// neither `name:value` nor `!name`.
type InvalidTagSpecifierError struct {
	Specifier string
}

func (e InvalidTagSpecifierError) Error() string {
	return fmt.Sprintf("invalid tag specifier %q (want name:value or !name)", e.Specifier)
}

// Label is the parsed annotation of a node. A nil field places no
// constraint on that axis; the zero value keeps the node in every
// output.
type Label struct {
	// Tags maps a tag name to the rule it must satisfy.
	Tags map[string]Rule
	// Layers is the set of cut layers the node belongs to.
	Layers map[int]bool
}

// Default returns the label of an unannotated node: no constraints.
func Default() Label { return Label{} }

// Parse extracts a Label from a raw annotation string. Empty
// segments are skipped; segments that are not exactly one key=value
// pair and unrecognized keys are handled per mode. Repeating a
// recognized key or writing a malformed value is fatal.
func Parse(raw string, mode ErrorMode) (Label, error) {
	var label Label
	for _, segment := range strings.Split(raw, ";") {
		if segment == "" {
			continue
		}
		kv := strings.Split(segment, "=")
		if len(kv) != 2 {
			if err := recoverable(mode, fmt.Sprintf("malformed label segment %q", segment)); err != nil {
				return Label{}, err
			}
			continue
		}
		switch kv[0] {
		case "layers":
			if label.Layers != nil {
				return Label{}, DuplicateKeyError{Key: "layers"}
			}
			layers, err := parseLayers(kv[1])
			if err != nil {
				return Label{}, err
			}
			label.Layers = layers
		case "tags":
			if label.Tags != nil {
				return Label{}, DuplicateKeyError{Key: "tags"}
			}
			tags, err := parseTags(kv[1])
			if err != nil {
				return Label{}, err
			}
			label.Tags = tags
		default:
			if err := recoverable(mode, fmt.Sprintf("unrecognized label key %q", kv[0])); err != nil {
				return Label{}, err
			}
		}
	}
	return label, nil
}

func parseLayers(list string) (map[int]bool, error) {
	layers := make(map[int]bool)
	for _, field := range strings.Split(list, ",") {
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("invalid layer number %q: %w", field, err)
		}
		layers[n] = true
	}
	return layers, nil
}

func parseTags(list string) (map[string]Rule, error) {
	tags := make(map[string]Rule)
	for _, spec := range strings.Split(list, ",") {
		if name, ok := strings.CutPrefix(spec, "!"); ok && name != "" {
			tags[name] = Forbidden{}
			continue
		}
		name, value, ok := strings.Cut(spec, ":")
		if !ok || name == "" {
			return nil, InvalidTagSpecifierError{Specifier: spec}
		}
		tags[name] = Required{Value: value}
	}
	return tags, nil
}

func recoverable(mode ErrorMode, msg string) error {
	switch mode {
	case StrictErrorMode:
		return fmt.Errorf("%s", msg)
	case WarnErrorMode:
		log.Println(msg)
	}
	return nil
}
