package serpent

import (
	"fmt"

	"github.com/signadot/serpent-format/go-serpent/debug"
	"github.com/signadot/serpent-format/go-serpent/ir"

	jsonpatch "github.com/evanphx/json-patch"
)

// Patch applies an RFC 6902 JSON patch to doc. The document goes
// through its JSON form, so tuples and sets come back as lists and
// bytes as base64 strings.
func Patch(doc *ir.Node, patch []byte) (*ir.Node, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("could not decode patch: %w", err)
	}
	d, err := ir.ToJSON(doc)
	if err != nil {
		return nil, err
	}
	if debug.Encode() {
		debug.Logf("applying %d patch operations to %s", len(ops), doc)
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, err
	}
	return ir.FromJSON(out)
}

// PatchNode is Patch with the operations given as a parsed list of
// dicts.
func PatchNode(doc, patch *ir.Node) (*ir.Node, error) {
	d, err := ir.ToJSON(patch)
	if err != nil {
		return nil, err
	}
	return Patch(doc, d)
}
