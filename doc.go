// Package serpent reads and writes serpent, a text serialization of
// Python literal expressions: None, booleans, numbers, strings, bytes,
// lists, tuples, sets and dicts.
//
// Dumps and Loads are the entry points:
//
//	d, err := serpent.Dumps(map[string]any{"a": native.Tuple{1, 2}})
//	// # serpent utf-8 python3.2
//	// {'a':(1,2)}
//	v, err := serpent.Loads(d)
//
// The subpackages expose each stage: parse turns text into an ir.Node
// tree, gomap reduces the tree to Go values and encode writes Go values
// back out. Patch, Diff and Query operate on parsed trees.
package serpent
