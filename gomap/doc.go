// Package gomap reduces parsed IR nodes to native Go values.
//
// # Usage
//
//	node, err := parse.ParseString(`{'name': 'alice', 'age': 30}`)
//	v, err := gomap.FromIR(node)
//	d := v.(*native.Dict)
//
// Dicts carrying a __class__ key can be turned back into Go values by a
// class hook or a registry of converters:
//
//	v, err := gomap.FromIR(node, gomap.WithRegistry(reg))
//
// Converters usually implement FromDict with DecodeDict, which fills a
// struct from a dict using the `serpent` struct tags the encoder writes.
//
// # Related Packages
//
//   - github.com/signadot/serpent-format/go-serpent/ir - IR representation
//   - github.com/signadot/serpent-format/go-serpent/native - tuple, set and dict types
//   - github.com/signadot/serpent-format/go-serpent/registry - class converters
package gomap
