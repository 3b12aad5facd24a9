package gomap

import "github.com/signadot/serpent-format/go-serpent/registry"

// ClassHook rebuilds an object from a dict carrying a __class__ key.
// Returning ok == false keeps the dict as is.
type ClassHook func(class string, d map[string]any) (v any, ok bool, err error)

// UnmapOption is an option for controlling reduction of IR nodes to Go
// values.
type UnmapOption func(*unmapConfig)

type unmapConfig struct {
	classHook ClassHook
	registry  *registry.Registry
}

// WithClassHook installs a hook consulted for each dict with a string
// __class__ key, before any registry.
func WithClassHook(h ClassHook) UnmapOption {
	return func(c *unmapConfig) { c.classHook = h }
}

// WithRegistry consults the FromDict of the converter registered under
// the dict's __class__ name.
func WithRegistry(r *registry.Registry) UnmapOption {
	return func(c *unmapConfig) { c.registry = r }
}

func newUnmapConfig(opts []UnmapOption) *unmapConfig {
	cfg := &unmapConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
