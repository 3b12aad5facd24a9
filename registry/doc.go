// Package registry holds class converters, which translate values of
// particular Go types to attribute dicts for serialization and rebuild
// them from dicts carrying a matching __class__ key.
//
// A registry is populated at configuration time and may then be shared
// by concurrent encoders and reducers.
package registry
