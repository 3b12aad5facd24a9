// Package ir provides the value tree of serpent documents.
//
// # Node Types
//
// A Node is a tagged union: the Type field says which of the other
// fields hold the value.
//
//   - NoneType: no value
//   - BoolType: Bool
//   - IntType: Int64, or Big when the value does not fit in 64 bits
//   - FloatType: Float64
//   - ComplexType: Complex
//   - StringType: String
//   - BytesType: Bytes
//   - ListType, TupleType, SetType: Values
//   - DictType: Fields (keys) and Values, Fields[i] being the key of Values[i]
//
// Integers report their precision band with [Node.Band]: values that fit
// in 32 bits are narrow, values that fit in 64 bits are wide, larger
// values are arbitrary.
//
// # Constraints
//
// Set nodes never hold two elements that are [Equal], and dict nodes
// never hold two keys that are. [FromSet] and [FromKeyVals] enforce this;
// for dicts the last value given for a key wins.
//
// Trees built by the parser are not modified afterwards.
//
// # Equality and Hashing
//
// [Equal] compares trees structurally, treating sets and dicts as
// unordered. [Node.Hash] is consistent with it.
//
// # JSON
//
// [ToJSON] and [FromJSON] convert to and from JSON for tooling. The
// conversion is lossy: tuples, sets and bytes have no JSON form.
package ir
