package serpent

import (
	"fmt"

	"github.com/expr-lang/expr"

	"github.com/signadot/serpent-format/go-serpent/debug"
	"github.com/signadot/serpent-format/go-serpent/ir"
)

// Query evaluates an expr-lang expression with the document bound to
// doc. Dicts appear as map[string]any, with non string keys written as
// literals, and tuples and sets as []any.
func Query(y *ir.Node, expression string) (any, error) {
	env := map[string]any{"doc": Plain(y)}
	prg, err := expr.Compile(expression, expr.Env(env))
	if err != nil {
		return nil, fmt.Errorf("could not compile %q: %w", expression, err)
	}
	if debug.Reduce() {
		debug.Logf("query %q on %s", expression, y)
	}
	return expr.Run(prg, env)
}

// Plain converts a node to values expression languages and encoders
// for other formats understand.
func Plain(y *ir.Node) any {
	if y == nil {
		return nil
	}
	switch y.Type {
	case ir.NoneType:
		return nil
	case ir.BoolType:
		return y.Bool
	case ir.IntType:
		if y.Big != nil {
			return y.BigInt()
		}
		if y.Int64 == nil {
			return 0
		}
		return int(*y.Int64)
	case ir.FloatType:
		return y.Float64
	case ir.ComplexType:
		return y.Complex
	case ir.StringType:
		return y.String
	case ir.BytesType:
		return y.Bytes
	case ir.ListType, ir.TupleType, ir.SetType:
		res := make([]any, len(y.Values))
		for i, v := range y.Values {
			res[i] = Plain(v)
		}
		return res
	case ir.DictType:
		res := make(map[string]any, len(y.Values))
		for i, f := range y.Fields {
			k := f.String
			if f.Type != ir.StringType {
				k = f.Literal()
			}
			res[k] = Plain(y.Values[i])
		}
		return res
	}
	return nil
}
