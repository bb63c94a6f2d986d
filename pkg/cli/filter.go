package cli

import (
	"encoding/json"
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// maxFilterAttempts bounds how many candidates are drawn per requested
// row before a --where filter is declared unsatisfiable.
const maxFilterAttempts = 1000

// rowFilter evaluates an expression against generated values. Values
// are flattened through their JSON form, so expressions address fields
// by their JSON names: age > 30, sex == "female", address.city != "".
type rowFilter struct {
	expression string
	program    *vm.Program
}

func newRowFilter(expression string) *rowFilter {
	return &rowFilter{expression: expression}
}

// match reports whether v satisfies the filter. An empty expression
// matches everything.
func (f *rowFilter) match(v interface{}) (bool, error) {
	if f.expression == "" {
		return true, nil
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return false, err
	}
	env := map[string]interface{}{}
	if err := json.Unmarshal(raw, &env); err != nil {
		return false, err
	}

	if f.program == nil {
		program, err := expr.Compile(f.expression, expr.Env(env), expr.AsBool())
		if err != nil {
			return false, fmt.Errorf("failed to compile filter %q: %w", f.expression, err)
		}
		f.program = program
	}

	out, err := expr.Run(f.program, env)
	if err != nil {
		return false, fmt.Errorf("failed to evaluate filter %q: %w", f.expression, err)
	}
	return out.(bool), nil
}

// collect draws candidates from produce until count of them pass the
// filter. It gives up once the attempt budget is spent so an
// unsatisfiable filter terminates with an error instead of spinning.
func collect[T any](count int, filter *rowFilter, produce func() (T, error)) ([]T, error) {
	items := make([]T, 0, count)
	attempts := 0
	for len(items) < count {
		if attempts >= count*maxFilterAttempts {
			return nil, fmt.Errorf("filter %q rejected %d candidates, giving up", filter.expression, attempts)
		}
		attempts++

		item, err := produce()
		if err != nil {
			return nil, err
		}
		ok, err := filter.match(item)
		if err != nil {
			return nil, err
		}
		if ok {
			items = append(items, item)
		}
	}
	return items, nil
}
