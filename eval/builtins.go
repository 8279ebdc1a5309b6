package eval

import (
	"time"

	"github.com/golox-lang/golox/function"
	"github.com/golox-lang/golox/objects"
)

// Builtins returns the native functions every globals frame starts
// with. Natives are ordinary callables; user code cannot tell them
// apart from functions except by their "<native fn>" string form.
func Builtins() []*function.Builtin {
	return []*function.Builtin{
		{
			// clock() returns wall-clock seconds as a number. Not
			// monotonic, but it does advance across real seconds,
			// which is all benchmark scripts need.
			Name:    "clock",
			NumArgs: 0,
			Fn: func(args []objects.LoxObject) objects.LoxObject {
				return &objects.Number{Value: float64(time.Now().UnixNano()) / 1e9}
			},
		},
	}
}
