package eval

import "github.com/golox-lang/golox/objects"

// IsError checks whether an evaluation result is a runtime error being
// unwound. Used throughout the evaluator to stop and propagate instead
// of computing on top of a poisoned value. Safe on nil.
func IsError(obj objects.LoxObject) bool {
	if obj != nil {
		return obj.GetType() == objects.ErrorType
	}
	return false
}

// UnwrapReturnValue extracts the value carried by a return signal.
// Non-return objects pass through unchanged, which makes the function
// safe to call on any evaluation result. Only the user-function call
// machinery calls this; everywhere else the signal keeps unwinding.
func UnwrapReturnValue(obj objects.LoxObject) objects.LoxObject {
	if ret, isReturn := obj.(*objects.ReturnValue); isReturn {
		return ret.Value
	}
	return obj
}
