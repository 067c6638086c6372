package catalog

import (
	"fmt"
	"reflect"

	"go.trai.ch/boot/internal/core/domain"
	"go.trai.ch/zerr"
)

var errorType = reflect.TypeFor[error]()

// Hook resolves method on the component type. The method must be exported, take no arguments
// and return nothing or a single error.
func (e *Entry) Hook(method string, priority int, async bool) (domain.HookDescriptor, error) {
	m, ok := e.typ.MethodByName(method)
	if !ok {
		return domain.HookDescriptor{}, e.invalid("hook method not found", "hook", method)
	}

	// In is the receiver.
	mt := m.Type
	if mt.NumIn() != 1 || mt.NumOut() > 1 || (mt.NumOut() == 1 && mt.Out(0) != errorType) {
		err := e.invalid("hook must take no arguments and return nothing or an error", "hook", method)
		return domain.HookDescriptor{}, zerr.With(err, "signature", mt.String())
	}

	typ, index := e.typ, m.Index
	return domain.HookDescriptor{
		Method:   method,
		Priority: priority,
		Async:    async,
		Invoke: func(instance any) error {
			v := reflect.ValueOf(instance)
			if v.Type() != typ {
				return zerr.With(zerr.New("hook receiver has wrong type"), "type", fmt.Sprintf("%T", instance))
			}
			out := v.Method(index).Call(nil)
			if len(out) == 1 && !out[0].IsNil() {
				return out[0].Interface().(error) //nolint:forcetypeassert // checked against errorType
			}
			return nil
		},
	}, nil
}
