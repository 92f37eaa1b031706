package native

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/ebitengine/purego"
	"github.com/sirupsen/logrus"
)

// Bind populates a declarative entry-point table: table must be a pointer to
// a struct whose func-typed fields are tagged with the native symbol name,
// for example:
//
//	type procs struct {
//	    Init      func() int32        `ffi:"glfwInit"`
//	    Terminate func()              `ffi:"glfwTerminate"`
//	}
//
// Each tagged field is bound to its symbol in lib. Fields without an ffi tag
// are skipped. A symbol that fails to resolve aborts the bind with an error
// naming it; a table that half-bound is not usable.
func Bind(lib *Library, table any) error {
	v := reflect.ValueOf(table)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return errors.New("native: bind target must be a pointer to a struct")
	}
	elem := v.Elem()
	t := elem.Type()

	bound := 0
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		symbol := field.Tag.Get("ffi")
		if symbol == "" || field.Type.Kind() != reflect.Func {
			continue
		}
		if err := registerFunc(elem.Field(i).Addr().Interface(), lib.Handle(), symbol); err != nil {
			return err
		}
		bound++
	}

	logrus.WithFields(logrus.Fields{
		"function": "Bind",
		"library":  lib.Path(),
		"symbols":  bound,
	}).Debug("Bound native entry points")
	return nil
}

// registerFunc wraps purego.RegisterLibFunc, converting its panic on an
// unresolvable symbol into an ordinary error.
func registerFunc(fptr any, handle uintptr, symbol string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("native: binding %q: %v", symbol, r)
		}
	}()
	purego.RegisterLibFunc(fptr, handle, symbol)
	return nil
}
