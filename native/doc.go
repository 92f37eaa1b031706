// Package native owns the foreign-function mechanics of the binding: loading
// the shared library, binding its entry points, marshaling pointer-to-scalar
// out parameters, and keeping host closures callable from native code.
//
// # Library Loading and Symbol Binding
//
// [Open] resolves the first loadable library from a candidate name list,
// using dlopen on unix-like targets and LoadLibrary on Windows. [Bind] then
// populates a declarative entry-point table: a struct whose func-typed
// fields carry `ffi:"symbol"` tags, bound in one reflective pass. Adding a
// native entry point is one struct field, not a hand-written wrapper.
//
// # Out Parameters
//
// Many native functions report several scalar results through pointer
// arguments. [CallOuts] allocates one scratch cell per declared binding,
// passes the cell addresses to the native call, and decodes the results in
// declared order. The scratch region lives exactly one call and is never
// retained.
//
// # Trampolines and Scopes
//
// A [Trampoline] makes a host closure invokable from native code. Its Guard
// methods form the fault barrier: a panic escaping a host closure must not
// unwind across the native frame that invoked it, because the native call
// stack would be corrupted and the process state undefined. Guard recovers
// every panic, reports it through logrus, and substitutes the callback
// kind's declared default return value.
//
// Every registration belongs to a [Scope]. Closing a scope uninstalls the
// registrations made under it and detaches the corresponding native slots.
// [ProcessScope] is the distinguished whole-process scope for callbacks
// meant to live until termination; it never closes. Scopes are not
// internally synchronized against concurrent native event processing:
// closing a scope while another thread may be dispatching events is a
// caller-owned race, the same contract the native library itself imposes.
package native
