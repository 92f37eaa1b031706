// Package glfw binds the GLFW native windowing library into Go through
// pure-Go dynamic loading, with no cgo involved.
//
// The package is a thin, faithful wrapper: every exported function maps to
// one native entry point, native semantics (thread affinity, event polling,
// error reporting) pass through unchanged, and the Go surface adds only
// what crossing the language boundary requires. That boundary work lives in
// three subpackages:
//
//   - [codec]: primitive value marshaling, enum domains, bitflag domains
//   - [layout]: C struct and struct-array marshaling by explicit descriptor
//   - [native]: library loading, symbol binding, out-parameters, callback
//     trampolines and lifetime scopes
//
// # Initialization
//
// The shared library is resolved and bound lazily on first use. Init
// returns false when either the shared library cannot be loaded or native
// initialization fails; most other wrappers treat an unloadable library as
// a caller contract violation and panic.
//
//	if !glfw.Init() {
//		log.Fatal("glfw unavailable")
//	}
//	defer glfw.Terminate()
//
//	w, err := glfw.CreateWindow(640, 480, "demo", nil, nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for !w.ShouldClose() {
//		w.SwapBuffers()
//		glfw.PollEvents()
//	}
//
// # Callbacks
//
// Callback setters accept ordinary Go closures and return the previously
// installed *Trampoline, mirroring the native last-write-wins slots. A
// closure that panics never unwinds into the native caller: the fault is
// recovered at the trampoline, logged, and the callback's declared default
// return value is substituted.
//
// Registrations belong to a lifetime [Scope]. The plain setters use
// [ProcessScope], which lives until Terminate; NewScope creates a narrower
// region whose Close detaches every slot the scope still owns:
//
//	scope := glfw.NewScope("editor")
//	w.SetKeyCallbackWithScope(onKey, scope)
//	defer scope.Close()
//
// # Errors
//
// The native library reports errors through a per-thread slot. GetError
// drains it; wrappers whose native call signals failure through a sentinel
// return (CreateWindow, CreateCursor) drain it for you and return [*Error].
//
// # Threading
//
// Native thread-affinity rules apply unchanged: Init, window creation, and
// event processing belong on the main thread. Callers should pin it with
// runtime.LockOSThread before Init. This package documents the constraint
// and does not enforce it.
package glfw
