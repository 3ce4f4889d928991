// Package hooking provides the observation mechanism that model elements use
// to report what happens inside them without coupling to any particular
// consumer.
package hooking

// A HookPos identifies a place in an element's operation where hooks fire.
// Positions are compared by pointer, so each one is declared once as a
// package-level variable.
type HookPos struct {
	Name string
}

// HookCtx describes a single hook invocation. Domain is the element that
// fired the hook, Pos says where in its operation it fired, and Item and
// Detail carry position-specific payloads.
type HookCtx struct {
	Domain Hookable
	Pos    *HookPos
	Item   interface{}
	Detail interface{}
}

// Hookable is an element that observers can attach hooks to.
type Hookable interface {
	// AcceptHook attaches a hook. Attaching the same hook twice panics.
	AcceptHook(hook Hook)

	// NumHooks returns the number of attached hooks.
	NumHooks() int

	// Hooks returns the attached hooks in attachment order.
	Hooks() []Hook
}

// A Hook receives the invocations of the elements it is attached to. A hook
// attached to several positions sees all of them and filters by Pos. Func
// runs on the goroutine that advances the element, so it must not block.
type Hook interface {
	Func(ctx HookCtx)
}

// HookableBase implements Hookable and is meant to be embedded by elements
// that fire hooks.
type HookableBase struct {
	hookList []Hook
}

// NumHooks returns the number of attached hooks. Elements check it before
// building a HookCtx so that unobserved runs pay nothing.
func (h *HookableBase) NumHooks() int {
	return len(h.hookList)
}

// Hooks returns the attached hooks in attachment order.
func (h *HookableBase) Hooks() []Hook {
	return h.hookList
}

// AcceptHook attaches a hook. Attaching the same hook twice panics.
func (h *HookableBase) AcceptHook(hook Hook) {
	for _, registered := range h.hookList {
		if registered == hook {
			panic("hook already attached")
		}
	}

	h.hookList = append(h.hookList, hook)
}

// InvokeHook delivers ctx to every attached hook, in attachment order.
func (h *HookableBase) InvokeHook(ctx HookCtx) {
	for _, hook := range h.hookList {
		hook.Func(ctx)
	}
}
