package eval

import "github.com/wippyai/lisp-runtime/object"

// Exception is a registered (tag, data) pair: the catch tag and thrown
// value for a throw, or the condition symbol and data for a signal.
type Exception struct {
	Tag  object.Value
	Data object.Value
}

type excSlot struct {
	exc  Exception
	live bool
}

// Env is the evaluation environment's exception registry. Errors carry
// only slot ids, never the registered values, so an Error holds no
// collector-managed value; the Env keeps the pair reachable until a
// handler consumes it.
//
// The core is single-threaded: callers hold exclusive access to an Env for
// the duration of each call, and there is no internal locking.
type Env struct {
	slots []excSlot
	free  []uint32
}

// NewEnv creates an empty environment.
func NewEnv() *Env {
	return &Env{
		slots: make([]excSlot, 0, 8),
	}
}

// RegisterException records a (tag, data) pair and returns an opaque id a
// later handler can use to recover it. Freed slots are reused.
func (env *Env) RegisterException(tag, data object.Value) uint32 {
	slot := excSlot{exc: Exception{Tag: tag, Data: data}, live: true}
	if n := len(env.free); n > 0 {
		id := env.free[n-1]
		env.free = env.free[:n-1]
		env.slots[id] = slot
		return id
	}
	env.slots = append(env.slots, slot)
	return uint32(len(env.slots) - 1)
}

// Exception returns the registered pair for id without consuming it.
func (env *Env) Exception(id uint32) (Exception, bool) {
	if int(id) >= len(env.slots) || !env.slots[id].live {
		return Exception{}, false
	}
	return env.slots[id].exc, true
}

// TakeException returns the registered pair for id and reclaims the slot.
// Ids are only meaningful relative to the Env that minted them, and a
// taken id may be handed out again by a later registration.
func (env *Env) TakeException(id uint32) (Exception, bool) {
	exc, ok := env.Exception(id)
	if !ok {
		return Exception{}, false
	}
	env.slots[id] = excSlot{}
	env.free = append(env.free, id)
	return exc, true
}

// Pending returns the number of registered exceptions not yet consumed.
func (env *Env) Pending() int {
	n := 0
	for _, s := range env.slots {
		if s.live {
			n++
		}
	}
	return n
}
