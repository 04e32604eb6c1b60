package internal

import "github.com/sirupsen/logrus"

// binding is the state of one variable inside a frame. A declared variable
// without initializer is bound but not initialized.
type binding struct {
	value       value
	initialized bool
}

type frame map[string]binding

// env is a stack of scope frames. Frame 0 holds the globals and is never
// removed, frames are pushed and popped in strict LIFO order.
type env struct {
	log    *logrus.Logger
	frames []frame
}

func newEnv(log *logrus.Logger) *env {
	return &env{
		log:    log,
		frames: []frame{make(frame)},
	}
}

func (e *env) push() {
	e.frames = append(e.frames, make(frame))
	e.log.WithField("depth", len(e.frames)).Trace("push scope")
}

func (e *env) pop() error {
	if len(e.frames) <= 1 {
		return newError(errGlobalScopePop, "Cannot pop the global scope.")
	}
	e.frames[len(e.frames)-1] = nil
	e.frames = e.frames[:len(e.frames)-1]
	e.log.WithField("depth", len(e.frames)).Trace("pop scope")
	return nil
}

func (e *env) depth() int {
	return len(e.frames)
}

// define binds name in the innermost frame, replacing any binding it had there
func (e *env) define(name string, b binding) {
	e.frames[len(e.frames)-1][name] = b
}

// get resolves name from the innermost frame outwards
func (e *env) get(name string) (value, error) {
	for i := len(e.frames) - 1; i >= 0; i-- {
		if b, ok := e.frames[i][name]; ok {
			if !b.initialized {
				return nil, newError(errUninitializedVar, "Uninitialized variable '%s'.", name)
			}
			return b.value, nil
		}
	}
	return nil, newError(errUndefinedVar, "Undefined variable '%s'.", name)
}

// assign writes to the nearest frame where name is already bound
func (e *env) assign(name string, v value) error {
	for i := len(e.frames) - 1; i >= 0; i-- {
		if _, ok := e.frames[i][name]; ok {
			e.frames[i][name] = binding{value: v, initialized: true}
			return nil
		}
	}
	return newError(errUndefinedVar, "Undefined variable '%s'.", name)
}
