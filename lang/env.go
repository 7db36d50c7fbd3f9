package lang

// Env is one frame of the lexical environment: a set of bindings plus a
// link to the enclosing frame. Frames are immutable once they escape the
// function that built them, so any number of closures may share a frame
// chain safely.
type Env struct {
	vars  map[string]Value
	outer *Env
}

// NewEnv returns an empty root frame.
func NewEnv() *Env {
	return &Env{vars: map[string]Value{}}
}

// Lookup resolves name against this frame and then each enclosing frame in
// turn, returning the nearest binding. A nil receiver resolves nothing.
func (e *Env) Lookup(name string) (Value, bool) {
	for frame := e; frame != nil; frame = frame.outer {
		if v, ok := frame.vars[name]; ok {
			return v, true
		}
	}
	return Value{}, false
}

// Bind returns a fresh child frame in which name resolves to v. The
// receiver is unchanged, so bindings in the child shadow rather than
// replace bindings in outer frames.
func (e *Env) Bind(name string, v Value) *Env {
	return &Env{vars: map[string]Value{name: v}, outer: e}
}

// bindAll returns a fresh child frame binding each name to the value at the
// same index. The two slices must have equal length.
func (e *Env) bindAll(names []string, vals []Value) *Env {
	vars := make(map[string]Value, len(names))
	for i, name := range names {
		vars[name] = vals[i]
	}
	return &Env{vars: vars, outer: e}
}

// bindRecursive returns a fresh child frame whose single binding is
// produced by build, which receives the new frame itself. This ties the
// knot for self-referential bindings: a function bound this way captures
// the frame that contains it. The frame's slot is written exactly once,
// before the frame is visible to any other code.
func (e *Env) bindRecursive(name string, build func(*Env) Value) *Env {
	frame := &Env{vars: make(map[string]Value, 1), outer: e}
	frame.vars[name] = build(frame)
	return frame
}
