package lisp

// FrameKind tells call frames from let frames.
type FrameKind uint8

// Frame kinds
const (
	FrameCall FrameKind = iota
	FrameLet
)

// Frame binds names to values for one active function call or let body.
type Frame struct {
	Kind FrameKind
	Name string

	names  []string
	values map[string]*Value
}

// NewFrame creates an empty frame.
func NewFrame(kind FrameKind, name string) *Frame {
	return &Frame{
		Kind:   kind,
		Name:   name,
		names:  []string{},
		values: make(map[string]*Value),
	}
}

// Bind sets the value of a name within the frame.
func (f *Frame) Bind(name string, value *Value) {
	if _, ok := f.values[name]; !ok {
		f.names = append(f.names, name)
	}
	f.values[name] = value
}

// Lookup returns the value bound to name in this frame.
func (f *Frame) Lookup(name string) (*Value, bool) {
	value, ok := f.values[name]
	return value, ok
}

// Names returns the bound names in binding order.
func (f *Frame) Names() []string {
	return f.names
}

type callStack struct {
	frames []*Frame
	max    int
}

func (s *callStack) push(frame *Frame) error {
	if s.max > 0 && len(s.frames) >= s.max {
		return ErrStackOverflow
	}
	s.frames = append(s.frames, frame)
	return nil
}

func (s *callStack) pop() *Frame {
	n := len(s.frames)
	if n == 0 {
		return nil
	}
	frame := s.frames[n-1]
	s.frames[n-1] = nil
	s.frames = s.frames[:n-1]
	return frame
}

func (s *callStack) top() *Frame {
	if len(s.frames) == 0 {
		return nil
	}
	return s.frames[len(s.frames)-1]
}

func (s *callStack) depth() int {
	return len(s.frames)
}

// lookup searches the frames from the top down. Let frames are transparent;
// the search stops at the innermost call frame, so a function body only sees
// its own parameters and the lets it opened.
func (s *callStack) lookup(name string) (*Value, bool) {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if value, ok := s.frames[i].Lookup(name); ok {
			return value, true
		}
		if s.frames[i].Kind == FrameCall {
			break
		}
	}
	return nil, false
}
