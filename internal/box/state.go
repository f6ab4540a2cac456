package box

// Request identifies one load started by a transition. Generation increases
// with every request so late results can be recognised.
type Request struct {
	Box        int
	Generation uint64
}

// State is the box viewer's state. The zero value is not useful; start from
// NewState.
type State struct {
	BoxNumber int
	// Entries is replaced wholesale by Resolve and Fail. It keeps the
	// previous box's entries while a load is in flight.
	Entries  []DecoratedEntry
	Selected *DecoratedEntry
	Loading  bool
	// Err is the failure of the most recent applied load, if any.
	Err error

	generation uint64
}

// NewState returns an idle state showing box, clamped into [MinBox, MaxBox].
func NewState(box int) State {
	return State{BoxNumber: clampBox(box), Entries: []DecoratedEntry{}}
}

func clampBox(n int) int {
	return max(MinBox, min(MaxBox, n))
}

// Generation returns the tag of the most recent request.
func (s State) Generation() uint64 {
	return s.generation
}

// Current reports whether req is the most recent request.
func (s State) Current(req Request) bool {
	return req.Generation == s.generation
}

// HasPrev reports whether Prev would move.
func (s State) HasPrev() bool { return s.BoxNumber > MinBox }

// HasNext reports whether Next would move.
func (s State) HasNext() bool { return s.BoxNumber < MaxBox }

func (s State) request() (State, *Request) {
	s.generation++
	s.Loading = true
	return s, &Request{Box: s.BoxNumber, Generation: s.generation}
}

// Mount starts the initial load of the current box.
func (s State) Mount() (State, *Request) {
	return s.request()
}

// GoTo moves to box n. Out-of-range or unchanged targets are a no-op and
// return a nil Request.
func (s State) GoTo(n int) (State, *Request) {
	if n < MinBox || n > MaxBox || n == s.BoxNumber {
		return s, nil
	}
	s.BoxNumber = n
	return s.request()
}

// Next moves one box forward.
func (s State) Next() (State, *Request) {
	return s.GoTo(s.BoxNumber + 1)
}

// Prev moves one box back.
func (s State) Prev() (State, *Request) {
	return s.GoTo(s.BoxNumber - 1)
}

// Return jumps to the first box and always reloads it, even when already
// there.
func (s State) Return() (State, *Request) {
	s.BoxNumber = MinBox
	return s.request()
}

// Roar has no effect on state.
func (s State) Roar() State {
	return s
}

// Select opens the detail panel for e.
func (s State) Select(e DecoratedEntry) State {
	s.Selected = &e
	return s
}

// Close dismisses the detail panel.
func (s State) Close() State {
	s.Selected = nil
	return s
}

// Resolve applies a successful load. It returns false and leaves s unchanged
// when req has been superseded.
func (s State) Resolve(req Request, entries []DecoratedEntry) (State, bool) {
	if !s.Current(req) {
		return s, false
	}
	if entries == nil {
		entries = []DecoratedEntry{}
	}
	s.Entries = entries
	s.Loading = false
	s.Err = nil
	return s, true
}

// Fail applies a failed load: the box is shown empty. It returns false and
// leaves s unchanged when req has been superseded.
func (s State) Fail(req Request, err error) (State, bool) {
	if !s.Current(req) {
		return s, false
	}
	s.Entries = []DecoratedEntry{}
	s.Loading = false
	s.Err = err
	return s, true
}
