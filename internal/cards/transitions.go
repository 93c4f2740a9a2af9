package cards

type requestKind int

const (
	reqPresent requestKind = iota
	reqPush
	reqDisplayNext
	reqPop
	reqPopToRoot
	reqDismiss
)

func (k requestKind) String() string {
	switch k {
	case reqPresent:
		return "present"
	case reqPush:
		return "push"
	case reqDisplayNext:
		return "display_next"
	case reqPop:
		return "pop"
	case reqPopToRoot:
		return "pop_to_root"
	case reqDismiss:
		return "dismiss"
	default:
		return "unknown"
	}
}

type request struct {
	kind     requestKind
	page     *Page
	animated bool
	force    bool
}

// submit runs req now, or parks it when a transition is in flight. Only one
// request is parked at a time; a newer one replaces it.
func (m *Manager) submit(req request) error {
	if m.state.busy() {
		if m.pending != nil {
			m.emit(EventDropped, map[string]any{"request": m.pending.kind.String()})
		}
		m.pending = &req
		m.emit(EventQueued, map[string]any{"request": req.kind.String()})
		return ErrQueued
	}
	err := m.run(req)
	m.settle()
	return err
}

// settle drains the parked request once the machine is at rest. Running it
// may park another one, which is drained in turn.
func (m *Manager) settle() {
	for m.pending != nil && !m.state.busy() {
		req := *m.pending
		m.pending = nil
		_ = m.run(req)
	}
}

func (m *Manager) run(req request) error {
	var err error
	switch req.kind {
	case reqPresent:
		err = m.present(req.page, req.animated)
	case reqPush:
		err = m.push(req.page)
	case reqDisplayNext:
		err = m.displayNext()
	case reqPop:
		err = m.pop()
	case reqPopToRoot:
		err = m.popToRoot()
	case reqDismiss:
		err = m.dismiss(req.animated, req.force)
	}
	if err != nil {
		m.emit(EventRefused, map[string]any{
			"request": req.kind.String(),
			"reason":  err.Error(),
		})
	}
	return err
}

func (m *Manager) present(root *Page, animated bool) error {
	if m.state != StateIdle {
		return ErrAlreadyPresented
	}
	m.state = StatePresenting
	m.animated = animated
	m.backStack = nil
	m.current = root
	m.emit(EventPresent, map[string]any{"animated": animated})

	m.activate(root, animated)
	m.state = StatePresented
	return nil
}

func (m *Manager) push(next *Page) error {
	if m.state != StatePresented {
		return ErrNotPresented
	}
	m.state = StateTransitioning
	prev := m.current
	m.backStack = append(m.backStack, prev)
	m.deactivate(prev)

	m.current = next
	m.emit(EventPush, map[string]any{"from": prev.ID, "depth": len(m.backStack)})
	m.activate(next, m.animated)
	m.state = StatePresented
	return nil
}

func (m *Manager) displayNext() error {
	if m.state != StatePresented {
		return ErrNotPresented
	}
	next := m.current.Next()
	if next == nil {
		return ErrNoNextPage
	}
	return m.push(next)
}

func (m *Manager) pop() error {
	if m.state != StatePresented {
		return ErrNotPresented
	}
	if len(m.backStack) == 0 {
		return ErrEmptyBackStack
	}
	m.state = StateTransitioning
	prev := m.current
	m.deactivate(prev)

	last := len(m.backStack) - 1
	top := m.backStack[last]
	m.backStack[last] = nil
	m.backStack = m.backStack[:last]

	m.current = top
	m.emit(EventPop, map[string]any{"from": prev.ID, "depth": len(m.backStack)})
	m.activate(top, m.animated)
	m.state = StatePresented
	return nil
}

func (m *Manager) popToRoot() error {
	if m.state != StatePresented {
		return ErrNotPresented
	}
	if len(m.backStack) == 0 {
		return nil
	}
	m.state = StateTransitioning
	prev := m.current
	m.deactivate(prev)

	root := m.backStack[0]
	clear(m.backStack)
	m.backStack = m.backStack[:0]

	m.current = root
	m.emit(EventPopToRoot, map[string]any{"from": prev.ID})
	m.activate(root, m.animated)
	m.state = StatePresented
	return nil
}

func (m *Manager) dismiss(animated, force bool) error {
	if m.state != StatePresented {
		return ErrNotPresented
	}
	if !force && !m.current.Flags.Dismissable {
		return ErrNotDismissable
	}
	m.state = StateDismissing
	p := m.current
	m.emit(EventDismiss, map[string]any{
		"animated": animated,
		"forced":   force,
		"at_end":   p.Next() == nil,
	})

	m.deactivate(p)
	m.surface.Dismiss(animated)
	p.OnDismiss()

	m.current = nil
	clear(m.backStack)
	m.backStack = nil
	m.state = StateIdle
	return nil
}
