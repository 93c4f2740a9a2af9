package cards

import "github.com/google/uuid"

// Activation is the non-owning handle a page holds while it is the Manager's
// current page. The Manager revokes it when the page is deactivated; anything
// captured from an activation (continuations, handlers) checks Live first.
//
// A page that is activated again receives a fresh Activation, so work
// scheduled during an earlier activation stays cancelled.
type Activation struct {
	id      string
	manager *Manager
	revoked bool
}

func newActivation(m *Manager) *Activation {
	return &Activation{id: uuid.NewString(), manager: m}
}

// ID returns the unique identifier of this activation.
func (a *Activation) ID() string {
	if a == nil {
		return ""
	}
	return a.id
}

// Live reports whether the activation has not been revoked. A nil activation
// is never live.
func (a *Activation) Live() bool {
	return a != nil && !a.revoked
}

// Manager returns the owning Manager, or nil once the activation is revoked.
func (a *Activation) Manager() *Manager {
	if !a.Live() {
		return nil
	}
	return a.manager
}

func (a *Activation) revoke() {
	if a != nil {
		a.revoked = true
	}
}
