// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

// EventType names a session transition.
type EventType int

const (
	// EventRestored is emitted once, when the stored session has been read.
	EventRestored EventType = iota + 1

	// EventSignedIn is emitted after a successful sign-in.
	EventSignedIn

	// EventSignedOut is emitted when an authenticated session ends, whether
	// by an explicit sign-out or by the server rejecting the credentials.
	EventSignedOut

	// EventProfileUpdated is emitted after the user record was replaced.
	EventProfileUpdated
)

func (t EventType) String() string {
	switch t {
	case EventRestored:
		return "restored"
	case EventSignedIn:
		return "signed_in"
	case EventSignedOut:
		return "signed_out"
	case EventProfileUpdated:
		return "profile_updated"
	default:
		return "unknown"
	}
}

// Event describes a transition and the session it produced.
type Event struct {
	Type    EventType
	Session Session
}

func (m *Manager) emit(event Event) {
	m.subsMu.Lock()
	subs := make([]func(Event), 0, len(m.subs))
	for _, sub := range m.subs {
		subs = append(subs, sub)
	}
	m.subsMu.Unlock()

	for _, sub := range subs {
		sub(event)
	}
}

// Subscribe registers fn to be called after every transition. fn runs on the
// goroutine that performed the transition, after the manager released its
// lock, so it may call back into the manager. The returned function
// unregisters fn; calling it more than once is safe.
func (m *Manager) Subscribe(fn func(Event)) (unsubscribe func()) {
	m.subsMu.Lock()
	defer m.subsMu.Unlock()

	id := m.nextSubID
	m.nextSubID++
	m.subs[id] = fn

	return func() {
		m.subsMu.Lock()
		defer m.subsMu.Unlock()
		delete(m.subs, id)
	}
}
