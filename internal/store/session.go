package store

import (
	"net/url"

	"github.com/bazarna-store/api/internal/domain"
)

const avatarEndpoint = "https://ui-avatars.com/api/"

// AvatarURL derives the placeholder avatar URI used when a login supplies no
// photo. The result depends only on the name, so repeated logins with the
// same name produce the same URI.
func AvatarURL(name string) string {
	return avatarEndpoint + "?name=" + url.QueryEscape(name) + "&background=random&color=fff"
}

// Session returns the current session, if any.
func (s *Store) Session() (domain.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.session == nil {
		return domain.Session{}, false
	}
	return *s.session, true
}

// Login creates or replaces the session. No credential is verified; the
// caller guarantees email and name are non-empty. An empty photoURL derives
// the deterministic placeholder avatar from the name.
func (s *Store) Login(email, name, photoURL string) domain.Session {
	image := photoURL
	if image == "" {
		image = AvatarURL(name)
	}
	session := domain.Session{Name: name, Email: email, Image: image}

	s.mu.Lock()
	s.session = &session
	s.mu.Unlock()
	s.notify(SliceSession)
	return session
}

// Logout clears the session and then the cart.
func (s *Store) Logout() {
	s.mu.Lock()
	s.session = nil
	s.cart = nil
	s.mu.Unlock()
	s.notify(SliceSession, SliceCart)
}

// RestoreSession replaces the session without emitting a change
// notification. Used by the persistence adapter during hydration.
func (s *Store) RestoreSession(session *domain.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session == nil {
		s.session = nil
		return
	}
	dup := *session
	s.session = &dup
}
