package registry

import "github.com/AndreasHiropedi/Events-System-sub000/internal/domain"

// Users owns every registered account, keyed by email, plus the single
// current-session pointer.
type Users struct {
	byEmail map[string]*domain.User
	current *domain.User
}

func NewUsers() *Users {
	return &Users{byEmail: make(map[string]*domain.User)}
}

// Add inserts the user keyed by email, overwriting any existing entry.
// Duplicate-email rejection at registration time is the service layer's
// job. A nil user is ignored.
func (r *Users) Add(u *domain.User) {
	if u == nil {
		return
	}
	r.byEmail[u.Email] = u
}

func (r *Users) FindByEmail(email string) *domain.User {
	return r.byEmail[email]
}

func (r *Users) All() []*domain.User {
	users := make([]*domain.User, 0, len(r.byEmail))
	for _, u := range r.byEmail {
		users = append(users, u)
	}
	return users
}

// Current returns the logged-in user, nil when nobody is.
func (r *Users) Current() *domain.User {
	return r.current
}

// SetCurrent replaces the session pointer. Logging in as a second user
// overwrites, it does not stack.
func (r *Users) SetCurrent(u *domain.User) {
	r.current = u
}

// Copy reconstructs the registry with its own backing map and field-by-
// field copies of every user, rebinding the session pointer by email.
func (r *Users) Copy() *Users {
	c := NewUsers()
	for email, u := range r.byEmail {
		c.byEmail[email] = u.Copy()
	}
	if r.current != nil {
		c.current = c.byEmail[r.current.Email]
	}
	return c
}
