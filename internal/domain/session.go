package domain

// Session identifies the caller for one request. It is resolved once at
// the HTTP boundary and passed explicitly into every service call; there
// is no ambient auth state.
type Session struct {
	UserID    string
	Email     string
	Role      string
	Anonymous bool
}

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// AnonymousSession is used for requests carrying no credentials. Browsing
// works; checkout, favorites and reviews do not.
func AnonymousSession() Session {
	return Session{Anonymous: true, Role: RoleCustomer}
}

func (s Session) IsAdmin() bool {
	return !s.Anonymous && s.Role == RoleAdmin
}
