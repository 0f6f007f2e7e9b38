package domain

// Session is the authenticated identity of one browser. The zero value is an
// anonymous session. Token and user id are either both set or both empty;
// NewSession is the only way to build an authenticated one.
type Session struct {
	token  string
	userID UserID
}

// NewSession returns an authenticated session, or ErrInvalidSession when
// either part is missing.
func NewSession(token string, userID UserID) (Session, error) {
	userID = ParseUserID(string(userID))
	if token == "" || userID.IsZero() {
		return Session{}, ErrInvalidSession
	}
	return Session{token: token, userID: userID}, nil
}

func (s Session) IsLoggedIn() bool { return s.token != "" }

func (s Session) Token() string { return s.token }

func (s Session) UserID() UserID { return s.userID }

// CanAccessProfile reports whether the session owns profile id. Only the owner
// may open a profile page.
func (s Session) CanAccessProfile(id UserID) bool {
	return s.IsLoggedIn() && s.userID == ParseUserID(string(id))
}
