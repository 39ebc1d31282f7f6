package domain

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Session is the signed-in operator record. It is written on successful
// authentication, cleared on explicit sign-out and never refreshed or
// expired in between.
type Session struct {
	Login     string `json:"login"`
	Nome      string `json:"nome"`
	Permissao string `json:"permissao"`
}

func (s Session) IsZero() bool { return s == Session{} }

func (s Session) IsAdmin() bool { return s.Permissao == RoleAdmin }
