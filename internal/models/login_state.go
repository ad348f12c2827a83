package models

type LoginStatus int

const (
	LoggedOut LoginStatus = iota
	LoggedIn
	InvalidCredentials
	LoginError
)

func (s LoginStatus) String() string {
	switch s {
	case LoggedOut:
		return "logged_out"
	case LoggedIn:
		return "logged_in"
	case InvalidCredentials:
		return "invalid_credentials"
	case LoginError:
		return "error"
	default:
		return "unknown"
	}
}

// LoginState is the outcome of a login attempt or a session check. User is set
// only when Status is LoggedIn.
type LoginState struct {
	Status LoginStatus
	User   *User
}
