package models

// Principal is the identity attached to a request.
type Principal interface {
	GetID() int64
	IsAuthenticated() bool
}

// Anonymous is the principal of a request without a valid session.
type Anonymous struct{}

func (Anonymous) GetID() int64 { return 0 }

func (Anonymous) IsAuthenticated() bool { return false }
