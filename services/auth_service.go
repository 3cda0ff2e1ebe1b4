package services

import (
	"time"

	"github.com/amrit073/NEPGA/utils"
)

// AuthService exchanges the admin credential pair for a token.
type AuthService struct {
	authority *utils.TokenAuthority
}

func NewAuthService(authority *utils.TokenAuthority) *AuthService {
	return &AuthService{authority: authority}
}

// Login never says which field was wrong.
func (s *AuthService) Login(username, password string) (string, time.Time, error) {
	return s.authority.Issue(username, password)
}

func (s *AuthService) Verify(token string) (string, error) {
	return s.authority.Verify(token)
}
