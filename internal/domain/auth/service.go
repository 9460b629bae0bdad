package auth

import "context"

type AuthService interface {
	Login(ctx context.Context, req *LoginRequest) (*TokenPairResponse, error)
	Refresh(ctx context.Context, req *RefreshRequest) (*TokenPairResponse, error)
}
