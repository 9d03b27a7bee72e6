package server

import (
	"context"

	pb "pingly/proto/account"

	"pingly/errors"
	"pingly/services"
)

type AuthServer struct {
	pb.UnimplementedAuthServiceServer
	authService services.IAuthService
}

// NewAuthServer creates a new gRPC server for authentication.
func NewAuthServer(authService services.IAuthService) *AuthServer {
	return &AuthServer{authService: authService}
}

// Register creates the account and its public profile, then issues a token.
func (s *AuthServer) Register(ctx context.Context, in *pb.RegisterRequest) (*pb.AuthResponse, error) {
	session, err := s.authService.Register(ctx, in.GetEmail(), in.GetUsername(), in.GetPassword())
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}

	return &pb.AuthResponse{
		Token:  session.Token,
		UserId: session.UserID,
	}, nil
}

// Login verifies credentials and returns a session token.
func (s *AuthServer) Login(ctx context.Context, in *pb.LoginRequest) (*pb.AuthResponse, error) {
	session, err := s.authService.Login(ctx, in.GetEmail(), in.GetPassword())
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}

	return &pb.AuthResponse{
		Token:  session.Token,
		UserId: session.UserID,
	}, nil
}
