package client

import (
	"context"

	pb "pingly/proto/account"

	"google.golang.org/grpc"

	"pingly/errors"
	"pingly/services"
)

// AccountClient talks to the auth endpoints. Register and Login are the
// only unauthenticated calls in the API.
type AccountClient struct {
	client pb.AuthServiceClient
}

func NewAccountClient(conn *grpc.ClientConn) *AccountClient {
	return &AccountClient{client: pb.NewAuthServiceClient(conn)}
}

func (c *AccountClient) Register(ctx context.Context, email, username, password string) (services.Session, error) {
	response, err := c.client.Register(ctx, &pb.RegisterRequest{
		Email:    email,
		Username: username,
		Password: password,
	})
	if err != nil {
		return services.Session{}, errors.NewTransport("register", err)
	}
	return services.Session{UserID: response.GetUserId(), Token: response.GetToken()}, nil
}

func (c *AccountClient) Login(ctx context.Context, email, password string) (services.Session, error) {
	response, err := c.client.Login(ctx, &pb.LoginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return services.Session{}, errors.NewTransport("login", err)
	}
	return services.Session{UserID: response.GetUserId(), Token: response.GetToken()}, nil
}
