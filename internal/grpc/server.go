//go:build grpcserver

package grpcserver

import (
	"context"
	"net"

	adminv1 "userProfileManagement/api/admin/v1"
	userv1 "userProfileManagement/api/user/v1"
	"userProfileManagement/internal/auth"
	"userProfileManagement/internal/clock"
	"userProfileManagement/internal/config"
	"userProfileManagement/internal/profile"
	"userProfileManagement/repository"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const (
	healthCheckMethod = "/grpc.health.v1.Health/Check"
	loginMethod       = "/user.v1.ProfileService/Login"
)

// StartGRPC starts the gRPC server on the configured address and returns a
// shutdown function. The server implements ProfileService and AdminService
// behind the authentication interceptor; Login and health checks bypass it.
func StartGRPC(cfg *config.Config, users *repository.UserRepository, admins *repository.AdminRepository) (func(context.Context) error, error) {
	if cfg == nil {
		panic("config is required")
	}

	addr := cfg.GRPC.Address
	if addr == "" {
		addr = ":50051"
	}

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}

	// Allow plaintext for simplicity; in production, configure TLS.
	_ = insecure.NewCredentials

	srv := grpc.NewServer(grpc.UnaryInterceptor(
		auth.NewUnaryAuthInterceptor(cfg.Auth.JWTSecret, healthCheckMethod, loginMethod)))

	profiles := profile.NewService(users, clock.System{})

	s := &Server{Users: users, Admins: admins, Profiles: profiles, Secret: cfg.Auth.JWTSecret, TokenTTL: cfg.Auth.TokenTTL}
	userv1.RegisterProfileServiceServer(srv, s)

	as := &AdminServer{Users: users, Admins: admins}
	adminv1.RegisterAdminServiceServer(srv, as)

	go func() { _ = srv.Serve(lis) }()

	return func(ctx context.Context) error {
		done := make(chan struct{})
		go func() { srv.GracefulStop(); close(done) }()
		select {
		case <-done:
			return nil
		case <-ctx.Done():
			srv.Stop()
			return ctx.Err()
		}
	}, nil
}
