//go:build grpcserver

package grpcserver

import (
	"context"
	"strings"

	adminv1 "userProfileManagement/api/admin/v1"
	userv1 "userProfileManagement/api/user/v1"
	"userProfileManagement/internal/auth"
	"userProfileManagement/models"
	"userProfileManagement/repository"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	maxListLimit     = 100 // Maximum allowed limit for list operations.
	defaultListLimit = 20  // Default limit for list operations.
)

// AdminServer implements admin.v1.AdminService.
type AdminServer struct {
	adminv1.UnimplementedAdminServiceServer
	Users  *repository.UserRepository
	Admins *repository.AdminRepository
}

// CreateUser registers a new user with the given username.
func (s *AdminServer) CreateUser(ctx context.Context, req *adminv1.CreateUserRequest) (*adminv1.CreateUserResponse, error) {
	if _, err := auth.RequireAdmin(ctx, s.Users); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.GetUsername())
	if name == "" {
		return nil, status.Error(codes.InvalidArgument, "username is required")
	}
	existing, err := s.Users.GetByUsername(ctx, name)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "get user: %v", err)
	}
	if existing != nil {
		return nil, status.Error(codes.AlreadyExists, "username taken")
	}
	u, err := s.Users.Create(ctx, name)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "create user: %v", err)
	}
	return &adminv1.CreateUserResponse{User: toProtoUser(u)}, nil
}

// ListUsers returns users ordered by id.
func (s *AdminServer) ListUsers(ctx context.Context, req *adminv1.ListUsersRequest) (*adminv1.ListUsersResponse, error) {
	if _, err := auth.RequireAdmin(ctx, s.Users); err != nil {
		return nil, err
	}
	limit := int(req.GetLimit())
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	list, err := s.Users.List(ctx, limit, int(req.GetOffset()))
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list users: %v", err)
	}
	out := make([]*userv1.User, 0, len(list))
	for i := range list {
		out = append(out, toProtoUser(&list[i]))
	}
	return &adminv1.ListUsersResponse{Users: out}, nil
}

// PromoteUser grants the admin role to an existing user.
func (s *AdminServer) PromoteUser(ctx context.Context, req *adminv1.PromoteUserRequest) (*adminv1.PromoteUserResponse, error) {
	if _, err := auth.RequireAdmin(ctx, s.Users); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.GetUsername())
	if name == "" {
		return nil, status.Error(codes.InvalidArgument, "username is required")
	}
	u, err := s.Users.GetByUsername(ctx, name)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "get user: %v", err)
	}
	if u == nil {
		return nil, status.Error(codes.NotFound, "user not found")
	}
	if err := s.Users.UpdateRoleByUsername(ctx, name, models.RoleAdmin); err != nil {
		return nil, status.Errorf(codes.Internal, "promote: %v", err)
	}
	u.Role = models.RoleAdmin
	return &adminv1.PromoteUserResponse{User: toProtoUser(u)}, nil
}

// SetAdminPassword stores a bcrypt-hashed credential for an admin user.
func (s *AdminServer) SetAdminPassword(ctx context.Context, req *adminv1.SetAdminPasswordRequest) (*adminv1.SetAdminPasswordResponse, error) {
	if _, err := auth.RequireAdmin(ctx, s.Users); err != nil {
		return nil, err
	}
	if req.GetUsername() == "" || req.GetPassword() == "" {
		return nil, status.Error(codes.InvalidArgument, "username and password are required")
	}
	u, err := s.Users.GetByUsername(ctx, req.GetUsername())
	if err != nil {
		return nil, status.Errorf(codes.Internal, "get user: %v", err)
	}
	if u == nil {
		return nil, status.Error(codes.NotFound, "user not found")
	}
	if strings.ToLower(strings.TrimSpace(u.Role)) != models.RoleAdmin {
		return nil, status.Error(codes.FailedPrecondition, "user is not an admin; promote first")
	}
	if err := s.Admins.SetPassword(ctx, u.ID, req.GetPassword()); err != nil {
		return nil, status.Errorf(codes.Internal, "set password: %v", err)
	}
	return &adminv1.SetAdminPasswordResponse{}, nil
}

// DeleteUser removes a user and, via the schema's cascade, any credential.
func (s *AdminServer) DeleteUser(ctx context.Context, req *adminv1.DeleteUserRequest) (*adminv1.DeleteUserResponse, error) {
	if _, err := auth.RequireAdmin(ctx, s.Users); err != nil {
		return nil, err
	}
	if req.GetId() == 0 {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}
	if err := s.Users.Delete(ctx, req.GetId()); err != nil {
		return nil, status.Errorf(codes.Internal, "delete user: %v", err)
	}
	return &adminv1.DeleteUserResponse{}, nil
}
