//go:build grpcserver

package grpcserver

import (
	"context"
	"errors"
	"time"

	userv1 "userProfileManagement/api/user/v1"
	"userProfileManagement/internal/auth"
	"userProfileManagement/internal/profile"
	"userProfileManagement/models"
	"userProfileManagement/repository"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Server bundles dependencies and implements user.v1.ProfileService.
type Server struct {
	userv1.UnimplementedProfileServiceServer
	Users    *repository.UserRepository
	Admins   *repository.AdminRepository
	Profiles *profile.Service
	Secret   string
	TokenTTL time.Duration
}

// resolveCurrentUser retrieves the authenticated user from the database.
func (s *Server) resolveCurrentUser(ctx context.Context, p *auth.Principal) (*models.User, error) {
	u, err := s.Users.GetByUsername(ctx, p.Name)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "get user: %v", err)
	}
	if u == nil {
		return nil, status.Error(codes.NotFound, "user not found")
	}
	return u, nil
}

// Login verifies admin credentials and issues a bearer token. It is on the
// interceptor allowlist, so no principal is required.
func (s *Server) Login(ctx context.Context, req *userv1.LoginRequest) (*userv1.LoginResponse, error) {
	if req.GetUsername() == "" || req.GetPassword() == "" {
		return nil, status.Error(codes.InvalidArgument, "username and password are required")
	}
	tok, err := auth.AdminLogin(ctx, s.Users, s.Admins, s.Secret, req.GetUsername(), req.GetPassword(), s.TokenTTL)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return nil, status.Error(codes.Unauthenticated, "invalid credentials")
		}
		return nil, status.Errorf(codes.Internal, "login: %v", err)
	}
	return &userv1.LoginResponse{Token: tok}, nil
}

// GetProfile returns the caller's stored record.
func (s *Server) GetProfile(ctx context.Context, _ *userv1.GetProfileRequest) (*userv1.GetProfileResponse, error) {
	p, err := auth.RequireEndUserOrAdmin(ctx)
	if err != nil {
		return nil, err
	}
	u, err := s.resolveCurrentUser(ctx, p)
	if err != nil {
		return nil, err
	}
	return &userv1.GetProfileResponse{User: toProtoUser(u)}, nil
}

// UpdateProfile sets the caller's email, bio and birthdate. The birthdate is
// validated up front so a bad value never reaches storage.
func (s *Server) UpdateProfile(ctx context.Context, req *userv1.UpdateProfileRequest) (*userv1.UpdateProfileResponse, error) {
	p, err := auth.RequireEndUserOrAdmin(ctx)
	if err != nil {
		return nil, err
	}
	if req.GetBirthdate() != "" {
		if _, perr := time.Parse(models.BirthdateLayout, req.GetBirthdate()); perr != nil {
			return nil, status.Errorf(codes.InvalidArgument, "birthdate must be %s: %v", models.BirthdateLayout, perr)
		}
	}
	if err := s.Users.UpdateProfile(ctx, p.Name, req.GetEmail(), req.GetBio(), req.GetBirthdate()); err != nil {
		return nil, status.Errorf(codes.Internal, "update profile: %v", err)
	}
	u, err := s.resolveCurrentUser(ctx, p)
	if err != nil {
		return nil, err
	}
	return &userv1.UpdateProfileResponse{User: toProtoUser(u)}, nil
}

// AboutMe returns the caller's formatted self-description and derived age.
func (s *Server) AboutMe(ctx context.Context, _ *userv1.AboutMeRequest) (*userv1.AboutMeResponse, error) {
	p, err := auth.RequireEndUserOrAdmin(ctx)
	if err != nil {
		return nil, err
	}
	summary, err := s.Profiles.AboutMe(ctx, p.Name)
	if err != nil {
		return nil, mapProfileErr(err)
	}
	age, err := s.Profiles.Age(ctx, p.Name)
	if err != nil {
		return nil, mapProfileErr(err)
	}
	return &userv1.AboutMeResponse{Summary: summary, Age: int32(age)}, nil
}

// mapProfileErr converts domain errors into gRPC statuses.
func mapProfileErr(err error) error {
	var mf *models.MissingFieldError
	var pe *models.ParseError
	switch {
	case errors.Is(err, profile.ErrNotFound):
		return status.Error(codes.NotFound, "user not found")
	case errors.As(err, &mf):
		return status.Errorf(codes.FailedPrecondition, "profile incomplete: %v", mf)
	case errors.As(err, &pe):
		return status.Errorf(codes.FailedPrecondition, "bad birthdate: %v", pe)
	default:
		return status.Errorf(codes.Internal, "profile: %v", err)
	}
}

// toProtoUser converts a models.User to a proto User message.
func toProtoUser(u *models.User) *userv1.User {
	if u == nil {
		return nil
	}
	return &userv1.User{
		Id:        u.ID,
		PublicId:  u.PublicID,
		Username:  u.Username,
		Email:     u.Email,
		Bio:       u.Bio,
		Birthdate: u.Birthdate,
		Role:      u.Role,
	}
}
