package service

import (
	"context"
	"fmt"

	"reviewdb-backend/internal/domains/user"
	"reviewdb-backend/internal/shared/access"
)

type userService struct {
	repo user.Repository
}

func NewUserService(repo user.Repository) user.Service {
	return &userService{repo: repo}
}

// ============================================================
// ADMIN SURFACE
// ============================================================

func (s *userService) List(ctx context.Context, req user.ListUsersRequest) ([]user.UserResponse, int64, error) {
	req.Normalize()

	users, total, err := s.repo.List(ctx, req.Search, req.Limit, req.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}

	return user.ToResponseList(users), total, nil
}

func (s *userService) Get(ctx context.Context, username string) (*user.UserResponse, error) {
	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("get user %q: %w", username, err)
	}

	resp := user.ToResponse(u)
	return &resp, nil
}

func (s *userService) Create(ctx context.Context, req user.CreateUserRequest) (*user.UserResponse, error) {
	// Step 1: Validate input
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Build and normalize (lowercases email, defaults role)
	u := &user.User{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Bio:       req.Bio,
		Role:      access.Role(req.Role),
	}
	u.Normalize()

	// Step 3: Persist; unique constraints decide collisions
	created, err := s.repo.Create(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	resp := user.ToResponse(created)
	return &resp, nil
}

func (s *userService) Update(ctx context.Context, username string, req user.UpdateUserRequest) (*user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("get user %q: %w", username, err)
	}

	applyPatch(u, req)
	// admin path: role changes are honoured
	if req.Role != nil {
		u.Role = access.Role(*req.Role)
	}
	u.Normalize()

	updated, err := s.repo.Update(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("update user %q: %w", username, err)
	}

	resp := user.ToResponse(updated)
	return &resp, nil
}

func (s *userService) Delete(ctx context.Context, username string) error {
	if err := s.repo.DeleteByUsername(ctx, username); err != nil {
		return fmt.Errorf("delete user %q: %w", username, err)
	}
	return nil
}

// ============================================================
// SELF-SERVICE SURFACE
// ============================================================

func (s *userService) GetMe(ctx context.Context, p access.Principal) (*user.UserResponse, error) {
	u, err := s.repo.GetByID(ctx, p.UserID)
	if err != nil {
		return nil, fmt.Errorf("get current user: %w", err)
	}

	resp := user.ToResponse(u)
	return &resp, nil
}

func (s *userService) UpdateMe(ctx context.Context, p access.Principal, req user.UpdateUserRequest) (*user.UserResponse, error) {
	// a submitted role is dropped before validation even sees it
	req.Role = nil

	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.GetByID(ctx, p.UserID)
	if err != nil {
		return nil, fmt.Errorf("get current user: %w", err)
	}

	applyPatch(u, req)
	u.Normalize()

	updated, err := s.repo.Update(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("update current user: %w", err)
	}

	resp := user.ToResponse(updated)
	return &resp, nil
}

// applyPatch copies the non-nil fields of a partial update, role excluded.
func applyPatch(u *user.User, req user.UpdateUserRequest) {
	if req.Email != nil {
		u.Email = *req.Email
	}
	if req.FirstName != nil {
		u.FirstName = req.FirstName
	}
	if req.LastName != nil {
		u.LastName = req.LastName
	}
	if req.Bio != nil {
		u.Bio = req.Bio
	}
}
