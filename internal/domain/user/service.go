package user

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"foodgram/internal/pkg/dberr"
	jwtsvc "foodgram/internal/pkg/jwt"
)

// SubscriptionChecker is implemented by the subscription repository and
// reports which of the given authors the viewer follows.
type SubscriptionChecker interface {
	SetForAuthors(ctx context.Context, userID int64, authorIDs []int64) (map[int64]bool, error)
}

type Service struct {
	repo Repository
	jwt  *jwtsvc.Service
	subs SubscriptionChecker
}

func NewService(repo Repository, jwt *jwtsvc.Service, subs SubscriptionChecker) *Service {
	return &Service{repo: repo, jwt: jwt, subs: subs}
}

func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*Profile, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &User{
		Email:        req.Email,
		Username:     req.Username,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: string(hash),
	}

	if err := s.repo.Create(ctx, u); err != nil {
		if dberr.IsUniqueViolation(err) {
			return nil, ErrAlreadyRegistered
		}
		return nil, err
	}

	p := NewProfile(u, false)
	return &p, nil
}

func (s *Service) Login(ctx context.Context, req *LoginRequest) (string, error) {
	u, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == ErrNotFound {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return "", ErrInvalidCredentials
	}

	return s.jwt.GenerateToken(u.ID)
}

// GetProfile returns the profile of id as seen by viewerID (0 for anonymous).
func (s *Service) GetProfile(ctx context.Context, viewerID, id int64) (*Profile, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	subscribed := false
	if viewerID > 0 {
		set, err := s.subs.SetForAuthors(ctx, viewerID, []int64{id})
		if err != nil {
			return nil, err
		}
		subscribed = set[id]
	}

	p := NewProfile(u, subscribed)
	return &p, nil
}

func (s *Service) List(ctx context.Context, viewerID int64, limit, offset int) ([]Profile, int64, error) {
	users, total, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	subscribed := map[int64]bool{}
	if viewerID > 0 && len(users) > 0 {
		ids := make([]int64, 0, len(users))
		for _, u := range users {
			ids = append(ids, u.ID)
		}
		subscribed, err = s.subs.SetForAuthors(ctx, viewerID, ids)
		if err != nil {
			return nil, 0, err
		}
	}

	profiles := make([]Profile, 0, len(users))
	for i := range users {
		profiles = append(profiles, NewProfile(&users[i], subscribed[users[i].ID]))
	}
	return profiles, total, nil
}

func (s *Service) SetAvatar(ctx context.Context, userID int64, avatar string) (*Profile, error) {
	if err := s.repo.UpdateAvatar(ctx, userID, avatar); err != nil {
		return nil, err
	}
	return s.GetProfile(ctx, 0, userID)
}

func (s *Service) DeleteAvatar(ctx context.Context, userID int64) error {
	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if u.Avatar == "" {
		return ErrNoAvatar
	}
	return s.repo.UpdateAvatar(ctx, userID, "")
}
