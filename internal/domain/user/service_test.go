package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	jwtsvc "foodgram/internal/pkg/jwt"
)

type stubRepo struct {
	byEmail   map[string]*User
	byID      map[int64]*User
	createErr error
	created   *User
}

func (s *stubRepo) Create(ctx context.Context, u *User) error {
	if s.createErr != nil {
		return s.createErr
	}
	u.ID = 1
	s.created = u
	return nil
}

func (s *stubRepo) GetByID(ctx context.Context, id int64) (*User, error) {
	u, ok := s.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return u, nil
}

func (s *stubRepo) GetByEmail(ctx context.Context, email string) (*User, error) {
	u, ok := s.byEmail[email]
	if !ok {
		return nil, ErrNotFound
	}
	return u, nil
}

func (s *stubRepo) List(ctx context.Context, limit, offset int) ([]User, int64, error) {
	var users []User
	for _, u := range s.byID {
		users = append(users, *u)
	}
	return users, int64(len(users)), nil
}

func (s *stubRepo) UpdateAvatar(ctx context.Context, id int64, avatar string) error {
	u, ok := s.byID[id]
	if !ok {
		return ErrNotFound
	}
	u.Avatar = avatar
	return nil
}

type stubSubs struct {
	set map[int64]bool
}

func (s *stubSubs) SetForAuthors(ctx context.Context, userID int64, authorIDs []int64) (map[int64]bool, error) {
	return s.set, nil
}

func newTestService(repo *stubRepo) *Service {
	return NewService(repo, jwtsvc.New("test-secret", time.Hour), &stubSubs{set: map[int64]bool{}})
}

func TestRegister_HashesPassword(t *testing.T) {
	repo := &stubRepo{}
	svc := newTestService(repo)

	profile, err := svc.Register(context.Background(), &RegisterRequest{
		Email:     "alice@foodgram.app",
		Username:  "alice",
		FirstName: "Alice",
		LastName:  "Baker",
		Password:  "alice12345",
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), profile.ID)
	assert.False(t, profile.IsSubscribed)

	assert.NotEqual(t, "alice12345", repo.created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.created.PasswordHash), []byte("alice12345")))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := &stubRepo{createErr: errors.New("UNIQUE constraint failed: users.email")}
	svc := newTestService(repo)

	_, err := svc.Register(context.Background(), &RegisterRequest{
		Email:    "alice@foodgram.app",
		Username: "alice",
		Password: "alice12345",
	})
	assert.ErrorIs(t, err, ErrAlreadyRegistered)
}

func TestLogin_IssuesValidToken(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("alice12345"), bcrypt.MinCost)
	repo := &stubRepo{byEmail: map[string]*User{
		"alice@foodgram.app": {ID: 7, Email: "alice@foodgram.app", PasswordHash: string(hash)},
	}}
	jwt := jwtsvc.New("test-secret", time.Hour)
	svc := NewService(repo, jwt, &stubSubs{set: map[int64]bool{}})

	token, err := svc.Login(context.Background(), &LoginRequest{
		Email:    "alice@foodgram.app",
		Password: "alice12345",
	})
	assert.NoError(t, err)

	claims, err := jwt.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("alice12345"), bcrypt.MinCost)
	repo := &stubRepo{byEmail: map[string]*User{
		"alice@foodgram.app": {ID: 7, Email: "alice@foodgram.app", PasswordHash: string(hash)},
	}}
	svc := newTestService(repo)

	_, err := svc.Login(context.Background(), &LoginRequest{
		Email:    "alice@foodgram.app",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := newTestService(&stubRepo{byEmail: map[string]*User{}})

	_, err := svc.Login(context.Background(), &LoginRequest{
		Email:    "nobody@foodgram.app",
		Password: "whatever",
	})
	// unknown email and wrong password are indistinguishable to the caller
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestGetProfile_SubscribedFlag(t *testing.T) {
	repo := &stubRepo{byID: map[int64]*User{
		2: {ID: 2, Username: "bob"},
	}}
	svc := NewService(repo, jwtsvc.New("test-secret", time.Hour), &stubSubs{set: map[int64]bool{2: true}})

	profile, err := svc.GetProfile(context.Background(), 1, 2)
	assert.NoError(t, err)
	assert.True(t, profile.IsSubscribed)

	// anonymous viewers never see the flag set
	profile, err = svc.GetProfile(context.Background(), 0, 2)
	assert.NoError(t, err)
	assert.False(t, profile.IsSubscribed)
}

func TestDeleteAvatar(t *testing.T) {
	repo := &stubRepo{byID: map[int64]*User{
		1: {ID: 1, Username: "alice", Avatar: "avatars/alice.png"},
	}}
	svc := newTestService(repo)

	assert.NoError(t, svc.DeleteAvatar(context.Background(), 1))
	assert.Empty(t, repo.byID[1].Avatar)

	assert.ErrorIs(t, svc.DeleteAvatar(context.Background(), 1), ErrNoAvatar)
}
