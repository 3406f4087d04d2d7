package auth

import (
	"context"
	"errors"

	"lendlink-backend/internal/domain/user"
	"lendlink-backend/pkg/id"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TokenIssuer is satisfied by auth.TokenManager; tests swap in a stub.
type TokenIssuer interface {
	Mint(userID, email, role string) (string, error)
}

type Usecase struct {
	users  user.Repository
	tokens TokenIssuer
}

func NewUsecase(users user.Repository, tokens TokenIssuer) *Usecase {
	return &Usecase{users: users, tokens: tokens}
}

func (u *Usecase) Register(ctx context.Context, in RegisterInput) (*UserDTO, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, errors.New("name, email and password are required")
	}
	role := user.Role(in.Role)
	if !role.Valid() {
		return nil, errors.New("role must be borrower, lender or admin")
	}

	// Duplicate email surfaces as a validation failure, not a conflict.
	_, err := u.users.GetByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return nil, user.ErrEmailTaken
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	rec := &user.User{
		UserID:       id.NewID32(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := u.users.Create(ctx, rec); err != nil {
		return nil, err
	}

	dto := toUserDTO(rec)
	return &dto, nil
}

// Login checks the email+role pair and the password hash together; any
// mismatch yields the same credential error so callers cannot probe which
// part failed.
func (u *Usecase) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	if in.Email == "" || in.Password == "" || in.Role == "" {
		return nil, user.ErrInvalidCredentials
	}

	rec, err := u.users.GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrInvalidCredentials
		}
		return nil, err
	}
	if rec.Role != user.Role(in.Role) {
		return nil, user.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte(in.Password)) != nil {
		return nil, user.ErrInvalidCredentials
	}

	token, err := u.tokens.Mint(rec.UserID, rec.Email, string(rec.Role))
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, User: toUserDTO(rec)}, nil
}

func toUserDTO(rec *user.User) UserDTO {
	return UserDTO{
		UserID:    rec.UserID,
		Name:      rec.Name,
		Email:     rec.Email,
		Role:      string(rec.Role),
		CreatedAt: rec.CreatedAt,
	}
}
