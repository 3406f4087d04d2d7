package user

import "context"

type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByUserID(ctx context.Context, userID string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]User, error)
	ListByRole(ctx context.Context, role Role) ([]User, error)
	ListByUserIDs(ctx context.Context, userIDs []string) ([]User, error)
	Save(ctx context.Context, u *User) error
	Delete(ctx context.Context, userID string) error
}
