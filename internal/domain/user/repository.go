package user

import "context"

// UserRepository defines data access methods for user records.
type UserRepository interface {
	// Create inserts a new user
	Create(ctx context.Context, u User) (User, error)

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id string) (User, error)

	// GetByEmail retrieves a user by email, used for login
	GetByEmail(ctx context.Context, email string) (User, error)

	// List retrieves every user, used for the assignee picker
	List(ctx context.Context) ([]User, error)
}
