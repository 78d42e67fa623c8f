package auth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// EnvUserRepository holds the fixed operator list parsed from the
// OPERATOR_USERS variable: comma-separated "username:bcrypt-hash" pairs.
// The list is read-only; accounts are managed by editing the environment.
type EnvUserRepository struct {
	users map[string]*User
}

func NewEnvUserRepository(list string) (*EnvUserRepository, error) {
	r := &EnvUserRepository{users: make(map[string]*User)}

	for _, entry := range strings.Split(list, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		username, hash, ok := strings.Cut(entry, ":")
		if !ok || username == "" || hash == "" {
			return nil, fmt.Errorf("malformed operator entry %q, want username:bcrypt-hash", entry)
		}

		r.users[username] = &User{
			ID:           uuid.New().String(),
			Name:         username,
			Username:     username,
			PasswordHash: hash,
		}
	}

	if len(r.users) == 0 {
		return nil, errors.New("OPERATOR_USERS defines no operators")
	}

	return r, nil
}

func (r *EnvUserRepository) Save(user *User) error {
	return errors.New("operator list is read-only")
}

func (r *EnvUserRepository) ExistsByUsername(username string) (bool, error) {
	_, exists := r.users[username]
	return exists, nil
}

func (r *EnvUserRepository) FindByUsername(username string) (*User, error) {
	user, ok := r.users[username]
	if !ok {
		return nil, errors.New("user not found")
	}
	return user, nil
}
