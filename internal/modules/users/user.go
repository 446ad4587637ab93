package users

import (
	"encoding/json"
	"errors"
	"fmt"
)

// StorageKey is the durable key holding the signed-up visitor.
const StorageKey = "user"

var ErrMalformed = errors.New("malformed stored user")

// User is created once by signup and never updated afterwards.
type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// New keeps both fields as typed and reports whether either is empty.
// Whitespace counts as a value, the same as a browser's required check.
func New(name, email string) (User, bool) {
	if name == "" || email == "" {
		return User{}, false
	}
	return User{Name: name, Email: email}, true
}

// DisplayName is what the header greets the visitor with.
func DisplayName(u *User) string {
	if u == nil || u.Name == "" {
		return "Guest"
	}
	return u.Name
}

func Encode(u User) ([]byte, error) {
	return json.Marshal(u)
}

// Decode rejects JSON null and records without a name or email.
func Decode(b []byte) (User, error) {
	var u *User
	if err := json.Unmarshal(b, &u); err != nil {
		return User{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if u == nil {
		return User{}, fmt.Errorf("%w: null", ErrMalformed)
	}
	if _, ok := New(u.Name, u.Email); !ok {
		return User{}, fmt.Errorf("%w: missing name or email", ErrMalformed)
	}
	return *u, nil
}
