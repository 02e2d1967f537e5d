package schemas

// UserCreateRequest is the wire shape for signing up one user.
type UserCreateRequest struct {
	Username string  `json:"username"`
	Password string  `json:"password"`
	Email    *string `json:"email"`
}

// UserLoginRequest carries credentials for token issuance.
type UserLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserCreate is a validated signup. Password is still plaintext here; the
// auth service hashes it before it reaches the repository.
type UserCreate struct {
	Username string
	Password string
	Email    *string
}

// UserLogin is a validated credential pair.
type UserLogin struct {
	Username string
	Password string
}

func (r UserCreateRequest) Validate() (UserCreate, error) {
	username, err := NonEmptyString("username", r.Username)
	if err != nil {
		return UserCreate{}, err
	}
	password, err := NonEmptyString("password", r.Password)
	if err != nil {
		return UserCreate{}, err
	}
	return UserCreate{Username: username, Password: password, Email: r.Email}, nil
}

func (r UserLoginRequest) Validate() (UserLogin, error) {
	username, err := NonEmptyString("username", r.Username)
	if err != nil {
		return UserLogin{}, err
	}
	password, err := NonEmptyString("password", r.Password)
	if err != nil {
		return UserLogin{}, err
	}
	return UserLogin{Username: username, Password: password}, nil
}

// ValidateUserCreates validates a batch of signups.
func ValidateUserCreates(requests []UserCreateRequest) ([]UserCreate, error) {
	creates := make([]UserCreate, 0, len(requests))
	for _, r := range requests {
		create, err := r.Validate()
		if err != nil {
			return nil, err
		}
		creates = append(creates, create)
	}
	return creates, nil
}
