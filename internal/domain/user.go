package domain

// User is the authenticated identity held by the session store.
// All ids originate from the backend; the client never mints one.
type User struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
}

type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type Registration struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"fullName" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
}

// AuthResult is the backend's answer to login and register. A nil ID means
// the attempt was rejected and Message carries the reason for display.
type AuthResult struct {
	ID       *int64
	Email    string
	FullName string
	Phone    string
	Role     string
	Message  string
}
