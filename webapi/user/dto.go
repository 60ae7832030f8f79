package user

// NewUser represents the request body for creating a new user.
type NewUser struct {
	Username string `json:"username" validate:"required,max=50,min=3"`
	Email    string `json:"email" validate:"required,email,max=50"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// UpdateUserInput represents the request body for updating a user. ID must
// match the id in the path.
type UpdateUserInput struct {
	ID       string  `json:"id" validate:"required,uuid"`
	Username *string `json:"username" validate:"omitempty,max=50,min=3"`
	Email    *string `json:"email" validate:"omitempty,email,max=50"`
	Password *string `json:"password" validate:"omitempty,min=6,max=72"`
}
