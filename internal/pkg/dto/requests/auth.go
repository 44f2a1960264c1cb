package requests

type RegisterUser struct {
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone" validate:"required,phone_number"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,role_type"`
}

type LoginUser struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type UpdateProfile struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone" validate:"required,phone_number"`
}
