package domain

type User struct {
	ID       ID     `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	UserID    ID     `json:"userID"`
	User      User   `json:"user"`
	Token     string `json:"token"`
	CompanyID ID     `json:"companyId"`
}
