package transport

import "github.com/Skotchmaster/pitipaw_catalog/internal/models"

type AdminRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AdminView struct {
	ID       models.ID `json:"_id"`
	Username string    `json:"username"`
}

type AdminCreatedResponse struct {
	ID       models.ID `json:"_id"`
	Username string    `json:"username"`
	Message  string    `json:"message"`
}

type LoginResponse struct {
	Message string    `json:"message"`
	Admin   LoginUser `json:"admin"`
}

type LoginUser struct {
	Username string `json:"username"`
}

type LoginInfoResponse struct {
	Message string   `json:"message"`
	Methods []string `json:"methods"`
}
