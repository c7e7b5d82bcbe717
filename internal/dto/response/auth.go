package response

type TokenResponse struct {
	Token string `json:"token"`
}

type AdminStatusResponse struct {
	Admin bool `json:"admin"`
}
