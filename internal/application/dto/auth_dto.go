package dto

// LoginRequest credenciales del administrador.
type LoginRequest struct {
	Usuario  string `json:"usuario"`
	Password string `json:"password"`
}

// LoginResponse token emitido tras autenticar.
type LoginResponse struct {
	Token string `json:"token"`
}
