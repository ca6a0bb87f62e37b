package dto

// CreateAgentRequest alta de un agente de campo.
type CreateAgentRequest struct {
	Name   string `json:"name"`
	Region string `json:"region"`
	Phone  string `json:"phone"`
	Secret string `json:"secret"`
}

// AgentResponse vista pública de un agente. El secreto nunca sale.
type AgentResponse struct {
	Name   string `json:"name"`
	Region string `json:"region"`
	Phone  string `json:"phone,omitempty"`
	Bound  bool   `json:"bound"` // true si ya tiene sesión vinculada
}

// BindSessionRequest vincula explícitamente una sesión de chat al agente.
type BindSessionRequest struct {
	SessionID string `json:"session_id"`
}

// LoginRequest intento de login con el secreto compartido del agente.
// SessionID es el identificador opaco de la sesión de chat que pide vincularse.
type LoginRequest struct {
	Secret    string `json:"secret"`
	SessionID string `json:"session_id"`
}

// LoginResponse resultado de un login correcto.
type LoginResponse struct {
	Name   string `json:"name"`
	Region string `json:"region"`
}
