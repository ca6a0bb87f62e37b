package entity

// Agent representa un agente de campo (revendedor) identificado por nombre único.
// SessionID es el identificador de sesión externa (chat); se vincula una sola vez
// en el primer login correcto y es inmutable después. Vacío = aún sin vincular.
// Los agentes nunca se borran: las transacciones históricas los referencian por nombre.
type Agent struct {
	Name      string
	Region    string // etiqueta de zona (MFY)
	Phone     string
	Secret    string // credencial compartida de login
	SessionID string
}
