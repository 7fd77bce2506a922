package integrante

type CreateRequest struct {
	IDEstablecimiento string  `json:"id_establecimiento" binding:"required,uuid"`
	NombrePersona     string  `json:"nombre_persona" binding:"required"`
	Cargo             *string `json:"cargo"`
	Email             *string `json:"email" binding:"omitempty,email"`
	Telefono          *string `json:"telefono"`
}

type UpdateRequest struct {
	NombrePersona string  `json:"nombre_persona" binding:"required"`
	Cargo         *string `json:"cargo"`
	Email         *string `json:"email" binding:"omitempty,email"`
	Telefono      *string `json:"telefono"`
}
