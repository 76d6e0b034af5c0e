package models

// Usuario is the single owner account controlling all site content.
type Usuario struct {
	Base
	Username      string `json:"username"`
	PasswordHash  string `json:"-"` // Exclude password hash from JSON responses
	NombrePublico string `json:"nombre_publico"`
	ProfileImage  string `json:"profile_image,omitempty"`
	AcercaDeMi    string `json:"acerca_de_mi,omitempty"`
}
