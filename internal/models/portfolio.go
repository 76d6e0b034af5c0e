package models

// Experiencia is one work-experience item, owned by the Usuario row.
type Experiencia struct {
	Base
	UsuarioID   int64  `json:"usuario_id"`
	Proyecto    string `json:"proyecto"`
	Descripcion string `json:"descripcion"`
	Puesto      string `json:"puesto"`
	Periodo     string `json:"periodo"`
	Logros      string `json:"logros"`
}

// Educacion is one education item, owned by the Usuario row.
type Educacion struct {
	Base
	UsuarioID   int64  `json:"usuario_id"`
	Titulo      string `json:"titulo"`
	Institucion string `json:"institucion"`
	Periodo     string `json:"periodo,omitempty"`
	Estado      string `json:"estado,omitempty"`
	Logo        string `json:"logo,omitempty"`
}

// Curso is one course/certification item, owned by the Usuario row.
type Curso struct {
	Base
	UsuarioID        int64  `json:"usuario_id"`
	Nombre           string `json:"nombre"`
	Institucion      string `json:"institucion"`
	Periodo          string `json:"periodo,omitempty"`
	CertificacionURL string `json:"certificacion_url,omitempty"`
}

// Proyecto is one showcased project. It is intentionally not scoped to the
// owner; the product never settled on whether it should be.
type Proyecto struct {
	Base
	Titulo      string `json:"titulo"`
	Descripcion string `json:"descripcion,omitempty"`
	Fecha       string `json:"fecha,omitempty"`
	GithubURL   string `json:"github_url,omitempty"`
	Imagen      string `json:"imagen,omitempty"`
}

// Persona holds public contact info. No route reads or writes it; the table
// is kept because the schema has always carried it.
type Persona struct {
	Base
	NombreCompleto string `json:"nombre_completo"`
	ContactoEmail  string `json:"contacto_email"`
	Telefono       string `json:"telefono"`
	Direccion      string `json:"direccion"`
}
