package polizas

// Compania is the fixed company identifier every policy query carries.
const Compania = 1

// ConsultaPoliza is the structured query the policy detail service expects.
// NumColectivo carries the collective number the customer typed as the
// accrediting document of the policy.
type ConsultaPoliza struct {
	NumPoliza    int `json:"numPoliza"`
	NumColectivo int `json:"numColectivo"`
	Compania     int `json:"compania"`
}

// DatosPersonales is the policy holder's personal data block.
type DatosPersonales struct {
	Nombre        string `json:"nombre"`
	Apellido1     string `json:"apellido1"`
	Apellido2     string `json:"apellido2"`
	Identificador string `json:"identificador"`
}

// DetallePoliza is the detail structure the service returns.
type DetallePoliza struct {
	Tomador DatosPersonales `json:"tomador"`
}
