package bravo

// DatosCliente is the customer profile BRAVO returns. Field names follow the
// service's own wire format.
type DatosCliente struct {
	GenTGrupoTmk      string `json:"genTGrupoTmk"`
	FechaNacimiento   string `json:"fechaNacimiento"` // dd/MM/yyyy
	GenCTipoDocumento int    `json:"genCTipoDocumento"`
	NumeroDocAcred    string `json:"numeroDocAcred"`
	GenTTipoCliente   int    `json:"genTTipoCliente"`
	GenTStatus        int    `json:"genTStatus"`
	IDMotivoAlta      int    `json:"idMotivoAlta"`

	// FInactivoWeb is a presence flag: BRAVO sets it (to anything) when the
	// customer is inactive on the web channel and omits it otherwise. A
	// pointer keeps an explicit null indistinguishable from absence, which
	// is exactly how the consumer treats it.
	FInactivoWeb *string `json:"fInactivoWeb"`
}

// FechaNacimientoLayout is the fixed date format of the profile service.
const FechaNacimientoLayout = "02/01/2006"
