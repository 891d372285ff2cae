package render

import (
	"bytes"
	"text/template"
)

const userTpl = `{{if .HasPolicy}}Nº de póliza: {{.PolicyNumber}}\n{{else}}Nº de tarjeta: {{.CardNumber}}\n{{end}}` +
	`Tipo de documento: {{.IDDocumentType}}\n` +
	`Nº de documento: {{.IDDocumentNumber}}\n` +
	`Email: {{.Email}}\n` +
	`Teléfono: {{.PhoneNumber}}\n` +
	`User Agent: {{.UserAgent}}\n`

const profileTpl = `Datos recuperados de BRAVO:\n` +
	`Grupo de telefonía: {{.PhoneGroup}}\n` +
	`Fecha de nacimiento: {{.BirthDate}}\n` +
	`{{range .DocumentTypes}}Tipo de documento: {{.}}\n{{end}}` +
	`Nº de documento: {{.DocumentNumber}}\n` +
	`Tipo de cliente: {{.CustomerType}}\n` +
	`Status: {{.Status}}\n` +
	`Motivo de alta: {{.AdmissionReason}}\n` +
	`Registrado en web: {{.RegisteredOnline}}\n`

// TemplateRenderer renders the blocks through text/template. The templates
// are parsed once at construction.
type TemplateRenderer struct {
	user    *template.Template
	profile *template.Template
}

func NewTemplateRenderer() *TemplateRenderer {
	return &TemplateRenderer{
		user:    template.Must(template.New("datosUsuario").Parse(userTpl)),
		profile: template.Must(template.New("datosBravo").Parse(profileTpl)),
	}
}

func (r *TemplateRenderer) UserSection(d UserData) string {
	return merge(r.user, d)
}

func (r *TemplateRenderer) ProfileSection(d *ProfileData) string {
	if d == nil {
		return ""
	}
	return merge(r.profile, d)
}

func merge(tpl *template.Template, data interface{}) string {
	var buf bytes.Buffer
	// Both templates only reference fields that exist on their data
	// structs, so Execute cannot fail here; the partial buffer is
	// still the best answer if it ever does.
	_ = tpl.Execute(&buf, data)
	return buf.String()
}
