package render

import "strings"

// PlainRenderer builds the blocks by direct concatenation. It must stay
// byte-identical with TemplateRenderer for the same input.
type PlainRenderer struct{}

func NewPlainRenderer() *PlainRenderer {
	return &PlainRenderer{}
}

func (r *PlainRenderer) UserSection(d UserData) string {
	var b strings.Builder

	if d.HasPolicy {
		writeField(&b, "Nº de póliza", d.PolicyNumber)
	} else {
		writeField(&b, "Nº de tarjeta", d.CardNumber)
	}
	writeField(&b, "Tipo de documento", d.IDDocumentType)
	writeField(&b, "Nº de documento", d.IDDocumentNumber)
	writeField(&b, "Email", d.Email)
	writeField(&b, "Teléfono", d.PhoneNumber)
	writeField(&b, "User Agent", d.UserAgent)

	return b.String()
}

func (r *PlainRenderer) ProfileSection(d *ProfileData) string {
	if d == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString("Datos recuperados de BRAVO:")
	b.WriteString(EscapedLineSeparator)
	writeField(&b, "Grupo de telefonía", d.PhoneGroup)
	writeField(&b, "Fecha de nacimiento", d.BirthDate)
	for _, t := range d.DocumentTypes {
		writeField(&b, "Tipo de documento", t)
	}
	writeField(&b, "Nº de documento", d.DocumentNumber)
	writeField(&b, "Tipo de cliente", d.CustomerType)
	writeField(&b, "Status", d.Status)
	writeField(&b, "Motivo de alta", d.AdmissionReason)
	writeField(&b, "Registrado en web", d.RegisteredOnline)

	return b.String()
}

func writeField(b *strings.Builder, label, value string) {
	b.WriteString(label)
	b.WriteString(": ")
	b.WriteString(value)
	b.WriteString(EscapedLineSeparator)
}
