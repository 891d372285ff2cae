package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mycorp/alta-soporte/internal/render"
)

func sampleUserData(hasPolicy bool) render.UserData {
	return render.UserData{
		HasPolicy:        hasPolicy,
		PolicyNumber:     "12345",
		CardNumber:       "770012345678",
		IDDocumentType:   "NIF",
		IDDocumentNumber: "12345678Z",
		Email:            "cliente@example.com",
		PhoneNumber:      "600123456",
		UserAgent:        "Mozilla/5.0",
	}
}

func sampleProfileData() *render.ProfileData {
	return &render.ProfileData{
		PhoneGroup:       "TMK-3",
		BirthDate:        "05/11/1982",
		DocumentTypes:    []string{"NIF", "DNI"},
		DocumentNumber:   "12345678Z",
		CustomerType:     "REAL",
		Status:           "4",
		AdmissionReason:  "9",
		RegisteredOnline: "SÍ",
	}
}

func TestUserSectionFieldOrder(t *testing.T) {
	out := render.NewPlainRenderer().UserSection(sampleUserData(true))

	fields := []string{
		`Nº de póliza: 12345\n`,
		`Tipo de documento: NIF\n`,
		`Nº de documento: 12345678Z\n`,
		`Email: cliente@example.com\n`,
		`Teléfono: 600123456\n`,
		`User Agent: Mozilla/5.0\n`,
	}

	last := -1
	for _, f := range fields {
		idx := strings.Index(out, f)
		assert.Greater(t, idx, last, "field out of order: %s", f)
		last = idx
	}
	assert.NotContains(t, out, "tarjeta")
	assert.True(t, strings.HasSuffix(out, render.EscapedLineSeparator))
}

func TestUserSectionCardVariant(t *testing.T) {
	out := render.NewPlainRenderer().UserSection(sampleUserData(false))

	assert.Contains(t, out, `Nº de tarjeta: 770012345678\n`)
	assert.NotContains(t, out, "póliza")
}

func TestUserSectionUsesEscapedSeparatorNotNewline(t *testing.T) {
	out := render.NewPlainRenderer().UserSection(sampleUserData(true))

	assert.NotContains(t, out, "\n", "separator must be the two-character escape, not a real newline")
	assert.Contains(t, out, render.EscapedLineSeparator)
}

func TestProfileSectionRendersAllMatchedDocumentTypes(t *testing.T) {
	out := render.NewPlainRenderer().ProfileSection(sampleProfileData())

	assert.True(t, strings.HasPrefix(out, `Datos recuperados de BRAVO:\n`))
	assert.Contains(t, out, `Tipo de documento: NIF\n`)
	assert.Contains(t, out, `Tipo de documento: DNI\n`)
	assert.Contains(t, out, `Registrado en web: SÍ\n`)
}

func TestProfileSectionNilIsEmpty(t *testing.T) {
	assert.Equal(t, "", render.NewPlainRenderer().ProfileSection(nil))
	assert.Equal(t, "", render.NewTemplateRenderer().ProfileSection(nil))
}

func TestTemplateAndPlainRenderersAgree(t *testing.T) {
	tpl := render.NewTemplateRenderer()
	plain := render.NewPlainRenderer()

	for _, hasPolicy := range []bool{true, false} {
		d := sampleUserData(hasPolicy)
		assert.Equal(t, plain.UserSection(d), tpl.UserSection(d))
	}

	p := sampleProfileData()
	assert.Equal(t, plain.ProfileSection(p), tpl.ProfileSection(p))

	p.DocumentTypes = nil
	assert.Equal(t, plain.ProfileSection(p), tpl.ProfileSection(p))
}

func TestRenderingIsIdempotent(t *testing.T) {
	r := render.New("template")

	d := sampleUserData(true)
	p := sampleProfileData()
	assert.Equal(t, r.UserSection(d), r.UserSection(d))
	assert.Equal(t, r.ProfileSection(p), r.ProfileSection(p))
}

func TestNewSelectsImplementation(t *testing.T) {
	assert.IsType(t, &render.PlainRenderer{}, render.New("plain"))
	assert.IsType(t, &render.TemplateRenderer{}, render.New("template"))
	assert.IsType(t, &render.TemplateRenderer{}, render.New(""))
}
