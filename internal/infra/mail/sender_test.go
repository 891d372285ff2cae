package mail

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildBodySubstitutesParams(t *testing.T) {
	dir := t.TempDir()
	tpl := `<p>{{index .Params 0}}</p><p>{{index .Params 1}}</p>`
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "notificacion_347_es.html"), []byte(tpl), 0o644))

	s := NewSender("smtp.mycorp.es", 587, "user", "pass", "no-responder@mycorp.es", dir)

	body, err := s.buildBody(Notification{
		TemplateID: 347,
		Locale:     "es",
		To:         "soporte@mycorp.es",
		Params:     []string{"Email: a@b<br/>", "Datos recuperados de BRAVO:<br/>"},
	})

	assert.NoError(t, err)
	assert.Equal(t, "<p>Email: a@b<br/></p><p>Datos recuperados de BRAVO:<br/></p>", body)
}

func TestBuildBodyMissingTemplate(t *testing.T) {
	s := NewSender("smtp.mycorp.es", 587, "user", "pass", "no-responder@mycorp.es", t.TempDir())

	_, err := s.buildBody(Notification{TemplateID: 999, Locale: "es"})

	assert.Error(t, err)
}
