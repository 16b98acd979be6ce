package profile

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	apperr "rdpLauncher/internal/error"
	"rdpLauncher/internal/models"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(v int) *int { return &v }

func TestScreenSettings(t *testing.T) {
	tests := []struct {
		name     string
		protocol models.Protocol
		width    *int
		height   *int
		want     Screen
	}{
		{"rdp defaults to fullscreen", models.ProtocolRDP, nil, nil, Screen{0, 0, 0}},
		{"ssh defaults to windowed 1024x768", models.ProtocolSSH, nil, nil, Screen{1024, 768, 1}},
		{"explicit size on rdp", models.ProtocolRDP, intp(1280), intp(720), Screen{1280, 720, 1}},
		{"explicit size on ssh", models.ProtocolSSH, intp(1280), intp(720), Screen{1280, 720, 1}},
		{"only width given on rdp", models.ProtocolRDP, intp(1280), nil, Screen{0, 0, 0}},
		{"only height given on ssh", models.ProtocolSSH, nil, intp(720), Screen{1024, 768, 1}},
		{"unknown protocol falls back to rdp", models.Protocol("VNC"), nil, nil, Screen{0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScreenSettings(tt.protocol, tt.width, tt.height))
		})
	}
}

func TestParseDimension(t *testing.T) {
	v, err := ParseDimension("  ")
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = ParseDimension(" 1280 ")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, 1280, *v)

	for _, bad := range []string{"wide", "-5", "12.5"} {
		_, err := ParseDimension(bad)
		assert.True(t, apperr.IsType(err, apperr.ValidationError), bad)
	}
}

const template = "full address:s:#VAULTSERVER#\n" +
	"username:s:#ACCOUNT#%#HOSTNAME#%#PROTOCOL#\n" +
	"desktopwidth:i:#WIDTH#\n" +
	"desktopheight:i:#HEIGHT#\n" +
	"screen mode id:i:#SCREENMODE#\n"

func TestRenderReplacesAllTokens(t *testing.T) {
	out := Render(template, &models.ConnectionRequest{
		Account:     "admin@corp",
		Protocol:    models.ProtocolSSH,
		Host:        "SRV01",
		VaultServer: "vault-a.corp",
	})

	assert.Equal(t, "full address:s:vault-a.corp\n"+
		"username:s:admin@corp%SRV01%SSH\n"+
		"desktopwidth:i:1024\n"+
		"desktopheight:i:768\n"+
		"screen mode id:i:1\n", out)
}

func TestRenderRepeatedTokens(t *testing.T) {
	out := Render("#HOSTNAME#/#HOSTNAME# #WIDTH#x#HEIGHT#@#SCREENMODE#", &models.ConnectionRequest{
		Protocol: models.ProtocolRDP,
		Host:     "DB01",
	})
	assert.Equal(t, "DB01/DB01 0x0@0", out)
}

type fakeOpener struct {
	opened []string
	err    error
}

func (f *fakeOpener) Open(path string) error {
	f.opened = append(f.opened, path)
	return f.err
}

func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func setupGenerator(t *testing.T, o *fakeOpener) (*Generator, string) {
	t.Helper()
	conf := filepath.Join(t.TempDir(), "conf")
	require.NoError(t, os.MkdirAll(conf, 0755))
	tmpl := filepath.Join(conf, "template.rdp")
	require.NoError(t, os.WriteFile(tmpl, []byte(template), 0644))
	out := filepath.Join(conf, "temp.rdp")
	return NewGenerator(tmpl, out, o, quietLogger()), out
}

func TestGenerateWritesAndOpens(t *testing.T) {
	o := &fakeOpener{}
	g, out := setupGenerator(t, o)

	path, err := g.Generate(&models.ConnectionRequest{
		Account:     "ops",
		Protocol:    models.ProtocolRDP,
		Host:        "WEB01",
		Width:       intp(1280),
		Height:      intp(720),
		VaultServer: "vault-b.corp",
	})
	require.NoError(t, err)
	assert.Equal(t, out, path)
	assert.Equal(t, []string{out}, o.opened)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "desktopwidth:i:1280\n")
	assert.Contains(t, string(data), "desktopheight:i:720\n")
	assert.Contains(t, string(data), "screen mode id:i:1\n")
	assert.Contains(t, string(data), "full address:s:vault-b.corp\n")
}

func TestGenerateOverwritesPreviousProfile(t *testing.T) {
	o := &fakeOpener{}
	g, out := setupGenerator(t, o)

	_, err := g.Generate(&models.ConnectionRequest{Protocol: models.ProtocolSSH, Host: "A"})
	require.NoError(t, err)
	_, err = g.Generate(&models.ConnectionRequest{Protocol: models.ProtocolRDP, Host: "B"})
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "%B%RDP")
	assert.NotContains(t, string(data), "%A%SSH")
}

func TestGenerateMissingTemplate(t *testing.T) {
	o := &fakeOpener{}
	g := NewGenerator(filepath.Join(t.TempDir(), "nope.rdp"), filepath.Join(t.TempDir(), "temp.rdp"), o, quietLogger())

	_, err := g.Generate(&models.ConnectionRequest{Protocol: models.ProtocolRDP})
	require.Error(t, err)
	assert.True(t, apperr.IsType(err, apperr.FileError))
	assert.Empty(t, o.opened)
}

func TestGenerateReportsOpenFailure(t *testing.T) {
	o := &fakeOpener{err: errors.New("no handler")}
	g, out := setupGenerator(t, o)

	path, err := g.Generate(&models.ConnectionRequest{Protocol: models.ProtocolRDP, Host: "X"})
	require.Error(t, err)
	assert.Equal(t, out, path)
	assert.FileExists(t, out)
}
