package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTLSConfigNoFiles(t *testing.T) {
	cfg, err := TLSConfig(&TLSFiles{})
	assert.Nil(t, err)
	assert.Nil(t, cfg)

	cfg, err = TLSConfig(nil)
	assert.Nil(t, err)
	assert.Nil(t, cfg)
}

func TestTLSConfigErrors(t *testing.T) {
	dir := t.TempDir()
	notPem := filepath.Join(dir, "ca.pem")
	assert.Nil(t, os.WriteFile(notPem, []byte("not a cert"), 0600))

	cases := []struct {
		Name  string
		Given *TLSFiles
	}{
		{"CertWithoutKey", &TLSFiles{Cert: "cert.pem"}},
		{"KeyWithoutCert", &TLSFiles{Key: "key.pem"}},
		{"MissingCA", &TLSFiles{CACert: filepath.Join(dir, "nope.pem")}},
		{"NotPem", &TLSFiles{CACert: notPem}},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			cfg, err := TLSConfig(c.Given)

			assert.NotNil(t, err)
			assert.Nil(t, cfg)
		})
	}
}
