package utils

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
)

// TLSFiles are paths to PEM files; all optional.
type TLSFiles struct {
	CACert string
	Cert   string
	Key    string
}

// IsSet returns if any file is given.
func (f *TLSFiles) IsSet() bool {
	return f.CACert != "" || f.Cert != "" || f.Key != ""
}

// TLSConfig loads the given files. Returns nil (use the system defaults) if
// no files are given.
func TLSConfig(files *TLSFiles) (*tls.Config, error) {
	if files == nil || !files.IsSet() {
		return nil, nil
	}

	cfg := &tls.Config{MinVersion: tls.VersionTLS12}

	if (files.Cert == "") != (files.Key == "") {
		return nil, fmt.Errorf("tls cert and key must be given together")
	}
	if files.Cert != "" {
		pair, err := tls.LoadX509KeyPair(files.Cert, files.Key)
		if err != nil {
			return nil, err
		}
		cfg.Certificates = []tls.Certificate{pair}
	}

	if files.CACert != "" {
		pem, err := os.ReadFile(files.CACert)
		if err != nil {
			return nil, err
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(pem) {
			return nil, fmt.Errorf("no certificates found in %s", files.CACert)
		}
		cfg.RootCAs = pool
	}

	return cfg, nil
}
