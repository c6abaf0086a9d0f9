// Package tlshelper builds the HTTP client used to talk to pveproxy,
// including its certificate verification policy.
package tlshelper

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"net/http"
	"os"
	"time"
)

// Config selects how the server certificate is verified.
type Config struct {
	// InsecureSkipVerify disables certificate verification entirely. It must
	// be set explicitly; pveproxy's default self-signed certificate otherwise
	// fails verification unless CAFile holds the cluster CA.
	InsecureSkipVerify bool

	// CAFile is a PEM bundle added to the system roots.
	CAFile string

	// Timeout bounds every request made with the client, login included.
	Timeout time.Duration
}

// NewHTTPClient returns an http.Client honouring cfg.
func NewHTTPClient(cfg Config) (*http.Client, error) {
	tlsConfig, err := ClientConfig(cfg)
	if err != nil {
		return nil, err
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = tlsConfig

	return &http.Client{
		Transport: transport,
		Timeout:   cfg.Timeout,
	}, nil
}

// ClientConfig returns the tls.Config for cfg.
func ClientConfig(cfg Config) (*tls.Config, error) {
	if cfg.InsecureSkipVerify {
		return &tls.Config{InsecureSkipVerify: true}, nil //nolint:gosec // explicit opt-in
	}

	roots, err := SystemRootsWithFile(cfg.CAFile)
	if err != nil {
		return nil, err
	}
	return &tls.Config{
		MinVersion: tls.VersionTLS12,
		RootCAs:    roots,
	}, nil
}

// SystemRootsWithFile reads a PEM bundle and appends it to the system
// roots. An empty path returns nil, which makes crypto/tls use the
// system roots unchanged.
func SystemRootsWithFile(path string) (*x509.CertPool, error) {
	if path == "" {
		return nil, nil
	}

	pemBlock, err := os.ReadFile(path) //#nosec:G304 // Intended to read the given file
	if err != nil {
		return nil, fmt.Errorf("loading certificate file: %w", err)
	}
	return SystemRootsWithCert(pemBlock)
}

// SystemRootsWithCert appends the PEM encoded certificates to a copy of
// the system pool, or to an empty pool where the platform has none.
func SystemRootsWithCert(pemBlock []byte) (*x509.CertPool, error) {
	if len(pemBlock) == 0 {
		return nil, nil
	}

	rootCerts, err := x509.SystemCertPool()
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("loading system cert pool: %w", err)
		}
		rootCerts = x509.NewCertPool()
	}

	if !rootCerts.AppendCertsFromPEM(pemBlock) {
		return nil, fmt.Errorf("no certificate could be parsed from the PEM block")
	}
	return rootCerts, nil
}
