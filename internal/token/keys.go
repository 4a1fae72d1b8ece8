// Package token owns the credential primitives of the session engine: RSA key
// material loading, signed access-token issuance, and opaque refresh-token
// generation.
package token

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
)

var (
	// ErrNoPEMBlock is returned when key material does not contain a
	// decodable PEM block.
	ErrNoPEMBlock = errors.New("no PEM block found in key material")

	// ErrNotRSAKey is returned when the parsed key is not an RSA key.
	ErrNotRSAKey = errors.New("key is not an RSA key")
)

// KeyPair holds the asymmetric signing key material loaded once at process
// start. The private key signs access tokens; the public key (and its PEM
// form) is handed out to external verifiers.
type KeyPair struct {
	PrivateKey *rsa.PrivateKey
	PublicKey  *rsa.PublicKey

	// PublicKeyPEM is the PKIX PEM encoding of PublicKey, served verbatim by
	// the public-key endpoint.
	PublicKeyPEM string
}

// LoadKeyPair reads and parses the RSA key pair from PEM files.
//
// The private key may be PKCS#8 ("PRIVATE KEY") or PKCS#1 ("RSA PRIVATE
// KEY"). When publicKeyPath is empty the public key is derived from the
// private key instead of being read from disk.
//
// Any failure here is a startup-time fatal condition for the caller: a
// service without a valid signing key cannot issue sessions.
func LoadKeyPair(privateKeyPath, publicKeyPath string) (*KeyPair, error) {
	privatePEM, err := os.ReadFile(privateKeyPath)
	if err != nil {
		return nil, fmt.Errorf("error reading private key file: %w", err)
	}

	privateKey, err := parseRSAPrivateKey(privatePEM)
	if err != nil {
		return nil, fmt.Errorf("error parsing private key %q: %w", privateKeyPath, err)
	}

	publicKey := &privateKey.PublicKey
	if publicKeyPath != "" {
		publicPEM, err := os.ReadFile(publicKeyPath)
		if err != nil {
			return nil, fmt.Errorf("error reading public key file: %w", err)
		}

		publicKey, err = parseRSAPublicKey(publicPEM)
		if err != nil {
			return nil, fmt.Errorf("error parsing public key %q: %w", publicKeyPath, err)
		}
	}

	publicKeyPEM, err := encodePublicKeyPEM(publicKey)
	if err != nil {
		return nil, err
	}

	return &KeyPair{
		PrivateKey:   privateKey,
		PublicKey:    publicKey,
		PublicKeyPEM: publicKeyPEM,
	}, nil
}

// parseRSAPrivateKey decodes a PEM-encoded RSA private key in either PKCS#8
// or PKCS#1 form.
func parseRSAPrivateKey(pemData []byte) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode(pemData)
	if block == nil {
		return nil, ErrNoPEMBlock
	}

	if key, err := x509.ParsePKCS8PrivateKey(block.Bytes); err == nil {
		rsaKey, ok := key.(*rsa.PrivateKey)
		if !ok {
			return nil, ErrNotRSAKey
		}
		return rsaKey, nil
	}

	key, err := x509.ParsePKCS1PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("error parsing private key: %w", err)
	}

	return key, nil
}

// parseRSAPublicKey decodes a PEM-encoded PKIX RSA public key.
func parseRSAPublicKey(pemData []byte) (*rsa.PublicKey, error) {
	block, _ := pem.Decode(pemData)
	if block == nil {
		return nil, ErrNoPEMBlock
	}

	key, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("error parsing public key: %w", err)
	}

	rsaKey, ok := key.(*rsa.PublicKey)
	if !ok {
		return nil, ErrNotRSAKey
	}

	return rsaKey, nil
}

// encodePublicKeyPEM marshals the public key into its PKIX PEM form.
func encodePublicKeyPEM(publicKey *rsa.PublicKey) (string, error) {
	der, err := x509.MarshalPKIXPublicKey(publicKey)
	if err != nil {
		return "", fmt.Errorf("error marshalling public key: %w", err)
	}

	return string(pem.EncodeToMemory(&pem.Block{
		Type:  "PUBLIC KEY",
		Bytes: der,
	})), nil
}
