package executor

import (
	"VCS_SMS_Fleet/internal/fleet/model"
	"fmt"
	"os"

	"golang.org/x/crypto/ssh"
)

const noCredentialsReason = "No SSH authentication method configured"

// CredentialProvider yields key material for a server. ok is false when the
// provider has nothing for this server and the next provider should be tried.
type CredentialProvider interface {
	Name() string
	Signer(server model.Server) (signer ssh.Signer, ok bool, err error)
}

// InlineKeyProvider uses the private key stored on the server record.
type InlineKeyProvider struct{}

func (InlineKeyProvider) Name() string {
	return "inline_key"
}

func (InlineKeyProvider) Signer(server model.Server) (ssh.Signer, bool, error) {
	if server.SSHKey == "" {
		return nil, false, nil
	}
	signer, err := ssh.ParsePrivateKey([]byte(server.SSHKey))
	if err != nil {
		return nil, true, fmt.Errorf("failed to load inline SSH key: %w", err)
	}
	return signer, true, nil
}

// KeyFileProvider reads the private key from the path stored on the server
// record. An unreadable path is treated as absent.
type KeyFileProvider struct {
	ReadFile func(path string) ([]byte, error)
}

func (KeyFileProvider) Name() string {
	return "key_file"
}

func (p KeyFileProvider) Signer(server model.Server) (ssh.Signer, bool, error) {
	if server.SSHKeyPath == "" {
		return nil, false, nil
	}
	readFile := p.ReadFile
	if readFile == nil {
		readFile = os.ReadFile
	}
	b, err := readFile(server.SSHKeyPath)
	if err != nil {
		return nil, false, nil
	}
	signer, err := ssh.ParsePrivateKey(b)
	if err != nil {
		return nil, true, fmt.Errorf("failed to load SSH key %s: %w", server.SSHKeyPath, err)
	}
	return signer, true, nil
}

func DefaultCredentialProviders() []CredentialProvider {
	return []CredentialProvider{InlineKeyProvider{}, KeyFileProvider{}}
}

// ResolveSigner walks the providers in order and returns the first usable signer.
func ResolveSigner(providers []CredentialProvider, server model.Server) (ssh.Signer, error) {
	for _, p := range providers {
		signer, ok, err := p.Signer(server)
		if !ok {
			continue
		}
		if err != nil {
			return nil, authConfigurationError(err.Error(), err)
		}
		return signer, nil
	}
	return nil, authConfigurationError(noCredentialsReason, nil)
}
