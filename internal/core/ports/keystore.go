package ports

import "context"

// KeystoreGenerator creates signing keystores.
//
//go:generate mockgen -source=keystore.go -destination=mocks/mock_keystore.go -package=mocks
type KeystoreGenerator interface {
	// Generate runs keytool to write a new keystore for userName at path.
	Generate(ctx context.Context, keytool, userName, path string) error
}
