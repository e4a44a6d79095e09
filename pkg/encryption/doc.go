// Package encryption provides symmetric encryption and message authentication
// helpers along with the key management needed to use them.
//
// The primitives are deliberately simple and interoperable with existing
// data: AES in CBC mode with PKCS#7 padding and an IV taken from SHA-256 of the
// key (Encrypt, Decrypt), HMAC-SHA1 authentication codes
// (GenerateAuthenticationCode, ValidateAuthenticationCode) and an
// encrypt-then-MAC envelope that appends the code to the ciphertext
// (AuthenticatedEncrypt, AuthenticatedDecrypt). String variants accept base64
// keys and return base64 output.
//
// New code that does not need to read existing ciphertexts should prefer
// AEAD, which uses AES-256-GCM with a random nonce and an HKDF derived key.
//
// # Keys
//
// MachineKey pairs an encryption key with a validation key, typically decoded
// from hex values in Config:
//
//	var cfg encryption.Config
//	config.MustLoad(&cfg)
//	mk, err := encryption.FromConfig(cfg)
//
// KeyManager combines split key parts, each stored encrypted under a master
// key obtained from a KeyStore. SQLKeyStore reads the master key through
// pkg/dbutil and ships its table definition in Migrations.
//
//	km := encryption.NewKeyManager(splits, encryption.WithKeyManagerLogger(log))
//	enc := encryption.NewSimpleEncrypter(km)
//	if err := enc.Initialize(ctx, encryption.NewSQLKeyStore(db, cfg.MasterKeyName)); err != nil {
//		return err
//	}
//	token, err := enc.Encrypt("customer-42")
//
// # Errors
//
// Functions return sentinel errors such as ErrEmptyInput, ErrInvalidKey,
// ErrAuthentication and ErrDecryptionFailed. Decryption and verification
// failures do not include details about the key material.
package encryption
