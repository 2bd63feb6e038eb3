package session

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/abelikov/fingate/internal/common"
	"github.com/abelikov/fingate/internal/cryptox"
	"github.com/abelikov/fingate/internal/logging"
)

// envelope is the on-disk format: the JSON-serialized session sealed with
// AES-GCM under a key derived from (secret, salt). The salt and nonce are
// stored in the clear next to the ciphertext.
type envelope struct {
	Salt  string `json:"salt"`
	Nonce string `json:"nonce"`
	Data  string `json:"data"`
}

// FileStore keeps the session in a single encrypted file. It is the local
// stand-in for an OS keyring: the token never touches disk in plaintext.
type FileStore struct {
	path   string
	secret []byte
	log    logging.Logger
}

func NewFileStore(path string, secret []byte, log logging.Logger) *FileStore {
	return &FileStore{path: path, secret: secret, log: log}
}

// Path returns the file location the store reads and writes.
func (f *FileStore) Path() string {
	return f.path
}

// Save seals the session and writes it to the store's path with 0600
// permissions, creating parent directories as needed.
func (f *FileStore) Save(ctx context.Context, s *Session) error {
	salt := common.GenerateRandByteArray(16)
	key := cryptox.DeriveKey(f.secret, salt)

	ciphertext, nonce, err := cryptox.Seal(s, key)
	if err != nil {
		return err
	}

	env := envelope{
		Salt:  base64.StdEncoding.EncodeToString(salt),
		Nonce: base64.StdEncoding.EncodeToString(nonce),
		Data:  base64.StdEncoding.EncodeToString(ciphertext),
	}

	data, err := json.Marshal(env)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(f.path, data, 0o600)
}

// Load reads and unseals the persisted session. A missing file or any kind
// of corruption (bad JSON, bad base64, failed decryption) yields ErrNotFound;
// the caller is expected to fall back to a fresh login, so corruption is
// logged but never fatal.
func (f *FileStore) Load(ctx context.Context) (*Session, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, ErrNotFound
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		f.warn(ctx, "session file is not valid JSON, treating as absent", err)
		return nil, ErrNotFound
	}

	salt, err := base64.StdEncoding.DecodeString(env.Salt)
	if err != nil {
		f.warn(ctx, "session file salt is corrupt, treating as absent", err)
		return nil, ErrNotFound
	}
	nonce, err := base64.StdEncoding.DecodeString(env.Nonce)
	if err != nil {
		f.warn(ctx, "session file nonce is corrupt, treating as absent", err)
		return nil, ErrNotFound
	}
	ciphertext, err := base64.StdEncoding.DecodeString(env.Data)
	if err != nil {
		f.warn(ctx, "session file payload is corrupt, treating as absent", err)
		return nil, ErrNotFound
	}

	key := cryptox.DeriveKey(f.secret, salt)

	var s Session
	if err := cryptox.Open(ciphertext, nonce, key, &s); err != nil {
		f.warn(ctx, "session file failed to decrypt, treating as absent", err)
		return nil, ErrNotFound
	}
	if s.Token == "" {
		return nil, ErrNotFound
	}
	return &s, nil
}

// Erase removes the session file. Removing an already-absent file is not
// an error, so Erase is idempotent.
func (f *FileStore) Erase(ctx context.Context) error {
	err := os.Remove(f.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (f *FileStore) warn(ctx context.Context, msg string, err error) {
	if f.log != nil {
		f.log.Warn(ctx, msg, "path", f.path, "error", err)
	}
}
