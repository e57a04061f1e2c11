package store

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

// Record names for the per-identity blobs.
const (
	RecordLogs     = "logs"
	RecordTodos    = "todos"
	RecordSettings = "settings"
)

// Persistence is the key-value blob contract. Each logged-in identity owns a
// namespaced set of records; the remembered-identity pair is the only
// non-namespaced state.
type Persistence interface {
	// Load unmarshals the identity's record into v. It returns false when
	// the record is missing or its blob is corrupt; in both cases v is left
	// untouched so the caller falls back to empty state.
	Load(identity, record string, v interface{}) bool
	Save(identity, record string, v interface{}) error
	Delete(identity, record string) error

	Remembered() (identity, token string, ok bool)
	Remember(identity, token string) error
	Forget() error

	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) Load(identity, record string, v interface{}) bool {
	key := userKey(identity, record)
	data, err := p.d.Read(key)
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		// A corrupt blob must not take the session down; note it and let
		// the caller start that record empty.
		fmt.Fprintf(os.Stderr, "store: %s: corrupt blob: %v\n", key, err)
		return false
	}
	return true
}

func (p *persistence) Save(identity, record string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("store: marshal %s: %w", record, err)
	}
	return p.d.Write(userKey(identity, record), data)
}

func (p *persistence) Delete(identity, record string) error {
	err := p.d.Erase(userKey(identity, record))
	if err != nil && errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

const (
	rememberIdentityKey = "remember-identity"
	rememberTokenKey    = "remember-token"
)

func (p *persistence) Remembered() (string, string, bool) {
	id, err := p.d.Read(rememberIdentityKey)
	if err != nil || len(id) == 0 {
		return "", "", false
	}
	token, err := p.d.Read(rememberTokenKey)
	if err != nil {
		return "", "", false
	}
	return string(id), string(token), true
}

func (p *persistence) Remember(identity, token string) error {
	if err := p.d.Write(rememberIdentityKey, []byte(identity)); err != nil {
		return err
	}
	return p.d.Write(rememberTokenKey, []byte(token))
}

func (p *persistence) Forget() error {
	for _, key := range []string{rememberIdentityKey, rememberTokenKey} {
		if err := p.d.Erase(key); err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}
	return nil
}

// userKey makes `user-<encoded identity>-<record>`.
func userKey(identity, record string) string {
	return fmt.Sprintf("user-%s-%s", toIdentity(identity), record)
}

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "-")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}

// toIdentity encodes an identity so arbitrary usernames cannot collide with
// the key separator or the filesystem.
func toIdentity(s string) string {
	return hex.EncodeToString([]byte(s))
}

func fromIdentity(s string) string {
	identity, err := hex.DecodeString(s)
	if err != nil {
		return fmt.Sprintf("fromIdentity: %s", err)
	}
	return string(identity)
}
