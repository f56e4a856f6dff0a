package session

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

var _ Store = (*FileStore)(nil)

// FileStore persists each key to its own file under a directory, mirroring
// the independently keyed layout of the session record. All failures are
// logged and swallowed per the Store contract.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (fs *FileStore) Save(key, value string) {
	if err := os.MkdirAll(fs.dir, 0o700); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("session store not writable, value dropped")
		return
	}
	if err := os.WriteFile(fs.path(key), []byte(value), 0o600); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("writing session value failed, value dropped")
	}
}

func (fs *FileStore) Load(key string) (string, bool) {
	data, err := os.ReadFile(fs.path(key))
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Str("key", key).Msg("reading session value failed")
		}
		return "", false
	}
	return string(data), true
}

func (fs *FileStore) Remove(key string) {
	if err := os.Remove(fs.path(key)); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Str("key", key).Msg("removing session value failed")
	}
}

func (fs *FileStore) Clear() {
	for _, key := range []string{KeyToken, KeyUser, KeyTenant} {
		fs.Remove(key)
	}
}

func (fs *FileStore) path(key string) string {
	return filepath.Join(fs.dir, key)
}
