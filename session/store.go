package session

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/vetdesk/client-go/users"
)

// Keys for the persisted session record. Each is independently readable,
// writable, and removable; no transactional guarantee spans them.
const (
	KeyToken  = "auth_token"
	KeyUser   = "user_data"
	KeyTenant = "current_tenant"
)

// Store is a best-effort key/value store for session state. Implementations
// never surface failures: a write that cannot complete is dropped and a read
// that cannot complete reports absence. Losing persisted state degrades to
// "log in again", never to a crash.
type Store interface {
	Save(key, value string)
	Load(key string) (string, bool)
	Remove(key string)
	Clear()
}

// Token and tenant are stored as raw strings; the user record round-trips
// through JSON.

func SaveToken(s Store, token string) {
	s.Save(KeyToken, token)
}

func LoadToken(s Store) (string, bool) {
	return s.Load(KeyToken)
}

func SaveTenant(s Store, tenantID string) {
	s.Save(KeyTenant, tenantID)
}

func LoadTenant(s Store) (string, bool) {
	return s.Load(KeyTenant)
}

func SaveUser(s Store, user *users.User) {
	data, err := json.Marshal(user)
	if err != nil {
		log.Warn().Err(err).Msg("serializing user record, not persisted")
		return
	}
	s.Save(KeyUser, string(data))
}

// LoadUser reads and parses the persisted user record. A corrupt record
// reports absence, same as a missing one.
func LoadUser(s Store) (*users.User, bool) {
	data, ok := s.Load(KeyUser)
	if !ok {
		return nil, false
	}
	var user users.User
	if err := json.Unmarshal([]byte(data), &user); err != nil {
		log.Warn().Err(err).Msg("persisted user record is corrupt, ignoring")
		return nil, false
	}
	return &user, true
}
