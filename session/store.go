package session

import (
	"github.com/alexedwards/scs/v2"
	"github.com/alexedwards/scs/v2/memstore"
)

// NewMemoryStore returns the in-process session store. Tokens and sessions
// do not survive a restart, which is acceptable for a 30-minute lifetime.
func NewMemoryStore() scs.Store {
	return memstore.New()
}
