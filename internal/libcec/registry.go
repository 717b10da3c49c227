package libcec

import "sync"

// libcec only hands back an opaque callback parameter. Rather than passing a Go pointer
// through C, each connection registers its Callbacks here and libcec receives the token.

var (
	registryMu   sync.Mutex
	registryNext uintptr
	registry     = make(map[uintptr]*Callbacks)
)

// register stores cb and returns its token. Token 0 is never handed out.
func register(cb *Callbacks) uintptr {
	registryMu.Lock()
	defer registryMu.Unlock()
	registryNext++
	for registryNext == 0 || registry[registryNext] != nil {
		registryNext++
	}
	registry[registryNext] = cb
	return registryNext
}

func lookup(token uintptr) *Callbacks {
	registryMu.Lock()
	defer registryMu.Unlock()
	return registry[token]
}

func unregister(token uintptr) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(registry, token)
}
