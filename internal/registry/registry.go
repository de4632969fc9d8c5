package registry

import "sync"

// Handle представляет одно живое подключение команды.
type Handle struct {
	TeamID  string
	Channel string
}

// Registry отслеживает подключённые команды по их токенам,
// чтобы одна команда не была подключена дважды.
type Registry struct {
	handles map[string]*Handle
	mu      sync.RWMutex
}

// NewRegistry создаёт новый Registry.
func NewRegistry() *Registry {
	return &Registry{
		handles: make(map[string]*Handle),
	}
}

// Track регистрирует подключение команды с токеном token.
func (r *Registry) Track(token string, h *Handle) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.handles[token] = h
}

// Connected сообщает, подключена ли уже команда с токеном token.
func (r *Registry) Connected(token string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.handles[token]

	return ok
}

// Remove убирает подключение команды с токеном token.
func (r *Registry) Remove(token string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.handles, token)
}

// Len возвращает число подключённых команд.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.handles)
}
