// Package cache provee los almacenes de la caché de logos: un slot en
// memoria para despliegues de proceso único y un backend Redis para
// instancias múltiples.
package cache

import (
	"context"
	"sync"
	"time"
)

// Memory es una caché de una sola entrada lógica con TTL. Una escritura
// nueva desaloja la anterior; el caso de uso real es un logo por emisor y
// el proceso renderiza para un emisor a la vez.
type Memory struct {
	mu      sync.RWMutex
	key     string
	value   string
	expires time.Time
	now     func() time.Time
}

// NewMemory construye la caché en memoria.
func NewMemory() *Memory {
	return &Memory{now: time.Now}
}

// Get devuelve el valor si la clave coincide y la entrada no expiró.
func (m *Memory) Get(ctx context.Context, key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.key != key || m.value == "" {
		return "", false
	}
	if m.now().After(m.expires) {
		return "", false
	}
	return m.value, true
}

// Set reemplaza la entrada vigente.
func (m *Memory) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.key = key
	m.value = value
	m.expires = m.now().Add(ttl)
	return nil
}
