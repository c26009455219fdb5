package session

import (
	"context"
	"sync"
)

type Memory struct {
	mu    sync.Mutex
	state State
}

func NewMemory() *Memory {
	return &Memory{state: NewState()}
}

func (m *Memory) Get(_ context.Context) (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state, nil
}

func (m *Memory) Put(_ context.Context, st State) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = st
	return nil
}

func (m *Memory) Reset(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = NewState()
	return nil
}

func (m *Memory) Ping(_ context.Context) error { return nil }
