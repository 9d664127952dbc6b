// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"encoding/json"
	"time"

	"github.com/harutoki/focusdeck/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// Advance moves the clock forward.
func (m *MockClock) Advance(d time.Duration) {
	m.NowTime = m.NowTime.Add(d)
}

// MockStore is an in-memory test double for domain.Store. Values round-trip
// through JSON, matching the on-disk store.
type MockStore struct {
	Data    map[string]json.RawMessage
	FailSet bool // When true, every Set reports failure
}

// NewMockStore creates a MockStore with an initialized map.
func NewMockStore() *MockStore {
	return &MockStore{Data: make(map[string]json.RawMessage)}
}

// Get decodes the value stored under key into v.
func (m *MockStore) Get(key string, v any) bool {
	raw, ok := m.Data[key]
	if !ok {
		return false
	}
	return json.Unmarshal(raw, v) == nil
}

// Set encodes v under key.
func (m *MockStore) Set(key string, v any) bool {
	if m.FailSet {
		return false
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return false
	}
	m.Data[key] = raw
	return true
}

// Remove deletes the value stored under key.
func (m *MockStore) Remove(key string) {
	delete(m.Data, key)
}

// NopLogger discards all log output.
type NopLogger struct{}

func (NopLogger) Debug(string, string) {}
func (NopLogger) Info(string, string)  {}
func (NopLogger) Warn(string, string)  {}
func (NopLogger) Error(string, string) {}

var (
	_ domain.Clock  = (*MockClock)(nil)
	_ domain.Store  = (*MockStore)(nil)
	_ domain.Logger = NopLogger{}
)
