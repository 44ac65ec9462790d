//go:build unit

package usecase

// SessionCount reports how many owners the registry currently holds.
func SessionCount(s CartSessions) int {
	impl := s.(*cartSessionsImpl)
	impl.mu.RLock()
	defer impl.mu.RUnlock()
	return len(impl.stores)
}
