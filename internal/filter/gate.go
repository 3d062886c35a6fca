// internal/filter/gate.go
package filter

// ChangeGate suppresses consecutive duplicate records.
// Keys are compared byte-for-byte; callers build them from the already
// formatted fields so float re-derivation cannot cause a mismatch.
type ChangeGate struct {
	last  string
	valid bool
}

// Changed reports whether key differs from the last committed key.
// Before the first commit every key is a change.
func (g *ChangeGate) Changed(key string) bool {
	return !g.valid || key != g.last
}

// Commit records key as the last persisted one.
func (g *ChangeGate) Commit(key string) {
	g.last = key
	g.valid = true
}
