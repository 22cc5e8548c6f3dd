package session

import "sync"

// opKind distinguishes the lifecycle operation families for generation
// accounting. Operations of different kinds never invalidate one another.
type opKind int

const (
	opLogin opKind = iota
	opRegister
	opFetchUser
	opUpdateUser
	opRequestReset
	opConfirmReset
	opLogout
)

// Store is the sole holder of Session state. All mutation funnels through
// begin/conclude so that every write is one of the documented lifecycle
// transitions and nothing else.
//
// Each begin bumps a per-kind generation counter and every conclude carries
// the generation of the begin that issued it; a conclude whose generation is
// no longer current is discarded. That makes overlapping operations of one
// kind last-issued-wins instead of last-resolved-wins: a stale response can
// no longer overwrite state produced by a more recent request.
type Store struct {
	mu          sync.Mutex
	session     Session
	generations map[opKind]uint64
}

func NewStore() *Store {
	return &Store{
		generations: map[opKind]uint64{},
	}
}

// Snapshot returns a copy of the current session. The copy is the caller's
// own; mutating it has no effect on the store.
func (s *Store) Snapshot() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := s.session
	if snapshot.User != nil {
		user := *snapshot.User
		snapshot.User = &user
	}
	return snapshot
}

// begin applies an operation's pending effects and returns the generation
// its conclusion must present.
func (s *Store) begin(kind opKind, mutate func(*Session)) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generations[kind]++
	if mutate != nil {
		mutate(&s.session)
	}
	return s.generations[kind]
}

// conclude applies an operation's fulfilled or rejected effects, but only if
// gen is still the latest generation issued for kind. It reports whether the
// effects were applied; callers must skip their persistence side effects when
// it reports false.
func (s *Store) conclude(kind opKind, gen uint64, mutate func(*Session)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generations[kind] != gen {
		return false
	}
	mutate(&s.session)
	return true
}

// markChecked concludes a startup check that never issued a request (no
// refresh token to validate). It is the only mutation outside the
// begin/conclude pair, and it only ever sets Checked.
func (s *Store) markChecked() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.Checked = true
}
