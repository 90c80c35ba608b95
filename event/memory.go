package event

import (
	"fmt"
	"sync"
)

// Handle is a native address carried through untouched.
// Package event never dereferences a Handle, only Memory implementations do.
type Handle uintptr

func (h Handle) IsNull() bool   { return h == 0 }
func (h Handle) String() string { return fmt.Sprintf("0x%x", uintptr(h)) }

// Memory is native heap access needed for string fields.
type Memory interface {
	// CString reads null-terminated bytes at h into an independent Go string.
	CString(h Handle) string
	// Alloc copies s plus terminating zero into native memory.
	Alloc(s string) Handle
	Free(h Handle)
}

// Scope tracks allocations made through it, Release frees them all.
// Use one Scope per native call that consumes encoded strings.
type Scope struct {
	mem  Memory
	live []Handle
}

func NewScope(mem Memory) *Scope { return &Scope{mem: mem} }

func (s *Scope) CString(h Handle) string { return s.mem.CString(h) }

func (s *Scope) Alloc(str string) Handle {
	h := s.mem.Alloc(str)
	s.live = append(s.live, h)
	return h
}

func (s *Scope) Free(h Handle) {
	for i, x := range s.live {
		if x == h {
			s.live = append(s.live[:i], s.live[i+1:]...)
			break
		}
	}
	s.mem.Free(h)
}

func (s *Scope) Len() int { return len(s.live) }

func (s *Scope) Release() {
	for _, h := range s.live {
		s.mem.Free(h)
	}
	s.live = s.live[:0]
}

// arenaBase keeps synthetic addresses far from zero and recognizable in dumps.
const arenaBase Handle = 0x5d1_0000_0000

// Arena is Memory backed by Go slices with synthetic addresses.
// It stands in for the native heap when the queue lives in process.
// Safe for concurrent use.
type Arena struct {
	mu   sync.Mutex
	next Handle
	m    map[Handle][]byte
}

func NewArena() *Arena {
	return &Arena{next: arenaBase, m: make(map[Handle][]byte)}
}

func (a *Arena) Alloc(s string) Handle {
	b := make([]byte, len(s)+1)
	copy(b, s)
	a.mu.Lock()
	defer a.mu.Unlock()
	h := a.next
	// 16 byte alignment like malloc, never reuse addresses
	a.next += Handle((len(b) + 15) &^ 15)
	a.m[h] = b
	return h
}

// CString supports interior pointers into a live allocation.
// Unknown address reads as empty string.
func (a *Arena) CString(h Handle) string {
	a.mu.Lock()
	defer a.mu.Unlock()
	b, ok := a.m[h]
	if !ok {
		b = a.find(h)
	}
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}

func (a *Arena) find(h Handle) []byte {
	for base, b := range a.m {
		if h > base && h < base+Handle(len(b)) {
			return b[h-base:]
		}
	}
	return nil
}

func (a *Arena) Free(h Handle) {
	a.mu.Lock()
	delete(a.m, h)
	a.mu.Unlock()
}

// Len is count of live allocations.
func (a *Arena) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.m)
}

var _ Memory = new(Arena)
var _ Memory = new(Scope)
