package vm

// Kind tags the variant held by a DictEntry's code field: "a tagged variant:
// primitive function pointer / colon-thread / constant cell / variable
// address / does>-template" per spec.md §3.
type Kind uint8

const (
	KindPrimitive Kind = iota
	KindColon
	KindConstant
	KindVariable
	KindDoes
)

// Flags is the DictEntry bitset: IMMEDIATE, HIDDEN, SMUDGE per spec.md §3.
type Flags uint8

const (
	FlagImmediate Flags = 1 << iota
	FlagHidden
	FlagSmudge
)

// PrimitiveFunc implements a built-in word body.
type PrimitiveFunc func(vm *VM)

// dictHandle is a 1-based arena index; 0 means "no entry", the StarForth
// analogue of a null DictEntry* (spec.md §9's "Pointer-graph dictionary"
// note: "represent entries with a bump-allocated arena indexed by a
// non-null integer handle").
type dictHandle = int

// DictEntry is one dictionary node: name, flags, tagged code, parameter
// field offset, and a handle back to the previous entry, per spec.md §3.
type DictEntry struct {
	Name string
	Flags Flags
	Kind Kind

	Prim PrimitiveFunc // valid when Kind == KindPrimitive
	PFA int // byte offset into Memory; valid for Colon/Variable/Does
	DoesPFA int // byte offset of the DOES> body; valid for KindDoes
	Value Cell // valid when Kind == KindConstant

	Prev dictHandle
	hereAtCreate int // HERE at creation time, restored on FORGET
	builtin bool // system-origin entries refuse FORGET, per spec.md §4.3
}

func (e *DictEntry) Immediate() bool { return e.Flags&FlagImmediate != 0 }
func (e *DictEntry) Hidden() bool    { return e.Flags&(FlagHidden|FlagSmudge) != 0 }

// Dictionary is the bump-allocated arena backing the FORTH dictionary
// chain. Snapshot/restore is exactly {latestHandle, here} -- two integers --
// per spec.md §9.
type Dictionary struct {
	entries []DictEntry // entries[0] is an unused sentinel; handles are 1-based
	latest  dictHandle
}

// NewDictionary returns an empty dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{entries: make([]DictEntry, 1)}
}

// Latest returns the handle of the most recently defined entry, or 0.
func (d *Dictionary) Latest() dictHandle { return d.latest }

// SetLatest directly overwrites the latest handle; used by restore and by
// IMMEDIATE/SMUDGE/HIDDEN toggles on the in-progress definition.
func (d *Dictionary) SetLatest(h dictHandle) { d.latest = h }

// Entry dereferences a handle. Returns nil for handle 0 or any handle past
// the current arena length (e.g. one discarded by a dictionary restore).
func (d *Dictionary) Entry(h dictHandle) *DictEntry {
	if h <= 0 || h >= len(d.entries) {
		return nil
	}
	return &d.entries[h]
}

// Create allocates a new entry, links it after the current latest, and
// returns its handle. here is the current HERE value, recorded so FORGET
// can rewind it.
func (d *Dictionary) Create(name string, here int) dictHandle {
	d.entries = append(d.entries, DictEntry{
		Name:         name,
		Prev:         d.latest,
		hereAtCreate: here,
	})
	h := len(d.entries) - 1
	d.latest = h
	return h
}

// Find searches from latest backward, skipping HIDDEN/SMUDGE entries;
// the newest definition of a name shadows any older one, per spec.md §4.3.
func (d *Dictionary) Find(name string) dictHandle {
	for h := d.latest; h != 0; {
		e := &d.entries[h]
		if e.Name == name && !e.Hidden() {
			return h
		}
		h = e.Prev
	}
	return 0
}

// Forget removes name and every entry newer than it, returning the HERE
// value to restore. Refuses system-origin entries per spec.md §4.3.
func (d *Dictionary) Forget(name string) (restoreHere int, err error) {
	h := d.Find(name)
	if h == 0 {
		return 0, ErrWordNotFound
	}
	if d.entries[h].builtin {
		return 0, Faultf(ErrCompilerError, "cannot FORGET builtin %q", name)
	}
	restoreHere = d.entries[h].hereAtCreate
	newLatest := d.entries[h].Prev
	d.entries = d.entries[:h]
	d.latest = newLatest
	return restoreHere, nil
}

// Snapshot captures {latest, here} for later restore, per spec.md §4.3.
func (d *Dictionary) Snapshot(here int) (latest, snapHere int) {
	return d.latest, here
}

// Restore rewinds the dictionary to a prior snapshot. Memory occupied by
// discarded entries is not reclaimed -- it becomes unreachable until VM
// teardown, by design (spec.md §9: "FORGET deliberately does not free
// memory").
func (d *Dictionary) Restore(latest dictHandle) {
	if latest < len(d.entries) {
		d.entries = d.entries[:latest+1]
	}
	d.latest = latest
}

// MarkBuiltin flags h as a system-origin entry that FORGET must refuse.
func (d *Dictionary) MarkBuiltin(h dictHandle) {
	if e := d.Entry(h); e != nil {
		e.builtin = true
	}
}

// Names returns every visible (non-hidden) name in the dictionary, newest
// first, for WORDS/introspection words.
func (d *Dictionary) Names() []string {
	var out []string
	for h := d.latest; h != 0; {
		e := &d.entries[h]
		if !e.Hidden() {
			out = append(out, e.Name)
		}
		h = e.Prev
	}
	return out
}
