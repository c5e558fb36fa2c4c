package species

// View is read-only access to a registry. It cannot allocate species, so
// holders of a View cannot move the species count away from the stores a
// Roster keeps in step with it.
type View interface {
	Len() int
	Name(i int) string
	Names() []string
	Index(name string) (int, bool)
	Matches(other View) bool
}

// Registry is the ordered list of species identities for one dataset.
// The zero value is an empty registry ready for use.
type Registry struct {
	names []string
}

// NewRegistry creates a registry holding names, in order.
// It fails under the same rules as AllocateSpecies.
func NewRegistry(names ...string) (*Registry, error) {
	r := &Registry{}
	if err := r.AllocateSpecies(names); err != nil {
		return nil, err
	}
	return r, nil
}

// Len returns the number of registered species (n_sp).
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.names)
}

// Name returns the name of species i.
func (r *Registry) Name(i int) string {
	return r.names[i]
}

// Names returns a copy of the registered names in index order.
func (r *Registry) Names() []string {
	out := make([]string, r.Len())
	if r != nil {
		copy(out, r.names)
	}
	return out
}

// Index returns the index of name and whether it is registered.
// Comparison is ordinal and case-sensitive.
func (r *Registry) Index(name string) (int, bool) {
	if r == nil {
		return -1, false
	}
	for i, n := range r.names {
		if n == name {
			return i, true
		}
	}
	return -1, false
}

// AllocateSpecies appends names to the registry.
//
// An empty batch fails with ErrCodeInvalidArgument. A name that is already
// registered, or that appears twice in the batch, fails with
// ErrCodeDuplicateSpecies. Failures leave the registry unmodified; existing
// indices never change on success.
func (r *Registry) AllocateSpecies(names []string) error {
	if err := r.check(names); err != nil {
		return err
	}
	r.names = append(r.names, names...)
	return nil
}

// check validates a batch against the registry without mutating anything.
func (r *Registry) check(names []string) error {
	if len(names) == 0 {
		return newEmptyBatchError()
	}
	seen := make(map[string]struct{}, len(r.names)+len(names))
	for _, n := range r.names {
		seen[n] = struct{}{}
	}
	for _, n := range names {
		if _, dup := seen[n]; dup {
			return newDuplicateError(n)
		}
		seen[n] = struct{}{}
	}
	return nil
}

// Matches reports whether both registries hold the same names in the same
// order. Used to check that independently loaded datasets (parameters, site
// inputs) describe the same species set. A nil other is an empty registry.
func (r *Registry) Matches(other View) bool {
	return sameNames(r, other)
}

func sameNames(a, b View) bool {
	bl := 0
	if b != nil {
		bl = b.Len()
	}
	if a.Len() != bl {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if a.Name(i) != b.Name(i) {
			return false
		}
	}
	return true
}
