package species

// GrowsWithSpeciesCount is implemented by stores holding one entry per species.
//
// GrowSpecies extends the store to n species. Values at existing indices are
// preserved and new indices start at their zero value. It is only ever called
// with n greater than or equal to the store's current species count and must
// not fail.
type GrowsWithSpeciesCount interface {
	GrowSpecies(n int)
}

// Roster couples a Registry with the stores sized from it.
type Roster struct {
	registry   *Registry
	dependents []GrowsWithSpeciesCount
}

// NewRoster creates a roster starting from a copy of registry's names.
// A nil registry starts empty. Later allocations on registry itself do not
// reach the roster.
func NewRoster(registry *Registry) *Roster {
	return &Roster{registry: &Registry{names: registry.Names()}}
}

// Registry returns a read-only view of the roster's registry. The view
// follows later allocations made through Allocate.
func (r *Roster) Registry() View {
	return registryView{r.registry}
}

// registryView hides the registry behind View so it cannot be asserted back
// to *Registry and grown directly.
type registryView struct {
	r *Registry
}

func (v registryView) Len() int                      { return v.r.Len() }
func (v registryView) Name(i int) string             { return v.r.Name(i) }
func (v registryView) Names() []string               { return v.r.Names() }
func (v registryView) Index(name string) (int, bool) { return v.r.Index(name) }
func (v registryView) Matches(other View) bool       { return sameNames(v, other) }

// Len returns the number of registered species.
func (r *Roster) Len() int {
	return r.registry.Len()
}

// Attach registers dep and grows it to the current species count.
func (r *Roster) Attach(dep GrowsWithSpeciesCount) {
	dep.GrowSpecies(r.registry.Len())
	r.dependents = append(r.dependents, dep)
}

// Allocate validates names, then appends them to the registry and grows
// every attached store to the new species count in attach order.
// On error nothing has been mutated.
func (r *Roster) Allocate(names []string) error {
	if err := r.registry.check(names); err != nil {
		return err
	}
	r.registry.names = append(r.registry.names, names...)
	n := r.registry.Len()
	for _, dep := range r.dependents {
		dep.GrowSpecies(n)
	}
	return nil
}
