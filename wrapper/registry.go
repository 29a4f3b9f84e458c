package wrapper

import (
	"fmt"
	"sort"
	"sync"

	"github.com/signadot/go-fhir/datatype"
	"github.com/signadot/go-fhir/primitive"
	"github.com/signadot/go-fhir/version"

	"google.golang.org/protobuf/reflect/protoreflect"
)

// Entry associates a primitive type with its wrapper.
type Entry struct {
	Descriptor protoreflect.MessageDescriptor
	Wrapper    primitive.Wrapper
}

// Registry maps the primitive types of one FHIR version to their wrappers.
type Registry struct {
	mu      sync.RWMutex
	version version.Version
	entries map[protoreflect.FullName]Entry
}

var _ primitive.WrapperFactory = (*Registry)(nil)

func NewRegistry(v version.Version) *Registry {
	return &Registry{
		version: v,
		entries: make(map[protoreflect.FullName]Entry),
	}
}

// MustRegistry creates a registry holding entries and panics if any of
// them cannot be registered.
func MustRegistry(v version.Version, entries ...Entry) *Registry {
	r := NewRegistry(v)
	for _, e := range entries {
		if err := r.Register(e.Descriptor, e.Wrapper); err != nil {
			panic(err)
		}
	}
	return r
}

func (r *Registry) Version() version.Version { return r.version }

// Register adds the wrapper for d, which must belong to the registry's
// version and must not already be registered.
func (r *Registry) Register(d protoreflect.MessageDescriptor, w primitive.Wrapper) error {
	if d == nil || w == nil {
		return fmt.Errorf("descriptor and wrapper must not be nil")
	}
	v, err := datatype.VersionOf(d)
	if err != nil || v != r.version {
		mismatch := &primitive.VersionMismatchError{Type: d.FullName(), Want: r.version}
		if err == nil {
			mismatch.Got = v
		}
		return mismatch
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.entries[d.FullName()]; exists {
		return fmt.Errorf("wrapper for %s already registered", d.FullName())
	}
	r.entries[d.FullName()] = Entry{Descriptor: d, Wrapper: w}
	return nil
}

// Wrapper returns the wrapper registered for d. The descriptor must be the
// registered one, not merely share its name.
func (r *Registry) Wrapper(d protoreflect.MessageDescriptor) (primitive.Wrapper, error) {
	if d == nil {
		return nil, &primitive.UnsupportedKindError{Type: "<nil>", Version: r.version}
	}
	r.mu.RLock()
	e, ok := r.entries[d.FullName()]
	r.mu.RUnlock()
	if !ok || e.Descriptor != d {
		return nil, &primitive.UnsupportedKindError{Type: d.FullName(), Version: r.version}
	}
	return e.Wrapper, nil
}

// Entries returns all registrations ordered by type name.
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		result = append(result, e)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Descriptor.FullName() < result[j].Descriptor.FullName()
	})
	return result
}
