package access

import (
	"fmt"
	"sort"
)

// FieldSet is a set of client-facing field names.
type FieldSet map[string]struct{}

// NewFieldSet builds a FieldSet from field names.
func NewFieldSet(names ...string) FieldSet {
	s := make(FieldSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Has reports whether the set contains the given field name.
func (s FieldSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Names returns the field names in sorted order.
func (s FieldSet) Names() []string {
	names := make([]string, 0, len(s))
	for n := range s {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// FieldPolicy is the per-entity field visibility descriptor. Required must be
// a subset of Writable, and Writable a subset of Client; fields in Client but
// not Writable are managed by the server (ids, timestamps, deletion markers).
type FieldPolicy struct {
	// Client fields are returned to any authorized reader.
	Client FieldSet
	// Writable fields may be set by a client on create or update.
	Writable FieldSet
	// Required fields must be present and non-null on create.
	Required FieldSet
}

// Static policy tables, one per entity.
var (
	UserFields = FieldPolicy{
		Client:   NewFieldSet("id", "email", "name_first", "name_last", "date_created"),
		Writable: NewFieldSet("name_first", "name_last"),
		Required: NewFieldSet(),
	}

	InventoryFields = FieldPolicy{
		Client:   NewFieldSet("id", "name", "date_created"),
		Writable: NewFieldSet("name"),
		Required: NewFieldSet("name"),
	}

	ThingFields = FieldPolicy{
		Client: NewFieldSet("id", "name", "date_created", "date_modified",
			"date_deleted", "location", "details", "inventory_id"),
		Writable: NewFieldSet("name", "location", "details"),
		Required: NewFieldSet("name"),
	}
)

// Managed returns the server-controlled fields: Client minus Writable.
func (p FieldPolicy) Managed() FieldSet {
	managed := make(FieldSet)
	for n := range p.Client {
		if !p.Writable.Has(n) {
			managed[n] = struct{}{}
		}
	}
	return managed
}

// ProjectClient returns only the Client fields of a full record.
func (p FieldPolicy) ProjectClient(record map[string]any) map[string]any {
	return project(record, p.Client)
}

// ProjectManaged returns only the Managed fields of a full record. Create
// responses use this: the client already knows what it sent, so only the
// server-assigned fields are echoed back.
func (p FieldPolicy) ProjectManaged(record map[string]any) map[string]any {
	return project(record, p.Managed())
}

// FilterInput checks that data is a single flat object and returns the subset
// of its keys that are Writable. Unknown keys, including attempts to set
// managed fields, are dropped silently. Null, lists, and scalars are rejected
// with ErrInvalidData before any filtering.
func (p FieldPolicy) FilterInput(data any) (map[string]any, error) {
	record, ok := data.(map[string]any)
	if !ok || record == nil {
		return nil, fmt.Errorf("input must be a single object: %w", ErrInvalidData)
	}
	return project(record, p.Writable), nil
}

// CheckRequired verifies that every Required field is present with a non-null
// value. A field set to null is treated the same as a missing one.
func (p FieldPolicy) CheckRequired(fields map[string]any) error {
	var missing []string
	for name := range p.Required {
		if v, ok := fields[name]; !ok || v == nil {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("missing required fields %v: %w", missing, ErrInvalidData)
	}
	return nil
}

func project(record map[string]any, allowed FieldSet) map[string]any {
	out := make(map[string]any, len(allowed))
	for k, v := range record {
		if allowed.Has(k) {
			out[k] = v
		}
	}
	return out
}
