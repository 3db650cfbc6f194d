package seismic

// DefaultFieldID is used whenever a requested model is unknown.
const DefaultFieldID = "pwave"

var fields = []Field{
	PWave{},
	SWave{},
	RadialPWave{},
	RadialSWave{},
	RayleighWave{},
	AsymLambWave{},
	SymLambWave{},
}

var fieldsByID = func() map[string]Field {
	m := make(map[string]Field, len(fields))
	for _, f := range fields {
		m[f.ID()] = f
	}
	return m
}()

// Fields returns every registered variant in menu order.
func Fields() []Field {
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}

// FieldIDs returns the registry keys in menu order.
func FieldIDs() []string {
	ids := make([]string, len(fields))
	for i, f := range fields {
		ids[i] = f.ID()
	}
	return ids
}

// LookupField returns the variant registered under id.
func LookupField(id string) (Field, bool) {
	f, ok := fieldsByID[id]
	return f, ok
}

// FieldFor returns the variant registered under id, or the P-wave when id is
// not known.
func FieldFor(id string) Field {
	if f, ok := fieldsByID[id]; ok {
		return f
	}
	return fieldsByID[DefaultFieldID]
}

// FieldIndex returns the menu position of id, or -1.
func FieldIndex(id string) int {
	for i, f := range fields {
		if f.ID() == id {
			return i
		}
	}
	return -1
}
