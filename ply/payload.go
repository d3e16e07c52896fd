package ply

// Payload maps element names to their decoded records.
// Names iterate in insertion order; the decoder inserts them in header order.
type Payload[E any] struct {
	entries map[string][]E
	names   []string
}

// NewPayload creates an empty payload.
func NewPayload[E any]() *Payload[E] {
	return &Payload[E]{entries: make(map[string][]E)}
}

// Set stores the records of an element. Setting an existing name keeps its position.
func (p *Payload[E]) Set(name string, records []E) {
	if p.entries == nil {
		p.entries = make(map[string][]E)
	}
	if _, ok := p.entries[name]; !ok {
		p.names = append(p.names, name)
	}
	p.entries[name] = records
}

// Get returns the records of an element.
func (p *Payload[E]) Get(name string) ([]E, bool) {
	if p == nil {
		return nil, false
	}
	records, ok := p.entries[name]
	return records, ok
}

// Has reports whether the payload holds an entry for name.
func (p *Payload[E]) Has(name string) bool {
	_, ok := p.Get(name)
	return ok
}

// Delete removes the entry for name.
func (p *Payload[E]) Delete(name string) {
	if p == nil {
		return
	}
	if _, ok := p.entries[name]; !ok {
		return
	}
	delete(p.entries, name)
	for i, n := range p.names {
		if n == name {
			p.names = append(p.names[:i], p.names[i+1:]...)
			break
		}
	}
}

// Names returns the element names in insertion order.
func (p *Payload[E]) Names() []string {
	if p == nil {
		return nil
	}
	out := make([]string, len(p.names))
	copy(out, p.names)
	return out
}

// Len returns the number of entries.
func (p *Payload[E]) Len() int {
	if p == nil {
		return 0
	}
	return len(p.names)
}

// Ply is a decoded file: header and payload.
type Ply[E any] struct {
	Payload *Payload[E]
	Header  Header
}

// New creates an empty ascii 1.0 Ply.
func New[E any]() *Ply[E] {
	return &Ply[E]{
		Header:  NewHeader(),
		Payload: NewPayload[E](),
	}
}
