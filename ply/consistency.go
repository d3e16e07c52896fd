package ply

import (
	"strings"

	"github.com/wippyai/plykit/errors"
)

func hasWhiteSpace(s string) bool {
	return strings.ContainsAny(s, " \t")
}

func hasLineBreak(s string) bool {
	return strings.ContainsAny(s, "\n\r")
}

// Normalize makes p consistent so that it can be written as a valid file.
//
// Every declared element without records gets an empty entry, and every
// element count is set to the number of records in the payload. These are
// the only mutations. Normalize then rejects payload entries without a
// declaration, comments and obj_infos containing line breaks, and element
// or property names containing line breaks or white space. Failures are
// *errors.Error values of kind errors.KindConsistency.
//
// Normalize is idempotent. Encoding and character set are not checked.
func (p *Ply[E]) Normalize() error {
	if p.Payload == nil {
		p.Payload = NewPayload[E]()
	}
	for _, e := range p.Header.Elements {
		if !p.Payload.Has(e.Name) {
			p.Payload.Set(e.Name, []E{})
		}
	}
	for _, name := range p.Payload.names {
		if name == "" {
			return errors.Consistency("element cannot have an empty name")
		}
		def := p.Header.Element(name)
		if def == nil {
			return errors.Consistency("no declaration for element %q found", name)
		}
		def.Count = len(p.Payload.entries[name])
	}
	for _, oi := range p.Header.ObjInfos {
		if hasLineBreak(oi) {
			return errors.Consistency("obj_info %q should not contain any line breaks", oi)
		}
	}
	for _, c := range p.Header.Comments {
		if hasLineBreak(c) {
			return errors.Consistency("comment %q should not contain any line breaks", c)
		}
	}
	for _, e := range p.Header.Elements {
		if hasLineBreak(e.Name) {
			return errors.Consistency("name of element %q should not contain any line breaks", e.Name)
		}
		if hasWhiteSpace(e.Name) {
			return errors.Consistency("name of element %q should not contain any white space", e.Name)
		}
		for _, def := range e.Properties {
			if hasLineBreak(def.Name) {
				return errors.Consistency("name of property %q of element %q should not contain any line breaks", def.Name, e.Name)
			}
			if hasWhiteSpace(def.Name) {
				return errors.Consistency("name of property %q of element %q should not contain any white space", def.Name, e.Name)
			}
		}
	}
	return nil
}
