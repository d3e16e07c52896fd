package ply

import (
	"errors"
	"testing"

	plyerrors "github.com/wippyai/plykit/errors"
)

var errConsistency = &plyerrors.Error{Phase: plyerrors.PhaseNormalize, Kind: plyerrors.KindConsistency}

func TestNormalizeInsertsMissingEntries(t *testing.T) {
	p := New[DefaultElement]()
	p.Header.Elements = append(p.Header.Elements, NewElementDef("vertex"), NewElementDef("face"))

	if err := p.Normalize(); err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	for _, name := range []string{"vertex", "face"} {
		records, ok := p.Payload.Get(name)
		if !ok {
			t.Fatalf("%s entry missing", name)
		}
		if len(records) != 0 {
			t.Errorf("%s: got %d records, want 0", name, len(records))
		}
		if p.Header.Element(name).Count != 0 {
			t.Errorf("%s: count = %d, want 0", name, p.Header.Element(name).Count)
		}
	}
}

func TestNormalizeSetsCount(t *testing.T) {
	p := New[DefaultElement]()
	def := NewElementDef("point")
	def.Count = 7
	p.Header.Elements = append(p.Header.Elements, def)
	p.Payload.Set("point", []DefaultElement{NewDefaultElement(), NewDefaultElement()})

	if err := p.Normalize(); err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if got := p.Header.Element("point").Count; got != 2 {
		t.Errorf("count = %d, want 2", got)
	}

	// Idempotent.
	if err := p.Normalize(); err != nil {
		t.Fatalf("second Normalize: %v", err)
	}
	if got := p.Header.Element("point").Count; got != 2 {
		t.Errorf("count after second pass = %d, want 2", got)
	}
}

func TestNormalizeUndeclaredElement(t *testing.T) {
	p := New[DefaultElement]()
	p.Payload.Set("edge", []DefaultElement{})

	err := p.Normalize()
	if !errors.Is(err, errConsistency) {
		t.Fatalf("expected consistency error, got %v", err)
	}
}

func TestNormalizeEmptyElementName(t *testing.T) {
	p := New[DefaultElement]()
	p.Payload.Set("", []DefaultElement{})

	if err := p.Normalize(); !errors.Is(err, errConsistency) {
		t.Fatalf("expected consistency error, got %v", err)
	}
}

func TestNormalizeRejects(t *testing.T) {
	withProperty := func(name string) *Ply[DefaultElement] {
		p := New[DefaultElement]()
		e := NewElementDef("ok")
		e.Properties = append(e.Properties, NewPropertyDef(name, ScalarProperty(TypeChar)))
		p.Header.Elements = append(p.Header.Elements, e)
		return p
	}
	withElement := func(name string) *Ply[DefaultElement] {
		p := New[DefaultElement]()
		p.Header.Elements = append(p.Header.Elements, NewElementDef(name))
		return p
	}

	tests := []struct {
		name string
		ply  *Ply[DefaultElement]
	}{
		{"comment line break", func() *Ply[DefaultElement] {
			p := New[DefaultElement]()
			p.Header.Comments = append(p.Header.Comments, "a beautiful\r\nnew line!")
			return p
		}()},
		{"obj_info line break", func() *Ply[DefaultElement] {
			p := New[DefaultElement]()
			p.Header.ObjInfos = append(p.Header.ObjInfos, "some\rnew line!")
			return p
		}()},
		{"element line break", withElement("new\nline")},
		{"element space", withElement("white space")},
		{"element tab", withElement("white\tspace")},
		{"property line break", withProperty("prop\nwith new line")},
		{"property space", withProperty("prop with space")},
		{"property tab", withProperty("prop\twhite space")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ply.Normalize()
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, errConsistency) {
				t.Errorf("expected consistency error, got %v", err)
			}
		})
	}
}

func TestNormalizeStopsAtFailingStep(t *testing.T) {
	p := New[DefaultElement]()
	p.Payload.Set("ghost", []DefaultElement{NewDefaultElement()})
	p.Header.Comments = append(p.Header.Comments, "bad\ncomment")
	def := NewElementDef("vertex")
	p.Header.Elements = append(p.Header.Elements, def)

	if err := p.Normalize(); err == nil {
		t.Fatal("expected error")
	}
	// Step 1 ran, step 2 failed on "ghost"; vertex was inserted before the failure.
	if !p.Payload.Has("vertex") {
		t.Error("missing entries are inserted before validation")
	}
}
