package main

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/wippyai/plykit/ply"
)

type headerReport struct {
	Format   string          `yaml:"format"`
	Version  string          `yaml:"version"`
	Comments []string        `yaml:"comments,omitempty"`
	ObjInfos []string        `yaml:"obj_info,omitempty"`
	Elements []elementReport `yaml:"elements"`
}

type elementReport struct {
	Name       string           `yaml:"name"`
	Count      int              `yaml:"count"`
	Properties []propertyReport `yaml:"properties,omitempty"`
}

type propertyReport struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

func newHeaderReport(h *ply.Header) headerReport {
	r := headerReport{
		Format:   h.Encoding.String(),
		Version:  h.Version.String(),
		Comments: h.Comments,
		ObjInfos: h.ObjInfos,
		Elements: make([]elementReport, 0, len(h.Elements)),
	}
	for _, e := range h.Elements {
		er := elementReport{Name: e.Name, Count: e.Count}
		for _, p := range e.Properties {
			er.Properties = append(er.Properties, propertyReport{Name: p.Name, Type: p.Type.String()})
		}
		r.Elements = append(r.Elements, er)
	}
	return r
}

func writeYAML(w io.Writer, h *ply.Header) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(newHeaderReport(h)); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

func writeHeader(w io.Writer, st styles, name string, h *ply.Header) {
	fmt.Fprintf(w, "%s %s\n\n", st.title.Render("PLY"), name)
	fmt.Fprintf(w, "Format: %s %s\n", h.Encoding, h.Version)
	for _, c := range h.Comments {
		fmt.Fprintf(w, "Comment: %s\n", c)
	}
	for _, o := range h.ObjInfos {
		fmt.Fprintf(w, "Obj info: %s\n", o)
	}
	fmt.Fprintf(w, "\nElements:\n")
	for _, e := range h.Elements {
		fmt.Fprintf(w, "  %s (%d)\n", st.element.Render(e.Name), e.Count)
		for _, p := range e.Properties {
			fmt.Fprintf(w, "    %s %s\n", st.typ.Render(p.Type.String()), p.Name)
		}
	}
}

func writePayloadSummary(w io.Writer, st styles, model *ply.Ply[ply.DefaultElement]) {
	fmt.Fprintf(w, "\nDecoded records:\n")
	for _, name := range model.Payload.Names() {
		records, _ := model.Payload.Get(name)
		fmt.Fprintf(w, "  %s: %d\n", st.element.Render(name), len(records))
	}
}

// formatRecord renders a record with its properties in declaration order.
func formatRecord(def *ply.ElementDef, e ply.DefaultElement) string {
	parts := make([]string, 0, len(def.Properties))
	for _, p := range def.Properties {
		v, ok := e.Get(p.Name)
		if !ok {
			continue
		}
		parts = append(parts, p.Name+"="+fmt.Sprint(v))
	}
	return strings.Join(parts, " ")
}

// maxBrowsedRecords bounds the records rendered into the browser viewport.
const maxBrowsedRecords = 10000

func formatRecords(def *ply.ElementDef, records []ply.DefaultElement) string {
	var b strings.Builder
	for i, r := range records {
		if i == maxBrowsedRecords {
			fmt.Fprintf(&b, "... %d more\n", len(records)-i)
			break
		}
		fmt.Fprintf(&b, "%6d  %s\n", i, formatRecord(def, r))
	}
	return b.String()
}
