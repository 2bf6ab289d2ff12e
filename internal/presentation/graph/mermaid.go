package graph

import (
	"fmt"
	"slices"
	"strings"

	"github.com/aretw0/factory/pkg/record"
)

// GenerateMermaid produces a Mermaid class diagram for record types.
// Fields show their schema type when one is declared. Records that hold
// other records add an association labelled with the field name, so the
// diagram follows the paths Dig can walk.
func GenerateMermaid(types []*record.Type, records []*record.Record) string {
	var sb strings.Builder
	sb.WriteString("classDiagram\n")

	for _, t := range types {
		id := classID(t)
		fmt.Fprintf(&sb, "    class %s[\"%s\"] {\n", id, t.String())
		s := t.Schema()
		for _, f := range t.Fields() {
			kind := "any"
			if ft, ok := s[f]; ok {
				kind = ft.Name()
			}
			fmt.Fprintf(&sb, "        +%s %s\n", kind, f)
		}
		sb.WriteString("    }\n")
	}

	seen := make(map[string]bool)
	var links []string
	for _, r := range records {
		from := classID(r.Type())
		for field, v := range r.Pairs() {
			child, ok := v.(*record.Record)
			if !ok || child == nil {
				continue
			}
			link := fmt.Sprintf("    %s --> %s : %s\n", from, classID(child.Type()), field)
			if !seen[link] {
				seen[link] = true
				links = append(links, link)
			}
		}
	}
	slices.Sort(links)
	for _, l := range links {
		sb.WriteString(l)
	}

	return sb.String()
}

// classID is stable per type. Named types use their qualified name and
// anonymous types their process-unique id.
func classID(t *record.Type) string {
	if q := t.QualifiedName(); q != "" {
		return sanitizeMermaidID(q)
	}
	return fmt.Sprintf("factory_%d", t.ID())
}

func sanitizeMermaidID(id string) string {
	return strings.NewReplacer("::", "_", ".", "_", "-", "_").Replace(id)
}
