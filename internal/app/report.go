package app

import (
	"fmt"
	"io"
	"strings"

	"go.trai.ch/boot/internal/core/domain"
	"go.trai.ch/boot/internal/engine/orchestrator"
)

func writePlan(w io.Writer, order domain.BuildOrder, fingerprint string) error {
	var b strings.Builder
	b.WriteString("Components to load:\n")
	for i, d := range order {
		fmt.Fprintf(&b, "%d. %s\n", i+1, d.ID)

		ctor := "-"
		if c, err := d.Designated(); err == nil {
			ctor = c.Name
		}
		fmt.Fprintf(&b, "   Constructor: %s\n", ctor)
		fmt.Fprintf(&b, "   Dependencies: %s\n", joinIdentities(d.Params()))

		fields := make([]string, len(d.Fields))
		for j, f := range d.Fields {
			fields[j] = f.Field + " " + f.Dependency.String()
		}
		fmt.Fprintf(&b, "   Fields: [%s]\n", strings.Join(fields, ", "))

		hooks := make([]string, 0, len(d.Hooks))
		for _, h := range d.SortedHooks() {
			mode := "sync"
			if h.Async {
				mode = "async"
			}
			hooks = append(hooks, fmt.Sprintf("%d. %s#%s (%s)", h.Priority, d.ID, h.Method, mode))
		}
		fmt.Fprintf(&b, "   Hooks: [%s]\n", strings.Join(hooks, ", "))
	}
	fmt.Fprintf(&b, "Fingerprint: %s\n", fingerprint)

	_, err := io.WriteString(w, b.String())
	return err
}

func writeReport(w io.Writer, r orchestrator.Report) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Initialized %d components in %s\n", len(r.Order), r.InitDuration)
	fmt.Fprintf(&b, "Order: %s\n", joinIdentities(r.Order))
	if len(r.Seeded) > 0 {
		fmt.Fprintf(&b, "Pre-registered: %s\n", joinIdentities(r.Seeded))
	}
	for _, f := range r.HookFailures {
		fmt.Fprintf(&b, "Hook failed: %s\n", f)
	}
	fmt.Fprintf(&b, "Async hooks: %d, abandoned: %d, drained in %s\n", r.AsyncHooks, r.Abandoned, r.DrainDuration)

	_, err := io.WriteString(w, b.String())
	return err
}

func joinIdentities(ids []domain.Identity) string {
	return "[" + strings.Join(domain.Names(ids), ", ") + "]"
}
