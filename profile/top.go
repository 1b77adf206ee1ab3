package profile

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/pprof/profile"
)

// Top returns a flat text report of the profile, listing the call sites that
// created the most nodes. For an interactive analysis (graph, web, ...) use
// `go tool pprof` on the serialized profile instead.
func (p *Profile) Top() string {
	type entry struct {
		name string
		flat int64
		cum  int64
	}

	key := func(l *profile.Location) string {
		if len(l.Line) == 0 || l.Line[0].Function == nil {
			return "<unknown>"
		}
		line := l.Line[0]
		return fmt.Sprintf("%s %s:%d", line.Function.Name, shortFilename(line.Function.Filename), line.Line)
	}

	byName := make(map[string]*entry)
	var total, shown int64

	for _, s := range p.pprof.Sample {
		if len(s.Value) == 0 {
			continue
		}
		v := s.Value[0]
		total += v

		if len(s.Location) == 0 {
			continue
		}
		shown += v

		// flat is attributed to the leaf location only
		k := key(s.Location[0])
		e, ok := byName[k]
		if !ok {
			e = &entry{name: k}
			byName[k] = e
		}
		e.flat += v

		// cum is attributed once per call site present in the stack
		seen := make(map[string]bool, len(s.Location))
		for _, l := range s.Location {
			lk := key(l)
			if seen[lk] {
				continue
			}
			seen[lk] = true
			ce, ok := byName[lk]
			if !ok {
				ce = &entry{name: lk}
				byName[lk] = ce
			}
			ce.cum += v
		}
	}

	entries := make([]*entry, 0, len(byName))
	for _, e := range byName {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].flat != entries[j].flat {
			return entries[i].flat > entries[j].flat
		}
		if entries[i].cum != entries[j].cum {
			return entries[i].cum > entries[j].cum
		}
		return entries[i].name < entries[j].name
	})

	var sbb strings.Builder
	fmt.Fprintf(&sbb, "Showing nodes accounting for %d, %s of %d total\n", shown, percent(shown, total), total)
	fmt.Fprintf(&sbb, "%10s %6s %6s %10s %6s\n", "flat", "flat%", "sum%", "cum", "cum%")
	var sum int64
	for _, e := range entries {
		sum += e.flat
		fmt.Fprintf(&sbb, "%10d %6s %6s %10d %6s  %s\n", e.flat, percent(e.flat, total), percent(sum, total), e.cum, percent(e.cum, total), e.name)
	}

	return sbb.String()
}

func percent(v, total int64) string {
	if total == 0 {
		return "0%"
	}
	if v == total {
		return "100%"
	}
	return fmt.Sprintf("%.2f%%", float64(v)*100/float64(total))
}

// shortFilename keeps the last two components of a file path.
func shortFilename(path string) string {
	parts := strings.Split(path, "/")
	if len(parts) <= 2 {
		return path
	}
	return strings.Join(parts[len(parts)-2:], "/")
}
