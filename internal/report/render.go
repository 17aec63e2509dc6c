package report

import (
	"strings"

	"github.com/georgeaf99/das-care-contact-forms/internal/types"
)

// Render builds the report for every address in groups.
func Render(groups types.Groups, compressed types.Compressed) map[string]string {
	reports := make(map[string]string, len(groups))
	for addr, group := range groups {
		reports[addr] = RenderValues(Template, Compute(addr, group, compressed[addr]))
	}
	return reports
}

// RenderValues fills a template with the given values.
// Lines with a missing field are dropped, then empty sections are dropped.
func RenderValues(tmpl []Section, values Values) string {
	pairs := make([]string, 0, 2*len(values))
	for f, s := range values {
		pairs = append(pairs, f.Placeholder(), s)
	}
	replacer := strings.NewReplacer(pairs...)

	var sections []string
	for _, section := range tmpl {
		var lines []string
		for _, l := range section {
			if !satisfied(l, values) {
				continue
			}
			lines = append(lines, replacer.Replace(l.Format))
		}
		if len(lines) > 0 {
			sections = append(sections, strings.Join(lines, "\n"))
		}
	}

	return strings.Join(sections, "\n\n")
}

func satisfied(l Line, values Values) bool {
	for _, f := range l.Requires {
		if values.Get(f).IsMissing() {
			return false
		}
	}
	return true
}
