package wordify

import "strings"

// Consolidate merges adjacent runs with the same op. Empty runs are dropped.
func Consolidate(runs []Run) []Run {
	out := make([]Run, 0, len(runs))
	var sb strings.Builder
	flush := func() {
		if n := len(out); n > 0 && sb.Len() > 0 {
			out[n-1].Text = sb.String()
		}
		sb.Reset()
	}
	for _, r := range runs {
		if r.Text == "" {
			continue
		}
		if n := len(out); n > 0 && out[n-1].Op == r.Op {
			if sb.Len() == 0 {
				sb.WriteString(out[n-1].Text)
			}
			sb.WriteString(r.Text)
			continue
		}
		flush()
		out = append(out, r)
	}
	flush()
	return out
}
