package commands

import (
	"fmt"
	"strings"

	"github.com/soundbed/soundbed/pkg/cli"
	"github.com/soundbed/soundbed/pkg/soundbed"
)

// printReport renders a run report: styled text for terminals, JSON when
// --json is set.
func printReport(report *soundbed.Report, output string) error {
	if outputJSON {
		return cli.Output(reportDoc(report, output), cli.OutputOptions{Format: cli.FormatJSON})
	}

	s := cli.NewStyles(cli.DefaultTheme)
	var b strings.Builder

	b.WriteString(s.Title.Render("soundbed compose") + "\n")
	b.WriteString(s.KV("output", output) + "\n")
	if report.Passthrough {
		b.WriteString(s.KV("mode", "passthrough (no usable audio)") + "\n")
	} else {
		b.WriteString(s.KV("duration", cli.FormatDuration(report.Duration)) + "\n")
		if m := report.Output; m != nil {
			b.WriteString(s.KV("mix", fmt.Sprintf("%s  peak %s",
				cli.FormatLUFS(m.IntegratedLUFS), cli.FormatDB(m.TruePeakDB))) + "\n")
		}
	}

	for _, rr := range report.Roles {
		if !rr.Present {
			b.WriteString(s.KV(rr.Role.String(), s.Dim.Render("absent")) + "\n")
			continue
		}
		line := cli.FormatDuration(rr.InputDuration)
		if n := rr.Normalization; n != nil {
			line += fmt.Sprintf("  %s → gain %s", cli.FormatLUFS(n.InputLUFS), cli.FormatDB(n.GainDB))
			if n.Clamped {
				line += s.Warn.Render("  (peak-limited)")
			}
		}
		b.WriteString(s.KV(rr.Role.String(), line) + "\n")
	}

	for _, ev := range report.Events {
		if ev.Kind == soundbed.EventSourceMissing {
			continue // already visible in the role lines
		}
		msg := fmt.Sprintf("%s: %s", ev.Role, ev.Kind)
		if ev.Detail != "" {
			msg += " (" + ev.Detail + ")"
		}
		b.WriteString(s.Warn.Render("⚠ "+msg) + "\n")
	}

	b.WriteString(s.Dim.Render("run "+report.RunID) + "\n")
	fmt.Print(b.String())
	return nil
}

// reportDoc flattens a report for machine output.
func reportDoc(report *soundbed.Report, output string) map[string]any {
	roles := make([]map[string]any, 0, len(report.Roles))
	for _, rr := range report.Roles {
		doc := map[string]any{
			"role":    rr.Role.String(),
			"present": rr.Present,
		}
		if rr.Present {
			doc["input_duration_ms"] = rr.InputDuration.Milliseconds()
		}
		if n := rr.Normalization; n != nil {
			doc["input_lufs"] = n.InputLUFS
			doc["input_range_lu"] = n.InputRangeLU
			doc["input_true_peak_db"] = n.InputTruePeakDB
			doc["gain_db"] = n.GainDB
			doc["clamped"] = n.Clamped
		}
		roles = append(roles, doc)
	}

	events := make([]map[string]any, 0, len(report.Events))
	for _, ev := range report.Events {
		events = append(events, map[string]any{
			"kind":   ev.Kind.String(),
			"role":   ev.Role.String(),
			"detail": ev.Detail,
		})
	}

	doc := map[string]any{
		"run_id":      report.RunID,
		"output":      output,
		"passthrough": report.Passthrough,
		"duration_ms": report.Duration.Milliseconds(),
		"roles":       roles,
		"events":      events,
	}
	if m := report.Output; m != nil {
		doc["output_lufs"] = m.IntegratedLUFS
		doc["output_true_peak_db"] = m.TruePeakDB
	}
	return doc
}
