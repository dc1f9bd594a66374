package soundbed

import (
	"time"

	"github.com/soundbed/soundbed/pkg/audio/dsp"
)

// RoleReport describes what happened to one role during a run.
type RoleReport struct {
	Role    Role
	Present bool
	// InputDuration is the source length after conversion to the working
	// format, before any truncation to the output duration.
	InputDuration time.Duration
	// Normalization is set for the narration when loudness normalization
	// ran; nil on fallback or for other roles.
	Normalization *dsp.NormalizeResult
}

// MixMeasurement is the measured loudness and true peak of the mastered mix.
type MixMeasurement struct {
	IntegratedLUFS float64
	TruePeakDB     float64
}

// Report summarizes one pipeline run.
type Report struct {
	RunID string
	// Duration is the output duration, following the highest-priority
	// present role. Zero when Passthrough is set.
	Duration time.Duration
	// Passthrough is set when no usable audio source was available; the
	// visual stream must be carried through unchanged.
	Passthrough bool
	// Output holds the mastered mix measurement; nil on passthrough or
	// when the mix is too quiet to measure.
	Output *MixMeasurement
	Roles  []RoleReport
	Events []Event
}

// roleReport returns the report entry for a role.
func (r *Report) roleReport(role Role) *RoleReport {
	for i := range r.Roles {
		if r.Roles[i].Role == role {
			return &r.Roles[i]
		}
	}
	return nil
}
