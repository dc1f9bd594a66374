package soundbed

import (
	"log/slog"
	"sync"

	"github.com/soundbed/soundbed/pkg/audio/dsp"
)

// duck reduces each bed under the conditioned narration. Without narration
// the beds pass through at their static gains and the skip is recorded.
func (p *Pipeline) duck(tracks []*track, report *Report, log *slog.Logger) {
	var control []float64
	if tracks[0].role == RolePrimary {
		control = tracks[0].samples
	}

	if control == nil {
		for _, tr := range tracks {
			report.Events = append(report.Events, Event{
				Kind:   EventDuckingSkipped,
				Role:   tr.role,
				Detail: "no narration to key from",
			})
		}
		log.Info("ducking skipped, no narration present")
		return
	}

	var wg sync.WaitGroup
	for _, tr := range tracks {
		var params dsp.DuckerParams
		switch tr.role {
		case RoleMusic:
			params = p.policy.MusicDucking
		case RoleAmbient:
			params = p.policy.AmbientDucking
		default:
			continue
		}
		wg.Add(1)
		go func(tr *track, params dsp.DuckerParams) {
			defer wg.Done()
			d := dsp.NewDucker(params, p.sampleRate(), p.channels())
			tr.samples = d.Process(tr.samples, control)
		}(tr, params)
	}
	wg.Wait()
}
