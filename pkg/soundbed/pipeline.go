package soundbed

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/soundbed/soundbed/pkg/audio/dsp"
	"github.com/soundbed/soundbed/pkg/audio/resample"
)

// Renderer produces the final artifact from a finished mix. Implementations
// mux the mix with the visual stream, or carry the visual stream through
// unchanged when there is no mix.
type Renderer interface {
	Render(ctx context.Context, visual string, mix *Mix, output string) error
	Passthrough(ctx context.Context, visual, output string) error
}

// Pipeline conditions, ducks, mixes and masters a SourceSet under a Policy.
// A Pipeline is stateless across runs and safe for concurrent use.
type Pipeline struct {
	policy Policy
	logger *slog.Logger
}

// New creates a pipeline. A nil logger falls back to slog.Default.
func New(policy Policy, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{policy: policy, logger: logger}
}

// track is one role's samples as they move through the stages.
type track struct {
	role    Role
	samples []float64
}

// ComposeAudio runs the audio stages and returns the mastered mix with a run
// report. With no usable sources the mix is nil and Report.Passthrough is
// set; that is not an error.
func (p *Pipeline) ComposeAudio(ctx context.Context, set SourceSet) (*Mix, *Report, error) {
	report := &Report{RunID: uuid.NewString()}
	log := p.logger.With("run", report.RunID)

	tracks := p.ingest(set, report, log)
	if len(tracks) == 0 {
		report.Passthrough = true
		log.Info("no usable audio source in any role")
		return nil, report, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	// Output duration follows the highest-priority present role.
	frames := len(tracks[0].samples) / p.channels()
	report.Duration = p.framesDuration(frames)
	log.Info("mix plan",
		"lead", tracks[0].role.String(),
		"duration", report.Duration,
		"tracks", len(tracks))

	p.condition(tracks, report)
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	p.duck(tracks, report, log)

	mixed := p.mixdown(tracks, frames)
	mastered := p.master(mixed)

	if m, err := dsp.MeasureLoudness(mastered, p.sampleRate(), p.channels()); err == nil {
		report.Output = &MixMeasurement{
			IntegratedLUFS: m.IntegratedLUFS,
			TruePeakDB:     dsp.TruePeakDB(mastered, p.channels()),
		}
		log.Info("mastered mix",
			"loudness_lufs", report.Output.IntegratedLUFS,
			"true_peak_db", report.Output.TruePeakDB)
	}

	return &Mix{
		SampleRate: p.sampleRate(),
		Channels:   p.channels(),
		Samples:    mastered,
	}, report, nil
}

// Compose runs ComposeAudio and hands the result to the renderer: a mux of
// mix and visual stream, or a passthrough of the visual stream when no audio
// was usable.
func (p *Pipeline) Compose(ctx context.Context, r Renderer, visual string, set SourceSet, output string) (*Report, error) {
	mix, report, err := p.ComposeAudio(ctx, set)
	if err != nil {
		return nil, err
	}
	if report.Passthrough {
		if err := r.Passthrough(ctx, visual, output); err != nil {
			return nil, err
		}
		return report, nil
	}
	if err := r.Render(ctx, visual, mix, output); err != nil {
		return nil, err
	}
	return report, nil
}

// ingest converts every present source to the working format. Sources that
// cannot be converted are dropped with a corrupt-source event.
func (p *Pipeline) ingest(set SourceSet, report *Report, log *slog.Logger) []*track {
	var tracks []*track
	for _, role := range roleOrder {
		src := set.ByRole(role)
		rr := RoleReport{Role: role, Present: src != nil}
		if src == nil {
			report.Events = append(report.Events, Event{Kind: EventSourceMissing, Role: role})
			report.Roles = append(report.Roles, rr)
			continue
		}
		samples, err := resample.Convert(src.Samples,
			src.SampleRate, src.Channels,
			p.sampleRate(), p.channels())
		if err != nil {
			log.Warn("dropping unusable source", "role", role.String(), "error", err)
			rr.Present = false
			report.Events = append(report.Events, Event{
				Kind:   EventSourceCorrupt,
				Role:   role,
				Detail: err.Error(),
			})
			report.Roles = append(report.Roles, rr)
			continue
		}
		rr.InputDuration = p.framesDuration(len(samples) / p.channels())
		report.Roles = append(report.Roles, rr)
		tracks = append(tracks, &track{role: role, samples: samples})
	}
	return tracks
}

// condition runs per-role conditioning, one goroutine per track.
func (p *Pipeline) condition(tracks []*track, report *Report) {
	var wg sync.WaitGroup
	var mu sync.Mutex
	for _, tr := range tracks {
		wg.Add(1)
		go func(tr *track) {
			defer wg.Done()
			switch tr.role {
			case RolePrimary:
				out, res, events := p.conditionPrimary(tr.samples)
				tr.samples = out
				mu.Lock()
				if rr := report.roleReport(RolePrimary); rr != nil {
					rr.Normalization = res
				}
				report.Events = append(report.Events, events...)
				mu.Unlock()
			case RoleMusic:
				tr.samples = p.conditionMusic(tr.samples, report.Duration)
			case RoleAmbient:
				tr.samples = p.conditionAmbient(tr.samples)
			}
		}(tr)
	}
	wg.Wait()
}

func (p *Pipeline) sampleRate() int { return p.policy.Format.SampleRate() }
func (p *Pipeline) channels() int   { return p.policy.Format.Channels() }

func (p *Pipeline) framesDuration(frames int) time.Duration {
	return time.Duration(frames) * time.Second / time.Duration(p.sampleRate())
}
