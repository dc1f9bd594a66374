package soundbed

import (
	"context"
	"math"
	"math/rand"
	"testing"
	"time"
)

func toneSource(role Role, freq, amp float64, sampleRate, channels int, seconds float64) *Source {
	frames := int(seconds * float64(sampleRate))
	samples := make([]float64, frames*channels)
	for i := 0; i < frames; i++ {
		v := amp * math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate))
		for ch := 0; ch < channels; ch++ {
			samples[i*channels+ch] = v
		}
	}
	return &Source{Role: role, SampleRate: sampleRate, Channels: channels, Samples: samples}
}

func noiseSource(role Role, amp float64, sampleRate, channels int, seconds float64, seed int64) *Source {
	rng := rand.New(rand.NewSource(seed))
	frames := int(seconds * float64(sampleRate))
	samples := make([]float64, frames*channels)
	for i := range samples {
		samples[i] = amp * (rng.Float64()*2 - 1)
	}
	return &Source{Role: role, SampleRate: sampleRate, Channels: channels, Samples: samples}
}

func silentSource(role Role, sampleRate, channels int, seconds float64) *Source {
	frames := int(seconds * float64(sampleRate))
	return &Source{Role: role, SampleRate: sampleRate, Channels: channels, Samples: make([]float64, frames*channels)}
}

func rms(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	var sum float64
	for _, s := range samples {
		sum += s * s
	}
	return math.Sqrt(sum / float64(len(samples)))
}

// TestComposeAudioPresenceMatrix walks all eight presence combinations and
// checks that the output duration follows the highest-priority present role
// and that no combination fails.
func TestComposeAudioPresenceMatrix(t *testing.T) {
	p := New(DefaultPolicy(), nil)

	// Distinct durations per role so the winner is visible; the music bed
	// arrives mono at 24 kHz to exercise ingest conversion.
	primary := func() *Source { return toneSource(RolePrimary, 997, 0.3, 48000, 2, 2) }
	music := func() *Source { return noiseSource(RoleMusic, 0.5, 24000, 1, 3, 1) }
	ambient := func() *Source { return noiseSource(RoleAmbient, 0.2, 48000, 2, 4, 2) }

	cases := []struct {
		name    string
		set     SourceSet
		want    time.Duration
		missing int
	}{
		{"all", SourceSet{Primary: primary(), Music: music(), Ambient: ambient()}, 2 * time.Second, 0},
		{"primary+music", SourceSet{Primary: primary(), Music: music()}, 2 * time.Second, 1},
		{"primary+ambient", SourceSet{Primary: primary(), Ambient: ambient()}, 2 * time.Second, 1},
		{"primary", SourceSet{Primary: primary()}, 2 * time.Second, 2},
		{"music+ambient", SourceSet{Music: music(), Ambient: ambient()}, 3 * time.Second, 1},
		{"music", SourceSet{Music: music()}, 3 * time.Second, 2},
		{"ambient", SourceSet{Ambient: ambient()}, 4 * time.Second, 2},
		{"none", SourceSet{}, 0, 3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mix, report, err := p.ComposeAudio(context.Background(), tc.set)
			if err != nil {
				t.Fatal(err)
			}
			if tc.set.Empty() {
				if !report.Passthrough {
					t.Fatal("expected passthrough with no sources")
				}
				if mix != nil {
					t.Fatal("expected nil mix on passthrough")
				}
				return
			}
			if report.Passthrough {
				t.Fatal("unexpected passthrough")
			}
			if report.RunID == "" {
				t.Error("missing run ID")
			}
			if len(report.Roles) != 3 {
				t.Errorf("got %d role reports, want 3", len(report.Roles))
			}

			// Resampled sources may land a filter tail short of the
			// nominal length.
			got := mix.Duration()
			if d := got - tc.want; d < -20*time.Millisecond || d > 20*time.Millisecond {
				t.Errorf("duration %v, want %v", got, tc.want)
			}

			var missing int
			for _, ev := range report.Events {
				if ev.Kind == EventSourceMissing {
					missing++
				}
			}
			if missing != tc.missing {
				t.Errorf("%d missing-source events, want %d", missing, tc.missing)
			}

			for i, s := range mix.Samples {
				if s > 0.95 || s < -0.95 {
					t.Fatalf("sample %d is %v, exceeds the limiter ceiling", i, s)
				}
			}

			if report.Output == nil {
				t.Fatal("mastered mix measurement missing from report")
			}
			if report.Output.TruePeakDB > 0 {
				t.Errorf("output true peak %.2f dBTP above full scale", report.Output.TruePeakDB)
			}
			if report.Output.IntegratedLUFS < -70 {
				t.Errorf("output loudness %.2f LUFS below the measurement gate", report.Output.IntegratedLUFS)
			}
		})
	}
}

func TestComposeAudioDucksMusicUnderNarration(t *testing.T) {
	narration := func() *Source { return toneSource(RolePrimary, 997, 0.3, 48000, 2, 10) }
	music := func() *Source { return noiseSource(RoleMusic, 0.8, 48000, 2, 10, 7) }

	// A neutral mastering chain keeps the runs linear: the compressor would
	// squeeze the level difference, and at these levels the limiter never
	// engages, so the mixes subtract sample for sample.
	neutral := DefaultPolicy()
	neutral.Compressor.Ratio = 1
	neutral.Compressor.MakeupDB = 0
	p := New(neutral, nil)

	full, report, err := p.ComposeAudio(context.Background(), SourceSet{Primary: narration(), Music: music()})
	if err != nil {
		t.Fatal(err)
	}
	if got := full.Duration(); got != 10*time.Second {
		t.Fatalf("duration %v, want narration-led 10s", got)
	}
	if rr := report.roleReport(RolePrimary); rr == nil || rr.Normalization == nil {
		t.Error("narration normalization not reported")
	}

	// The narration track conditions identically with or without the bed,
	// and the mix stage is a plain sum: subtracting the narration-only run
	// leaves the ducked bed in isolation.
	voiceOnly, _, err := p.ComposeAudio(context.Background(), SourceSet{Primary: narration()})
	if err != nil {
		t.Fatal(err)
	}
	// Without narration ducking is skipped, so this is the unducked bed.
	bedOnly, _, err := p.ComposeAudio(context.Background(), SourceSet{Music: music()})
	if err != nil {
		t.Fatal(err)
	}
	if len(full.Samples) != len(voiceOnly.Samples) || len(full.Samples) != len(bedOnly.Samples) {
		t.Fatalf("run lengths differ: %d, %d, %d",
			len(full.Samples), len(voiceOnly.Samples), len(bedOnly.Samples))
	}
	ducked := make([]float64, len(full.Samples))
	for i := range ducked {
		ducked[i] = full.Samples[i] - voiceOnly.Samples[i]
	}

	// Steady state: past the attack and the fade-in, before the fade-out.
	lo, hi := 2*48000*2, 7*48000*2
	rd, ru := rms(ducked[lo:hi]), rms(bedOnly.Samples[lo:hi])
	t.Logf("bed rms ducked %.4f, unducked %.4f (%.1f dB)", rd, ru, 20*math.Log10(rd/ru))
	if limit := ru * math.Pow(10, -10.0/20); rd > limit {
		t.Errorf("ducked bed rms %.4f, want at least 10 dB below unducked %.4f", rd, ru)
	}
}

func TestComposeAudioSkipsDuckingWithoutNarration(t *testing.T) {
	p := New(DefaultPolicy(), nil)
	set := SourceSet{
		Music:   noiseSource(RoleMusic, 0.5, 48000, 2, 3, 3),
		Ambient: noiseSource(RoleAmbient, 0.3, 48000, 2, 3, 4),
	}

	_, report, err := p.ComposeAudio(context.Background(), set)
	if err != nil {
		t.Fatal(err)
	}

	var skipped int
	for _, ev := range report.Events {
		if ev.Kind == EventDuckingSkipped {
			skipped++
		}
	}
	if skipped != 2 {
		t.Errorf("%d ducking-skipped events, want 2 (music and ambient)", skipped)
	}
}

func TestComposeAudioSilentNarrationFallsBack(t *testing.T) {
	p := New(DefaultPolicy(), nil)
	set := SourceSet{Primary: silentSource(RolePrimary, 48000, 2, 2)}

	mix, report, err := p.ComposeAudio(context.Background(), set)
	if err != nil {
		t.Fatal(err)
	}
	if got := mix.Duration(); got != 2*time.Second {
		t.Errorf("duration %v, want 2s even on fallback", got)
	}

	var fellBack bool
	for _, ev := range report.Events {
		if ev.Kind == EventNormalizationFallback && ev.Role == RolePrimary {
			fellBack = true
		}
	}
	if !fellBack {
		t.Error("expected a normalization fallback event for silent narration")
	}
	if rr := report.roleReport(RolePrimary); rr == nil || rr.Normalization != nil {
		t.Error("fallback run must not report a normalization result")
	}
	if report.Output != nil {
		t.Error("an all-silent mix must not report an output measurement")
	}
}

func TestComposeAudioDropsCorruptSource(t *testing.T) {
	p := New(DefaultPolicy(), nil)
	bad := &Source{Role: RoleMusic, SampleRate: 48000, Channels: 3, Samples: make([]float64, 48000*3)}
	set := SourceSet{
		Primary: toneSource(RolePrimary, 997, 0.3, 48000, 2, 2),
		Music:   bad,
	}

	mix, report, err := p.ComposeAudio(context.Background(), set)
	if err != nil {
		t.Fatal(err)
	}
	if got := mix.Duration(); got != 2*time.Second {
		t.Errorf("duration %v, want 2s", got)
	}

	var dropped bool
	for _, ev := range report.Events {
		if ev.Kind == EventSourceCorrupt && ev.Role == RoleMusic {
			dropped = true
		}
	}
	if !dropped {
		t.Error("expected a corrupt-source event for the music bed")
	}
}

func TestComposeAudioOnlyCorruptSourceIsPassthrough(t *testing.T) {
	p := New(DefaultPolicy(), nil)
	bad := &Source{Role: RoleAmbient, SampleRate: 48000, Channels: 5, Samples: make([]float64, 48000*5)}

	mix, report, err := p.ComposeAudio(context.Background(), SourceSet{Ambient: bad})
	if err != nil {
		t.Fatal(err)
	}
	if !report.Passthrough || mix != nil {
		t.Fatal("expected passthrough when the only source is unusable")
	}
}

func TestComposeAudioCancelled(t *testing.T) {
	p := New(DefaultPolicy(), nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	set := SourceSet{Primary: toneSource(RolePrimary, 997, 0.3, 48000, 2, 1)}
	if _, _, err := p.ComposeAudio(ctx, set); err == nil {
		t.Fatal("expected a context error")
	}
}
