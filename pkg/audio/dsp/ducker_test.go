package dsp

import (
	"math"
	"testing"
	"time"
)

var musicDucking = DuckerParams{
	Threshold: 0.03,
	Ratio:     4,
	Attack:    20 * time.Millisecond,
	Release:   250 * time.Millisecond,
}

var ambientDucking = DuckerParams{
	Threshold: 0.04,
	Ratio:     3,
	Attack:    20 * time.Millisecond,
	Release:   250 * time.Millisecond,
}

// reductionDBAt returns the gain reduction in dB at a frame, derived from a
// unity secondary signal.
func reductionDBAt(out []float64, frame, channels int) float64 {
	g := out[frame*channels]
	if g <= 0 {
		return math.Inf(1)
	}
	return -LinearToDB(g)
}

func TestDuckerAttackEngagement(t *testing.T) {
	const sampleRate = 48000
	const channels = 1

	d := NewDucker(musicDucking, sampleRate, channels)

	// Control steps from silence to full scale at t=0.
	control := constant(1.0, sampleRate, channels, 1.0)
	secondary := constant(1.0, sampleRate, channels, 1.0)

	out := d.Process(secondary, control)

	steady := d.SteadyStateReductionDB(1.0)
	if steady < 20 {
		t.Fatalf("steady-state reduction %.1f dB unexpectedly small", steady)
	}

	atAttack := reductionDBAt(out, sampleRate*20/1000, channels)
	t.Logf("reduction at 20ms: %.2f dB (steady state %.2f dB)", atAttack, steady)
	if atAttack < 0.8*steady {
		t.Errorf("reduction at attack window %.2f dB < 80%% of steady state %.2f dB", atAttack, steady)
	}

	// Deep into the signal the reduction should be at steady state.
	atMid := reductionDBAt(out, sampleRate/2, channels)
	if math.Abs(atMid-steady) > 0.5 {
		t.Errorf("mid-signal reduction %.2f dB, expected ~%.2f dB", atMid, steady)
	}
}

func TestDuckerReleaseHoldsThenRecovers(t *testing.T) {
	const sampleRate = 48000
	const channels = 1

	d := NewDucker(musicDucking, sampleRate, channels)

	// 1s of full-scale control followed by 2s of silence.
	control := constant(1.0, sampleRate, channels, 1.0)
	control = append(control, constant(0, sampleRate, channels, 2.0)...)
	secondary := constant(1.0, sampleRate, channels, 3.0)

	out := d.Process(secondary, control)

	steady := d.SteadyStateReductionDB(1.0)
	silenceStart := sampleRate // frame where control goes quiet

	// Reduction must not drop below ~90% of steady state until the full
	// release window has passed.
	for _, ms := range []int{50, 150, 249} {
		frame := silenceStart + sampleRate*ms/1000
		red := reductionDBAt(out, frame, channels)
		if red < 0.9*steady {
			t.Errorf("reduction %.2f dB at +%dms after silence, expected >= 90%% of %.2f dB", red, ms, steady)
		}
	}

	// Well past the release window the ducking must have mostly recovered.
	late := silenceStart + sampleRate*1800/1000
	red := reductionDBAt(out, late, channels)
	t.Logf("reduction at +1800ms: %.2f dB", red)
	if red > 0.5*steady {
		t.Errorf("reduction %.2f dB long after release, expected substantial recovery", red)
	}
}

func TestDuckerBelowThresholdPassthrough(t *testing.T) {
	const sampleRate = 48000
	const channels = 2

	d := NewDucker(musicDucking, sampleRate, channels)

	control := constant(0.01, sampleRate, channels, 0.5) // below 0.03 threshold
	secondary := sine(440, 0.5, sampleRate, channels, 0.5)

	out := d.Process(secondary, control)
	for i := range out {
		if out[i] != secondary[i] {
			t.Fatalf("sample %d modified (%v != %v) with control below threshold", i, out[i], secondary[i])
		}
	}
}

func TestDuckerAmbientRatio(t *testing.T) {
	const sampleRate = 48000
	const channels = 1

	d := NewDucker(ambientDucking, sampleRate, channels)
	steady := d.SteadyStateReductionDB(1.0)

	// 3:1 against a 0.04 threshold: (0 - (-27.96)) * (1 - 1/3) ≈ 18.6 dB.
	want := (0 - LinearToDB(0.04)) * (1 - 1.0/3.0)
	if math.Abs(steady-want) > 0.01 {
		t.Fatalf("steady-state reduction %.2f dB, want %.2f dB", steady, want)
	}

	control := constant(1.0, sampleRate, channels, 1.0)
	secondary := constant(1.0, sampleRate, channels, 1.0)
	out := d.Process(secondary, control)

	atAttack := reductionDBAt(out, sampleRate*20/1000, channels)
	if atAttack < 0.8*steady {
		t.Errorf("ambient reduction at attack window %.2f dB < 80%% of steady %.2f dB", atAttack, steady)
	}
}

func TestDuckerControlShorterThanSecondary(t *testing.T) {
	const sampleRate = 48000
	const channels = 1

	d := NewDucker(musicDucking, sampleRate, channels)

	control := constant(1.0, sampleRate, channels, 0.5)
	secondary := constant(1.0, sampleRate, channels, 2.0)

	out := d.Process(secondary, control)
	if len(out) != len(secondary) {
		t.Fatalf("output length %d, want %d", len(out), len(secondary))
	}

	// After control ends plus release window plus recovery time, the tail
	// should approach unity.
	tail := out[len(out)-1]
	if tail < 0.8 {
		t.Errorf("tail gain %.3f, expected recovery toward unity after control ends", tail)
	}
}
