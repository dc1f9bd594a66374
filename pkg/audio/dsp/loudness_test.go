package dsp

import (
	"errors"
	"math"
	"testing"
)

func TestMeasureLoudnessSine(t *testing.T) {
	const sampleRate = 48000

	// A 997 Hz stereo sine reads its dBFS amplitude in LUFS; the -0.691
	// offset of the block loudness formula compensates the K-weighting gain
	// at that frequency.
	for _, amp := range []float64{0.5, 0.1} {
		in := sine(997, amp, sampleRate, 2, 5)
		m, err := MeasureLoudness(in, sampleRate, 2)
		if err != nil {
			t.Fatalf("amp %.2f: %v", amp, err)
		}
		want := 20 * math.Log10(amp)
		t.Logf("amp %.2f: integrated %.2f LUFS (want %.2f), LRA %.2f LU", amp, m.IntegratedLUFS, want, m.RangeLU)
		if math.Abs(m.IntegratedLUFS-want) > 0.5 {
			t.Errorf("amp %.2f: integrated %.2f LUFS, want %.2f ± 0.5", amp, m.IntegratedLUFS, want)
		}
		if m.RangeLU > 0.5 {
			t.Errorf("amp %.2f: LRA %.2f LU for a constant tone, want ~0", amp, m.RangeLU)
		}
	}
}

func TestMeasureLoudnessSilence(t *testing.T) {
	const sampleRate = 48000

	in := constant(0, sampleRate, 2, 2)
	_, err := MeasureLoudness(in, sampleRate, 2)
	if !errors.Is(err, ErrUnmeasurable) {
		t.Fatalf("err = %v, want ErrUnmeasurable", err)
	}
}

func TestMeasureLoudnessBelowAbsoluteGate(t *testing.T) {
	const sampleRate = 48000

	// -100 dBFS sits far below the -70 LUFS absolute gate.
	in := sine(997, 1e-5, sampleRate, 2, 2)
	_, err := MeasureLoudness(in, sampleRate, 2)
	if !errors.Is(err, ErrUnmeasurable) {
		t.Fatalf("err = %v, want ErrUnmeasurable", err)
	}
}

func TestMeasureLoudnessGatesOutSilentTail(t *testing.T) {
	const sampleRate = 48000

	// 2 s of tone followed by 4 s of silence: gating must keep the
	// integrated value near the tone-only loudness instead of averaging
	// the silence in.
	in := sine(997, 0.1, sampleRate, 2, 2)
	in = append(in, constant(0, sampleRate, 2, 4)...)

	m, err := MeasureLoudness(in, sampleRate, 2)
	if err != nil {
		t.Fatal(err)
	}
	t.Logf("gated integrated: %.2f LUFS", m.IntegratedLUFS)
	if math.Abs(m.IntegratedLUFS-(-20)) > 1.0 {
		t.Errorf("integrated %.2f LUFS with silent tail, want ~-20", m.IntegratedLUFS)
	}
}

func TestMeasureLoudnessShortProgram(t *testing.T) {
	const sampleRate = 48000

	// 200 ms is shorter than one 400 ms analysis block; the measurement
	// falls back to a single whole-program block.
	in := sine(997, 0.25, sampleRate, 2, 0.2)
	m, err := MeasureLoudness(in, sampleRate, 2)
	if err != nil {
		t.Fatal(err)
	}
	want := 20 * math.Log10(0.25)
	if math.Abs(m.IntegratedLUFS-want) > 1.0 {
		t.Errorf("integrated %.2f LUFS for short program, want %.2f ± 1", m.IntegratedLUFS, want)
	}
}
