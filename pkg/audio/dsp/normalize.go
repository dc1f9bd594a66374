package dsp

import "fmt"

// LoudnessTarget is the normalization target: integrated loudness, true-peak
// ceiling and loudness range.
type LoudnessTarget struct {
	IntegratedLUFS float64
	TruePeakDB     float64
	RangeLU        float64
}

// NormalizeResult reports what the normalizer measured and did.
type NormalizeResult struct {
	// InputLUFS is the measured integrated loudness before gain.
	InputLUFS float64
	// InputRangeLU is the measured loudness range; it is reported, not
	// corrected — linear normalization cannot reduce LRA.
	InputRangeLU float64
	// InputTruePeakDB is the measured true peak before gain.
	InputTruePeakDB float64
	// GainDB is the linear gain that was applied.
	GainDB float64
	// Clamped reports whether the gain was reduced to honor the true-peak
	// ceiling instead of fully reaching the integrated target.
	Clamped bool
}

// NormalizeLoudness returns a copy of samples normalized to the target
// integrated loudness with a hard true-peak ceiling. The ceiling always
// wins: if reaching the integrated target would push the true peak above
// target.TruePeakDB, the gain is reduced so the peak lands exactly on the
// ceiling. The clamp also engages when the loudness is already on target but
// the peak is over the ceiling.
//
// Returns ErrUnmeasurable (wrapped) when the input is too quiet to analyze.
func NormalizeLoudness(samples []float64, sampleRate, channels int, target LoudnessTarget) ([]float64, NormalizeResult, error) {
	var res NormalizeResult

	m, err := MeasureLoudness(samples, sampleRate, channels)
	if err != nil {
		return nil, res, fmt.Errorf("normalize: %w", err)
	}
	res.InputLUFS = m.IntegratedLUFS
	res.InputRangeLU = m.RangeLU
	res.InputTruePeakDB = TruePeakDB(samples, channels)

	gainDB := target.IntegratedLUFS - m.IntegratedLUFS
	if projected := res.InputTruePeakDB + gainDB; projected > target.TruePeakDB {
		gainDB = target.TruePeakDB - res.InputTruePeakDB
		res.Clamped = true
	}
	res.GainDB = gainDB

	return Gain(samples, DBToLinear(gainDB)), res, nil
}
