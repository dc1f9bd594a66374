package commands

import (
	"fmt"
	"time"

	"github.com/soundbed/soundbed/pkg/audio/dsp"
	"github.com/soundbed/soundbed/pkg/cli"
	"github.com/soundbed/soundbed/pkg/soundbed"
)

// policyFile is the YAML/JSON shape of a policy override file. Every field
// is optional; absent fields keep their defaults. Durations are plain
// millisecond numbers.
type policyFile struct {
	PrimaryGain *float64 `yaml:"primary_gain" json:"primary_gain"`
	MusicGain   *float64 `yaml:"music_gain" json:"music_gain"`
	AmbientGain *float64 `yaml:"ambient_gain" json:"ambient_gain"`

	MusicFadeInMS  *int `yaml:"music_fade_in_ms" json:"music_fade_in_ms"`
	MusicFadeOutMS *int `yaml:"music_fade_out_ms" json:"music_fade_out_ms"`

	Loudness *loudnessFile `yaml:"loudness" json:"loudness"`

	MusicDucking   *duckingFile `yaml:"music_ducking" json:"music_ducking"`
	AmbientDucking *duckingFile `yaml:"ambient_ducking" json:"ambient_ducking"`

	Compressor *compressorFile `yaml:"compressor" json:"compressor"`
	Limiter    *limiterFile    `yaml:"limiter" json:"limiter"`
}

type loudnessFile struct {
	IntegratedLUFS *float64 `yaml:"integrated_lufs" json:"integrated_lufs"`
	TruePeakDB     *float64 `yaml:"true_peak_db" json:"true_peak_db"`
	RangeLU        *float64 `yaml:"range_lu" json:"range_lu"`
}

type duckingFile struct {
	Threshold *float64 `yaml:"threshold" json:"threshold"`
	Ratio     *float64 `yaml:"ratio" json:"ratio"`
	AttackMS  *int     `yaml:"attack_ms" json:"attack_ms"`
	ReleaseMS *int     `yaml:"release_ms" json:"release_ms"`
}

type compressorFile struct {
	ThresholdDB *float64 `yaml:"threshold_db" json:"threshold_db"`
	Ratio       *float64 `yaml:"ratio" json:"ratio"`
	AttackMS    *int     `yaml:"attack_ms" json:"attack_ms"`
	ReleaseMS   *int     `yaml:"release_ms" json:"release_ms"`
	MakeupDB    *float64 `yaml:"makeup_db" json:"makeup_db"`
}

type limiterFile struct {
	Ceiling   *float64 `yaml:"ceiling" json:"ceiling"`
	AttackMS  *int     `yaml:"attack_ms" json:"attack_ms"`
	ReleaseMS *int     `yaml:"release_ms" json:"release_ms"`
}

// resolvePolicy builds the effective mixing policy: defaults, overlaid with
// the active profile's policy file when one is set.
func resolvePolicy() (soundbed.Policy, error) {
	policy := soundbed.DefaultPolicy()

	profile, err := getProfile()
	if err != nil {
		return policy, err
	}
	if profile == nil || profile.PolicyFile == "" {
		return policy, nil
	}

	var pf policyFile
	if err := cli.LoadRequest(profile.PolicyFile, &pf); err != nil {
		return policy, fmt.Errorf("policy file %s: %w", profile.PolicyFile, err)
	}
	return applyPolicyFile(policy, pf), nil
}

// applyPolicyFile overlays the set fields of pf onto base.
func applyPolicyFile(base soundbed.Policy, pf policyFile) soundbed.Policy {
	setF := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	setMS := func(dst *time.Duration, src *int) {
		if src != nil {
			*dst = time.Duration(*src) * time.Millisecond
		}
	}
	applyDucking := func(dst *dsp.DuckerParams, src *duckingFile) {
		if src == nil {
			return
		}
		setF(&dst.Threshold, src.Threshold)
		setF(&dst.Ratio, src.Ratio)
		setMS(&dst.Attack, src.AttackMS)
		setMS(&dst.Release, src.ReleaseMS)
	}

	setF(&base.PrimaryGain, pf.PrimaryGain)
	setF(&base.MusicGain, pf.MusicGain)
	setF(&base.AmbientGain, pf.AmbientGain)
	setMS(&base.MusicFadeIn, pf.MusicFadeInMS)
	setMS(&base.MusicFadeOut, pf.MusicFadeOutMS)

	if pf.Loudness != nil {
		setF(&base.Loudness.IntegratedLUFS, pf.Loudness.IntegratedLUFS)
		setF(&base.Loudness.TruePeakDB, pf.Loudness.TruePeakDB)
		setF(&base.Loudness.RangeLU, pf.Loudness.RangeLU)
	}

	applyDucking(&base.MusicDucking, pf.MusicDucking)
	applyDucking(&base.AmbientDucking, pf.AmbientDucking)

	if pf.Compressor != nil {
		setF(&base.Compressor.ThresholdDB, pf.Compressor.ThresholdDB)
		setF(&base.Compressor.Ratio, pf.Compressor.Ratio)
		setMS(&base.Compressor.Attack, pf.Compressor.AttackMS)
		setMS(&base.Compressor.Release, pf.Compressor.ReleaseMS)
		setF(&base.Compressor.MakeupDB, pf.Compressor.MakeupDB)
	}
	if pf.Limiter != nil {
		setF(&base.Limiter.Ceiling, pf.Limiter.Ceiling)
		setMS(&base.Limiter.Attack, pf.Limiter.AttackMS)
		setMS(&base.Limiter.Release, pf.Limiter.ReleaseMS)
	}

	return base
}
