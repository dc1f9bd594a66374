package soundbed

import "time"

// Role identifies one of the three fixed slots a source can occupy.
type Role int

const (
	// RolePrimary is the narration. It drives output duration when present
	// and keys the ducking of the other roles.
	RolePrimary Role = iota
	// RoleMusic is the music bed.
	RoleMusic
	// RoleAmbient is the ambient bed.
	RoleAmbient
)

// roleOrder is the priority order of roles, highest first. Output duration
// follows the first present role in this order.
var roleOrder = [...]Role{RolePrimary, RoleMusic, RoleAmbient}

func (r Role) String() string {
	switch r {
	case RolePrimary:
		return "primary"
	case RoleMusic:
		return "music"
	case RoleAmbient:
		return "ambient"
	}
	return "unknown"
}

// Source is one decoded audio stream bound to a role. Samples are interleaved
// float64 in [-1, 1].
type Source struct {
	Role       Role
	SampleRate int
	Channels   int
	Samples    []float64
}

// Duration returns the source length.
func (s *Source) Duration() time.Duration {
	if s.SampleRate <= 0 || s.Channels <= 0 {
		return 0
	}
	frames := len(s.Samples) / s.Channels
	return time.Duration(frames) * time.Second / time.Duration(s.SampleRate)
}

// SourceSet holds up to one source per role. Any field may be nil.
type SourceSet struct {
	Primary *Source
	Music   *Source
	Ambient *Source
}

// ByRole returns the source occupying a role, or nil.
func (ss SourceSet) ByRole(r Role) *Source {
	switch r {
	case RolePrimary:
		return ss.Primary
	case RoleMusic:
		return ss.Music
	case RoleAmbient:
		return ss.Ambient
	}
	return nil
}

// Empty reports whether no role is occupied.
func (ss SourceSet) Empty() bool {
	return ss.Primary == nil && ss.Music == nil && ss.Ambient == nil
}
