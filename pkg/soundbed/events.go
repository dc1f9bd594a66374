package soundbed

// EventKind classifies a degradation the pipeline absorbed instead of
// failing.
type EventKind int

const (
	// EventSourceMissing records a role that had no source.
	EventSourceMissing EventKind = iota
	// EventSourceCorrupt records a source that could not be brought into
	// the working format and was dropped.
	EventSourceCorrupt
	// EventDuckingSkipped records a bed that was not ducked because there
	// was no narration to key from.
	EventDuckingSkipped
	// EventNormalizationFallback records narration too quiet to measure;
	// the static gain was applied without loudness normalization.
	EventNormalizationFallback
)

func (k EventKind) String() string {
	switch k {
	case EventSourceMissing:
		return "source missing"
	case EventSourceCorrupt:
		return "source corrupt"
	case EventDuckingSkipped:
		return "ducking skipped"
	case EventNormalizationFallback:
		return "normalization fallback"
	}
	return "unknown"
}

// Event is one degradation record, attached to the run report.
type Event struct {
	Kind   EventKind
	Role   Role
	Detail string
}
