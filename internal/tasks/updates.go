package tasks

// Phase identifies a pipeline stage for progress reporting.
type Phase int

const (
	PhaseFetch Phase = iota
	PhaseExtract
	PhaseTransform
	PhaseRoute
	PhaseWrite
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseFetch:
		return "fetch"
	case PhaseExtract:
		return "extract"
	case PhaseTransform:
		return "transform"
	case PhaseRoute:
		return "route"
	case PhaseWrite:
		return "write"
	case PhaseDone:
		return "done"
	default:
		return "unknown"
	}
}

// ProgressUpdate reports a stage transition to CLI/UI layers.
type ProgressUpdate struct {
	Phase   Phase
	Message string
}

func fetchUpdate(playlistID string) ProgressUpdate {
	return ProgressUpdate{Phase: PhaseFetch, Message: "Fetching tracks for playlist " + playlistID + "..."}
}

func extractUpdate() ProgressUpdate {
	return ProgressUpdate{Phase: PhaseExtract, Message: "Extracting album, artist, and song records..."}
}

func transformUpdate() ProgressUpdate {
	return ProgressUpdate{Phase: PhaseTransform, Message: "Deduplicating and normalizing record sets..."}
}

func routeUpdate(mode string) ProgressUpdate {
	return ProgressUpdate{Phase: PhaseRoute, Message: "Routing output to " + mode + " sink..."}
}

func writeUpdate() ProgressUpdate {
	return ProgressUpdate{Phase: PhaseWrite, Message: "Writing record sets..."}
}

func doneUpdate() ProgressUpdate {
	return ProgressUpdate{Phase: PhaseDone, Message: "Run complete"}
}
