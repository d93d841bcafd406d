package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalEvents      int
	ArriveCount      int
	FinishCount      int
	BalkCount        int
	FollowUps        int // events that scheduled a FINISH
	MaxQueueLen      int
	ServerFinishes   map[int]int // server ID → FINISH events dispatched
	LastDispatchTime float64
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		ServerFinishes: make(map[int]int),
	}
	if st == nil {
		return summary
	}

	summary.TotalEvents = len(st.Dispatches)
	summary.BalkCount = len(st.Balks)
	for _, d := range st.Dispatches {
		switch d.Kind {
		case "ARRIVE":
			summary.ArriveCount++
		case "FINISH":
			summary.FinishCount++
			summary.ServerFinishes[d.ServerID]++
		}
		if d.FollowUp != nil {
			summary.FollowUps++
		}
		if d.QueueLen > summary.MaxQueueLen {
			summary.MaxQueueLen = d.QueueLen
		}
		if d.Clock > summary.LastDispatchTime {
			summary.LastDispatchTime = d.Clock
		}
	}
	return summary
}
