package cmd

import (
	"fmt"
	"sort"

	"github.com/inference-sim/queue-sim/sim/sweep"
	"github.com/inference-sim/queue-sim/sim/trace"
)

func printReplications(s *sweep.ReplicationSummary) {
	fmt.Println("=== Replications ===")
	fmt.Printf("Replications         : %d\n", len(s.Runs))
	fmt.Printf("Average Sojourn      : %.5f (sd %.5f)\n", s.MeanSojourn, s.StdDevSojourn)
	fmt.Printf("Balk Ratio           : %.5f (sd %.5f)\n", s.MeanBalkRatio, s.StdDevBalkRatio)
	fmt.Printf("Average Queue Length : %.5f\n", s.MeanQueueLength)
}

func printSweep(axis sweep.Axis, points []sweep.Point) {
	fmt.Printf("=== Sweep: %s ===\n", axis)
	fmt.Printf("%-8s %12s %14s %12s %14s\n", "servers", string(axis), "mean_sojourn", "balk_ratio", "avg_queue_len")
	for _, p := range points {
		fmt.Printf("%-8d %12.3f %14.5f %12.5f %14.5f\n", p.Servers, p.Value, p.MeanSojourn, p.BalkRatio, p.AvgQueueLength)
	}
}

func printTraceSummary(s *trace.TraceSummary) {
	fmt.Println("=== Event Trace ===")
	fmt.Printf("Events Dispatched    : %d (arrive %d, finish %d)\n", s.TotalEvents, s.ArriveCount, s.FinishCount)
	fmt.Printf("Balks                : %d\n", s.BalkCount)
	fmt.Printf("Max Queue Length     : %d\n", s.MaxQueueLen)
	ids := make([]int, 0, len(s.ServerFinishes))
	for id := range s.ServerFinishes {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		fmt.Printf("Server %-3d Finishes  : %d\n", id, s.ServerFinishes[id])
	}
}
