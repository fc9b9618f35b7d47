// Tracks simulation-wide statistics computed from current engine state.

package sim

import "fmt"

// Statistics aggregates run-level figures for final reporting. Useful for
// comparing scheduling algorithms and debugging behavior over time.
type Statistics struct {
	ClockTicks         int64   // Global clock value
	ActiveThreads      int     // Admitted threads not yet terminated
	CompletedThreads   int     // Terminated threads
	CPUUtilization     float64 // Percent of core-ticks spent busy
	AvgWaitTime        float64 // Mean wait time across all admitted threads
	AvgTurnaround      float64 // Mean turnaround across terminated threads
	UnknownResourceOps int     // Instructions that referenced unregistered resources
}

// Statistics computes run statistics from current engine state.
// Utilization is total core-busy-ticks over ClockTicks × CoreCount.
func (e *Engine) Statistics() Statistics {
	stats := Statistics{
		ClockTicks:         e.Clock,
		ActiveThreads:      len(e.threads) - len(e.terminated),
		CompletedThreads:   len(e.terminated),
		UnknownResourceOps: e.unknownResourceOps,
	}
	var busy int64
	for _, core := range e.cores {
		busy += core.BusyTicks
	}
	if e.Clock > 0 && len(e.cores) > 0 {
		stats.CPUUtilization = 100 * float64(busy) / float64(e.Clock*int64(len(e.cores)))
	}
	if len(e.threads) > 0 {
		var wait int64
		for _, t := range e.threads {
			wait += t.WaitTime
		}
		stats.AvgWaitTime = float64(wait) / float64(len(e.threads))
	}
	if len(e.terminated) > 0 {
		var turnaround int64
		for _, t := range e.terminated {
			turnaround += t.TurnaroundTime
		}
		stats.AvgTurnaround = float64(turnaround) / float64(len(e.terminated))
	}
	return stats
}

// Print displays aggregated statistics at the end of a run.
func (s Statistics) Print() {
	fmt.Println("=== Simulation Statistics ===")
	fmt.Printf("Clock Ticks          : %d\n", s.ClockTicks)
	fmt.Printf("Active Threads       : %d\n", s.ActiveThreads)
	fmt.Printf("Completed Threads    : %d\n", s.CompletedThreads)
	fmt.Printf("CPU Utilization      : %.2f%%\n", s.CPUUtilization)
	fmt.Printf("Average Wait Time    : %.2f ticks\n", s.AvgWaitTime)
	fmt.Printf("Average Turnaround   : %.2f ticks\n", s.AvgTurnaround)
	if s.UnknownResourceOps > 0 {
		fmt.Printf("Unknown Resource Ops : %d\n", s.UnknownResourceOps)
	}
}
