package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	sim "github.com/inference-sim/queueing-sim/sim"
	"github.com/inference-sim/queueing-sim/sim/analysis"
	"github.com/inference-sim/queueing-sim/sim/experiment"
	"github.com/inference-sim/queueing-sim/sim/trace"
)

// singleRunReport is the JSON document written for one run.
type singleRunReport struct {
	Config     sim.Config           `json:"config"`
	Statistics *sim.FinalStatistics `json:"statistics"`
	Theory     *analysis.MM1        `json:"theory,omitempty"`
	Trace      *trace.TraceSummary  `json:"trace,omitempty"`
}

// experimentReport is the JSON document written for replicated runs.
type experimentReport struct {
	Config RunConfig          `json:"config"`
	Result *experiment.Result `json:"result"`
	Theory *analysis.MM1      `json:"theory,omitempty"`
}

func writeHeader(w io.Writer, cfg sim.Config) {
	fmt.Fprintln(w, "Single-server queueing system")
	fmt.Fprintf(w, "Mean interarrival time   %11.3f minutes\n", cfg.MeanInterarrival)
	fmt.Fprintf(w, "Mean service time        %11.3f minutes\n", cfg.MeanService)
	fmt.Fprintf(w, "Number of customers      %11d\n", cfg.NumDelaysRequired)
	fmt.Fprintf(w, "Queue capacity           %11d\n", cfg.QueueCapacity)
	fmt.Fprintln(w)
}

// writeTextReport prints the classic four-line report for one run.
func writeTextReport(w io.Writer, cfg sim.Config, stats *sim.FinalStatistics, theory *analysis.MM1, summary *trace.TraceSummary) {
	writeHeader(w, cfg)
	fmt.Fprintf(w, "Average delay in queue   %11.3f minutes\n", stats.AverageDelay)
	fmt.Fprintf(w, "Average number in queue  %11.3f\n", stats.AverageQueueLength)
	fmt.Fprintf(w, "Server utilization       %11.3f\n", stats.Utilization)
	fmt.Fprintf(w, "Time simulation ended    %11.3f minutes\n", stats.EndTime)
	fmt.Fprintf(w, "Max number in queue      %11d\n", stats.MaxQueueLength)
	if theory != nil {
		writeTheory(w, theory)
	}
	if summary != nil {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "=== Event Trace ===")
		fmt.Fprintf(w, "Events handled           %11d\n", summary.TotalEvents)
		fmt.Fprintf(w, "  arrivals               %11d\n", summary.EventsByKind[sim.Arrival.String()])
		fmt.Fprintf(w, "  departures             %11d\n", summary.EventsByKind[sim.Departure.String()])
		fmt.Fprintf(w, "Served without waiting   %11d\n", summary.ZeroDelayCount)
		fmt.Fprintf(w, "Max delay in queue       %11.3f minutes\n", summary.MaxDelay)
	}
}

// writeExperimentText prints mean ± half-width for each metric.
func writeExperimentText(w io.Writer, rc RunConfig, res *experiment.Result, theory *analysis.MM1) {
	writeHeader(w, rc.Config)
	fmt.Fprintf(w, "Replications             %11d (%.0f%% confidence)\n", len(res.Replications), experiment.ConfidenceLevel*100)
	row := func(name string, s experiment.Summary) {
		fmt.Fprintf(w, "%-24s %11.3f ± %.3f  [min %.3f, max %.3f]\n", name, s.Mean, s.HalfWidth, s.Min, s.Max)
	}
	row("Average delay in queue", res.AverageDelay)
	row("Average number in queue", res.AverageQueueLength)
	row("Server utilization", res.Utilization)
	row("Time simulation ended", res.EndTime)
	if theory != nil {
		writeTheory(w, theory)
	}
}

func writeTheory(w io.Writer, m *analysis.MM1) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "=== M/M/1 Steady State ===")
	if !m.Stable {
		fmt.Fprintf(w, "Unstable system (rho = %.3f); no steady state exists\n", m.Rho)
		return
	}
	fmt.Fprintf(w, "Average delay in queue   %11.3f minutes\n", m.AverageDelay)
	fmt.Fprintf(w, "Average number in queue  %11.3f\n", m.AverageQueueLength)
	fmt.Fprintf(w, "Server utilization       %11.3f\n", m.Utilization)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return nil
}
