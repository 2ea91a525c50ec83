package report

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// WriteText prints the ranked routes and the statistics block for terminals.
// The optimum is flagged with "OPTIMAL".
func (r *Report) WriteText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "#\tROUTE\tCOST\t\n")
	for _, line := range r.Routes {
		mark := ""
		if line.Optimal {
			mark = "OPTIMAL"
		}
		fmt.Fprintf(tw, "%d\t%s\t%g\t%s\n", line.Number, line.Route, line.Cost, mark)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\nalgorithm: %s\nroutes evaluated: %d\noptimal cost: %g\nelapsed: %.2fms\n",
		r.Stats.Algorithm, r.Stats.EvaluatedRoutes, r.Stats.OptimalCost, r.Stats.ElapsedMillis)

	return err
}
