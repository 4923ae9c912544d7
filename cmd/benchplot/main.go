// Command benchplot renders a gf2ebench report as an HTML page of bar charts,
// one per operation, comparing clmul backends across parameter sets.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"banquet-field/internal/benchreport"
)

func main() {
	inPath := flag.String("in", "gf2e_bench.json", "input report from gf2ebench")
	outPath := flag.String("out", "gf2e_bench.html", "output HTML file")
	stat := flag.String("stat", "median", "statistic to plot: mean|median|p95")
	flag.Parse()

	rep, err := benchreport.Load(*inPath)
	if err != nil {
		log.Fatalf("read report: %v", err)
	}
	pick, err := statPicker(*stat)
	if err != nil {
		log.Fatalf("%v", err)
	}

	page := components.NewPage().SetPageTitle("GF(2^n) engine timings")
	for _, op := range rep.Ops() {
		page.AddCharts(newOpChart(rep, op, *stat, pick))
	}
	if sp := newSpeedupChart(rep); sp != nil {
		page.AddCharts(sp)
	}

	f, err := os.Create(*outPath)
	if err != nil {
		log.Fatalf("create html: %v", err)
	}
	defer f.Close()
	if err := page.Render(f); err != nil {
		log.Fatalf("render html: %v", err)
	}
	fmt.Printf("Wrote %s | rows: %d, ops: %d\n", *outPath, len(rep.Rows), len(rep.Ops()))
}

func statPicker(name string) (func(benchreport.Row) float64, error) {
	switch name {
	case "mean":
		return func(r benchreport.Row) float64 { return r.Mean }, nil
	case "median":
		return func(r benchreport.Row) float64 { return r.Median }, nil
	case "p95":
		return func(r benchreport.Row) float64 { return r.P95 }, nil
	}
	return nil, fmt.Errorf("unknown stat %q (mean|median|p95)", name)
}

func newOpChart(rep *benchreport.Report, op, stat string, pick func(benchreport.Row) float64) *charts.Bar {
	sets := rep.Sets()
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: op, Subtitle: fmt.Sprintf("%s ns/op on %s", stat, rep.CPU)}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: op, Width: "1200px", Height: "500px"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "ns/op", AxisLabel: &opts.AxisLabel{Formatter: "{value}"}}),
	)
	bar.SetXAxis(sets)
	for _, backend := range rep.Backends() {
		items := make([]opts.BarData, len(sets))
		for i, set := range sets {
			if r, ok := rep.Lookup(set, backend, op); ok {
				items[i] = opts.BarData{Value: pick(r)}
			}
		}
		bar.AddSeries(backend, items)
	}
	bar.SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(false)}))
	return bar
}

// newSpeedupChart plots portable/hardware median ratios per op, or nil when
// the report holds a single backend.
func newSpeedupChart(rep *benchreport.Report) *charts.Line {
	backends := rep.Backends()
	if len(backends) < 2 {
		return nil
	}
	const base = "portable"
	sets := rep.Sets()
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "speedup", Subtitle: "portable median / backend median"}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "speedup", Width: "1200px", Height: "500px"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)
	line.SetXAxis(sets)
	for _, backend := range backends {
		if backend == base {
			continue
		}
		for _, op := range rep.Ops() {
			items := make([]opts.LineData, len(sets))
			for i, set := range sets {
				p, ok1 := rep.Lookup(set, base, op)
				h, ok2 := rep.Lookup(set, backend, op)
				if ok1 && ok2 && h.Median > 0 {
					items[i] = opts.LineData{Value: p.Median / h.Median}
				}
			}
			line.AddSeries(fmt.Sprintf("%s/%s", backend, op), items)
		}
	}
	return line
}
