// Command simulate draws many categories with a fixed luck profile and compares the observed
// distribution with the configured chances.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"text/tabwriter"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/osse101/CustomizeFishing_Go/internal/category"
	"github.com/osse101/CustomizeFishing_Go/internal/config"
	"github.com/osse101/CustomizeFishing_Go/internal/domain"
)

const simulatedPlayer = "simulate"

type options struct {
	configPath    string
	draws         int
	totalLuck     float64
	luckOfTheSea  int
	weather       string
	openWater     bool
	dolphinsGrace bool
	seed          uint64
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", config.ConfigPathFishing, "fishing config file")
	flag.IntVar(&opts.draws, "n", 100000, "number of draws")
	flag.Float64Var(&opts.totalLuck, "luck", 0, "total luck of the simulated player")
	flag.IntVar(&opts.luckOfTheSea, "lots", 0, "luck of the sea level")
	flag.StringVar(&opts.weather, "weather", string(domain.WeatherClear), "clear, rain or thunder")
	flag.BoolVar(&opts.openWater, "open-water", true, "hook is in open water")
	flag.BoolVar(&opts.dolphinsGrace, "dolphins-grace", false, "player has dolphin's grace")
	flag.Uint64Var(&opts.seed, "seed", 1, "random seed")
	flag.Parse()

	if err := run(opts); err != nil {
		slog.Error("Simulation failed", "error", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	if opts.draws <= 0 {
		return fmt.Errorf("%w: n must be positive", domain.ErrInvalidInput)
	}
	weather, ok := domain.ParseWeather(opts.weather)
	if !ok {
		return fmt.Errorf("%w: unknown weather %q", domain.ErrInvalidInput, opts.weather)
	}

	cfg, err := config.LoadFishingConfig(opts.configPath)
	if err != nil {
		return err
	}

	ctx := category.Context{
		OpenWater:     opts.openWater,
		DolphinsGrace: opts.dolphinsGrace,
		Weather:       weather,
		LuckOfTheSea:  opts.luckOfTheSea,
		TotalLuck:     opts.totalLuck,
	}

	rng := rand.New(rand.NewPCG(opts.seed, opts.seed))
	report := Simulate(cfg, ctx, opts.draws, rng.Float64)

	return report.Write(os.Stdout)
}

// Row is one category of the report
type Row struct {
	Category string
	Expected float64
	Observed int
}

// Report is the outcome of a simulation
type Report struct {
	Draws     int
	Fallbacks int
	Rows      []Row
	ChiSquare float64
	PValue    float64
}

// Simulate runs draws selections and tests the counts against the adjusted chances
func Simulate(cfg *config.FishingConfig, ctx category.Context, draws int, rnd func() float64) Report {
	selector := category.NewSelector(rnd, nil)
	candidates := selector.Candidates(cfg, simulatedPlayer, ctx)

	var total float64
	for _, c := range candidates {
		total += c.Adjusted
	}

	index := make(map[string]int, len(candidates))
	rows := make([]Row, len(candidates))
	for i, c := range candidates {
		index[c.Name] = i
		rows[i] = Row{Category: c.Name, Expected: c.Adjusted / total}
	}

	report := Report{Draws: draws}
	for i := 0; i < draws; i++ {
		sel := selector.Select(cfg, simulatedPlayer, ctx)
		if sel.Fallback {
			report.Fallbacks++
			continue
		}
		rows[index[sel.Category]].Observed++
	}
	report.Rows = rows

	if len(rows) > 1 {
		observed := make([]float64, len(rows))
		expected := make([]float64, len(rows))
		for i, r := range rows {
			observed[i] = float64(r.Observed)
			expected[i] = r.Expected * float64(draws-report.Fallbacks)
		}
		report.ChiSquare = stat.ChiSquare(observed, expected)
		report.PValue = 1 - distuv.ChiSquared{K: float64(len(rows) - 1)}.CDF(report.ChiSquare)
	} else {
		report.PValue = 1
	}

	return report
}

// Write prints the report as an aligned table
func (r Report) Write(out io.Writer) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CATEGORY\tEXPECTED\tOBSERVED\tCOUNT")
	for _, row := range r.Rows {
		observed := float64(row.Observed) / float64(r.Draws)
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\n",
			row.Category,
			category.FormatForLog(row.Expected*100),
			category.FormatForLog(observed*100),
			row.Observed)
	}
	fmt.Fprintf(w, "\nfallbacks\t\t\t%d\n", r.Fallbacks)
	fmt.Fprintf(w, "chi-square\t%.3f\tp-value\t%.4f\n", r.ChiSquare, r.PValue)
	return w.Flush()
}
