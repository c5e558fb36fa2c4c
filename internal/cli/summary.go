package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/roach88/threepg/internal/config"
	"github.com/roach88/threepg/internal/management"
	"github.com/roach88/threepg/internal/series"
	"github.com/roach88/threepg/internal/store"
)

// DatasetSummary describes a built run file.
type DatasetSummary struct {
	Name    string           `json:"name"`
	Hash    string           `json:"hash"`
	From    string           `json:"from"`
	To      string           `json:"to"`
	Months  int              `json:"months"`
	Site    SiteSummary      `json:"site"`
	Species []SpeciesSummary `json:"species"`
	Climate ClimateSummary   `json:"climate"`
}

// SiteSummary describes the stand location.
type SiteSummary struct {
	Latitude  float64 `json:"latitude"`
	Altitude  float64 `json:"altitude"`
	SoilClass int32   `json:"soil_class"`
	ASWInit   float64 `json:"asw_initial"`
	ASWMin    float64 `json:"asw_min"`
	ASWMax    float64 `json:"asw_max"`
}

// SpeciesSummary is one registered species.
type SpeciesSummary struct {
	Index     int     `json:"index"`
	Name      string  `json:"name"`
	Planted   string  `json:"planted"`
	Fertility float64 `json:"fertility"`
	Stems     float64 `json:"stems"`
	Thinnings int     `json:"thinnings"`
	InOrder   bool    `json:"thinnings_in_order"`
}

// ClimateSummary describes the forcing series.
type ClimateSummary struct {
	Start  string `json:"start"`
	End    string `json:"end,omitempty"`
	Months int    `json:"months"`
}

// summarizeDataset builds the summary of d.
func summarizeDataset(d *config.Dataset) DatasetSummary {
	s := DatasetSummary{
		Name:   d.Name,
		Hash:   d.Hash,
		From:   d.From.String(),
		To:     d.To.String(),
		Months: d.Months(),
		Site: SiteSummary{
			Latitude:  d.Site.Latitude,
			Altitude:  d.Site.Altitude,
			SoilClass: d.Site.SoilClass,
			ASWInit:   d.Site.ASW.Initial,
			ASWMin:    d.Site.ASW.Min,
			ASWMax:    d.Site.ASW.Max,
		},
		Species: []SpeciesSummary{},
		Climate: ClimateSummary{
			Start:  d.Climate.Start.String(),
			Months: d.Climate.Len(),
		},
	}
	if d.Climate.Len() > 0 {
		s.Climate.End = d.Climate.End().String()
	}

	reg := d.Species()
	for i := 0; i < reg.Len(); i++ {
		ic := d.Initial.At(i)
		s.Species = append(s.Species, SpeciesSummary{
			Index:     i,
			Name:      reg.Name(i),
			Planted:   ic.Planted.String(),
			Fertility: ic.FertilityRating,
			Stems:     ic.Stems,
			Thinnings: d.Management.Count(i),
			InOrder:   management.InOrder(d.Management, i),
		})
	}
	return s
}

// WriteText renders the summary for terminals.
func (s DatasetSummary) WriteText(w io.Writer) error {
	fmt.Fprintf(w, "Run %q: %s to %s (%d months)\n", s.Name, s.From, s.To, s.Months)
	fmt.Fprintf(w, "Site: latitude %g, altitude %g m, soil class %d, ASW %g mm (%g..%g)\n",
		s.Site.Latitude, s.Site.Altitude, s.Site.SoilClass, s.Site.ASWInit, s.Site.ASWMin, s.Site.ASWMax)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tSPECIES\tPLANTED\tFERTILITY\tSTEMS\tTHINNINGS")
	for _, sp := range s.Species {
		order := ""
		if !sp.InOrder {
			order = " (out of order)"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%g\t%g\t%d%s\n",
			sp.Index, sp.Name, sp.Planted, sp.Fertility, sp.Stems, sp.Thinnings, order)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if s.Climate.Months == 0 {
		_, err := fmt.Fprintf(w, "Climate: none (starts %s)\n", s.Climate.Start)
		return err
	}
	_, err := fmt.Fprintf(w, "Climate: %s to %s (%d months)\n", s.Climate.Start, s.Climate.End, s.Climate.Months)
	return err
}

// RunResult summarizes runs just written to the store.
type RunResult struct {
	Database string       `json:"database"`
	Runs     []RunOutcome `json:"runs"`
}

// RunOutcome is one finished run.
type RunOutcome struct {
	ID       string             `json:"id"`
	Months   int                `json:"months"`
	Inserted bool               `json:"inserted"`
	Final    []SpeciesFinalized `json:"final"`
}

// SpeciesFinalized is a species' state in the last simulated month.
type SpeciesFinalized struct {
	Name    string  `json:"name"`
	Age     float64 `json:"age"`
	Stems   float64 `json:"stems"`
	Stem    float64 `json:"biom_stem"`
	Foliage float64 `json:"biom_foliage"`
	Root    float64 `json:"biom_root"`
}

// finalState reads the last populated month of every species in tr.
func finalState(names []string, tr *series.Trajectory[float64]) []SpeciesFinalized {
	out := []SpeciesFinalized{}
	t := tr.Len() - 1
	if t < 0 {
		return out
	}
	for i, name := range names {
		f := tr.Species(i)
		out = append(out, SpeciesFinalized{
			Name:    name,
			Age:     f.At(series.Age, t),
			Stems:   f.At(series.StemsN, t),
			Stem:    f.At(series.BiomStem, t),
			Foliage: f.At(series.BiomFoliage, t),
			Root:    f.At(series.BiomRoot, t),
		})
	}
	return out
}

// WriteText renders the run results for terminals.
func (r RunResult) WriteText(w io.Writer) error {
	for _, run := range r.Runs {
		status := "stored"
		if !run.Inserted {
			status = "already stored"
		}
		fmt.Fprintf(w, "Run %s: %d months, %s in %s\n", run.ID, run.Months, status, r.Database)
		if err := writeFinal(w, run.Final); err != nil {
			return err
		}
	}
	return nil
}

func writeFinal(w io.Writer, final []SpeciesFinalized) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SPECIES\tAGE\tSTEMS\tSTEM\tFOLIAGE\tROOT")
	for _, sp := range final {
		fmt.Fprintf(tw, "%s\t%.2f\t%.1f\t%.3f\t%.3f\t%.3f\n",
			sp.Name, sp.Age, sp.Stems, sp.Stem, sp.Foliage, sp.Root)
	}
	return tw.Flush()
}

// StoredRunSummary describes a run read back from the store.
type StoredRunSummary struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	ConfigHash string             `json:"config_hash"`
	From       string             `json:"from"`
	To         string             `json:"to"`
	Months     int                `json:"months"`
	Species    []string           `json:"species"`
	Final      []SpeciesFinalized `json:"final"`
}

func summarizeStoredRun(r *store.StoredRun) StoredRunSummary {
	return StoredRunSummary{
		ID:         r.ID,
		Name:       r.Name,
		ConfigHash: r.ConfigHash,
		From:       r.From.String(),
		To:         r.To.String(),
		Months:     r.Months,
		Species:    r.SpeciesNames,
		Final:      finalState(r.SpeciesNames, r.Trajectory),
	}
}

// WriteText renders the stored run for terminals.
func (s StoredRunSummary) WriteText(w io.Writer) error {
	fmt.Fprintf(w, "Run %s (%q)\n", s.ID, s.Name)
	fmt.Fprintf(w, "Hash: %s\n", s.ConfigHash)
	fmt.Fprintf(w, "Months: %d stored of %s to %s\n", s.Months, s.From, s.To)
	return writeFinal(w, s.Final)
}

// RunList is the output of the list command.
type RunList struct {
	Runs []RunListEntry `json:"runs"`
}

// RunListEntry is one stored run.
type RunListEntry struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	From    string `json:"from"`
	Months  int    `json:"months"`
	Species int    `json:"species"`
}

func listEntries(runs []store.RunSummary) RunList {
	l := RunList{Runs: []RunListEntry{}}
	for _, r := range runs {
		l.Runs = append(l.Runs, RunListEntry{
			ID:      r.ID,
			Name:    r.Name,
			From:    r.From.String(),
			Months:  r.Months,
			Species: r.Species,
		})
	}
	return l
}

// WriteText renders the run list for terminals.
func (l RunList) WriteText(w io.Writer) error {
	if len(l.Runs) == 0 {
		_, err := fmt.Fprintln(w, "No stored runs")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tFROM\tMONTHS\tSPECIES")
	for _, r := range l.Runs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\n", r.ID, r.Name, r.From, r.Months, r.Species)
	}
	return tw.Flush()
}
