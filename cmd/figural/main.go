package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/figural/internal/config"
	"github.com/san-kum/figural/internal/figural"
	"github.com/san-kum/figural/internal/plot"
	"github.com/san-kum/figural/internal/render"
	"github.com/san-kum/figural/internal/tui"
	"github.com/spf13/cobra"
)

var (
	distance    float64
	marker      string
	markerSize  float64
	color       string
	columns     int
	withLabel   bool
	withOutline bool
	drawGrid    bool
	// Output selection
	format  string
	outPath string
	// Sequence chart
	chart bool
	// Config file
	configFile string
)

// main registers the commands and flags; running without a subcommand
// opens the interactive browser.
func main() {
	rootCmd := &cobra.Command{
		Use:   "figural",
		Short: "generate and draw figural numbers",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(figural.Triangular{}, 5, plot.DefaultOptions())
		},
	}

	seqCmd := &cobra.Command{
		Use:   "seq [family] [n]",
		Short: "print the first n-1 values of a sequence",
		Args:  cobra.ExactArgs(2),
		RunE:  runSeq,
	}
	seqCmd.Flags().BoolVar(&chart, "chart", false, "plot sequence growth")

	checkCmd := &cobra.Command{
		Use:   "check [family] [value...]",
		Short: "classify values against a sequence",
		Args:  cobra.MinimumNArgs(2),
		RunE:  runCheck,
	}

	drawCmd := &cobra.Command{
		Use:   "draw [family] [N]",
		Short: "draw the N-th arrangement",
		Args:  cobra.ExactArgs(2),
		RunE:  runDraw,
	}
	addDrawFlags(drawCmd)

	gridCmd := &cobra.Command{
		Use:   "grid [family] [start] [end]",
		Short: "draw a grid of arrangements for an index range",
		Args:  cobra.ExactArgs(3),
		RunE:  runGrid,
	}
	addDrawFlags(gridCmd)
	gridCmd.Flags().IntVar(&columns, "cols", config.DefaultColumns, "grid columns")
	gridCmd.Flags().BoolVar(&drawGrid, "borders", true, "draw panel borders")

	tuiCmd := &cobra.Command{
		Use:   "tui [family] [N]",
		Short: "interactive arrangement browser",
		Args:  cobra.MaximumNArgs(2),
		RunE:  runTUI,
	}
	tuiCmd.Flags().Float64Var(&distance, "distance", config.DefaultDistance, "dot spacing")

	rootCmd.AddCommand(seqCmd, checkCmd, drawCmd, gridCmd, tuiCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func addDrawFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&distance, "distance", config.DefaultDistance, "dot spacing")
	cmd.Flags().StringVar(&marker, "marker", config.DefaultMarker, "marker style")
	cmd.Flags().Float64Var(&markerSize, "markersize", config.DefaultMarkerSize, "marker size")
	cmd.Flags().StringVar(&color, "color", config.DefaultColor, "dot color")
	cmd.Flags().BoolVar(&withLabel, "label", false, "label each arrangement")
	cmd.Flags().BoolVar(&withOutline, "outline", true, "draw the outline polygon")
	cmd.Flags().StringVar(&format, "format", "term", "output format: term, svg, tikz")
	cmd.Flags().StringVar(&outPath, "out", "", "write output to file instead of stdout")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
}

func parseFamily(name string) (figural.Family, error) {
	switch name {
	case "tri":
		name = "triangular"
	case "pent":
		name = "pentagonal"
	}
	f := figural.ByName(name)
	if f == nil {
		return nil, fmt.Errorf("unknown family: %s (triangular, pentagonal)", name)
	}
	return f, nil
}

// drawOptions merges config file values under the CLI flags, flags
// winning whenever they were set explicitly.
func drawOptions(cmd *cobra.Command) (plot.Options, error) {
	opts := plot.Options{
		Distance:    distance,
		MarkerStyle: marker,
		MarkerSize:  markerSize,
		Color:       color,
		WithLabel:   withLabel,
		WithOutline: withOutline,
		Columns:     columns,
		DrawGrid:    drawGrid,
	}
	if configFile == "" {
		return opts, nil
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		return opts, fmt.Errorf("failed to load config: %w", err)
	}
	fromFile := cfg.Options()
	if !cmd.Flags().Changed("distance") {
		opts.Distance = fromFile.Distance
	}
	if !cmd.Flags().Changed("marker") {
		opts.MarkerStyle = fromFile.MarkerStyle
	}
	if !cmd.Flags().Changed("markersize") {
		opts.MarkerSize = fromFile.MarkerSize
	}
	if !cmd.Flags().Changed("color") {
		opts.Color = fromFile.Color
	}
	if !cmd.Flags().Changed("label") {
		opts.WithLabel = fromFile.WithLabel
	}
	if !cmd.Flags().Changed("outline") {
		opts.WithOutline = fromFile.WithOutline
	}
	if cmd.Flags().Lookup("cols") != nil && !cmd.Flags().Changed("cols") {
		opts.Columns = fromFile.Columns
	}
	if cmd.Flags().Lookup("borders") != nil && !cmd.Flags().Changed("borders") {
		opts.DrawGrid = fromFile.DrawGrid
	}
	return opts, nil
}

func newRenderer() (render.Renderer, error) {
	switch format {
	case "term":
		return render.NewTerminal(), nil
	case "svg":
		return render.NewSVG(), nil
	case "tikz":
		return render.NewTikZ(), nil
	default:
		return nil, fmt.Errorf("unknown format: %s (term, svg, tikz)", format)
	}
}

func emit(r render.Renderer) error {
	out, err := r.Output()
	if err != nil {
		return err
	}
	if outPath == "" {
		fmt.Println(out)
		return nil
	}
	return os.WriteFile(outPath, []byte(out), 0644)
}

func runSeq(cmd *cobra.Command, args []string) error {
	f, err := parseFamily(args[0])
	if err != nil {
		return err
	}
	n, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid n: %s", args[1])
	}

	seq := figural.Arange(f, n)
	if len(seq) == 0 {
		fmt.Println("empty sequence")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "I\tVALUE")
	for i, v := range seq {
		fmt.Fprintf(w, "%d\t%d\n", i+1, v)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if chart {
		data := make([]float64, len(seq))
		for i, v := range seq {
			data[i] = float64(v)
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(60),
			asciigraph.Caption(fmt.Sprintf("%s number growth", f.Name())),
		)
		fmt.Println()
		fmt.Println(graph)
	}
	return nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	f, err := parseFamily(args[0])
	if err != nil {
		return err
	}

	xs := make([]int64, 0, len(args)-1)
	for _, a := range args[1:] {
		x, err := strconv.ParseInt(a, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid value: %s", a)
		}
		xs = append(xs, x)
	}

	results := figural.ClassifySlice(f, xs)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "VALUE\tMEMBER\tINDEX")
	for i, x := range xs {
		idx := "-"
		if results[i] {
			idx = fmt.Sprintf("%.0f", f.InverseIndex(float64(x)))
		}
		fmt.Fprintf(w, "%d\t%v\t%s\n", x, results[i], idx)
	}
	return w.Flush()
}

func runDraw(cmd *cobra.Command, args []string) error {
	f, err := parseFamily(args[0])
	if err != nil {
		return err
	}
	n, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid index: %s", args[1])
	}

	opts, err := drawOptions(cmd)
	if err != nil {
		return err
	}
	r, err := newRenderer()
	if err != nil {
		return err
	}
	if err := plot.One(r, f, n, opts); err != nil {
		return err
	}
	return emit(r)
}

func runGrid(cmd *cobra.Command, args []string) error {
	f, err := parseFamily(args[0])
	if err != nil {
		return err
	}
	start, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid start: %s", args[1])
	}
	end, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("invalid end: %s", args[2])
	}

	opts, err := drawOptions(cmd)
	if err != nil {
		return err
	}
	r, err := newRenderer()
	if err != nil {
		return err
	}
	if err := plot.Range(r, f, start, end, opts); err != nil {
		return err
	}
	return emit(r)
}

func runTUI(cmd *cobra.Command, args []string) error {
	f := figural.Family(figural.Triangular{})
	n := 5
	if len(args) > 0 {
		var err error
		if f, err = parseFamily(args[0]); err != nil {
			return err
		}
	}
	if len(args) > 1 {
		var err error
		if n, err = strconv.Atoi(args[1]); err != nil {
			return fmt.Errorf("invalid index: %s", args[1])
		}
	}

	opts := plot.DefaultOptions()
	opts.Distance = distance
	return tui.Run(f, n, opts)
}
