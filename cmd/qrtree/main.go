// Command qrtree inspects hierarchical QR/LQ reduction trees: it prints the
// elimination forest a given geometry produces and verifies its structural
// properties, using the same configuration surface a factorization driver
// would pass to qrtree.New.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/qrtree"
	"github.com/katalvlaran/qrtree/pivgen"
)

// Exit codes.
const (
	exitOK     = 0
	exitUsage  = 1
	exitFailed = 2
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

var (
	flagRows       int
	flagCols       int
	flagLocalTree  string
	flagGlobalTree string
	flagLocalSize  int
	flagGlobalSize int
	flagGridRows   int
	flagGridCols   int
	flagDomino     bool
	flagRoundRobin bool
	flagConfig     string
	flagStep       int
)

func main() {
	root := &cobra.Command{
		Use:           "qrtree",
		Short:         "Inspect tile-QR reduction trees",
		Long:          "qrtree prints and verifies the elimination forests of hierarchical\ntile-QR/LQ reduction trees for a given geometry.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.IntVar(&flagRows, "rows", 8, "tile-row extent of the reduced grid")
	pf.IntVar(&flagCols, "cols", 8, "tile-column extent of the reduced grid")
	pf.StringVar(&flagLocalTree, "local-tree", qrtree.DefaultLocalKind.String(), "local tree kind (flat|binary|greedy|fibonacci)")
	pf.StringVar(&flagGlobalTree, "global-tree", qrtree.DefaultGlobalKind.String(), "global tree kind (flat|binary|greedy|fibonacci)")
	pf.IntVar(&flagLocalSize, "local-size", qrtree.DefaultLocalSize, "tile-rows per domain")
	pf.IntVar(&flagGlobalSize, "global-size", 0, "super-rows per global tree instance (0 = all domains)")
	pf.IntVar(&flagGridRows, "grid-rows", 1, "process-domain grid rows")
	pf.IntVar(&flagGridCols, "grid-cols", 1, "process-domain grid cols")
	pf.BoolVar(&flagDomino, "domino", false, "overlap local and global reduction")
	pf.BoolVar(&flagRoundRobin, "round-robin", false, "rotate domain assignment across steps")
	pf.StringVar(&flagConfig, "config", "", "YAML geometry file (flags override its fields)")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the elimination forest for one or all steps",
		RunE:  runShow,
	}
	showCmd.Flags().IntVar(&flagStep, "step", -1, "factorization step to print (-1 = all)")

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Verify forest validity, coverage and traversal inversion",
		RunE:  runCheck,
	}

	root.AddCommand(showCmd, checkCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "qrtree:", err)
		os.Exit(exitUsage)
	}
}

// buildTree assembles the geometry from the optional YAML file plus flags
// (explicit flags win) and constructs the descriptor.
func buildTree(cmd *cobra.Command) (*qrtree.Tree, error) {
	geo := geometryFromFlags()
	if flagConfig != "" {
		fileGeo, err := loadGeometry(flagConfig)
		if err != nil {
			return nil, err
		}
		geo = mergeGeometry(fileGeo, geo, cmd)
	}
	return geo.build()
}

// geometry is the CLI/YAML view of the construction surface.
type geometry struct {
	Rows       int    `yaml:"rows"`
	Cols       int    `yaml:"cols"`
	LocalTree  string `yaml:"local_tree"`
	GlobalTree string `yaml:"global_tree"`
	LocalSize  int    `yaml:"local_size"`
	GlobalSize int    `yaml:"global_size"`
	GridRows   int    `yaml:"grid_rows"`
	GridCols   int    `yaml:"grid_cols"`
	Domino     bool   `yaml:"domino"`
	RoundRobin bool   `yaml:"round_robin"`
}

func geometryFromFlags() geometry {
	return geometry{
		Rows:       flagRows,
		Cols:       flagCols,
		LocalTree:  flagLocalTree,
		GlobalTree: flagGlobalTree,
		LocalSize:  flagLocalSize,
		GlobalSize: flagGlobalSize,
		GridRows:   flagGridRows,
		GridCols:   flagGridCols,
		Domino:     flagDomino,
		RoundRobin: flagRoundRobin,
	}
}

// build translates the textual geometry into qrtree options.
func (g geometry) build() (*qrtree.Tree, error) {
	localKind, err := pivgen.ParseKind(g.LocalTree)
	if err != nil {
		return nil, err
	}
	globalKind, err := pivgen.ParseKind(g.GlobalTree)
	if err != nil {
		return nil, err
	}

	opts := []qrtree.Option{
		qrtree.WithLocalTree(localKind, g.LocalSize),
		qrtree.WithDomainGrid(g.GridRows, g.GridCols),
	}
	if g.GlobalSize > 0 {
		opts = append(opts, qrtree.WithGlobalTree(globalKind, g.GlobalSize))
	} else {
		opts = append(opts, qrtree.WithGlobalTree(globalKind, 0))
	}
	if g.Domino {
		opts = append(opts, qrtree.WithDomino())
	}
	if g.RoundRobin {
		opts = append(opts, qrtree.WithRoundRobin())
	}
	return qrtree.New(g.Rows, g.Cols, opts...)
}

// =============================================================================
// SHOW COMMAND
// =============================================================================

// runShow prints, per step, each tile's pivot and kernel plus the step's
// critical-path depth.
func runShow(cmd *cobra.Command, args []string) error {
	t, err := buildTree(cmd)
	if err != nil {
		return err
	}
	defer t.Destroy()

	first, last := 0, t.Steps()
	if flagStep >= 0 {
		first, last = flagStep, flagStep+1
	}
	for k := first; k < last; k++ {
		depth, err := t.Depth(k)
		if err != nil {
			return err
		}
		fmt.Printf("step %d (depth %d):\n", k, depth)
		for m := k + 1; m < t.Rows(); m++ {
			p, err := t.PivotOf(k, m)
			if err != nil {
				return err
			}
			kern, err := t.KernelKind(k, m)
			if err != nil {
				return err
			}
			fmt.Printf("  %4d -> %4d  [%s]\n", m, p, kern)
		}
	}
	return nil
}

// =============================================================================
// CHECK COMMAND
// =============================================================================

// runCheck replays every step and verifies: each tile has one pivot and its
// chain reaches the step root; exhaustive NextPeer traversal covers exactly
// the pivot sets with no duplicates; PrevPeer is the reverse of NextPeer.
// Exits with code 2 on the first violation.
func runCheck(cmd *cobra.Command, args []string) error {
	t, err := buildTree(cmd)
	if err != nil {
		return err
	}
	defer t.Destroy()

	for k := 0; k < t.Steps(); k++ {
		if err := checkStep(t, k); err != nil {
			fmt.Fprintf(os.Stderr, "qrtree: step %d: %v\n", k, err)
			os.Exit(exitFailed)
		}
	}
	fmt.Printf("ok: %d steps, %d tile-rows, local=%s/%d global=%s/%d domino=%v rr=%v\n",
		t.Steps(), t.Rows(), t.LocalKind(), t.LocalSize(), t.GlobalKind(), t.GlobalSize(), t.Domino(), t.RoundRobin())
	return nil
}

func checkStep(t *qrtree.Tree, k int) error {
	rows := t.Rows()
	pivot := make(map[int]int, rows-k-1)
	for m := k + 1; m < rows; m++ {
		p, err := t.PivotOf(k, m)
		if err != nil {
			return err
		}
		pivot[m] = p
	}
	for m := k + 1; m < rows; m++ {
		hops := 0
		for cur := m; cur != k; hops++ {
			if hops > rows {
				return fmt.Errorf("pivot chain from tile %d does not reach root %d", m, k)
			}
			cur = pivot[cur]
		}
	}

	covered := make(map[int]bool, rows-k-1)
	for p := k; p < rows; p++ {
		var forward []int
		for cur, err := t.NextPeer(k, p, qrtree.NoTile); cur != qrtree.NoTile; cur, err = t.NextPeer(k, p, cur) {
			if err != nil {
				return err
			}
			if covered[cur] {
				return fmt.Errorf("tile %d reached from two pivots", cur)
			}
			covered[cur] = true
			if pivot[cur] != p {
				return fmt.Errorf("traversal of pivot %d yielded tile %d whose pivot is %d", p, cur, pivot[cur])
			}
			forward = append(forward, cur)
		}
		i := len(forward) - 1
		for cur, err := t.PrevPeer(k, p, qrtree.NoTile); cur != qrtree.NoTile; cur, err = t.PrevPeer(k, p, cur) {
			if err != nil {
				return err
			}
			if i < 0 || forward[i] != cur {
				return fmt.Errorf("reverse traversal of pivot %d diverges at tile %d", p, cur)
			}
			i--
		}
		if i != -1 {
			return fmt.Errorf("reverse traversal of pivot %d is shorter than forward", p)
		}
	}
	if len(covered) != rows-k-1 {
		return fmt.Errorf("coverage: %d of %d tiles reached", len(covered), rows-k-1)
	}
	return nil
}
