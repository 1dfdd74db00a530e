package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/aybabtme/rgbterm"
	"github.com/charmbracelet/lipgloss"
	"github.com/nickysemenza/gola"
	"github.com/robmorgan/lumen/config"
	"github.com/robmorgan/lumen/engine"
	"github.com/robmorgan/lumen/fixture"
	"github.com/robmorgan/lumen/logger"
	"github.com/robmorgan/lumen/output"
	"github.com/robmorgan/lumen/project"
	"github.com/robmorgan/lumen/rhythm"
	"github.com/spf13/cobra"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FAFAFA")).Background(lipgloss.Color("#7D56F4")).Padding(0, 1)
	nameStyle  = lipgloss.NewStyle().Width(20).Foreground(lipgloss.Color("#A49FA5"))
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#874BFD")).Padding(0, 1)
)

type options struct {
	mode    string
	timeMs  int64
	tiles   []uint
	tempo   float64
	ola     string
	olaOnly bool
}

func main() {
	if err := newCommand().Execute(); err != nil {
		logger.GetProjectLogger().Error(err)
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	opts := options{}
	cmd := &cobra.Command{
		Use:          "unidump",
		Short:        "Render one frame of the club rig and print every output",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.ola != "" {
				if err := dumpOLA(opts.ola); err != nil {
					return err
				}
				if opts.olaOnly {
					return nil
				}
			}
			return dumpFrame(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.mode, "mode", "m", engine.ModeScene.String(), "render mode")
	cmd.Flags().Int64Var(&opts.timeMs, "time-ms", 0, "time of the frame in ms")
	cmd.Flags().UintSliceVarP(&opts.tiles, "tile", "t", nil, "tile ids lit at full strength")
	cmd.Flags().Float64Var(&opts.tempo, "tempo", 120, "tempo in bpm")
	cmd.Flags().StringVar(&opts.ola, "ola", "", "also dump the live universes from the OLA daemon at this address")
	cmd.Flags().BoolVar(&opts.olaOnly, "ola-only", false, "only dump the live universes")
	return cmd
}

func dumpFrame(opts options) error {
	mode, err := engine.ParseMode(opts.mode)
	if err != nil {
		return err
	}
	if opts.tempo <= 0 {
		return fmt.Errorf("tempo must be positive, got %v", opts.tempo)
	}

	p := config.NewDemoProject(rhythm.BeatMetadata{LengthMs: 60000 / opts.tempo})
	if scene, ok := p.Scenes[p.ActiveScene]; ok {
		for _, id := range opts.tiles {
			if entry, found := scene.Entry(uint64(id)); found {
				entry.Tile.Transition = project.AbsoluteStrength{Value: 1}
			}
		}
	}

	r := engine.NewRenderer()
	tables := fixture.NewTableCache()
	for _, id := range p.OutputIDs() {
		o, _ := p.Output(id)
		out, err := r.Render(p, engine.Request{Mode: mode, OutputID: id, Frame: uint32(opts.timeMs / 25), Now: opts.timeMs})
		if err != nil {
			return fmt.Errorf("rendering output %d: %w", id, err)
		}

		fmt.Println(titleStyle.Render(fmt.Sprintf("%s @ %dms (%s)", o.Name, opts.timeMs, mode)))
		switch out := out.(type) {
		case *output.Universe:
			cfg := o.Config.(project.DmxOutput)
			fmt.Println(boxStyle.Render(dmxRows(p, tables, cfg, out.Bytes())))
		case *output.Wled:
			fmt.Println(boxStyle.Render(wledRows(out.State())))
		}
	}
	return nil
}

func dmxRows(p *project.Project, tables *fixture.TableCache, cfg project.DmxOutput, data []byte) string {
	ids := maps.Keys(cfg.Fixtures)
	slices.SortFunc(ids, func(a, b uint64) bool {
		return cfg.Fixtures[a].ChannelOffset < cfg.Fixtures[b].ChannelOffset
	})

	rows := make([]string, 0, len(ids))
	for _, id := range ids {
		f := cfg.Fixtures[id]
		table, err := tables.Get(p.Definitions, f)
		if err != nil {
			rows = append(rows, nameStyle.Render(f.Name)+err.Error())
			continue
		}

		cells := make([]string, 0, table.Footprint())
		for _, v := range fixtureBytes(data, f.ChannelOffset, table.Footprint()) {
			cells = append(cells, rgbterm.FgString(fmt.Sprintf("%3d", v), 80+v/2, 80+v/2, 80+v/2))
		}
		label := fmt.Sprintf("%s %3d", f.Name, f.ChannelOffset+1)
		rows = append(rows, nameStyle.Render(label)+strings.Join(cells, " "))
	}
	return strings.Join(rows, "\n")
}

// fixtureBytes returns the part of a frame a fixture occupies, cut off at the
// end of the universe.
func fixtureBytes(data []byte, offset, footprint int) []byte {
	if offset < 0 || offset >= len(data) {
		return nil
	}
	end := offset + footprint
	if end > len(data) {
		end = len(data)
	}
	return data[offset:end]
}

func wledRows(state output.WledState) string {
	rows := make([]string, 0, len(state.Segments))
	for _, s := range state.Segments {
		c := s.Colors[0]
		swatch := rgbterm.BgString("    ", c[0], c[1], c[2])
		rows = append(rows, fmt.Sprintf("%s%s fx %3d pal %3d sx %3d bri %3d",
			nameStyle.Render(fmt.Sprintf("segment %d", s.ID)), swatch, s.Effect, s.Palette, s.Speed, s.Brightness))
	}
	return strings.Join(rows, "\n")
}

// dumpOLA prints what the OLA daemon currently holds for universe 1.
func dumpOLA(address string) error {
	client, err := gola.New(address)
	if err != nil {
		return fmt.Errorf("could not connect to OLA: %w", err)
	}
	defer client.Close()

	x, err := client.GetDmx(1)
	if err != nil {
		return fmt.Errorf("GetDmx: 1: %w", err)
	}
	fmt.Println(titleStyle.Render("OLA universe 1"))
	fmt.Println(boxStyle.Render(strings.TrimRight(hex.Dump(x.Data), "\n")))
	return nil
}
