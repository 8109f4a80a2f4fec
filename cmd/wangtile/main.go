// Command wangtile is the CLI front end for the quilting and Wang-tile
// engine: it loads/saves BMP files via internal/bmp and dispatches to
// internal/quilt, internal/wang, internal/tilemap and internal/debugviz.
// Subcommand dispatch mirrors the teacher's pkg/stdimg command registry
// (a name plus an Args spec) and pkg/cli.RunCLI's switch-on-command
// shape, adapted from an interactive REPL into a one-shot argv dispatcher.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sashaouellet/wangtile/internal/bmp"
	"github.com/sashaouellet/wangtile/internal/cliupdate"
	"github.com/sashaouellet/wangtile/internal/config"
	"github.com/sashaouellet/wangtile/internal/debugviz"
	"github.com/sashaouellet/wangtile/internal/filepick"
	"github.com/sashaouellet/wangtile/internal/quilt"
	"github.com/sashaouellet/wangtile/internal/termpreview"
	"github.com/sashaouellet/wangtile/internal/tilemap"
	"github.com/sashaouellet/wangtile/internal/wang"
)

// version is overridden at build time via -ldflags "-X main.version=...".
var version = "0.0.0-dev"

// commandSpec documents one subcommand's usage, mirroring
// pkg/stdimg.CommandSpec's Name/Usage/Description shape.
type commandSpec struct {
	name        string
	usage       string
	description string
	run         func(args []string) error
}

func main() {
	commands := []commandSpec{
		{"quilt", "quilt -in <exemplar.bmp> -out <output.bmp> [-patches N] [-size N] [-seed N]", "Generate a random quilt from an exemplar image.", runQuilt},
		{"wang", "wang -in <exemplar_rgby.bmp> -out <dir> [-size N]", "Build the 8 Wang tiles from a corner-coded exemplar.", runWang},
		{"tilemap", "tilemap -tiles <dir> -out <output.bmp> -width N -height N [-seed N]", "Assemble a stochastic tile map from a Wang tile set.", runTileMap},
		{"contactsheet", "contactsheet -tiles <dir> -out <sheet.png>", "Render a labeled PNG contact sheet of a Wang tile set.", runContactSheet},
		{"preview", "preview <bmp-file>", "Show a BMP file inline in a supporting terminal.", runPreview},
		{"update", "update", "Check for and install a newer release.", runUpdate},
	}

	if len(os.Args) < 2 {
		usage(commands)
		os.Exit(2)
	}

	name := os.Args[1]
	for _, c := range commands {
		if c.name == name {
			if err := c.run(os.Args[2:]); err != nil {
				fmt.Fprintf(os.Stderr, "wangtile %s: %v\n", name, err)
				os.Exit(1)
			}
			return
		}
	}

	fmt.Fprintf(os.Stderr, "unknown command %q\n", name)
	usage(commands)
	os.Exit(2)
}

func usage(commands []commandSpec) {
	fmt.Fprintln(os.Stderr, "Commands available:")
	for _, c := range commands {
		fmt.Fprintf(os.Stderr, "  %-12s %s\n", c.name, c.description)
		fmt.Fprintf(os.Stderr, "               usage: %s\n", c.usage)
	}
}

func runQuilt(args []string) error {
	defaults := config.Load()
	fs := flag.NewFlagSet("quilt", flag.ExitOnError)
	in := fs.String("in", "", "path to the exemplar BMP")
	out := fs.String("out", "", "path to write the stitched output BMP")
	patchesPerSide := fs.Int("patches", defaults.PatchesPerSide, "patches per side")
	patchSize := fs.Int("size", defaults.PatchSize, "patch size in pixels")
	seed := fs.Int64("seed", defaults.Seed, "random seed")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *out == "" {
		return fmt.Errorf("-out is required")
	}
	if *in == "" {
		picked, err := filepick.PromptBMPPathOrFzf(os.Stdin, os.Stdout, "no -in given; type a path or \"/\" to browse: ", ".")
		if err != nil {
			return fmt.Errorf("no exemplar selected: %w", err)
		}
		*in = picked
	}

	exemplar, err := bmp.Read(*in)
	if err != nil {
		return fmt.Errorf("reading exemplar: %w", err)
	}
	q, err := quilt.New(exemplar, *patchesPerSide, *patchSize, *seed)
	if err != nil {
		return fmt.Errorf("building quilt: %w", err)
	}
	if err := q.Generate(); err != nil {
		return fmt.Errorf("generating quilt: %w", err)
	}
	output, err := q.Stitch(os.Stdout)
	if err != nil {
		return fmt.Errorf("stitching quilt: %w", err)
	}
	if err := bmp.Write(*out, output); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	fmt.Printf("wrote %s (%dx%d)\n", *out, output.Width(), output.Height())
	return nil
}

func runWang(args []string) error {
	defaults := config.Load()
	fs := flag.NewFlagSet("wang", flag.ExitOnError)
	in := fs.String("in", "", "path to the corner-coded exemplar BMP")
	outDir := fs.String("out", "", "directory to write the 8 tile BMPs into")
	patchSize := fs.Int("size", defaults.PatchSize, "corner patch size in pixels")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *outDir == "" {
		return fmt.Errorf("-out is required")
	}
	if *in == "" {
		picked, err := filepick.PromptBMPPathOrFzf(os.Stdin, os.Stdout, "no -in given; type a path or \"/\" to browse: ", ".")
		if err != nil {
			return fmt.Errorf("no exemplar selected: %w", err)
		}
		*in = picked
	}

	codes, err := wang.ParseCornerCodes(*in, defaults.CornerDelim)
	if err != nil {
		return fmt.Errorf("parsing corner codes from filename: %w", err)
	}

	exemplar, err := bmp.Read(*in)
	if err != nil {
		return fmt.Errorf("reading exemplar: %w", err)
	}
	tiles, err := wang.BuildTileSet(exemplar, *patchSize)
	if err != nil {
		return fmt.Errorf("building tile set: %w", err)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	for i, tile := range tiles {
		path := fmt.Sprintf("%s/tile%d_%c%c%c%c.bmp", *outDir, i, tile.North, tile.East, tile.South, tile.West)
		if err := bmp.Write(path, tile.Image); err != nil {
			return fmt.Errorf("writing tile %d: %w", i, err)
		}
	}
	fmt.Printf("wrote 8 tiles to %s (corners %c%c%c%c)\n", *outDir, codes[0], codes[1], codes[2], codes[3])
	return nil
}

func runTileMap(args []string) error {
	defaults := config.Load()
	fs := flag.NewFlagSet("tilemap", flag.ExitOnError)
	tilesDir := fs.String("tiles", "", "directory of the 8 Wang tile BMPs")
	out := fs.String("out", "", "path to write the assembled output BMP")
	width := fs.Int("width", 8, "map width, in tiles")
	height := fs.Int("height", 8, "map height, in tiles")
	seed := fs.Int64("seed", defaults.Seed, "random seed")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *tilesDir == "" || *out == "" {
		return fmt.Errorf("-tiles and -out are required")
	}

	tiles, err := loadTileSet(*tilesDir, defaults.CornerDelim)
	if err != nil {
		return err
	}

	tm, err := tilemap.Generate(tiles, *width, *height, *seed)
	if err != nil {
		return fmt.Errorf("generating tile map: %w", err)
	}
	assembled, err := tm.Assemble()
	if err != nil {
		return fmt.Errorf("assembling tile map: %w", err)
	}
	if err := bmp.Write(*out, assembled); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	fmt.Printf("wrote %s (%dx%d tiles, %dx%d px)\n", *out, *width, *height, assembled.Width(), assembled.Height())
	return nil
}

func runContactSheet(args []string) error {
	defaults := config.Load()
	fs := flag.NewFlagSet("contactsheet", flag.ExitOnError)
	tilesDir := fs.String("tiles", "", "directory of the 8 Wang tile BMPs")
	out := fs.String("out", "", "path to write the PNG contact sheet")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *tilesDir == "" || *out == "" {
		return fmt.Errorf("-tiles and -out are required")
	}

	tiles, err := loadTileSet(*tilesDir, defaults.CornerDelim)
	if err != nil {
		return err
	}

	f, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()

	if err := debugviz.ContactSheet(f, tiles); err != nil {
		return fmt.Errorf("rendering contact sheet: %w", err)
	}
	fmt.Printf("wrote %s\n", *out)
	return nil
}

func runUpdate(args []string) error {
	fs := flag.NewFlagSet("update", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	return cliupdate.Check(version, os.Stdin, os.Stdout)
}

func runPreview(args []string) error {
	fs := flag.NewFlagSet("preview", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("preview requires exactly one BMP file argument")
	}
	path := fs.Arg(0)

	p, err := bmp.Read(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if !termpreview.Supported() {
		return fmt.Errorf("no inline image protocol detected for this terminal")
	}
	return termpreview.Preview(p)
}

// loadTileSet reads exactly 8 BMP files from dir and assembles them into
// a [8]wang.Tile by parsing each filename's corner codes, mirroring the
// naming convention runWang writes (tile<i>_<nesw>.bmp).
func loadTileSet(dir string, delim byte) ([8]wang.Tile, error) {
	var tiles [8]wang.Tile

	entries, err := os.ReadDir(dir)
	if err != nil {
		return tiles, fmt.Errorf("reading tile directory: %w", err)
	}

	i := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if i >= len(tiles) {
			return tiles, fmt.Errorf("directory %q has more than %d tile files", dir, len(tiles))
		}
		codes, err := wang.ParseCornerCodes(entry.Name(), delim)
		if err != nil {
			return tiles, fmt.Errorf("parsing tile filename %q: %w", entry.Name(), err)
		}
		img, err := bmp.Read(dir + "/" + entry.Name())
		if err != nil {
			return tiles, fmt.Errorf("reading tile %q: %w", entry.Name(), err)
		}
		tiles[i] = wang.Tile{Image: img, North: codes[0], East: codes[1], South: codes[2], West: codes[3]}
		i++
	}
	if i != len(tiles) {
		return tiles, fmt.Errorf("directory %q must contain exactly %d tile files, found %d", dir, len(tiles), i)
	}
	return tiles, nil
}
