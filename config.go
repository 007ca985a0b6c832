package mapforge

import "flag"

// Config holds the runtime's command-line settings.
type Config struct {
	MapPath   string
	SideEps   float64
	DumpJSON  string
	LinesOnly bool
	Debug     bool
}

// ParseConfig builds a Config from args (typically os.Args[1:]), using the
// standard flag package the way the teacher's command-line tooling does.
func ParseConfig(args []string) (*Config, error) {
	fs := flag.NewFlagSet("mapforge", flag.ContinueOnError)

	mapPath := fs.String("map", "./unnamed.map", "path to the .map file to load")
	sideEps := fs.Float64("epsilon", SideEpsilon, "point-to-plane side epsilon")
	dumpJSON := fs.String("dump-json", "", "path to write a JSON dump of the BSP tree (empty disables)")
	linesOnly := fs.Bool("lines-only", false, "render wireframe outlines instead of filled polygons")
	debug := fs.Bool("debug", false, "fail hard on cell-enumeration coverage gaps instead of just logging them")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &Config{
		MapPath:   *mapPath,
		SideEps:   *sideEps,
		DumpJSON:  *dumpJSON,
		LinesOnly: *linesOnly,
		Debug:     *debug,
	}, nil
}
