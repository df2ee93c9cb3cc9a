package main

import (
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvlflow/flow"
	"github.com/katalvlaran/lvlflow/netgen"
	"github.com/katalvlaran/lvlflow/netio"
)

// Config is the top-level configuration object of the lvlflow tool.
var Config = new(struct {
	Log struct {
		Level  string `long:"level" env:"LEVEL" default:"warn" choice:"trace" choice:"debug" choice:"info" choice:"warn" choice:"error" choice:"fatal" description:"Logging level"`
		Format string `long:"format" env:"FORMAT" default:"text" choice:"json" choice:"text" choice:"color" description:"Logging output format"`
	} `group:"Logging" namespace:"log" env-namespace:"LOG"`
})

// initLog configures the process logger from the Logging group.
func initLog() {
	if Config.Log.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else if Config.Log.Format == "text" {
		log.SetFormatter(&log.TextFormatter{})
	} else if Config.Log.Format == "color" {
		log.SetFormatter(&log.TextFormatter{ForceColors: true})
	}

	if lvl, err := log.ParseLevel(Config.Log.Level); err != nil {
		log.WithField("err", err).Fatal("unrecognized log level")
	} else {
		log.SetLevel(lvl)
	}
}

type cmdSolve struct {
	Input         string `long:"input" short:"i" default:"-" description:"Network to read, or - for stdin"`
	YAMLIn        bool   `long:"yaml-in" description:"Treat the input as a YAML document rather than the token stream"`
	Format        string `long:"format" short:"f" default:"text" choice:"text" choice:"table" choice:"yaml" description:"Output format"`
	Trace         bool   `long:"trace" description:"Log every search and augmentation (forces debug logging)"`
	MaxIterations int    `long:"max-iterations" default:"0" description:"Abort after this many augmentations, 0 means unbounded"`
}

func (cmd *cmdSolve) Execute([]string) error {
	initLog()
	if cmd.Trace {
		log.SetLevel(log.DebugLevel)
	}

	in, err := openInput(cmd.Input)
	if err != nil {
		return err
	}
	defer in.Close()

	var nw *netio.Network
	if cmd.YAMLIn {
		nw, err = netio.ReadNetworkYAML(in)
	} else {
		nw, err = netio.ReadNetwork(in)
	}
	if err != nil {
		return errors.Wrapf(err, "reading %s", cmd.Input)
	}

	log.WithFields(log.Fields{
		"input":    cmd.Input,
		"vertices": nw.Graph.VertexCount(),
		"edges":    nw.Graph.EdgeCount(),
	}).Info("solving instance")

	var opts = flow.DefaultOptions()
	opts.MaxIterations = cmd.MaxIterations
	if cmd.Trace {
		opts.Tracer = flow.NewLogTracer(log.StandardLogger())
	}

	total, err := flow.MaxFlow(nw.Graph, nw.Source, nw.Sink, opts)
	if err != nil {
		return errors.Wrap(err, "solving")
	}
	log.WithField("maxFlow", total).Info("solve complete")

	switch cmd.Format {
	case "table":
		return netio.WriteTable(os.Stdout, nw, total)
	case "yaml":
		return netio.WriteResultYAML(os.Stdout, nw, total)
	default:
		return netio.WriteResult(os.Stdout, nw, total)
	}
}

type cmdGen struct {
	Vertices    int     `long:"vertices" short:"n" default:"8" description:"Vertex count, source and sink included"`
	Density     float64 `long:"density" default:"0.35" description:"Probability of each forward skip edge"`
	MaxCapacity int64   `long:"max-capacity" default:"20" description:"Inclusive ceiling of drawn capacities"`
	Seed        int64   `long:"seed" default:"1" description:"Random source seed"`
	Format      string  `long:"format" short:"f" default:"text" choice:"text" choice:"yaml" description:"Output format"`
}

func (cmd *cmdGen) Execute([]string) error {
	initLog()

	nw, err := netgen.Generate(netgen.Config{
		Vertices:    cmd.Vertices,
		Density:     cmd.Density,
		MaxCapacity: cmd.MaxCapacity,
		Seed:        cmd.Seed,
	})
	if err != nil {
		return errors.Wrap(err, "generating")
	}

	log.WithFields(log.Fields{
		"vertices": nw.Graph.VertexCount(),
		"edges":    nw.Graph.EdgeCount(),
		"seed":     cmd.Seed,
	}).Info("instance generated")

	if cmd.Format == "yaml" {
		return netio.WriteNetworkYAML(os.Stdout, nw)
	}
	return netio.WriteNetwork(os.Stdout, nw)
}

// openInput resolves the input flag; "-" selects stdin.
func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	return f, nil
}

func main() {
	var parser = flags.NewParser(Config, flags.Default)

	_, _ = parser.AddCommand("solve", "Solve a max-flow instance", `
Read a flow network, run the augmenting-path solver to completion, and print
the maximum flow together with its per-edge assignment.
`, &cmdSolve{})

	_, _ = parser.AddCommand("gen", "Generate a random instance", `
Sample a reproducible random flow network and print it in a form the solve
command accepts, so instances can be piped straight back in.
`, &cmdGen{})

	if _, err := parser.ParseArgs(os.Args[1:]); err != nil {
		if _, ok := err.(*flags.Error); !ok {
			log.WithField("err", err).Fatal("command failed")
		}
		os.Exit(1)
	}
}
