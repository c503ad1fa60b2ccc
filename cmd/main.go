package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/aukilabs/eihwaz/partition"
	"github.com/aukilabs/eihwaz/tree"
	"github.com/aukilabs/go-tooling/pkg/cli"
	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/segmentio/encoding/json"
)

// The Eihwaz version number. Set at build.
var version = "v0.1.0"

type config struct {
	Points    int     `cli:"" env:"EIHWAZ_POINTS"     help:"Number of random points to insert."`
	Width     float64 `cli:"" env:"EIHWAZ_WIDTH"      help:"Edge width of the root region."`
	Capacity  int     `cli:"" env:"EIHWAZ_CAPACITY"   help:"Leaf bucket capacity."`
	MaxDepth  int     `cli:"" env:"EIHWAZ_MAX_DEPTH"  help:"Maximum subdivision depth."`
	Seed      int64   `cli:"" env:"EIHWAZ_SEED"       help:"Random seed. Zero seeds from the clock."`
	LogLevel  string  `cli:"" env:"EIHWAZ_LOG_LEVEL"  help:"Log level (debug|info|warning|error)."`
	LogIndent bool    `cli:"" env:"EIHWAZ_LOG_INDENT" help:"Indent logs."`
	Version   bool    `cli:"" env:"-"                 help:"Show version."`
	Help      bool    `cli:"" env:"-"                 help:"Show help."`
}

type report struct {
	Seed     int64  `json:"seed"`
	Points   int    `json:"points"`
	Nodes    int    `json:"nodes"`
	Depth    int    `json:"depth"`
	Capacity int    `json:"capacity"`
	Elapsed  string `json:"elapsed"`
}

func main() {
	conf := config{
		Points:   100_000,
		Width:    1000,
		Capacity: tree.DefaultCapacity,
		MaxDepth: tree.DefaultMaxDepth,
		LogLevel: logs.InfoLevel.String(),
	}

	cli.Register().
		Help("Builds an N-cube spatial tree from random points and reports its shape.").
		Options(&conf)
	cli.Load()

	if conf.Version {
		fmt.Println(version)
		os.Exit(0)
	}

	if err := validateConfig(conf); err != nil {
		logs.Fatal(err)
	}

	logs.SetLevel(logs.ParseLevel(conf.LogLevel))
	logs.Encoder = json.Marshal
	if conf.LogIndent {
		logs.Encoder = func(v any) ([]byte, error) {
			return json.MarshalIndent(v, "", "  ")
		}
	}

	errors.Encoder = json.Marshal

	root, err := partition.New(partition.Point3[float64]{}, conf.Width)
	if err != nil {
		logs.Fatal(errors.New("creating root region failed").Wrap(err))
	}

	seed := conf.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rnd := rand.New(rand.NewSource(seed))

	tr := tree.New(root,
		func(p partition.Point3[float64]) partition.Point3[float64] { return p },
		tree.WithCapacity(conf.Capacity),
		tree.WithMaxDepth(conf.MaxDepth),
	)

	logs.WithTag("version", version).
		WithTag("points", conf.Points).
		WithTag("seed", seed).
		Info("building tree")

	start := time.Now()
	for i := 0; i < conf.Points; i++ {
		if err := tr.Insert(randomPoint(rnd, conf.Width)); err != nil {
			logs.Fatal(errors.New("inserting point failed").
				WithTag("index", i).
				Wrap(err))
		}
	}
	elapsed := time.Since(start)

	logs.WithTag("elapsed", elapsed.String()).
		WithTag("nodes", tr.Nodes()).
		WithTag("depth", tr.Depth()).
		Info("tree built")

	out, err := json.MarshalIndent(report{
		Seed:     seed,
		Points:   tr.Len(),
		Nodes:    tr.Nodes(),
		Depth:    tr.Depth(),
		Capacity: conf.Capacity,
		Elapsed:  elapsed.String(),
	}, "", "  ")
	if err != nil {
		logs.Fatal(errors.New("encoding report failed").Wrap(err))
	}
	fmt.Println(string(out))
}

// randomPoint draws a point uniformly from the origin-centered cube,
// (-width/2, width/2] on every axis so the minimum boundary stays excluded.
func randomPoint(rnd *rand.Rand, width float64) partition.Point3[float64] {
	var p partition.Point3[float64]
	for i := range p {
		p[i] = width/2 - width*rnd.Float64()
	}
	return p
}

func validateConfig(conf config) error {
	if conf.Points <= 0 {
		return errors.New("point count must be strictly positive").
			WithTag("points", conf.Points)
	}
	if conf.Width <= 0 {
		return errors.New("region width must be strictly positive").
			WithTag("width", conf.Width)
	}
	return nil
}
