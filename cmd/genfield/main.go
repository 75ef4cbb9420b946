package main

import (
	"flag"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/robotalks/ledfield/pkg/field"
)

var (
	seed    = time.Now().UnixNano()
	defines bool
)

func init() {
	field.SetupFlags()
	flag.Int64Var(&seed, "seed", seed, "Random seed, defaults to the current time.")
	flag.BoolVar(&defines, "defines", defines, "Emit RANDOM_FIELD_WIDTH and RANDOM_FIELD_HEIGHT.")
}

func main() {
	flag.Parse()

	conf := field.Default()
	f, err := field.Generate(*conf, rand.New(rand.NewSource(seed)))
	if err != nil {
		log.Fatalln(err)
	}
	if err := field.WriteC(os.Stdout, f, field.EmitOptions{Defines: defines}); err != nil {
		log.Fatalln(err)
	}
	if err := field.CheckBalance(f, conf.BalanceTolerance); err != nil {
		log.Fatalf("seed %d: %v", seed, err)
	}
}
