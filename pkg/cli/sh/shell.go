package sh

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/abiosoft/ishell"
	"github.com/pkg/errors"

	"github.com/robotalks/ledfield/pkg/field"
	"github.com/robotalks/ledfield/pkg/field/sampler"
)

// Shell provides ishell backed interactive shell over a generated field.
type Shell struct {
	Interactive bool
	OutputJSON  bool

	Shell  *ishell.Shell
	Config *field.Config
	Field  *field.Field
	Seed   int64
}

// Cell is the printable form of a field cell.
type Cell struct {
	X      int       `json:"x"`
	Y      int       `json:"y"`
	Color  field.Rgb `json:"color"`
	Sample float64   `json:"sample"`
	Hex    string    `json:"hex"`
	Hue    float64   `json:"hue"`
}

// Sample is the printable form of a sampled point.
type Sample struct {
	X      int       `json:"x"`
	Y      int       `json:"y"`
	Color  field.Rgb `json:"color"`
	LowRes field.Rgb `json:"lowres"`
}

const (
	shellKey    = "$shell"
	emptyPrompt = "[none] > "
)

// ErrNoField indicates a command needs a generated field.
var ErrNoField = errors.New("no field, run gen first")

var (
	// flags

	evalOnly   bool
	outputJSON bool

	// commands
	commands = []*ishell.Cmd{
		&GenCmd,
		&ShowCmd,
		&SumsCmd,
		&CheckCmd,
		&EmitCmd,
		&SampleCmd,
		&PreviewCmd,
	}
)

func init() {
	flag.BoolVar(&evalOnly, "e", evalOnly, "Evaluation only, no interactive shell.")
	flag.BoolVar(&outputJSON, "json", outputJSON, "Print output in JSON.")
}

// AddCmds is used by other commands providers during init func.
func AddCmds(cmds ...*ishell.Cmd) {
	commands = append(commands, cmds...)
}

// New creates a new shell.
func New(conf *field.Config) *Shell {
	s := &Shell{
		Interactive: !evalOnly,
		OutputJSON:  outputJSON,

		Shell:  ishell.New(),
		Config: conf,
	}
	s.Shell.Set(shellKey, s)
	s.Shell.SetPrompt(emptyPrompt)
	for _, cmd := range commands {
		s.Shell.AddCmd(cmd)
	}
	return s
}

// ShellFrom gets Shell from ishell context.
func ShellFrom(c *ishell.Context) *Shell {
	return c.Get(shellKey).(*Shell)
}

// MustHaveField wraps command func requiring a generated field.
func MustHaveField(fn func(c *ishell.Context)) func(c *ishell.Context) {
	return func(c *ishell.Context) {
		if ShellFrom(c).Field == nil {
			c.Err(ErrNoField)
			return
		}
		fn(c)
	}
}

// Generate creates a new field with the seed.
func (s *Shell) Generate(seed int64) error {
	f, err := field.Generate(*s.Config, rand.New(rand.NewSource(seed)))
	if err != nil {
		return err
	}
	s.Field, s.Seed = f, seed
	if s.Shell != nil {
		s.Shell.SetPrompt(fmt.Sprintf("[%dx%d #%d] > ", f.Width, f.Height, seed))
	}
	return nil
}

// Cells lists all cells in row-major order.
func (s *Shell) Cells() []Cell {
	f := s.Field
	cells := make([]Cell, 0, f.Width*f.Height)
	for x := 0; x < f.Width; x++ {
		for y := 0; y < f.Height; y++ {
			c := f.At(x, y)
			cell := Cell{
				X:     x,
				Y:     y,
				Color: c,
				Hex:   sampler.Hex(c, f.MaxVal),
				Hue:   sampler.Hue(c, f.MaxVal),
			}
			if f.Samples != nil {
				cell.Sample = f.Samples[x][y]
			}
			cells = append(cells, cell)
		}
	}
	return cells
}

// FormatCell prints a Cell into friendly string for display.
func FormatCell(c Cell) string {
	return fmt.Sprintf("[%d][%d] %-12s %s hue=%3.0f sample=%.4f", c.X, c.Y, c.Color, c.Hex, c.Hue, c.Sample)
}

// FormatSums prints channel sums for display.
func FormatSums(s field.ChannelSums) string {
	return fmt.Sprintf("R=%d G=%d B=%d spread=%d", s.R, s.G, s.B, s.Spread())
}

// Sample computes the driver colors at (x, y).
func (s *Shell) Sample(x, y, res int) Sample {
	smp := sampler.New(s.Field, res)
	return Sample{X: x, Y: y, Color: smp.Color(x, y), LowRes: smp.LowRes(x, y)}
}

// Preview writes the rendered field to path, as BMP unless the extension
// is .png.
func (s *Shell) Preview(path string, res int) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create preview")
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()
	p := sampler.NewPreview(sampler.New(s.Field, res))
	if strings.EqualFold(filepath.Ext(path), ".png") {
		return p.WritePNG(out)
	}
	return p.WriteBMP(out)
}

func (s *Shell) print(c *ishell.Context, v interface{}, text func() string) {
	if s.OutputJSON {
		out, err := json.Marshal(v)
		if err != nil {
			c.Err(err)
			return
		}
		c.Println(string(out))
		return
	}
	c.Println(text())
}

func parseInts(args []string, names ...string) ([]int, error) {
	vals := make([]int, len(args))
	for n, arg := range args {
		if _, err := fmt.Sscanf(arg, "%d", &vals[n]); err != nil {
			name := "argument"
			if n < len(names) {
				name = names[n]
			}
			return nil, errors.Wrapf(err, "invalid %s %q", name, arg)
		}
	}
	return vals, nil
}

// Run runs the shell.
func (s *Shell) Run(args ...string) {
	if len(args) > 0 {
		if err := s.Shell.Process(args...); err != nil {
			log.Fatalln(err)
		}
		return
	}
	if s.Interactive {
		s.Shell.Run()
		return
	}
	log.Fatalln("command expected")
}

var (
	// GenCmd generates a new field.
	GenCmd = ishell.Cmd{
		Name:    "gen",
		Aliases: []string{"g"},
		Help:    "[SEED]",
		Func: func(c *ishell.Context) {
			seed := time.Now().UnixNano()
			if len(c.Args) > 0 {
				if _, err := fmt.Sscanf(c.Args[0], "%d", &seed); err != nil {
					c.Err(errors.Wrapf(err, "invalid seed %q", c.Args[0]))
					return
				}
			}
			s := ShellFrom(c)
			if err := s.Generate(seed); err != nil {
				c.Err(err)
				return
			}
			if !s.OutputJSON {
				c.Printf("generated %dx%d with seed %d\n", s.Field.Width, s.Field.Height, seed)
			}
		},
	}

	// ShowCmd prints all cells.
	ShowCmd = ishell.Cmd{
		Name:    "show",
		Aliases: []string{"s"},
		Help:    "",
		Func: MustHaveField(func(c *ishell.Context) {
			s := ShellFrom(c)
			cells := s.Cells()
			s.print(c, cells, func() string {
				lines := make([]string, len(cells))
				for n, cell := range cells {
					lines[n] = FormatCell(cell)
				}
				return strings.Join(lines, "\n")
			})
		}),
	}

	// SumsCmd prints channel sums.
	SumsCmd = ishell.Cmd{
		Name: "sums",
		Help: "",
		Func: MustHaveField(func(c *ishell.Context) {
			s := ShellFrom(c)
			sums := field.Sums(s.Field)
			s.print(c, sums, func() string { return FormatSums(sums) })
		}),
	}

	// CheckCmd checks the channel balance.
	CheckCmd = ishell.Cmd{
		Name: "check",
		Help: "",
		Func: MustHaveField(func(c *ishell.Context) {
			s := ShellFrom(c)
			if err := field.CheckBalance(s.Field, s.Config.BalanceTolerance); err != nil {
				c.Err(err)
				return
			}
			c.Println("OK")
		}),
	}

	// EmitCmd prints or writes the C source.
	EmitCmd = ishell.Cmd{
		Name:    "emit",
		Aliases: []string{"e"},
		Help:    "[FILE]",
		Func: MustHaveField(func(c *ishell.Context) {
			s := ShellFrom(c)
			var buf bytes.Buffer
			var w io.Writer = &buf
			if len(c.Args) > 0 {
				out, err := os.Create(c.Args[0])
				if err != nil {
					c.Err(err)
					return
				}
				defer out.Close()
				w = out
			}
			if err := field.WriteC(w, s.Field, field.EmitOptions{}); err != nil {
				c.Err(err)
				return
			}
			c.Print(buf.String())
		}),
	}

	// SampleCmd prints the driver colors at a point.
	SampleCmd = ishell.Cmd{
		Name: "sample",
		Help: "X Y [RES]",
		Func: MustHaveField(func(c *ishell.Context) {
			if len(c.Args) < 2 {
				c.Err(errors.New("X and Y expected"))
				return
			}
			vals, err := parseInts(c.Args, "x", "y", "res")
			if err != nil {
				c.Err(err)
				return
			}
			var res int
			if len(vals) > 2 {
				res = vals[2]
			}
			s := ShellFrom(c)
			smp := s.Sample(vals[0], vals[1], res)
			s.print(c, smp, func() string {
				return fmt.Sprintf("(%d,%d) %s lowres=%s", smp.X, smp.Y, smp.Color, smp.LowRes)
			})
		}),
	}

	// PreviewCmd renders the field into an image file.
	PreviewCmd = ishell.Cmd{
		Name: "preview",
		Help: "FILE [RES]",
		Func: MustHaveField(func(c *ishell.Context) {
			if len(c.Args) < 1 {
				c.Err(errors.New("FILE expected"))
				return
			}
			var res int
			if len(c.Args) > 1 {
				vals, err := parseInts(c.Args[1:], "res")
				if err != nil {
					c.Err(err)
					return
				}
				res = vals[0]
			}
			if err := ShellFrom(c).Preview(c.Args[0], res); err != nil {
				c.Err(err)
				return
			}
			c.Printf("written %s\n", c.Args[0])
		}),
	}
)

// Main is a helper to provide a single call in main.
func Main() {
	flag.Parse()
	s := New(field.Default())
	if len(flag.Args()) > 0 {
		// evaluation starts from a field so commands can be chained in scripts.
		if err := s.Generate(time.Now().UnixNano()); err != nil {
			log.Fatalln(err)
		}
	}
	s.Run(flag.Args()...)
}
