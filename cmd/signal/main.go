// signal - signal language codec CLI
//
// Usage:
//
//	signal encode   [flags] [text...]     Encode text (stdin if no args)
//	signal decode   [flags] [signal...]   Decode a signal (stdin if no args)
//	signal stats    [flags] [-json]       Codebook statistics
//	signal shortest [flags] [-n 20] [-json]
//	                                      Shortest codewords
//	signal codebook [flags]               Whole codebook as JSON
//	signal intensity decode <seq>         Read a Big Ear intensity sequence
//	signal intensity encode <text>        Write text as intensity characters
//
// Codec flags:
//
//	-vocab file.yaml   token: weight mapping (default: built-in lexicon)
//	-alphabet ._-      code symbols, one per character
//	-v                 log codec diagnostics to stderr
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	json "github.com/json-iterator/go"

	signal "github.com/luisub/6EQUJ5"
	"github.com/luisub/6EQUJ5/intensity"
	"github.com/luisub/6EQUJ5/lexicon"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd, args := os.Args[1], os.Args[2:]
	switch cmd {
	case "encode":
		cmdEncode(args)
	case "decode":
		cmdDecode(args)
	case "stats":
		cmdStats(args)
	case "shortest":
		cmdShortest(args)
	case "codebook":
		cmdCodebook(args)
	case "intensity":
		cmdIntensity(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "signal: unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `usage: signal <command> [flags] [args]

commands:
  encode     encode text into a signal
  decode     decode a signal into text
  stats      print codebook statistics
  shortest   print the shortest codewords
  codebook   dump the codebook as JSON
  intensity  Big Ear intensity notation (decode <seq> | encode <text>)`)
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "signal: "+format+"\n", args...)
	os.Exit(1)
}

// codecFlags are shared by every codebook command.
type codecFlags struct {
	vocab    string
	alphabet string
	verbose  bool
}

func newFlagSet(name string) (*flag.FlagSet, *codecFlags) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	cf := &codecFlags{}
	fs.StringVar(&cf.vocab, "vocab", "", "vocabulary YAML file (default: built-in lexicon)")
	fs.StringVar(&cf.alphabet, "alphabet", signal.DefaultAlphabet.String(), "code symbols, one per character")
	fs.BoolVar(&cf.verbose, "v", false, "log codec diagnostics to stderr")
	return fs, cf
}

func (cf *codecFlags) codec() *signal.Codec {
	vocab := lexicon.Default()
	if cf.vocab != "" {
		v, err := lexicon.LoadFile(cf.vocab)
		if err != nil {
			fatal("%v", err)
		}
		vocab = v
	}

	alphabet, err := signal.ParseAlphabet(cf.alphabet)
	if err != nil {
		fatal("%v", err)
	}
	opts := []signal.Option{signal.WithAlphabet(alphabet)}
	if cf.verbose {
		opts = append(opts, signal.WithLogger(log.New(os.Stderr, "", log.LstdFlags)))
	}

	codec, err := signal.Build(vocab, opts...)
	if err != nil {
		fatal("%v", err)
	}
	return codec
}

// input joins the positional arguments, or reads stdin when there are none.
func input(args []string) string {
	if len(args) > 0 {
		return strings.Join(args, " ")
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		fatal("read stdin: %v", err)
	}
	return string(data)
}

func writeJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fatal("encode json: %v", err)
	}
	os.Stdout.Write(data)
	fmt.Println()
}

func cmdEncode(args []string) {
	fs, cf := newFlagSet("encode")
	fs.Parse(args)
	codec := cf.codec()
	fmt.Println(codec.Encode(input(fs.Args())))
}

func cmdDecode(args []string) {
	fs, cf := newFlagSet("decode")
	fs.Parse(args)
	codec := cf.codec()
	fmt.Println(codec.Decode(input(fs.Args())))
}

func cmdStats(args []string) {
	fs, cf := newFlagSet("stats")
	asJSON := fs.Bool("json", false, "print JSON")
	fs.Parse(args)

	stats := cf.codec().Stats()
	if *asJSON {
		writeJSON(stats)
		return
	}
	fmt.Printf("total words:  %d\n", stats.TotalWords)
	fmt.Printf("min length:   %d\n", stats.MinLength)
	fmt.Printf("max length:   %d\n", stats.MaxLength)
	fmt.Printf("avg length:   %.2f\n", stats.AvgLength)
	fmt.Printf("alphabet:     %s\n", strings.Join(stats.Alphabet, " "))
}

func cmdShortest(args []string) {
	fs, cf := newFlagSet("shortest")
	n := fs.Int("n", 20, "number of entries")
	asJSON := fs.Bool("json", false, "print JSON")
	fs.Parse(args)

	entries := cf.codec().ShortestCodes(*n)
	if *asJSON {
		writeJSON(entries)
		return
	}
	for _, e := range entries {
		fmt.Printf("  %-14s %-10s %d\n", e.Token, e.Code, e.Length)
	}
}

func cmdCodebook(args []string) {
	fs, cf := newFlagSet("codebook")
	fs.Parse(args)
	writeJSON(cf.codec().Entries())
}

func cmdIntensity(args []string) {
	if len(args) < 1 {
		fatal("intensity: missing subcommand (decode, encode)")
	}
	fs := flag.NewFlagSet("intensity "+args[0], flag.ExitOnError)
	asJSON := fs.Bool("json", false, "print JSON")
	fs.Parse(args[1:])

	switch args[0] {
	case "decode":
		seq := intensity.Signal
		if fs.NArg() > 0 {
			seq = strings.Join(fs.Args(), "")
		}
		readings := intensity.Decode(seq)
		if *asJSON {
			writeJSON(readings)
			return
		}
		for _, r := range readings {
			fmt.Printf("  [%s]  %q  %2d  %-14s %s\n", r.Window, r.Char, r.Intensity, r.Description, r.Sigma)
		}
		if peak, ok := intensity.Peak(readings); ok {
			fmt.Printf("  peak: %q at %s (%s)\n", peak.Char, peak.Window, peak.Description)
		}
	case "encode":
		text := input(fs.Args())
		if *asJSON {
			writeJSON(intensity.EncodeDetailed(text))
			return
		}
		fmt.Println(intensity.Encode(text))
	default:
		fatal("intensity: unknown subcommand: %s", args[0])
	}
}
