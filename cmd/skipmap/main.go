// Command skipmap loads "key;value" lines into a skip list map and prints
// the result in key order, in reverse order, or as a structure dump.
//
// Usage:
//
//	skipmap [-dump] [-reverse] [-trace] [-seed n] FILE
//
// Lines that are empty or start with '#' are ignored. When a key repeats,
// the first line wins.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/avamsi/ergo/assert"
	"golang.org/x/exp/mmap"

	"github.com/metailurini/skipmap"
)

type options struct {
	dump    bool
	reverse bool
	trace   bool
	seed    uint64
}

func load(path string, m *skipmap.Map[string, string], obs skipmap.Observer) error {
	f, err := mmap.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	s := bufio.NewScanner(io.NewSectionReader(f, 0, int64(f.Len())))
	for lineNo := 1; s.Scan(); lineNo++ {
		line := s.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		k, v, ok := strings.Cut(line, ";")
		if !ok {
			return fmt.Errorf("%s:%d: missing ';' in %q", path, lineNo, line)
		}
		if obs != nil {
			m.TraceInsert(k, v, obs)
		} else {
			m.Insert(k, v)
		}
	}
	return s.Err()
}

func render(w io.Writer, m *skipmap.Map[string, string], opts options) error {
	if opts.dump {
		return m.Dump(w)
	}
	bw := bufio.NewWriter(w)
	if opts.reverse {
		for it := m.RBegin(); !it.Equal(m.REnd()); it.Next() {
			fmt.Fprintf(bw, "%s=%s\n", it.Key(), it.Value())
		}
	} else {
		for it := m.CBegin(); !it.Equal(m.CEnd()); it.Next() {
			fmt.Fprintf(bw, "%s=%s\n", it.Key(), it.Value())
		}
	}
	return bw.Flush()
}

func run(path string, stdout, stderr io.Writer, opts options) error {
	var mapOpts []skipmap.Option
	if opts.seed != 0 {
		mapOpts = append(mapOpts, skipmap.WithSeed(opts.seed))
	}
	m := skipmap.New[string, string](mapOpts...)

	var obs skipmap.Observer
	if opts.trace {
		obs = skipmap.NewSlogObserver(slog.New(slog.NewTextHandler(stderr,
			&slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	if err := load(path, m, obs); err != nil {
		return err
	}
	return render(stdout, m, opts)
}

func main() {
	var opts options
	flag.BoolVar(&opts.dump, "dump", false, "print every level of the list")
	flag.BoolVar(&opts.reverse, "reverse", false, "print pairs in descending key order")
	flag.BoolVar(&opts.trace, "trace", false, "log each insert step to stderr")
	flag.Uint64Var(&opts.seed, "seed", 0, "seed for node heights (0 picks one from the clock)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: skipmap [-dump] [-reverse] [-trace] [-seed n] FILE")
		os.Exit(2)
	}
	assert.Nil(run(flag.Arg(0), os.Stdout, os.Stderr, opts))
}
