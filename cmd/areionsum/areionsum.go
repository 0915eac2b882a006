// Command areionsum prints or checks Areion checksums, in the manner of sha256sum.
package main

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/codahale/areion/hashes"
)

func main() {
	var (
		alg   = flag.String("a", "md", "the algorithm to use (see -l)")
		check = flag.Bool("c", false, "read checksums from the files and check them")
		list  = flag.Bool("l", false, "list the available algorithms")
	)
	flag.Parse()

	log := slog.New(slog.Default().Handler())

	cfg := config{list: *list, check: *check, files: flag.Args()}
	a, err := hashes.Lookup(*alg)
	if err != nil {
		log.Error("invalid algorithm", "err", err)
		os.Exit(2)
	}
	cfg.alg = a

	if err := run(cfg, os.Stdin, os.Stdout, log); err != nil {
		log.Error("failed", "err", err)
		os.Exit(1)
	}
}

type config struct {
	alg   hashes.Algorithm
	check bool
	list  bool
	files []string
}

var errChecksumMismatch = errors.New("checksum mismatch")

func run(cfg config, stdin io.Reader, stdout io.Writer, log *slog.Logger) error {
	if cfg.list {
		for _, a := range hashes.All() {
			if _, err := fmt.Fprintf(stdout, "%-10s %-17s %3d bits\n", a.ShortName(), a, 8*a.Size()); err != nil {
				return err
			}
		}
		return nil
	}

	files := cfg.files
	if len(files) == 0 {
		files = []string{"-"}
	}

	var failed int
	for _, name := range files {
		var err error
		if cfg.check {
			err = checkFile(cfg.alg, name, stdin, stdout, log)
		} else {
			err = sumFile(cfg.alg, name, stdin, stdout)
		}
		if err != nil {
			log.Error("error", "file", name, "err", err)
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d inputs failed", failed, len(files))
	}
	return nil
}

func open(name string, stdin io.Reader) (io.ReadCloser, error) {
	if name == "-" {
		return io.NopCloser(stdin), nil
	}
	return os.Open(name) //nolint:gosec // reading user-supplied paths is the point
}

func digest(alg hashes.Algorithm, r io.Reader) ([]byte, error) {
	h := alg.New()
	if _, err := io.Copy(h, r); err != nil {
		return nil, err
	}
	return h.Sum(nil), nil
}

func sumFile(alg hashes.Algorithm, name string, stdin io.Reader, stdout io.Writer) error {
	f, err := open(name, stdin)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	d, err := digest(alg, f)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(stdout, "%x  %s\n", d, name)
	return err
}

// checkFile reads lines of the form "<hex digest>  <file>" from name and verifies each listed file.
func checkFile(alg hashes.Algorithm, name string, stdin io.Reader, stdout io.Writer, log *slog.Logger) error {
	f, err := open(name, stdin)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	var mismatched int
	s := bufio.NewScanner(f)
	for line := 1; s.Scan(); line++ {
		text := strings.TrimSpace(s.Text())
		if text == "" {
			continue
		}

		sum, target, ok := strings.Cut(text, "  ")
		if !ok {
			return fmt.Errorf("%s:%d: malformed checksum line", name, line)
		}
		want, err := hex.DecodeString(sum)
		if err != nil || len(want) != alg.Size() {
			return fmt.Errorf("%s:%d: invalid %s digest", name, line, alg)
		}

		got, err := digestFile(alg, target)
		if err != nil {
			log.Error("error", "file", target, "err", err)
			mismatched++
			continue
		}

		status := "OK"
		if !bytes.Equal(got, want) {
			status = "FAILED"
			mismatched++
		}
		if _, err := fmt.Fprintf(stdout, "%s: %s\n", target, status); err != nil {
			return err
		}
	}
	if err := s.Err(); err != nil {
		return err
	}

	if mismatched > 0 {
		return fmt.Errorf("%w: %d files", errChecksumMismatch, mismatched)
	}
	return nil
}

func digestFile(alg hashes.Algorithm, name string) ([]byte, error) {
	f, err := os.Open(name) //nolint:gosec // reading user-supplied paths is the point
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	return digest(alg, f)
}
