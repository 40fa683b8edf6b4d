// Command sha3sum prints the SHA-3 digests of files.
//
//	sha3sum -a RATE [-f FORMAT] [-multihash] [-j N] FILE...
//
// RATE is the digest length in bits: 224, 256, 384, or 512. FORMAT is hex (the default) or the name of any multibase
// encoding (e.g., base32, base58btc, base64url). With -multihash, digests are printed as multihashes.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"runtime"
	"strconv"

	"github.com/codahale/sha3"
	"github.com/codahale/sha3/internal/mmap"
	"github.com/codahale/sha3/mhsha3"
	"golang.org/x/sync/errgroup"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

//nolint:funlen // mostly flag handling
func run(args []string, stdout, stderr io.Writer) int {
	log := slog.New(slog.NewTextHandler(stderr, nil))

	flags := flag.NewFlagSet("sha3sum", flag.ContinueOnError)
	flags.SetOutput(stderr)
	var (
		rate   = flags.String("a", "", "the digest length in bits (224, 256, 384, or 512)")
		format = flags.String("f", "hex", "the output encoding: hex or a multibase encoding name")
		mh     = flags.Bool("multihash", false, "print digests as multihashes")
		jobs   = flags.Int("j", runtime.GOMAXPROCS(0), "the number of files to hash concurrently")
	)
	flags.Usage = func() {
		_, _ = fmt.Fprintln(stderr, "Usage: sha3sum -a RATE FILE...")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	bits, err := parseRate(*rate)
	if err != nil {
		flags.Usage()
		_, _ = fmt.Fprintln(stderr, "RATE must be 224, 256, 384, or 512")
		return 2
	}

	encode, err := newEncoder(*format)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "invalid format %q: %v\n", *format, err)
		return 2
	}

	if *jobs < 1 {
		_, _ = fmt.Fprintln(stderr, "-j must be at least 1")
		return 2
	}

	files := flags.Args()
	if len(files) == 0 {
		flags.Usage()
		return 2
	}

	h := &hasher{bits: bits, multihash: *mh, encode: encode}
	results := make([]result, len(files))

	var eg errgroup.Group
	eg.SetLimit(*jobs)
	for i, path := range files {
		eg.Go(func() error {
			results[i].digest, results[i].err = h.hashFile(path)
			return nil
		})
	}
	_ = eg.Wait()

	status := 0
	for i, path := range files {
		if err := results[i].err; err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				log.Error("file not found", "file", path)
			} else {
				log.Error("error hashing file", "file", path, "err", err)
			}
			status = 1
			continue
		}

		_, _ = fmt.Fprintf(stdout, "SHA3-%d hash of the file %s: %s\n", bits, path, results[i].digest)
	}
	return status
}

func parseRate(s string) (int, error) {
	bits, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}

	if _, err := sha3.Rate(bits); err != nil {
		return 0, err
	}
	return bits, nil
}

type result struct {
	digest string
	err    error
}

type hasher struct {
	encode    func([]byte) string
	bits      int
	multihash bool
}

func (h *hasher) hashFile(path string) (string, error) {
	f, err := mmap.Open(path)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = f.Close()
	}()

	var d []byte
	if h.multihash {
		d, err = mhsha3.Sum(f.Bytes(), h.bits)
	} else {
		d, err = sha3.Sum(f.Bytes(), h.bits)
	}
	if err != nil {
		return "", err
	}

	return h.encode(d), nil
}
