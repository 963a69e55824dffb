// Copyright 2017 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

// Command ethashcore is a small driver around consensus/ethash: the CLI
// surface and target comparison the core itself deliberately leaves out
// (see spec.md §1 and SPEC_FULL.md §2). Each invocation builds a single
// evaluator; it does not use EpochCacheStore.
package main

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"sync"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/holiman/uint256"
	"github.com/urfave/cli/v2"

	"github.com/ethash-go/ethashcore/consensus/ethash"
)

func main() {
	app := &cli.App{
		Name:  "ethashcore",
		Usage: "evaluate the Ethash-variant proof-of-work core from the command line",
		Commands: []*cli.Command{
			hashCommand,
			cacheDigestCommand,
			searchCommand,
		},
	}
	if err := app.Run(os.Args); err != nil {
		slog.Error("ethashcore failed", "err", err)
		os.Exit(1)
	}
}

var paramsFlags = []cli.Flag{
	&cli.Uint64Flag{Name: "cachesize", Value: 1024, Usage: "cache size in bytes, multiple of 64 and mixsize"},
	&cli.Uint64Flag{Name: "cacherounds", Value: 2, Usage: "RandMemoHash passes"},
	&cli.Uint64Flag{Name: "dagsize", Value: 2048, Usage: "virtual DAG size in bytes, multiple of mixsize"},
	&cli.Uint64Flag{Name: "dagparents", Value: 4, Usage: "FNV-mix iterations per DAG node"},
	&cli.Uint64Flag{Name: "mixsize", Value: 128, Usage: "working mix width in bytes, multiple of 64"},
	&cli.Uint64Flag{Name: "mixparents", Value: 3, Usage: "outer mix iterations"},
	&cli.StringFlag{Name: "seed", Required: true, Usage: "hex-encoded seed, any length divisible by 4 bytes"},
}

func paramsFromFlags(c *cli.Context) (ethash.Params, []byte, error) {
	params := ethash.Params{
		CacheSize:   uint32(c.Uint64("cachesize")),
		CacheRounds: uint32(c.Uint64("cacherounds")),
		DagSize:     c.Uint64("dagsize"),
		DagParents:  uint32(c.Uint64("dagparents")),
		MixSize:     uint32(c.Uint64("mixsize")),
		MixParents:  uint32(c.Uint64("mixparents")),
	}
	seed, err := hex.DecodeString(c.String("seed"))
	if err != nil {
		return ethash.Params{}, nil, fmt.Errorf("decoding --seed: %w", err)
	}
	return params, seed, nil
}

var hashCommand = &cli.Command{
	Name:  "hash",
	Usage: "compute the 32-byte digest for one (header, nonce) pair",
	Flags: append(paramsFlags,
		&cli.StringFlag{Name: "header", Required: true, Usage: "hex-encoded 32-byte header"},
		&cli.StringFlag{Name: "nonce", Required: true, Usage: "hex-encoded 8-byte nonce"},
	),
	Action: func(c *cli.Context) error {
		params, seed, err := paramsFromFlags(c)
		if err != nil {
			return err
		}
		header, err := decodeFixed(c.String("header"), 32)
		if err != nil {
			return fmt.Errorf("decoding --header: %w", err)
		}
		nonce, err := decodeFixed(c.String("nonce"), 8)
		if err != nil {
			return fmt.Errorf("decoding --nonce: %w", err)
		}

		eval, err := ethash.NewEvaluator(params, seed, ethash.NewKeccak())
		if err != nil {
			return err
		}
		var headerArr [32]byte
		var nonceArr [8]byte
		copy(headerArr[:], header)
		copy(nonceArr[:], nonce)

		digest := eval.Hash(headerArr, nonceArr)
		fmt.Println(hex.EncodeToString(digest[:]))
		return nil
	},
}

var cacheDigestCommand = &cli.Command{
	Name:  "cachedigest",
	Usage: "compute the diagnostic Keccak-256 digest of the expanded cache",
	Flags: paramsFlags,
	Action: func(c *cli.Context) error {
		params, seed, err := paramsFromFlags(c)
		if err != nil {
			return err
		}
		eval, err := ethash.NewEvaluator(params, seed, ethash.NewKeccak())
		if err != nil {
			return err
		}
		digest := eval.CacheDigest()
		fmt.Println(hex.EncodeToString(digest[:]))
		return nil
	},
}

var searchCommand = &cli.Command{
	Name:  "search",
	Usage: "brute-force a header for a nonce meeting a difficulty target",
	Flags: append(paramsFlags,
		&cli.StringFlag{Name: "header", Required: true, Usage: "hex-encoded 32-byte header"},
		&cli.Uint64Flag{Name: "difficulty", Required: true, Usage: "target difficulty"},
		&cli.IntFlag{Name: "workers", Value: 4, Usage: "concurrent search goroutines"},
		&cli.Uint64Flag{Name: "limit", Value: 1_000_000, Usage: "maximum nonces to try before giving up"},
	),
	Action: func(c *cli.Context) error {
		params, seed, err := paramsFromFlags(c)
		if err != nil {
			return err
		}
		header, err := decodeFixed(c.String("header"), 32)
		if err != nil {
			return fmt.Errorf("decoding --header: %w", err)
		}
		var headerArr [32]byte
		copy(headerArr[:], header)

		eval, err := ethash.NewEvaluator(params, seed, ethash.NewKeccak())
		if err != nil {
			return err
		}
		difficulty := uint256.NewInt(c.Uint64("difficulty"))
		limit := c.Uint64("limit")
		workers := c.Int("workers")
		if workers < 1 {
			workers = 1
		}

		// tried deduplicates nonces across workers so overlapping ranges
		// (or a future smarter scheduler) never waste a hash recomputing
		// one already reported.
		tried := mapset.NewSet[uint64]()

		type result struct {
			nonce  uint64
			digest [32]byte
		}
		found := make(chan result, 1)
		var wg sync.WaitGroup
		done := make(chan struct{})

		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func(start uint64) {
				defer wg.Done()
				for n := start; n < limit; n += uint64(workers) {
					select {
					case <-done:
						return
					default:
					}
					if !tried.Add(n) {
						continue
					}
					var nonceArr [8]byte
					binary.LittleEndian.PutUint64(nonceArr[:], n)
					digest := eval.Hash(headerArr, nonceArr)
					if ethash.MeetsDifficulty(digest, difficulty) {
						select {
						case found <- result{nonce: n, digest: digest}:
							close(done)
						default:
						}
						return
					}
				}
			}(uint64(w))
		}

		go func() {
			wg.Wait()
			close(found)
		}()

		r, ok := <-found
		if !ok {
			return fmt.Errorf("no nonce below %d met difficulty %d", limit, difficulty.Uint64())
		}
		fmt.Printf("nonce=%d digest=%s tried=%d\n", r.nonce, hex.EncodeToString(r.digest[:]), tried.Cardinality())
		return nil
	},
}

func decodeFixed(s string, n int) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, err
	}
	if len(b) != n {
		return nil, fmt.Errorf("expected %d bytes, got %d", n, len(b))
	}
	return b, nil
}
