// Copyright 2026 José Luis Salvador Rufo <salvador.joseluis@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package hash implements the hash subcommand: digest computation over
// text, file, stdin, or no-echo terminal input, plus digest verification.
package hash

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/jlsalvador/simple-devtools/internal/config"
	"github.com/jlsalvador/simple-devtools/pkg/digest"
	"github.com/jlsalvador/simple-devtools/pkg/log"
)

const CmdName = "hash"
const CmdHelp = "Compute and verify message digests"

var (
	ErrNoInput        = errors.New("no input: use -text, -file, -secret, or pipe stdin")
	ErrDigestMismatch = errors.New("digest mismatch")
)

func CmdFn() error {
	flags, err := parseFlags()
	if err != nil {
		return err
	}

	cfg, err := config.Load(flags.CfgFile)
	if err != nil {
		return err
	}

	algo := flags.Algo
	if algo == "" {
		algo = cfg.Hash.Algorithm
	}
	format := cfg.Hash.Format
	if flags.Upper {
		format = digest.FormatUppercase
	}

	inputs, err := readInputs(flags)
	if err != nil {
		return err
	}

	if flags.Verify != "" {
		return verify(flags.Verify, inputs)
	}

	for _, input := range inputs {
		if flags.All {
			if err := printAll(input, format); err != nil {
				return err
			}
			continue
		}

		sum, err := digest.Sum(algo, input, format)
		if err != nil {
			return err
		}
		fmt.Println(sum)
	}

	return nil
}

// readInputs collects the byte buffers to digest. Precedence: -secret,
// then -file, then -text, then piped stdin.
func readInputs(flags Flags) ([][]byte, error) {
	switch {
	case flags.Secret:
		b, err := readSecret()
		if err != nil {
			return nil, err
		}
		return [][]byte{b}, nil

	case flags.File != "":
		b, err := os.ReadFile(flags.File)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", flags.File, err)
		}
		return [][]byte{b}, nil

	case len(flags.Texts) > 0:
		inputs := make([][]byte, 0, len(flags.Texts))
		for _, text := range flags.Texts {
			inputs = append(inputs, []byte(text))
		}
		return inputs, nil

	case !log.IsTerminal(os.Stdin):
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read from stdin: %w", err)
		}
		return [][]byte{b}, nil

	default:
		return nil, ErrNoInput
	}
}

func readSecret() ([]byte, error) {
	if !log.IsTerminal(os.Stdin) {
		return io.ReadAll(os.Stdin)
	}

	fmt.Print("Enter text (no echo): ")
	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Print("\n")
	if err != nil {
		return nil, fmt.Errorf("failed to read from the terminal: %w", err)
	}
	return b, nil
}

func printAll(input []byte, format string) error {
	sums, err := digest.SumAll(input, format)
	if err != nil {
		return err
	}
	for _, algo := range digest.Batch {
		fmt.Printf("%s\t%s\n", algo, sums[algo])
	}
	return nil
}

// verify computes the digest of every input with the algorithm named in
// the expected "algo:hex" digest and compares, case-insensitively.
func verify(expected string, inputs [][]byte) error {
	algo, expectedHex, err := digest.Parse(expected)
	if err != nil {
		return err
	}
	canonical, err := digest.Normalize(algo)
	if err != nil {
		return err
	}
	if !digest.ValidFormat(expectedHex, canonical) {
		return fmt.Errorf("%w: %q is not a well-formed %s digest",
			digest.ErrInvalidDigestFormat, expectedHex, canonical)
	}

	for _, input := range inputs {
		sum, err := digest.Sum(canonical, input, "")
		if err != nil {
			return err
		}
		if !digest.Compare(sum, expectedHex) {
			return fmt.Errorf("%w: computed %s:%s", ErrDigestMismatch, canonical, sum)
		}
	}

	fmt.Println("match")
	return nil
}
