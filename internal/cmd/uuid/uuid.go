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

// Package uuid implements the uuid subcommand: generation, introspection,
// re-formatting, and validation of UUIDs.
package uuid

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jlsalvador/simple-devtools/internal/config"
	"github.com/jlsalvador/simple-devtools/pkg/uuid"
)

const CmdName = "uuid"
const CmdHelp = "Generate, inspect, format, and validate UUIDs"

var ErrInvalidUUID = errors.New("invalid uuid")

// Namespace keywords resolved to the RFC 4122 appendix C constants.
var namespaceKeywords = map[string]string{
	"dns":  uuid.NamespaceDNS,
	"url":  uuid.NamespaceURL,
	"oid":  uuid.NamespaceOID,
	"x500": uuid.NamespaceX500,
}

func CmdFn() error {
	flags, err := parseFlags()
	if err != nil {
		return err
	}

	cfg, err := config.Load(flags.CfgFile)
	if err != nil {
		return err
	}

	version := flags.Version
	if version == "" {
		version = cfg.UUID.Version
	}
	style := flags.Style
	if style == "" {
		style = cfg.UUID.Style
	}

	switch {
	case flags.Inspect != "":
		return inspect(flags.Inspect)
	case flags.Validate != "":
		return validate(flags.Validate)
	case flags.Format != "":
		return reformat(flags.Format, style)
	default:
		return generate(flags.Count, version, flags.Namespace, flags.Name, style)
	}
}

func generate(count int, version, namespace, name, style string) error {
	if resolved, ok := namespaceKeywords[namespace]; ok {
		namespace = resolved
	}

	ids, err := uuid.GenerateBulk(count, version, namespace, name)
	if err != nil {
		return err
	}

	for _, id := range ids {
		if style != uuid.StyleStandard {
			if id, err = uuid.Format(id, style); err != nil {
				return err
			}
		}
		fmt.Println(id)
	}
	return nil
}

func inspect(s string) error {
	info := uuid.Parse(s)

	b, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(b))

	if !info.IsValid {
		return fmt.Errorf("%w: %q", ErrInvalidUUID, s)
	}
	return nil
}

func validate(s string) error {
	if !uuid.IsValid(s) {
		return fmt.Errorf("%w: %q", ErrInvalidUUID, s)
	}
	fmt.Println("valid")
	return nil
}

func reformat(s, style string) error {
	out, err := uuid.Format(s, style)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}
