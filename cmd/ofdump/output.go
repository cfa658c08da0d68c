/*
Licensed to the Apache Software Foundation (ASF) under one
or more contributor license agreements.  See the NOTICE file
distributed with this work for additional information
regarding copyright ownership.  The ASF licenses this file
to you under the Apache License, Version 2.0 (the
"License"); you may not use this file except in compliance
with the License.  You may obtain a copy of the License at

  http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing,
software distributed under the License is distributed on an
"AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
KIND, either express or implied.  See the License for the
specific language governing permissions and limitations
under the License.
*/

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/davecgh/go-spew/spew"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"sigs.k8s.io/yaml"

	"github.com/k-vswitch/ofproto/flows"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
	formatSpew = "spew"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func run(out io.Writer, stdin io.Reader, args []string, opts *options) error {
	hint, err := parseVersionHint(opts.versionHint)
	if err != nil {
		return err
	}

	buf, err := readInput(args, opts.file, stdin)
	if err != nil {
		return err
	}

	records := decodeFrames(buf, hint)
	if err := write(out, opts.format, records); err != nil {
		return err
	}

	failed := 0
	for _, r := range records {
		if r.Error != "" {
			failed++
		}
	}
	if failed > 0 {
		return errors.Errorf("%d of %d messages failed to decode", failed, len(records))
	}
	return nil
}

func write(out io.Writer, format string, records []record) error {
	switch strings.ToLower(format) {
	case formatText, "":
		return writeText(out, records)
	case formatJSON:
		b, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return errors.Wrap(err, "error marshaling records to json")
		}
		_, err = fmt.Fprintf(out, "%s\n", b)
		return err
	case formatYAML:
		b, err := yaml.Marshal(records)
		if err != nil {
			return errors.Wrap(err, "error marshaling records to yaml")
		}
		_, err = out.Write(b)
		return err
	case formatSpew:
		for _, r := range records {
			if r.msg == nil {
				fmt.Fprintf(out, "error: %s\n", r.Error)
				continue
			}
			spew.Fdump(out, r.msg)
		}
		return nil
	}
	return errors.Errorf("unknown output format %q", format)
}

func writeText(out io.Writer, records []record) error {
	buffer := flows.NewFlowsBuffer()
	for _, r := range records {
		line := []string{r.Protocol, r.Type, fmt.Sprintf("xid=%#x", r.Xid), fmt.Sprintf("len=%d", r.Length)}
		if r.Protocol == "" {
			line = []string{"-", fmt.Sprintf("len=%d", r.Length)}
		}
		if r.Summary != "" {
			line = append(line, r.Summary)
		}
		if r.Packet != "" {
			line = append(line, "packet="+r.Packet)
		}
		if r.Error != "" {
			line = append(line, "error="+r.Error)
		}
		if _, err := fmt.Fprintln(out, strings.Join(line, " ")); err != nil {
			return errors.Wrap(err, "failed to write record")
		}

		for _, f := range r.flows {
			buffer.AddFlow(f)
		}
		if err := buffer.Flush(out); err != nil {
			return err
		}
	}
	return nil
}
