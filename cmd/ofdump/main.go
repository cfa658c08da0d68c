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
	"flag"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"k8s.io/klog"
)

type options struct {
	format      string
	file        string
	versionHint string
	config      string
}

func newRootCommand(out io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:          "ofdump [hex message...]",
		Short:        "Decode OpenFlow 1.0 and 1.3 messages",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.config == "" {
				return nil
			}
			return loadConfig(opts.config, cmd.Flags(), opts)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(out, cmd.InOrStdin(), args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "o", formatText, "output format: text, json, yaml or spew")
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "read binary messages from a file, - for stdin")
	cmd.Flags().StringVar(&opts.versionHint, "version-hint", "", "decode every message as OpenFlow 1.0 or 1.3 instead of by its version byte")
	cmd.PersistentFlags().StringVarP(&opts.config, "config", "c", "", "location of an ofdump TOML config file")

	return cmd
}

func main() {
	klog.InitFlags(flag.CommandLine)
	pflag.CommandLine.AddGoFlagSet(flag.CommandLine)

	cmd := newRootCommand(os.Stdout)
	cmd.PersistentFlags().AddFlagSet(pflag.CommandLine)

	err := cmd.Execute()
	klog.Flush()
	if err != nil {
		os.Exit(1)
	}
}
