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
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"k8s.io/klog"
)

type fileConfig struct {
	Format      string `toml:"format"`
	VersionHint string `toml:"version_hint"`
}

// loadConfig fills the options whose flags were not given on the command
// line from a TOML file.
func loadConfig(path string, flags *pflag.FlagSet, opts *options) error {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return errors.Wrap(err, "load ofdump config")
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		klog.Warningf("ignoring unknown config keys %v in %s", undecoded, path)
	}

	if meta.IsDefined("format") && !flags.Changed("format") {
		opts.format = strings.TrimSpace(raw.Format)
	}

	if meta.IsDefined("version_hint") && !flags.Changed("version-hint") {
		opts.versionHint = strings.TrimSpace(raw.VersionHint)
	}

	klog.V(4).Infof("loaded config %s: format=%q version_hint=%q", path, opts.format, opts.versionHint)
	return nil
}
