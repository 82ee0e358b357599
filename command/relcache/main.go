// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/citationcache/configuration"
	"github.com/bitmark-inc/citationcache/fault"
	"github.com/bitmark-inc/citationcache/repository"
	"github.com/bitmark-inc/citationcache/util"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "kind", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'k'},
		{Long: "list", HasArg: getoptions.NO_ARGUMENT, Short: 'l'},
		{Long: "get", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'g'},
		{Long: "clear", HasArg: getoptions.NO_ARGUMENT, Short: 'x'},
		{Long: "stats", HasArg: getoptions.NO_ARGUMENT, Short: 's'},
	}

	program, options, _, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	commands := 0
	for _, c := range []string{"list", "get", "clear", "stats"} {
		if len(options[c]) > 0 {
			commands += 1
		}
	}

	if len(options["help"]) > 0 || 1 != commands || 1 != len(options["config-file"]) || len(options["get"]) > 1 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--kind=citations|references] --config-file=FILE (--list | --get=DOI | --clear | --stats)", program)
	}

	verbose := len(options["verbose"]) > 0

	configurationFile := options["config-file"][0]
	if !util.EnsureFileExists(configurationFile) {
		exitwithstatus.Message("%s: configuration file: %q does not exist", program, configurationFile)
	}

	theConfiguration, err := configuration.GetConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	kinds := repository.Kinds
	if len(options["kind"]) > 0 {
		kind, err := repository.ParseKind(options["kind"][0])
		if nil != err {
			exitwithstatus.Message("%s: kind: %q  error: %s", program, options["kind"][0], err)
		}
		kinds = []repository.Kind{kind}
	}

	// start logging
	if verbose {
		theConfiguration.Logging.Console = true
	}
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("configuration: %v", theConfiguration)

	r, err := repository.Open(repository.Options{
		Directory:      theConfiguration.Relations.Directory,
		TTLDays:        theConfiguration.Relations.TTLDays,
		MemoryCapacity: theConfiguration.Relations.MemoryCapacity,
	})
	if nil != err {
		log.Criticalf("repository open error: %s", err)
		exitwithstatus.Message("%s: repository open error: %s", program, err)
	}
	defer r.Close()

	switch {
	case len(options["list"]) > 0:
		err = runList(os.Stdout, r, kinds)

	case len(options["get"]) > 0:
		err = runGet(os.Stdout, r, kinds, options["get"][0])

	case len(options["clear"]) > 0:
		runClear(r, kinds)

	case len(options["stats"]) > 0:
		err = runStats(os.Stdout, r, kinds)
	}

	if nil != err {
		log.Errorf("command error: %s", err)
		exitwithstatus.Message("%s: error: %s", program, err)
	}
}
