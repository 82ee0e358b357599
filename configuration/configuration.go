// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/citationcache/fault"
	"github.com/bitmark-inc/citationcache/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultRelationsDirectory = "relations"
	defaultTTLDays            = 30
	defaultMemoryCapacity     = 128

	defaultRequestsPerSecond = 1
	defaultBurst             = 1

	defaultLogDirectory = "log"
	defaultLogFile      = "relcache.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// RelationsType - the relation cache
type RelationsType struct {
	Directory      string `gluamapper:"directory" json:"directory"`
	TTLDays        int    `gluamapper:"ttl_days" json:"ttl_days"`
	MemoryCapacity int    `gluamapper:"memory_capacity" json:"memory_capacity"`
}

// FetcherType - limits on the remote lookup service
type FetcherType struct {
	RequestsPerSecond float64 `gluamapper:"requests_per_second" json:"requests_per_second"`
	Burst             int     `gluamapper:"burst" json:"burst"`
}

// Configuration - all settings
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Relations     RelationsType        `gluamapper:"relations" json:"relations"`
	Fetcher       FetcherType          `gluamapper:"fetcher" json:"fetcher"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// GetConfiguration - read, decode and verify the configuration
func GetConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		DataDirectory: defaultDataDirectory,

		Relations: RelationsType{
			Directory:      defaultRelationsDirectory,
			TTLDays:        defaultTTLDays,
			MemoryCapacity: defaultMemoryCapacity,
		},

		Fetcher: FetcherType{
			RequestsPerSecond: defaultRequestsPerSecond,
			Burst:             defaultBurst,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels: map[string]string{
				logger.DefaultTag: "critical",
			},
		},
	}

	if err := ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fault.ErrInvalidDirectory
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fault.ErrInvalidDirectory
	}

	if options.Relations.TTLDays < 0 {
		return nil, fault.ErrInvalidTTL
	}
	if options.Relations.MemoryCapacity <= 0 {
		return nil, fault.ErrInvalidCapacity
	}
	if options.Fetcher.RequestsPerSecond <= 0 {
		return nil, fault.ErrInvalidRate
	}
	if options.Fetcher.Burst <= 0 {
		return nil, fault.ErrInvalidBurst
	}

	// log file must be a plain name inside the log directory
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fault.ErrNotAPlainName
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Relations.Directory,
		&options.Logging.Directory,
	} {
		*d = util.EnsureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	// done
	return options, nil
}
