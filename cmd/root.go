/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/profile"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile    string
	configUsed string // Set by initConfig once a config file has been read
	configErr  error  // Reading an explicit --config file failed
	appFs      = afero.NewOsFs()
	profiler   interface{ Stop() }
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "objnorm",
	Short: "Recenters and rescales .objm mesh files",
	Long: `
Reads meshes in .objm format (the "v ", "vn" and "f " lines of a Wavefront OBJ
file), moves the centroid of the vertices to the origin, scales the vertices so
the largest coordinate magnitude maps to a target bound, and writes the result.

objnorm normalize rawModels/sedanPoly.objm models/sedan.objm`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRun:  startProfile,
	PersistentPostRun: stopProfile,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err.Error())
		os.Exit(1)
	}
}

func execute() (err error) {
	if err = rootCmd.Execute(); err != nil {
		// PersistentPostRun is skipped when a command fails
		stopProfile(rootCmd, nil)
	}
	return
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.objnorm.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log every step, print the manifest before running it")
	rootCmd.PersistentFlags().String("cpuprofile", "", "directory to write a CPU profile into")
}

// initConfig reads in config file if set.
func initConfig() {
	configUsed, configErr = "", nil
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		// Search config in home directory with name ".objnorm" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".objnorm")
	}
	if err := viper.ReadInConfig(); err == nil {
		configUsed = viper.ConfigFileUsed()
	} else if cfgFile != "" {
		configErr = fmt.Errorf("unable to read config file %s: %w", cfgFile, err)
	}
}

func newLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:  level,
		Prefix: "objnorm",
	})
}

func startProfile(cmd *cobra.Command, args []string) {
	dir, _ := cmd.Flags().GetString("cpuprofile")
	if dir == "" {
		return
	}
	profiler = profile.Start(profile.CPUProfile, profile.ProfilePath(dir), profile.Quiet, profile.NoShutdownHook)
}

func stopProfile(cmd *cobra.Command, args []string) {
	if profiler != nil {
		profiler.Stop()
		profiler = nil
	}
}
