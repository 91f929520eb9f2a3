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

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/objnorm/InputParameters"
	"github.com/notargets/objnorm/convert"
)

// NormalizeCmd represents the normalize command
var NormalizeCmd = &cobra.Command{
	Use:   "normalize [inFile outFile]",
	Short: "Normalize one mesh file, a manifest of files, or the built-in vehicle models",
	Long: `
With two arguments, normalizes inFile into outFile.
With --manifest, normalizes every pair listed in the YAML manifest, for example:
` + exampleManifest + `
With neither, normalizes the built-in vehicle models:
	rawModels/{sedan,pickup,suv,minivan,bus}Poly.objm -> models/{sedan,pickup,suv,minivan,bus}.objm

Processing stops at the first file that fails.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 0 && len(args) != 2 {
			return fmt.Errorf("need both an input and an output file, got %d argument(s)", len(args))
		}
		if len(args) == 2 && cmd.Flags().Changed("manifest") {
			return fmt.Errorf("give either file arguments or --manifest, not both")
		}
		return nil
	},
	RunE: runNormalize,
}

const exampleManifest = `
########################################
Title: "Vehicle models"
MaxDistance: 0.75
Conversions:
  - Input: rawModels/sedanPoly.objm
    Output: models/sedan.objm
  - Input: rawModels/busPoly.objm
    Output: models/bus.objm
########################################
`

func init() {
	rootCmd.AddCommand(NormalizeCmd)
	NormalizeCmd.Flags().StringP("manifest", "M", "", "YAML manifest of input/output pairs")
	NormalizeCmd.Flags().Float64("maxDistance", 0, "bound the largest raw coordinate magnitude is scaled to (default 0.75, or the manifest's MaxDistance)")
	NormalizeCmd.Flags().Bool("dryRun", false, "read and normalize without writing any files")
	if err := bindFlags(); err != nil {
		panic(err)
	}
}

// bindFlags lets the config file supply defaults for the normalize flags
func bindFlags() (err error) {
	for _, name := range []string{"manifest", "maxDistance"} {
		if err = viper.BindPFlag(name, NormalizeCmd.Flags().Lookup(name)); err != nil {
			return fmt.Errorf("binding flag %s: %w", name, err)
		}
	}
	return
}

func runNormalize(cmd *cobra.Command, args []string) (err error) {
	var (
		bp *InputParameters.BatchParameters
	)
	if configErr != nil {
		return configErr
	}
	verbose, _ := cmd.Flags().GetBool("verbose")
	logger := newLogger(cmd.ErrOrStderr(), verbose)
	if configUsed != "" {
		logger.Debug("using config", "file", configUsed)
	}
	conv := convert.NewConverter(appFs, logger, viper.GetFloat64("maxDistance"))
	conv.DryRun, _ = cmd.Flags().GetBool("dryRun")

	if len(args) == 2 {
		return conv.Convert(args[0], args[1])
	}
	if manifest := viper.GetString("manifest"); manifest != "" {
		if bp, err = InputParameters.ReadBatchFile(appFs, manifest); err != nil {
			return
		}
	} else {
		bp = InputParameters.DefaultBatch()
	}
	if verbose {
		bp.Print(cmd.OutOrStdout())
	}
	return conv.RunBatch(bp)
}
