package cmd

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/procsim/procsim/sim/workload"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert process files between the line format and YAML",
	Long:  "Convert process files between the classic line format and YAML specs. Output is written to stdout for piping.",
}

// --- procsim convert yaml ---

var convertYAMLPath string

var convertYAMLCmd = &cobra.Command{
	Use:   "yaml",
	Short: "Convert a line-format process file to a YAML spec",
	Run: func(cmd *cobra.Command, args []string) {
		if err := convertFile(convertYAMLPath, cmd.OutOrStdout(), workload.EncodeYAML); err != nil {
			logrus.Fatalf("YAML conversion failed: %v", err)
		}
	},
}

// --- procsim convert text ---

var convertTextPath string

var convertTextCmd = &cobra.Command{
	Use:   "text",
	Short: "Convert a YAML spec to a line-format process file",
	Run: func(cmd *cobra.Command, args []string) {
		if err := convertFile(convertTextPath, cmd.OutOrStdout(), workload.MarshalProcessFile); err != nil {
			logrus.Fatalf("Text conversion failed: %v", err)
		}
	},
}

// convertFile loads and validates path (either format), then encodes it to w.
func convertFile(path string, w io.Writer, encode func(io.Writer, *workload.Spec) error) error {
	spec, err := workload.LoadSpec(path)
	if err != nil {
		return err
	}
	if err := spec.Validate(); err != nil {
		return err
	}
	return encode(w, spec)
}

func init() {
	convertYAMLCmd.Flags().StringVar(&convertYAMLPath, "file", defaultInputPath, "Path to line-format process file")
	convertTextCmd.Flags().StringVar(&convertTextPath, "file", "", "Path to YAML spec")
	_ = convertTextCmd.MarkFlagRequired("file")

	convertCmd.AddCommand(convertYAMLCmd)
	convertCmd.AddCommand(convertTextCmd)

	rootCmd.AddCommand(convertCmd)
}
