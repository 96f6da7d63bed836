package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/opmodel/droidcraft/internal/cmdtypes"
	"github.com/opmodel/droidcraft/internal/cmdutil"
	oerrors "github.com/opmodel/droidcraft/internal/errors"
	"github.com/opmodel/droidcraft/internal/output"
	"github.com/opmodel/droidcraft/internal/project"
)

const catalogPath = "gradle/libs.versions.toml"

// FileRecord is one generated file in json or yaml preview output.
// Binary content is base64 encoded and flagged by Encoding.
type FileRecord struct {
	Path     string              `json:"path" yaml:"path"`
	Kind     project.ContentKind `json:"kind" yaml:"kind"`
	Encoding string              `json:"encoding,omitempty" yaml:"encoding,omitempty"`
	Content  string              `json:"content" yaml:"content"`
}

// NewPreviewCmd creates the preview command.
func NewPreviewCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	var pf cmdutil.ProjectFlags
	var formatFlag, fileFlag string
	var checkFlag bool

	c := &cobra.Command{
		Use:   "preview [project-name]",
		Short: "Show the files a configuration generates",
		Long: `Show the files a configuration generates without writing anything.

Takes the same configuration flags as new. The default output is a summary
table followed by the file tree; -o json|yaml prints every file as a record.

Examples:
  # File tree for the default configuration
  droidcraft preview Weather

  # One file's content
  droidcraft preview Weather --file app/build.gradle.kts

  # All files as JSON, binary icons base64 encoded
  droidcraft preview Weather --groovy -o json

  # Parse the generated version catalog
  droidcraft preview Weather --check`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runPreview(c, args, gc, &pf, formatFlag, fileFlag, checkFlag)
		},
	}

	pf.AddTo(c)
	c.Flags().StringVarP(&formatFlag, "output", "o", string(output.FormatTree),
		"Output format: "+output.JoinFormats(output.PreviewFormats()))
	c.Flags().StringVar(&fileFlag, "file", "", "Print the content of one generated file")
	c.Flags().BoolVar(&checkFlag, "check", false, "Check generated files that can be parsed")

	return c
}

func runPreview(c *cobra.Command, args []string, gc *cmdtypes.GlobalConfig, pf *cmdutil.ProjectFlags, formatFlag, fileFlag string, check bool) error {
	format, err := output.ParseOutputFormat(formatFlag, output.PreviewFormats()...)
	if err != nil {
		return oerrors.NewExitError(oerrors.NewValidationError(err.Error(), "", "output", ""), oerrors.ExitValidationError)
	}

	cfg, err := pf.Build(c, cmdutil.ResolveProjectName(args), gc.Settings())
	if err != nil {
		return oerrors.NewExitError(err, oerrors.ExitCodeFromError(err))
	}
	if err := project.Validate(cfg); err != nil {
		return cmdutil.ValidationFailure(err)
	}

	s := project.Generate(cfg)

	switch {
	case fileFlag != "":
		return printFile(s, fileFlag)
	case check:
		return checkStructure(s)
	}

	switch format {
	case output.FormatJSON:
		data, err := json.MarshalIndent(Records(s), "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling preview: %w", err)
		}
		output.Println(string(data))
	case output.FormatYAML:
		data, err := yaml.Marshal(Records(s))
		if err != nil {
			return fmt.Errorf("marshaling preview: %w", err)
		}
		output.Print(string(data))
	default:
		output.Println(output.RenderKeyValueTable("Setting", "Value", cmdutil.SummaryRows(cfg)))
		output.Println("")
		output.Print(cmdutil.FileTree(cfg.ProjectName, s))
		output.Println("")
		output.Println(output.StyleDim.Render(fmt.Sprintf("%d files", s.Len())))
	}
	return nil
}

// Records converts a structure into preview records in generation order.
func Records(s project.Structure) []FileRecord {
	records := make([]FileRecord, len(s.Files))
	for i, f := range s.Files {
		r := FileRecord{
			Path:    f.Path,
			Kind:    f.Content.Kind(),
			Content: f.Content.String(),
		}
		if f.Content.IsBinary() {
			r.Encoding = "base64"
		}
		records[i] = r
	}
	return records
}

func printFile(s project.Structure, path string) error {
	f, ok := s.Lookup(strings.TrimPrefix(path, "./"))
	if !ok {
		return oerrors.NewExitError(oerrors.NewNotFoundError(
			fmt.Sprintf("no generated file %q", path),
			"",
			"Run 'droidcraft preview' to list the generated paths.",
		), oerrors.ExitNotFound)
	}
	output.Print(string(f.Content.Bytes()))
	return nil
}

// checkStructure parses what can be parsed and reports each check.
func checkStructure(s project.Structure) error {
	seen := make(map[string]bool, s.Len())
	for _, p := range s.Paths() {
		if seen[p] {
			return oerrors.NewExitError(oerrors.NewValidationError(
				"duplicate generated path", p, "", ""), oerrors.ExitValidationError)
		}
		seen[p] = true
	}
	output.Println(output.FormatVetCheck("Unique paths", fmt.Sprintf("%d files", s.Len())))

	f, ok := s.Lookup(catalogPath)
	if !ok {
		output.Println(output.FormatVetCheck("Version catalog", "not generated for Groovy builds"))
		return nil
	}
	doc, err := project.ParseCatalog(f.Content.String())
	if err != nil {
		return oerrors.NewExitError(oerrors.NewValidationError(err.Error(), catalogPath, "", ""), oerrors.ExitValidationError)
	}
	output.Println(output.FormatVetCheck("Version catalog",
		fmt.Sprintf("%d versions, %d libraries, %d plugins", len(doc.Versions), len(doc.Libraries), len(doc.Plugins))))
	return nil
}
