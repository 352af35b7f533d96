package commands

import (
	"encoding/json"
	"strings"

	"github.com/docker/go-units"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/jfrog/jfrog-cli-core/v2/utils/coreutils"
	clientutils "github.com/jfrog/jfrog-client-go/utils"
	"github.com/jfrog/jfrog-client-go/utils/errorutils"
	"github.com/jfrog/jfrog-client-go/utils/log"
	"github.com/miner-utils/hf-uploader/checkpoint"
	"github.com/pkg/errors"
)

const (
	FormatTable = "table"
	FormatJson  = "json"

	formatFlagName    = "format"
	visibilityPublic  = "public"
	visibilityPrivate = "private"
)

// Summary describes the checkpoint that was validated, and where it was uploaded to
type Summary struct {
	RepoId     string                   `json:"repo_id,omitempty"`
	Namespace  string                   `json:"namespace,omitempty"`
	Name       string                   `json:"name,omitempty"`
	ModelDir   string                   `json:"model_dir"`
	Epoch      string                   `json:"epoch"`
	CommitUrl  string                   `json:"commit_url,omitempty"`
	Visibility string                   `json:"visibility,omitempty"`
	Files      []checkpoint.FileDetails `json:"files"`
}

type summaryRow struct {
	Field string `col-name:"Field"`
	Value string `col-name:"Value"`
}

type fileRow struct {
	File   string `col-name:"File"`
	Size   string `col-name:"Size"`
	Sha256 string `col-name:"Sha256"`
}

func checkFormat(format string) error {
	switch strings.ToLower(format) {
	case "", FormatTable, FormatJson:
		return nil
	}
	return &ConfigError{Field: formatFlagName, Value: format, Reason: "supported formats are table and json"}
}

func printSummary(summary *Summary, format string) error {
	if strings.ToLower(format) == FormatJson {
		content, err := json.Marshal(summary)
		if err != nil {
			return errorutils.CheckError(err)
		}
		log.Output(clientutils.IndentJson(content))
		return nil
	}
	if err := coreutils.PrintTableWithBorderless(summaryRows(summary), text.FgCyan.Sprint("Checkpoint"), "", "No data found", false); err != nil {
		return errors.Wrap(err, "failed to print summary table")
	}
	if err := coreutils.PrintTableWithBorderless(fileRows(summary.Files), text.FgCyan.Sprint("Required Files"), "", "No required files", false); err != nil {
		return errors.Wrap(err, "failed to print required files table")
	}
	return nil
}

func summaryRows(summary *Summary) []summaryRow {
	var rows []summaryRow
	add := func(field, value string) {
		if value != "" {
			rows = append(rows, summaryRow{Field: text.FgHiBlue.Sprint(field), Value: text.FgGreen.Sprint(value)})
		}
	}
	add("Repository", summary.RepoId)
	add("Model Directory", summary.ModelDir)
	add("Epoch", summary.Epoch)
	add("Commit", summary.CommitUrl)
	add("Visibility", summary.Visibility)
	return rows
}

func fileRows(files []checkpoint.FileDetails) []fileRow {
	rows := make([]fileRow, 0, len(files))
	for _, file := range files {
		rows = append(rows, fileRow{
			File:   text.FgHiBlue.Sprint(file.Name),
			Size:   units.HumanSize(float64(file.Size)),
			Sha256: file.Sha256,
		})
	}
	return rows
}
