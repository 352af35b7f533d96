package checkpoint

import (
	"slices"
	"strings"
)

const epochPlaceholder = "{epoch}"

// DefaultConfigFileName is the configuration artifact every checkpoint carries.
const DefaultConfigFileName = "config.json"

const weightsFileTemplate = "meta_model_{epoch}.pt"

// DefaultRequiredFiles lists the files a checkpoint must contain for an epoch.
// "{epoch}" is replaced by the epoch the upload was requested for.
var DefaultRequiredFiles = []string{weightsFileTemplate, DefaultConfigFileName}

// Manifest maps an epoch to the ordered list of files a checkpoint directory must hold.
type Manifest struct {
	templates []string
}

// NewManifest creates a manifest with the default templates followed by any extra ones.
func NewManifest(extra ...string) *Manifest {
	return NewConfigManifest(DefaultConfigFileName, extra...)
}

// NewConfigManifest is NewManifest with configFile required in place of config.json.
func NewConfigManifest(configFile string, extra ...string) *Manifest {
	configFile = strings.TrimSpace(configFile)
	if configFile == "" {
		configFile = DefaultConfigFileName
	}
	templates := make([]string, 0, len(extra)+2)
	templates = append(templates, weightsFileTemplate)
	for _, template := range append([]string{configFile}, extra...) {
		template = strings.TrimSpace(template)
		if template == "" || slices.Contains(templates, template) {
			continue
		}
		templates = append(templates, template)
	}
	return &Manifest{templates: templates}
}

// RequiredFiles returns the file names required for the given epoch, in manifest order.
func (m *Manifest) RequiredFiles(epoch string) []string {
	files := make([]string, 0, len(m.templates))
	for _, template := range m.templates {
		files = append(files, strings.ReplaceAll(template, epochPlaceholder, epoch))
	}
	return files
}

// RequiredFiles returns the default manifest entries for the given epoch.
func RequiredFiles(epoch string) []string {
	return NewManifest().RequiredFiles(epoch)
}
