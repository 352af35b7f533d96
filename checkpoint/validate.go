package checkpoint

import (
	"path/filepath"

	"github.com/jfrog/gofrog/crypto"
	"github.com/jfrog/jfrog-client-go/utils/errorutils"
	"github.com/jfrog/jfrog-client-go/utils/io/fileutils"
	"github.com/jfrog/jfrog-client-go/utils/log"
)

// ManifestLookup resolves the files required for an epoch.
type ManifestLookup interface {
	RequiredFiles(epoch string) []string
}

// ConfigChecker performs the structural check of a checkpoint's configuration artifact.
type ConfigChecker interface {
	CheckConfig(dir string) error
}

// FileDetails describes one required checkpoint file.
type FileDetails struct {
	Name   string `json:"name"`
	Path   string `json:"path"`
	Size   int64  `json:"size"`
	Md5    string `json:"md5,omitempty"`
	Sha1   string `json:"sha1,omitempty"`
	Sha256 string `json:"sha256,omitempty"`
}

// Validator checks a checkpoint directory against a manifest before it is uploaded.
type Validator struct {
	manifest ManifestLookup
	checker  ConfigChecker
}

func NewValidator(manifest ManifestLookup, checker ConfigChecker) *Validator {
	if manifest == nil {
		manifest = NewManifest()
	}
	if checker == nil {
		checker = NewJSONConfigChecker()
	}
	return &Validator{manifest: manifest, checker: checker}
}

// Validate fails with *MissingFileError on the first required file that is absent from dir.
// When every file exists, the configuration check runs and its error is returned unchanged.
func (v *Validator) Validate(dir, epoch string) error {
	for _, filename := range v.manifest.RequiredFiles(epoch) {
		path := filepath.Join(dir, filename)
		if !fileutils.IsPathExists(path, false) {
			return &MissingFileError{Path: path, Dir: dir}
		}
		log.Debug("Found required checkpoint file:", path)
	}
	return v.checker.CheckConfig(dir)
}

// Describe returns size and checksums of the required files, in manifest order.
// It expects Validate to have passed.
func (v *Validator) Describe(dir, epoch string) ([]FileDetails, error) {
	var details []FileDetails
	for _, filename := range v.manifest.RequiredFiles(epoch) {
		path := filepath.Join(dir, filename)
		fileDetails, err := crypto.GetFileDetails(path, true)
		if err != nil {
			return nil, errorutils.CheckErrorf("failed to read details of %s: %s", path, err.Error())
		}
		details = append(details, FileDetails{
			Name:   filename,
			Path:   path,
			Size:   fileDetails.Size,
			Md5:    fileDetails.Checksum.Md5,
			Sha1:   fileDetails.Checksum.Sha1,
			Sha256: fileDetails.Checksum.Sha256,
		})
	}
	return details, nil
}
