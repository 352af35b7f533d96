package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	clientlog "github.com/jfrog/jfrog-client-go/utils/log"
	"github.com/miner-utils/hf-uploader/checkpoint"
	"github.com/stretchr/testify/require"
)

type fakeValidator struct {
	validateErr   error
	describeErr   error
	files         []checkpoint.FileDetails
	validateCalls int
	describeCalls int
}

func (f *fakeValidator) Validate(string, string) error {
	f.validateCalls++
	return f.validateErr
}

func (f *fakeValidator) Describe(string, string) ([]checkpoint.FileDetails, error) {
	f.describeCalls++
	return f.files, f.describeErr
}

type uploadCall struct {
	modelDir string
	repoId   string
}

type fakeStore struct {
	commitUrl string
	err       error
	calls     []uploadCall
}

func (f *fakeStore) UploadModel(modelDir, repoId string) (string, error) {
	f.calls = append(f.calls, uploadCall{modelDir: modelDir, repoId: repoId})
	if f.err != nil {
		return "", f.err
	}
	return f.commitUrl, nil
}

type visibilityCall struct {
	repoId  string
	private bool
}

type fakeVisibility struct {
	err   error
	calls []visibilityCall
}

func (f *fakeVisibility) UpdateRepoVisibility(repoId string, private bool) error {
	f.calls = append(f.calls, visibilityCall{repoId: repoId, private: private})
	return f.err
}

type passingChecker struct{}

func (passingChecker) CheckConfig(string) error {
	return nil
}

// captureLog redirects the jfrog logger into a buffer for the duration of the test
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	originalLogLevel := clientlog.GetLogger().GetLogLevel()
	buffer := &bytes.Buffer{}
	clientlog.SetLogger(clientlog.NewLogger(clientlog.INFO, buffer))
	t.Cleanup(func() { clientlog.SetLogger(clientlog.NewLogger(originalLogLevel, nil)) })
	return buffer
}

func createCheckpoint(t *testing.T, epoch string, files ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("data of "+name+" for epoch "+epoch), 0644))
	}
	return dir
}
