package hub

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"strings"

	"github.com/jfrog/jfrog-client-go/utils/errorutils"
	"github.com/jfrog/jfrog-client-go/utils/log"
)

const (
	endpointEnv    = "HF_ENDPOINT"
	hfTransferEnv  = "HF_HUB_ENABLE_HF_TRANSFER"
	defaultMessage = "Upload model checkpoint"
)

// RepoCreator creates a Hub repository if it doesn't exist yet.
type RepoCreator interface {
	CreateRepo(repoId string, private bool) (string, error)
	Endpoint() string
	RepoType() string
}

// runPythonFunc runs the Python program and returns its combined output.
type runPythonFunc func(pythonPath, program string, args []string, env []string) ([]byte, error)

// PythonModelStore uploads a checkpoint folder through the huggingface_hub Python library.
// The repository is created private first, the way the model store of the training
// pipeline does, so nothing is exposed before the upload completes.
type PythonModelStore struct {
	creator       RepoCreator
	token         string
	revision      string
	commitMessage string
	installDeps   bool
	hfTransfer    bool
	pythonPath    string
	runPython     runPythonFunc
}

func NewPythonModelStore(creator RepoCreator) *PythonModelStore {
	return &PythonModelStore{creator: creator, commitMessage: defaultMessage, runPython: runPythonProgram}
}

func (s *PythonModelStore) SetToken(token string) *PythonModelStore {
	s.token = token
	return s
}

// SetRevision sets the branch the commit is pushed to
func (s *PythonModelStore) SetRevision(revision string) *PythonModelStore {
	s.revision = revision
	return s
}

func (s *PythonModelStore) SetCommitMessage(commitMessage string) *PythonModelStore {
	if commitMessage != "" {
		s.commitMessage = commitMessage
	}
	return s
}

// SetInstallDependencies installs huggingface_hub (and hf_transfer when enabled) when missing
func (s *PythonModelStore) SetInstallDependencies(installDeps bool) *PythonModelStore {
	s.installDeps = installDeps
	return s
}

func (s *PythonModelStore) SetHFTransfer(hfTransfer bool) *PythonModelStore {
	s.hfTransfer = hfTransfer
	return s
}

// SetPythonPath skips interpreter discovery
func (s *PythonModelStore) SetPythonPath(pythonPath string) *PythonModelStore {
	s.pythonPath = pythonPath
	return s
}

// UploadModel creates the repository (private, exist_ok) and uploads modelDir to it.
// It returns the URL of the created commit.
func (s *PythonModelStore) UploadModel(modelDir, repoId string) (string, error) {
	if modelDir == "" {
		return "", errorutils.CheckErrorf("folder_path cannot be empty")
	}
	if repoId == "" {
		return "", errorutils.CheckErrorf("repo_id cannot be empty")
	}
	repoUrl, err := s.creator.CreateRepo(repoId, true)
	if err != nil {
		return "", err
	}
	log.Debug("Uploading to repository", repoUrl)
	pythonPath, err := s.resolvePython()
	if err != nil {
		return "", err
	}
	argsJSON, err := json.Marshal(s.uploadArgs(modelDir, repoId))
	if err != nil {
		return "", errorutils.CheckErrorf("failed to marshal arguments to JSON: %w", err)
	}
	log.Debug("Executing Python function to upload", s.creator.RepoType()+":", modelDir, "to", repoId)
	output, err := s.runPython(pythonPath, uploadProgram, []string{string(argsJSON)}, s.environment())
	result, err := parsePythonOutput(output, err)
	if err != nil {
		return "", err
	}
	log.Info("Uploaded successfully to:", repoId)
	return result.CommitUrl, nil
}

func (s *PythonModelStore) resolvePython() (string, error) {
	pythonPath := s.pythonPath
	if pythonPath == "" {
		var err error
		if pythonPath, err = FindPython(); err != nil {
			return "", err
		}
	}
	if !s.installDeps {
		return pythonPath, nil
	}
	if err := EnsurePythonPackage(pythonPath, "huggingface_hub", "huggingface_hub"); err != nil {
		return "", err
	}
	if s.hfTransfer {
		if err := EnsurePythonPackage(pythonPath, "hf_transfer", "hf_transfer"); err != nil {
			return "", err
		}
	}
	return pythonPath, nil
}

func (s *PythonModelStore) uploadArgs(modelDir, repoId string) map[string]interface{} {
	args := map[string]interface{}{
		"folder_path":    modelDir,
		"repo_id":        repoId,
		"repo_type":      s.creator.RepoType(),
		"commit_message": s.commitMessage,
	}
	if s.revision != "" {
		args["revision"] = s.revision
	}
	return args
}

func (s *PythonModelStore) environment() []string {
	env := os.Environ()
	if endpoint := s.creator.Endpoint(); endpoint != "" {
		env = append(env, endpointEnv+"="+endpoint)
	}
	// The token is never put on the command line
	if s.token != "" {
		env = append(env, tokenEnv+"="+s.token)
	}
	if s.hfTransfer {
		env = append(env, hfTransferEnv+"=1")
	}
	return env
}

// parsePythonOutput reads the last JSON line the upload program printed.
// Output from huggingface_hub progress bars may precede it.
func parsePythonOutput(output []byte, execErr error) (*PythonResult, error) {
	output = bytes.TrimSpace(output)
	if len(output) == 0 {
		if execErr != nil {
			return nil, errorutils.CheckErrorf("Python script produced no output and exited with error: %w", execErr)
		}
		return nil, errorutils.CheckErrorf("Python script produced no output. The script may not be executing correctly.")
	}
	lines := strings.Split(string(output), "\n")
	lastLine := strings.TrimSpace(lines[len(lines)-1])
	var result PythonResult
	if jsonErr := json.Unmarshal([]byte(lastLine), &result); jsonErr != nil {
		if execErr != nil {
			return nil, errorutils.CheckErrorf("failed to execute Python script: %w, output: %s", execErr, string(output))
		}
		return nil, errorutils.CheckErrorf("failed to parse Python script output: %w, output: %s", jsonErr, string(output))
	}
	if !result.Success {
		return nil, errorutils.CheckErrorf("%s", result.Error)
	}
	if execErr != nil {
		return nil, errorutils.CheckErrorf("Python script execution failed: %w", execErr)
	}
	return &result, nil
}

func runPythonProgram(pythonPath, program string, args []string, env []string) ([]byte, error) {
	cmd := exec.Command(pythonPath, append([]string{"-c", program}, args...)...)
	cmd.Env = env
	return cmd.CombinedOutput()
}
