package hub

import (
	"os"
	"os/exec"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/jfrog/jfrog-client-go/utils/errorutils"
	"github.com/jfrog/jfrog-client-go/utils/log"
)

// huggingface_hub supports Python 3.8 and later
const pythonVersionConstraint = ">= 3.8.0"

var pythonCandidates = []string{"python3", "python"}

// uploadProgram runs upload_folder with the JSON keyword arguments of argv[1].
// Its last output line is always a PythonResult.
const uploadProgram = `import importlib, json, sys
try:
	hub = importlib.import_module("huggingface_hub")
	info = hub.upload_folder(**json.loads(sys.argv[1]))
	print(json.dumps({"success": True, "commit_url": str(getattr(info, "commit_url", info))}))
except Exception as e:
	print(json.dumps({"success": False, "error": str(e)}))
	sys.exit(1)`

type PythonResult struct {
	Success   bool   `json:"success"`
	CommitUrl string `json:"commit_url,omitempty"`
	Error     string `json:"error,omitempty"`
}

// FindPython returns the first interpreter of pythonCandidates on PATH that satisfies pythonVersionConstraint.
func FindPython() (string, error) {
	var lastErr error
	for _, candidate := range pythonCandidates {
		pythonPath, err := exec.LookPath(candidate)
		if err != nil {
			continue
		}
		if lastErr = verifyPythonVersion(pythonPath); lastErr == nil {
			log.Debug("Using Python interpreter", pythonPath)
			return pythonPath, nil
		}
		log.Debug("Skipping", pythonPath+":", lastErr.Error())
	}
	if lastErr != nil {
		return "", lastErr
	}
	return "", errorutils.CheckErrorf("no Python interpreter found in PATH (tried %s)", strings.Join(pythonCandidates, ", "))
}

func verifyPythonVersion(pythonPath string) error {
	output, err := exec.Command(pythonPath, "-c", "import sys; print('%d.%d.%d' % sys.version_info[:3])").Output()
	if err != nil {
		return errorutils.CheckErrorf("failed to get Python version: %w", err)
	}
	return checkPythonVersion(string(output))
}

func checkPythonVersion(versionOutput string) error {
	versionStr := strings.TrimSpace(versionOutput)
	version, err := semver.NewVersion(versionStr)
	if err != nil {
		return errorutils.CheckErrorf("failed to parse Python version '%s': %w", versionStr, err)
	}
	constraint, err := semver.NewConstraint(pythonVersionConstraint)
	if err != nil {
		return errorutils.CheckError(err)
	}
	if !constraint.Check(version) {
		return errorutils.CheckErrorf("Python version %s found, but version %s is required", version.String(), pythonVersionConstraint)
	}
	return nil
}

// pip flags tried in order. The second one is for interpreters marked externally managed.
var pipInstallModes = []string{"--user", "--break-system-packages"}

// EnsurePythonPackage pip installs packageName when importName can't be imported.
func EnsurePythonPackage(pythonPath, importName, packageName string) error {
	if exec.Command(pythonPath, "-c", "import "+importName).Run() == nil {
		return nil
	}
	log.Info("Installing", packageName, "for", pythonPath)
	var installErr error
	for _, mode := range pipInstallModes {
		cmd := exec.Command(pythonPath, "-m", "pip", "install", "--quiet", mode, packageName)
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		if installErr = cmd.Run(); installErr == nil {
			return nil
		}
		log.Debug("pip install", mode, packageName, "failed:", installErr.Error())
	}
	return errorutils.CheckErrorf("couldn't install %s with pip: %w", packageName, installErr)
}
