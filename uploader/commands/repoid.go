package commands

import "strings"

const repoIdFlagName = "hf_repo_id"

type RepoId struct {
	Namespace string
	Name      string
}

func (r RepoId) String() string {
	return r.Namespace + "/" + r.Name
}

// ParseRepoId splits namespace/name. Anything but exactly two non-empty parts is a ConfigError.
func ParseRepoId(repoId string) (RepoId, error) {
	parts := strings.Split(repoId, "/")
	if len(parts) != 2 {
		return RepoId{}, &ConfigError{Field: repoIdFlagName, Value: repoId, Reason: "expected the form <namespace>/<name>"}
	}
	if parts[0] == "" || parts[1] == "" {
		return RepoId{}, &ConfigError{Field: repoIdFlagName, Value: repoId, Reason: "namespace and name cannot be empty"}
	}
	return RepoId{Namespace: parts[0], Name: parts[1]}, nil
}
