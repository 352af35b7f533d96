package hub

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/jfrog/jfrog-client-go/http/jfroghttpclient"
	"github.com/jfrog/jfrog-client-go/utils/errorutils"
	"github.com/jfrog/jfrog-client-go/utils/io/httputils"
	"github.com/jfrog/jfrog-client-go/utils/log"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

const (
	DefaultEndpoint = "https://huggingface.co"
	DefaultRepoType = "model"
)

var supportedRepoTypes = []string{"model", "dataset", "space"}

type createRepoRequest struct {
	Name         string `json:"name"`
	Organization string `json:"organization,omitempty"`
	Private      bool   `json:"private"`
	Type         string `json:"type,omitempty"`
}

type createRepoResponse struct {
	Url string `json:"url"`
}

type repoSettingsRequest struct {
	Private bool `json:"private"`
}

type whoAmIResponse struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Client talks to the Hugging Face Hub REST API.
type Client struct {
	endpoint string
	token    string
	repoType string
	client   *jfroghttpclient.JfrogHttpClient
}

func NewClient(endpoint, token string) (*Client, error) {
	endpoint = strings.TrimRight(strings.TrimSpace(endpoint), "/")
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	cli, err := jfroghttpclient.JfrogClientBuilder().Build()
	if err != nil {
		return nil, errorutils.CheckError(err)
	}
	return &Client{endpoint: endpoint, token: token, repoType: DefaultRepoType, client: cli}, nil
}

// SetRepoType sets the repository type (model, dataset or space) used by all requests
func (c *Client) SetRepoType(repoType string) *Client {
	if repoType != "" {
		c.repoType = repoType
	}
	return c
}

func (c *Client) Endpoint() string {
	return c.endpoint
}

func (c *Client) RepoType() string {
	return c.repoType
}

func (c *Client) HasToken() bool {
	return c.token != ""
}

// CreateRepo creates the repository, treating an already existing one as success.
// It returns the repository URL.
func (c *Client) CreateRepo(repoId string, private bool) (string, error) {
	if err := ValidateRepoType(c.repoType); err != nil {
		return "", err
	}
	organization, name, found := strings.Cut(repoId, "/")
	if !found {
		organization, name = "", repoId
	}
	request := createRepoRequest{Name: name, Organization: organization, Private: private}
	if c.repoType != DefaultRepoType {
		request.Type = c.repoType
	}
	content, err := json.Marshal(request)
	if err != nil {
		return "", errorutils.CheckError(err)
	}
	createUrl := c.endpoint + "/api/repos/create"
	resp, body, err := c.client.SendPost(createUrl, content, c.jsonDetails())
	if err != nil {
		return "", errors.Wrapf(err, "failed to create repository %s", repoId)
	}
	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		var response createRepoResponse
		if err = json.Unmarshal(body, &response); err == nil && response.Url != "" {
			log.Debug("Created repository", response.Url)
			return response.Url, nil
		}
	case http.StatusConflict:
		log.Debug("Repository", repoId, "already exists")
	default:
		return "", errorutils.CheckErrorf("failed to create repository %s: server returned status %d: %s", repoId, resp.StatusCode, string(body))
	}
	return c.RepoUrl(repoId), nil
}

// UpdateRepoVisibility marks the repository private or public.
func (c *Client) UpdateRepoVisibility(repoId string, private bool) error {
	if err := ValidateRepoType(c.repoType); err != nil {
		return err
	}
	content, err := json.Marshal(repoSettingsRequest{Private: private})
	if err != nil {
		return errorutils.CheckError(err)
	}
	settingsUrl := fmt.Sprintf("%s/api/%ss/%s/settings", c.endpoint, c.repoType, repoId)
	resp, body, err := c.client.SendPut(settingsUrl, content, c.jsonDetails())
	if err != nil {
		return errors.Wrapf(err, "failed to update settings of %s", repoId)
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return errorutils.CheckErrorf("failed to update settings of %s: server returned status %d: %s", repoId, resp.StatusCode, string(body))
	}
	log.Debug("Updated visibility of", repoId, "private:", private)
	return nil
}

// WhoAmI returns the account name the configured token belongs to.
func (c *Client) WhoAmI() (string, error) {
	if c.token == "" {
		return "", errorutils.CheckErrorf("no Hugging Face token configured. Set HF_TOKEN or log in with 'hf auth login'")
	}
	resp, body, _, err := c.client.SendGet(c.endpoint+"/api/whoami-v2", true, c.details())
	if err != nil {
		return "", errors.Wrap(err, "whoami request failed")
	}
	if resp.StatusCode != http.StatusOK {
		return "", errorutils.CheckErrorf("whoami returned status %d: %s", resp.StatusCode, string(body))
	}
	var response whoAmIResponse
	if err = json.Unmarshal(body, &response); err != nil {
		return "", errorutils.CheckErrorf("failed to parse whoami response: %s", err.Error())
	}
	return response.Name, nil
}

// RepoUrl returns the browser URL of a repository on the configured endpoint.
func (c *Client) RepoUrl(repoId string) string {
	if c.repoType == DefaultRepoType {
		return c.endpoint + "/" + repoId
	}
	return fmt.Sprintf("%s/%ss/%s", c.endpoint, c.repoType, repoId)
}

func (c *Client) details() *httputils.HttpClientDetails {
	details := httputils.HttpClientDetails{Headers: map[string]string{}}
	if c.token != "" {
		details.Headers["Authorization"] = "Bearer " + c.token
	}
	return &details
}

func (c *Client) jsonDetails() *httputils.HttpClientDetails {
	details := c.details()
	details.Headers["Content-Type"] = "application/json"
	return details
}

// ValidateRepoType fails for anything other than model, dataset or space.
func ValidateRepoType(repoType string) error {
	if slices.Contains(supportedRepoTypes, repoType) {
		return nil
	}
	return errorutils.CheckErrorf("unsupported repository type '%s'. Supported types: %s", repoType, strings.Join(supportedRepoTypes, ", "))
}
