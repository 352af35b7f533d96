package checkpoint

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
)

// DefaultRequiredConfigKeys must be present in every checkpoint config.
var DefaultRequiredConfigKeys = []string{"model_type", "architectures", "hidden_size", "num_hidden_layers", "vocab_size"}

// Keys that must hold a positive integer whenever they appear.
var positiveIntConfigKeys = []string{"hidden_size", "num_hidden_layers", "vocab_size", "num_attention_heads", "max_position_embeddings"}

// JSONConfigChecker validates the structure of a Hugging Face style config.json.
type JSONConfigChecker struct {
	fileName     string
	requiredKeys []string
}

func NewJSONConfigChecker() *JSONConfigChecker {
	return &JSONConfigChecker{fileName: DefaultConfigFileName, requiredKeys: DefaultRequiredConfigKeys}
}

func (c *JSONConfigChecker) SetFileName(fileName string) *JSONConfigChecker {
	if fileName != "" {
		c.fileName = fileName
	}
	return c
}

func (c *JSONConfigChecker) SetRequiredKeys(keys []string) *JSONConfigChecker {
	if len(keys) > 0 {
		c.requiredKeys = keys
	}
	return c
}

// CheckConfig returns a *ConfigCheckError when the config file is unreadable or malformed.
func (c *JSONConfigChecker) CheckConfig(dir string) error {
	path := filepath.Join(dir, c.fileName)
	content, err := os.ReadFile(path)
	if err != nil {
		return &ConfigCheckError{Path: path, Reason: "failed to read config", Err: err}
	}
	decoder := json.NewDecoder(bytes.NewReader(content))
	decoder.UseNumber()
	var fields map[string]interface{}
	if err = decoder.Decode(&fields); err != nil {
		return &ConfigCheckError{Path: path, Reason: "config is not a JSON object", Err: err}
	}
	if fields == nil {
		return &ConfigCheckError{Path: path, Reason: "config is not a JSON object"}
	}
	for _, key := range c.requiredKeys {
		if _, ok := fields[key]; !ok {
			return &ConfigCheckError{Path: path, Reason: "missing required key '" + key + "'"}
		}
	}
	if value, ok := fields["architectures"]; ok {
		if !isNonEmptyStringList(value) {
			return &ConfigCheckError{Path: path, Reason: "'architectures' must be a non-empty list of strings"}
		}
	}
	if value, ok := fields["model_type"]; ok {
		if s, isString := value.(string); !isString || s == "" {
			return &ConfigCheckError{Path: path, Reason: "'model_type' must be a non-empty string"}
		}
	}
	for _, key := range positiveIntConfigKeys {
		value, ok := fields[key]
		if !ok {
			continue
		}
		if !isPositiveInt(value) {
			return &ConfigCheckError{Path: path, Reason: "'" + key + "' must be a positive integer"}
		}
	}
	return nil
}

func isNonEmptyStringList(value interface{}) bool {
	list, ok := value.([]interface{})
	if !ok || len(list) == 0 {
		return false
	}
	for _, item := range list {
		if s, isString := item.(string); !isString || s == "" {
			return false
		}
	}
	return true
}

func isPositiveInt(value interface{}) bool {
	number, ok := value.(json.Number)
	if !ok {
		return false
	}
	n, err := number.Int64()
	return err == nil && n > 0
}
