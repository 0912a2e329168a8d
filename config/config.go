package config

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v2"
)

// DefaultResourceGroupExclusionTagKey marks a resource group that must never be deleted when its value is "true".
const DefaultResourceGroupExclusionTagKey = "azure-rg-nuke-excluded"

// Config - the config object we pass around
type Config struct {
	// Providers lists the resource provider namespaces registered against the subscription before inventory.
	Providers     []string     `yaml:"providers"`
	ResourceGroup ResourceType `yaml:"ResourceGroup"`
}

type ResourceType struct {
	IncludeRule FilterRule `yaml:"include"`
	ExcludeRule FilterRule `yaml:"exclude"`
}

type FilterRule struct {
	NamesRegExp []Expression          `yaml:"names_regex"`
	Tags        map[string]Expression `yaml:"tags"`
	Tag         *string               `yaml:"tag"` // Exclusion tag key override. Only honored under ExcludeRule.
}

type Expression struct {
	RE regexp.Regexp
}

// UnmarshalText - Internally used by yaml.Unmarshal to unmarshall an Expression field
func (expression *Expression) UnmarshalText(data []byte) error {
	var pattern string

	if err := yaml.Unmarshal(data, &pattern); err != nil {
		return err
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return err
	}

	expression.RE = *re

	return nil
}

// GetConfig - Unmarshall the config file and parse it into a config object.
func GetConfig(filePath string) (*Config, error) {
	var configObj Config

	absolutePath, err := filepath.Abs(filePath)
	if err != nil {
		return nil, err
	}

	yamlFile, err := os.ReadFile(absolutePath)
	if err != nil {
		return nil, err
	}

	err = yaml.Unmarshal(yamlFile, &configObj)
	if err != nil {
		return nil, err
	}

	return &configObj, nil
}

func matches(name string, regexps []Expression) bool {
	for _, re := range regexps {
		if re.RE.MatchString(name) {
			return true
		}
	}
	return false
}

// ShouldInclude - Checks if a resource's Name should be included according to the inclusion and exclusion rules
func ShouldInclude(name string, includeREs []Expression, excludeREs []Expression) bool {
	if len(includeREs) == 0 && len(excludeREs) == 0 {
		// If no rules are defined, should always include
		return true
	} else if matches(name, excludeREs) {
		// If a rule that exclude matches, should not include
		return false
	} else if len(includeREs) == 0 {
		// Given the 'Name' is not in the 'exclude' list, should include if there is no 'include' list
		return true
	} else {
		// Given there is a 'include' list, and 'Name' is there, should include
		return matches(name, includeREs)
	}
}

type ResourceValue struct {
	Name *string
	Tags map[string]string
}

func (r ResourceType) getExclusionTag() string {
	if r.ExcludeRule.Tag != nil {
		return *r.ExcludeRule.Tag
	}

	return DefaultResourceGroupExclusionTagKey
}

// ShouldIncludeBasedOnTag applies the exclusion tag and the tag regex rules. A resource must match every include tag
// rule and no exclude tag rule.
func (r ResourceType) ShouldIncludeBasedOnTag(tags map[string]string) bool {
	exclusionTag := r.getExclusionTag()
	if value, ok := tags[exclusionTag]; ok {
		if strings.ToLower(value) == "true" {
			return false
		}
	}

	for key, expression := range r.ExcludeRule.Tags {
		if value, ok := tags[key]; ok && expression.RE.MatchString(value) {
			return false
		}
	}

	for key, expression := range r.IncludeRule.Tags {
		value, ok := tags[key]
		if !ok || !expression.RE.MatchString(value) {
			return false
		}
	}

	return true
}

func (r ResourceType) ShouldInclude(value ResourceValue) bool {
	if value.Name != nil && !ShouldInclude(*value.Name, r.IncludeRule.NamesRegExp, r.ExcludeRule.NamesRegExp) {
		return false
	}

	return r.ShouldIncludeBasedOnTag(value.Tags)
}
