// Where: internal/diagnose/rules.go
// What: Ordered rule catalog mapping error text to messages and suggestions.
// Why: Keep classification table-driven so buckets stay easy to extend.
package diagnose

import (
	"fmt"
	"strings"
)

// rule contributes to one operation bucket. The first matching rule with a
// message wins the report message; every matching rule with a suggestion
// appends it, so several suggestions can stack for one error.
type rule struct {
	operation  string
	anyOf      []string // matches when at least one substring is present
	allOf      []string // and every one of these is present
	message    string
	suggestion string
	suggestFn  func(raw string) string
}

func (r rule) matches(raw string) bool {
	for _, s := range r.allOf {
		if !strings.Contains(raw, s) {
			return false
		}
	}
	if len(r.anyOf) == 0 {
		return true
	}
	for _, s := range r.anyOf {
		if strings.Contains(raw, s) {
			return true
		}
	}
	return false
}

// bucket holds the per-operation fallbacks used when no rule matches.
type bucket struct {
	defaultMessage  string
	baseSuggestions []string
}

var buckets = map[string]bucket{
	OpGenerateTemplate: {
		defaultMessage: "There was an issue generating the CloudFormation template. Please try with a more specific description.",
		baseSuggestions: []string{
			"Try providing a more specific description of your infrastructure",
			"Include specific AWS service names in your description",
			"Specify the relationships between resources (e.g., 'EC2 instances behind an ALB')",
		},
	},
	OpValidateTemplate: {
		defaultMessage: "Template validation failed. Please check the template for errors.",
		baseSuggestions: []string{
			"Check the template for syntax errors",
			"Ensure all required properties are specified for each resource",
			"Verify that resource names are unique within the template",
		},
	},
	OpDeployStack: {
		defaultMessage: "Failed to deploy the CloudFormation stack. Please check the error details.",
		baseSuggestions: []string{
			"Validate your template before deployment",
			"Check that you have the necessary permissions to create all resources",
			"Ensure resource names and properties are valid",
		},
	},
}

var genericSuggestions = []string{
	"Check your AWS credentials and permissions",
	"Verify that the AWS region is valid and available",
	"Try the operation again with more specific parameters",
}

var rules = []rule{
	{
		operation: OpGenerateTemplate,
		anyOf:     []string{"invalid group reference"},
		message:   "There was an issue with the template generation process. We're working to fix this.",
	},
	{
		operation: OpGenerateTemplate,
		anyOf:     []string{"KeyError"},
		message:   "The template generator couldn't find a required resource or property.",
	},
	{
		operation: OpGenerateTemplate,
		anyOf:     []string{"AttributeError"},
		message:   "The template generator encountered an issue with a resource attribute.",
	},
	{
		operation:  OpGenerateTemplate,
		anyOf:      []string{"invalid group reference", "regex"},
		suggestion: "This is a known issue with our template generator that we're working to fix",
	},
	{
		operation: OpValidateTemplate,
		anyOf:     []string{"Template format error"},
		message:   "The template contains syntax errors. Please check the template format.",
	},
	{
		operation: OpValidateTemplate,
		anyOf:     []string{"No updates are to be performed"},
		message:   "The stack is already up to date. No changes were detected.",
	},
	{
		operation: OpValidateTemplate,
		anyOf:     []string{"Requires capabilities"},
		message:   "This template requires additional capabilities to create IAM resources or use transforms.",
		suggestFn: capabilitySuggestion,
	},
	{
		operation:  OpDeployStack,
		anyOf:      []string{"AlreadyExistsException"},
		message:    "A stack with this name already exists. Please use a different name or update the existing stack.",
		suggestion: "Use a different stack name or update the existing stack",
	},
	{
		operation:  OpDeployStack,
		allOf:      []string{"ValidationError", "No updates are to be performed"},
		message:    "The stack is already up to date. No changes were detected.",
		suggestion: "No changes are needed, the stack is already up to date",
	},
	{
		operation: OpDeployStack,
		allOf:     []string{"ValidationError", "Template error"},
		message:   "The template contains errors that prevent deployment. Please fix the template and try again.",
	},
}

func messageFor(raw, operation string) string {
	b, known := buckets[operation]
	if !known {
		return fmt.Sprintf("An error occurred while performing the %s operation. Please check the error details.", operation)
	}
	for _, r := range rules {
		if r.operation != operation || r.message == "" {
			continue
		}
		if r.matches(raw) {
			return r.message
		}
	}
	return b.defaultMessage
}

func suggestionsFor(raw, operation string) []string {
	b, known := buckets[operation]
	if !known {
		return append([]string(nil), genericSuggestions...)
	}
	out := append([]string(nil), b.baseSuggestions...)
	for _, r := range rules {
		if r.operation != operation {
			continue
		}
		if r.suggestion == "" && r.suggestFn == nil {
			continue
		}
		if !r.matches(raw) {
			continue
		}
		if r.suggestFn != nil {
			out = append(out, r.suggestFn(raw))
			continue
		}
		out = append(out, r.suggestion)
	}
	return out
}

// capabilityOrder is the fixed order capabilities are reported in, no matter
// where they appear in the raw error.
var capabilityOrder = []string{
	"CAPABILITY_IAM",
	"CAPABILITY_NAMED_IAM",
	"CAPABILITY_AUTO_EXPAND",
}

func capabilitySuggestion(raw string) string {
	var present []string
	for _, capability := range capabilityOrder {
		if strings.Contains(raw, capability) {
			present = append(present, capability)
		}
	}
	return "Add the following capabilities when deploying: " + strings.Join(present, ", ")
}
