// Where: internal/schema/validator_test.go
// What: Tests for structural template validation.
// Why: Ensure the embedded schema accepts sane templates and names problems.
package schema

import (
	"strings"
	"testing"
)

func TestValidateAcceptsMinimalTemplate(t *testing.T) {
	content := []byte("AWSTemplateFormatVersion: '2010-09-09'\n" +
		"Resources:\n" +
		"  Bucket:\n" +
		"    Type: AWS::S3::Bucket\n" +
		"    Properties:\n" +
		"      BucketName: my-bucket\n")

	if err := Validate(content); err != nil {
		t.Fatalf("expected valid template, got %v", err)
	}
}

func TestValidateAcceptsFullTemplate(t *testing.T) {
	content := []byte("AWSTemplateFormatVersion: '2010-09-09'\n" +
		"Description: sample stack\n" +
		"Parameters:\n" +
		"  Stage:\n" +
		"    Type: String\n" +
		"Conditions:\n" +
		"  IsProd:\n" +
		"    Fn::Equals:\n" +
		"    - Ref: Stage\n" +
		"    - prod\n" +
		"Resources:\n" +
		"  Bucket:\n" +
		"    Type: AWS::S3::Bucket\n" +
		"Outputs:\n" +
		"  BucketArn:\n" +
		"    Value:\n" +
		"      Fn::GetAtt: [Bucket, Arn]\n")

	if err := Validate(content); err != nil {
		t.Fatalf("expected valid template, got %v", err)
	}
}

func TestValidateRejectsBadTemplates(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "missing resources",
			content: "Description: nothing here\n",
		},
		{
			name:    "empty resources",
			content: "Resources: {}\n",
		},
		{
			name: "resource without type",
			content: "Resources:\n" +
				"  Bucket:\n" +
				"    Properties:\n" +
				"      BucketName: my-bucket\n",
		},
		{
			name: "unknown top-level section",
			content: "Resources:\n" +
				"  Bucket:\n" +
				"    Type: AWS::S3::Bucket\n" +
				"Extras: true\n",
		},
		{
			name: "output without value",
			content: "Resources:\n" +
				"  Bucket:\n" +
				"    Type: AWS::S3::Bucket\n" +
				"Outputs:\n" +
				"  Arn:\n" +
				"    Description: no value\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Validate([]byte(tt.content)); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}

func TestValidateRejectsMalformedYAML(t *testing.T) {
	err := Validate([]byte("Resources: [unterminated\n"))
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "convert yaml to json") {
		t.Fatalf("expected conversion error, got %v", err)
	}
}
