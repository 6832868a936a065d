package e2e_test

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI runs the typegen binary from source with args and optional stdin.
func runCLI(t testing.TB, stdin string, env []string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command("go", append([]string{"run", "../../main.go"}, args...)...)
	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}
	cmd.Env = append(os.Environ(), env...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// TestEndToEnd_SampleFile renders the shared sample with the default definition
func TestEndToEnd_SampleFile(t *testing.T) {
	tempDir := t.TempDir()
	outputFile := filepath.Join(tempDir, "user.rs")

	_, stderr, err := runCLI(t, "", nil, "-r", "user", "-o", outputFile, "../../testdata/samples/user.json")
	require.NoError(t, err, "CLI command failed: %s", stderr)
	assert.Contains(t, stderr, "Generated code written to")

	generated, err := os.ReadFile(outputFile)
	require.NoError(t, err)
	expected, err := os.ReadFile("../../testdata/samples/user.rs")
	require.NoError(t, err)

	assert.Equal(t, string(expected), string(generated))
}

// TestEndToEnd_GoDefinitionCompiles checks that the Go preset produces code
// the Go toolchain accepts
func TestEndToEnd_GoDefinitionCompiles(t *testing.T) {
	jsonContent := `{
		"id": 12345,
		"uuid": "550e8400-e29b-41d4-a716-446655440000",
		"config": {
			"enabled": true,
			"timeout_seconds": 30,
			"features": ["logging", "metrics", "alerting"],
			"rate_limits": {"per_second": 100, "burst": 150}
		},
		"users": [
			{"id": 1, "name": "Alice", "roles": ["admin", "user"]},
			{"id": 2, "name": "Bob", "roles": ["user"], "login_count": 17}
		],
		"stats": {
			"success_rate": 0.9999,
			"response_times": [0.045, 0.067, 0.032, 0.051]
		},
		"active": true
	}`

	stdout, stderr, err := runCLI(t, jsonContent, nil, "-d", "go", "--header", "package main")
	require.NoError(t, err, "CLI command failed: %s", stderr)

	assert.Regexp(t, `(?m)^type Root struct \{`, stdout)
	assert.Regexp(t, `Config\s+Config\s+\x60json:"config"\x60`, stdout)
	assert.Regexp(t, `Users\s+\[\]Users\s+\x60json:"users"\x60`, stdout)
	assert.Regexp(t, `LoginCount\s+int\s+\x60json:"login_count"\x60`, stdout)
	assert.Regexp(t, `ResponseTimes\s+\[\]float64\s+\x60json:"response_times"\x60`, stdout)
	assert.Regexp(t, `(?m)^type RateLimits struct \{`, stdout)

	tempDir := t.TempDir()
	tmpGoFile := filepath.Join(tempDir, "verify_compile.go")
	verifyCode := fmt.Sprintf("%s\n\nfunc main() {\n\t_ = Root{}\n}\n", stdout)
	require.NoError(t, os.WriteFile(tmpGoFile, []byte(verifyCode), 0o644))

	compileCmd := exec.Command("go", "build", "-o", os.DevNull, tmpGoFile)
	compileOut, err := compileCmd.CombinedOutput()
	require.NoError(t, err, "Generated code does not compile: %s", string(compileOut))
}

// TestEndToEnd_DefinitionFile loads a user supplied YAML definition
func TestEndToEnd_DefinitionFile(t *testing.T) {
	stdout, stderr, err := runCLI(t, `{"zip-code": "N1", "geo": {"lat": 51.5, "lng": -0.12}}`, nil,
		"-d", "../../testdata/definitions/typescript.yaml", "-r", "location")
	require.NoError(t, err, "CLI command failed: %s", stderr)

	expected := `export interface Location {
  /** @json zip-code */
  zipCode: string;
  geo: Geo;
}

export interface Geo {
  lat: number;
  lng: number;
}
`
	assert.Equal(t, expected, stdout)
}

// TestEndToEnd_Presets renders the same document with every preset
func TestEndToEnd_Presets(t *testing.T) {
	input := `{"first_name": "Ada", "age": 36, "tags": ["x"]}`

	tests := []struct {
		definition string
		contains   []string
	}{
		{"rust", []string{"struct Root {", "\tfirst_name: String,", "\ttags: Vec<String>,"}},
		{"kotlin", []string{"data class Root(", "\t@SerialName(\"first_name\")", "\tval firstName: String,", "\tval tags: List<String>,"}},
		{"java", []string{"public class Root {", "\tprivate Integer age;", "\tpublic Root(String firstName, Integer age, List<String> tags) {", "\t\tthis.tags = tags;"}},
		{"dart", []string{"class Root {", "\t@JsonKey(name: 'first_name')", "\tfinal int age;", "\tRoot(this.firstName, this.age, this.tags);"}},
		{"go", []string{"type Root struct {", "`json:\"first_name\"`", "[]string"}},
	}

	for _, tt := range tests {
		t.Run(tt.definition, func(t *testing.T) {
			stdout, stderr, err := runCLI(t, input, nil, "-d", tt.definition)
			require.NoError(t, err, "CLI command failed: %s", stderr)
			for _, s := range tt.contains {
				assert.Contains(t, stdout, s)
			}
		})
	}
}

// TestEndToEnd_ConfigAndEnvironment checks config file and environment precedence
func TestEndToEnd_ConfigAndEnvironment(t *testing.T) {
	tempDir := t.TempDir()
	configFile := filepath.Join(tempDir, ".typegen.yml")
	require.NoError(t, os.WriteFile(configFile, []byte(`
definition: kotlin
root_name: FromFile
output:
  root_first: false
`), 0o644))

	input := `{"inner": {"a": 1}}`

	stdout, stderr, err := runCLI(t, input, nil, "-c", configFile)
	require.NoError(t, err, "CLI command failed: %s", stderr)
	assert.True(t, strings.HasPrefix(stdout, "data class Inner("), stdout)
	assert.Contains(t, stdout, "data class FromFile(")

	stdout, stderr, err = runCLI(t, input, []string{"TYPEGEN_ROOT_NAME=FromEnv"}, "-c", configFile)
	require.NoError(t, err, "CLI command failed: %s", stderr)
	assert.Contains(t, stdout, "data class FromEnv(")

	stdout, stderr, err = runCLI(t, input, []string{"TYPEGEN_ROOT_NAME=FromEnv"}, "-c", configFile, "-r", "FromFlag", "-d", "rust")
	require.NoError(t, err, "CLI command failed: %s", stderr)
	assert.Contains(t, stdout, "struct FromFlag {")
}

// TestEndToEnd_InformationalFlags covers flags that exit without reading input
func TestEndToEnd_InformationalFlags(t *testing.T) {
	stdout, _, err := runCLI(t, "", nil, "--list-definitions")
	require.NoError(t, err)
	assert.Equal(t, "dart\ngo\njava\nkotlin\nrust\n", stdout)

	stdout, _, err = runCLI(t, "", nil, "--version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "typegen version")
}

// TestEndToEnd_EdgeCases checks that bad input exits non-zero with a useful message
func TestEndToEnd_EdgeCases(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		args     []string
		expected string
	}{
		{
			name:     "null value",
			input:    `{"a": 1, "b": null}`,
			expected: "null values are not supported. Near line 1 column 14",
		},
		{
			name:     "empty array",
			input:    "{\n  \"items\": []\n}",
			expected: "empty arrays are not supported. Near line 2 column 12",
		},
		{
			name:     "mixed array",
			input:    `{"a": [1, "x"]}`,
			expected: "syntax error detected near line 1",
		},
		{
			name:     "root array",
			input:    `[{"a": 1}]`,
			expected: "syntax error detected near line 1 column 0",
		},
		{
			name:     "unknown definition",
			input:    `{"a": 1}`,
			args:     []string{"-d", "cobol"},
			expected: "is neither a built-in definition",
		},
		{
			name:     "whitespace only",
			input:    "   \n\t",
			expected: "Input error: empty input received from stdin",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, stderr, err := runCLI(t, tc.input, nil, tc.args...)
			require.Error(t, err)
			assert.Contains(t, stderr, tc.expected)
			assert.Contains(t, stderr, "For help, run: typegen --help")
		})
	}
}
