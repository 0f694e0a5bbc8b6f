package main

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jonathan/resume-wizard/internal/resumefile"
	"github.com/jonathan/resume-wizard/internal/types"
	"github.com/jonathan/resume-wizard/internal/wizard"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Fixture paths are made absolute while the working directory is still the package
// directory; executeCommand moves every run into its own temp dir.
var (
	validResumeJSON = testdataPath("valid", "resume.json")
	validResumeYAML = testdataPath("valid", "resume.yaml")
	incompleteYAML  = testdataPath("invalid", "incomplete.yaml")
	badShapeJSON    = testdataPath("invalid", "bad_shape.json")
	repoSchema      = mustAbs(filepath.Join("..", "..", "schemas", "resume.schema.json"))
)

func testdataPath(elem ...string) string {
	return mustAbs(filepath.Join(append([]string{"..", "..", "testdata"}, elem...)...))
}

func mustAbs(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		panic(fmt.Sprintf("failed to resolve %s: %v", path, err))
	}
	return abs
}

// resetFlags restores every flag of cmd and its children to its default so that
// commands can be executed repeatedly within one test binary.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// executeCommand runs the CLI in-process and returns its stdout
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("CHROME_PATH", "")

	t.Chdir(t.TempDir())
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestValidateCommand_Valid(t *testing.T) {
	out, err := executeCommand(t, "validate", "--in", validResumeJSON)
	require.NoError(t, err)

	var result types.ValidationResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.True(t, result.IsValid)
	assert.Empty(t, result.Errors)
}

func TestValidateCommand_Invalid(t *testing.T) {
	out, err := executeCommand(t, "validate", "--in", incompleteYAML)
	require.Error(t, err)
	assert.ErrorIs(t, err, errInvalidResume)

	var result types.ValidationResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.False(t, result.IsValid)

	fields := make([]string, 0, len(result.Errors))
	for _, fe := range result.Errors {
		fields = append(fields, fe.Field)
	}
	assert.Equal(t, []string{"email", "summary", "experience.0.endDate"}, fields)
}

func TestValidateCommand_SingleStep(t *testing.T) {
	out, err := executeCommand(t, "validate", "--in", incompleteYAML, "--step", "4")
	require.NoError(t, err, "education step is complete")
	assert.Contains(t, out, `"isValid": true`)

	_, err = executeCommand(t, "validate", "--in", incompleteYAML, "--step", "9")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--step must be between 1 and 5")
}

func TestValidateCommand_MissingInputFlag(t *testing.T) {
	_, err := executeCommand(t, "validate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required")
}

func TestValidateCommand_SchemaFailure(t *testing.T) {
	_, err := executeCommand(t, "validate", "--in", badShapeJSON)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load resume")
	assert.Contains(t, err.Error(), "skills.0.level")
}

func TestValidateCommand_SchemaOverride(t *testing.T) {
	out, err := executeCommand(t, "--schema", repoSchema, "validate", "--in", validResumeYAML)
	require.NoError(t, err)
	assert.Contains(t, out, `"isValid": true`)

	strict := filepath.Join(t.TempDir(), "strict.schema.json")
	require.NoError(t, os.WriteFile(strict, []byte(`{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"required": ["personalInfo", "skills"],
		"properties": {"skills": {"type": "array", "minItems": 5}}
	}`), 0644))

	_, err = executeCommand(t, "--schema", strict, "validate", "--in", validResumeYAML)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load resume")
	assert.Contains(t, err.Error(), "skills")

	_, err = executeCommand(t, "validate", "--in", validResumeYAML)
	require.NoError(t, err, "the built-in schema applies again once --schema is dropped")
}

func TestValidateCommand_SchemaNotFound(t *testing.T) {
	_, err := executeCommand(t, "--schema", "missing.schema.json", "validate", "--in", validResumeJSON)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema file not found")
}

func TestFixturePaths_SurviveDirectoryChanges(t *testing.T) {
	for _, path := range []string{validResumeJSON, validResumeYAML, incompleteYAML, badShapeJSON, repoSchema} {
		assert.True(t, filepath.IsAbs(path), path)
	}

	_, err := executeCommand(t, "check", "--in", validResumeJSON)
	require.NoError(t, err)
	_, err = executeCommand(t, "check", "--in", validResumeYAML)
	require.NoError(t, err)
	assert.FileExists(t, incompleteYAML)
}

func TestCheckCommand(t *testing.T) {
	out, err := executeCommand(t, "check", "--in", validResumeYAML)
	require.NoError(t, err)
	assert.Contains(t, out, "ready to export")

	out, err = executeCommand(t, "check", "--in", incompleteYAML)
	require.Error(t, err)
	assert.Contains(t, out, "Blocked at step 1/5 (Personal)")
	assert.Contains(t, out, "Please enter a valid email address")
}

func TestPreviewCommand_Stdout(t *testing.T) {
	out, err := executeCommand(t, "preview", "--in", validResumeJSON)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "Ada Lovelace")
}

func TestPreviewCommand_File(t *testing.T) {
	target := filepath.Join(t.TempDir(), "preview", "resume.html")

	out, err := executeCommand(t, "preview", "--in", incompleteYAML, "--out", target)
	require.NoError(t, err, "preview works on incomplete resumes")
	assert.Contains(t, out, target)

	content, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Analytical Engine Project")
}

func TestExportCommand_HTMLAndWord(t *testing.T) {
	outDir := t.TempDir()

	out, err := executeCommand(t, "export", "--in", validResumeYAML, "--format", "html", "--format", "word", "--out", outDir)
	require.NoError(t, err)
	assert.Contains(t, out, "Ada_Lovelace_Resume.html")
	assert.Contains(t, out, "Ada_Lovelace_Resume.docx")

	html, err := os.ReadFile(filepath.Join(outDir, "Ada_Lovelace_Resume.html"))
	require.NoError(t, err)
	assert.Contains(t, string(html), "Work Experience")

	docx, err := zip.OpenReader(filepath.Join(outDir, "Ada_Lovelace_Resume.docx"))
	require.NoError(t, err)
	defer func() { _ = docx.Close() }()

	names := make([]string, 0, len(docx.File))
	for _, f := range docx.File {
		names = append(names, f.Name)
	}
	assert.Contains(t, names, "word/document.xml")
}

func TestExportCommand_DefaultsToHTML(t *testing.T) {
	outDir := t.TempDir()

	_, err := executeCommand(t, "export", "--in", validResumeJSON, "--out", outDir)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(outDir, "Ada_Lovelace_Resume.html"))
}

func TestExportCommand_BlockedUntilValid(t *testing.T) {
	outDir := t.TempDir()

	_, err := executeCommand(t, "export", "--in", incompleteYAML, "--out", outDir)
	require.Error(t, err)
	assert.ErrorIs(t, err, errInvalidResume)
	assert.NoFileExists(t, filepath.Join(outDir, "Ada_Lovelace_Resume.html"))

	out, err := executeCommand(t, "export", "--in", incompleteYAML, "--out", outDir, "--force")
	require.NoError(t, err)
	assert.Contains(t, out, "exporting anyway")
	assert.FileExists(t, filepath.Join(outDir, "Ada_Lovelace_Resume.html"))
}

func TestExportCommand_UnknownFormat(t *testing.T) {
	_, err := executeCommand(t, "export", "--in", validResumeJSON, "--format", "latex", "--out", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown export format")
}

func TestNewCommand(t *testing.T) {
	target := filepath.Join(t.TempDir(), "resume.yaml")

	out, err := executeCommand(t, "new", "--out", target)
	require.NoError(t, err)
	assert.Contains(t, out, "Created")

	r, err := resumefile.Load(target)
	require.NoError(t, err)
	require.Len(t, r.Experience, 1)
	assert.Equal(t, []string{""}, r.Experience[0].Achievements)
	require.Len(t, r.Education, 1)
	assert.Empty(t, r.Skills)

	_, err = executeCommand(t, "new", "--out", target)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = executeCommand(t, "new", "--out", target, "--force")
	assert.NoError(t, err)
}

func TestValidateCommand_Verbose(t *testing.T) {
	out, err := executeCommand(t, "--verbose", "validate", "--in", validResumeJSON)
	require.NoError(t, err)
	assert.Contains(t, out, `"isValid": true`, "verbose boxes go to stderr, the JSON report stays on stdout")
}

func TestNewCommand_SeedsSkillsAndSummary(t *testing.T) {
	target := filepath.Join(t.TempDir(), "resume.json")

	_, err := executeCommand(t, "new", "--out", target,
		"--preset", "backend dev",
		"--skill", "Go:Expert:Languages",
		"--skill", "Rust",
		"--sample-summary")
	require.NoError(t, err)

	r, err := resumefile.Load(target)
	require.NoError(t, err)
	require.Len(t, r.Skills, 6)
	assert.Equal(t, types.Skill{Name: "Java", Level: types.LevelIntermediate, Category: "Technical"}, r.Skills[0])
	assert.Equal(t, types.Skill{Name: "Go", Level: types.LevelExpert, Category: "Languages"}, r.Skills[4])
	assert.Equal(t, types.Skill{Name: "Rust", Level: wizard.DefaultSkillLevel, Category: wizard.DefaultSkillCategory}, r.Skills[5])
	assert.Contains(t, wizard.SummarySamples, r.Summary)
}

func TestNewCommand_RejectsUnknownPresetAndLevel(t *testing.T) {
	dir := t.TempDir()

	_, err := executeCommand(t, "new", "--out", filepath.Join(dir, "a.yaml"), "--preset", "Data Science")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown skill preset "Data Science"`)
	assert.NoFileExists(t, filepath.Join(dir, "a.yaml"))

	_, err = executeCommand(t, "new", "--out", filepath.Join(dir, "b.yaml"), "--skill", "Go:Guru")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown skill level "Guru"`)

	_, err = executeCommand(t, "new", "--out", filepath.Join(dir, "c.yaml"), "--skill", ":Expert")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name is required")
}

func TestOptionsCommand(t *testing.T) {
	out, err := executeCommand(t, "options")
	require.NoError(t, err)

	assert.Contains(t, out, "  - Bachelor's Degree")
	assert.Contains(t, out, "  1. Beginner")
	assert.Contains(t, out, "  4. Expert")
	assert.Contains(t, out, "  - Tools & Software")
	assert.Contains(t, out, "  - Frontend Dev [Technical]: JavaScript, React, Node.js, Python")
}
