package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, "typescript", cfg.Target)
	assert.Equal(t, "", cfg.RootName)
	assert.Equal(t, DefaultIndent, cfg.Indent)
	assert.False(t, cfg.Arrays.MergeObjects)
	assert.False(t, cfg.TypeScript.Export)
	assert.False(t, cfg.Zod.ImportLine)
	assert.False(t, cfg.Mongoose.ImportLine)
	assert.NotNil(t, cfg.Naming.TypeMappings)
}

func TestLoadConfig(t *testing.T) {
	content := `
target: zod
root_name: ApiResponse
arrays:
  merge_objects: true
zod:
  import_line: true
naming:
  type_mappings:
    addr: Address
`
	path := filepath.Join(t.TempDir(), ".jsonshape.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "zod", cfg.Target)
	assert.Equal(t, "ApiResponse", cfg.RootName)
	assert.True(t, cfg.Arrays.MergeObjects)
	assert.True(t, cfg.Zod.ImportLine)
	assert.Equal(t, "Address", cfg.Naming.TypeMappings["addr"])
	// Unset fields keep their defaults
	assert.Equal(t, DefaultIndent, cfg.Indent)
	assert.False(t, cfg.TypeScript.Export)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, os.WriteFile(path, []byte("target: [unclosed"), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestTypeName(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, "Address", cfg.TypeName("address"))
	assert.Equal(t, "UserProfile", cfg.TypeName("user_profile"))
	assert.Equal(t, "ContentType", cfg.TypeName("content-type"))
	assert.Equal(t, "Field", cfg.TypeName("_"))

	cfg.Naming.TypeMappings["addr"] = "PostalAddress"
	assert.Equal(t, "PostalAddress", cfg.TypeName("addr"))
}

func TestLoadConfigWithCLI_Precedence(t *testing.T) {
	content := `
target: prisma
root_name: FromFile
`
	path := filepath.Join(t.TempDir(), ".jsonshape.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	// CLI default target leaves the file value alone; explicit root name wins.
	cfg, err := LoadConfigWithCLI(path, "typescript", "FromCLI")
	require.NoError(t, err)
	assert.Equal(t, "prisma", cfg.Target)
	assert.Equal(t, "FromCLI", cfg.RootName)

	// A non-default CLI target overrides the file.
	cfg, err = LoadConfigWithCLI(path, "mongoose", "")
	require.NoError(t, err)
	assert.Equal(t, "mongoose", cfg.Target)
	assert.Equal(t, "FromFile", cfg.RootName)
}

func TestLoadConfigWithCLI_NoFile(t *testing.T) {
	cfg, err := LoadConfigWithCLI("", "zod", "")
	require.NoError(t, err)
	assert.Equal(t, "zod", cfg.Target)
}

func TestFindConfigFile(t *testing.T) {
	tempDir := t.TempDir()
	child := filepath.Join(tempDir, "a", "b")
	require.NoError(t, os.MkdirAll(child, 0755))

	configPath := filepath.Join(tempDir, ".jsonshape.yml")
	require.NoError(t, os.WriteFile(configPath, []byte("target: zod\n"), 0644))

	cwd, err := os.Getwd()
	require.NoError(t, err)
	defer func() { _ = os.Chdir(cwd) }()

	require.NoError(t, os.Chdir(child))
	found := FindConfigFile()

	// Resolve symlinks before comparing; temp dirs are often symlinked.
	wantDir, err := filepath.EvalSymlinks(tempDir)
	require.NoError(t, err)
	gotDir, err := filepath.EvalSymlinks(filepath.Dir(found))
	require.NoError(t, err)
	assert.Equal(t, wantDir, gotDir)
	assert.Equal(t, ".jsonshape.yml", filepath.Base(found))
}
