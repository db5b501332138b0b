package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nlschema/nlschema/schema"
)

func TestFieldKeys(t *testing.T) {
	require.Equal(t, "", fieldKeys(&schema.Field{Name: "plain"}))
	require.Equal(t, "PK", fieldKeys(&schema.Field{Name: "id", PrimaryKey: true}))
	require.Equal(t, "FK", fieldKeys(&schema.Field{Name: "ref", ForeignKey: true}))
	require.Equal(t, "FK -> customer.customer_id", fieldKeys(&schema.Field{
		Name:       "customer_id",
		ForeignKey: true,
		Reference:  &schema.Reference{Table: "customer", Column: "customer_id"},
	}))
	require.Equal(t, "PK, FK -> t", fieldKeys(&schema.Field{
		Name:       "id",
		PrimaryKey: true,
		ForeignKey: true,
		Reference:  &schema.Reference{Table: "t"},
	}))
}

func TestReadLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input")
	require.NoError(t, os.WriteFile(path, []byte("  3  \nrest\n"), 0644))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	line, err := readLine(f)
	require.NoError(t, err)
	require.Equal(t, "3", line)
}

func TestReadLineEmptyInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	_, err = readLine(f)
	require.Error(t, err)
}

func TestDemoRequirements(t *testing.T) {
	require.Len(t, demoRequirements, 5)
	for _, req := range demoRequirements {
		require.NotEmpty(t, req)
	}
}
