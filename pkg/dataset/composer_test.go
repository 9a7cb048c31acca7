/*
Copyright © 2026 The MaMMoS Project
SPDX-License-Identifier: Apache-2.0
*/

package dataset

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mammos-project/mammos-gate/pkg/errors"
	"github.com/mammos-project/mammos-gate/pkg/validator"
)

func quietComposer() *Composer {
	return New(WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
}

func touch(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, name := range names {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, nil, 0o600))
	}
}

// twoLevel is a minimal convention tree: a required file at the root
// and a required subdirectory with its own required file.
func twoLevel() *Node {
	return &Node{
		Dir: ".",
		Rules: validator.RuleSet{
			RequiredFiles: validator.NewSet("top.txt"),
			RequiredDirs:  validator.NewSet("sub"),
		},
		Children: []*Node{
			{
				Dir: "sub",
				Rules: validator.RuleSet{
					RequiredFiles: validator.NewSet("leaf.txt"),
				},
			},
		},
	}
}

func TestWalkComplete(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "top.txt", "sub/leaf.txt")

	result, err := quietComposer().Walk(root, twoLevel())
	require.NoError(t, err)
	assert.True(t, result.OK)
	assert.True(t, result.Files.Has("top.txt"))
	assert.True(t, result.Files.Has("sub/leaf.txt"))
	assert.True(t, result.Dirs.Has("sub"))
}

func TestWalkSkipsUnrecognizedChild(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "top.txt")

	result, err := quietComposer().Walk(root, twoLevel())
	require.NoError(t, err)
	assert.False(t, result.OK)
	// One finding for the missing directory; the child is never
	// descended into, so leaf.txt is not reported as missing too.
	require.Len(t, result.Findings, 1)
	assert.Equal(t, validator.RuleRequiredDir, result.Findings[0].Rule)
	assert.Equal(t, "sub", result.Findings[0].Path)
}

func TestWalkDescendsIntoOptionalChild(t *testing.T) {
	node := &Node{
		Dir: ".",
		Rules: validator.RuleSet{
			OptionalDirs: validator.NewSet("extra"),
		},
		Children: []*Node{
			{
				Dir: "extra",
				Rules: validator.RuleSet{
					RequiredFiles: validator.NewSet("inner.txt"),
				},
			},
		},
	}

	root := t.TempDir()
	result, err := quietComposer().Walk(root, node)
	require.NoError(t, err)
	assert.True(t, result.OK, "absent optional subtree must not fail")

	touch(t, root, "extra/inner.txt")
	result, err = quietComposer().Walk(root, node)
	require.NoError(t, err)
	assert.True(t, result.OK)
	assert.True(t, result.Files.Has("extra/inner.txt"))
}

func TestWalkChildFailurePropagates(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "top.txt", "sub/stray.txt")

	result, err := quietComposer().Walk(root, twoLevel())
	require.NoError(t, err)
	assert.False(t, result.OK)
	assert.True(t, result.Dirs.Has("sub"))
}

func TestValidateMissingRoot(t *testing.T) {
	conv := &Convention{Name: "test", Tree: twoLevel()}

	_, err := quietComposer().Validate(context.Background(),
		filepath.Join(t.TempDir(), "missing"), conv)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeNotFound))
}

func TestValidateRootIsFile(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "plain.txt")
	conv := &Convention{Name: "test", Tree: twoLevel()}

	_, err := quietComposer().Validate(context.Background(),
		filepath.Join(root, "plain.txt"), conv)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeNotFound))
}

func TestValidateSkipsMetadataWhenFileUnrecognized(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "top.txt", "sub/leaf.txt")

	conv := &Convention{
		Name: "test",
		Tree: twoLevel(),
		Metadata: MetadataRule{
			File:    "meta.yaml",
			Entries: map[string]string{"Tc": "CurieTemperature"},
		},
	}

	// meta.yaml is neither on disk nor declared by the tree, so the
	// content check must not run and must not add findings.
	result, err := quietComposer().Validate(context.Background(), root, conv)
	require.NoError(t, err)
	assert.True(t, result.OK)
}

func TestValidateRunsMetadataCheck(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "sub/leaf.txt")
	require.NoError(t, os.WriteFile(filepath.Join(root, "meta.yaml"),
		[]byte("Tc:\n  value: 588\n  unit: K\n  ontology_label: CurieTemperature\n"), 0o600))

	conv := &Convention{
		Name: "test",
		Tree: &Node{
			Dir: ".",
			Rules: validator.RuleSet{
				RequiredFiles: validator.NewSet("meta.yaml"),
				RequiredDirs:  validator.NewSet("sub"),
			},
			Children: []*Node{
				{
					Dir: "sub",
					Rules: validator.RuleSet{
						RequiredFiles: validator.NewSet("leaf.txt"),
					},
				},
			},
		},
		Metadata: MetadataRule{
			File:    "meta.yaml",
			Entries: map[string]string{"Tc": "CurieTemperature"},
		},
	}

	result, err := quietComposer().Validate(context.Background(), root, conv)
	require.NoError(t, err)
	assert.True(t, result.OK)

	// Corrupt the document: the verdict flips but validation still
	// completes.
	require.NoError(t, os.WriteFile(filepath.Join(root, "meta.yaml"),
		[]byte("Tc: [unclosed\n"), 0o600))

	result, err = quietComposer().Validate(context.Background(), root, conv)
	require.NoError(t, err)
	assert.False(t, result.OK)
	require.NotEmpty(t, result.Findings)
	assert.Equal(t, validator.RuleMetadata, result.Findings[0].Rule)
}
