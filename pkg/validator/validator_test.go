/*
Copyright © 2026 The MaMMoS Project
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mammos-project/mammos-gate/pkg/errors"
)

func quietValidator() *Validator {
	return New(WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
}

func touch(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, name := range names {
		p := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		f, err := os.Create(p)
		require.NoError(t, err)
		require.NoError(t, f.Close())
	}
}

func mkdirs(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.MkdirAll(filepath.Join(root, filepath.FromSlash(name)), 0o755))
	}
}

func TestEvaluateEmpty(t *testing.T) {
	root := t.TempDir()
	res, err := quietValidator().Evaluate(root, ".", RuleSet{})
	require.NoError(t, err)
	assert.True(t, res.OK)
	assert.Zero(t, res.Files.Len())
	assert.Zero(t, res.Dirs.Len())
	assert.Equal(t, root, res.Root)
}

func TestEvaluateRelativeRoot(t *testing.T) {
	res, err := quietValidator().Evaluate("my/dataset/root", ".", RuleSet{})
	assert.Nil(t, res)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidArgument))
}

func TestEvaluateUnreadableDir(t *testing.T) {
	root := t.TempDir()
	_, err := quietValidator().Evaluate(root, "does-not-exist", RuleSet{})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeNotFound))
}

func TestEvaluateRequiredFiles(t *testing.T) {
	tests := []struct {
		name      string
		present   []string
		required  []string
		wantOK    bool
		wantFiles []string
	}{
		{
			name:      "single required present",
			present:   []string{"file-1"},
			required:  []string{"file-1"},
			wantOK:    true,
			wantFiles: []string{"file-1"},
		},
		{
			name:      "single required missing",
			present:   []string{"file-1"},
			required:  []string{"file-2"},
			wantOK:    false,
			wantFiles: nil,
		},
		{
			name:      "all required present",
			present:   []string{"file-1", "file-2"},
			required:  []string{"file-1", "file-2"},
			wantOK:    true,
			wantFiles: []string{"file-1", "file-2"},
		},
		{
			name:      "one of three missing",
			present:   []string{"file-1", "file-2"},
			required:  []string{"file-1", "file-2", "file-3"},
			wantOK:    false,
			wantFiles: []string{"file-1", "file-2"},
		},
		{
			name:      "present subset recognized, extra unexpected",
			present:   []string{"file-1", "file-2"},
			required:  []string{"file-1", "file-3"},
			wantOK:    false,
			wantFiles: []string{"file-1"},
		},
		{
			name:     "zero of N required",
			present:  []string{},
			required: []string{"file-1", "file-2"},
			wantOK:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			touch(t, root, tt.present...)

			res, err := quietValidator().Evaluate(root, ".", RuleSet{RequiredFiles: NewSet(tt.required...)})
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, res.OK)
			assert.True(t, res.Files.Equal(NewSet(tt.wantFiles...)),
				"want %v, got %v", tt.wantFiles, res.Files.Sorted())
			assert.Zero(t, res.Dirs.Len())
		})
	}
}

func TestEvaluateOptionalFiles(t *testing.T) {
	root := t.TempDir()

	res, err := quietValidator().Evaluate(root, ".", RuleSet{OptionalFiles: NewSet("file-1")})
	require.NoError(t, err)
	assert.True(t, res.OK)
	assert.Zero(t, res.Files.Len())

	touch(t, root, "file-1", "file-2")

	res, err = quietValidator().Evaluate(root, ".", RuleSet{OptionalFiles: NewSet("file-1", "file-2", "file-3")})
	require.NoError(t, err)
	assert.True(t, res.OK)
	assert.True(t, res.Files.Equal(NewSet("file-1", "file-2")))

	// file-2 is now unexpected
	res, err = quietValidator().Evaluate(root, ".", RuleSet{OptionalFiles: NewSet("file-1", "file-3")})
	require.NoError(t, err)
	assert.False(t, res.OK)
	assert.True(t, res.Files.Equal(NewSet("file-1")))
}

func TestEvaluateChoiceGroups(t *testing.T) {
	root := t.TempDir()
	rules := func(groups ...Set) RuleSet { return RuleSet{ChoiceGroups: groups} }

	// zero matches fail
	res, err := quietValidator().Evaluate(root, ".", rules(NewSet("file-1", "file-2")))
	require.NoError(t, err)
	assert.False(t, res.OK)
	assert.Zero(t, res.Files.Len())

	// exactly one match succeeds
	touch(t, root, "file-1")
	res, err = quietValidator().Evaluate(root, ".", rules(NewSet("file-1", "file-2")))
	require.NoError(t, err)
	assert.True(t, res.OK)
	assert.True(t, res.Files.Equal(NewSet("file-1")))

	// two matches fail and nothing from the group is recognized
	touch(t, root, "file-2")
	res, err = quietValidator().Evaluate(root, ".", rules(NewSet("file-1", "file-2")))
	require.NoError(t, err)
	assert.False(t, res.OK)
	assert.Zero(t, res.Files.Len())

	// independent groups are checked separately
	res, err = quietValidator().Evaluate(root, ".", rules(NewSet("file-1"), NewSet("file-2")))
	require.NoError(t, err)
	assert.True(t, res.OK)
	assert.True(t, res.Files.Equal(NewSet("file-1", "file-2")))
}

func TestEvaluatePrefixPairs(t *testing.T) {
	root := t.TempDir()
	rules := RuleSet{PrefixPairs: []PrefixPair{{A: "in-", B: "out-"}}}

	// declared pair rule with no data is a failure
	res, err := quietValidator().Evaluate(root, ".", rules)
	require.NoError(t, err)
	assert.False(t, res.OK)
	assert.Zero(t, res.Files.Len())

	touch(t, root, "in-1", "out-1")
	res, err = quietValidator().Evaluate(root, ".", rules)
	require.NoError(t, err)
	assert.True(t, res.OK)
	assert.True(t, res.Files.Equal(NewSet("in-1", "out-1")))

	// unpaired in-2 fails but the matched pair stays recognized
	touch(t, root, "in-2")
	res, err = quietValidator().Evaluate(root, ".", rules)
	require.NoError(t, err)
	assert.False(t, res.OK)
	assert.True(t, res.Files.Equal(NewSet("in-1", "out-1")))

	// completing the pair restores the verdict
	touch(t, root, "out-2")
	res, err = quietValidator().Evaluate(root, ".", rules)
	require.NoError(t, err)
	assert.True(t, res.OK)
	assert.True(t, res.Files.Equal(NewSet("in-1", "out-1", "in-2", "out-2")))

	// a second pair rule with only one side present fails
	touch(t, root, "b.txt")
	two := RuleSet{PrefixPairs: []PrefixPair{{A: "in-", B: "out-"}, {A: "a", B: "b"}}}
	res, err = quietValidator().Evaluate(root, ".", two)
	require.NoError(t, err)
	assert.False(t, res.OK)
	assert.True(t, res.Files.Equal(NewSet("in-1", "out-1", "in-2", "out-2")))

	touch(t, root, "a.txt")
	res, err = quietValidator().Evaluate(root, ".", two)
	require.NoError(t, err)
	assert.True(t, res.OK)
	assert.True(t, res.Files.Equal(NewSet("in-1", "out-1", "in-2", "out-2", "a.txt", "b.txt")))
}

func TestEvaluateDirectories(t *testing.T) {
	root := t.TempDir()

	res, err := quietValidator().Evaluate(root, ".", RuleSet{RequiredDirs: NewSet("dir-1")})
	require.NoError(t, err)
	assert.False(t, res.OK)
	assert.Zero(t, res.Dirs.Len())

	mkdirs(t, root, "dir-1")
	res, err = quietValidator().Evaluate(root, ".", RuleSet{RequiredDirs: NewSet("dir-1")})
	require.NoError(t, err)
	assert.True(t, res.OK)
	assert.True(t, res.Dirs.Equal(NewSet("dir-1")))

	// dir-2 unexpected
	mkdirs(t, root, "dir-2")
	res, err = quietValidator().Evaluate(root, ".", RuleSet{RequiredDirs: NewSet("dir-1")})
	require.NoError(t, err)
	assert.False(t, res.OK)
	assert.True(t, res.Dirs.Equal(NewSet("dir-1")))

	res, err = quietValidator().Evaluate(root, ".", RuleSet{RequiredDirs: NewSet("dir-1", "dir-2")})
	require.NoError(t, err)
	assert.True(t, res.OK)
	assert.True(t, res.Dirs.Equal(NewSet("dir-1", "dir-2")))

	// optional dirs are fine either way
	res, err = quietValidator().Evaluate(root, ".", RuleSet{
		RequiredDirs: NewSet("dir-1"),
		OptionalDirs: NewSet("dir-2", "dir-3"),
	})
	require.NoError(t, err)
	assert.True(t, res.OK)
	assert.True(t, res.Dirs.Equal(NewSet("dir-1", "dir-2")))
}

func TestEvaluateUnexpectedContentFailsOtherwiseCleanDir(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "wanted", "stray")

	res, err := quietValidator().Evaluate(root, ".", RuleSet{RequiredFiles: NewSet("wanted")})
	require.NoError(t, err)
	assert.False(t, res.OK)
	assert.True(t, res.Files.Equal(NewSet("wanted")))

	var rules []Rule
	for _, f := range res.Findings {
		rules = append(rules, f.Rule)
	}
	assert.Contains(t, rules, RuleUnexpectedFile)
}

func TestEvaluateAllRuleCategories(t *testing.T) {
	root := t.TempDir()
	rules := RuleSet{
		RequiredFiles: NewSet("file-req"),
		OptionalFiles: NewSet("file-opt"),
		ChoiceGroups:  []Set{NewSet("choice-1", "choice-2")},
		PrefixPairs:   []PrefixPair{{A: "a-", B: "b-"}},
		RequiredDirs:  NewSet("dir-req"),
		OptionalDirs:  NewSet("dir-opt"),
	}

	// empty directory fails everything except the optional rules
	res, err := quietValidator().Evaluate(root, ".", rules)
	require.NoError(t, err)
	assert.False(t, res.OK)
	assert.Zero(t, res.Files.Len())
	assert.Zero(t, res.Dirs.Len())

	touch(t, root, "file-req", "choice-1", "a-file", "b-file")
	mkdirs(t, root, "dir-req")

	res, err = quietValidator().Evaluate(root, ".", rules)
	require.NoError(t, err)
	assert.True(t, res.OK)
	assert.True(t, res.Files.Equal(NewSet("file-req", "choice-1", "a-file", "b-file")))
	assert.True(t, res.Dirs.Equal(NewSet("dir-req")))

	touch(t, root, "file-opt")
	mkdirs(t, root, "dir-opt")

	res, err = quietValidator().Evaluate(root, ".", rules)
	require.NoError(t, err)
	assert.True(t, res.OK)
	assert.True(t, res.Files.Equal(NewSet("file-req", "file-opt", "choice-1", "a-file", "b-file")))
	assert.True(t, res.Dirs.Equal(NewSet("dir-req", "dir-opt")))

	touch(t, root, "file-not-wanted")
	res, err = quietValidator().Evaluate(root, ".", rules)
	require.NoError(t, err)
	assert.False(t, res.OK)
	assert.True(t, res.Files.Equal(NewSet("file-req", "file-opt", "choice-1", "a-file", "b-file")))
}

func TestEvaluateRelativeDir(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "my_base/mysub/file-req", "my_base/mysub/choice-1",
		"my_base/mysub/a-file", "my_base/mysub/b-file", "my_base/mysub/file-opt")
	mkdirs(t, root, "my_base/mysub/dir-req", "my_base/mysub/dir-opt")

	res, err := quietValidator().Evaluate(root, "my_base/mysub", RuleSet{
		RequiredFiles: NewSet("file-req"),
		OptionalFiles: NewSet("file-opt"),
		ChoiceGroups:  []Set{NewSet("choice-1", "choice-2")},
		PrefixPairs:   []PrefixPair{{A: "a-", B: "b-"}},
		RequiredDirs:  NewSet("dir-req"),
		OptionalDirs:  NewSet("dir-opt"),
	})
	require.NoError(t, err)
	assert.True(t, res.OK)
	assert.Equal(t, root, res.Root)
	assert.True(t, res.Files.Equal(NewSet(
		"my_base/mysub/file-req",
		"my_base/mysub/choice-1",
		"my_base/mysub/a-file",
		"my_base/mysub/b-file",
		"my_base/mysub/file-opt",
	)))
	assert.True(t, res.Dirs.Equal(NewSet(
		"my_base/mysub/dir-req",
		"my_base/mysub/dir-opt",
	)))
}
