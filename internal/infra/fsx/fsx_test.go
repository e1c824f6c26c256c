package fsx

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func assertNoTemp(t *testing.T, dir, name string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir 失败：%v", err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "."+name+".tmp-") {
			t.Fatalf("临时文件未清理：%q", e.Name())
		}
	}
}

func TestWriteFileAtomic_CreatesParentAndNoTempLeft(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "notes", "movies")
	path := filepath.Join(dir, "Матрица (1999).md")

	if err := WriteFileAtomic(path, []byte("hello"), false); err != nil {
		t.Fatalf("不期望错误：%v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("读取文件失败：%v", err)
	}
	if string(b) != "hello" {
		t.Fatalf("内容不一致：%q", string(b))
	}
	assertNoTemp(t, dir, "Матрица (1999).md")
}

func TestWriteFileAtomic_NoOverwriteByDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.md")
	if err := WriteFileAtomic(path, []byte("v1"), false); err != nil {
		t.Fatalf("不期望错误：%v", err)
	}

	if err := WriteFileAtomic(path, []byte("v2"), false); !errors.Is(err, ErrExists) {
		t.Fatalf("期望 ErrExists，实际：%v", err)
	}
	if b, _ := os.ReadFile(path); string(b) != "v1" {
		t.Fatalf("不应覆盖：%q", string(b))
	}

	if err := WriteFileAtomic(path, []byte("v2"), true); err != nil {
		t.Fatalf("overwrite=true 不期望错误：%v", err)
	}
	if b, _ := os.ReadFile(path); string(b) != "v2" {
		t.Fatalf("应覆盖：%q", string(b))
	}
}

func TestWriteFileAtomic_TargetIsDir(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "a.md")
	if err := os.Mkdir(target, 0o755); err != nil {
		t.Fatalf("mkdir 失败：%v", err)
	}
	err := WriteFileAtomic(target, []byte("x"), true)
	if !IsPathTypeConflict(err) {
		t.Fatalf("期望 PathTypeConflictError，实际：%T %v", err, err)
	}
}

func TestWriteFileAtomic_RenameFail_CleanupTemp(t *testing.T) {
	dir := t.TempDir()

	old := renameFunc
	renameFunc = func(oldpath, newpath string) error {
		return os.ErrPermission
	}
	defer func() { renameFunc = old }()

	if err := WriteFileAtomic(filepath.Join(dir, "a.md"), []byte("hello"), false); err == nil {
		t.Fatalf("期望失败，但得到 nil")
	}
	assertNoTemp(t, dir, "a.md")
	if _, err := os.Stat(filepath.Join(dir, "a.md")); !os.IsNotExist(err) {
		t.Fatalf("不应写出最终文件")
	}
}

func TestResolveTarget(t *testing.T) {
	dir := t.TempDir()

	if got := ResolveTarget(dir, "x.md"); got != filepath.Join(dir, "x.md") {
		t.Fatalf("已存在目录应拼接文件名：%q", got)
	}
	if got := ResolveTarget(filepath.Join(dir, "new")+"/", "x.md"); got != filepath.Join(dir, "new", "x.md") {
		t.Fatalf("以分隔符结尾应视为目录：%q", got)
	}
	if got := ResolveTarget(filepath.Join(dir, "y.md"), "x.md"); got != filepath.Join(dir, "y.md") {
		t.Fatalf("普通路径应原样使用：%q", got)
	}
}
