package paths

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAbsolute(t *testing.T) {
	tests := []struct {
		name string
		path string
		want bool
	}{
		{"unix absolute", "/tmp/file.txt", true},
		{"root", "/", true},
		{"leading backslash", `\windows\path`, true},
		{"drive letter backslash", `C:\Users\demo`, true},
		{"drive letter slash", "c:/users/demo", true},
		{"relative", "file.txt", false},
		{"relative nested", "a/b/c", false},
		{"dot relative", "./file.txt", false},
		{"parent relative", "../file.txt", false},
		{"colon not a drive", "ab:c", false},
		{"bare drive no separator", "C:file", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAbsolute(tt.path))
		})
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "/tmp/a", Normalize("/tmp//a/"))
	assert.Equal(t, "/tmp/a", Normalize(`\tmp\a`))
	assert.Equal(t, "/etc", Normalize("/projects/../etc"))
	assert.Equal(t, "/tmp", Normalize("/tmp/b/.."))
}

func TestIsWriteAllowed(t *testing.T) {
	tests := []struct {
		name string
		path string
		cwd  string
		want bool
	}{
		{"relative always allowed", "file.txt", "", true},
		{"relative nested allowed", "a/b/c.txt", "/anywhere", true},
		{"tmp zone", "/tmp/scratch.txt", "", true},
		{"tmp zone root", "/tmp", "", true},
		{"projects zone", "/projects/demo/main.go", "", true},
		{"projects zone root", "/projects", "", true},
		{"outside zones", "/etc/passwd", "", false},
		{"zone prefix not boundary", "/tmpfoo/x", "", false},
		{"dot escape normalized", "/tmp/../etc/passwd", "", false},
		{"backslash normalized into zone", `\tmp\scratch.txt`, "", true},
		{"cwd zone", "/home/user/file.txt", "/home/user", true},
		{"cwd zone descendant", "/home/user/sub/file.txt", "/home/user", true},
		{"no cwd zone without cwd", "/home/user/file.txt", "", false},
		{"sibling of cwd denied", "/home/other/file.txt", "/home/user", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsWriteAllowed(tt.path, tt.cwd))
		})
	}
}

func TestValidateWritePath(t *testing.T) {
	assert.NoError(t, ValidateWritePath("/tmp/ok.txt", "touch", ""))
	assert.NoError(t, ValidateWritePath("relative.txt", "touch", ""))

	err := ValidateWritePath("/etc/passwd", "touch", "")
	assert.Error(t, err)
	assert.Equal(t,
		"touch: write access denied to /etc/passwd. Write operations are only allowed in project directories and /tmp",
		err.Error())

	err = ValidateWritePath("/etc/passwd", "mkdir", "/projects/demo")
	assert.Error(t, err)
	assert.Equal(t,
		"mkdir: write access denied to /etc/passwd. Write operations are only allowed in project directories and /tmp or /projects/demo",
		err.Error())

	// A cwd that restates a standard zone is not repeated in the message.
	err = ValidateWritePath("/etc/passwd", "cp", "/tmp")
	assert.Error(t, err)
	assert.Equal(t,
		"cp: write access denied to /etc/passwd. Write operations are only allowed in project directories and /tmp",
		err.Error())

	err = ValidateWritePath("/etc/passwd", "mv", "/projects")
	assert.Error(t, err)
	assert.Equal(t,
		"mv: write access denied to /etc/passwd. Write operations are only allowed in project directories and /tmp",
		err.Error())
}

func TestSecurityErrorFields(t *testing.T) {
	err := ValidateWritePath("/etc/passwd", "cp", "/projects/demo")
	var secErr *SecurityError
	assert.ErrorAs(t, err, &secErr)
	assert.Equal(t, "cp", secErr.Op)
	assert.Equal(t, "/etc/passwd", secErr.Path)
	assert.Equal(t, "/projects/demo", secErr.Cwd)
}

func TestStandardDirectories(t *testing.T) {
	dirs := StandardDirectories()
	assert.Contains(t, dirs, Tmp)
	assert.Contains(t, dirs, Projects)
}

func TestDescribeDenied(t *testing.T) {
	msg := DescribeDenied("/etc/passwd", "touch", "/projects/demo")
	assert.Contains(t, msg, "touch cannot write to /etc/passwd")
	assert.Contains(t, msg, Tmp)
	assert.Contains(t, msg, Projects)
	assert.Contains(t, msg, "/projects/demo")

	msg = DescribeDenied("/etc/passwd", "touch", "/tmp")
	assert.NotContains(t, msg, "current working directory")
}
