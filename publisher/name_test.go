package publisher

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRepoName(t *testing.T) {
	type args struct {
		task string
	}
	tests := []struct {
		name string
		args args
		want string
	}{
		{
			"plain task passes through",
			args{"captcha-solver-abc12"},
			"captcha-solver-abc12",
		},
		{
			"spaces and underscores become hyphens",
			args{"my task_name"},
			"my-task-name",
		},
		{
			"invalid characters are dropped",
			args{"task!@#$%^&*()+name"},
			"taskname",
		},
		{
			"leading and trailing hyphens are trimmed",
			args{"--task--"},
			"task",
		},
		{
			"long names are capped",
			args{strings.Repeat("a", 150)},
			strings.Repeat("a", 100),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RepoName(tt.args.task))
		})
	}
}

func TestRepoNameEmptyTaskIsDeterministic(t *testing.T) {
	a := RepoName("!!!")
	b := RepoName("!!!")
	assert.Equal(t, a, b, "the name must be a pure function of the task")
	assert.True(t, strings.HasPrefix(a, "task-"))
	assert.NotEqual(t, a, RepoName("???"))
}

func TestRepoNameDeterministic(t *testing.T) {
	for _, task := range []string{"markdown-to-html-xyz", "some task", strings.Repeat("x", 300)} {
		assert.Equal(t, RepoName(task), RepoName(task))
	}
}
