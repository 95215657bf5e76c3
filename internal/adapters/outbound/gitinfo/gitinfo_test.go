package gitinfo_test

import (
	"testing"

	"github.com/csvgate/csvgate/internal/adapters/outbound/gitinfo"
	"github.com/stretchr/testify/assert"
)

func TestCommitHash_NotARepo(t *testing.T) {
	g := gitinfo.New()
	_, err := g.CommitHash(t.TempDir())
	assert.Error(t, err)
}
