package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiscussionLoad_PostCount(t *testing.T) {
	d := DiscussionLoad{PostsPerWeek: 2, TotalPosts: 30}

	d.Basis = BasisPostsPerWeek
	assert.Equal(t, 2, d.PostCount())

	d.Basis = BasisTotalPosts
	assert.Equal(t, 30, d.PostCount())

	d.Basis = "unrecognised"
	assert.Equal(t, 30, d.PostCount())
}

func TestOverride_ValueOr(t *testing.T) {
	v := 2.5
	assert.Equal(t, 2.5, Override{Manual: true, Value: &v}.ValueOr(1.0))
	assert.Equal(t, 1.0, Override{Manual: true}.ValueOr(1.0))
	assert.Equal(t, 0.0, Override{}.ValueOr(0.0))
}

func TestCoalesceStr(t *testing.T) {
	assert.Equal(t, "b", CoalesceStr("", "b", "c"))
	assert.Equal(t, "", CoalesceStr("", ""))
}
