package view

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppRendersHeadline(t *testing.T) {
	root := App()

	node, err := GetByText(root, MatchText("Hello Skeleton App"))
	require.NoError(t, err)
	assert.Equal(t, KindHeading, node.Kind)
	assert.Equal(t, 1, node.Level)
	assert.Equal(t, "h1", node.Tag())
	assert.True(t, Contains(root, node))
}

func TestAppHeadlineMatchIsCaseInsensitive(t *testing.T) {
	node, err := GetByText(App(), MatchText("hello skeleton app"))
	require.NoError(t, err)
	assert.Equal(t, Headline, node.Text)
}

func TestAppMissingTextFails(t *testing.T) {
	node, err := GetByText(App(), MatchText("Goodbye Skeleton App"))
	assert.Nil(t, node)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAppIsDeterministic(t *testing.T) {
	first := App()
	second := App()

	for _, root := range []*Node{first, second} {
		_, err := GetByText(root, MatchText(Headline))
		require.NoError(t, err)
	}

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("App() renders differ (-first +second):\n%s", diff)
	}
	assert.NotSame(t, first, second)
}

func TestAppHasNoSharedState(t *testing.T) {
	first := App()
	heading, err := GetByText(first, MatchText(Headline))
	require.NoError(t, err)
	heading.Text = "changed"
	first.Children[0].Classes[0] = "changed"

	second := App()
	_, err = GetByText(second, MatchText(Headline))
	require.NoError(t, err)
	assert.Equal(t, "text-center", second.Children[0].Classes[0])
	assert.False(t, Contains(second, heading))
}

func TestAppStructure(t *testing.T) {
	root := App()

	assert.Equal(t, KindContainer, root.Kind)
	assert.True(t, root.HasClass("min-h-dvh"))
	assert.True(t, root.HasClass("place-items-center"))
	require.Len(t, root.Children, 1)

	inner := root.Children[0]
	assert.Equal(t, KindContainer, inner.Kind)
	assert.True(t, inner.HasClass("text-center"))
	require.Len(t, inner.Children, 3)

	kinds := []Kind{inner.Children[0].Kind, inner.Children[1].Kind, inner.Children[2].Kind}
	assert.Equal(t, []Kind{KindGlyph, KindHeading, KindCaption}, kinds)
	assert.Equal(t, "💀", inner.Children[0].Text)
	assert.Equal(t, Tagline, inner.Children[2].Text)
}
