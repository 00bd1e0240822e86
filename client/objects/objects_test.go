package objects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingObject struct {
	*BaseObject

	inits    int
	destroys int
	updates  int
	removeOn int
}

func newCountingObject(id string, zIndex int) *countingObject {
	return &countingObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: zIndex}),
	}
}

func (o *countingObject) Init() error {
	o.inits++
	return nil
}

func (o *countingObject) Destroy() error {
	o.destroys++
	return nil
}

func (o *countingObject) Update() error {
	o.updates++
	if o.removeOn > 0 && o.updates == o.removeOn {
		return o.RemoveFromParent()
	}
	return nil
}

func ids(objs []GameObject) []string {
	out := make([]string, 0, len(objs))
	for _, o := range objs {
		out = append(out, o.GetID())
	}
	return out
}

func TestBaseObject_children(t *testing.T) {
	root := NewBaseObject("root", nil)
	a := newCountingObject("a", 0)
	b := newCountingObject("b", 0)

	require.NoError(t, root.AddChild("a", a))
	require.NoError(t, root.AddChild("b", b))
	assert.Error(t, root.AddChild("a", newCountingObject("a", 0)))

	assert.Equal(t, []string{"a", "b"}, ids(root.GetChildren()))
	assert.Equal(t, 1, a.inits)
	assert.Equal(t, GameObject(root), a.GetParent())

	require.NoError(t, root.RemoveChild("a"))
	assert.Equal(t, 1, a.destroys)
	assert.Nil(t, a.GetParent())
	assert.Nil(t, root.GetChild("a"))
	assert.Error(t, root.RemoveChild("a"))
	assert.Equal(t, []string{"b"}, ids(root.GetChildren()))
}

func TestSortedZIndexObject_order(t *testing.T) {
	root := NewSortedZIndexObject("root")
	require.NoError(t, root.AddChild("top", newCountingObject("top", 10)))
	require.NoError(t, root.AddChild("bottom", newCountingObject("bottom", 0)))
	require.NoError(t, root.AddChild("middle", newCountingObject("middle", 5)))
	require.NoError(t, root.AddChild("bottom-2", newCountingObject("bottom-2", 0)))

	assert.Equal(t, []string{"bottom", "bottom-2", "middle", "top"}, ids(root.GetChildren()))

	require.NoError(t, root.RemoveChildrenWithZIndex(0))
	assert.Equal(t, []string{"middle", "top"}, ids(root.GetChildren()))
}

func TestUpdateTree_childRemovesItself(t *testing.T) {
	root := NewSortedZIndexObject("root")
	expiring := newCountingObject("expiring", 0)
	expiring.removeOn = 2
	staying := newCountingObject("staying", 1)
	require.NoError(t, root.AddChild("expiring", expiring))
	require.NoError(t, root.AddChild("staying", staying))

	require.NoError(t, UpdateTree(root))
	require.NoError(t, UpdateTree(root))
	require.NoError(t, UpdateTree(root))

	assert.Equal(t, 2, expiring.updates)
	assert.Equal(t, 1, expiring.destroys)
	assert.Equal(t, 3, staying.updates)
	assert.Equal(t, []string{"staying"}, ids(root.GetChildren()))
}
