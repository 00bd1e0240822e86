package objects

import (
	"fmt"
	"sort"
)

// SortedZIndexObject is a GameObject whose children are drawn in z-index order.
// Children with equal z-index keep the order they were added in.
type SortedZIndexObject struct {
	*BaseObject

	// sorted is a list of child objects sorted by z-index.
	sorted []GameObject
}

var _ GameObject = &SortedZIndexObject{}

func NewSortedZIndexObject(id string) *SortedZIndexObject {
	return &SortedZIndexObject{
		BaseObject: NewBaseObject(id, nil),
		sorted:     make([]GameObject, 0),
	}
}

func (o *SortedZIndexObject) AddChild(id string, child GameObject) error {
	if _, ok := o.children.idxIDObjects[id]; ok {
		return fmt.Errorf("child object with id %s already exists", id)
	}
	if err := InitTree(child); err != nil {
		return fmt.Errorf("failed to initialize child object tree: %v", err)
	}
	o.children.Add(id, child)
	child.SetParent(o)
	o.sorted = append(o.sorted, child)
	sort.SliceStable(o.sorted, func(i, j int) bool {
		return o.sorted[i].GetZIndex() < o.sorted[j].GetZIndex()
	})
	return nil
}

func (o *SortedZIndexObject) RemoveChild(id string) error {
	child := o.children.Get(id)
	if child == nil {
		return fmt.Errorf("child object with id %s does not exist", id)
	}
	if err := DestroyTree(child); err != nil {
		return fmt.Errorf("failed to destroy child object tree: %v", err)
	}
	o.children.Remove(id)
	child.SetParent(nil)
	for i, obj := range o.sorted {
		if obj == child {
			o.sorted = append(o.sorted[:i], o.sorted[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("child not found in sorted list")
}

// RemoveChildrenWithZIndex removes every child on the given layer.
func (o *SortedZIndexObject) RemoveChildrenWithZIndex(zIndex int) error {
	for _, child := range snapshot(o.sorted) {
		if child.GetZIndex() != zIndex {
			continue
		}
		if err := o.RemoveChild(child.GetID()); err != nil {
			return err
		}
	}
	return nil
}

func (o *SortedZIndexObject) GetChildren() []GameObject {
	return o.sorted
}
