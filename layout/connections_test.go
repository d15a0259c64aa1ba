package layout

import (
	"testing"

	"github.com/redexp/familymuseum-lsp/state"
)

func countType(list []Connection, t ConnectionType) (n int) {
	for _, c := range list {
		if c.Type == t {
			n++
		}
	}

	return
}

func TestConnectParentChild(t *testing.T) {
	input := state.Members{
		{Id: "A", Generation: 0, Children: []string{"B", "missing"}},
		{Id: "B", Generation: 1},
	}

	positioned := Arrange(input, Viewport{Width: 1200}, Default)
	list := Connect(positioned, nil, ConnectOptions{})

	if len(list) != 1 {
		t.Fatalf("len = %d, expect 1", len(list))
	}

	c := list[0]

	if c.Type != ParentChild || c.MemberIds != [2]string{"A", "B"} {
		t.Errorf("connection = %+v", c)
	}

	if c.From.Y >= c.To.Y {
		t.Error("parent should be above the child")
	}
}

func TestConnectSpouseOnce(t *testing.T) {
	input := state.Members{
		{Id: "z", Name: "Rachel", Spouse: "Moshe"},
		{Id: "a", Name: "Moshe", Spouse: "Rachel"},
		{Id: "m", Name: "Dan", Spouse: "Nobody"},
	}

	for _, order := range [][]int{{0, 1, 2}, {1, 0, 2}, {2, 1, 0}} {
		list := make(state.Members, 0)

		for _, i := range order {
			list = append(list, input[i])
		}

		connections := Connect(Arrange(list, Viewport{Width: 800}, Default), nil, ConnectOptions{})

		if len(connections) != 1 {
			t.Errorf("order %v: len = %d", order, len(connections))
			continue
		}

		if connections[0].Type != Spouse || connections[0].MemberIds != [2]string{"a", "z"} {
			t.Errorf("order %v: connection = %+v", order, connections[0])
		}
	}
}

func TestConnectSpouseById(t *testing.T) {
	input := state.Members{
		{Id: "a", Name: "Dan", SpouseId: "c", Spouse: "Rachel"},
		{Id: "b", Name: "Rachel"},
		{Id: "c", Name: "Rachel"},
	}

	list := Connect(input, nil, ConnectOptions{})

	if len(list) != 1 || list[0].MemberIds[1] != "c" {
		t.Errorf("spouse id should win over name: %+v", list)
	}
}

func TestConnectSiblings(t *testing.T) {
	input := state.Members{
		{Id: "p", Children: []string{"c2", "c1"}},
		{Id: "q"},
		{Id: "c2", ParentIds: []string{"q", "p"}},
		{Id: "c1", ParentIds: []string{"p", "q"}},
		{Id: "c3", ParentIds: []string{"p"}},
		{Id: "c4"},
	}

	list := Connect(input, nil, ConnectOptions{})

	if countType(list, Sibling) != 0 {
		t.Error("siblings are off by default")
	}

	list = Connect(input, nil, ConnectOptions{InferSiblings: true})

	if countType(list, Sibling) != 1 {
		t.Fatalf("siblings = %d, expect 1", countType(list, Sibling))
	}

	last := list[len(list)-1]

	if last.MemberIds != [2]string{"c1", "c2"} {
		t.Errorf("sibling = %v", last.MemberIds)
	}

	if countType(list, ParentChild) != 2 {
		t.Errorf("parent-child = %d", countType(list, ParentChild))
	}
}

func TestConnectionPath(t *testing.T) {
	c := Connection{
		Type: ParentChild,
		From: state.Position{X: 100, Y: 150},
		To:   state.Position{X: 300, Y: 350},
	}

	p := c.Path()

	if len(p.Segments) != 3 || p.Marker != nil {
		t.Fatalf("path = %+v", p)
	}

	if p.Segments[1].From != (state.Position{X: 100, Y: 250}) || p.Segments[1].To != (state.Position{X: 300, Y: 250}) {
		t.Errorf("horizontal segment = %+v", p.Segments[1])
	}

	c.Type = Spouse
	p = c.Path()

	if len(p.Segments) != 1 || p.Marker == nil || *p.Marker != (state.Position{X: 200, Y: 250}) {
		t.Errorf("spouse path = %+v", p)
	}
}
